// SPDX-License-Identifier: MIT
// Package: slitpore/lattice
//
// replicate.go — replication counts and the replicated block.
//
// Contract:
//   • Counts fails with ErrInvalidDimension when either in-plane size is
//     ≤ 0 or truncates to zero cells. It never rounds up.
//   • Replicate emits |basis|·nx·ny·nz atoms in a stable order:
//     layer k asc, row j asc, column i asc, then basis points (Spec.Points).
//   • Any atom whose x lies outside [0, nx·a) (the sheared axis of a
//     non-orthogonal cell) is wrapped by the x extent. This is the one
//     normalization applied to a replicated block.

package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/structure"
)

const (
	methodCounts    = "Counts"
	methodReplicate = "Replicate"
)

// Replicated is an nx×ny×nz block of a lattice in Cartesian coordinates.
type Replicated struct {
	Spec Spec
	// Counts holds nx, ny, nz.
	Counts [3]int
	// Extents holds the raw periodic extents (nx·a, ny·b, nz·c).
	Extents r3.Vec
	Atoms   []structure.Atom
}

// Counts returns the truncated in-plane replication counts needed to cover
// length (along a1) and side (along the projected a2 direction).
// Complexity: O(1).
func Counts(s Spec, length, side float64) (nx, ny int, err error) {
	if !(length > 0) || !(side > 0) {
		return 0, 0, errs.Wrapf(methodCounts, errs.ErrInvalidDimension,
			"sheet size %gx%g must be > 0", length, side)
	}
	if err = s.Validate(); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", methodCounts, err)
	}

	rx := length / s.Spacing[0]
	ry := side / (s.Spacing[1] * s.SinGamma())
	if rx > math.MaxInt32 || ry > math.MaxInt32 {
		return 0, 0, errs.Wrapf(methodCounts, errs.ErrInvalidDimension,
			"sheet size %gx%g too large", length, side)
	}
	nx, ny = int(rx), int(ry)
	if nx < 1 || ny < 1 {
		return 0, 0, errs.Wrapf(methodCounts, errs.ErrInvalidDimension,
			"sheet size %gx%g smaller than one cell", length, side)
	}

	return nx, ny, nil
}

// Replicate builds the nx×ny×nz block of s.
// Complexity: O(|basis|·nx·ny·nz) time and space.
func Replicate(s Spec, nx, ny, nz int) (*Replicated, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, errs.Wrapf(methodReplicate, errs.ErrInvalidDimension,
			"counts %dx%dx%d must each be ≥ 1", nx, ny, nz)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodReplicate, err)
	}

	vec := s.Vectors()
	pts := s.Points()
	r := &Replicated{
		Spec:   s,
		Counts: [3]int{nx, ny, nz},
		Extents: r3.Vec{
			X: float64(nx) * s.Spacing[0],
			Y: float64(ny) * s.Spacing[1],
			Z: float64(nz) * s.Spacing[2],
		},
		Atoms: make([]structure.Atom, 0, len(pts)*nx*ny*nz),
	}

	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				for _, p := range pts {
					pos := r3.Add(r3.Add(
						r3.Scale(float64(i)+p.Frac[0], vec[0]),
						r3.Scale(float64(j)+p.Frac[1], vec[1])),
						r3.Scale(float64(k)+p.Frac[2], vec[2]))
					// Sheared axis wrap-around.
					pos.X = structure.Wrap(pos.X, r.Extents.X)
					r.Atoms = append(r.Atoms, structure.Atom{Element: p.Element, Pos: pos})
				}
			}
		}
	}

	return r, nil
}

// LayerSpacing is the out-of-plane repeat distance of the block.
func (r *Replicated) LayerSpacing() float64 {
	return r.Spec.LayerSpacing()
}

// Thickness is the stacked extent nz·c of the block.
func (r *Replicated) Thickness() float64 {
	return r.Extents.Z
}

// ProjectedExtents returns the extents an orthorhombic box sees:
// (nx·a, ny·b·sin γ, nz·c).
func (r *Replicated) ProjectedExtents() r3.Vec {
	e := r.Extents
	e.Y *= r.Spec.SinGamma()
	return e
}

// Group copies the block's atoms into a new named group.
// Complexity: O(atoms).
func (r *Replicated) Group(name string) *structure.Group {
	g := structure.NewGroup(name)
	g.Atoms = make([]structure.Atom, len(r.Atoms))
	copy(g.Atoms, r.Atoms)
	return g
}
