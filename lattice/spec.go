// SPDX-License-Identifier: MIT
// Package: slitpore/lattice
//
// spec.go — unit-cell description, validation and lattice vectors.
//
// Contract:
//   • Spacings must be strictly positive (else ErrInvalidDimension).
//   • Angles must lie in (0°,180°) and describe a parallelepiped with
//     positive volume (else ErrConfiguration).
//   • The basis must name at least one element and every element must carry
//     at least one fractional point (else ErrConfiguration).
//   • Fractional coordinates outside [0,1) are wrapped, not rejected.

package lattice

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/structure"
)

const (
	methodValidate = "Spec.Validate"

	// angleTol is the absolute tolerance (degrees) under which an angle is
	// treated as exactly 90°.
	angleTol = 1e-9
	// rightAngle in degrees.
	rightAngle = 90.0
)

// Spec describes a unit cell and its basis.
type Spec struct {
	// Spacing holds the cell edge lengths a, b, c in nm.
	Spacing [3]float64
	// Angles holds α (b∧c), β (a∧c), γ (a∧b) in degrees.
	Angles [3]float64
	// Basis maps element label → fractional coordinates within one cell.
	Basis map[string][][3]float64
}

// BasisPoint is one fractional basis position tagged with its element.
type BasisPoint struct {
	Element string
	Frac    [3]float64
}

// Graphene returns the hexagonal graphene cell: a = b = 0.2456 nm,
// c = 0.335 nm (interlayer spacing), γ = 120°, two carbons per cell.
func Graphene() Spec {
	return Spec{
		Spacing: [3]float64{0.2456, 0.2456, 0.335},
		Angles:  [3]float64{90, 90, 120},
		Basis: map[string][][3]float64{
			"C": {{0, 0, 0}, {2.0 / 3.0, 1.0 / 3.0, 0}},
		},
	}
}

// Validate checks the spacing, angle and basis invariants.
// Complexity: O(|basis|).
func (s Spec) Validate() error {
	for i, a := range s.Spacing {
		if !(a > 0) || math.IsInf(a, 0) {
			return errs.Wrapf(methodValidate, errs.ErrInvalidDimension, "spacing[%d]=%g must be > 0", i, a)
		}
	}
	for i, ang := range s.Angles {
		if !(ang > 0 && ang < 180) {
			return errs.Wrapf(methodValidate, errs.ErrConfiguration, "angle[%d]=%g not in (0,180)", i, ang)
		}
	}
	if v := s.volumeFactor(); !(v > 0) {
		return errs.Wrapf(methodValidate, errs.ErrConfiguration,
			"angles %v do not form a valid cell", s.Angles)
	}
	if len(s.Basis) == 0 {
		return errs.Wrapf(methodValidate, errs.ErrConfiguration, "empty basis")
	}
	for el, pts := range s.Basis {
		if el == "" {
			return errs.Wrapf(methodValidate, errs.ErrConfiguration, "empty element label")
		}
		if len(pts) == 0 {
			return errs.Wrapf(methodValidate, errs.ErrConfiguration, "element %q has no basis points", el)
		}
	}

	return nil
}

// volumeFactor is V/(abc) squared: 1 − cos²α − cos²β − cos²γ + 2cosα·cosβ·cosγ.
func (s Spec) volumeFactor() float64 {
	ca, cb, cg := cosDeg(s.Angles[0]), cosDeg(s.Angles[1]), cosDeg(s.Angles[2])
	return 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
}

// Vectors returns the Cartesian lattice vectors a1, a2, a3.
// The caller must have validated s.
func (s Spec) Vectors() [3]r3.Vec {
	a, b, c := s.Spacing[0], s.Spacing[1], s.Spacing[2]
	ca, cb, cg := cosDeg(s.Angles[0]), cosDeg(s.Angles[1]), cosDeg(s.Angles[2])
	sg := s.SinGamma()

	cy := (ca - cb*cg) / sg
	cz := math.Sqrt(math.Max(0, 1-cb*cb-cy*cy))

	return [3]r3.Vec{
		{X: a},
		{X: b * cg, Y: b * sg},
		{X: c * cb, Y: c * cy, Z: c * cz},
	}
}

// SinGamma returns sin γ, or exactly 1 when γ is a right angle.
// This is the projection factor applied to the in-plane perpendicular axis
// (cos 30° for hexagonal cells).
func (s Spec) SinGamma() float64 {
	if IsRight(s.Angles[2]) {
		return 1
	}
	return math.Sin(s.Angles[2] * math.Pi / 180)
}

// LayerSpacing is the out-of-plane repeat distance c.
func (s Spec) LayerSpacing() float64 {
	return s.Spacing[2]
}

// Points flattens the basis in a deterministic order: elements sorted by
// label, points in declaration order. Fractional coordinates are wrapped
// into [0,1).
// Complexity: O(|basis| log |elements|).
func (s Spec) Points() []BasisPoint {
	elements := make([]string, 0, len(s.Basis))
	for el := range s.Basis {
		elements = append(elements, el)
	}
	sort.Strings(elements)

	var out []BasisPoint
	for _, el := range elements {
		for _, f := range s.Basis[el] {
			out = append(out, BasisPoint{
				Element: el,
				Frac: [3]float64{
					structure.Wrap(f[0], 1),
					structure.Wrap(f[1], 1),
					structure.Wrap(f[2], 1),
				},
			})
		}
	}

	return out
}

// IsRight reports whether angle (degrees) equals 90° within angleTol.
func IsRight(angle float64) bool {
	return scalar.EqualWithinAbs(angle, rightAngle, angleTol)
}

func cosDeg(deg float64) float64 {
	if IsRight(deg) {
		return 0
	}
	return math.Cos(deg * math.Pi / 180)
}
