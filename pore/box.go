// SPDX-License-Identifier: MIT
// Package: slitpore/pore
//
// box.go — the periodic box of a pore.
//
// Natural-frame lengths, then permuted onto the world axes:
//   • bulk:       nx·a + 2·padding
//   • side:       ny·b·sin γ   (cos 30° for hexagonal cells)
//   • separation: 2·nz·c − c + width
// Angles are always 90°, 90°, 90°.

package pore

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/lattice"
	"github.com/katalvlaran/slitpore/structure"
)

const methodComputeBox = "ComputeBox"

// ComputeBox derives the periodic box of a pore built from lat.
// Complexity: O(1).
func ComputeBox(lat *lattice.Replicated, axis Axis, width, padding float64) (structure.Box, error) {
	if lat == nil {
		return structure.Box{}, errs.Wrapf(methodComputeBox, errs.ErrConfiguration, "nil lattice")
	}
	if !axis.Valid() {
		return structure.Box{}, errs.Wrapf(methodComputeBox, errs.ErrConfiguration, "axis %d not in {0,1,2}", int(axis))
	}
	if !(width > 0) {
		return structure.Box{}, errs.Wrapf(methodComputeBox, errs.ErrInvalidDimension, "pore_width=%g", width)
	}
	if padding < 0 {
		return structure.Box{}, errs.Wrapf(methodComputeBox, errs.ErrInvalidDimension, "padding=%g", padding)
	}

	proj := lat.ProjectedExtents()
	natural := r3.Vec{
		X: proj.X + 2*padding,
		Y: proj.Y,
		Z: 2*lat.Thickness() - lat.LayerSpacing() + width,
	}

	return structure.NewBox(axis.orient(natural)), nil
}
