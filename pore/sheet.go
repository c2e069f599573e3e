// SPDX-License-Identifier: MIT
// Package: slitpore/pore
//
// sheet.go — two independent oriented copies of a lattice.
//
// Contract:
//   • width > 0 (else ErrInvalidDimension).
//   • Both sheets are deep copies; they share no storage with each other or
//     with the replicated lattice.
//   • Atom order inside each sheet equals the lattice atom order.
//   • min(FAR along axis) − max(NEAR along axis) = width for lattices whose
//     basis lies in one plane per layer.

package pore

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/lattice"
	"github.com/katalvlaran/slitpore/structure"
)

const methodAssembleSheets = "AssembleSheets"

// Transform is the rigid pose applied to a replicated lattice: the axis
// permutation selected by Axis followed by Offset (world frame).
type Transform struct {
	Axis   Axis
	Offset r3.Vec
}

// Apply maps a natural-frame position into the world frame.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	return r3.Add(t.Axis.orient(p), t.Offset)
}

// Sheet is one face of the pore.
type Sheet struct {
	Role      Role
	Group     *structure.Group
	Transform Transform
}

// FarOffset is the translation of the FAR sheet along the separation axis:
// width + (nz·c − c). Subtracting one layer spacing keeps the last layer's
// thickness from being counted twice.
func FarOffset(lat *lattice.Replicated, width float64) float64 {
	return width + (lat.Thickness() - lat.LayerSpacing())
}

// AssembleSheets builds the NEAR and FAR sheets of a pore along axis.
// Complexity: O(atoms) time and space per sheet.
func AssembleSheets(lat *lattice.Replicated, axis Axis, width float64) (near, far *Sheet, err error) {
	if lat == nil {
		return nil, nil, errs.Wrapf(methodAssembleSheets, errs.ErrConfiguration, "nil lattice")
	}
	if !axis.Valid() {
		return nil, nil, errs.Wrapf(methodAssembleSheets, errs.ErrConfiguration, "axis %d not in {0,1,2}", int(axis))
	}
	if !(width > 0) {
		return nil, nil, errs.Wrapf(methodAssembleSheets, errs.ErrInvalidDimension, "pore_width=%g", width)
	}

	near = newSheet(lat, Near, Transform{Axis: axis})
	far = newSheet(lat, Far, Transform{
		Axis:   axis,
		Offset: r3.Scale(FarOffset(lat, width), axis.Unit()),
	})

	return near, far, nil
}

func newSheet(lat *lattice.Replicated, role Role, tr Transform) *Sheet {
	g := lat.Group(role.String())
	g.Apply(tr.Apply)
	return &Sheet{Role: role, Group: g, Transform: tr}
}
