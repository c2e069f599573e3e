// SPDX-License-Identifier: MIT
// Package: slitpore/pore
//
// axis.go — separation axes, sheet roles and the natural→world permutation.

package pore

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/structure"
)

// Axis selects the world axis along which the two sheets face each other
// (the slit_pore_dim option).
type Axis int

const (
	// AxisX separates the sheets along x (slit_pore_dim=0).
	AxisX Axis = iota
	// AxisY separates the sheets along y (slit_pore_dim=1).
	AxisY
	// AxisZ separates the sheets along z (slit_pore_dim=2).
	AxisZ
)

// Natural-frame axis indices.
const (
	naturalBulk     = 0 // a1
	naturalSide     = 1 // projected a2
	naturalStacking = 2 // a3
)

// Valid reports whether a is one of AxisX, AxisY, AxisZ.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Bulk returns the world axis that carries the bulk padding.
func (a Axis) Bulk() Axis {
	return a.world(naturalBulk)
}

// Side returns the remaining in-plane world axis.
func (a Axis) Side() Axis {
	return a.world(naturalSide)
}

// Unit returns the positive unit vector along a.
func (a Axis) Unit() r3.Vec {
	return structure.WithComponent(r3.Vec{}, int(a), 1)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// world maps a natural-frame axis index onto its world axis.
func (a Axis) world(natural int) Axis {
	return Axis((natural + a.shift()) % 3)
}

// shift is the cyclic permutation offset sending stacking (2) onto a.
func (a Axis) shift() int {
	return (int(a) + 1) % 3
}

// orient maps a natural-frame vector into the world frame. Cyclic
// permutations are proper rotations, so handedness is preserved.
func (a Axis) orient(v r3.Vec) r3.Vec {
	var out r3.Vec
	for i := 0; i < 3; i++ {
		out = structure.WithComponent(out, int(a.world(i)), structure.Component(v, i))
	}
	return out
}

// Role tags a sheet as the near (untranslated) or far (translated) face.
type Role int

const (
	// Near is the sheet left at the replicated pose.
	Near Role = iota
	// Far is the sheet translated across the gap.
	Far
)

// Group names used for the two sheets.
const (
	NearName = "TOP"
	FarName  = "BOT"
)

func (r Role) String() string {
	if r == Far {
		return FarName
	}
	return NearName
}

// Normal returns the outward-into-pore unit normal of a sheet with role r
// for separation axis a: +a for NEAR, −a for FAR.
func (r Role) Normal(a Axis) r3.Vec {
	n := a.Unit()
	if r == Far {
		return r3.Scale(-1, n)
	}
	return n
}
