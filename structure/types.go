// SPDX-License-Identifier: MIT
// Package: slitpore/structure
//
// types.go — atoms, bonds, groups and the periodic box.

package structure

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Atom is a single particle: element label plus Cartesian position.
type Atom struct {
	Element string
	Pos     r3.Vec
}

// Bond connects two atoms of the same Group by their indices in Group.Atoms.
type Bond struct {
	I, J int
}

// Group is a named node of the structure tree.
type Group struct {
	Name     string
	Atoms    []Atom
	Bonds    []Bond
	Children []*Group
}

// RightAngle is the box angle (degrees) written for every frozen structure.
const RightAngle = 90.0

// Box is the periodic frame: edge lengths (nm) and angles (degrees).
// Boxes produced by this module are always orthorhombic.
type Box struct {
	Lengths r3.Vec
	Angles  r3.Vec
}

// NewBox returns an orthorhombic box with the given edge lengths.
func NewBox(lengths r3.Vec) Box {
	return Box{
		Lengths: lengths,
		Angles:  r3.Vec{X: RightAngle, Y: RightAngle, Z: RightAngle},
	}
}
