// SPDX-License-Identifier: MIT
// Package: slitpore/structure
//
// box.go — periodic-box arithmetic: component access, containment and
// wrap-around into [0, L).

package structure

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Component returns the i-th coordinate of v (0=X, 1=Y, 2=Z).
// Any other index yields 0.
func Component(v r3.Vec, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}

	return 0
}

// WithComponent returns v with its i-th coordinate replaced by x.
func WithComponent(v r3.Vec, i int, x float64) r3.Vec {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	}

	return v
}

// Wrap maps x into the half-open interval [0, l). l must be > 0.
// Values already in range are returned unchanged, bit for bit.
func Wrap(x, l float64) float64 {
	if x >= 0 && x < l {
		return x
	}
	x = math.Mod(x, l)
	if x < 0 {
		x += l
	}
	// x+l can round up to exactly l for tiny negative x.
	if x >= l {
		x = 0
	}

	return x
}

// Wrap maps p into the box on every axis.
func (b Box) Wrap(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: Wrap(p.X, b.Lengths.X),
		Y: Wrap(p.Y, b.Lengths.Y),
		Z: Wrap(p.Z, b.Lengths.Z),
	}
}

// Contains reports whether 0 ≤ p_i < L_i on every axis.
func (b Box) Contains(p r3.Vec) bool {
	return p.X >= 0 && p.X < b.Lengths.X &&
		p.Y >= 0 && p.Y < b.Lengths.Y &&
		p.Z >= 0 && p.Z < b.Lengths.Z
}

// Volume returns the product of the edge lengths.
func (b Box) Volume() float64 {
	return b.Lengths.X * b.Lengths.Y * b.Lengths.Z
}
