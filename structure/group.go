// SPDX-License-Identifier: MIT
// Package: slitpore/structure
//
// group.go — construction, deep copy and traversal of the group tree.
//
// Determinism:
//   • Every traversal visits a group's own atoms first, then its children
//     depth-first in insertion order. Positions, NumAtoms and Walk agree on
//     this order, so flattened indices are stable across calls.

package structure

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// NewGroup returns an empty group with the given name.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// AddAtom appends an atom and returns its index in g.Atoms.
// Complexity: amortized O(1).
func (g *Group) AddAtom(element string, pos r3.Vec) int {
	g.Atoms = append(g.Atoms, Atom{Element: element, Pos: pos})
	return len(g.Atoms) - 1
}

// AddBond records a bond between two local atom indices.
// Indices are not validated here; Validate reports dangling bonds.
func (g *Group) AddBond(i, j int) {
	g.Bonds = append(g.Bonds, Bond{I: i, J: j})
}

// AddChild appends c to g's children. A nil child is ignored.
func (g *Group) AddChild(c *Group) {
	if c == nil {
		return
	}
	g.Children = append(g.Children, c)
}

// Clone returns a deep copy of g: atoms, bonds and the whole child tree are
// copied, so mutating the clone never affects g.
// Complexity: O(total atoms + total bonds) time and space.
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	out := &Group{Name: g.Name}
	if g.Atoms != nil {
		out.Atoms = make([]Atom, len(g.Atoms))
		copy(out.Atoms, g.Atoms)
	}
	if g.Bonds != nil {
		out.Bonds = make([]Bond, len(g.Bonds))
		copy(out.Bonds, g.Bonds)
	}
	if g.Children != nil {
		out.Children = make([]*Group, len(g.Children))
		for i, c := range g.Children {
			out.Children[i] = c.Clone()
		}
	}

	return out
}

// Walk visits g and then its descendants depth-first, in insertion order.
// Returning false from fn skips the subtree below the visited group.
func (g *Group) Walk(fn func(*Group) bool) {
	if g == nil {
		return
	}
	if !fn(g) {
		return
	}
	for _, c := range g.Children {
		c.Walk(fn)
	}
}

// NumAtoms returns the number of atoms in g and all of its descendants.
// Complexity: O(number of groups).
func (g *Group) NumAtoms() int {
	n := 0
	g.Walk(func(x *Group) bool {
		n += len(x.Atoms)
		return true
	})
	return n
}

// Positions returns a freshly allocated, flattened copy of every position
// in traversal order. The returned slice never aliases g.
// Complexity: O(total atoms).
func (g *Group) Positions() []r3.Vec {
	out := make([]r3.Vec, 0, g.NumAtoms())
	g.Walk(func(x *Group) bool {
		for _, a := range x.Atoms {
			out = append(out, a.Pos)
		}
		return true
	})
	return out
}

// Translate shifts every atom of g and its descendants by d.
// Complexity: O(total atoms).
func (g *Group) Translate(d r3.Vec) {
	g.Apply(func(p r3.Vec) r3.Vec { return r3.Add(p, d) })
}

// Apply replaces every position p in g and its descendants by fn(p).
// Complexity: O(total atoms) calls of fn.
func (g *Group) Apply(fn func(r3.Vec) r3.Vec) {
	g.Walk(func(x *Group) bool {
		for i := range x.Atoms {
			x.Atoms[i].Pos = fn(x.Atoms[i].Pos)
		}
		return true
	})
}

// Bounds returns the component-wise minimum and maximum over all positions
// in g and its descendants. ok is false when the tree holds no atoms.
// Complexity: O(total atoms).
func (g *Group) Bounds() (lo, hi r3.Vec, ok bool) {
	lo = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	g.Walk(func(x *Group) bool {
		for _, a := range x.Atoms {
			ok = true
			lo.X, hi.X = math.Min(lo.X, a.Pos.X), math.Max(hi.X, a.Pos.X)
			lo.Y, hi.Y = math.Min(lo.Y, a.Pos.Y), math.Max(hi.Y, a.Pos.Y)
			lo.Z, hi.Z = math.Min(lo.Z, a.Pos.Z), math.Max(hi.Z, a.Pos.Z)
		}
		return true
	})

	return lo, hi, ok
}

// Centroid returns the unweighted mean position of g's own atoms and its
// descendants. ok is false when the tree holds no atoms.
func (g *Group) Centroid() (c r3.Vec, ok bool) {
	n := 0
	g.Walk(func(x *Group) bool {
		for _, a := range x.Atoms {
			c = r3.Add(c, a.Pos)
			n++
		}
		return true
	})
	if n == 0 {
		return r3.Vec{}, false
	}

	return r3.Scale(1/float64(n), c), true
}

// Validate reports whether every bond of every group references atoms that
// exist in that group.
func (g *Group) Validate() bool {
	valid := true
	g.Walk(func(x *Group) bool {
		for _, b := range x.Bonds {
			if b.I < 0 || b.J < 0 || b.I >= len(x.Atoms) || b.J >= len(x.Atoms) {
				valid = false
				return false
			}
		}
		return valid
	})

	return valid
}

// Find returns the direct children of g whose Name equals name, in order.
func (g *Group) Find(name string) []*Group {
	var out []*Group
	for _, c := range g.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}

	return out
}
