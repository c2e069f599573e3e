// SPDX-License-Identifier: MIT
// Package: slitpore/functional
//
// place.go — anchor-to-site alignment of template copies.
//
// Geometry:
//   • Each site carries an outward unit normal n pointing into the pore.
//   • The marker sits at site + bond·n.
//   • A template copy is rotated so its attachment direction d maps onto
//     −n (pointing back at the host), then translated so its anchor lands
//     on the marker. The fragment therefore extends away from the lattice.
//
// Contract:
//   • Place never modifies host atoms; copies are appended to
//     host.Children in plan order (template order, then shuffled order).
//   • Every site index in the plan must be a valid candidate index, and
//     every candidate's Atom must index host.Atoms (else ErrConfiguration).

package functional

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/structure"
)

const (
	methodPlace = "Place"

	// DefaultBondLength (nm) is the anchor offset from the host site: two
	// 0.075 nm port separations.
	DefaultBondLength = 0.15

	// parallelTol bounds |cos θ| − 1 under which two unit vectors are
	// treated as parallel or antiparallel.
	parallelTol = 1e-12
)

// Site is a candidate surface atom.
type Site struct {
	// Atom indexes the host group's Atoms.
	Atom int
	// Pos is the host atom position.
	Pos r3.Vec
	// Normal is the outward unit normal pointing into the pore.
	Normal r3.Vec
}

// Placement records one attached copy.
type Placement struct {
	// Site indexes the candidate list handed to Place.
	Site int
	// Atom is the host atom index of that site.
	Atom int
	// Template indexes the template list.
	Template int
}

// Place attaches template copies to host according to plan.
// Complexity: O(Σ quota · template atoms).
func Place(host *structure.Group, sites []Site, templates []Template, plan Plan, bond float64) ([]Placement, error) {
	if host == nil {
		return nil, errs.Wrapf(methodPlace, errs.ErrConfiguration, "nil host")
	}
	if !(bond > 0) {
		return nil, errs.Wrapf(methodPlace, errs.ErrInvalidDimension, "bond length %g must be > 0", bond)
	}
	if len(plan.Order) != len(sites) || len(plan.Blocks) != len(templates) {
		return nil, errs.Wrapf(methodPlace, errs.ErrConfiguration,
			"plan covers %d sites/%d templates, got %d/%d",
			len(plan.Order), len(plan.Blocks), len(sites), len(templates))
	}
	for i, s := range sites {
		if s.Atom < 0 || s.Atom >= len(host.Atoms) {
			return nil, errs.Wrapf(methodPlace, errs.ErrConfiguration, "site %d: atom %d out of range", i, s.Atom)
		}
	}

	// Build every copy before touching host so a failure leaves it intact.
	placed := make([]*structure.Group, 0, plan.Total())
	out := make([]Placement, 0, plan.Total())
	for ti, t := range templates {
		for _, si := range plan.Assigned(ti) {
			if si < 0 || si >= len(sites) {
				return nil, errs.Wrapf(methodPlace, errs.ErrConfiguration, "plan site %d out of range", si)
			}
			placed = append(placed, Attach(t, sites[si], bond))
			out = append(out, Placement{Site: si, Atom: sites[si].Atom, Template: ti})
		}
	}
	for _, g := range placed {
		host.AddChild(g)
	}

	return out, nil
}

// Attach returns a copy of t aligned onto site. t must be valid.
// Complexity: O(template atoms).
func Attach(t Template, site Site, bond float64) *structure.Group {
	n := r3.Unit(site.Normal)
	marker := r3.Add(site.Pos, r3.Scale(bond, n))
	rot := alignRotation(r3.Unit(t.Direction), r3.Scale(-1, n))
	anchor := t.Group.Atoms[t.Anchor].Pos

	g := t.Group.Clone()
	g.Name = t.Name
	g.Apply(func(p r3.Vec) r3.Vec {
		return r3.Add(rot.Rotate(r3.Sub(p, anchor)), marker)
	})

	return g
}

// alignRotation returns the rotation taking unit vector u onto unit vector v.
func alignRotation(u, v r3.Vec) r3.Rotation {
	c := r3.Dot(u, v)
	switch {
	case c >= 1-parallelTol:
		return r3.NewRotation(0, r3.Vec{Z: 1})
	case c <= -1+parallelTol:
		return r3.NewRotation(math.Pi, perpendicular(u))
	}
	return r3.NewRotation(math.Acos(c), r3.Cross(u, v))
}

// perpendicular returns a unit vector orthogonal to unit vector u.
func perpendicular(u r3.Vec) r3.Vec {
	ref := r3.Vec{X: 1}
	if math.Abs(u.X) > 0.9 {
		ref = r3.Vec{Y: 1}
	}
	return r3.Unit(r3.Cross(u, ref))
}
