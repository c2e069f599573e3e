// SPDX-License-Identifier: MIT
// Package: slitpore/functional
//
// template.go — functional-group templates and their validation.
//
// Contract:
//   • Coverage ∈ (0,1], Direction ≠ 0, Anchor indexes Group.Atoms
//     (else ErrConfiguration).
//   • Templates assembles parallel lists with exact 1:1 arity. A single
//     coverage or direction is never broadcast across several groups.

package functional

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/structure"
)

const (
	methodValidate  = "Validate"
	methodTemplates = "Templates"

	minCoverage = 0.0 // exclusive
	maxCoverage = 1.0 // inclusive
)

// Template is a rigid substituent fragment.
type Template struct {
	// Name labels every placed copy (used for residue naming downstream).
	Name string
	// Group holds the fragment atoms in its local frame.
	Group *structure.Group
	// Anchor is the index in Group.Atoms of the atom bonded to the host.
	Anchor int
	// Direction is the attachment direction in the local frame: it points
	// from the anchor toward the host site.
	Direction r3.Vec
	// Coverage is the fraction of candidate sites this template claims.
	Coverage float64
}

// Validate checks every template independently.
// Complexity: O(T).
func Validate(templates []Template) error {
	for i, t := range templates {
		if t.Group == nil || len(t.Group.Atoms) == 0 {
			return errs.Wrapf(methodValidate, errs.ErrConfiguration, "template %d (%s) has no atoms", i, t.Name)
		}
		if t.Anchor < 0 || t.Anchor >= len(t.Group.Atoms) {
			return errs.Wrapf(methodValidate, errs.ErrConfiguration,
				"template %d (%s): anchor %d out of range [0,%d)", i, t.Name, t.Anchor, len(t.Group.Atoms))
		}
		if !(t.Coverage > minCoverage && t.Coverage <= maxCoverage) {
			return errs.Wrapf(methodValidate, errs.ErrConfiguration,
				"template %d (%s): coverage %g not in (0,1]", i, t.Name, t.Coverage)
		}
		n := r3.Norm(t.Direction)
		if !(n > 0) || math.IsInf(n, 0) {
			return errs.Wrapf(methodValidate, errs.ErrConfiguration,
				"template %d (%s): zero attachment direction", i, t.Name)
		}
	}

	return nil
}

// Templates zips parallel group/coverage/direction lists into templates.
// The three lists must have identical, non-zero length.
// Groups are deep-copied; anchors default to atom 0.
func Templates(groups []*structure.Group, coverages []float64, directions []r3.Vec) ([]Template, error) {
	if len(groups) == 0 {
		return nil, errs.Wrapf(methodTemplates, errs.ErrConfiguration, "no functional groups")
	}
	if len(coverages) != len(groups) || len(directions) != len(groups) {
		return nil, errs.Wrapf(methodTemplates, errs.ErrConfiguration,
			"%d groups, %d coverages, %d directions", len(groups), len(coverages), len(directions))
	}

	out := make([]Template, len(groups))
	for i, g := range groups {
		out[i] = Template{
			Group:     g.Clone(),
			Direction: directions[i],
			Coverage:  coverages[i],
		}
		if g != nil {
			out[i].Name = g.Name
		}
	}
	if err := Validate(out); err != nil {
		return nil, err
	}

	return out, nil
}
