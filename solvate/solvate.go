// SPDX-License-Identifier: MIT
// Package: slitpore/solvate
//
// solvate.go — the packer contract and the adapter that enforces it.
//
// Contract (Adapt):
//   • solvents non-empty; labels non-empty and unique; templates non-empty;
//     counts ≥ 1; overlap ≥ 0 (else ErrConfiguration / ErrInvalidDimension).
//   • len(solvents) ≤ MaxKinds() when the packer implements KindLimiter.
//   • Any packer error surfaces as ErrPackingFailed (never swallowed).
//   • Returned molecules are verified (count, atom count, containment).

package solvate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/structure"
)

const methodAdapt = "Adapt"

// DefaultOverlap is the minimum non-overlap distance (nm).
const DefaultOverlap = 0.2

// Solvent is one entry of the ordered solvent list.
type Solvent struct {
	Label    string
	Template *structure.Group
	Count    int
}

// Packer places solvent molecules around a fixed host inside a box.
// The returned slice holds one entry per solvent, in input order.
type Packer interface {
	Pack(host []r3.Vec, box structure.Box, solvents []Solvent, overlap float64) ([][]*structure.Group, error)
}

// KindLimiter is implemented by packers that support a bounded number of
// distinct solvent templates. MaxKinds ≤ 0 means unlimited.
type KindLimiter interface {
	MaxKinds() int
}

// Validate checks the solvent list against the packer's capabilities.
// Complexity: O(len(solvents)).
func Validate(solvents []Solvent, p Packer) error {
	if p == nil {
		return errs.Wrapf(methodAdapt, errs.ErrConfiguration, "nil packer")
	}
	if len(solvents) == 0 {
		return errs.Wrapf(methodAdapt, errs.ErrConfiguration, "no solvents")
	}
	if l, ok := p.(KindLimiter); ok && l.MaxKinds() > 0 && len(solvents) > l.MaxKinds() {
		return errs.Wrapf(methodAdapt, errs.ErrConfiguration,
			"%d solvent kinds, packer supports at most %d", len(solvents), l.MaxKinds())
	}
	seen := make(map[string]bool, len(solvents))
	for i, s := range solvents {
		if s.Label == "" {
			return errs.Wrapf(methodAdapt, errs.ErrConfiguration, "solvent %d: empty label", i)
		}
		if seen[s.Label] {
			return errs.Wrapf(methodAdapt, errs.ErrConfiguration, "solvent %d: duplicate label %q", i, s.Label)
		}
		seen[s.Label] = true
		if s.Template == nil || s.Template.NumAtoms() == 0 {
			return errs.Wrapf(methodAdapt, errs.ErrConfiguration, "solvent %q: empty template", s.Label)
		}
		if s.Count < 1 {
			return errs.Wrapf(methodAdapt, errs.ErrConfiguration, "solvent %q: count %d < 1", s.Label, s.Count)
		}
	}

	return nil
}

// Adapt validates the request, runs the packer against host and returns
// the packed molecules flattened in solvent order, each named by its label.
// Complexity: O(packer) + O(packed atoms) for verification.
func Adapt(p Packer, host *structure.Group, box structure.Box, solvents []Solvent, overlap float64) ([]*structure.Group, error) {
	if err := Validate(solvents, p); err != nil {
		return nil, err
	}
	if !(overlap >= 0) {
		return nil, errs.Wrapf(methodAdapt, errs.ErrInvalidDimension, "overlap=%g", overlap)
	}

	var hostPos []r3.Vec
	if host != nil {
		hostPos = host.Positions()
	}
	packed, err := p.Pack(hostPos, box, solvents, overlap)
	if err != nil {
		if errors.Is(err, errs.ErrPackingFailed) {
			return nil, fmt.Errorf("%s: %w", methodAdapt, err)
		}
		return nil, fmt.Errorf("%s: %w: %w", methodAdapt, errs.ErrPackingFailed, err)
	}
	if len(packed) != len(solvents) {
		return nil, errs.Wrapf(methodAdapt, errs.ErrPackingFailed,
			"packer returned %d solvent lists, want %d", len(packed), len(solvents))
	}

	var out []*structure.Group
	for i, s := range solvents {
		if len(packed[i]) != s.Count {
			return nil, errs.Wrapf(methodAdapt, errs.ErrPackingFailed,
				"solvent %q: packed %d of %d", s.Label, len(packed[i]), s.Count)
		}
		want := s.Template.NumAtoms()
		for j, m := range packed[i] {
			if m == nil || m.NumAtoms() != want {
				return nil, errs.Wrapf(methodAdapt, errs.ErrPackingFailed,
					"solvent %q molecule %d: wrong atom count", s.Label, j)
			}
			for _, pos := range m.Positions() {
				if !box.Contains(pos) {
					return nil, errs.Wrapf(methodAdapt, errs.ErrPackingFailed,
						"solvent %q molecule %d: atom %v outside box", s.Label, j, pos)
				}
			}
			m.Name = s.Label
			out = append(out, m)
		}
	}

	return out, nil
}
