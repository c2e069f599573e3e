// SPDX-License-Identifier: MIT
// Package: slitpore/pore
//
// surface.go — the innermost, pore-facing atomic layer.
//
// Band edges along the separation axis (world frame, before the freeze):
//   • NEAR: coord ≥ (layers−1)·c
//   • FAR:  coord ≤ (layers−1)·c + width
// A small tolerance absorbs floating-point noise; it is far below any
// realistic layer spacing.
//
// Selection is a pure function of position and preserves sheet order.

package pore

import (
	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/functional"
	"github.com/katalvlaran/slitpore/structure"
)

const (
	methodSelectSurface = "SelectSurface"

	bandTol = 1e-6
)

// SelectSurface returns the candidate sites of sheet s: its own atoms
// (functional-group children are ignored) lying in the pore-facing band.
// Complexity: O(sheet atoms).
func SelectSurface(s *Sheet, width, spacing float64, layers int) ([]functional.Site, error) {
	if s == nil || s.Group == nil {
		return nil, errs.Wrapf(methodSelectSurface, errs.ErrConfiguration, "nil sheet")
	}
	if !(width > 0) || !(spacing > 0) || layers < 1 {
		return nil, errs.Wrapf(methodSelectSurface, errs.ErrInvalidDimension,
			"width=%g spacing=%g layers=%d", width, spacing, layers)
	}

	axis := int(s.Transform.Axis)
	inner := float64(layers-1) * spacing
	normal := s.Role.Normal(s.Transform.Axis)

	keep := func(x float64) bool { return x >= inner-bandTol }
	if s.Role == Far {
		bound := inner + width
		keep = func(x float64) bool { return x <= bound+bandTol }
	}

	var out []functional.Site
	for i, a := range s.Group.Atoms {
		if keep(structure.Component(a.Pos, axis)) {
			out = append(out, functional.Site{Atom: i, Pos: a.Pos, Normal: normal})
		}
	}

	return out, nil
}
