// SPDX-License-Identifier: MIT
// Package: slitpore/pore
//
// build.go — the construction pipeline.
//
// Stages (in order, each fatal on error, no partial Pore returned):
//   1. validate: dimensions (ErrInvalidDimension), then axis, kind, lattice
//      and kind-specific inputs (ErrConfiguration), before any lattice work.
//   2. replicate: lattice.Counts + lattice.Replicate.
//   3. sheets: AssembleSheets (NEAR untranslated, FAR across the gap).
//   4. box: ComputeBox.
//   5. surface: SelectSurface on both sheets (Surface, Functionalized).
//   6. decorate: NewPlan per sheet (all quotas checked first), then Place.
//   7. freeze: translate by padding along the bulk axis, wrap into box.
//   8. solvate: solvate.Adapt against the frozen host (Solvated).

package pore

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/functional"
	"github.com/katalvlaran/slitpore/lattice"
	"github.com/katalvlaran/slitpore/logging"
	"github.com/katalvlaran/slitpore/solvate"
	"github.com/katalvlaran/slitpore/structure"
)

const methodBuild = "Build"

// Params are the geometric inputs of a pore.
type Params struct {
	// Length is the sheet size along the bulk in-plane axis (pore_length).
	Length float64
	// Side is the sheet size along the other in-plane axis (side_dim).
	Side float64
	// Layers is the number of stacked lattice layers per sheet (n_sheets).
	Layers int
	// Width is the gap between the facing atomic planes (pore_width).
	Width float64
	// Axis is the separation axis (slit_pore_dim).
	Axis Axis
	// Padding is the bulk reservoir added on both sides of the bulk axis
	// (x_bulk).
	Padding float64
	// Kind selects the optional stages.
	Kind Kind
}

// Validate checks dimensions first, then axis and kind.
func (p Params) Validate() error {
	switch {
	case !(p.Length > 0) || math.IsInf(p.Length, 1):
		return errs.Wrapf(methodBuild, errs.ErrInvalidDimension, "pore_length=%g", p.Length)
	case !(p.Side > 0) || math.IsInf(p.Side, 1):
		return errs.Wrapf(methodBuild, errs.ErrInvalidDimension, "side_dim=%g", p.Side)
	case p.Layers < 1:
		return errs.Wrapf(methodBuild, errs.ErrInvalidDimension, "n_sheets=%d", p.Layers)
	case !(p.Width > 0) || math.IsInf(p.Width, 1):
		return errs.Wrapf(methodBuild, errs.ErrInvalidDimension, "pore_width=%g", p.Width)
	case !(p.Padding >= 0) || math.IsInf(p.Padding, 1):
		return errs.Wrapf(methodBuild, errs.ErrInvalidDimension, "x_bulk=%g", p.Padding)
	}
	if !p.Axis.Valid() {
		return errs.Wrapf(methodBuild, errs.ErrConfiguration, "slit_pore_dim=%d not in {0,1,2}", int(p.Axis))
	}
	return p.Kind.Validate()
}

// Build constructs a pore. Identical Params, options and seed give
// bit-identical results.
// Complexity: O(atoms) plus packing cost for solvated kinds.
func Build(p Params, opts ...Option) (*Pore, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cfg := newBuildConfig(opts...)
	if err := cfg.validate(p.Kind); err != nil {
		return nil, err
	}
	log := cfg.logger.Named("pore").With(logging.String("kind", p.Kind.String()))

	nx, ny, err := lattice.Counts(cfg.lattice, p.Length, p.Side)
	if err != nil {
		return nil, err
	}
	rep, err := lattice.Replicate(cfg.lattice, nx, ny, p.Layers)
	if err != nil {
		return nil, err
	}
	log.Debug("lattice replicated",
		logging.Int("nx", nx), logging.Int("ny", ny), logging.Int("layers", p.Layers),
		logging.Int("atoms", len(rep.Atoms)))

	near, far, err := AssembleSheets(rep, p.Axis, p.Width)
	if err != nil {
		return nil, err
	}
	box, err := ComputeBox(rep, p.Axis, p.Width, p.Padding)
	if err != nil {
		return nil, err
	}
	log.Debug("sheets assembled",
		logging.String("axis", p.Axis.String()),
		logging.Float64("far_offset", FarOffset(rep, p.Width)),
		logging.Any("box", box.Lengths))

	out := &Pore{
		Kind:   p.Kind,
		Params: p,
		Counts: [3]int{nx, ny, p.Layers},
		Box:    box,
		Near:   near,
		Far:    far,
	}

	if p.Kind.Has(KindSurface) || p.Kind.Has(KindFunctionalized) {
		out.Sites = make(map[Role][]functional.Site, 2)
		for _, s := range out.Sheets() {
			sites, err := SelectSurface(s, p.Width, rep.LayerSpacing(), p.Layers)
			if err != nil {
				return nil, err
			}
			out.Sites[s.Role] = sites
			log.Debug("surface selected", logging.String("sheet", s.Role.String()), logging.Int("sites", len(sites)))
		}
	}

	if p.Kind.Has(KindFunctionalized) {
		if err := decorate(out, cfg, log); err != nil {
			return nil, err
		}
	}

	out.freeze()

	if p.Kind.Has(KindSolvated) {
		host := structure.NewGroup("host")
		host.AddChild(out.Near.Group)
		host.AddChild(out.Far.Group)
		mols, err := solvate.Adapt(cfg.packer, host, out.Box, cfg.solvents, cfg.overlap)
		if err != nil {
			return nil, err
		}
		out.Solvent = mols
		log.Debug("solvent packed", logging.Int("molecules", len(mols)))
	}

	return out, nil
}

// validate checks the kind-specific inputs before any geometric work.
func (c buildConfig) validate(k Kind) error {
	if err := c.lattice.Validate(); err != nil {
		return err
	}
	if k.Has(KindFunctionalized) {
		if len(c.templates) == 0 {
			return errs.Wrapf(methodBuild, errs.ErrConfiguration, "functionalized pore without templates")
		}
		if err := functional.Validate(c.templates); err != nil {
			return err
		}
	} else if len(c.templates) > 0 {
		return errs.Wrapf(methodBuild, errs.ErrConfiguration, "templates given for kind %s", k)
	}
	if k.Has(KindSolvated) {
		if err := solvate.Validate(c.solvents, c.packer); err != nil {
			return err
		}
	} else if len(c.solvents) > 0 {
		return errs.Wrapf(methodBuild, errs.ErrConfiguration, "solvents given for kind %s", k)
	}
	return nil
}

// decorate plans both sheets (quotas first) and then places the templates.
func decorate(p *Pore, cfg buildConfig, log logging.Logger) error {
	sheets := p.Sheets()
	plans := make([]functional.Plan, len(sheets))
	for i, s := range sheets {
		plan, err := functional.NewPlan(len(p.Sites[s.Role]), cfg.templates, cfg.rng)
		if err != nil {
			return err
		}
		plans[i] = plan
	}

	p.Placements = make(map[Role][]functional.Placement, len(sheets))
	for i, s := range sheets {
		placed, err := functional.Place(s.Group, p.Sites[s.Role], cfg.templates, plans[i], cfg.bondLength)
		if err != nil {
			return err
		}
		p.Placements[s.Role] = placed
		log.Debug("sheet functionalized",
			logging.String("sheet", s.Role.String()),
			logging.Int("candidates", len(p.Sites[s.Role])),
			logging.Int("placed", len(placed)))
	}
	return nil
}

// freeze moves every atom into box coordinates: shift by the padding along
// the bulk axis, then wrap into [0, L). Candidate sites follow their atoms.
func (p *Pore) freeze() {
	shift := structure.WithComponent(r3.Vec{}, int(p.Params.Axis.Bulk()), p.Params.Padding)
	for _, s := range p.Sheets() {
		s.Group.Apply(func(v r3.Vec) r3.Vec { return p.Box.Wrap(r3.Add(v, shift)) })
		sites := p.Sites[s.Role]
		for i := range sites {
			sites[i].Pos = s.Group.Atoms[sites[i].Atom].Pos
		}
	}
}
