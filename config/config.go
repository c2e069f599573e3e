// SPDX-License-Identifier: MIT
// Package: slitpore/config
//
// config.go — recipe schema, defaults, validation and conversion.

package config

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/functional"
	"github.com/katalvlaran/slitpore/lattice"
	"github.com/katalvlaran/slitpore/logging"
	"github.com/katalvlaran/slitpore/pore"
	"github.com/katalvlaran/slitpore/solvate"
	"github.com/katalvlaran/slitpore/structure"
)

const methodValidate = "config.Validate"

// Defaults applied to unset keys.
const (
	DefaultSlitPoreDim = int(pore.AxisZ)
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// Atom is one atom of a molecule template, in nm.
type Atom struct {
	Element string     `mapstructure:"element"`
	Pos     [3]float64 `mapstructure:"pos"`
}

// Molecule is a rigid template: a functional group or a solvent.
type Molecule struct {
	Name  string   `mapstructure:"name"`
	Atoms []Atom   `mapstructure:"atoms"`
	Bonds [][2]int `mapstructure:"bonds"`
	// Anchor is the atom bonded to the host (functional groups only).
	Anchor int `mapstructure:"anchor"`
}

// BasisPoint is one fractional basis position of a custom lattice.
type BasisPoint struct {
	Element string     `mapstructure:"element"`
	Frac    [3]float64 `mapstructure:"frac"`
}

// Lattice describes a custom unit cell; absent means graphene.
type Lattice struct {
	Spacing [3]float64   `mapstructure:"spacing"`
	Angles  [3]float64   `mapstructure:"angles"`
	Basis   []BasisPoint `mapstructure:"basis"`
}

// Config is one pore recipe.
type Config struct {
	PoreLength float64 `mapstructure:"pore_length"`
	PoreDepth  float64 `mapstructure:"pore_depth"`
	XSheet     float64 `mapstructure:"x_sheet"`
	SideDim    float64 `mapstructure:"side_dim"`
	YSheet     float64 `mapstructure:"y_sheet"`

	NSheets     int     `mapstructure:"n_sheets"`
	PoreWidth   float64 `mapstructure:"pore_width"`
	SlitPoreDim int     `mapstructure:"slit_pore_dim"`
	XBulk       float64 `mapstructure:"x_bulk"`

	Solvent  []Molecule `mapstructure:"solvent"`
	NSolvent []int      `mapstructure:"n_solvent"`

	FuncGroups  []Molecule   `mapstructure:"func_groups"`
	FuncPercent []float64    `mapstructure:"func_percent"`
	FuncPorts   [][3]float64 `mapstructure:"func_ports"`

	Kind       string   `mapstructure:"kind"`
	Seed       int64    `mapstructure:"seed"`
	Overlap    *float64 `mapstructure:"overlap"`
	BondLength float64  `mapstructure:"bond_length"`
	Lattice    *Lattice `mapstructure:"lattice"`

	Log logging.Config `mapstructure:"log"`
}

// ApplyDefaults fills unset optional fields. Geometric sizes have no
// defaults: a missing size is an invalid dimension. Overlap is a pointer so
// that an explicit 0 survives.
func ApplyDefaults(c *Config) {
	if c.Overlap == nil {
		d := solvate.DefaultOverlap
		c.Overlap = &d
	}
	if c.BondLength == 0 {
		c.BondLength = functional.DefaultBondLength
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate checks aliases, list arities and the kind. Dimensions are left
// to pore.Build so that they surface as ErrInvalidDimension from one place.
func (c *Config) Validate() error {
	if _, err := c.length(); err != nil {
		return err
	}
	if _, err := c.side(); err != nil {
		return err
	}
	if n := len(c.FuncGroups); len(c.FuncPercent) != n || len(c.FuncPorts) != n {
		return errs.Wrapf(methodValidate, errs.ErrConfiguration,
			"func_groups=%d func_percent=%d func_ports=%d must match",
			n, len(c.FuncPercent), len(c.FuncPorts))
	}
	if len(c.NSolvent) != len(c.Solvent) {
		return errs.Wrapf(methodValidate, errs.ErrConfiguration,
			"solvent=%d n_solvent=%d must match", len(c.Solvent), len(c.NSolvent))
	}
	if c.Overlap != nil && !(*c.Overlap >= 0) {
		return errs.Wrapf(methodValidate, errs.ErrInvalidDimension, "overlap=%g", *c.Overlap)
	}
	if c.BondLength < 0 {
		return errs.Wrapf(methodValidate, errs.ErrInvalidDimension, "bond_length=%g", c.BondLength)
	}
	_, err := c.ResolveKind()
	return err
}

// ResolveKind parses kind, or infers it from the lists when kind is unset:
// functionalized when func_groups is given, solvated when solvent is given.
func (c *Config) ResolveKind() (pore.Kind, error) {
	if c.Kind != "" {
		return pore.ParseKind(c.Kind)
	}
	k := pore.KindBasic
	if len(c.FuncGroups) > 0 {
		k |= pore.KindFunctionalized
	}
	if len(c.Solvent) > 0 {
		k |= pore.KindSolvated
	}
	return k, nil
}

// Params converts the recipe into build parameters.
func (c *Config) Params() (pore.Params, error) {
	length, err := c.length()
	if err != nil {
		return pore.Params{}, err
	}
	side, err := c.side()
	if err != nil {
		return pore.Params{}, err
	}
	kind, err := c.ResolveKind()
	if err != nil {
		return pore.Params{}, err
	}
	return pore.Params{
		Length:  length,
		Side:    side,
		Layers:  c.NSheets,
		Width:   c.PoreWidth,
		Axis:    pore.Axis(c.SlitPoreDim),
		Padding: c.XBulk,
		Kind:    kind,
	}, nil
}

// Options converts templates, solvents, lattice and knobs into build
// options. The logger is left to the caller.
func (c *Config) Options() ([]pore.Option, error) {
	opts := []pore.Option{pore.WithSeed(c.Seed)}
	if c.Overlap != nil {
		if !(*c.Overlap >= 0) {
			return nil, errs.Wrapf("config.Options", errs.ErrInvalidDimension, "overlap=%g", *c.Overlap)
		}
		opts = append(opts, pore.WithOverlap(*c.Overlap))
	}
	if c.BondLength > 0 {
		opts = append(opts, pore.WithBondLength(c.BondLength))
	}
	if c.Lattice != nil {
		opts = append(opts, pore.WithLattice(c.Lattice.Spec()))
	}

	if len(c.FuncGroups) > 0 {
		ts, err := c.templates()
		if err != nil {
			return nil, err
		}
		opts = append(opts, pore.WithTemplates(ts...))
	}
	if len(c.Solvent) > 0 {
		ss := make([]solvate.Solvent, len(c.Solvent))
		for i, m := range c.Solvent {
			ss[i] = solvate.Solvent{Label: m.Name, Template: m.Group(), Count: c.NSolvent[i]}
		}
		opts = append(opts, pore.WithSolvents(ss...))
	}

	return opts, nil
}

func (c *Config) templates() ([]functional.Template, error) {
	groups := make([]*structure.Group, len(c.FuncGroups))
	dirs := make([]r3.Vec, len(c.FuncPorts))
	for i, m := range c.FuncGroups {
		groups[i] = m.Group()
	}
	for i, p := range c.FuncPorts {
		dirs[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	ts, err := functional.Templates(groups, c.FuncPercent, dirs)
	if err != nil {
		return nil, err
	}
	for i, m := range c.FuncGroups {
		ts[i].Anchor = m.Anchor
	}
	return ts, functional.Validate(ts)
}

// Group builds the structure group of m.
func (m Molecule) Group() *structure.Group {
	g := structure.NewGroup(m.Name)
	for _, a := range m.Atoms {
		g.AddAtom(a.Element, r3.Vec{X: a.Pos[0], Y: a.Pos[1], Z: a.Pos[2]})
	}
	for _, b := range m.Bonds {
		g.AddBond(b[0], b[1])
	}
	return g
}

// Spec converts l into a lattice spec.
func (l Lattice) Spec() lattice.Spec {
	s := lattice.Spec{
		Spacing: l.Spacing,
		Angles:  l.Angles,
		Basis:   make(map[string][][3]float64),
	}
	for _, b := range l.Basis {
		s.Basis[b.Element] = append(s.Basis[b.Element], b.Frac)
	}
	return s
}

// depthIsSide reports whether pore_depth names the side size: both
// pore_length and pore_depth are set and neither side_dim nor y_sheet is.
func (c *Config) depthIsSide() bool {
	return c.PoreLength != 0 && c.PoreDepth != 0 && c.SideDim == 0 && c.YSheet == 0
}

// length resolves pore_length, x_sheet and, unless it names the side,
// pore_depth.
func (c *Config) length() (float64, error) {
	if c.depthIsSide() {
		return alias("pore_length", []string{"pore_length", "x_sheet"},
			[]float64{c.PoreLength, c.XSheet})
	}
	return alias("pore_length", []string{"pore_length", "pore_depth", "x_sheet"},
		[]float64{c.PoreLength, c.PoreDepth, c.XSheet})
}

// side resolves side_dim and y_sheet, falling back to pore_depth when it
// is paired with pore_length.
func (c *Config) side() (float64, error) {
	if c.depthIsSide() {
		return c.PoreDepth, nil
	}
	return alias("side_dim", []string{"side_dim", "y_sheet"}, []float64{c.SideDim, c.YSheet})
}

// alias returns the single non-zero value among vals. Zero means unset;
// two different non-zero values are a configuration error.
func alias(what string, names []string, vals []float64) (float64, error) {
	var (
		got  float64
		from string
	)
	for i, v := range vals {
		if v == 0 {
			continue
		}
		if from != "" && v != got {
			return 0, errs.Wrapf(methodValidate, errs.ErrConfiguration,
				"%s: %s=%g conflicts with %s=%g", what, from, got, names[i], v)
		}
		got, from = v, names[i]
	}
	return got, nil
}
