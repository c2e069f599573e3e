// SPDX-License-Identifier: MIT
// Package: slitpore/pore
//
// options.go — functional options for Build and their deterministic defaults.
//
// Defaults:
//   • lattice    = lattice.Graphene()
//   • seed       = functional.DefaultSeed (fresh RNG per Build call)
//   • packer     = solvate.NewRandomPacker seeded with the same seed
//   • overlap    = solvate.DefaultOverlap (0.2 nm)
//   • bondLength = functional.DefaultBondLength (0.15 nm)
//   • logger     = logging.NewNopLogger()
//
// Option constructors panic on programmer error; Build itself never panics.

package pore

import (
	"math/rand"

	"github.com/katalvlaran/slitpore/functional"
	"github.com/katalvlaran/slitpore/lattice"
	"github.com/katalvlaran/slitpore/logging"
	"github.com/katalvlaran/slitpore/solvate"
)

// Option customizes Build.
type Option func(*buildConfig)

// buildConfig is resolved once per Build and passed by value.
type buildConfig struct {
	lattice    lattice.Spec
	seed       int64
	rng        *rand.Rand
	templates  []functional.Template
	solvents   []solvate.Solvent
	packer     solvate.Packer
	overlap    float64
	bondLength float64
	logger     logging.Logger
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		lattice:    lattice.Graphene(),
		seed:       functional.DefaultSeed,
		overlap:    solvate.DefaultOverlap,
		bondLength: functional.DefaultBondLength,
		logger:     logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = functional.NewRand(cfg.seed)
	}
	if cfg.packer == nil {
		cfg.packer = solvate.NewRandomPacker(solvate.WithSeed(cfg.seed))
	}
	return cfg
}

// WithLattice replaces the graphene default. The lattice is validated by Build.
func WithLattice(s lattice.Spec) Option {
	return func(c *buildConfig) { c.lattice = s }
}

// WithSeed fixes the seed of the site shuffle and of the default packer.
// Seed 0 maps to functional.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *buildConfig) {
		if seed == 0 {
			seed = functional.DefaultSeed
		}
		c.seed = seed
	}
}

// WithRand injects the RNG used for the site shuffle. Panics on nil.
// The RNG is consumed by the call; do not share it between goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pore: WithRand(nil)")
	}
	return func(c *buildConfig) { c.rng = r }
}

// WithTemplates sets the functional-group templates, in quota order.
func WithTemplates(ts ...functional.Template) Option {
	cp := append([]functional.Template(nil), ts...)
	return func(c *buildConfig) { c.templates = cp }
}

// WithSolvents sets the ordered solvent list.
func WithSolvents(ss ...solvate.Solvent) Option {
	cp := append([]solvate.Solvent(nil), ss...)
	return func(c *buildConfig) { c.solvents = cp }
}

// WithPacker replaces the default RandomPacker. Panics on nil.
func WithPacker(p solvate.Packer) Option {
	if p == nil {
		panic("pore: WithPacker(nil)")
	}
	return func(c *buildConfig) { c.packer = p }
}

// WithOverlap sets the solvent non-overlap distance. Panics if d < 0.
func WithOverlap(d float64) Option {
	if !(d >= 0) {
		panic("pore: WithOverlap(d<0)")
	}
	return func(c *buildConfig) { c.overlap = d }
}

// WithBondLength sets the site-to-anchor distance. Panics if d <= 0.
func WithBondLength(d float64) Option {
	if !(d > 0) {
		panic("pore: WithBondLength(d<=0)")
	}
	return func(c *buildConfig) { c.bondLength = d }
}

// WithLogger routes stage logs (Debug only) to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("pore: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.logger = l }
}
