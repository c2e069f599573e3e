// SPDX-License-Identifier: MIT
// Package: slitpore/solvate
//
// random.go — RandomPacker: random sequential insertion.
//
// Algorithm:
//   • Host atoms seed a kd-tree.
//   • For each solvent in order, for each requested molecule, draw up to
//     attempts random poses (uniform centre in the box, random axis, random
//     angle). A pose is accepted when every atom lies inside the box and its
//     nearest neighbour in the tree, over the periodic images within reach,
//     is at least overlap away. Accepted atoms are inserted into the tree.
//   • Exhausting the attempts for one molecule is ErrPackingFailed.
//
// Determinism:
//   • All draws come from the packer's own *rand.Rand, in a fixed order.
//
// Complexity:
//   • Expected O(M·A·k·log N) for M molecules, A attempts, k atoms per
//     molecule, N atoms in the tree.

package solvate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/structure"
)

const (
	methodPack = "RandomPacker.Pack"

	// DefaultAttempts bounds the random poses tried per molecule.
	DefaultAttempts = 10000
	defaultSeed     = int64(1)
)

// RandomPacker is the reference Packer.
type RandomPacker struct {
	rng      *rand.Rand
	attempts int
	maxKinds int
}

// PackerOption customizes a RandomPacker.
type PackerOption func(*RandomPacker)

// WithRand provides the RNG. Panics on nil.
func WithRand(r *rand.Rand) PackerOption {
	if r == nil {
		panic("solvate: WithRand(nil)")
	}
	return func(p *RandomPacker) { p.rng = r }
}

// WithSeed seeds a fresh RNG.
func WithSeed(seed int64) PackerOption {
	return func(p *RandomPacker) { p.rng = rand.New(rand.NewSource(seed)) }
}

// WithAttempts sets the per-molecule attempt budget. Panics if n < 1.
func WithAttempts(n int) PackerOption {
	if n < 1 {
		panic("solvate: WithAttempts(n<1)")
	}
	return func(p *RandomPacker) { p.attempts = n }
}

// WithMaxKinds limits the number of distinct solvents (0 = unlimited).
// Panics if n < 0.
func WithMaxKinds(n int) PackerOption {
	if n < 0 {
		panic("solvate: WithMaxKinds(n<0)")
	}
	return func(p *RandomPacker) { p.maxKinds = n }
}

// NewRandomPacker returns a packer with deterministic defaults: seed 1,
// DefaultAttempts, unlimited kinds.
func NewRandomPacker(opts ...PackerOption) *RandomPacker {
	p := &RandomPacker{
		rng:      rand.New(rand.NewSource(defaultSeed)),
		attempts: DefaultAttempts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MaxKinds implements KindLimiter.
func (p *RandomPacker) MaxKinds() int { return p.maxKinds }

// Pack implements Packer.
func (p *RandomPacker) Pack(host []r3.Vec, box structure.Box, solvents []Solvent, overlap float64) ([][]*structure.Group, error) {
	tree := &kdtree.Tree{}
	if len(host) > 0 {
		pts := make(kdtree.Points, len(host))
		for i, h := range host {
			pts[i] = kdtree.Point{h.X, h.Y, h.Z}
		}
		tree = kdtree.New(pts, false)
	}

	out := make([][]*structure.Group, len(solvents))
	for si, s := range solvents {
		local, err := centered(s.Template)
		if err != nil {
			return nil, errs.Wrapf(methodPack, errs.ErrPackingFailed, "solvent %q: empty template", s.Label)
		}
		out[si] = make([]*structure.Group, 0, s.Count)
		for m := 0; m < s.Count; m++ {
			g, ok := p.insert(tree, local, box, overlap)
			if !ok {
				return nil, errs.Wrapf(methodPack, errs.ErrPackingFailed,
					"solvent %q: placed %d of %d after %d attempts", s.Label, m, s.Count, p.attempts)
			}
			out[si] = append(out[si], g)
		}
	}

	return out, nil
}

// insert tries random poses of local until one fits, then records its atoms.
func (p *RandomPacker) insert(tree *kdtree.Tree, local *structure.Group, box structure.Box, overlap float64) (*structure.Group, bool) {
	for a := 0; a < p.attempts; a++ {
		rot := r3.NewRotation(2*math.Pi*p.rng.Float64(), p.randomAxis())
		centre := r3.Vec{
			X: p.rng.Float64() * box.Lengths.X,
			Y: p.rng.Float64() * box.Lengths.Y,
			Z: p.rng.Float64() * box.Lengths.Z,
		}

		g := local.Clone()
		g.Apply(func(v r3.Vec) r3.Vec { return r3.Add(rot.Rotate(v), centre) })
		if !fits(tree, g, box, overlap) {
			continue
		}
		for _, v := range g.Positions() {
			tree.Insert(kdtree.Point{v.X, v.Y, v.Z}, false)
		}
		return g, true
	}

	return nil, false
}

// randomAxis draws a direction uniformly on the unit sphere.
func (p *RandomPacker) randomAxis() r3.Vec {
	for {
		v := r3.Vec{X: p.rng.NormFloat64(), Y: p.rng.NormFloat64(), Z: p.rng.NormFloat64()}
		if n := r3.Norm(v); n > 1e-12 {
			return r3.Scale(1/n, v)
		}
	}
}

// fits reports whether every atom of g is in the box and at least overlap
// away from every atom in the tree, periodic images included.
func fits(tree *kdtree.Tree, g *structure.Group, box structure.Box, overlap float64) bool {
	minSq := overlap * overlap
	for _, v := range g.Positions() {
		if !box.Contains(v) {
			return false
		}
		for _, img := range images(v, box, overlap) {
			if _, d := tree.Nearest(kdtree.Point{img.X, img.Y, img.Z}); d < minSq {
				return false
			}
		}
	}
	return true
}

// images returns v plus its periodic copies across every box face closer
// than overlap. Valid while overlap < L/2 on each axis.
func images(v r3.Vec, box structure.Box, overlap float64) []r3.Vec {
	out := []r3.Vec{v}
	for i := 0; i < 3; i++ {
		x := structure.Component(v, i)
		l := structure.Component(box.Lengths, i)
		var shift float64
		switch {
		case x < overlap:
			shift = l
		case x >= l-overlap:
			shift = -l
		default:
			continue
		}
		n := len(out)
		for _, w := range out[:n] {
			out = append(out, structure.WithComponent(w, i, structure.Component(w, i)+shift))
		}
	}
	return out
}

// centered returns a copy of t translated so its centroid is the origin.
func centered(t *structure.Group) (*structure.Group, error) {
	c, ok := t.Centroid()
	if !ok {
		return nil, errs.ErrPackingFailed
	}
	g := t.Clone()
	g.Translate(r3.Scale(-1, c))
	return g, nil
}
