package solvate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/solvate"
	"github.com/katalvlaran/slitpore/structure"
)

func atom(label, el string, n int) solvate.Solvent {
	g := structure.NewGroup(label)
	g.AddAtom(el, r3.Vec{})
	return solvate.Solvent{Label: label, Template: g, Count: n}
}

func water(n int) solvate.Solvent {
	g := structure.NewGroup("SOL")
	g.AddAtom("O", r3.Vec{})
	g.AddAtom("H", r3.Vec{X: 0.09572})
	g.AddAtom("H", r3.Vec{X: -0.024, Y: 0.0927})
	g.AddBond(0, 1)
	g.AddBond(0, 2)
	return solvate.Solvent{Label: "SOL", Template: g, Count: n}
}

func cube(l float64) structure.Box {
	return structure.NewBox(r3.Vec{X: l, Y: l, Z: l})
}

// wall is a plane of host atoms at z=0.5 spaced 0.25 apart.
func wall() *structure.Group {
	g := structure.NewGroup("wall")
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			g.AddAtom("C", r3.Vec{X: 0.25 * float64(i), Y: 0.25 * float64(j), Z: 0.5})
		}
	}
	return g
}

// minImage is the minimum-image distance between a and b in box.
func minImage(a, b r3.Vec, box structure.Box) float64 {
	d := r3.Sub(a, b)
	d.X -= box.Lengths.X * math.Round(d.X/box.Lengths.X)
	d.Y -= box.Lengths.Y * math.Round(d.Y/box.Lengths.Y)
	d.Z -= box.Lengths.Z * math.Round(d.Z/box.Lengths.Z)
	return r3.Norm(d)
}

type stubPacker struct {
	out  [][]*structure.Group
	err  error
	max  int
	seen []solvate.Solvent
}

func (s *stubPacker) Pack(_ []r3.Vec, _ structure.Box, solvents []solvate.Solvent, _ float64) ([][]*structure.Group, error) {
	s.seen = solvents
	return s.out, s.err
}

func (s *stubPacker) MaxKinds() int { return s.max }

func TestValidate(t *testing.T) {
	p := solvate.NewRandomPacker()
	cases := []struct {
		name     string
		solvents []solvate.Solvent
	}{
		{"Empty", nil},
		{"NoLabel", []solvate.Solvent{atom("", "Ar", 1)}},
		{"DuplicateLabel", []solvate.Solvent{atom("AR", "Ar", 1), atom("AR", "Ar", 2)}},
		{"ZeroCount", []solvate.Solvent{atom("AR", "Ar", 0)}},
		{"NilTemplate", []solvate.Solvent{{Label: "AR", Count: 1}}},
		{"EmptyTemplate", []solvate.Solvent{{Label: "AR", Template: structure.NewGroup("AR"), Count: 1}}},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, solvate.Validate(tc.solvents, p), errs.ErrConfiguration, tc.name)
	}
	assert.ErrorIs(t, solvate.Validate([]solvate.Solvent{atom("AR", "Ar", 1)}, nil), errs.ErrConfiguration)
	assert.NoError(t, solvate.Validate([]solvate.Solvent{atom("AR", "Ar", 1), water(2)}, p))
}

func TestValidate_MaxKinds(t *testing.T) {
	two := []solvate.Solvent{atom("AR", "Ar", 1), atom("NE", "Ne", 1)}
	assert.ErrorIs(t, solvate.Validate(two, solvate.NewRandomPacker(solvate.WithMaxKinds(1))), errs.ErrConfiguration)
	assert.NoError(t, solvate.Validate(two, solvate.NewRandomPacker(solvate.WithMaxKinds(2))))
	assert.NoError(t, solvate.Validate(two, &stubPacker{}))
}

func TestAdapt_PacksAndTags(t *testing.T) {
	host := wall()
	box := cube(2)
	solvents := []solvate.Solvent{atom("AR", "Ar", 10), water(5)}

	mols, err := solvate.Adapt(solvate.NewRandomPacker(solvate.WithSeed(3)), host, box, solvents, 0.2)
	require.NoError(t, err)
	require.Len(t, mols, 15)

	var all []r3.Vec
	for i, m := range mols {
		if i < 10 {
			assert.Equal(t, "AR", m.Name)
			assert.Equal(t, 1, m.NumAtoms())
		} else {
			assert.Equal(t, "SOL", m.Name)
			assert.Equal(t, 3, m.NumAtoms())
			assert.Len(t, m.Bonds, 2)
		}
		for _, p := range m.Positions() {
			require.True(t, box.Contains(p), "%v outside box", p)
			for _, h := range host.Positions() {
				require.GreaterOrEqual(t, r3.Norm(r3.Sub(p, h)), 0.2)
			}
		}
		all = append(all, m.Positions()...)
	}

	// Atoms of distinct molecules keep the overlap distance.
	owner := make([]int, 0, len(all))
	for i, m := range mols {
		for range m.Atoms {
			owner = append(owner, i)
		}
	}
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if owner[i] != owner[j] {
				require.GreaterOrEqual(t, r3.Norm(r3.Sub(all[i], all[j])), 0.2)
			}
		}
	}
}

func TestAdapt_OverlapAcrossPeriodicFaces(t *testing.T) {
	// Host plane hugging the low z face; its images sit just above the high face.
	host := structure.NewGroup("wall")
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			host.AddAtom("C", r3.Vec{X: 0.25*float64(i) + 0.02, Y: 0.25*float64(j) + 0.02, Z: 0.05})
		}
	}
	box := cube(2)

	mols, err := solvate.Adapt(solvate.NewRandomPacker(solvate.WithSeed(11)), host, box,
		[]solvate.Solvent{atom("AR", "Ar", 120)}, 0.2)
	require.NoError(t, err)
	require.Len(t, mols, 120)

	var placed []r3.Vec
	for _, m := range mols {
		placed = append(placed, m.Positions()...)
	}
	for i, p := range placed {
		for _, h := range host.Positions() {
			require.GreaterOrEqual(t, minImage(p, h, box), 0.2, "solvent %v too close to host %v", p, h)
		}
		for _, q := range placed[i+1:] {
			require.GreaterOrEqual(t, minImage(p, q, box), 0.2, "solvent %v too close to %v", p, q)
		}
	}
}

func TestAdapt_TemplateIsRigid(t *testing.T) {
	s := water(3)
	mols, err := solvate.Adapt(solvate.NewRandomPacker(), nil, cube(3), []solvate.Solvent{s}, 0.2)
	require.NoError(t, err)
	for _, m := range mols {
		assert.InDelta(t, 0.09572, r3.Norm(r3.Sub(m.Atoms[1].Pos, m.Atoms[0].Pos)), 1e-9)
		assert.InDelta(t, r3.Norm(r3.Vec{X: -0.024, Y: 0.0927}), r3.Norm(r3.Sub(m.Atoms[2].Pos, m.Atoms[0].Pos)), 1e-9)
	}
	assert.Equal(t, r3.Vec{X: 0.09572}, s.Template.Atoms[1].Pos, "template must not be mutated")
}

func TestAdapt_Deterministic(t *testing.T) {
	run := func() []r3.Vec {
		mols, err := solvate.Adapt(solvate.NewRandomPacker(solvate.WithSeed(8)), wall(), cube(2),
			[]solvate.Solvent{water(4)}, 0.2)
		require.NoError(t, err)
		var out []r3.Vec
		for _, m := range mols {
			out = append(out, m.Positions()...)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestAdapt_PackingFailed(t *testing.T) {
	// Two atoms 0.6 apart do not fit in a 0.3 nm cube (diagonal ≈ 0.52).
	p := solvate.NewRandomPacker(solvate.WithAttempts(200))
	_, err := solvate.Adapt(p, nil, cube(0.3), []solvate.Solvent{atom("AR", "Ar", 2)}, 0.6)
	assert.ErrorIs(t, err, errs.ErrPackingFailed)

	_, err = solvate.Adapt(&stubPacker{err: errors.New("external packer crashed")}, nil, cube(1),
		[]solvate.Solvent{atom("AR", "Ar", 1)}, 0.2)
	assert.ErrorIs(t, err, errs.ErrPackingFailed)
	assert.Contains(t, err.Error(), "external packer crashed")
}

func TestAdapt_VerifiesPackerOutput(t *testing.T) {
	solvents := []solvate.Solvent{atom("AR", "Ar", 1)}
	outside := structure.NewGroup("x")
	outside.AddAtom("Ar", r3.Vec{X: 5})
	inside := structure.NewGroup("x")
	inside.AddAtom("Ar", r3.Vec{X: 0.5, Y: 0.5, Z: 0.5})

	cases := map[string][][]*structure.Group{
		"MissingSolvent": {},
		"ShortCount":     {{}},
		"OutsideBox":     {{outside}},
		"NilMolecule":    {{nil}},
	}
	for name, out := range cases {
		_, err := solvate.Adapt(&stubPacker{out: out}, nil, cube(1), solvents, 0.2)
		assert.ErrorIs(t, err, errs.ErrPackingFailed, name)
	}

	mols, err := solvate.Adapt(&stubPacker{out: [][]*structure.Group{{inside}}}, nil, cube(1), solvents, 0.2)
	require.NoError(t, err)
	assert.Equal(t, "AR", mols[0].Name)
}

func TestAdapt_NegativeOverlap(t *testing.T) {
	_, err := solvate.Adapt(solvate.NewRandomPacker(), nil, cube(1), []solvate.Solvent{atom("AR", "Ar", 1)}, -0.1)
	assert.ErrorIs(t, err, errs.ErrInvalidDimension)
}

func TestPackerOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { solvate.WithRand(nil) })
	assert.Panics(t, func() { solvate.WithAttempts(0) })
	assert.Panics(t, func() { solvate.WithMaxKinds(-1) })
	assert.Equal(t, 0, solvate.NewRandomPacker().MaxKinds())
}
