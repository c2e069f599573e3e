package functional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/errs"
	"github.com/katalvlaran/slitpore/functional"
	"github.com/katalvlaran/slitpore/structure"
)

const tol = 1e-9

// hydroxyl is an O–H fragment bonded through O; its attachment direction
// points along +y in the local frame, H sits on the opposite side.
func hydroxyl(coverage float64) functional.Template {
	g := structure.NewGroup("OH")
	o := g.AddAtom("O", r3.Vec{})
	h := g.AddAtom("H", r3.Vec{Y: -0.1})
	g.AddBond(o, h)
	return functional.Template{Name: "OH", Group: g, Anchor: o, Direction: r3.Vec{Y: 1}, Coverage: coverage}
}

// flatHost is a row of n carbons along x at z=0 with +z outward normals.
func flatHost(n int) (*structure.Group, []functional.Site) {
	g := structure.NewGroup("TOP")
	sites := make([]functional.Site, n)
	for i := 0; i < n; i++ {
		pos := r3.Vec{X: 0.2 * float64(i)}
		sites[i] = functional.Site{Atom: g.AddAtom("C", pos), Pos: pos, Normal: r3.Vec{Z: 1}}
	}
	return g, sites
}

func TestAttach_Geometry(t *testing.T) {
	normals := []r3.Vec{{Z: 1}, {Z: -1}, {X: 1}, {Y: -1}, {Y: 1}}
	for _, n := range normals {
		site := functional.Site{Pos: r3.Vec{X: 1, Y: 2, Z: 3}, Normal: n}
		g := functional.Attach(hydroxyl(1), site, 0.15)

		require.Equal(t, "OH", g.Name)
		// Anchor lands one bond length out along the normal.
		want := r3.Add(site.Pos, r3.Scale(0.15, n))
		assert.InDelta(t, 0, r3.Norm(r3.Sub(g.Atoms[0].Pos, want)), tol, "normal %v", n)
		// The hydrogen points further into the pore.
		h := r3.Sub(g.Atoms[1].Pos, g.Atoms[0].Pos)
		assert.InDelta(t, 0.1, r3.Dot(h, n), tol, "normal %v", n)
		// Bonds travel with the copy.
		assert.Equal(t, []structure.Bond{{I: 0, J: 1}}, g.Bonds)
	}
}

func TestAttach_TemplateUntouched(t *testing.T) {
	tpl := hydroxyl(1)
	_ = functional.Attach(tpl, functional.Site{Pos: r3.Vec{X: 5}, Normal: r3.Vec{Z: 1}}, 0.15)
	assert.Equal(t, r3.Vec{}, tpl.Group.Atoms[0].Pos)
	assert.Equal(t, r3.Vec{Y: -0.1}, tpl.Group.Atoms[1].Pos)
}

func TestPlace_AppendsChildrenAndKeepsHost(t *testing.T) {
	host, sites := flatHost(20)
	before := append([]structure.Atom(nil), host.Atoms...)

	templates := []functional.Template{hydroxyl(0.25), atomTemplate("H", 0.1)}
	plan, err := functional.NewPlan(len(sites), templates, functional.NewRand(11))
	require.NoError(t, err)

	placed, err := functional.Place(host, sites, templates, plan, functional.DefaultBondLength)
	require.NoError(t, err)

	require.Len(t, placed, 5+2)
	require.Len(t, host.Children, 7)
	assert.Equal(t, before, host.Atoms, "host atoms must be bit-identical")
	assert.Len(t, host.Find("OH"), 5)
	assert.Len(t, host.Find("H"), 2)

	seen := map[int]bool{}
	for i, p := range placed {
		require.False(t, seen[p.Atom], "atom %d functionalized twice", p.Atom)
		seen[p.Atom] = true
		anchor := host.Children[i].Atoms[0].Pos
		assert.InDelta(t, host.Atoms[p.Atom].Pos.X, anchor.X, tol)
		assert.InDelta(t, functional.DefaultBondLength, anchor.Z, tol)
	}
	assert.Equal(t, 0, placed[0].Template)
	assert.Equal(t, 1, placed[6].Template)
}

func TestPlace_Errors(t *testing.T) {
	host, sites := flatHost(4)
	templates := []functional.Template{atomTemplate("H", 0.5)}
	plan, err := functional.NewPlan(len(sites), templates, nil)
	require.NoError(t, err)

	_, err = functional.Place(nil, sites, templates, plan, 0.15)
	assert.ErrorIs(t, err, errs.ErrConfiguration)

	_, err = functional.Place(host, sites, templates, plan, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidDimension)

	_, err = functional.Place(host, sites[:3], templates, plan, 0.15)
	assert.ErrorIs(t, err, errs.ErrConfiguration)

	bad := append([]functional.Site(nil), sites...)
	bad[0].Atom = 99
	_, err = functional.Place(host, bad, templates, plan, 0.15)
	assert.ErrorIs(t, err, errs.ErrConfiguration)

	assert.Empty(t, host.Children, "failed placements must not touch the host")
}
