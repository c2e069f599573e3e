package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/structure"
)

// hydroxyl builds a two-atom fragment with one bond.
func hydroxyl() *structure.Group {
	g := structure.NewGroup("OH")
	o := g.AddAtom("O", r3.Vec{})
	h := g.AddAtom("H", r3.Vec{Y: 0.1})
	g.AddBond(o, h)
	return g
}

func TestClone_IsDeep(t *testing.T) {
	root := structure.NewGroup("root")
	root.AddAtom("C", r3.Vec{X: 1})
	root.AddChild(hydroxyl())

	cp := root.Clone()
	require.Equal(t, root, cp)

	cp.Atoms[0].Pos.X = 42
	cp.Children[0].Atoms[1].Element = "D"
	cp.Children[0].Bonds[0].J = 7

	assert.Equal(t, 1.0, root.Atoms[0].Pos.X, "parent atom mutated through clone")
	assert.Equal(t, "H", root.Children[0].Atoms[1].Element, "child atom mutated through clone")
	assert.Equal(t, 1, root.Children[0].Bonds[0].J, "child bond mutated through clone")
}

func TestClone_Nil(t *testing.T) {
	var g *structure.Group
	assert.Nil(t, g.Clone())
}

func TestTraversalOrder(t *testing.T) {
	root := structure.NewGroup("root")
	root.AddAtom("C", r3.Vec{X: 1})
	a := structure.NewGroup("a")
	a.AddAtom("N", r3.Vec{X: 2})
	b := structure.NewGroup("b")
	b.AddAtom("O", r3.Vec{X: 3})
	a.AddChild(b)
	root.AddChild(a)
	root.AddChild(nil)
	c := structure.NewGroup("c")
	c.AddAtom("S", r3.Vec{X: 4})
	root.AddChild(c)

	require.Equal(t, 4, root.NumAtoms())
	got := root.Positions()
	want := []r3.Vec{{X: 1}, {X: 2}, {X: 3}, {X: 4}}
	assert.Equal(t, want, got)

	// Positions returns a copy.
	got[0].X = -1
	assert.Equal(t, 1.0, root.Atoms[0].Pos.X)

	var names []string
	root.Walk(func(g *structure.Group) bool {
		names = append(names, g.Name)
		return g.Name != "a"
	})
	assert.Equal(t, []string{"root", "a", "c"}, names)
}

func TestTranslateAndBounds(t *testing.T) {
	g := hydroxyl()
	g.Translate(r3.Vec{X: 1, Y: 2, Z: 3})

	lo, hi, ok := g.Bounds()
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, lo)
	assert.InDelta(t, 2.1, hi.Y, 1e-12)

	c, ok := g.Centroid()
	require.True(t, ok)
	assert.InDelta(t, 2.05, c.Y, 1e-12)

	_, _, ok = structure.NewGroup("empty").Bounds()
	assert.False(t, ok)
	_, ok = structure.NewGroup("empty").Centroid()
	assert.False(t, ok)
}

func TestValidateAndFind(t *testing.T) {
	root := structure.NewGroup("root")
	root.AddChild(hydroxyl())
	root.AddChild(hydroxyl())
	assert.True(t, root.Validate())
	assert.Len(t, root.Find("OH"), 2)
	assert.Empty(t, root.Find("missing"))

	bad := hydroxyl()
	bad.AddBond(0, 5)
	root.AddChild(bad)
	assert.False(t, root.Validate())
}
