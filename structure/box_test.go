package structure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/slitpore/structure"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		name string
		x, l float64
		want float64
	}{
		{"InRange", 0.5, 2, 0.5},
		{"Zero", 0, 2, 0},
		{"AtUpperEdge", 2, 2, 0},
		{"Negative", -0.5, 2, 1.5},
		{"FarNegative", -4.5, 2, 1.5},
		{"Above", 5.25, 2, 1.25},
		{"TinyNegative", -1e-18, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := structure.Wrap(tc.x, tc.l)
			assert.InDelta(t, tc.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, tc.l)
		})
	}
}

func TestBox(t *testing.T) {
	b := structure.NewBox(r3.Vec{X: 1, Y: 2, Z: 3})
	assert.Equal(t, r3.Vec{X: 90, Y: 90, Z: 90}, b.Angles)
	assert.InDelta(t, 6.0, b.Volume(), 1e-12)

	assert.True(t, b.Contains(r3.Vec{}))
	assert.False(t, b.Contains(r3.Vec{X: 1}))
	assert.False(t, b.Contains(r3.Vec{Y: -1e-9}))

	p := b.Wrap(r3.Vec{X: -0.25, Y: 4.5, Z: math.Nextafter(3, 0)})
	assert.True(t, b.Contains(p))
	assert.InDelta(t, 0.75, p.X, 1e-12)
	assert.InDelta(t, 0.5, p.Y, 1e-12)
}

func TestComponent(t *testing.T) {
	v := r3.Vec{X: 1, Y: 2, Z: 3}
	for i, want := range []float64{1, 2, 3} {
		assert.Equal(t, want, structure.Component(v, i))
	}
	assert.Zero(t, structure.Component(v, 3))
	assert.Equal(t, r3.Vec{X: 1, Y: 9, Z: 3}, structure.WithComponent(v, 1, 9))
	assert.Equal(t, v, structure.WithComponent(v, -1, 9))
}
