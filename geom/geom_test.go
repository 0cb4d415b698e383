package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	assert.Equal(t, V(4, 2), a.Add(b))
	assert.Equal(t, V(2, 6), a.Sub(b))
	assert.Equal(t, V(6, 8), a.Mul(2))
	assert.Equal(t, V(1.5, 2), a.Div(2))
	assert.InDelta(t, 5.0, a.Len(), 1e-12)
}

func TestVec2IsZero(t *testing.T) {
	assert.True(t, Vec2{}.IsZero())
	assert.False(t, V(0, 1e-9).IsZero())
}

func TestMinMax(t *testing.T) {
	a := V(1, 5)
	b := V(3, -2)

	assert.Equal(t, V(1, -2), Min(a, b))
	assert.Equal(t, V(3, 5), Max(a, b))
}

func TestRectGeometry(t *testing.T) {
	r := R(0, 0, 800, 600)

	assert.Equal(t, V(800, 600), r.Size())
	assert.Equal(t, 800.0, r.Width())
	assert.Equal(t, 600.0, r.Height())
	assert.Equal(t, V(400, 300), r.Center())
}

func TestRectContains(t *testing.T) {
	r := R(-10, -10, 10, 10)

	assert.True(t, r.Contains(V(0, 0)))
	assert.True(t, r.Contains(V(10, -10)), "borders are inside")
	assert.False(t, r.Contains(V(10.01, 0)))
}

func TestRectUnionExpand(t *testing.T) {
	a := R(0, 0, 1, 1)
	b := R(-2, 0.5, 0.5, 3)

	assert.Equal(t, R(-2, 0, 1, 3), a.Union(b))
	assert.Equal(t, R(-1, -1, 2, 2), a.Expand(1))
}

func TestDegenerateRect(t *testing.T) {
	r := Rect{Min: V(5, 5), Max: V(5, 5)}

	assert.True(t, r.Size().IsZero())
	assert.Equal(t, V(5, 5), r.Center())
}
