// Package geom provides the 2D primitives used by the viewport transform
// and hit-testing code. All values are float64 and plain value types.
package geom

import "math"

// Vec2 is a 2D point or translation, depending on context.
type Vec2 struct {
	X float64 `json:"x" toml:"x" yaml:"x"`
	Y float64 `json:"y" toml:"y" yaml:"y"`
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales both components by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div scales both components by 1/s. The caller guarantees s != 0; the
// viewport invariant zoom > 0 makes that hold on every interaction path.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec2) Vec2 {
	return Vec2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec2) Vec2 {
	return Vec2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Rect is an axis-aligned rectangle. A Rect with Min == Max is degenerate
// (zero extent) but valid; bounding-box folding starts from one.
type Rect struct {
	Min Vec2 `json:"min"`
	Max Vec2 `json:"max"`
}

// R constructs a Rect from its corner coordinates.
func R(minX, minY, maxX, maxY float64) Rect {
	return Rect{Min: V(minX, minY), Max: V(maxX, maxY)}
}

func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Union grows r to include o.
func (r Rect) Union(o Rect) Rect {
	return Rect{Min: Min(r.Min, o.Min), Max: Max(r.Max, o.Max)}
}

// Expand grows the rect by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{Min: r.Min.Sub(V(d, d)), Max: r.Max.Add(V(d, d))}
}
