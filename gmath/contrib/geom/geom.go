// Package geom provides axis-aligned bounding regions built on the gmath
// vector types. Regions are parameterized as origin plus size: Min is the
// corner with the smallest coordinates and Size extends toward positive
// axes. A region with any negative size component is considered empty.
package geom

import "github.com/ajroetker/go-gmath/gmath"

// Region2 is an axis-aligned rectangle: origin Min, extent Size.
type Region2[T gmath.Number] struct {
	Min  gmath.Vec2[T]
	Size gmath.Vec2[T]
}

// NewRegion2 builds a rectangle from its origin and size.
func NewRegion2[T gmath.Number](min, size gmath.Vec2[T]) Region2[T] {
	return Region2[T]{Min: min, Size: size}
}

// Region2FromCorners builds the smallest rectangle containing both points.
func Region2FromCorners[T gmath.Number](a, b gmath.Vec2[T]) Region2[T] {
	lo := a.Min(b)
	return Region2[T]{Min: lo, Size: a.Max(b).Sub(lo)}
}

// Max returns the corner opposite Min.
func (r Region2[T]) Max() gmath.Vec2[T] {
	return r.Min.Add(r.Size)
}

// Center returns the midpoint of the region.
func (r Region2[T]) Center() gmath.Vec2[T] {
	return r.Min.Add(r.Size.Div(gmath.Vec2[T]{X: 2, Y: 2}))
}

// Area returns Size.X * Size.Y.
func (r Region2[T]) Area() T {
	return r.Size.X * r.Size.Y
}

// Perimeter returns the total edge length.
func (r Region2[T]) Perimeter() T {
	two := T(2)
	return two * (r.Size.X + r.Size.Y)
}

// ContainsPoint reports whether p lies inside r. Edges count as inside.
func (r Region2[T]) ContainsPoint(p gmath.Vec2[T]) bool {
	mx := r.Max()
	return p.X >= r.Min.X && p.X <= mx.X &&
		p.Y >= r.Min.Y && p.Y <= mx.Y
}

// Contains reports whether o lies entirely inside r.
func (r Region2[T]) Contains(o Region2[T]) bool {
	return r.ContainsPoint(o.Min) && r.ContainsPoint(o.Max())
}

// Intersects reports whether r and o overlap. Touching edges count as
// intersecting.
func (r Region2[T]) Intersects(o Region2[T]) bool {
	rm, om := r.Max(), o.Max()
	return r.Min.X <= om.X && o.Min.X <= rm.X &&
		r.Min.Y <= om.Y && o.Min.Y <= rm.Y
}

// Union returns the smallest region containing both r and o.
func (r Region2[T]) Union(o Region2[T]) Region2[T] {
	lo := r.Min.Min(o.Min)
	hi := r.Max().Max(o.Max())
	return Region2[T]{Min: lo, Size: hi.Sub(lo)}
}

// Inflate grows the region by d on every side.
func (r Region2[T]) Inflate(d T) Region2[T] {
	two := T(2)
	return Region2[T]{
		Min:  r.Min.Sub(gmath.Vec2[T]{X: d, Y: d}),
		Size: r.Size.Add(gmath.Vec2[T]{X: two * d, Y: two * d}),
	}
}

// Square is a square region: origin Min, edge length Side.
type Square[T gmath.Number] struct {
	Min  gmath.Vec2[T]
	Side T
}

// Region returns the equivalent Region2.
func (s Square[T]) Region() Region2[T] {
	return Region2[T]{Min: s.Min, Size: gmath.Vec2[T]{X: s.Side, Y: s.Side}}
}

// Area returns Side squared.
func (s Square[T]) Area() T {
	return s.Side * s.Side
}

// Perimeter returns four times Side.
func (s Square[T]) Perimeter() T {
	return T(4) * s.Side
}

// Region3 is an axis-aligned box: origin Min, extent Size.
type Region3[T gmath.Number] struct {
	Min  gmath.Vec3[T]
	Size gmath.Vec3[T]
}

// NewRegion3 builds a box from its origin and size.
func NewRegion3[T gmath.Number](min, size gmath.Vec3[T]) Region3[T] {
	return Region3[T]{Min: min, Size: size}
}

// Region3FromCorners builds the smallest box containing both points.
func Region3FromCorners[T gmath.Number](a, b gmath.Vec3[T]) Region3[T] {
	lo := a.Min(b)
	return Region3[T]{Min: lo, Size: a.Max(b).Sub(lo)}
}

// Max returns the corner opposite Min.
func (r Region3[T]) Max() gmath.Vec3[T] {
	return r.Min.Add(r.Size)
}

// Center returns the midpoint of the box.
func (r Region3[T]) Center() gmath.Vec3[T] {
	return r.Min.Add(r.Size.Div(gmath.Vec3[T]{X: 2, Y: 2, Z: 2}))
}

// Volume returns the product of the three extents.
func (r Region3[T]) Volume() T {
	return r.Size.X * r.Size.Y * r.Size.Z
}

// SurfaceArea returns the total area of the six faces.
func (r Region3[T]) SurfaceArea() T {
	two := T(2)
	return two * (r.Size.X*r.Size.Y + r.Size.Y*r.Size.Z + r.Size.Z*r.Size.X)
}

// ContainsPoint reports whether p lies inside r. Faces count as inside.
func (r Region3[T]) ContainsPoint(p gmath.Vec3[T]) bool {
	mx := r.Max()
	return p.X >= r.Min.X && p.X <= mx.X &&
		p.Y >= r.Min.Y && p.Y <= mx.Y &&
		p.Z >= r.Min.Z && p.Z <= mx.Z
}

// Contains reports whether o lies entirely inside r.
func (r Region3[T]) Contains(o Region3[T]) bool {
	return r.ContainsPoint(o.Min) && r.ContainsPoint(o.Max())
}

// Intersects reports whether r and o overlap. Touching faces count as
// intersecting.
func (r Region3[T]) Intersects(o Region3[T]) bool {
	rm, om := r.Max(), o.Max()
	return r.Min.X <= om.X && o.Min.X <= rm.X &&
		r.Min.Y <= om.Y && o.Min.Y <= rm.Y &&
		r.Min.Z <= om.Z && o.Min.Z <= rm.Z
}

// Union returns the smallest box containing both r and o.
func (r Region3[T]) Union(o Region3[T]) Region3[T] {
	lo := r.Min.Min(o.Min)
	hi := r.Max().Max(o.Max())
	return Region3[T]{Min: lo, Size: hi.Sub(lo)}
}

// Inflate grows the box by d on every side.
func (r Region3[T]) Inflate(d T) Region3[T] {
	two := T(2)
	return Region3[T]{
		Min:  r.Min.Sub(gmath.Vec3[T]{X: d, Y: d, Z: d}),
		Size: r.Size.Add(gmath.Vec3[T]{X: two * d, Y: two * d, Z: two * d}),
	}
}

// Corners returns the eight corner points of the box.
func (r Region3[T]) Corners() [8]gmath.Vec3[T] {
	mn, mx := r.Min, r.Max()
	return [8]gmath.Vec3[T]{
		{X: mn.X, Y: mn.Y, Z: mn.Z},
		{X: mx.X, Y: mn.Y, Z: mn.Z},
		{X: mn.X, Y: mx.Y, Z: mn.Z},
		{X: mx.X, Y: mx.Y, Z: mn.Z},
		{X: mn.X, Y: mn.Y, Z: mx.Z},
		{X: mx.X, Y: mn.Y, Z: mx.Z},
		{X: mn.X, Y: mx.Y, Z: mx.Z},
		{X: mx.X, Y: mx.Y, Z: mx.Z},
	}
}

// Box is a cube: origin Min, edge length Side.
type Box[T gmath.Number] struct {
	Min  gmath.Vec3[T]
	Side T
}

// Region returns the equivalent Region3.
func (b Box[T]) Region() Region3[T] {
	return Region3[T]{Min: b.Min, Size: gmath.Vec3[T]{X: b.Side, Y: b.Side, Z: b.Side}}
}

// Volume returns Side cubed.
func (b Box[T]) Volume() T {
	return b.Side * b.Side * b.Side
}
