package geom

import (
	"testing"

	"github.com/ajroetker/go-gmath/gmath"
	"github.com/stretchr/testify/require"
)

func TestRegion2Basics(t *testing.T) {
	r := NewRegion2(gmath.Vec2[int]{X: 1, Y: 2}, gmath.Vec2[int]{X: 4, Y: 6})

	require.Equal(t, gmath.Vec2[int]{X: 5, Y: 8}, r.Max())
	require.Equal(t, gmath.Vec2[int]{X: 3, Y: 5}, r.Center())
	require.Equal(t, 24, r.Area())
	require.Equal(t, 20, r.Perimeter())
}

func TestRegion2FromCorners(t *testing.T) {
	// Corner order does not matter.
	a := Region2FromCorners(gmath.Vec2[float64]{X: 3, Y: 1}, gmath.Vec2[float64]{X: 0, Y: 4})
	require.Equal(t, gmath.Vec2[float64]{X: 0, Y: 1}, a.Min)
	require.Equal(t, gmath.Vec2[float64]{X: 3, Y: 3}, a.Size)

	b := Region2FromCorners(gmath.Vec2[float64]{X: 0, Y: 1}, gmath.Vec2[float64]{X: 3, Y: 4})
	require.Equal(t, a, b)
}

func TestRegion2Contains(t *testing.T) {
	r := NewRegion2(gmath.Vec2[float64]{}, gmath.Vec2[float64]{X: 10, Y: 10})

	require.True(t, r.ContainsPoint(gmath.Vec2[float64]{X: 5, Y: 5}))
	require.True(t, r.ContainsPoint(gmath.Vec2[float64]{}), "min corner counts as inside")
	require.True(t, r.ContainsPoint(gmath.Vec2[float64]{X: 10, Y: 10}), "max corner counts as inside")
	require.False(t, r.ContainsPoint(gmath.Vec2[float64]{X: -1, Y: 5}))
	require.False(t, r.ContainsPoint(gmath.Vec2[float64]{X: 5, Y: 10.5}))

	inner := NewRegion2(gmath.Vec2[float64]{X: 2, Y: 2}, gmath.Vec2[float64]{X: 3, Y: 3})
	require.True(t, r.Contains(inner))
	require.False(t, inner.Contains(r))
}

func TestRegion2IntersectsUnion(t *testing.T) {
	a := NewRegion2(gmath.Vec2[int]{}, gmath.Vec2[int]{X: 5, Y: 5})
	b := NewRegion2(gmath.Vec2[int]{X: 3, Y: 3}, gmath.Vec2[int]{X: 5, Y: 5})
	c := NewRegion2(gmath.Vec2[int]{X: 6, Y: 6}, gmath.Vec2[int]{X: 2, Y: 2})

	require.True(t, a.Intersects(b))
	require.False(t, a.Intersects(c))

	u := a.Union(b)
	require.Equal(t, gmath.Vec2[int]{}, u.Min)
	require.Equal(t, gmath.Vec2[int]{X: 8, Y: 8}, u.Max())
}

func TestRegion2Inflate(t *testing.T) {
	r := NewRegion2(gmath.Vec2[int]{X: 2, Y: 2}, gmath.Vec2[int]{X: 4, Y: 4})
	g := r.Inflate(1)
	require.Equal(t, gmath.Vec2[int]{X: 1, Y: 1}, g.Min)
	require.Equal(t, gmath.Vec2[int]{X: 6, Y: 6}, g.Size)

	shrunk := r.Inflate(-1)
	require.Equal(t, gmath.Vec2[int]{X: 3, Y: 3}, shrunk.Min)
	require.Equal(t, gmath.Vec2[int]{X: 2, Y: 2}, shrunk.Size)
}

func TestSquare(t *testing.T) {
	s := Square[float64]{Min: gmath.Vec2[float64]{X: 1, Y: 1}, Side: 3}
	require.Equal(t, 9.0, s.Area())
	require.Equal(t, 12.0, s.Perimeter())

	r := s.Region()
	require.Equal(t, gmath.Vec2[float64]{X: 3, Y: 3}, r.Size)
	require.Equal(t, gmath.Vec2[float64]{X: 4, Y: 4}, r.Max())
}

func TestRegion3Basics(t *testing.T) {
	r := NewRegion3(gmath.Vec3[int]{X: 0, Y: 0, Z: 0}, gmath.Vec3[int]{X: 2, Y: 3, Z: 4})

	require.Equal(t, 24, r.Volume())
	require.Equal(t, 2*(2*3+3*4+2*4), r.SurfaceArea())
	require.Equal(t, gmath.Vec3[int]{X: 2, Y: 3, Z: 4}, r.Max())

	f := NewRegion3(gmath.Vec3[float64]{X: 1, Y: 2, Z: 3}, gmath.Vec3[float64]{X: 2, Y: 4, Z: 6})
	require.Equal(t, gmath.Vec3[float64]{X: 2, Y: 4, Z: 6}, f.Center())
}

func TestRegion3Inflate(t *testing.T) {
	r := NewRegion3(gmath.Vec3[int]{X: 2, Y: 2, Z: 2}, gmath.Vec3[int]{X: 4, Y: 4, Z: 4})
	g := r.Inflate(1)
	require.Equal(t, gmath.Vec3[int]{X: 1, Y: 1, Z: 1}, g.Min)
	require.Equal(t, gmath.Vec3[int]{X: 6, Y: 6, Z: 6}, g.Size)

	shrunk := r.Inflate(-1)
	require.Equal(t, gmath.Vec3[int]{X: 3, Y: 3, Z: 3}, shrunk.Min)
	require.Equal(t, gmath.Vec3[int]{X: 2, Y: 2, Z: 2}, shrunk.Size)
}

func TestRegion3FromCorners(t *testing.T) {
	r := Region3FromCorners(
		gmath.Vec3[float64]{X: 5, Y: 0, Z: 2},
		gmath.Vec3[float64]{X: 1, Y: 4, Z: -2},
	)
	require.Equal(t, gmath.Vec3[float64]{X: 1, Y: 0, Z: -2}, r.Min)
	require.Equal(t, gmath.Vec3[float64]{X: 4, Y: 4, Z: 4}, r.Size)
}

func TestRegion3ContainsIntersects(t *testing.T) {
	r := NewRegion3(gmath.Vec3[float64]{}, gmath.Vec3[float64]{X: 10, Y: 10, Z: 10})

	require.True(t, r.ContainsPoint(gmath.Vec3[float64]{X: 1, Y: 2, Z: 3}))
	require.False(t, r.ContainsPoint(gmath.Vec3[float64]{X: 1, Y: 2, Z: 10.5}))

	other := NewRegion3(gmath.Vec3[float64]{X: 9, Y: 9, Z: 9}, gmath.Vec3[float64]{X: 5, Y: 5, Z: 5})
	require.True(t, r.Intersects(other))

	u := r.Union(other)
	require.Equal(t, gmath.Vec3[float64]{}, u.Min)
	require.Equal(t, gmath.Vec3[float64]{X: 14, Y: 14, Z: 14}, u.Max())
}

func TestRegion3Corners(t *testing.T) {
	r := NewRegion3(gmath.Vec3[int]{X: 0, Y: 0, Z: 0}, gmath.Vec3[int]{X: 1, Y: 1, Z: 1})
	corners := r.Corners()

	seen := map[gmath.Vec3[int]]bool{}
	for _, c := range corners {
		seen[c] = true
	}
	require.Len(t, seen, 8, "all corners distinct")
	require.True(t, seen[gmath.Vec3[int]{X: 0, Y: 0, Z: 0}])
	require.True(t, seen[gmath.Vec3[int]{X: 1, Y: 1, Z: 1}])
	require.True(t, seen[gmath.Vec3[int]{X: 1, Y: 0, Z: 1}])
}

func TestBox(t *testing.T) {
	b := Box[int]{Min: gmath.Vec3[int]{X: 1, Y: 1, Z: 1}, Side: 2}
	require.Equal(t, 8, b.Volume())

	r := b.Region()
	require.Equal(t, gmath.Vec3[int]{X: 3, Y: 3, Z: 3}, r.Max())
}
