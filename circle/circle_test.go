package circle

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/npillmayer/raster"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(coords ...int) []raster.Point {
	p := make([]raster.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		p = append(p, raster.Pt(coords[i], coords[i+1]))
	}
	return p
}

// referenceOctant finds the first octant row by row, searching for the
// largest x whose left midpoint (x−½, y) lies inside the circle.
func referenceOctant(r int) []raster.Point {
	var octant []raster.Point
	for y := 0; ; y++ {
		x := r
		for x >= y && 4*x*x-4*x+1+4*y*y >= 4*r*r {
			x--
		}
		if x < y {
			return octant
		}
		octant = append(octant, raster.Pt(x, y))
	}
}

// checkCircle asserts the properties every rasterized circle has to fulfil.
func checkCircle(t *testing.T, r int, center raster.Point, circle []raster.Point) {
	t.Helper()
	n, err := Len(r)
	require.NoError(t, err)
	require.Len(t, circle, n, "radius %d", r)
	assert.Equal(t, raster.Pt(center.X+r, center.Y), circle[0])
	assert.Equal(t, -1, raster.Connected(circle), "radius %d", r)
	if r > 0 {
		assert.True(t, circle[len(circle)-1].Adjacent(circle[0]), "radius %d not closed", r)
	}
	set := make(map[raster.Point]bool, len(circle))
	for _, p := range circle {
		assert.False(t, set[p], "radius %d: duplicate pixel %s", r, p)
		set[p] = true
	}
	var area2 int // twice the signed area, positive for counter-clockwise travel
	for i, p := range circle {
		q := circle[(i+1)%len(circle)]
		area2 += (p.X-center.X)*(q.Y-center.Y) - (q.X-center.X)*(p.Y-center.Y)
		v := p.Sub(center)
		for k, m := range raster.Octants {
			assert.True(t, set[m.Transform(v).Shifted(center)],
				"radius %d: pixel %s has no image in octant %d", r, p, k+1)
		}
		// never more than half a pixel off the true circle
		dist := math.Hypot(float64(v.X), float64(v.Y))
		assert.InDelta(t, float64(r), dist, 0.5+1e-9, "radius %d: pixel %s", r, p)
	}
	if r > 0 {
		assert.Greater(t, area2, 0, "radius %d runs clockwise", r)
	}
}

// --- Tests -----------------------------------------------------------------

func TestCircleGolden(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circle, err := Rasterize(5, 0, 0)
	require.NoError(t, err)
	t.Logf("circle = %s", raster.AsString(circle))
	want := pts(
		5, 0, 5, 1, 5, 2, 4, 3, 3, 4, 2, 5, 1, 5,
		0, 5, -1, 5, -2, 5, -3, 4, -4, 3, -5, 2, -5, 1,
		-5, 0, -5, -1, -5, -2, -4, -3, -3, -4, -2, -5, -1, -5,
		0, -5, 1, -5, 2, -5, 3, -4, 4, -3, 5, -2, 5, -1,
	)
	assert.Equal(t, want, circle)
	assert.Equal(t, raster.Pt(5, 0), circle[0])
	for _, p := range pts(0, 5, -5, 0, 0, -5) {
		assert.Contains(t, circle, p)
	}
	checkCircle(t, 5, raster.Origin, circle)
}

func TestCircleDiagonalPixel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circle, err := Rasterize(3, 10, -10)
	require.NoError(t, err)
	want := raster.Shift(pts(
		3, 0, 3, 1, 2, 2, 1, 3,
		0, 3, -1, 3, -2, 2, -3, 1,
		-3, 0, -3, -1, -2, -2, -1, -3,
		0, -3, 1, -3, 2, -2, 3, -1,
	), raster.Pt(10, -10))
	assert.Equal(t, want, circle)
}

func TestCircleOctantBeyondClosedForm(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	octant, err := FirstOctant(7)
	require.NoError(t, err)
	assert.Equal(t, pts(7, 0, 7, 1, 7, 2, 6, 3, 6, 4, 5, 5), octant)
	assert.Equal(t, 5, OctantLowerBound(7))
	n, err := Len(7)
	require.NoError(t, err)
	assert.Equal(t, 40, n)
	circle, err := Rasterize(7, 0, 0)
	require.NoError(t, err)
	checkCircle(t, 7, raster.Origin, circle)
}

func TestCircleDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circle, err := Rasterize(0, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, pts(3, 4), circle)
	n, err := Len(0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	circle, err = Rasterize(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, pts(1, 0, 0, 1, -1, 0, 0, -1), circle)
	circle, err = Rasterize(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, pts(2, 0, 2, 1, 1, 2, 0, 2, -1, 2, -2, 1, -2, 0, -2, -1, -1, -2, 0, -2, 1, -2, 2, -1), circle)
}

func TestCircleInvalidRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	circle, err := Rasterize(-1, 0, 0)
	assert.Nil(t, circle)
	assert.True(t, errors.Is(err, raster.ErrInvalidArgument), "expected ErrInvalidArgument, got %v", err)
	_, err = FirstOctant(-5)
	assert.ErrorIs(t, err, raster.ErrInvalidArgument)
	_, err = Len(MaxRadius + 1)
	assert.ErrorIs(t, err, raster.ErrInvalidArgument)
	_, err = Circle{Radius: -2}.Raster()
	assert.ErrorIs(t, err, raster.ErrInvalidArgument)
}

func TestCircleAgainstReference(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for r := 1; r <= 300; r++ {
		octant, err := FirstOctant(r)
		require.NoError(t, err)
		require.Equal(t, referenceOctant(r), octant, "radius %d", r)
		lb := OctantLowerBound(r)
		assert.True(t, len(octant) == lb || len(octant) == lb+1,
			"radius %d: octant of %d, closed form %d", r, len(octant), lb)
	}
}

func TestCircleProperties(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for r := 0; r <= 120; r++ {
		center := raster.Pt(r%7-3, 2*r)
		circle, err := Circle{Radius: r, Center: center}.Raster()
		require.NoError(t, err)
		checkCircle(t, r, center, circle)
	}
}

func TestCircleConcurrentUse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	want, err := Rasterize(41, -2, 9)
	require.NoError(t, err)
	var wg sync.WaitGroup
	results := make([][]raster.Point, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Rasterize(41, -2, 9)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, want, r)
	}
}

func TestIsqrt(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := int64(0); n < 2000; n++ {
		s := isqrt(n)
		assert.True(t, s*s <= n && (s+1)*(s+1) > n, "isqrt(%d) = %d", n, s)
	}
	assert.Equal(t, int64(1<<30), isqrt(1<<60))
}
