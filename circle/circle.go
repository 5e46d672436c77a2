// Package circle rasterizes circles of integer radius with the midpoint
// circle algorithm.
/*
Only the first octant, from (r,0) up to the 45° diagonal, is computed. Its
pixels are generated one row at a time: y increases by one per step, and x
decreases by one whenever the midpoint (x−½, y+1) between the two
candidate pixels lies on or outside the circle. Scaled by 4 to stay in
integers, that test reads

	4⋅(x² − x + y² + 2y) ≥ 4r² − 5.

The remaining seven octants are images of the first one under the
symmetries of the square (raster.Octants). Pixels on the axes and on the
diagonals are shared by two octants and are emitted once only.

The full circle starts at the rightmost pixel (cx+r, cy) and runs
counter-clockwise.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package circle

import (
	"fmt"

	"github.com/npillmayer/raster"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'raster.circle'
func tracer() tracing.Trace {
	return tracing.Select("raster.circle")
}

// MaxRadius is the largest radius accepted. It keeps 4r² within int64.
const MaxRadius = 1 << 30

// Circle is a circle on the integer grid.
type Circle struct {
	Radius int
	Center raster.Point
}

// Raster returns the pixels of circle c. See Rasterize.
func (c Circle) Raster() ([]raster.Point, error) {
	return Rasterize(c.Radius, c.Center.X, c.Center.Y)
}

// Len returns the number of pixels of circle c. See Len.
func (c Circle) Len() (int, error) {
	return Len(c.Radius)
}

func checkRadius(radius int) error {
	if radius < 0 || radius > MaxRadius {
		tracer().P("radius", radius).Errorf("radius out of range")
		return fmt.Errorf("%w: circle radius %d not in [0,%d]", raster.ErrInvalidArgument, radius, MaxRadius)
	}
	return nil
}

// Rasterize returns the pixels approximating the circle of the given radius
// around (cx,cy). Pixels are in counter-clockwise order, starting at
// (cx+radius, cy); there are no duplicates and consecutive pixels, including
// the last and the first one, are 8-connected. Radius 0 yields the center.
//
// A negative radius, or one larger than MaxRadius, results in
// raster.ErrInvalidArgument.
func Rasterize(radius, cx, cy int) ([]raster.Point, error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	center := raster.Pt(cx, cy)
	if radius == 0 {
		return []raster.Point{center}, nil
	}
	octant := firstOctant(radius)
	K, diag := len(octant), onDiagonal(octant)
	points := make([]raster.Point, 0, 4*quadrantLen(K, diag))
	for _, m := range raster.Octants {
		if m.IsReflection() {
			// backwards, without the diagonal pixel and without the axis pixel
			for i := K - 1 - diag; i >= 1; i-- {
				points = append(points, m.Transform(octant[i]))
			}
			continue
		}
		for _, p := range octant {
			points = append(points, m.Transform(p))
		}
	}
	tracer().Debugf("circle r = %d around %s: octant of %d, diagonal = %d, %d pixels",
		radius, center, K, diag, len(points))
	return raster.Shift(points, center), nil
}

// FirstOctant returns the pixels of the first octant of a circle of the given
// radius around the origin, from (radius,0) up to and including the last
// pixel with y ≤ x.
func FirstOctant(radius int) ([]raster.Point, error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return firstOctant(radius), nil
}

// Len returns the number of pixels Rasterize will produce for radius,
// without producing them.
func Len(radius int) (int, error) {
	if err := checkRadius(radius); err != nil {
		return 0, err
	}
	if radius == 0 {
		return 1, nil
	}
	octant := firstOctant(radius)
	return 4 * quadrantLen(len(octant), onDiagonal(octant)), nil
}

// OctantLowerBound returns ⌊r/√2⌋ + 1, the number of rows below the
// diagonal. The first octant holds either this many pixels or, if its last
// pixel falls onto the diagonal one row further up (e.g. r = 7), one more.
func OctantLowerBound(radius int) int {
	r := int64(radius)
	return int(isqrt(r*r/2)) + 1
}

func firstOctant(radius int) []raster.Point {
	octant := make([]raster.Point, 0, OctantLowerBound(radius)+1)
	x, y := int64(radius), int64(0)
	tau := 4*x*x - 5
	for y <= x {
		octant = append(octant, raster.Pt(int(x), int(y)))
		if 4*(x*x-x+y*y+2*y) >= tau {
			x--
		}
		y++
	}
	return octant
}

// onDiagonal is 1 if the last octant pixel lies on x = y, 0 otherwise.
func onDiagonal(octant []raster.Point) int {
	if last := octant[len(octant)-1]; last.X == last.Y {
		return 1
	}
	return 0
}

// quadrantLen is the number of pixels per quarter circle, for an octant of
// K pixels: the axis pixel, K−1 pixels on either side of the diagonal, less
// the diagonal pixel if it would otherwise appear twice.
func quadrantLen(K, diag int) int {
	return 2*K - 1 - diag
}

// isqrt returns ⌊√n⌋ for n ≥ 0.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	x, y := n, (n+1)/2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
