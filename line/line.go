// Package line rasterizes straight line segments between integer endpoints.
/*
The rasterizer is Bresenham's algorithm, generalized to all octants. The
axis with the larger extent (x on ties) is the dominant axis and advances
by one unit on every step. The minor axis advances whenever the true line
has drifted half a pixel or more away from the current minor coordinate.
That test is carried out on an integer decision variable: with N steps
and a minor extent of a pixels, the minor axis advances on step n+1 iff

	2⋅((n+1)⋅a − N⋅m) ≥ N

where m is the minor offset reached so far. Keeping the left side minus the
right side as an accumulator D yields the familiar recurrence

	D₀ = 2a − N,   D += 2a,   D −= 2N on advance.

Exact half-pixel ties are resolved towards the end point with the larger
dominant coordinate. Rasterizing a segment backwards therefore visits
exactly the same pixels in reverse order.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package line

import (
	"github.com/npillmayer/raster"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'raster.line'
func tracer() tracing.Trace {
	return tracing.Select("raster.line")
}

// Segment is a straight line between two grid points. Start and End may
// coincide.
type Segment struct {
	Start, End raster.Point
}

// Seg is a quick notation for constructing a segment.
func Seg(start, end raster.Point) Segment {
	return Segment{Start: start, End: end}
}

// Steps returns the number of raster steps from start to end, i.e. the
// extent of the dominant axis.
func (s Segment) Steps() int {
	d := s.End.Sub(s.Start)
	return max(raster.Abs(d.X), raster.Abs(d.Y))
}

// Reversed returns the segment running from End to Start.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Raster returns the pixels of segment s. See Rasterize.
func (s Segment) Raster() []raster.Point {
	return Rasterize(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

// Rasterize returns the pixels approximating the line from (x1,y1) to
// (x2,y2), in order of travel. The result holds max(|x2−x1|, |y2−y1|) + 1
// points, starts at (x1,y1), ends at (x2,y2), and consecutive points are
// 8-connected. Coincident end points yield a single point.
func Rasterize(x1, y1, x2, y2 int) []raster.Point {
	dx, dy := x2-x1, y2-y1
	sgnx, sgny := raster.Sign(dx), raster.Sign(dy)
	nonsteep := raster.Abs(dx) >= raster.Abs(dy)
	N, a := raster.Abs(dx), raster.Abs(dy) // steps, minor extent
	sgnI := sgnx                           // direction of the dominant axis
	if !nonsteep {
		N, a = a, N
		sgnI = sgny
	}
	tracer().Debugf("line (%d,%d) -> (%d,%d), N = %d, non-steep = %v", x1, y1, x2, y2, N, nonsteep)
	points := make([]raster.Point, N+1)
	points[0] = raster.Pt(x1, y1)
	points[N] = raster.Pt(x2, y2)
	if N < 2 {
		return points
	}
	// Ties advance the minor axis for forward travel only; going backwards
	// the threshold is raised by one, turning '≥' into '>'.
	var bias int
	if sgnI < 0 {
		bias = 1
	}
	D := 2*a - N - bias
	x, y := x1, y1
	for n := 1; n < N; n++ {
		advance := D >= 0
		D += 2 * a
		if advance {
			D -= 2 * N
		}
		if nonsteep {
			x += sgnx
			if advance {
				y += sgny
			}
		} else {
			y += sgny
			if advance {
				x += sgnx
			}
		}
		points[n] = raster.Pt(x, y)
	}
	return points
}

// Polyline rasterizes the open polygonal chain through pts. Each interior
// knot is emitted once, so consecutive points of the result are 8-connected
// as long as consecutive knots differ. A single knot yields itself, no
// knots yield nil.
func Polyline(pts ...raster.Point) []raster.Point {
	if len(pts) == 0 {
		return nil
	}
	chain := []raster.Point{pts[0]}
	for i := 1; i < len(pts); i++ {
		seg := Rasterize(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
		chain = append(chain, seg[1:]...)
	}
	tracer().P("knots", len(pts)).Debugf("polyline of %d points", len(chain))
	return chain
}
