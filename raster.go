/*
Package raster implements integer points, octant symmetries and the
helpers shared by the line and circle rasterizers in its sub-packages.

All arithmetic in this module is integer arithmetic. Rasterizers are pure
functions: they keep no state between calls and return freshly allocated
point sequences, owned by the caller.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package raster

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'raster'
func tracer() tracing.Trace {
	return tracing.Select("raster")
}

// ErrInvalidArgument is returned for input outside of a rasterizer's domain,
// e.g. a negative circle radius.
var ErrInvalidArgument = errors.New("invalid argument")

// === Integer helpers =======================================================

// Sign returns -1, 0 or +1, depending on the sign of n. Sign(0) is 0.
func Sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// Abs returns |n|.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// === Point Data Type =======================================================

// Point is a pixel position on the integer grid. Points are values and
// compare with ==.
type Point struct {
	X, Y int
}

// Origin represents the frequently used constant (0,0).
var Origin = Pt(0, 0)

// Pt is a quick notation for constructing a point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Pretty Stringer for points.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// IsOrigin is a predicate: is this point origin?
func (p Point) IsOrigin() bool {
	return p == Origin
}

// Equal compares two points.
func (p Point) Equal(q Point) bool {
	return p == q
}

// Compare orders points by x, then by y. It returns -1, 0 or +1.
func (p Point) Compare(q Point) int {
	if p.X != q.X {
		return Sign(p.X - q.X)
	}
	return Sign(p.Y - q.Y)
}

// Less is a predicate for sorting: is p ordered before q?
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// Shifted returns a new point translated by v.
func (p Point) Shifted(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// ImagePoint converts p to an image.Point.
func (p Point) ImagePoint() image.Point {
	return image.Pt(p.X, p.Y)
}

// Adjacent is a predicate: are p and q distinct 8-connected neighbours?
func (p Point) Adjacent(q Point) bool {
	d := p.Sub(q)
	return p != q && Abs(d.X) <= 1 && Abs(d.Y) <= 1
}

// === Point sequences =======================================================

// AsString returns a sequence of points as a (debugging) string, all points
// on one line, separated by blanks.
//
//	(0,0) (1,0) (2,1)
func AsString(pts []Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}

// Connected checks that pts is gap-free: every point is an 8-connected
// neighbour of its predecessor. It returns the index of the first offending
// point, or -1.
func Connected(pts []Point) int {
	for i := 1; i < len(pts); i++ {
		if !pts[i-1].Adjacent(pts[i]) {
			tracer().P("index", i).Debugf("gap between %s and %s", pts[i-1], pts[i])
			return i
		}
	}
	return -1
}

// Shift translates every point of pts by v, in place, and returns pts.
func Shift(pts []Point, v Point) []Point {
	if v.IsOrigin() {
		return pts
	}
	for i := range pts {
		pts[i] = pts[i].Shifted(v)
	}
	return pts
}
