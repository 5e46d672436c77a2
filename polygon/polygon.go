// Package polygon builds polygons with integer knots and rasterizes their
// outlines.
/*
Polygons are built with a small builder API, similar to paths in MetaPost:

	pg := NullPolygon().Knot(raster.Pt(0, 0)).Knot(raster.Pt(1, 3)).Knot(raster.Pt(3, 0)).Cycle()

Outlines are rasterized edge by edge with package line, each knot being
visited once. Geometric queries (bounding box, containment) and boolean
operations between polygons are delegated to polyclip-go, which operates
on float64 coordinates. Knots of polygons resulting from boolean
operations are rounded to the nearest grid point.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/raster"
	"github.com/npillmayer/raster/line"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'raster.polygon'
func L() tracing.Trace {
	return tracing.Select("raster.polygon")
}

// ErrEmptyPolygon is returned by operations which need at least one knot.
var ErrEmptyPolygon = errors.New("polygon has no knots")

// Polygon is a polygonal chain with integer knots, either open or closed
// (cyclic). To construct a polygon, start with NullPolygon(), which creates
// an empty polygon, and then extend it.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Box creates a closed rectangle from two opposite corners. Knots run
// counter-clockwise, starting at the corner with minimal coordinates.
func Box(p1, p2 raster.Point) *Polygon {
	lo := raster.Pt(min(p1.X, p2.X), min(p1.Y, p2.Y))
	hi := raster.Pt(max(p1.X, p2.X), max(p1.Y, p2.Y))
	return NullPolygon().Knot(lo).Knot(raster.Pt(hi.X, lo.Y)).Knot(hi).Knot(raster.Pt(lo.X, hi.Y)).Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p raster.Point) *Polygon {
	pg.contour.Add(toClip(p))
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Z returns knot i.
func (pg *Polygon) Z(i int) raster.Point {
	return fromClip(pg.contour[i])
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Knots returns a copy of the knots of pg.
func (pg *Polygon) Knots() []raster.Point {
	knots := make([]raster.Point, pg.N())
	for i := range knots {
		knots[i] = pg.Z(i)
	}
	return knots
}

// BoundingBox returns the corners with minimal and maximal coordinates of
// the smallest axis-parallel rectangle enclosing pg.
func (pg *Polygon) BoundingBox() (raster.Point, raster.Point, error) {
	if pg.N() == 0 {
		return raster.Point{}, raster.Point{}, ErrEmptyPolygon
	}
	bb := pg.contour.BoundingBox()
	return fromClip(bb.Min), fromClip(bb.Max), nil
}

// Contains is a predicate: is p inside the area enclosed by pg? The result
// for points on the outline is unspecified. Open polygons are treated as if
// closed.
func (pg *Polygon) Contains(p raster.Point) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(toClip(p))
}

// Raster returns the pixels of the outline of pg, starting at the first
// knot. For closed polygons the last pixel is a neighbour of the first one,
// and the first knot is not repeated.
func (pg *Polygon) Raster() []raster.Point {
	knots := pg.Knots()
	if pg.cycle && len(knots) > 1 {
		knots = append(knots, knots[0])
	}
	outline := line.Polyline(knots...)
	if pg.cycle && len(outline) > 1 && outline[len(outline)-1] == outline[0] {
		outline = outline[:len(outline)-1]
	}
	L().Debugf("outline of %d knots has %d pixels", pg.N(), len(outline))
	return outline
}

// AsString returns a polygon as a (debugging) string.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(pg.Z(i).String())
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}

// === Boolean operations ====================================================

// Op is a boolean operation between the areas of two polygons.
type Op polyclip.Op

// Boolean operations supported by Combine.
const (
	Union        = Op(polyclip.UNION)
	Intersection = Op(polyclip.INTERSECTION)
	Difference   = Op(polyclip.DIFFERENCE)
	Xor          = Op(polyclip.XOR)
)

func (op Op) String() string {
	switch op {
	case Union:
		return "union"
	case Intersection:
		return "intersection"
	case Difference:
		return "difference"
	case Xor:
		return "xor"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Combine applies op to the areas enclosed by a and b (both treated as
// closed). The result is a list of closed polygons, one per contour, with
// knots rounded to the grid. Contours which collapse to less than three
// knots by rounding are dropped.
func Combine(a, b *Polygon, op Op) ([]*Polygon, error) {
	if a.N() == 0 || b.N() == 0 {
		L().Errorf("cannot compute %s of empty polygon", op)
		return nil, ErrEmptyPolygon
	}
	subject := polyclip.Polygon{a.contour.Clone()}
	clipping := polyclip.Polygon{b.contour.Clone()}
	result := subject.Construct(polyclip.Op(op), clipping)
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		pg := NullPolygon()
		for _, p := range c {
			k := fromClip(p)
			if n := pg.N(); n > 0 && pg.Z(n-1) == k {
				continue
			}
			pg.Knot(k)
		}
		if n := pg.N(); n > 1 && pg.Z(n-1) == pg.Z(0) {
			pg.contour = pg.contour[:n-1]
		}
		if pg.N() < 3 {
			continue
		}
		pgs = append(pgs, pg.Cycle())
	}
	L().P("op", op).Debugf("%d contour(s) in result", len(pgs))
	return pgs, nil
}

func toClip(p raster.Point) polyclip.Point {
	return polyclip.Point{X: float64(p.X), Y: float64(p.Y)}
}

func fromClip(p polyclip.Point) raster.Point {
	return raster.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}
