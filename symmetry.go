package raster

import "fmt"

// === Octant Symmetries =====================================================

// Symmetry is an integer linear map of the plane, a 2x2 matrix flattened by
// rows. The eight symmetries of the square map the first octant
// (0° ≤ φ ≤ 45°) onto each of the other octants.
type Symmetry [4]int

func (m Symmetry) get(row, col int) int {
	return m[row*2+col]
}

func (m *Symmetry) set(row, col int, value int) {
	m[row*2+col] = value
}

func (m Symmetry) row(row int) [2]int {
	return [2]int{m[row*2], m[row*2+1]}
}

func (m Symmetry) col(col int) [2]int {
	return [2]int{m[col], m[2+col]}
}

// Identity transform. Will transform a point onto itself.
var Identity = Symmetry{1, 0, 0, 1}

// Rotation90 rotates a point counter-clockwise by 90° around the origin.
var Rotation90 = Symmetry{0, -1, 1, 0}

// Octants lists the maps from the first octant onto octants 1…8, in
// counter-clockwise order. Octants[k] is a rotation for even k and a
// reflection for odd k; reflections reverse the direction of travel.
var Octants = [8]Symmetry{
	{1, 0, 0, 1},   // ( x,  y)
	{0, 1, 1, 0},   // ( y,  x)
	{0, -1, 1, 0},  // (-y,  x)
	{-1, 0, 0, 1},  // (-x,  y)
	{-1, 0, 0, -1}, // (-x, -y)
	{0, -1, -1, 0}, // (-y, -x)
	{0, 1, -1, 0},  // ( y, -x)
	{1, 0, 0, -1},  // ( x, -y)
}

// Det returns the determinant of m: +1 for rotations, -1 for reflections.
func (m Symmetry) Det() int {
	return m.get(0, 0)*m.get(1, 1) - m.get(0, 1)*m.get(1, 0)
}

// IsReflection is a predicate: does m reverse orientation?
func (m Symmetry) IsReflection() bool {
	return m.Det() < 0
}

// Debug Stringer for a symmetry.
func (m Symmetry) String() string {
	return fmt.Sprintf("[%d,%d|%d,%d]", m[0], m[1], m[2], m[3])
}

func dotProd(v1, v2 [2]int) int {
	return v1[0]*v2[0] + v1[1]*v2[1]
}

// Combine 2 symmetries to a new one, applying m first and n second. Returns
// a new symmetry without changing the arguments.
func (m Symmetry) Combine(n Symmetry) Symmetry {
	var o Symmetry
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a point. The argument is unchanged and a new point is returned.
func (m Symmetry) Transform(p Point) Point {
	v := [2]int{p.X, p.Y}
	return Point{X: dotProd(m.row(0), v), Y: dotProd(m.row(1), v)}
}

// Orbit returns the images of p under all eight octant symmetries, in
// octant order. Images may coincide for points on an axis or a diagonal.
func Orbit(p Point) [8]Point {
	var orbit [8]Point
	for k, m := range Octants {
		orbit[k] = m.Transform(p)
	}
	return orbit
}
