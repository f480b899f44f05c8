// seehuhn.de/go/gridgeom - tolerance-aware geometry on integer grids
// Copyright (C) 2026  The gridgeom authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gridgeom

import (
	"math"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/gridgeom/internal/diag"
)

// TriangleArea returns the area of the triangle a, b, c using Heron's
// formula.
//
// The result is -1 if two vertices coincide, or if all three vertices
// share an x or a y coordinate.
func (k *Kernel) TriangleArea(a, b, c GridPoint) float64 {
	const op = "TriangleArea"
	switch {
	case a.samePos(b) || a.samePos(c) || b.samePos(c):
		diag.Report(component, op, "duplicate coordinates are not a triangle")
		return -1
	case (a.X == b.X && a.X == c.X) || (a.Y == b.Y && a.Y == c.Y):
		diag.Report(component, op, "line coordinates are not a triangle")
		return -1
	}

	lenAB := Distance(a, b)
	lenBC := Distance(b, c)
	lenCA := Distance(c, a)
	s := (lenAB + lenBC + lenCA) / 2
	if k.Tolerance.EqualTo(s, lenAB, k.Precision) ||
		k.Tolerance.EqualTo(s, lenBC, k.Precision) ||
		k.Tolerance.EqualTo(s, lenCA, k.Precision) {
		diag.Debug(component, op, "points form a line",
			"a", a.Vec(), "b", b.Vec(), "c", c.Vec())
	}

	return heron(lenAB, lenBC, lenCA)
}

// heron returns the area of a triangle with side lengths x, y, z.
// The factors are arranged as suggested by Kahan, which avoids most of
// the cancellation of the textbook form s(s-x)(s-y)(s-z) for needle-like
// triangles.
func heron(x, y, z float64) float64 {
	// sort so that x >= y >= z
	if x < y {
		x, y = y, x
	}
	if y < z {
		y, z = z, y
	}
	if x < y {
		x, y = y, x
	}
	prod := (x + (y + z)) * (z - (x - y)) * (z + (x - y)) * (x + (y - z))
	if prod < 0 {
		// rounding noise for collinear points
		prod = 0
	}
	return math.Sqrt(prod) / 4
}

// PointInTriangle reports whether p lies in the triangle a, b, c.
// This is the case if the areas of the triangles (a, b, p), (b, c, p)
// and (c, a, p) add up to the area of (a, b, c), to the given precision.
//
// If any of the four triangles is degenerate, the result is false.
func (k *Kernel) PointInTriangle(a, b, c, p GridPoint, precision int) bool {
	const op = "PointInTriangle"

	areas := [4]float64{
		k.TriangleArea(a, b, p),
		k.TriangleArea(b, c, p),
		k.TriangleArea(c, a, p),
		k.TriangleArea(a, b, c),
	}
	names := [4]string{"a b p", "b c p", "c a p", "a b c"}
	for i, area := range areas {
		if k.Tolerance.LessThan(area, 0, precision) {
			diag.Report(component, op, "degenerate triangle "+names[i])
			return false
		}
	}

	return k.Tolerance.EqualTo(areas[3], areas[0]+areas[1]+areas[2], precision)
}

// TrianglePath returns the closed outline of the triangle a, b, c.
func TrianglePath(a, b, c GridPoint) *path.Data {
	return (&path.Data{}).
		MoveTo(a.Vec()).
		LineTo(b.Vec()).
		LineTo(c.Vec()).
		Close()
}
