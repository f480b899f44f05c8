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
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridgeom/internal/diag"
	"seehuhn.de/go/gridgeom/rounding"
)

// GridPoint is a point on the integer grid together with a distance.
// The meaning of Dist depends on the operation which produced the point.
type GridPoint struct {
	X, Y int
	Dist float64
}

// Vec returns p as a vector.
func (p GridPoint) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p GridPoint) samePos(q GridPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 GridPoint) float64 {
	if p1.samePos(p2) {
		return 0
	}
	return p2.Vec().Sub(p1.Vec()).Length()
}

// Slope returns the slope of the line through p1 and p2.
// For a vertical line, and for identical points, the result is 0;
// callers which need to tell these apart from a horizontal line must
// compare the x coordinates themselves.
func Slope(p1, p2 GridPoint) float64 {
	if p1.X == p2.X {
		return 0
	}
	return float64(p2.Y-p1.Y) / float64(p2.X-p1.X)
}

// VerifySlope reports whether the line through p1 and p2 has the given
// slope, to the given precision.
func (k *Kernel) VerifySlope(p1, p2 GridPoint, slope float64, precision int) bool {
	calc := Slope(p1, p2)
	if k.Tolerance.EqualTo(0, calc, k.Precision) {
		diag.Report(component, "VerifySlope", "calculated slope is zero")
	}
	return k.Tolerance.EqualTo(calc, slope, precision)
}

// Midpoint returns the grid point halfway between p1 and p2, with Dist set
// to half the distance between them.
//
// The half-differences are rounded in direction dir and then added to
// the smaller coordinate, so that the rounded value is never negative.
func (k *Kernel) Midpoint(p1, p2 *GridPoint, dir rounding.Direction) (GridPoint, error) {
	const op = "Midpoint"
	switch {
	case p1 == nil || p2 == nil:
		diag.Report(component, op, "missing point")
		return GridPoint{}, ErrNilPoint
	case p1 == p2:
		diag.Report(component, op, "duplicate points do not have a midpoint")
		return GridPoint{}, ErrDuplicatePoint
	case p1.samePos(*p2):
		diag.Report(component, op, "duplicate coordinates do not have a midpoint")
		return GridPoint{}, ErrDuplicatePoint
	}

	dx, err := k.Rounding.Round(0.5*float64(abs(p2.X-p1.X)), dir)
	if err != nil {
		return GridPoint{}, fmt.Errorf("midpoint x: %w", err)
	}
	dy, err := k.Rounding.Round(0.5*float64(abs(p2.Y-p1.Y)), dir)
	if err != nil {
		return GridPoint{}, fmt.Errorf("midpoint y: %w", err)
	}

	return GridPoint{
		X:    min(p1.X, p2.X) + dx,
		Y:    min(p1.Y, p2.Y) + dy,
		Dist: Distance(*p1, *p2) / 2,
	}, nil
}

// Centroid returns the centroid of the triangle p1, p2, p3, with both
// coordinates rounded in direction dir. Dist is zero.
func (k *Kernel) Centroid(p1, p2, p3 *GridPoint, dir rounding.Direction) (GridPoint, error) {
	const op = "Centroid"
	switch {
	case p1 == nil || p2 == nil || p3 == nil:
		diag.Report(component, op, "missing point")
		return GridPoint{}, ErrNilPoint
	case p1 == p2 || p1 == p3 || p2 == p3:
		diag.Report(component, op, "duplicate points can not form a triangle")
		return GridPoint{}, ErrDuplicatePoint
	case p1.samePos(*p2) || p1.samePos(*p3) || p2.samePos(*p3):
		diag.Report(component, op, "duplicate coordinates are not a triangle")
		return GridPoint{}, ErrDuplicatePoint
	}

	x, err := k.Rounding.Round(float64(p1.X+p2.X+p3.X)/3, dir)
	if err != nil {
		return GridPoint{}, fmt.Errorf("centroid x: %w", err)
	}
	y, err := k.Rounding.Round(float64(p1.Y+p2.Y+p3.Y)/3, dir)
	if err != nil {
		return GridPoint{}, fmt.Errorf("centroid y: %w", err)
	}
	diag.Debug(component, op, "centroid", "x", x, "y", y)
	return GridPoint{X: x, Y: y}, nil
}

// SolvePointSlopeX solves y0 - y1 = slope·(x0 - x1) for x0, given the
// known point (x1, y1), and rounds the result in direction dir.
// A zero slope has no solution and returns ErrZeroSlope.
func (k *Kernel) SolvePointSlopeX(x1, y1, y0 int, slope float64, dir rounding.Direction) (int, error) {
	if !k.Tolerance.NotEqual(slope, 0, k.Precision) {
		return 0, ErrZeroSlope
	}
	x0 := float64(y0-y1)/slope + float64(x1)
	return k.Rounding.Round(x0, dir)
}

// SolvePointSlopeY solves y0 - y1 = slope·(x0 - x1) for y0, given the
// known point (x1, y1), and rounds the result in direction dir.
func (k *Kernel) SolvePointSlopeY(x1, y1, x0 int, slope float64, dir rounding.Direction) (int, error) {
	y0 := slope*float64(x0-x1) + float64(y1)
	return k.Rounding.Round(y0, dir)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
