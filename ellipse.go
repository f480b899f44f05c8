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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridgeom/internal/diag"
	"seehuhn.de/go/gridgeom/rounding"
)

// EllipsePoints is a sequence of points on an ellipse centred at the
// origin, in the order they are visited.
type EllipsePoints []vec.Vec2

// Coords returns the points as interleaved coordinates x0, y0, x1, y1, ...
func (e EllipsePoints) Coords() []float64 {
	res := make([]float64, 0, 2*len(e))
	for _, p := range e {
		res = append(res, p.X, p.Y)
	}
	return res
}

// Path returns the closed polygon through the points, shifted by offset.
func (e EllipsePoints) Path(offset vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(e) == 0 {
		return p
	}
	p.MoveTo(e[0].Add(offset))
	for _, pt := range e[1:] {
		p.LineTo(pt.Add(offset))
	}
	return p.Close()
}

// PlotEllipsePoints samples the ellipse x²/a² + y²/b² = 1 at whole-number
// steps along its major axis.
//
// The major axis is x if |a| >= |b|, and y otherwise. If m is the major
// semi-axis rounded down, the result has 4m points. The walk starts at
// (-a, 0), passes (0, b), (a, 0) and (0, -b), and stops one step before
// returning to the start; no point is visited twice.
func (k *Kernel) PlotEllipsePoints(a, b float64) (EllipsePoints, error) {
	const op = "PlotEllipsePoints"

	if math.IsNaN(a) || math.IsNaN(b) {
		diag.Report(component, op, "axis is NaN")
		return nil, ErrOutOfDomain
	}
	if k.Tolerance.EqualTo(a, 0, k.Precision) {
		diag.Report(component, op, "a is zero")
		return nil, ErrZeroAxis
	}
	if k.Tolerance.EqualTo(b, 0, k.Precision) {
		diag.Report(component, op, "b is zero")
		return nil, ErrZeroAxis
	}

	aAbs := math.Abs(a)
	bAbs := math.Abs(b)
	chooseX := k.Tolerance.GreaterOrEqual(aAbs, bAbs, k.Precision)
	major := bAbs
	if chooseX {
		major = aAbs
	}

	// Rounding down keeps every sample inside the domain of the ellipse
	// helpers.
	m, err := k.Rounding.Round(major, rounding.Down)
	if err != nil {
		diag.Report(component, op, "major axis not representable")
		return nil, fmt.Errorf("major semi-axis %g: %w", major, err)
	}

	// m is half the major axis, times 4 quadrants, times 2 coordinates
	// per point.
	numCoords := m * 4 * 2
	if numCoords < 8 || numCoords%4 != 0 {
		diag.Report(component, op, "number of points miscalculated")
		return nil, fmt.Errorf("%d coordinates: %w", numCoords, ErrPointCount)
	}
	numPoints := numCoords / 2
	if numPoints > k.MaxEllipsePoints {
		diag.Report(component, op, "too many points")
		return nil, fmt.Errorf("%d points: %w", numPoints, ErrTooManyPoints)
	}

	pts := make(EllipsePoints, numPoints)
	for i := range pts {
		var pt vec.Vec2
		if chooseX {
			pt, err = xMajorPoint(aAbs, bAbs, m, i)
		} else {
			pt, err = yMajorPoint(aAbs, bAbs, m, i)
		}
		if err != nil {
			diag.Report(component, op, "sample outside the ellipse")
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}

// xMajorPoint returns sample i of 4m when x is the major axis.
// The first 2m+1 samples sweep the upper half from -m to m, the remaining
// ones sweep the lower half back towards -m.
func xMajorPoint(a, b float64, m, i int) (vec.Vec2, error) {
	x, sign := i-m, 1.0
	if i > 2*m {
		x, sign = 3*m-i, -1
	}
	y, err := EllipseY(a, b, float64(x))
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: float64(x), Y: signed(sign, y)}, nil
}

// yMajorPoint returns sample i of 4m when y is the major axis.
// The quadrant boundaries are at m, 2m and 3m; the crossings of the
// x axis at i = 0 and i = 2m start a new half.
func yMajorPoint(a, b float64, m, i int) (vec.Vec2, error) {
	var y int
	var sign float64
	switch {
	case i == 0: // (-a, 0)
		y, sign = 0, -1
	case i <= m: // quadrant II, upwards
		y, sign = i, -1
	case i < 2*m: // quadrant I, downwards
		y, sign = 2*m-i, 1
	case i == 2*m: // (a, 0)
		y, sign = 0, 1
	case i <= 3*m: // quadrant IV, downwards
		y, sign = 2*m-i, 1
	default: // quadrant III, back up towards the start
		y, sign = i-4*m, -1
	}
	x, err := EllipseX(a, b, float64(y))
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: signed(sign, x), Y: float64(y)}, nil
}

// signed returns sign*v, without producing a negative zero.
func signed(sign, v float64) float64 {
	if v == 0 {
		return 0
	}
	return sign * v
}

// EllipseX returns the non-negative x with x²/a² + y²/b² = 1.
//
//	x = |(a/b) √(b² - y²)|
func EllipseX(a, b, y float64) (float64, error) {
	if err := checkEllipse("EllipseX", a, b, y, b); err != nil {
		return 0, err
	}
	x := math.Sqrt(b*b - y*y)
	x *= a
	x /= b
	return math.Abs(x), nil
}

// EllipseY returns the non-negative y with x²/a² + y²/b² = 1.
//
//	y = |(b/a) √(a² - x²)|
func EllipseY(a, b, x float64) (float64, error) {
	if err := checkEllipse("EllipseY", a, b, x, a); err != nil {
		return 0, err
	}
	y := math.Sqrt(a*a - x*x)
	y *= b
	y /= a
	return math.Abs(y), nil
}

// checkEllipse validates the arguments of EllipseX and EllipseY.
// The coordinate v must not exceed the semi-axis lim.
func checkEllipse(op string, a, b, v, lim float64) error {
	switch {
	case a == 0:
		diag.Report(component, op, "a is zero")
		return ErrZeroAxis
	case b == 0:
		diag.Report(component, op, "b is zero")
		return ErrZeroAxis
	case math.Abs(v) > math.Abs(lim):
		diag.Report(component, op, "coordinate exceeds the semi-axis")
		return fmt.Errorf("%g exceeds %g: %w", v, lim, ErrOutOfDomain)
	}
	return nil
}
