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
	"image"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/gridgeom/internal/diag"
	"seehuhn.de/go/gridgeom/rounding"
)

// DefaultMarker is the character used for plotted ellipse points.
const DefaultMarker = '*'

// PlotCoord is a cell in window coordinates, where (0, 0) is the upper
// left corner and y grows downwards.
type PlotCoord struct {
	X, Y   int
	Marker rune
}

// Point returns the cell position as an image.Point.
func (c PlotCoord) Point() image.Point {
	return image.Point{X: c.X, Y: c.Y}
}

// TranslatePoint converts rel, given relative to center with y growing
// upwards, into window coordinates.
//
// Both coordinates of center must be at least 1, and the result must not
// lie left of or above the window.
func TranslatePoint(rel, center image.Point) (image.Point, error) {
	const op = "TranslatePoint"
	if center.X < 1 || center.Y < 1 {
		diag.Report(component, op, "invalid center coordinates")
		return image.Point{}, fmt.Errorf("center %v: %w", center, ErrInvalidCenter)
	}
	abs := image.Point{X: center.X + rel.X, Y: center.Y - rel.Y}
	if abs.X < 0 || abs.Y < 0 {
		diag.Report(component, op, "point outside the window")
		return image.Point{}, fmt.Errorf("%v around %v: %w", rel, center, ErrOffGrid)
	}
	return abs, nil
}

// GeometricList rounds the ellipse points up to whole cells and places
// them around the window cell (cx, cy). The result has one PlotCoord per
// point, in the same order, each marked with DefaultMarker.
func (k *Kernel) GeometricList(pts EllipsePoints, cx, cy int) ([]PlotCoord, error) {
	const op = "GeometricList"
	switch {
	case len(pts) == 0:
		diag.Report(component, op, "invalid number of points")
		return nil, ErrNoPoints
	case cx < 0:
		diag.Report(component, op, "invalid center x")
		return nil, fmt.Errorf("center x %d: %w", cx, ErrInvalidCenter)
	case cy < 0:
		diag.Report(component, op, "invalid center y")
		return nil, fmt.Errorf("center y %d: %w", cy, ErrInvalidCenter)
	}

	center := image.Point{X: cx, Y: cy}
	res := make([]PlotCoord, 0, len(pts))
	for i, pt := range pts {
		x, err := k.Rounding.Round(pt.X, rounding.Up)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		y, err := k.Rounding.Round(pt.Y, rounding.Up)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		abs, err := TranslatePoint(image.Point{X: x, Y: y}, center)
		if err != nil {
			diag.Report(component, op, "translation failed")
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		res = append(res, PlotCoord{X: abs.X, Y: abs.Y, Marker: DefaultMarker})
	}
	return res, nil
}

// Bounds returns the smallest rectangle which covers all cells in coords.
// Cell (x, y) covers the unit square [x, x+1] × [y, y+1].
// The result is the zero rectangle if coords is empty.
func Bounds(coords []PlotCoord) rect.Rect {
	if len(coords) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: float64(coords[0].X),
		LLy: float64(coords[0].Y),
		URx: float64(coords[0].X + 1),
		URy: float64(coords[0].Y + 1),
	}
	for _, c := range coords[1:] {
		b.LLx = min(b.LLx, float64(c.X))
		b.LLy = min(b.LLy, float64(c.Y))
		b.URx = max(b.URx, float64(c.X+1))
		b.URy = max(b.URy, float64(c.Y+1))
	}
	return b
}
