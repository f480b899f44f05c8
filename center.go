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
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/gridgeom/internal/diag"
)

// Orientation selects which cell is the center of a rectangle whose
// width or height is even.
type Orientation int

const (
	UpperLeft Orientation = iota + 1
	UpperRight
	LowerLeft
	LowerRight
)

func (o Orientation) String() string {
	switch o {
	case UpperLeft:
		return "upper-left"
	case UpperRight:
		return "upper-right"
	case LowerLeft:
		return "lower-left"
	case LowerRight:
		return "lower-right"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// DetermineCenter returns the 1-based center cell of a width×height
// rectangle. For an even dimension the center is biased towards the side
// given by o; invalid orientations are treated as UpperLeft.
func DetermineCenter(width, height int, o Orientation) (x, y int, err error) {
	if width < 3 {
		diag.Report(component, "DetermineCenter", "invalid width")
		return 0, 0, fmt.Errorf("width %d: %w", width, ErrSmallRect)
	}
	if height < 3 {
		diag.Report(component, "DetermineCenter", "invalid height")
		return 0, 0, fmt.Errorf("height %d: %w", height, ErrSmallRect)
	}
	if o < UpperLeft || o > LowerRight {
		o = UpperLeft
	}

	right := o == UpperRight || o == LowerRight
	lower := o == LowerLeft || o == LowerRight
	return centerOf(width, right), centerOf(height, lower), nil
}

// CenterOf returns the center cell of the grid cells covered by r, in the
// coordinates of r. The cells of r are numbered from r.LLx and r.LLy, so
// that the result is always inside r.
func CenterOf(r rect.Rect, o Orientation) (image.Point, error) {
	x0 := int(math.Ceil(r.LLx))
	y0 := int(math.Ceil(r.LLy))
	w := int(math.Floor(r.URx)) - x0
	h := int(math.Floor(r.URy)) - y0
	x, y, err := DetermineCenter(w, h, o)
	if err != nil {
		return image.Point{}, err
	}
	return image.Point{X: x0 + x - 1, Y: y0 + y - 1}, nil
}

// centerOf returns the center of a dimension of size n. Even sizes are
// made odd first, by growing them if up is set and by shrinking them
// otherwise.
func centerOf(n int, up bool) int {
	if n%2 == 0 {
		if up {
			n++
		} else {
			n--
		}
	}
	return (n-1)/2 + 1
}
