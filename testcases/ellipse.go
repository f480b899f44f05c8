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

package testcases

import "seehuhn.de/go/geom/matrix"

var ellipseCases = []TestCase{
	{
		Name:   "circle_r4",
		Width:  13,
		Height: 13,
		Shape:  Ellipse{A: 4, B: 4},
		CTM:    matrix.Scale(8, 8),
	},
	{
		Name:   "wide_5x3",
		Width:  15,
		Height: 11,
		Shape:  Ellipse{A: 5, B: 3},
		CTM:    matrix.Scale(8, 8),
	},
	{
		Name:   "tall_2x6",
		Width:  9,
		Height: 17,
		Shape:  Ellipse{A: 2, B: 6},
		CTM:    matrix.Scale(8, 8),
	},
	{
		Name:   "negative_axes",
		Width:  19,
		Height: 9,
		Shape:  Ellipse{A: -7, B: -2.5},
		CTM:    matrix.Scale(6, 6),
	},
	{
		Name:   "fractional",
		Width:  17,
		Height: 13,
		Shape:  Ellipse{A: 6.5, B: 4.25},
		CTM:    matrix.Scale(6, 6),
	},
	{
		Name:   "terminal",
		Width:  85,
		Height: 29,
		Shape:  Ellipse{A: 40, B: 12},
		CTM:    matrix.Scale(2, 4),
	},
}
