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

import (
	"image"

	"seehuhn.de/go/geom/matrix"
)

var triangleCases = []TestCase{
	{
		Name:   "right_3_4",
		Width:  6,
		Height: 5,
		Shape: Triangle{
			A: pt(0, 0), B: pt(4, 0), C: pt(0, 3),
			Area:    6,
			Inside:  []image.Point{pt(1, 1)},
			Outside: []image.Point{pt(5, 5), pt(3, 3)},
		},
		CTM: matrix.Scale(8, 8),
	},
	{
		Name:   "scalene",
		Width:  11,
		Height: 10,
		Shape: Triangle{
			A: pt(2, 1), B: pt(9, 3), C: pt(4, 8),
			Area:    22.5,
			Inside:  []image.Point{pt(5, 4), pt(4, 3)},
			Outside: []image.Point{pt(1, 8), pt(9, 8), pt(8, 1)},
		},
		CTM: matrix.Scale(6, 6),
	},
	{
		Name:   "needle",
		Width:  22,
		Height: 4,
		Shape: Triangle{
			A: pt(0, 0), B: pt(20, 1), C: pt(10, 2),
			Area:    15,
			Inside:  []image.Point{pt(10, 1)},
			Outside: []image.Point{pt(10, 3), pt(5, 2)},
		},
		CTM: matrix.Scale(4, 4),
	},
	{
		Name:   "large",
		Width:  302,
		Height: 202,
		Shape: Triangle{
			A: pt(0, 0), B: pt(300, 0), C: pt(0, 200),
			Area:    30000,
			Inside:  []image.Point{pt(10, 10), pt(100, 100)},
			Outside: []image.Point{pt(200, 100), pt(299, 199)},
		},
		CTM: matrix.Scale(0.5, 0.5),
	},
}
