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

var lineCases = []TestCase{
	{Name: "horizontal", Width: 5, Height: 1, Shape: Line{P: pt(0, 0), Q: pt(4, 0), Slope: 0}},
	{Name: "steep", Width: 6, Height: 10, Shape: Line{P: pt(1, 1), Q: pt(5, 9), Slope: 2}},
	{Name: "falling", Width: 4, Height: 7, Shape: Line{P: pt(0, 6), Q: pt(3, 0), Slope: -2}},
	{Name: "vertical", Width: 3, Height: 8, Shape: Line{P: pt(2, 1), Q: pt(2, 7), Slope: 0}},
	{Name: "shallow", Width: 4, Height: 2, Shape: Line{P: pt(0, 0), Q: pt(3, 1), Slope: 1.0 / 3}},
}
