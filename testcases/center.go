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

var centerCases = []TestCase{
	{Name: "odd_5x5", Width: 5, Height: 5, Shape: Center{Bias: 1, X: 3, Y: 3}},
	{Name: "even_upper_left", Width: 4, Height: 4, Shape: Center{Bias: 1, X: 2, Y: 2}},
	{Name: "even_lower_right", Width: 4, Height: 4, Shape: Center{Bias: 4, X: 3, Y: 3}},
	{Name: "even_upper_right", Width: 4, Height: 6, Shape: Center{Bias: 2, X: 3, Y: 3}},
	{Name: "terminal_lower_left", Width: 80, Height: 24, Shape: Center{Bias: 3, X: 40, Y: 13}},
	{Name: "mixed_lower_left", Width: 7, Height: 4, Shape: Center{Bias: 3, X: 4, Y: 3}},
	{Name: "invalid_bias", Width: 3, Height: 3, Shape: Center{Bias: 9, X: 2, Y: 2}},
}
