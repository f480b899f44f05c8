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

// Package testcases holds shared geometry fixtures for the tests and the
// fixture tools.
package testcases

import (
	"image"

	"seehuhn.de/go/geom/matrix"
)

// TestCase defines a single geometry test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in cells
	Height int           // canvas height in cells
	Shape  Shape         // the geometry under test
	CTM    matrix.Matrix // cell to pixel transform for images (zero-value means one pixel per cell)
}

// Shape is the geometry of a test case.
type Shape interface {
	isShape()
}

// Ellipse is an ellipse with semi-axes A and B, centred on the canvas.
type Ellipse struct {
	A, B float64
}

func (Ellipse) isShape() {}

// Triangle is a triangle on the integer grid, together with grid points
// which are known to lie inside or outside of it.
type Triangle struct {
	A, B, C image.Point
	Area    float64 // expected area
	Inside  []image.Point
	Outside []image.Point
}

func (Triangle) isShape() {}

// Center is an expected center cell of the canvas.
// Bias uses the numbering of gridgeom.Orientation, starting at 1 for
// upper-left.
type Center struct {
	Bias int
	X, Y int // expected 1-based center cell
}

func (Center) isShape() {}

// Line is a line segment between two grid points.
type Line struct {
	P, Q  image.Point
	Slope float64 // expected slope, 0 for vertical lines
}

func (Line) isShape() {}

// PixelCTM returns the transform from cells to pixels.
func (tc TestCase) PixelCTM() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// PixelSize returns the size of the canvas in pixels, for transforms
// which scale but do not rotate.
func (tc TestCase) PixelSize() (w, h int) {
	m := tc.PixelCTM()
	return int(float64(tc.Width)*m[0] + 0.5), int(float64(tc.Height)*m[3] + 0.5)
}

// pt is a helper to create an image.Point.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}
