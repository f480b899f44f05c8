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
	"errors"
	"image"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestDetermineCenter(t *testing.T) {
	tests := []struct {
		w, h   int
		o      Orientation
		wx, wy int
	}{
		{5, 5, UpperLeft, 3, 3},
		{4, 4, UpperLeft, 2, 2},
		{4, 4, LowerRight, 3, 3},
		{4, 4, UpperRight, 3, 2},
		{4, 4, LowerLeft, 2, 3},
		{3, 3, LowerRight, 2, 2},
		{80, 24, UpperLeft, 40, 12},
		{80, 24, LowerRight, 41, 13},
		{6, 6, Orientation(0), 3, 3},
		{6, 6, Orientation(17), 3, 3},
	}
	for _, tt := range tests {
		x, y, err := DetermineCenter(tt.w, tt.h, tt.o)
		if err != nil {
			t.Errorf("%dx%d %s: %v", tt.w, tt.h, tt.o, err)
			continue
		}
		if x != tt.wx || y != tt.wy {
			t.Errorf("%dx%d %s: got (%d, %d), want (%d, %d)",
				tt.w, tt.h, tt.o, x, y, tt.wx, tt.wy)
		}
		if x < 1 || y < 1 || x > tt.w || y > tt.h {
			t.Errorf("%dx%d %s: center (%d, %d) outside", tt.w, tt.h, tt.o, x, y)
		}
	}
}

func TestDetermineCenterSmall(t *testing.T) {
	for _, size := range [][2]int{{2, 5}, {5, 2}, {0, 0}, {-3, 7}} {
		_, _, err := DetermineCenter(size[0], size[1], UpperLeft)
		if !errors.Is(err, ErrSmallRect) {
			t.Errorf("%v: got %v, want ErrSmallRect", size, err)
		}
	}
}

func TestCenterOf(t *testing.T) {
	r := rect.Rect{LLx: 10, LLy: 20, URx: 15, URy: 25}
	p, err := CenterOf(r, UpperLeft)
	if err != nil {
		t.Fatal(err)
	}
	if want := (image.Point{X: 12, Y: 22}); p != want {
		t.Errorf("got %v, want %v", p, want)
	}

	// partial cells are ignored
	r = rect.Rect{LLx: 0.5, LLy: 0, URx: 5.5, URy: 4}
	p, err = CenterOf(r, LowerRight)
	if err != nil {
		t.Fatal(err)
	}
	if want := (image.Point{X: 3, Y: 2}); p != want {
		t.Errorf("got %v, want %v", p, want)
	}

	if _, err := CenterOf(rect.Rect{URx: 2, URy: 10}, UpperLeft); !errors.Is(err, ErrSmallRect) {
		t.Errorf("small rectangle: got %v", err)
	}
}

func TestOrientationString(t *testing.T) {
	if s := LowerLeft.String(); s != "lower-left" {
		t.Errorf("got %q", s)
	}
	if s := Orientation(9).String(); s != "Orientation(9)" {
		t.Errorf("got %q", s)
	}
}
