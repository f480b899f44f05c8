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
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/gridgeom/rounding"
	"seehuhn.de/go/gridgeom/testcases"
)

func TestFixtures(t *testing.T) {
	k := NewKernel()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				switch s := tc.Shape.(type) {
				case testcases.Ellipse:
					checkEllipseFixture(t, k, name, tc, s)
				case testcases.Triangle:
					checkTriangleFixture(t, k, name, tc, s)
				case testcases.Center:
					checkCenterFixture(t, tc, s)
				case testcases.Line:
					checkLineFixture(t, k, s)
				default:
					t.Fatalf("unknown shape %T", s)
				}
			})
		}
	}
}

func checkEllipseFixture(t *testing.T, k *Kernel, name string, tc testcases.TestCase, s testcases.Ellipse) {
	t.Helper()

	pts, err := k.PlotEllipsePoints(s.A, s.B)
	if err != nil {
		t.Fatal(err)
	}
	m := int(max(math.Abs(s.A), math.Abs(s.B)))
	if len(pts) != 4*m {
		t.Errorf("got %d points, want %d", len(pts), 4*m)
	}
	for i, p := range pts {
		lhs := p.X*p.X/(s.A*s.A) + p.Y*p.Y/(s.B*s.B)
		if math.Abs(lhs-1) > 1e-9 {
			t.Errorf("point %d %v is not on the ellipse: %g", i, p, lhs)
		}
	}

	cx, cy, err := DetermineCenter(tc.Width, tc.Height, UpperLeft)
	if err != nil {
		t.Fatal(err)
	}
	coords, err := k.GeometricList(pts, cx, cy)
	if err != nil {
		t.Fatal(err)
	}
	if len(coords) != len(pts) {
		t.Fatalf("got %d plot coordinates, want %d", len(coords), len(pts))
	}
	b := Bounds(coords)
	canvas := rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
	if b.LLx < canvas.LLx || b.LLy < canvas.LLy || b.URx > canvas.URx || b.URy > canvas.URy {
		t.Errorf("plot %v exceeds the canvas %v", b, canvas)
	}

	// every plotted cell must be painted
	w, h := tc.PixelSize()
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	g := NewGrid(rect.Rect{URx: float64(w), URy: float64(h)})
	g.CTM = tc.PixelCTM()
	g.PlotCells(img, coords)
	for _, c := range coords {
		px, py := cellCenter(tc, c.X, c.Y)
		if a := img.AlphaAt(px, py).A; a != 255 {
			t.Errorf("cell %v: alpha %d, want 255", c.Point(), a)
		}
	}
	if t.Failed() {
		writeDebugImage(t, name, img)
	}
}

func checkTriangleFixture(t *testing.T, k *Kernel, name string, tc testcases.TestCase, s testcases.Triangle) {
	t.Helper()

	a, b, c := gridPoint(s.A), gridPoint(s.B), gridPoint(s.C)
	area := k.TriangleArea(a, b, c)
	if math.Abs(area-s.Area) > 1e-9*s.Area {
		t.Errorf("area = %g, want %g", area, s.Area)
	}
	for _, p := range s.Inside {
		if !k.PointInTriangle(a, b, c, gridPoint(p), 6) {
			t.Errorf("%v should be inside", p)
		}
	}
	for _, p := range s.Outside {
		if k.PointInTriangle(a, b, c, gridPoint(p), 6) {
			t.Errorf("%v should be outside", p)
		}
	}

	// the painted coverage must match the computed area
	w, h := tc.PixelSize()
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	g := NewGrid(rect.Rect{URx: float64(w), URy: float64(h)})
	g.CTM = tc.PixelCTM()
	g.FillPath(img, TrianglePath(a, b, c))

	var total float64
	for _, v := range img.Pix {
		total += float64(v) / 255
	}
	m := tc.PixelCTM()
	want := area * m[0] * m[3]
	if math.Abs(total-want) > 0.02*want+2 {
		t.Errorf("coverage %.1f, want %.1f", total, want)
		writeDebugImage(t, name, img)
	}
}

func checkCenterFixture(t *testing.T, tc testcases.TestCase, s testcases.Center) {
	t.Helper()

	o := Orientation(s.Bias)
	x, y, err := DetermineCenter(tc.Width, tc.Height, o)
	if err != nil {
		t.Fatal(err)
	}
	if x != s.X || y != s.Y {
		t.Errorf("center = (%d, %d), want (%d, %d)", x, y, s.X, s.Y)
	}

	r := rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
	p, err := CenterOf(r, o)
	if err != nil {
		t.Fatal(err)
	}
	if want := (image.Point{X: s.X - 1, Y: s.Y - 1}); p != want {
		t.Errorf("CenterOf = %v, want %v", p, want)
	}
}

func checkLineFixture(t *testing.T, k *Kernel, s testcases.Line) {
	t.Helper()

	p, q := gridPoint(s.P), gridPoint(s.Q)
	if !k.VerifySlope(p, q, s.Slope, 9) {
		t.Errorf("slope %g not verified, computed %g", s.Slope, Slope(p, q))
	}

	mid, err := k.Midpoint(&p, &q, rounding.Nearest)
	if err != nil {
		t.Fatal(err)
	}
	if mid.Dist != Distance(p, q)/2 {
		t.Errorf("midpoint distance %g, want %g", mid.Dist, Distance(p, q)/2)
	}
	if mid.X < min(p.X, q.X) || mid.X > max(p.X, q.X) ||
		mid.Y < min(p.Y, q.Y) || mid.Y > max(p.Y, q.Y) {
		t.Errorf("midpoint %v outside of %v-%v", mid, s.P, s.Q)
	}

	if p.X == q.X {
		return
	}
	y, err := k.SolvePointSlopeY(p.X, p.Y, q.X, s.Slope, rounding.Nearest)
	if err != nil {
		t.Fatal(err)
	}
	if y != q.Y {
		t.Errorf("SolvePointSlopeY = %d, want %d", y, q.Y)
	}
	if s.Slope == 0 {
		return
	}
	x, err := k.SolvePointSlopeX(p.X, p.Y, q.Y, s.Slope, rounding.Nearest)
	if err != nil {
		t.Fatal(err)
	}
	if x != q.X {
		t.Errorf("SolvePointSlopeX = %d, want %d", x, q.X)
	}
}

func gridPoint(p image.Point) GridPoint {
	return GridPoint{X: p.X, Y: p.Y}
}

// cellCenter returns the pixel under the center of cell (x, y).
func cellCenter(tc testcases.TestCase, x, y int) (int, int) {
	m := tc.PixelCTM()
	cx := (float64(x)+0.5)*m[0] + m[4]
	cy := (float64(y)+0.5)*m[3] + m[5]
	return int(math.Floor(cx)), int(math.Floor(cy))
}

func writeDebugImage(t *testing.T, name string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll("debug", 0755); err != nil {
		t.Log(err)
		return
	}
	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		t.Log(err)
		return
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		t.Log(err)
	}
}

func TestLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	k := NewKernel()
	if _, err := k.PlotEllipsePoints(0, 3); err == nil {
		t.Fatal("expected an error for a zero axis")
	}
	out := buf.String()
	for _, want := range []string{"level=WARN", "component=gridgeom", "op=PlotEllipsePoints"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("nil logger should restore the silent default")
	}
}
