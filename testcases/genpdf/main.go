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

// Command genpdf draws the geometry fixtures.
// For every fixture it writes a PDF, a PNG rendered from the PDF by
// Ghostscript, and a PNG painted by gridgeom.Grid, so that the two
// renderings can be compared side by side.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gridgeom"
	"seehuhn.de/go/gridgeom/rounding"
	"seehuhn.de/go/gridgeom/testcases"
)

const refDir = "testdata/reference"

func main() {
	noGS := flag.Bool("no-gs", false, "skip the Ghostscript rendering")
	flag.Parse()

	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	k := gridgeom.NewKernel()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")
			gridPath := filepath.Join(refDir, name+"_grid.png")

			d, err := layout(k, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePDF(tc, d, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generateGridPNG(tc, d, gridPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *noGS {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// drawing is the geometry of one fixture, in cell coordinates with the
// origin in the upper left corner.
type drawing struct {
	cells   []gridgeom.PlotCoord // filled cells
	fill    *path.Data           // filled outline
	outline *path.Data           // stroked outline
}

func layout(k *gridgeom.Kernel, tc testcases.TestCase) (*drawing, error) {
	d := &drawing{}
	switch s := tc.Shape.(type) {
	case testcases.Ellipse:
		pts, err := k.PlotEllipsePoints(s.A, s.B)
		if err != nil {
			return nil, err
		}
		cx, cy, err := gridgeom.DetermineCenter(tc.Width, tc.Height, gridgeom.UpperLeft)
		if err != nil {
			return nil, err
		}
		d.cells, err = k.GeometricList(pts, cx, cy)
		if err != nil {
			return nil, err
		}

		// the exact samples, through the centres of the cells
		flipped := make(gridgeom.EllipsePoints, len(pts))
		for i, p := range pts {
			flipped[i] = vec.Vec2{X: p.X, Y: -p.Y}
		}
		d.outline = flipped.Path(vec.Vec2{X: float64(cx) + 0.5, Y: float64(cy) + 0.5})

	case testcases.Triangle:
		a := gridgeom.GridPoint{X: s.A.X, Y: s.A.Y}
		b := gridgeom.GridPoint{X: s.B.X, Y: s.B.Y}
		c := gridgeom.GridPoint{X: s.C.X, Y: s.C.Y}
		d.fill = gridgeom.TrianglePath(a, b, c)
		centroid, err := k.Centroid(&a, &b, &c, rounding.Nearest)
		if err != nil {
			return nil, err
		}
		d.cells = []gridgeom.PlotCoord{{X: centroid.X, Y: centroid.Y}}

	case testcases.Center:
		x, y, err := gridgeom.DetermineCenter(tc.Width, tc.Height, gridgeom.Orientation(s.Bias))
		if err != nil {
			return nil, err
		}
		d.cells = []gridgeom.PlotCoord{{X: x - 1, Y: y - 1}}
		d.outline = (&path.Data{}).
			MoveTo(vec.Vec2{X: 0, Y: 0}).
			LineTo(vec.Vec2{X: float64(tc.Width), Y: 0}).
			LineTo(vec.Vec2{X: float64(tc.Width), Y: float64(tc.Height)}).
			LineTo(vec.Vec2{X: 0, Y: float64(tc.Height)}).
			Close()

	case testcases.Line:
		p := gridgeom.GridPoint{X: s.P.X, Y: s.P.Y}
		q := gridgeom.GridPoint{X: s.Q.X, Y: s.Q.Y}
		mid, err := k.Midpoint(&p, &q, rounding.Nearest)
		if err != nil {
			return nil, err
		}
		d.cells = []gridgeom.PlotCoord{{X: mid.X, Y: mid.Y}}
		d.outline = (&path.Data{}).
			MoveTo(p.Vec().Add(vec.Vec2{X: 0.5, Y: 0.5})).
			LineTo(q.Vec().Add(vec.Vec2{X: 0.5, Y: 0.5}))

	default:
		return nil, fmt.Errorf("unknown shape %T", s)
	}
	return d, nil
}

func generatePDF(tc testcases.TestCase, d *drawing, pdfPath string) error {
	w, h := tc.PixelSize()

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, so that grey values are coverage values.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(w), float64(h))
	page.Fill()

	// PDF origin is bottom-left; the grid has its origin top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})
	page.Transform(tc.PixelCTM())

	if d.fill != nil {
		page.SetFillColor(color.DeviceGray(0.6))
		drawPath(page, d.fill)
		page.Fill()
	}

	page.SetFillColor(color.DeviceGray(1))
	for _, c := range d.cells {
		page.Rectangle(float64(c.X), float64(c.Y), 1, 1)
	}
	if len(d.cells) > 0 {
		page.Fill()
	}

	if d.outline != nil {
		page.SetStrokeColor(color.DeviceGray(0.4))
		page.SetLineWidth(0.1)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		drawPath(page, d.outline)
		page.Stroke()
	}

	return page.Close()
}

func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// generateGridPNG paints the filled parts of the drawing with
// gridgeom.Grid. Outlines are not stroked.
func generateGridPNG(tc testcases.TestCase, d *drawing, pngPath string) (err error) {
	w, h := tc.PixelSize()
	img := image.NewAlpha(image.Rect(0, 0, w, h))

	g := gridgeom.NewGrid(rect.Rect{URx: float64(w), URy: float64(h)})
	g.CTM = tc.PixelCTM()
	if d.fill != nil {
		g.FillPath(img, d.fill)
	}
	g.PlotCells(img, d.cells)

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
