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
	"image"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Grid paints plotted cells and outlines into an alpha mask.
//
// The CTM maps grid coordinates to device coordinates, which are the pixel
// coordinates of the destination image. Only pixels inside Clip (in device
// coordinates) are modified.
//
// A Grid can be reused for several images, but is not safe for concurrent
// use.
type Grid struct {
	CTM  matrix.Matrix
	Clip rect.Rect

	r       *vector.Rasterizer
	scratch *image.Alpha
	origin  image.Point
}

// NewGrid returns a Grid with the identity transform and the given clip
// rectangle.
func NewGrid(clip rect.Rect) *Grid {
	return &Grid{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// Reset restores the identity transform and sets a new clip rectangle.
// The internal buffers are kept.
func (g *Grid) Reset(clip rect.Rect) {
	g.CTM = matrix.Identity
	g.Clip = clip
}

// PlotCells fills the unit square [x, x+1] × [y, y+1] of every coordinate.
func (g *Grid) PlotCells(dst *image.Alpha, coords []PlotCoord) {
	if len(coords) == 0 || !g.begin(dst) {
		return
	}
	for _, c := range coords {
		x := float64(c.X)
		y := float64(c.Y)
		g.moveTo(vec.Vec2{X: x, Y: y})
		g.lineTo(vec.Vec2{X: x + 1, Y: y})
		g.lineTo(vec.Vec2{X: x + 1, Y: y + 1})
		g.lineTo(vec.Vec2{X: x, Y: y + 1})
		g.r.ClosePath()
	}
	g.finish(dst)
}

// FillPath fills the interior of p, using the non-zero winding rule.
// Open subpaths are closed implicitly.
func (g *Grid) FillPath(dst *image.Alpha, p *path.Data) {
	if p == nil || len(p.Cmds) == 0 || !g.begin(dst) {
		return
	}

	var current, subpath vec.Vec2
	open := false
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				g.r.ClosePath()
			}
			current = p.Coords[coordIdx]
			subpath = current
			g.moveTo(current)
			open = true
			coordIdx++

		case path.CmdLineTo:
			current = p.Coords[coordIdx]
			g.lineTo(current)
			coordIdx++

		case path.CmdQuadTo:
			c := g.device(p.Coords[coordIdx])
			current = p.Coords[coordIdx+1]
			e := g.device(current)
			g.r.QuadTo(c.X, c.Y, e.X, e.Y)
			coordIdx += 2

		case path.CmdCubeTo:
			c1 := g.device(p.Coords[coordIdx])
			c2 := g.device(p.Coords[coordIdx+1])
			current = p.Coords[coordIdx+2]
			e := g.device(current)
			g.r.CubeTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
			coordIdx += 3

		case path.CmdClose:
			if open {
				g.r.ClosePath()
				open = false
			}
			current = subpath
		}
	}
	if open {
		g.r.ClosePath()
	}
	g.finish(dst)
}

// begin prepares the rasteriser for drawing into dst.
// It returns false if dst and the clip rectangle do not overlap.
func (g *Grid) begin(dst *image.Alpha) bool {
	b := dst.Bounds().Intersect(g.clipRect())
	if b.Empty() {
		return false
	}
	w, h := b.Dx(), b.Dy()
	if g.r == nil {
		g.r = vector.NewRasterizer(w, h)
	} else {
		g.r.Reset(w, h)
	}
	if g.scratch == nil || g.scratch.Rect.Dx() != w || g.scratch.Rect.Dy() != h {
		g.scratch = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		clear(g.scratch.Pix)
	}
	g.origin = b.Min
	return true
}

// finish composites the rasterised mask onto dst.
func (g *Grid) finish(dst *image.Alpha) {
	g.r.Draw(g.scratch, g.scratch.Bounds(), image.Opaque, image.Point{})

	w, h := g.scratch.Rect.Dx(), g.scratch.Rect.Dy()
	for y := range h {
		src := g.scratch.Pix[y*g.scratch.Stride : y*g.scratch.Stride+w]
		off := dst.PixOffset(g.origin.X, g.origin.Y+y)
		row := dst.Pix[off : off+w]
		for i, a := range src {
			row[i] = max(row[i], a)
		}
	}
}

// clipRect returns the pixels which lie entirely inside Clip.
func (g *Grid) clipRect() image.Rectangle {
	return image.Rect(
		int(math.Ceil(g.Clip.LLx)),
		int(math.Ceil(g.Clip.LLy)),
		int(math.Floor(g.Clip.URx)),
		int(math.Floor(g.Clip.URy)),
	)
}

type point32 struct {
	X, Y float32
}

// device transforms v to device space, relative to the current origin.
func (g *Grid) device(v vec.Vec2) point32 {
	m := g.CTM
	x := m[0]*v.X + m[2]*v.Y + m[4] - float64(g.origin.X)
	y := m[1]*v.X + m[3]*v.Y + m[5] - float64(g.origin.Y)
	return point32{X: float32(x), Y: float32(y)}
}

func (g *Grid) moveTo(v vec.Vec2) {
	p := g.device(v)
	g.r.MoveTo(p.X, p.Y)
}

func (g *Grid) lineTo(v vec.Vec2) {
	p := g.device(v)
	g.r.LineTo(p.X, p.Y)
}
