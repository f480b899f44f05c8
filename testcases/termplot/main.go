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

// Command termplot plots ellipses in the terminal.
//
// Without arguments, every ellipse fixture is shown in turn. With -a and
// -b, a single ellipse with these semi-axes is shown.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	direct "github.com/buger/goterm"

	"seehuhn.de/go/gridgeom"
	"seehuhn.de/go/gridgeom/testcases"
)

func main() {
	a := flag.Float64("a", 0, "horizontal semi-axis")
	b := flag.Float64("b", 0, "vertical semi-axis")
	bias := flag.Int("bias", int(gridgeom.UpperLeft), "center bias, 1-4 for upper-left, upper-right, lower-left, lower-right")
	wait := flag.Duration("wait", 2*time.Second, "time to show each ellipse")
	verbose := flag.Bool("v", false, "log failures to stderr")
	flag.Parse()

	if *verbose {
		gridgeom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	var shapes []testcases.Ellipse
	if *a != 0 || *b != 0 {
		shapes = append(shapes, testcases.Ellipse{A: *a, B: *b})
	} else {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[category] {
				if s, ok := tc.Shape.(testcases.Ellipse); ok {
					shapes = append(shapes, s)
				}
			}
		}
	}

	k := gridgeom.NewKernel()
	for i, s := range shapes {
		if err := plot(k, s, gridgeom.Orientation(*bias)); err != nil {
			fmt.Fprintf(os.Stderr, "a=%g b=%g: %v\n", s.A, s.B, err)
			os.Exit(1)
		}
		if i < len(shapes)-1 {
			time.Sleep(*wait)
		}
	}
}

// plot draws one ellipse, centred in the terminal window.
// The bottom line of the terminal is used for a status message.
func plot(k *gridgeom.Kernel, s testcases.Ellipse, bias gridgeom.Orientation) error {
	w, h := direct.Width(), direct.Height()-1
	cx, cy, err := gridgeom.DetermineCenter(w, h, bias)
	if err != nil {
		return err
	}

	pts, err := k.PlotEllipsePoints(s.A, s.B)
	if err != nil {
		return err
	}
	coords, err := k.GeometricList(pts, cx, cy)
	if err != nil {
		return err
	}

	direct.Clear()
	clipped := 0
	for _, c := range coords {
		// terminal positions are 1-based, like the center cell
		if c.X < 1 || c.X > w || c.Y < 1 || c.Y > h {
			clipped++
			continue
		}
		direct.MoveCursor(c.X, c.Y)
		direct.Print(direct.Color(string(c.Marker), direct.CYAN))
	}

	direct.MoveCursor(1, h+1)
	status := fmt.Sprintf("a=%g b=%g points=%d center=(%d,%d)", s.A, s.B, len(coords), cx, cy)
	if clipped > 0 {
		status += direct.Color(fmt.Sprintf(" clipped=%d", clipped), direct.YELLOW)
	}
	direct.Print(status)
	direct.Flush()
	return nil
}
