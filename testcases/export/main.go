// Command export writes the geometry fixtures, together with the values
// computed for them, to testdata/testcases.json.
// Run from the gridgeom module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/gridgeom"
	"seehuhn.de/go/gridgeom/rounding"
	"seehuhn.de/go/gridgeom/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	k := gridgeom.NewKernel()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(k, category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// input
	Axes     []float64 `json:"axes,omitempty"`
	Vertices [][]int   `json:"vertices,omitempty"`
	Bias     string    `json:"bias,omitempty"`

	// results
	Samples  [][]float64 `json:"samples,omitempty"`
	Cells    [][]int     `json:"cells,omitempty"`
	Area     float64     `json:"area,omitempty"`
	Inside   []bool      `json:"inside,omitempty"`
	Center   []int       `json:"center,omitempty"`
	Slope    *float64    `json:"slope,omitempty"`
	Midpoint []int       `json:"midpoint,omitempty"`
	Length   float64     `json:"length,omitempty"`
}

func toJSON(k *gridgeom.Kernel, category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	switch s := tc.Shape.(type) {
	case testcases.Ellipse:
		jtc.Kind = "ellipse"
		jtc.Axes = []float64{s.A, s.B}
		pts, err := k.PlotEllipsePoints(s.A, s.B)
		if err != nil {
			return jtc, err
		}
		for _, p := range pts {
			jtc.Samples = append(jtc.Samples, []float64{p.X, p.Y})
		}
		cx, cy, err := gridgeom.DetermineCenter(tc.Width, tc.Height, gridgeom.UpperLeft)
		if err != nil {
			return jtc, err
		}
		jtc.Center = []int{cx, cy}
		coords, err := k.GeometricList(pts, cx, cy)
		if err != nil {
			return jtc, err
		}
		for _, c := range coords {
			jtc.Cells = append(jtc.Cells, []int{c.X, c.Y})
		}

	case testcases.Triangle:
		jtc.Kind = "triangle"
		a := gridgeom.GridPoint{X: s.A.X, Y: s.A.Y}
		b := gridgeom.GridPoint{X: s.B.X, Y: s.B.Y}
		c := gridgeom.GridPoint{X: s.C.X, Y: s.C.Y}
		jtc.Vertices = [][]int{{a.X, a.Y}, {b.X, b.Y}, {c.X, c.Y}}
		jtc.Area = k.TriangleArea(a, b, c)
		for _, p := range append(slices.Clone(s.Inside), s.Outside...) {
			jtc.Cells = append(jtc.Cells, []int{p.X, p.Y})
			in := k.PointInTriangle(a, b, c, gridgeom.GridPoint{X: p.X, Y: p.Y}, 6)
			jtc.Inside = append(jtc.Inside, in)
		}

	case testcases.Center:
		jtc.Kind = "center"
		o := gridgeom.Orientation(s.Bias)
		jtc.Bias = o.String()
		x, y, err := gridgeom.DetermineCenter(tc.Width, tc.Height, o)
		if err != nil {
			return jtc, err
		}
		jtc.Center = []int{x, y}

	case testcases.Line:
		jtc.Kind = "line"
		p := gridgeom.GridPoint{X: s.P.X, Y: s.P.Y}
		q := gridgeom.GridPoint{X: s.Q.X, Y: s.Q.Y}
		jtc.Vertices = [][]int{{p.X, p.Y}, {q.X, q.Y}}
		slope := gridgeom.Slope(p, q)
		jtc.Slope = &slope
		mid, err := k.Midpoint(&p, &q, rounding.Nearest)
		if err != nil {
			return jtc, err
		}
		jtc.Midpoint = []int{mid.X, mid.Y}
		jtc.Length = gridgeom.Distance(p, q)
	}
	return jtc, nil
}
