package rounding

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		dir  Direction
		want int
	}{
		{2.5, Nearest, 3},
		{-2.5, Nearest, -3},
		{2.4, Nearest, 2},
		{2.4, Up, 3},
		{-2.4, Up, -2},
		{2.6, Down, 2},
		{-2.4, Down, -3},
		{2.9, TowardZero, 2},
		{-2.9, TowardZero, -2},
		{3, Up, 3},
		{3, Down, 3},
		{0, Nearest, 0},
		{math.Copysign(0, -1), Up, 0},
		{MaxCoord, Nearest, MaxCoord},
		{MinCoord, Down, MinCoord},
		{1.0000000000000002, Up, 2},
	}
	for _, tc := range cases {
		got, err := Round(tc.in, tc.dir)
		if err != nil {
			t.Errorf("Round(%g, %v): %v", tc.in, tc.dir, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Round(%g, %v) = %d, want %d", tc.in, tc.dir, got, tc.want)
		}
	}
}

func TestRoundOutOfRange(t *testing.T) {
	for _, v := range []float64{MaxCoord + 1, MinCoord - 1, math.Inf(1), math.Inf(-1), math.NaN(), 1e300} {
		for _, d := range []Direction{Nearest, Up, Down, TowardZero} {
			got, err := Round(v, d)
			if got != 0 || !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Round(%g, %v) = %d, %v; want 0, ErrOutOfRange", v, d, got, err)
			}
		}
	}
}

func TestRoundIdempotent(t *testing.T) {
	for _, v := range []float64{-1e6 - 0.5, -7.49, -0.5, 0.3, 0.5, 12.5, 99.99, 1e9} {
		r, err := Round(v, Nearest)
		if err != nil {
			t.Fatal(err)
		}
		again, err := Round(float64(r)*1.0, Nearest)
		if err != nil {
			t.Fatal(err)
		}
		if again != r {
			t.Errorf("Round(Round(%g)) = %d, want %d", v, again, r)
		}
	}
}

func TestModeRestored(t *testing.T) {
	e := NewEnv()
	for _, d := range []Direction{Nearest, TowardZero, Up, Down, Direction(42)} {
		if _, err := e.Round(1.5, d); err != nil {
			t.Fatal(err)
		}
		if m := e.Mode(); m != Nearest {
			t.Errorf("after Round(_, %v) mode is %v, want nearest", d, m)
		}
	}

	// failure paths must leave the mode alone as well
	e.Round(math.NaN(), TowardZero)
	if m := e.Mode(); m != Nearest {
		t.Errorf("after failed Round mode is %v", m)
	}
}

func TestUnknownDirection(t *testing.T) {
	e := NewEnv()
	got, _ := e.Round(2.7, Direction(-1))
	if got != 3 {
		t.Errorf("default mode nearest: got %d, want 3", got)
	}

	if err := e.SetDefault(Down); err != nil {
		t.Fatal(err)
	}
	got, _ = e.Round(2.7, Direction(9))
	if got != 2 {
		t.Errorf("default mode down: got %d, want 2", got)
	}
	// explicit directions are not affected by the default
	got, _ = e.Round(2.7, Nearest)
	if got != 3 {
		t.Errorf("Round(2.7, Nearest) = %d after SetDefault(Down)", got)
	}
	if e.Mode() != Down {
		t.Errorf("mode %v was not restored to down", e.Mode())
	}

	if err := e.SetDefault(Direction(7)); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("SetDefault(7) = %v", err)
	}
}

func TestConcurrentRound(t *testing.T) {
	e := NewEnv()
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := []Direction{Nearest, TowardZero}[i%2]
			want := map[Direction]int{Nearest: -3, TowardZero: -2}[d]
			for range 100 {
				got, err := e.Round(-2.5, d)
				if err != nil || got != want {
					t.Errorf("Round(-2.5, %v) = %d, %v", d, got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if e.Mode() != Nearest {
		t.Errorf("mode after concurrent use: %v", e.Mode())
	}
}

func TestDirectionString(t *testing.T) {
	if s := TowardZero.String(); s != "toward-zero" {
		t.Errorf("TowardZero.String() = %q", s)
	}
	if s := Direction(12).String(); s != "Direction(12)" {
		t.Errorf("Direction(12).String() = %q", s)
	}
}
