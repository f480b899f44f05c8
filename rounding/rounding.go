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

// Package rounding converts float64 values to grid coordinates.
package rounding

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"seehuhn.de/go/gridgeom/internal/diag"
)

const component = "rounding"

// Direction selects how a value is rounded to an integer.
type Direction int

const (
	// Nearest rounds to the nearest integer, halfway cases away from zero.
	Nearest Direction = iota

	// Up rounds toward positive infinity.
	Up

	// Down rounds toward negative infinity.
	Down

	// TowardZero discards the fractional part.
	TowardZero
)

func (d Direction) String() string {
	switch d {
	case Nearest:
		return "nearest"
	case Up:
		return "up"
	case Down:
		return "down"
	case TowardZero:
		return "toward-zero"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) valid() bool {
	return d >= Nearest && d <= TowardZero
}

// The range of grid coordinates.
const (
	MinCoord = math.MinInt32
	MaxCoord = math.MaxInt32
)

var (
	// ErrOutOfRange is returned for values which cannot be represented
	// as a grid coordinate.
	ErrOutOfRange = errors.New("rounding: value outside the coordinate range")

	// ErrInvalidDirection is returned by SetDefault for unknown directions.
	ErrInvalidDirection = errors.New("rounding: invalid direction")
)

// Env is a rounding environment. It holds the current rounding mode,
// which Nearest and TowardZero switch to for the duration of a single call
// and which unknown directions fall back to.
//
// Mode switches are serialised, so an Env can be shared between
// goroutines.
type Env struct {
	mu   sync.Mutex
	mode Direction
}

// NewEnv returns an environment whose current mode is Nearest.
func NewEnv() *Env {
	return &Env{mode: Nearest}
}

// Default is the environment used by the package-level Round.
var Default = NewEnv()

// Mode returns the current rounding mode of e.
func (e *Env) Mode() Direction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// SetDefault changes the mode used for directions which are not
// recognised.
func (e *Env) SetDefault(d Direction) error {
	if !d.valid() {
		return fmt.Errorf("%v: %w", d, ErrInvalidDirection)
	}
	e.mu.Lock()
	e.mode = d
	e.mu.Unlock()
	return nil
}

// Round rounds v to an integer in direction d.
//
// Up and Down use ceil and floor followed by rounding to nearest, which
// removes floating point noise left after ceil/floor. Nearest and
// TowardZero switch the current mode of e for the duration of the call.
// Any other direction uses the current mode.
func (e *Env) Round(v float64, d Direction) (int, error) {
	switch {
	case math.IsNaN(v):
		diag.Report(component, "Round", "not a number")
		return 0, fmt.Errorf("%g: %w", v, ErrOutOfRange)
	case v > MaxCoord:
		diag.Report(component, "Round", "int overflow")
		return 0, fmt.Errorf("%g: %w", v, ErrOutOfRange)
	case v < MinCoord:
		diag.Report(component, "Round", "int underflow")
		return 0, fmt.Errorf("%g: %w", v, ErrOutOfRange)
	}

	switch d {
	case Up:
		return int(math.Round(math.Ceil(v))), nil
	case Down:
		return int(math.Round(math.Floor(v))), nil
	case Nearest, TowardZero:
		restore := e.enter(d)
		defer restore()
		return int(roundIn(e.mode, v)), nil
	default:
		return int(roundIn(e.Mode(), v)), nil
	}
}

// enter locks e and switches it to mode d. The returned function restores
// the previous mode and unlocks e.
func (e *Env) enter(d Direction) (restore func()) {
	e.mu.Lock()
	prev := e.mode
	e.mode = d
	return func() {
		e.mode = prev
		e.mu.Unlock()
	}
}

func roundIn(mode Direction, v float64) float64 {
	switch mode {
	case Up:
		return math.Ceil(v)
	case Down:
		return math.Floor(v)
	case TowardZero:
		return math.Trunc(v)
	default:
		return math.Round(v)
	}
}

// Round calls Default.Round.
func Round(v float64, d Direction) (int, error) {
	return Default.Round(v, d)
}
