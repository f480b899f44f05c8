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

// Package gridgeom implements the geometry needed to plot ellipses and
// triangles on an integer grid, such as a terminal window.
//
// All decisions about float64 coordinates go through the comparisons of
// the [tolerance] package, and all conversions to grid coordinates go
// through the [rounding] package.
package gridgeom

//go:generate go run ./testcases/export

import (
	"errors"
	"log/slog"

	"seehuhn.de/go/gridgeom/internal/diag"
	"seehuhn.de/go/gridgeom/rounding"
	"seehuhn.de/go/gridgeom/tolerance"
)

const component = "gridgeom"

var (
	ErrZeroAxis       = errors.New("gridgeom: ellipse semi-axis is zero")
	ErrPointCount     = errors.New("gridgeom: number of ellipse points miscalculated")
	ErrTooManyPoints  = errors.New("gridgeom: too many ellipse points")
	ErrOutOfDomain    = errors.New("gridgeom: coordinate outside the ellipse")
	ErrSmallRect      = errors.New("gridgeom: rectangle smaller than 3x3")
	ErrNilPoint       = errors.New("gridgeom: missing point")
	ErrDuplicatePoint = errors.New("gridgeom: duplicate points")
	ErrZeroSlope      = errors.New("gridgeom: zero slope")
	ErrInvalidCenter  = errors.New("gridgeom: invalid center coordinate")
	ErrOffGrid        = errors.New("gridgeom: coordinate off the grid")
	ErrNoPoints       = errors.New("gridgeom: no points")
)

// Kernel holds the configuration shared by the geometric operations.
// Create one with NewKernel and adjust the fields as needed.
//
// A Kernel is safe for concurrent use as long as its fields are not
// modified.
type Kernel struct {
	// Tolerance supplies the comparison operators.
	Tolerance *tolerance.Context

	// Rounding converts coordinates to grid values.
	Rounding *rounding.Env

	// Precision is the number of decimal digits used for internal checks,
	// for example whether an ellipse axis or a slope is zero.
	// Must be at least 1.
	Precision int

	// MaxEllipsePoints limits the number of points PlotEllipsePoints
	// allocates for a single ellipse.
	MaxEllipsePoints int
}

// NewKernel returns a Kernel using the default tolerance context and
// rounding environment.
func NewKernel() *Kernel {
	return &Kernel{
		Tolerance:        tolerance.Default,
		Rounding:         rounding.Default,
		Precision:        defaultPrecision,
		MaxEllipsePoints: defaultMaxEllipsePoints,
	}
}

// Default values for Kernel parameters.
const (
	// defaultPrecision matches the 15 significant decimal digits of a
	// float64.
	defaultPrecision = 15

	// defaultMaxEllipsePoints allows a major semi-axis of 2^18 cells.
	defaultMaxEllipsePoints = 1 << 20
)

// SetLogger configures the logger for gridgeom and its sub-packages.
// By default nothing is logged. Failures are logged at
// [slog.LevelWarn] with the attributes "component", "op" and "reason";
// diagnostics are logged at [slog.LevelDebug].
// Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	diag.SetLogger(l)
}

// Logger returns the logger used by gridgeom.
func Logger() *slog.Logger {
	return diag.Logger()
}
