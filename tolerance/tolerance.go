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

// Package tolerance compares float64 values to a given number of decimal
// digits.
//
// A precision p corresponds to the tolerance window 10^-p, the precision
// mask. Precisions above what the machine can resolve are clamped to the
// machine ceiling, which is determined once per [Context].
package tolerance

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"seehuhn.de/go/gridgeom/internal/diag"
)

const component = "tolerance"

// MaxDigits is the largest digit count accepted by [Truncate].
// The smallest subnormal float64 has 1074 decimal places.
const MaxDigits = 1074

var (
	// ErrInvalidPrecision is returned for precisions smaller than 1.
	ErrInvalidPrecision = errors.New("tolerance: precision must be at least 1")

	// ErrInvalidDigits is returned by Truncate for digit counts outside
	// [0, MaxDigits].
	ErrInvalidDigits = errors.New("tolerance: digit count out of range")
)

// Strategy selects how the strict "less than" relation is decided.
type Strategy int

const (
	// MaskWindow decides x < y the same way GreaterThan decides y > x.
	MaskWindow Strategy = iota

	// Truncation rounds both operands to p decimal places through their
	// decimal string representation and compares the results.
	Truncation
)

func (s Strategy) String() string {
	switch s {
	case MaskWindow:
		return "mask-window"
	case Truncation:
		return "truncation"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Context holds the machine precision ceiling and the precision masks
// derived from it. The ceiling is computed on first use and never changes
// afterwards, so a Context may be shared between goroutines.
//
// A Context must not be copied after first use.
type Context struct {
	// Less selects the strategy used by LessThan and LessOrEqual.
	Less Strategy

	once    sync.Once
	ceiling int
	masks   sync.Map // int -> float64
}

// New returns a Context using the MaskWindow strategy.
func New() *Context {
	return &Context{}
}

// Default is the Context used by the package-level functions.
var Default = New()

// Ceiling returns the number of decimal digits this machine resolves in
// float64 arithmetic. This is the smaller of the calculation accuracy and
// the storage accuracy.
func (c *Context) Ceiling() int {
	c.once.Do(func() {
		c.ceiling = min(calculationAccuracy(), storageAccuracy())
	})
	return c.ceiling
}

// calculationAccuracy returns the largest k for which 1 + 10^-k != 1.
func calculationAccuracy() int {
	k := 0
	for step := 0.1; 1+step != 1; step /= 10 {
		k++
	}
	return k
}

// storageAccuracy is like calculationAccuracy, but forces every sum
// through a stored float64 before comparing.
func storageAccuracy() int {
	var sum float64
	k := 0
	for step := 0.1; ; step /= 10 {
		sum = float64(1 + step)
		if sum == 1 {
			break
		}
		k++
	}
	return k
}

// Mask returns the tolerance window 10^-p for precision p.
// Precisions above the machine ceiling are clamped to the ceiling.
// The result is always in (0, 1].
func (c *Context) Mask(p int) (float64, error) {
	m, ok := c.mask("Mask", p)
	if !ok {
		return 0, fmt.Errorf("precision %d: %w", p, ErrInvalidPrecision)
	}
	return m, nil
}

// mask is Mask with failures reported on behalf of op.
func (c *Context) mask(op string, p int) (float64, bool) {
	if p < 1 {
		diag.Report(component, op, "invalid precision")
		return 0, false
	}
	p = min(p, c.Ceiling())
	if m, ok := c.masks.Load(p); ok {
		return m.(float64), true
	}

	// Repeated multiplication, so that math.Pow does not contribute a
	// second rounding error.
	m := 1.0
	for range p {
		m *= 0.1
	}
	c.masks.Store(p, m)
	return m, true
}

// GreaterThan reports whether x > y at precision p.
// All three of x > y, x+mask > y+mask and x-mask > y-mask must hold, so
// that adding the mask cannot flip the result near the boundary.
func (c *Context) GreaterThan(x, y float64, p int) bool {
	m, ok := c.mask("GreaterThan", p)
	if !ok {
		return false
	}
	return x > y && x+m > y+m && x-m > y-m
}

// LessThan reports whether x < y at precision p, using the strategy
// selected by c.Less.
func (c *Context) LessThan(x, y float64, p int) bool {
	m, ok := c.mask("LessThan", p)
	if !ok {
		return false
	}

	if c.Less == Truncation {
		tx, err := Truncate(x, p)
		if err != nil {
			return false
		}
		ty, err := Truncate(y, p)
		if err != nil {
			return false
		}
		return tx < ty
	}
	return x < y && x+m < y+m && x-m < y-m
}

// EqualTo reports whether x lies strictly within the precision mask of y.
// The window is checked from both sides. Identical values are always
// equal, even where the mask is below the resolution of x.
func (c *Context) EqualTo(x, y float64, p int) bool {
	m, ok := c.mask("EqualTo", p)
	if !ok {
		return false
	}
	if x == y {
		return true
	}
	return x+m > y && x-m < y && x < y+m && x > y-m
}

// NotEqual is the negation of EqualTo.
func (c *Context) NotEqual(x, y float64, p int) bool {
	return !c.EqualTo(x, y, p)
}

// GreaterOrEqual reports whether x is EqualTo y or GreaterThan y.
func (c *Context) GreaterOrEqual(x, y float64, p int) bool {
	return c.EqualTo(x, y, p) || c.GreaterThan(x, y, p)
}

// LessOrEqual reports whether x is EqualTo y or LessThan y.
func (c *Context) LessOrEqual(x, y float64, p int) bool {
	return c.EqualTo(x, y, p) || c.LessThan(x, y, p)
}

// Truncate returns val with only the given number of decimal places.
// The value is formatted to exactly that many places and parsed back.
// A digit count of 0 returns val unchanged.
func Truncate(val float64, digits int) (float64, error) {
	if digits == 0 {
		return val, nil
	}
	if digits < 0 || digits > MaxDigits {
		diag.Report(component, "Truncate", "invalid number of digits")
		return 0, fmt.Errorf("%d digits: %w", digits, ErrInvalidDigits)
	}
	s := strconv.FormatFloat(val, 'f', digits, 64)
	res, err := strconv.ParseFloat(s, 64)
	if err != nil {
		diag.Report(component, "Truncate", "parse failed")
		return 0, err
	}
	return res, nil
}

// Mask calls Default.Mask.
func Mask(p int) (float64, error) { return Default.Mask(p) }

// GreaterThan calls Default.GreaterThan.
func GreaterThan(x, y float64, p int) bool { return Default.GreaterThan(x, y, p) }

// LessThan calls Default.LessThan.
func LessThan(x, y float64, p int) bool { return Default.LessThan(x, y, p) }

// EqualTo calls Default.EqualTo.
func EqualTo(x, y float64, p int) bool { return Default.EqualTo(x, y, p) }

// NotEqual calls Default.NotEqual.
func NotEqual(x, y float64, p int) bool { return Default.NotEqual(x, y, p) }

// GreaterOrEqual calls Default.GreaterOrEqual.
func GreaterOrEqual(x, y float64, p int) bool { return Default.GreaterOrEqual(x, y, p) }

// LessOrEqual calls Default.LessOrEqual.
func LessOrEqual(x, y float64, p int) bool { return Default.LessOrEqual(x, y, p) }
