package rate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidValue = errors.New("rate value is not valid")

// Value is a published rate figure. The zero Value is absent: the bank did not publish
// a figure for that field, which is not the same thing as a rate of zero
type Value struct {
	d       decimal.Decimal
	present bool
}

// Absent returns a Value without a published figure
func Absent() Value {
	return Value{}
}

// NewValue wraps an already parsed decimal
func NewValue(d decimal.Decimal) Value {
	return Value{d: d, present: true}
}

// ParseValue converts the text of a rate element into a Value. Empty text is absent.
// Both "31,9512" and "31.9512" are accepted; when a comma is present any dots are
// treated as grouping separators
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absent(), nil
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Absent(), fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	if d.IsNegative() {
		return Absent(), fmt.Errorf("%w: negative rate %s", ErrInvalidValue, d.String())
	}

	return NewValue(d), nil
}

// MustParseValue is ParseValue that panics, for tests and literals
func MustParseValue(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(err)
	}

	return v
}

func (v Value) IsAbsent() bool {
	return !v.present
}

// Decimal returns the exact published figure
func (v Value) Decimal() (decimal.Decimal, bool) {
	return v.d, v.present
}

// Float64 returns the figure as a float for conversion math
func (v Value) Float64() (float64, bool) {
	if !v.present {
		return 0, false
	}

	return v.d.InexactFloat64(), true
}

func (v Value) String() string {
	if !v.present {
		return ""
	}

	return v.d.String()
}

func (v Value) Equal(o Value) bool {
	if v.present != o.present {
		return false
	}

	return !v.present || v.d.Equal(o.d)
}
