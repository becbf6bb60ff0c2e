// Package dechours models an amount of time in decimal hours, such as
// '4.5 hours' instead of '4:30'. Decimal hours are commonly used for
// payroll and hourly billing; in decimal time one hour has one hundred
// decimal minutes.
package dechours

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// MinutesPerDecimalHour is the number of decimal minutes in one hour.
const MinutesPerDecimalHour = 100

// remainder maps a minute of hour (0-59) to its decimal-minute equivalent,
// precomputed as round(minute * 100 / 60) so conversion is an array index
// instead of a floating point rounding at call time.
var remainder = [60]int64{
	0, 2, 3, 5, 7, 8, 10, 12, 13, 15,
	17, 18, 20, 22, 23, 25, 27, 28, 30, 32,
	33, 35, 37, 38, 40, 42, 43, 45, 47, 48,
	50, 52, 53, 55, 57, 58, 60, 62, 63, 65,
	67, 68, 70, 72, 73, 75, 77, 78, 80, 82,
	83, 85, 87, 88, 90, 92, 93, 95, 97, 98,
}

var (
	ErrMinuteOfHour    = errors.New("dechours: minute of hour must be in range [0, 59]")
	ErrOverflow        = errors.New("dechours: decimal minutes overflow int64")
	ErrUnsupportedUnit = errors.New("dechours: unsupported unit")
	ErrNotSupported    = errors.New("dechours: operation not supported")
	ErrNilAmount       = errors.New("dechours: amount is nil")
)

// DecimalHours is an immutable decimal hour based amount of time. The zero
// value is zero hours. Two values with the same decimal minutes are equal
// in every observable respect; compare with == or Cmp, never by identity.
type DecimalHours struct {
	decimalMinutes int64
}

// Of builds a DecimalHours from conventional hours and a minute of hour in
// [0, 59]. The sign of the amount follows hours: Of(-1, 30) is -50 decimal
// minutes. Overflow of hours*100 plus the minute remainder is reported as
// ErrOverflow, never wrapped silently.
func Of(hours, minutes int64) (DecimalHours, error) {
	if minutes < 0 || minutes > 59 {
		return DecimalHours{}, fmt.Errorf("%w: %d", ErrMinuteOfHour, minutes)
	}

	if hours > math.MaxInt64/MinutesPerDecimalHour || hours < math.MinInt64/MinutesPerDecimalHour {
		return DecimalHours{}, fmt.Errorf("%w: %d hours", ErrOverflow, hours)
	}
	decimal_minutes := hours * MinutesPerDecimalHour

	rem := remainder[minutes]
	if decimal_minutes > math.MaxInt64-rem {
		return DecimalHours{}, fmt.Errorf("%w: %d hours %d minutes", ErrOverflow, hours, minutes)
	}

	return DecimalHours{decimal_minutes + rem}, nil
}

// OfDecimalMinutes wraps an already canonical decimal minute count, e.g.
// when loading a stored value or summing amounts.
func OfDecimalMinutes(decimalMinutes int64) DecimalHours {
	return DecimalHours{decimalMinutes}
}

// FromFloat builds a DecimalHours from a floating decimal hour value,
// truncating toward zero. Values beyond the int64 decimal-minute range
// saturate at the bounds and NaN maps to the zero value; callers that care
// should range check before converting.
func FromFloat(decimalHours float64) DecimalHours {
	f := decimalHours * MinutesPerDecimalHour

	switch {
	case math.IsNaN(f):
		return DecimalHours{}
	case f >= math.MaxInt64:
		return DecimalHours{math.MaxInt64}
	case f <= math.MinInt64:
		return DecimalHours{math.MinInt64}
	}

	return DecimalHours{int64(f)}
}

// From converts an arbitrary temporal amount to a DecimalHours. A
// DecimalHours is returned unchanged. Otherwise the amount's hours and
// minutes units are read (absent units count as zero) and combined via Of.
func From(amount TemporalAmount) (DecimalHours, error) {
	if d, ok := amount.(DecimalHours); ok {
		return d, nil
	}
	if amount == nil {
		return DecimalHours{}, ErrNilAmount
	}

	var hours, minutes int64

	for _, unit := range amount.Units() {
		if unit == UnitHours {
			value, err := amount.Get(UnitHours)
			if err != nil {
				return DecimalHours{}, err
			}
			hours = value
		}
		if unit == UnitMinutes {
			value, err := amount.Get(UnitMinutes)
			if err != nil {
				return DecimalHours{}, err
			}
			minutes = value
		}
	}

	return Of(hours, minutes)
}

// Amount returns the value as floating decimal hours, e.g. 450 decimal
// minutes is 4.5.
func (d DecimalHours) Amount() float64 {
	return float64(d.decimalMinutes) / MinutesPerDecimalHour
}

// Decimal returns the exact amount with two fractional digits.
func (d DecimalHours) Decimal() decimal.Decimal {
	return decimal.New(d.decimalMinutes, -2)
}

// DecimalMinutes returns the canonical internal count of decimal minutes.
func (d DecimalHours) DecimalMinutes() int64 {
	return d.decimalMinutes
}

// Get returns the value for the decimal-hours unit and fails with
// ErrUnsupportedUnit for any other unit.
func (d DecimalHours) Get(unit Unit) (int64, error) {
	if unit == UnitDecimalHours {
		return d.decimalMinutes, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrUnsupportedUnit, unit)
}

// Units returns the single unit this amount is expressed in.
func (d DecimalHours) Units() []Unit {
	return []Unit{UnitDecimalHours}
}

// AddTo is not supported in this version; decimal hour amounts cannot be
// combined with calendar temporals yet.
func (d DecimalHours) AddTo(t time.Time) (time.Time, error) {
	return time.Time{}, ErrNotSupported
}

// SubtractFrom is not supported in this version.
func (d DecimalHours) SubtractFrom(t time.Time) (time.Time, error) {
	return time.Time{}, ErrNotSupported
}

// Cmp returns -1, 0 or 1 comparing by decimal minutes. The comparison is
// three-way on purpose; a subtraction based compare overflows for extreme
// values.
func (d DecimalHours) Cmp(other DecimalHours) int {
	switch {
	case d.decimalMinutes < other.decimalMinutes:
		return -1
	case d.decimalMinutes > other.decimalMinutes:
		return 1
	}

	return 0
}

// String returns the raw decimal minute count, the canonical textual form
// since it round-trips losslessly.
func (d DecimalHours) String() string {
	return strconv.FormatInt(d.decimalMinutes, 10)
}
