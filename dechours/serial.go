package dechours

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"

	"github.com/shopspring/decimal"
)

// serialVersion tags the binary form so the layout can evolve.
const serialVersion byte = 1

const serialSize = 9 // version byte + big-endian int64

// MarshalBinary encodes the value as an opaque versioned blob holding only
// the decimal minute count.
func (d DecimalHours) MarshalBinary() ([]byte, error) {
	buf := make([]byte, serialSize)
	buf[0] = serialVersion
	binary.BigEndian.PutUint64(buf[1:], uint64(d.decimalMinutes))

	return buf, nil
}

// UnmarshalBinary decodes a blob produced by MarshalBinary.
func (d *DecimalHours) UnmarshalBinary(data []byte) error {
	if len(data) != serialSize {
		return fmt.Errorf("dechours: invalid serial form: %d bytes", len(data))
	}
	if data[0] != serialVersion {
		return fmt.Errorf("dechours: unknown serial version: %d", data[0])
	}

	d.decimalMinutes = int64(binary.BigEndian.Uint64(data[1:]))

	return nil
}

// Value stores the decimal minute count as a plain integer column.
func (d DecimalHours) Value() (driver.Value, error) {
	return d.decimalMinutes, nil
}

// Scan reads the integer column written by Value.
func (d *DecimalHours) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.decimalMinutes = 0
		return nil
	case int64:
		d.decimalMinutes = v
		return nil
	}

	return fmt.Errorf("dechours: cannot scan %T into DecimalHours", value)
}

// MarshalJSON renders the amount as a bare decimal number with two
// fractional digits, e.g. 450 decimal minutes as 4.5. The canonical textual
// form stays the integer String form; JSON is a service level convenience.
func (d DecimalHours) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal().String()), nil
}

// UnmarshalJSON parses a decimal number of hours, truncating any digits
// past the second fractional place toward zero like FromFloat.
func (d *DecimalHours) UnmarshalJSON(data []byte) error {
	var dec decimal.Decimal
	if err := dec.UnmarshalJSON(data); err != nil {
		return err
	}

	d.decimalMinutes = dec.Mul(decimal.New(MinutesPerDecimalHour, 0)).IntPart()

	return nil
}
