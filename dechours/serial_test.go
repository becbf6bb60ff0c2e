package dechours

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryRoundTrip(t *testing.T) {
	for _, decimal_minutes := range []int64{0, 450, -50, 9223372036854775807, -9223372036854775808} {
		d := OfDecimalMinutes(decimal_minutes)

		blob, err := d.MarshalBinary()
		assert.NoError(t, err)
		assert.Len(t, blob, 9)
		assert.Equal(t, byte(1), blob[0])

		var got DecimalHours
		assert.NoError(t, got.UnmarshalBinary(blob))
		assert.Equal(t, d, got)
	}
}

func TestUnmarshalBinaryRejectsGarbage(t *testing.T) {
	var d DecimalHours

	assert.Error(t, d.UnmarshalBinary(nil))
	assert.Error(t, d.UnmarshalBinary([]byte{1, 2, 3}))

	// wrong version tag
	assert.Error(t, d.UnmarshalBinary([]byte{9, 0, 0, 0, 0, 0, 0, 1, 194}))
}

func TestSQLRoundTrip(t *testing.T) {
	d, _ := Of(4, 30)

	value, err := d.Value()
	assert.NoError(t, err)
	assert.Equal(t, int64(450), value)

	var got DecimalHours
	assert.NoError(t, got.Scan(value))
	assert.Equal(t, d, got)

	assert.NoError(t, got.Scan(nil))
	assert.Equal(t, DecimalHours{}, got)

	assert.Error(t, got.Scan("450"))
}

func TestJSON(t *testing.T) {
	d, _ := Of(4, 30)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, "4.5", string(data))

	// a number inside a document, never a quoted string
	doc, err := json.Marshal(map[string]DecimalHours{"worked": d})
	assert.NoError(t, err)
	assert.Equal(t, `{"worked":4.5}`, string(doc))

	var got DecimalHours
	assert.NoError(t, json.Unmarshal([]byte("4.5"), &got))
	assert.Equal(t, d, got)

	// digits past the second fractional place truncate toward zero
	assert.NoError(t, json.Unmarshal([]byte("4.509"), &got))
	assert.Equal(t, d, got)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &got))
}
