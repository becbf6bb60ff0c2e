package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paydeck/paydeck/dechours"
	"github.com/paydeck/paydeck/models"
)

func entry(hours, minutes int64) *models.TimeEntry {
	worked, err := dechours.Of(hours, minutes)
	if err != nil {
		panic(err)
	}

	return &models.TimeEntry{Hours: hours, Minutes: minutes, Worked: worked}
}

func TestSumWorked(t *testing.T) {
	entries := []*models.TimeEntry{
		entry(4, 30),
		entry(3, 6),
		entry(0, 45),
	}

	// 450 + 310 + 75
	assert.Equal(t, int64(835), SumWorked(entries).DecimalMinutes())
	assert.InDelta(t, 8.35, SumWorked(entries).Amount(), 1e-9)
}

func TestSumWorkedEmpty(t *testing.T) {
	assert.Equal(t, dechours.DecimalHours{}, SumWorked(nil))
}

func TestSumWorkedNegativeCorrections(t *testing.T) {
	entries := []*models.TimeEntry{
		entry(8, 0),
		entry(-1, 30),
	}

	// a correction entry pulls the day total down: 800 - 50
	assert.Equal(t, int64(750), SumWorked(entries).DecimalMinutes())
}
