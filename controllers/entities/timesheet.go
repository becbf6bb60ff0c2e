package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydeck/paydeck/dechours"
)

type TimesheetEntity struct {
	ID             uint64                `json:"id"`
	PeriodOn       time.Time             `json:"period_on"`
	Worked         dechours.DecimalHours `json:"worked"`
	DecimalMinutes int64                 `json:"decimal_minutes"`
	EntryCount     int64                 `json:"entry_count"`
	Pay            decimal.Decimal       `json:"pay"`
	CreatedAt      time.Time             `json:"created_at"`
}
