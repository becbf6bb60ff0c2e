package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydeck/paydeck/controllers/entities"
	"github.com/paydeck/paydeck/dechours"
)

// Timesheet is the daily rollup of a member's time entries, priced at the
// hourly rate that was current when the rollup ran.
type Timesheet struct {
	ID         uint64                `json:"id" gorm:"primaryKey"`
	MemberID   int64                 `json:"member_id"`
	PeriodOn   time.Time             `json:"period_on"`
	Worked     dechours.DecimalHours `json:"worked"`
	EntryCount int64                 `json:"entry_count"`
	Pay        decimal.Decimal       `json:"pay" gorm:"default:0.0"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func (ts *Timesheet) ToJSON() entities.TimesheetEntity {
	return entities.TimesheetEntity{
		ID:             ts.ID,
		PeriodOn:       ts.PeriodOn,
		Worked:         ts.Worked,
		DecimalMinutes: ts.Worked.DecimalMinutes(),
		EntryCount:     ts.EntryCount,
		Pay:            ts.Pay,
		CreatedAt:      ts.CreatedAt,
	}
}
