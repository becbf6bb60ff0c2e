package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydeck/paydeck/dechours"
)

type Member struct {
	ID         int64           `json:"id" gorm:"primaryKey"`
	UID        string          `json:"uid"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	State      string          `json:"state"`
	Level      int32           `json:"level" gorm:"default:0" validate:"min:0"`
	HourlyRate decimal.Decimal `json:"hourly_rate" gorm:"default:0.0"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PayFor prices a worked amount at the member's hourly rate.
func (m *Member) PayFor(worked dechours.DecimalHours) decimal.Decimal {
	return m.HourlyRate.Mul(worked.Decimal())
}
