package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null"

	"github.com/paydeck/paydeck/dechours"
	"github.com/paydeck/paydeck/types"
)

type TimeEntryEntity struct {
	ID             uint64                `json:"id"`
	UUID           uuid.UUID             `json:"uuid"`
	WorkedOn       time.Time             `json:"worked_on"`
	Hours          int64                 `json:"hours"`
	Minutes        int64                 `json:"minutes"`
	Worked         dechours.DecimalHours `json:"worked"`
	DecimalMinutes int64                 `json:"decimal_minutes"`
	Note           null.String           `json:"note"`
	State          types.EntryState      `json:"state"`
	CreatedAt      time.Time             `json:"created_at"`
}
