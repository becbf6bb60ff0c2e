package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null"

	"github.com/paydeck/paydeck/config"
	"github.com/paydeck/paydeck/controllers/entities"
	"github.com/paydeck/paydeck/dechours"
	"github.com/paydeck/paydeck/types"
)

// TimeEntry is a single recorded stretch of work. Hours and Minutes keep
// what the member typed in; Worked is the canonical decimal-hours amount
// derived from them at creation time.
type TimeEntry struct {
	ID        uint64                `json:"id" gorm:"primaryKey"`
	UUID      uuid.UUID             `json:"uuid" gorm:"default:gen_random_uuid()"`
	MemberID  int64                 `json:"member_id" validate:"required"`
	WorkedOn  time.Time             `json:"worked_on"`
	Hours     int64                 `json:"hours"`
	Minutes   int64                 `json:"minutes" validate:"MinutesVaildator"`
	Worked    dechours.DecimalHours `json:"worked"`
	Note      null.String           `json:"note"`
	State     types.EntryState      `json:"state" gorm:"default:recorded"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func (t TimeEntry) MinutesVaildator(Minutes int64) bool {
	return Minutes >= 0 && Minutes <= 59
}

func (t *TimeEntry) Member() *Member {
	member := &Member{}

	config.DataBase.First(&member, "id = ?", t.MemberID)

	return member
}

func (t *TimeEntry) WriteToInflux() {
	tags := map[string]string{"member": strconv.FormatInt(t.MemberID, 10)}
	fields := map[string]interface{}{
		"id":              int32(t.ID),
		"decimal_minutes": t.Worked.DecimalMinutes(),
		"amount":          t.Worked.Amount(),
		"worked_on":       t.WorkedOn,
	}

	config.InfluxDB.NewPoint("time_entries", tags, fields)
}

func (t *TimeEntry) ToJSON() entities.TimeEntryEntity {
	return entities.TimeEntryEntity{
		ID:             t.ID,
		UUID:           t.UUID,
		WorkedOn:       t.WorkedOn,
		Hours:          t.Hours,
		Minutes:        t.Minutes,
		Worked:         t.Worked,
		DecimalMinutes: t.Worked.DecimalMinutes(),
		Note:           t.Note,
		State:          t.State,
		CreatedAt:      t.CreatedAt,
	}
}
