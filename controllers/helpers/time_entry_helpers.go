package helpers

import (
	"errors"
	"time"

	"github.com/gookit/validate"
	"github.com/volatiletech/null"

	"github.com/paydeck/paydeck/dechours"
	"github.com/paydeck/paydeck/models"
)

type CreateTimeEntryParams struct {
	WorkedOn time.Time   `json:"worked_on" form:"worked_on"`
	Hours    int64       `json:"hours" form:"hours" validate:"VaildateHours"`
	Minutes  int64       `json:"minutes" form:"minutes" validate:"VaildateMinutes"`
	Note     null.String `json:"note" form:"note"`
}

func (p CreateTimeEntryParams) Messages() map[string]string {
	invalid_message := "account.time_entry.invalid_{field}"

	return validate.MS{
		"VaildateHours":   invalid_message,
		"VaildateMinutes": "account.time_entry.invalid_minute_of_hour",
	}
}

func (p CreateTimeEntryParams) VaildateMinutes(Minutes int64) bool {
	return Minutes >= 0 && Minutes <= 59
}

// Hours may be negative for corrections but the combined amount must not
// overflow the decimal minute range.
func (p CreateTimeEntryParams) VaildateHours(Hours int64) bool {
	_, err := dechours.Of(Hours, 0)

	return err == nil
}

func (p CreateTimeEntryParams) BuildTimeEntry(member *models.Member, err_src *Errors) *models.TimeEntry {
	worked, err := dechours.Of(p.Hours, p.Minutes)
	if err != nil {
		if errors.Is(err, dechours.ErrOverflow) {
			err_src.Errors = append(err_src.Errors, "account.time_entry.amount_overflow")
		} else {
			err_src.Errors = append(err_src.Errors, "account.time_entry.invalid_minute_of_hour")
		}

		return nil
	}

	worked_on := p.WorkedOn
	if worked_on.IsZero() {
		worked_on = time.Now()
	}

	return &models.TimeEntry{
		MemberID: member.ID,
		WorkedOn: worked_on,
		Hours:    p.Hours,
		Minutes:  p.Minutes,
		Worked:   worked,
		Note:     p.Note,
	}
}
