package queries

import (
	"github.com/paydeck/paydeck/controllers/helpers"
	"github.com/paydeck/paydeck/types"
)

type TimeEntryFilters struct {
	Limit    int           `query:"limit" validate:"uint"`
	Page     int           `query:"page" validate:"uint"`
	TimeFrom int64         `query:"time_from" validate:"uint"`
	TimeTo   int64         `query:"time_to" validate:"uint"`
	OrderBy  types.OrderBy `query:"order_by" validate:"ValidateOrderBy"`
}

func (t TimeEntryFilters) ValidateOrderBy(val types.OrderBy) bool {
	return helpers.ValidateOrderBy(val)
}

type TimesheetFilters struct {
	TimeFrom int64 `query:"time_from" validate:"uint"`
	TimeTo   int64 `query:"time_to" validate:"uint"`
}

// Filtered reports whether a period range was requested; unfiltered results
// are the ones worth caching.
func (t TimesheetFilters) Filtered() bool {
	return t.TimeFrom > 0 || t.TimeTo > 0
}
