package queries

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paydeck/paydeck/controllers/helpers"
	"github.com/paydeck/paydeck/types"
)

func TestTimesheetFiltersFiltered(t *testing.T) {
	assert.False(t, TimesheetFilters{}.Filtered())
	assert.True(t, TimesheetFilters{TimeFrom: 1640995200}.Filtered())
	assert.True(t, TimesheetFilters{TimeTo: 1643673600}.Filtered())
}

func TestTimesheetFiltersVaildate(t *testing.T) {
	errs := new(helpers.Errors)
	helpers.Vaildate(TimesheetFilters{TimeFrom: 1640995200, TimeTo: 1643673600}, errs)

	assert.Equal(t, 0, errs.Size())

	errs = new(helpers.Errors)
	helpers.Vaildate(TimesheetFilters{TimeFrom: -1}, errs)

	assert.Equal(t, 1, errs.Size())
}

func TestTimeEntryFiltersOrderBy(t *testing.T) {
	assert.True(t, TimeEntryFilters{OrderBy: types.OrderByAsc}.ValidateOrderBy(types.OrderByAsc))
	assert.True(t, TimeEntryFilters{}.ValidateOrderBy(""))
	assert.False(t, TimeEntryFilters{}.ValidateOrderBy("sideways"))
}