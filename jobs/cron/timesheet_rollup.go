package cron

import (
	"time"

	"github.com/jasonlvhit/gocron"

	"github.com/paydeck/paydeck/config"
	"github.com/paydeck/paydeck/dechours"
	"github.com/paydeck/paydeck/models"
	"github.com/paydeck/paydeck/types"
)

// TimesheetRollupJob folds every member's recorded entries of the previous
// day into a priced Timesheet row shortly after midnight.
type TimesheetRollupJob struct {
}

func (j *TimesheetRollupJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:10:00").Do(rollupTimesheets)
	<-s.Start()
}

type GroupEntry struct {
	MemberID int64
}

// SumWorked folds entry amounts into one decimal-hours total.
func SumWorked(entries []*models.TimeEntry) dechours.DecimalHours {
	total := int64(0)

	for _, entry := range entries {
		total += entry.Worked.DecimalMinutes()
	}

	return dechours.OfDecimalMinutes(total)
}

func rollupTimesheets() {
	yesterday := time.Now().AddDate(0, 0, -1)
	date := yesterday.Format("2006-01-02")

	var group_entries []*GroupEntry

	config.DataBase.
		Model(&models.TimeEntry{}).
		Select("member_id").
		Where("CAST(\"worked_on\" AS DATE) = ? AND state = ?", date, types.StateRecorded).
		Group("member_id").
		Find(&group_entries)

	for _, group_entry := range group_entries {
		var member *models.Member
		var entries []*models.TimeEntry

		config.DataBase.First(&member, "id = ?", group_entry.MemberID)
		models.Lock().Where("member_id = ? AND CAST(\"worked_on\" AS DATE) = ? AND state = ?", member.ID, date, types.StateRecorded).Order("id asc").Find(&entries)

		worked := SumWorked(entries)

		timesheet := &models.Timesheet{
			MemberID:   member.ID,
			PeriodOn:   yesterday,
			Worked:     worked,
			EntryCount: int64(len(entries)),
			Pay:        member.PayFor(worked),
		}

		config.DataBase.Create(&timesheet)

		config.DataBase.
			Model(&models.TimeEntry{}).
			Where("member_id = ? AND CAST(\"worked_on\" AS DATE) = ? AND state = ?", member.ID, date, types.StateRecorded).
			Update("state", types.StateRolled)

		config.Redis.DeleteKey("paydeck:timesheets:" + member.UID)
	}

	config.Logger.Infof("Timesheet rollup complete for %s, %d members.", date, len(group_entries))
}
