package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/paydeck/paydeck/config"
	"github.com/paydeck/paydeck/controllers/entities"
	"github.com/paydeck/paydeck/controllers/helpers"
	"github.com/paydeck/paydeck/controllers/queries"
	"github.com/paydeck/paydeck/models"
	"github.com/paydeck/paydeck/types"
)

func timesheetCacheKey(member *models.Member) string {
	return "paydeck:timesheets:" + member.UID
}

// GetCurrentUser reads the member the Authenticate middleware resolved.
func GetCurrentUser(c *fiber.Ctx) *models.Member {
	member, ok := c.Locals("CurrentUser").(*models.Member)
	if !ok {
		return nil
	}

	return member
}

func CreateTimeEntry(c *fiber.Ctx) error {
	CurrentUser := GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	payload := new(helpers.CreateTimeEntryParams)

	if err := c.BodyParser(payload); err != nil {
		c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})

		return err
	}

	helpers.Vaildate(payload, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	entry := payload.BuildTimeEntry(CurrentUser, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	config.DataBase.Create(entry)
	entry.WriteToInflux()
	config.Redis.DeleteKey(timesheetCacheKey(CurrentUser))

	return c.Status(201).JSON(entry.ToJSON())
}

func GetTimeEntries(c *fiber.Ctx) error {
	CurrentUser := GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.TimeEntryFilters)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}
	if params.Page == 0 {
		params.Page = 1
	}

	order := "id asc"
	if params.OrderBy == types.OrderByDesc {
		order = "id desc"
	}

	tx := config.DataBase.Where("member_id = ?", CurrentUser.ID)

	if params.TimeFrom > 0 {
		tx = tx.Where("worked_on >= ?", time.Unix(params.TimeFrom, 0))
	}
	if params.TimeTo > 0 {
		tx = tx.Where("worked_on < ?", time.Unix(params.TimeTo, 0))
	}

	var entries []*models.TimeEntry
	tx.Order(order).Offset((params.Page - 1) * params.Limit).Limit(params.Limit).Find(&entries)

	entry_entities := make([]entities.TimeEntryEntity, 0)
	for _, entry := range entries {
		entry_entities = append(entry_entities, entry.ToJSON())
	}

	return c.Status(200).JSON(entry_entities)
}

func GetTimesheets(c *fiber.Ctx) error {
	CurrentUser := GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.TimesheetFilters)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	timesheet_entities := make([]entities.TimesheetEntity, 0)

	if !params.Filtered() {
		if err := config.Redis.GetKey(timesheetCacheKey(CurrentUser), &timesheet_entities); err == nil {
			return c.Status(200).JSON(timesheet_entities)
		}
	}

	tx := config.DataBase.Where("member_id = ?", CurrentUser.ID)

	if params.TimeFrom > 0 {
		tx = tx.Where("period_on >= ?", time.Unix(params.TimeFrom, 0))
	}
	if params.TimeTo > 0 {
		tx = tx.Where("period_on < ?", time.Unix(params.TimeTo, 0))
	}

	var timesheets []*models.Timesheet
	tx.Order("period_on desc").Find(&timesheets)

	for _, timesheet := range timesheets {
		timesheet_entities = append(timesheet_entities, timesheet.ToJSON())
	}

	if !params.Filtered() {
		if err := config.Redis.SetKey(timesheetCacheKey(CurrentUser), timesheet_entities, 5*time.Minute); err != nil {
			config.Logger.Errorf("Failed to cache timesheets for %s, Error: %v", CurrentUser.UID, err)
		}
	}

	return c.Status(200).JSON(timesheet_entities)
}
