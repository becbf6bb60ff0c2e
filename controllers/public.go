package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/paydeck/paydeck/controllers/helpers"
	"github.com/paydeck/paydeck/controllers/queries"
	"github.com/paydeck/paydeck/dechours"
)

func GetTimestamp(c *fiber.Ctx) error {

	c.Status(200).JSON(time.Now())

	return nil
}

// ConvertDecimalHours turns an hours/minutes pair into its decimal hour
// amount without recording anything, for client side previews.
func ConvertDecimalHours(c *fiber.Ctx) error {
	params := new(queries.ConvertQuery)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	worked, err := dechours.Of(params.Hours, params.Minutes)
	if err != nil {
		if errors.Is(err, dechours.ErrOverflow) {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{"public.decimal_hours.amount_overflow"},
			})
		}

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"public.decimal_hours.invalid_minute_of_hour"},
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"decimal_minutes": worked.DecimalMinutes(),
		"amount":          worked.Decimal(),
	})
}
