package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/paydeck/paydeck/controllers"
	"github.com/paydeck/paydeck/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	app.Get("/api/v2/public/decimal_hours", controllers.ConvertDecimalHours)

	account := app.Group("/api/v2/account", middlewares.Authenticate)
	account.Post("/time_entries", controllers.CreateTimeEntry)
	account.Get("/time_entries", controllers.GetTimeEntries)
	account.Get("/timesheets", controllers.GetTimesheets)

	return app
}
