package handlers

import (
	"event-checkin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCheckinRoutes(app *fiber.App, checkinService *services.CheckinService) {
	// Toggle is the only attendance mutation.
	app.Post("/participants/:id/checkins/:day", checkinService.ToggleCheckin)
}
