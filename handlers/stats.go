package handlers

import (
	"event-checkin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(app *fiber.App, statsService *services.StatsService) {
	app.Get("/dashboard", statsService.GetDashboard)
}
