// handlers/roster_routes.go
package handlers

import (
	"event-checkin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRosterRoutes(app *fiber.App, rosterService *services.RosterService) {
	// Browse + filter
	app.Get("/participants", rosterService.GetParticipants)
	app.Get("/participants/filter", rosterService.FilterParticipants)

	// Filter choice feeds
	app.Get("/stakes", rosterService.GetStakes)
	app.Get("/stakes/:stake/wards", rosterService.GetWardsForStake)

	// Import / export
	app.Post("/upload", rosterService.UploadRoster)
	app.Get("/export", rosterService.ExportRoster)
}
