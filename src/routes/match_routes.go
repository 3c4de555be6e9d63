package routes

import (
	"github.com/findit-app/findit-backend/src/controllers"
	"github.com/gofiber/fiber/v2"
)

// MatchRoutes exposes the matching service and the report draft form
func MatchRoutes(app *fiber.App, match *controllers.MatchController, reports *controllers.ReportController) {
	api := app.Group("/api/v1")

	api.Post("/match", match.FindMatches)
	api.Post("/reports/draft", reports.SubmitDraft)
}
