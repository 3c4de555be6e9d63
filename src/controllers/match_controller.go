package controllers

import (
	"strings"

	"github.com/findit-app/findit-backend/src/lib"
	"github.com/findit-app/findit-backend/src/matching"
	"github.com/gofiber/fiber/v2"
)

type MatchController struct {
	Matcher Matcher
}

// FindMatches forwards a description to the matching service and relays its
// answer unchanged. A failed call answers with an empty list.
func (m *MatchController) FindMatches(c *fiber.Ctx) error {
	var body struct {
		Description string `json:"description" form:"description"`
		Type        string `json:"type" form:"type"`
	}
	if err := c.BodyParser(&body); err != nil {
		return lib.BadRequest("Invalid request body")
	}

	if strings.TrimSpace(body.Description) == "" {
		return lib.BadRequest("Description is required")
	}
	itemType := matching.ItemType(body.Type)
	if !itemType.Valid() {
		return lib.BadRequest("Type must be lost or found")
	}

	result := m.Matcher.FindPotentialMatches(body.Description, itemType)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(result)
}
