package controllers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/findit-app/findit-backend/src/lib"
	"github.com/findit-app/findit-backend/src/models"
	"github.com/findit-app/findit-backend/src/report"
	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	NewRecognizer func() report.Recognizer
	Locale        string
}

type draftRequest struct {
	Category    string          `json:"category"`
	Details     json.RawMessage `json:"details"`
	Description string          `json:"description"`
	Locale      string          `json:"locale"`
	// Each entry is one batch of candidate transcripts, in arrival order.
	VoiceResults [][]string `json:"voiceResults"`
}

// SubmitDraft replays a report draft through the form and returns the
// confirmation text. Nothing is stored.
func (r *ReportController) SubmitDraft(c *fiber.Ctx) error {
	var body draftRequest
	if err := c.BodyParser(&body); err != nil {
		return lib.BadRequest("Invalid request body")
	}

	form := report.NewForm(r.NewRecognizer())
	if err := r.replay(form, body); err != nil {
		return draftError(err)
	}

	confirmation, err := form.Submit()
	if err != nil {
		return draftError(err)
	}
	return c.JSON(fiber.Map{
		"state":        form.State(),
		"confirmation": confirmation,
		"draft":        form.Draft(),
	})
}

func (r *ReportController) replay(form *report.Form, body draftRequest) error {
	if body.Category != "" {
		category, ok := models.ParseCategory(body.Category)
		if !ok {
			return fmt.Errorf("%w: %q", report.ErrUnknownCategory, body.Category)
		}
		if err := form.SelectCategory(category); err != nil {
			return err
		}
		details, err := report.DecodeDetails(category, body.Details)
		if err != nil {
			return err
		}
		if err := form.SetDetails(details); err != nil {
			return err
		}
	}
	if err := form.SetDescription(body.Description); err != nil {
		return err
	}

	if len(body.VoiceResults) == 0 {
		return nil
	}
	locale := body.Locale
	if locale == "" {
		locale = r.Locale
	}
	if err := form.StartListening(locale); err != nil {
		return err
	}
	for _, candidates := range body.VoiceResults {
		form.OnSpeechResults(candidates)
	}
	return form.StopListening()
}

func draftError(err error) error {
	switch {
	case errors.Is(err, report.ErrUnknownCategory),
		errors.Is(err, report.ErrUnknownAttribute),
		errors.Is(err, report.ErrCategoryRequired):
		return lib.BadRequest(err.Error())
	case errors.Is(err, report.ErrSubmitted):
		return lib.Conflict(err.Error())
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return lib.BadRequest(err.Error())
	}
	return lib.Internal(err)
}
