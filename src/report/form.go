// Package report models the lost/found report form: category selection,
// per-category questions, free-text description and dictation.
package report

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/findit-app/findit-backend/src/models"
)

var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrCategoryRequired = errors.New("please select a category")
	ErrSubmitted        = errors.New("report already submitted")
)

type State string

const (
	StateIdle             State = "idle"
	StateCategorySelected State = "category-selected"
	StateSubmitted        State = "submitted"
)

// Recognizer is the speech-to-text engine behind the dictation toggle.
// Results are delivered to Form.OnSpeechResults.
type Recognizer interface {
	Start(locale string) error
	Stop() error
}

// Draft is the transient, never persisted content of the form.
type Draft struct {
	Category    models.Category `json:"category,omitempty"`
	Details     Details         `json:"details,omitempty"`
	Description string          `json:"description"`
	VoiceResult string          `json:"voiceResult,omitempty"`
}

// Form owns one draft. It is not safe for concurrent use.
type Form struct {
	state      State
	listening  bool
	draft      Draft
	recognizer Recognizer
}

func NewForm(r Recognizer) *Form {
	return &Form{state: StateIdle, recognizer: r}
}

func (f *Form) State() State { return f.state }

func (f *Form) Listening() bool { return f.listening }

func (f *Form) Draft() Draft { return f.draft }

// SelectCategory switches the form to c and resets the category questions.
func (f *Form) SelectCategory(c models.Category) error {
	if f.state == StateSubmitted {
		return ErrSubmitted
	}
	d, err := emptyDetails(c)
	if err != nil {
		return err
	}
	f.draft.Category = c
	f.draft.Details = d
	f.state = StateCategorySelected
	return nil
}

// SetDetails replaces the answers of the current category's questions.
func (f *Form) SetDetails(d Details) error {
	if f.state == StateSubmitted {
		return ErrSubmitted
	}
	if f.state != StateCategorySelected {
		return ErrCategoryRequired
	}
	if d == nil || d.Category() != f.draft.Category {
		return fmt.Errorf("%w: details do not belong to a %s report", ErrUnknownAttribute, f.draft.Category)
	}
	f.draft.Details = d
	return nil
}

// SetDetail answers one question of the current category.
func (f *Form) SetDetail(name, value string) error {
	if f.state == StateSubmitted {
		return ErrSubmitted
	}
	if f.state != StateCategorySelected {
		return ErrCategoryRequired
	}
	if !f.draft.Details.set(name, value) {
		return fmt.Errorf("%w: %q for %s", ErrUnknownAttribute, name, f.draft.Category)
	}
	return nil
}

func (f *Form) SetDescription(text string) error {
	if f.state == StateSubmitted {
		return ErrSubmitted
	}
	f.draft.Description = text
	return nil
}

// StartListening opens a recognition session in locale.
func (f *Form) StartListening(locale string) error {
	if f.state == StateSubmitted {
		return ErrSubmitted
	}
	if f.listening {
		return nil
	}
	if err := f.recognizer.Start(locale); err != nil {
		return fmt.Errorf("start speech recognition: %w", err)
	}
	f.listening = true
	return nil
}

// OnSpeechResults takes the first candidate transcript; it replaces both the
// description and the voice result.
func (f *Form) OnSpeechResults(candidates []string) {
	if f.state == StateSubmitted || len(candidates) == 0 {
		return
	}
	f.draft.Description = candidates[0]
	f.draft.VoiceResult = candidates[0]
}

func (f *Form) StopListening() error {
	if !f.listening {
		return nil
	}
	f.listening = false
	if err := f.recognizer.Stop(); err != nil {
		return fmt.Errorf("stop speech recognition: %w", err)
	}
	return nil
}

// Submit ends the form and returns the confirmation shown to the reporter.
// Nothing is sent anywhere.
func (f *Form) Submit() (string, error) {
	switch f.state {
	case StateSubmitted:
		return "", ErrSubmitted
	case StateIdle:
		return "", ErrCategoryRequired
	}
	if err := f.StopListening(); err != nil {
		return "", err
	}

	details, err := json.Marshal(f.draft.Details)
	if err != nil {
		return "", err
	}
	f.state = StateSubmitted
	return fmt.Sprintf("Category: %s\nDescription: %s\nAdditional Details: %s",
		f.draft.Category, f.draft.Description, details), nil
}
