// Package wizard drives the multi-step data-entry conversations for
// prestations, clients, employees and bookings. Each wizard kind is a
// fixed table of steps; the Handler advances one session per chat
// through its table, re-prompting in place on invalid input.
package wizard

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/colpuxase-art/shasitter-sub000/internal/models"
)

// ErrEmptyChoiceSet aborts a wizard whose choice step has nothing to
// offer (e.g. booking creation with no clients on file).
var ErrEmptyChoiceSet = errors.New("no records to choose from")

// Repository is the persistence surface the wizards need.
type Repository interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	ListPrestations(ctx context.Context) ([]models.Prestation, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetClient(ctx context.Context, id int64) (models.Client, error)
	GetPrestation(ctx context.Context, id int64) (models.Prestation, error)
	GetEmployee(ctx context.Context, id int64) (models.Employee, error)
	InsertPrestation(ctx context.Context, p models.Prestation) (models.Prestation, error)
	InsertClient(ctx context.Context, c models.Client) (models.Client, error)
	InsertEmployee(ctx context.Context, e models.Employee) (models.Employee, error)
	InsertBooking(ctx context.Context, b models.Booking) (models.Booking, error)
}

// Prompt is what a step shows the user: message text plus an optional
// choice keyboard. Text-input steps get a lone Cancel button.
type Prompt struct {
	Text     string
	Keyboard *tgbotapi.InlineKeyboardMarkup
}

// Step is one entry in a wizard's table. Exactly one of ParseText or
// ParseChoice is set: it validates the raw input and returns the typed
// value stored under Field. A parse error re-prompts in place without
// touching the record.
type Step struct {
	Field       string
	Render      func(ctx context.Context, rec Record) (Prompt, error)
	ParseText   func(rec Record, input string) (any, error)
	ParseChoice func(ctx context.Context, rec Record, value string) (any, error)
	Skip        func(rec Record) bool
}

// expectsText reports whether the step consumes a free-text reply.
func (s Step) expectsText() bool {
	return s.ParseText != nil
}

// Result classifies the outcome of feeding one input to a session.
type Result int

const (
	// Retry means validation failed; step and record are unchanged.
	Retry Result = iota
	// Advanced means the session moved to the next step.
	Advanced
	// Completed means the terminal step finished and the record was
	// persisted; the session has been destroyed.
	Completed
	// Aborted means the wizard was destroyed without persisting
	// (cancellation, empty choice set, insert failure).
	Aborted
	// Ignored means the input did not apply to the session (no active
	// wizard, or text where a button was expected) and nothing changed.
	Ignored
)
