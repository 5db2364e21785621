package wizard

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/colpuxase-art/shasitter-sub000/internal/telegram"
)

// CancelToken is the callback token that aborts the active wizard.
const CancelToken = "cancel"

const choicePrefix = "wiz:"

// choiceToken builds the callback token for a choice button:
// "wiz:<field>:<value>".
func choiceToken(field, value string) string {
	return choicePrefix + field + ":" + value
}

// ParseChoiceToken splits a "wiz:<field>:<value>" callback token.
func ParseChoiceToken(data string) (field, value string, ok bool) {
	rest, found := strings.CutPrefix(data, choicePrefix)
	if !found {
		return "", "", false
	}
	field, value, found = strings.Cut(rest, ":")
	if !found || field == "" {
		return "", "", false
	}
	return field, value, true
}

func textPrompt(text string) Prompt {
	kb := telegram.NewKeyboard().Button("Cancel", CancelToken).Row().Build()
	return Prompt{Text: telegram.EscapeHTML(text), Keyboard: &kb}
}

func choicePrompt(text string, kb *telegram.KeyboardBuilder) Prompt {
	built := kb.Build()
	return Prompt{Text: telegram.EscapeHTML(text), Keyboard: &built}
}

// Handler advances wizard sessions through their step tables.
type Handler struct {
	store  *SessionStore
	repo   Repository
	sender telegram.MessageSender
	tables map[Kind][]Step
}

// NewHandler creates a wizard Handler over the given session store.
func NewHandler(store *SessionStore, repo Repository, sender telegram.MessageSender) *Handler {
	return &Handler{
		store:  store,
		repo:   repo,
		sender: sender,
		tables: map[Kind][]Step{
			KindPrestation: prestationSteps(),
			KindClient:     clientSteps(),
			KindEmployee:   employeeSteps(),
			KindBooking:    bookingSteps(repo),
		},
	}
}

// Store returns the session store (for the janitor and tests).
func (h *Handler) Store() *SessionStore {
	return h.store
}

// Start begins a wizard of the given kind, replacing any session the chat
// already had, and sends the first prompt.
func (h *Handler) Start(ctx context.Context, chatID int64, kind Kind) Result {
	res := Ignored
	h.store.Do(chatID, func() {
		s := h.store.Start(chatID, kind)
		res = h.render(ctx, s)
	})
	return res
}

// HandleText feeds a free-text reply to the chat's session. Text with no
// active session, or while the current step expects a button, is ignored.
func (h *Handler) HandleText(ctx context.Context, chatID int64, text string) Result {
	res := Ignored
	h.store.Do(chatID, func() {
		s := h.store.Get(chatID)
		if s == nil {
			return
		}
		step := h.tables[s.Kind][s.Index]
		if !step.expectsText() {
			return
		}
		res = h.advance(ctx, s, step, func() (any, error) {
			return step.ParseText(s.Record, text)
		})
	})
	return res
}

// HandleChoice feeds a button value to the chat's session. Tokens whose
// field does not match the current step (stale buttons) are ignored.
func (h *Handler) HandleChoice(ctx context.Context, chatID int64, field, value string) Result {
	res := Ignored
	h.store.Do(chatID, func() {
		s := h.store.Get(chatID)
		if s == nil {
			return
		}
		step := h.tables[s.Kind][s.Index]
		if step.expectsText() || step.Field != field {
			return
		}
		res = h.advance(ctx, s, step, func() (any, error) {
			return step.ParseChoice(ctx, s.Record, value)
		})
	})
	return res
}

// Cancel destroys the chat's session unconditionally; nothing is persisted.
func (h *Handler) Cancel(ctx context.Context, chatID int64) {
	h.store.Do(chatID, func() {
		if h.store.Get(chatID) == nil {
			h.sender.SendPlain(chatID, "Nothing to cancel")
			return
		}
		h.store.Clear(chatID)
		h.sender.SendPlain(chatID, "Cancelled, nothing was saved")
	})
}

// advance applies one validated input to the session. Must run inside
// store.Do.
func (h *Handler) advance(ctx context.Context, s *Session, step Step, parse func() (any, error)) Result {
	value, err := parse()
	if err != nil {
		h.sender.SendPlain(s.ChatID, "⚠ "+err.Error())
		h.render(ctx, s)
		return Retry
	}

	s.Record[step.Field] = value
	s.Index++
	table := h.tables[s.Kind]
	for s.Index < len(table) && table[s.Index].Skip != nil && table[s.Index].Skip(s.Record) {
		s.Index++
	}
	h.store.Touch(s)

	if s.Index >= len(table) {
		return h.finish(ctx, s)
	}
	if h.render(ctx, s) == Aborted {
		return Aborted
	}
	return Advanced
}

// render sends the current step's prompt. A failed render (empty choice
// set, repository error) aborts the wizard.
func (h *Handler) render(ctx context.Context, s *Session) Result {
	step := h.tables[s.Kind][s.Index]
	prompt, err := step.Render(ctx, s.Record)
	if err != nil {
		h.store.Clear(s.ChatID)
		if errors.Is(err, ErrEmptyChoiceSet) {
			h.sender.SendPlain(s.ChatID, "Cannot continue: "+err.Error())
		} else {
			slog.Error("Failed to render wizard step", "kind", s.Kind, "field", step.Field, "error", err)
			h.sender.SendPlain(s.ChatID, "Something went wrong, wizard aborted")
		}
		return Aborted
	}
	if prompt.Keyboard != nil {
		h.sender.SendWithKeyboard(s.ChatID, prompt.Text, *prompt.Keyboard)
	} else {
		h.sender.Send(s.ChatID, prompt.Text)
	}
	return Advanced
}

// finish runs the terminal insert. The session is destroyed whether the
// insert succeeds or fails; a failed insert is reported, not retried.
func (h *Handler) finish(ctx context.Context, s *Session) Result {
	defer h.store.Clear(s.ChatID)

	var msg string
	var err error
	switch s.Kind {
	case KindPrestation:
		msg, err = h.finishPrestation(ctx, s.Record)
	case KindClient:
		msg, err = h.finishClient(ctx, s.Record)
	case KindEmployee:
		msg, err = h.finishEmployee(ctx, s.Record)
	case KindBooking:
		msg, err = h.finishBooking(ctx, s.Record)
	}
	if err != nil {
		slog.Error("Failed to persist wizard record", "kind", s.Kind, "error", err)
		h.sender.SendPlain(s.ChatID, "Could not save: "+err.Error())
		return Aborted
	}
	h.sender.SendPlain(s.ChatID, msg)
	return Completed
}
