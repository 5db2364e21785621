package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/colpuxase-art/shasitter-sub000/internal/wizard"
)

// Menu action tokens. Each starts a wizard or renders a summary.
const (
	menuPrefix        = "menu:"
	MenuNewPrestation = "menu:new_prestation"
	MenuNewClient     = "menu:new_client"
	MenuNewEmployee   = "menu:new_employee"
	MenuNewBooking    = "menu:new_booking"
	MenuUpcoming      = "menu:upcoming"
	MenuPast          = "menu:past"
)

// menuWizardKinds maps menu actions to the wizard they start.
var menuWizardKinds = map[string]wizard.Kind{
	MenuNewPrestation: wizard.KindPrestation,
	MenuNewClient:     wizard.KindClient,
	MenuNewEmployee:   wizard.KindEmployee,
	MenuNewBooking:    wizard.KindBooking,
}

// MenuRouterHandler defines methods for menu commands and summaries
type MenuRouterHandler interface {
	HandleStart(chatID int64)
	HandleUpcoming(ctx context.Context, chatID int64)
	HandlePast(ctx context.Context, chatID int64)
}

// WizardRouterHandler defines methods for the wizard flows
type WizardRouterHandler interface {
	Start(ctx context.Context, chatID int64, kind wizard.Kind) wizard.Result
	HandleText(ctx context.Context, chatID int64, text string) wizard.Result
	HandleChoice(ctx context.Context, chatID int64, field, value string) wizard.Result
	Cancel(ctx context.Context, chatID int64)
}

// Router routes messages and callbacks to appropriate handlers
type Router struct {
	menu   MenuRouterHandler
	wizard WizardRouterHandler
}

// NewRouter creates a new Router with all handlers
func NewRouter(menu MenuRouterHandler, wizard WizardRouterHandler) *Router {
	return &Router{menu: menu, wizard: wizard}
}

// RouteMessage routes a message to the appropriate handler based on command.
// Non-command text goes to the active wizard; with no active wizard it is
// ignored.
func (r *Router) RouteMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "menu":
		r.menu.HandleStart(msg.Chat.ID)
	case "upcoming":
		r.menu.HandleUpcoming(ctx, msg.Chat.ID)
	case "past":
		r.menu.HandlePast(ctx, msg.Chat.ID)
	case "cancel":
		r.wizard.Cancel(ctx, msg.Chat.ID)
	default:
		r.wizard.HandleText(ctx, msg.Chat.ID, msg.Text)
	}
}

// RouteCallback routes a callback query by token family: cancel, menu
// actions, and wizard choice tokens. Unrecognized tokens change no state.
func (r *Router) RouteCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Inline-mode callbacks have no message to anchor a chat id
	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	data := cb.Data

	if data == wizard.CancelToken {
		r.wizard.Cancel(ctx, chatID)
		return
	}

	if strings.HasPrefix(data, menuPrefix) {
		if kind, ok := menuWizardKinds[data]; ok {
			r.wizard.Start(ctx, chatID, kind)
			return
		}
		switch data {
		case MenuUpcoming:
			r.menu.HandleUpcoming(ctx, chatID)
		case MenuPast:
			r.menu.HandlePast(ctx, chatID)
		}
		return
	}

	if field, value, ok := wizard.ParseChoiceToken(data); ok {
		r.wizard.HandleChoice(ctx, chatID, field, value)
	}
}
