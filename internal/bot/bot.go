package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/colpuxase-art/shasitter-sub000/internal/config"
	"github.com/colpuxase-art/shasitter-sub000/internal/telegram"
	"github.com/colpuxase-art/shasitter-sub000/internal/wizard"
)

// Repository is everything the bot side needs from the store.
type Repository interface {
	wizard.Repository
	BookingReader
}

// Bot is the main Telegram bot struct with DI
type Bot struct {
	api      *tgbotapi.BotAPI
	auth     *Auth
	router   *Router
	sender   telegram.MessageSender
	sessions *wizard.SessionStore
}

// New creates a new Bot with full dependency injection.
func New(cfg *config.Config, repo Repository) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	slog.Info("Authorized", "username", api.Self.UserName)

	sender := telegram.NewSender(api)
	sessions := wizard.NewSessionStore(cfg.SessionTTL())

	wizardHandler := wizard.NewHandler(sessions, repo, sender)
	menuHandler := NewMenuHandler(sender, repo)

	return &Bot{
		api:      api,
		auth:     NewAuth(cfg.AdminIDs),
		router:   NewRouter(menuHandler, wizardHandler),
		sender:   sender,
		sessions: sessions,
	}, nil
}

// Auth returns the authorization handler (shared with the dashboard).
func (b *Bot) Auth() *Auth {
	return b.auth
}

// RegisterCommands registers bot commands with Telegram
func (b *Bot) RegisterCommands() error {
	commands := []tgbotapi.BotCommand{
		{Command: "menu", Description: "Main menu"},
		{Command: "upcoming", Description: "Upcoming bookings"},
		{Command: "past", Description: "Past bookings"},
		{Command: "cancel", Description: "Cancel the current wizard"},
	}

	cfg := tgbotapi.NewSetMyCommands(commands...)
	_, err := b.api.Request(cfg)
	if err != nil {
		return err
	}

	slog.Info("Registered bot commands", "count", len(commands))
	return nil
}

// Run starts the bot and processes updates until context is cancelled
func (b *Bot) Run(ctx context.Context) {
	b.sessions.StartJanitor(ctx, wizard.DefaultTTL/2)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	slog.Info("Bot started, waiting for messages")

	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutting down bot")
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				slog.Warn("Updates channel closed, stopping bot")
				return
			}
			if msg := update.Message; msg != nil {
				// Skip messages without sender (channel posts, service messages)
				if msg.From == nil {
					continue
				}
				userID := msg.From.ID
				if !b.auth.IsAuthorized(userID) {
					slog.Warn("Unauthorized access attempt", "user_id", userID)
					b.sender.SendPlain(msg.Chat.ID, "Access denied")
					continue
				}
				slog.Info("Message received", "user_id", userID, "text", msg.Text)
				b.router.RouteMessage(ctx, msg)
			}
			if cb := update.CallbackQuery; cb != nil {
				if cb.From == nil {
					continue
				}
				// Acknowledge callback to prevent UI spinner hanging
				b.sender.AckCallback(cb.ID)
				userID := cb.From.ID
				if !b.auth.IsAuthorized(userID) {
					slog.Warn("Unauthorized callback", "user_id", userID)
					continue
				}
				slog.Info("Callback received", "user_id", userID, "data", cb.Data)
				b.router.RouteCallback(ctx, cb)
			}
		}
	}
}
