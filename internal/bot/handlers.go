package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/colpuxase-art/shasitter-sub000/internal/models"
	"github.com/colpuxase-art/shasitter-sub000/internal/telegram"
)

// BookingReader is the repository surface the menu summaries need.
type BookingReader interface {
	UpcomingBookings(ctx context.Context, today string) ([]models.Booking, error)
	PastBookings(ctx context.Context, today string) ([]models.Booking, error)
}

// MenuHandler renders the main menu and the booking summaries.
type MenuHandler struct {
	sender   telegram.MessageSender
	bookings BookingReader
	now      func() time.Time
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(sender telegram.MessageSender, bookings BookingReader) *MenuHandler {
	return &MenuHandler{sender: sender, bookings: bookings, now: time.Now}
}

// HandleStart sends the main menu keyboard.
func (h *MenuHandler) HandleStart(chatID int64) {
	kb := telegram.NewKeyboard().
		Button("New booking", MenuNewBooking).Row().
		Button("New client", MenuNewClient).
		Button("New prestation", MenuNewPrestation).Row().
		Button("New employee", MenuNewEmployee).Row().
		Button("Upcoming", MenuUpcoming).
		Button("Past", MenuPast).Row()

	text := telegram.Bold("Shasitter") + "\nWhat would you like to do?"
	h.sender.SendWithKeyboard(chatID, text, kb.Build())
}

// HandleUpcoming sends the list of bookings that have not ended yet.
func (h *MenuHandler) HandleUpcoming(ctx context.Context, chatID int64) {
	today := h.now().UTC().Format(time.DateOnly)
	bookings, err := h.bookings.UpcomingBookings(ctx, today)
	if err != nil {
		h.sender.SendPlain(chatID, fmt.Sprintf("Error: %v", err))
		return
	}
	h.sendBookingList(chatID, "Upcoming bookings", bookings)
}

// HandlePast sends the list of finished bookings.
func (h *MenuHandler) HandlePast(ctx context.Context, chatID int64) {
	today := h.now().UTC().Format(time.DateOnly)
	bookings, err := h.bookings.PastBookings(ctx, today)
	if err != nil {
		h.sender.SendPlain(chatID, fmt.Sprintf("Error: %v", err))
		return
	}
	h.sendBookingList(chatID, "Past bookings", bookings)
}

func (h *MenuHandler) sendBookingList(chatID int64, title string, bookings []models.Booking) {
	var sb strings.Builder
	sb.WriteString(telegram.Bold(title) + "\n")

	if len(bookings) == 0 {
		sb.WriteString(telegram.Italic("(none)"))
		h.sender.Send(chatID, sb.String())
		return
	}

	for _, b := range bookings {
		line := fmt.Sprintf("%s to %s: %s, %s (%s), %.2f", b.StartDate, b.EndDate,
			b.ClientName, b.PrestationName, b.Slot, b.TotalPrice)
		if b.EmployeeName != "" {
			line += " with " + b.EmployeeName
		}
		sb.WriteString(telegram.EscapeHTML(line) + "\n")
	}
	h.sender.Send(chatID, sb.String())
}
