package wizard

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/colpuxase-art/shasitter-sub000/internal/models"
)

// mockSender for testing
type mockSender struct {
	lastChatID   int64
	texts        []string
	lastKeyboard *tgbotapi.InlineKeyboardMarkup
}

func (m *mockSender) Send(chatID int64, text string) error {
	m.lastChatID = chatID
	m.texts = append(m.texts, text)
	return nil
}

func (m *mockSender) SendPlain(chatID int64, text string) error {
	m.lastChatID = chatID
	m.texts = append(m.texts, text)
	return nil
}

func (m *mockSender) SendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) error {
	m.lastChatID = chatID
	m.texts = append(m.texts, text)
	m.lastKeyboard = &kb
	return nil
}

func (m *mockSender) AckCallback(callbackID string) error {
	return nil
}

func (m *mockSender) lastText() string {
	if len(m.texts) == 0 {
		return ""
	}
	return m.texts[len(m.texts)-1]
}

// memRepo is an in-memory Repository for wizard tests.
type memRepo struct {
	clients     []models.Client
	prestations []models.Prestation
	employees   []models.Employee
	bookings    []models.Booking
	insertErr   error
}

func (r *memRepo) ListClients(ctx context.Context) ([]models.Client, error) {
	return r.clients, nil
}

func (r *memRepo) ListPrestations(ctx context.Context) ([]models.Prestation, error) {
	return r.prestations, nil
}

func (r *memRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return r.employees, nil
}

func (r *memRepo) GetClient(ctx context.Context, id int64) (models.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Client{}, fmt.Errorf("client %d not found", id)
}

func (r *memRepo) GetPrestation(ctx context.Context, id int64) (models.Prestation, error) {
	for _, p := range r.prestations {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Prestation{}, fmt.Errorf("prestation %d not found", id)
}

func (r *memRepo) GetEmployee(ctx context.Context, id int64) (models.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Employee{}, fmt.Errorf("employee %d not found", id)
}

func (r *memRepo) InsertPrestation(ctx context.Context, p models.Prestation) (models.Prestation, error) {
	if r.insertErr != nil {
		return models.Prestation{}, r.insertErr
	}
	p.ID = int64(len(r.prestations) + 1)
	r.prestations = append(r.prestations, p)
	return p, nil
}

func (r *memRepo) InsertClient(ctx context.Context, c models.Client) (models.Client, error) {
	if r.insertErr != nil {
		return models.Client{}, r.insertErr
	}
	c.ID = int64(len(r.clients) + 1)
	r.clients = append(r.clients, c)
	return c, nil
}

func (r *memRepo) InsertEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	if r.insertErr != nil {
		return models.Employee{}, r.insertErr
	}
	e.ID = int64(len(r.employees) + 1)
	r.employees = append(r.employees, e)
	return e, nil
}

func (r *memRepo) InsertBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	if r.insertErr != nil {
		return models.Booking{}, r.insertErr
	}
	b.ID = int64(len(r.bookings) + 1)
	r.bookings = append(r.bookings, b)
	return b, nil
}
