package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/colpuxase-art/shasitter-sub000/internal/models"
	"github.com/colpuxase-art/shasitter-sub000/internal/pricing"
	"github.com/colpuxase-art/shasitter-sub000/internal/telegram"
)

// bookingSteps is the table for the booking wizard: pick client, pick
// prestation, pick slot, enter date range, assign employee (or none),
// then the share percent when an employee was picked. The terminal step
// computes pricing and persists.
func bookingSteps(repo Repository) []Step {
	return []Step{
		{
			Field: "client",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				clients, err := repo.ListClients(ctx)
				if err != nil {
					return Prompt{}, err
				}
				if len(clients) == 0 {
					return Prompt{}, fmt.Errorf("%w: add a client first", ErrEmptyChoiceSet)
				}
				kb := telegram.NewKeyboard()
				for _, c := range clients {
					kb.Button(c.Name, choiceToken("client", strconv.FormatInt(c.ID, 10)))
				}
				kb.Columns(1).Button("Cancel", CancelToken).Row()
				return choicePrompt("New booking (1/7)\nPick a client", kb), nil
			},
			ParseChoice: func(ctx context.Context, rec Record, value string) (any, error) {
				id, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return nil, errors.New("pick a client from the list")
				}
				if _, err := repo.GetClient(ctx, id); err != nil {
					return nil, errors.New("pick a client from the list")
				}
				return id, nil
			},
		},
		{
			Field: "prestation",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				prestations, err := repo.ListPrestations(ctx)
				if err != nil {
					return Prompt{}, err
				}
				if len(prestations) == 0 {
					return Prompt{}, fmt.Errorf("%w: add a prestation first", ErrEmptyChoiceSet)
				}
				kb := telegram.NewKeyboard()
				for _, p := range prestations {
					label := fmt.Sprintf("%s (%.2f/day)", p.Name, p.Price)
					kb.Button(label, choiceToken("prestation", strconv.FormatInt(p.ID, 10)))
				}
				kb.Columns(1).Button("Cancel", CancelToken).Row()
				return choicePrompt("New booking (2/7)\nPick a prestation", kb), nil
			},
			ParseChoice: func(ctx context.Context, rec Record, value string) (any, error) {
				id, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return nil, errors.New("pick a prestation from the list")
				}
				if _, err := repo.GetPrestation(ctx, id); err != nil {
					return nil, errors.New("pick a prestation from the list")
				}
				return id, nil
			},
		},
		{
			Field: "slot",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				kb := telegram.NewKeyboard()
				for _, s := range models.TimeSlots {
					kb.Button(string(s), choiceToken("slot", string(s)))
				}
				kb.Row().Button("Cancel", CancelToken).Row()
				return choicePrompt("New booking (3/7)\nWhich time slot?", kb), nil
			},
			ParseChoice: func(ctx context.Context, rec Record, value string) (any, error) {
				if !models.ValidTimeSlot(value) {
					return nil, errors.New("pick one of the listed slots")
				}
				return value, nil
			},
		},
		{
			Field: "start",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New booking (4/7)\nStart date (YYYY-MM-DD)"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseDate(input)
			},
		},
		{
			Field: "end",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New booking (5/7)\nEnd date (YYYY-MM-DD, inclusive)"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				end, err := parseDate(input)
				if err != nil {
					return nil, err
				}
				startDay, _ := pricing.ParseDay(rec.str("start"))
				endDay, _ := pricing.ParseDay(end)
				if _, err := pricing.Days(startDay, endDay); err != nil {
					return nil, fmt.Errorf("end date must not be before %s", rec.str("start"))
				}
				return end, nil
			},
		},
		{
			Field: "employee",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				employees, err := repo.ListEmployees(ctx)
				if err != nil {
					return Prompt{}, err
				}
				kb := telegram.NewKeyboard()
				for _, e := range employees {
					kb.Button(e.Name, choiceToken("employee", strconv.FormatInt(e.ID, 10)))
				}
				kb.Columns(1).Button("No employee", choiceToken("employee", "0")).Row()
				kb.Button("Cancel", CancelToken).Row()
				return choicePrompt("New booking (6/7)\nAssign an employee?", kb), nil
			},
			ParseChoice: func(ctx context.Context, rec Record, value string) (any, error) {
				id, err := strconv.ParseInt(value, 10, 64)
				if err != nil {
					return nil, errors.New("pick an employee from the list")
				}
				if id == 0 {
					return int64(0), nil
				}
				if _, err := repo.GetEmployee(ctx, id); err != nil {
					return nil, errors.New("pick an employee from the list")
				}
				return id, nil
			},
		},
		{
			Field: "percent",
			Skip: func(rec Record) bool {
				return rec.int64("employee") == 0
			},
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				text := "New booking (7/7)\nEmployee share percent (0-100)"
				if e, err := repo.GetEmployee(ctx, rec.int64("employee")); err == nil {
					text = fmt.Sprintf("%s\n%s's default is %d", text, e.Name, e.DefaultPercent)
				}
				return textPrompt(text), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parsePercent(input)
			},
		},
	}
}

func (h *Handler) finishBooking(ctx context.Context, rec Record) (string, error) {
	prestation, err := h.repo.GetPrestation(ctx, rec.int64("prestation"))
	if err != nil {
		return "", err
	}

	start, err := pricing.ParseDay(rec.str("start"))
	if err != nil {
		return "", err
	}
	end, err := pricing.ParseDay(rec.str("end"))
	if err != nil {
		return "", err
	}

	employeeID := rec.int64("employee")
	quote, err := pricing.Price(prestation.Price, start, end, employeeID, rec.int("percent"))
	if err != nil {
		return "", err
	}

	b, err := h.repo.InsertBooking(ctx, models.Booking{
		ClientID:        rec.int64("client"),
		PrestationID:    prestation.ID,
		EmployeeID:      employeeID,
		Slot:            models.TimeSlot(rec.str("slot")),
		StartDate:       rec.str("start"),
		EndDate:         rec.str("end"),
		Days:            quote.Days,
		TotalPrice:      quote.Total,
		EmployeePercent: quote.Percent,
		EmployeeShare:   quote.EmployeeShare,
		CompanyShare:    quote.CompanyShare,
	})
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf("Booking #%d saved: %s, %d day(s), total %.2f",
		b.ID, prestation.Name, b.Days, b.TotalPrice)
	if employeeID != 0 {
		msg += fmt.Sprintf(" (employee %.2f / company %.2f)", b.EmployeeShare, b.CompanyShare)
	}
	return msg, nil
}
