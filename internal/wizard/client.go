package wizard

import (
	"context"
	"fmt"

	"github.com/colpuxase-art/shasitter-sub000/internal/models"
)

// clientSteps is the table for the customer wizard.
func clientSteps() []Step {
	return []Step{
		{
			Field: "name",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New client (1/4)\nEnter the client's name"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseRequiredText(input)
			},
		},
		{
			Field: "phone",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New client (2/4)\nPhone number"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseRequiredText(input)
			},
		},
		{
			Field: "address",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New client (3/4)\nAddress"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseRequiredText(input)
			},
		},
		{
			Field: "notes",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New client (4/4)\nNotes (access code, pet habits... or - for none)"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseOptionalText(input)
			},
		},
	}
}

func (h *Handler) finishClient(ctx context.Context, rec Record) (string, error) {
	c, err := h.repo.InsertClient(ctx, models.Client{
		Name:    rec.str("name"),
		Phone:   rec.str("phone"),
		Address: rec.str("address"),
		Notes:   rec.str("notes"),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Client #%d %q saved", c.ID, c.Name), nil
}

// employeeSteps is the table for the staff wizard.
func employeeSteps() []Step {
	return []Step{
		{
			Field: "name",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New employee (1/3)\nEnter the employee's name"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseRequiredText(input)
			},
		},
		{
			Field: "phone",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New employee (2/3)\nPhone number"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseRequiredText(input)
			},
		},
		{
			Field: "percent",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New employee (3/3)\nDefault share percent (0-100)"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parsePercent(input)
			},
		},
	}
}

func (h *Handler) finishEmployee(ctx context.Context, rec Record) (string, error) {
	e, err := h.repo.InsertEmployee(ctx, models.Employee{
		Name:           rec.str("name"),
		Phone:          rec.str("phone"),
		DefaultPercent: rec.int("percent"),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Employee #%d %q saved (default share %d%%)", e.ID, e.Name, e.DefaultPercent), nil
}
