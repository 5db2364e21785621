package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/colpuxase-art/shasitter-sub000/internal/models"
	"github.com/colpuxase-art/shasitter-sub000/internal/telegram"
)

// prestationSteps is the table for the service-offering wizard:
// name, animal category, daily price, visits per day, duration, description.
func prestationSteps() []Step {
	return []Step{
		{
			Field: "name",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New prestation (1/6)\nEnter the service name"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseRequiredText(input)
			},
		},
		{
			Field: "animal",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				kb := telegram.NewKeyboard()
				for _, a := range models.AnimalTypes {
					kb.Button(string(a), choiceToken("animal", string(a)))
				}
				kb.Row().Button("Cancel", CancelToken).Row()
				return choicePrompt("New prestation (2/6)\nWhich animal is this for?", kb), nil
			},
			ParseChoice: func(ctx context.Context, rec Record, value string) (any, error) {
				if !models.ValidAnimalType(value) {
					return nil, errors.New("pick one of the listed animals")
				}
				return value, nil
			},
		},
		{
			Field: "price",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New prestation (3/6)\nEnter the daily price, e.g. 25.50"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parsePrice(input)
			},
		},
		{
			Field: "visits",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				kb := telegram.NewKeyboard().
					Button("1 visit/day", choiceToken("visits", "1")).
					Button("2 visits/day", choiceToken("visits", "2")).Row().
					Button("Cancel", CancelToken).Row()
				return choicePrompt("New prestation (4/6)\nHow many visits per day?", kb), nil
			},
			ParseChoice: func(ctx context.Context, rec Record, value string) (any, error) {
				if value != "1" && value != "2" {
					return nil, errors.New("pick 1 or 2 visits per day")
				}
				return int(value[0] - '0'), nil
			},
		},
		{
			Field: "duration",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New prestation (5/6)\nVisit duration in minutes"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseNonNegativeInt(input)
			},
		},
		{
			Field: "description",
			Render: func(ctx context.Context, rec Record) (Prompt, error) {
				return textPrompt("New prestation (6/6)\nShort description (or - for none)"), nil
			},
			ParseText: func(rec Record, input string) (any, error) {
				return parseOptionalText(input)
			},
		},
	}
}

func (h *Handler) finishPrestation(ctx context.Context, rec Record) (string, error) {
	p, err := h.repo.InsertPrestation(ctx, models.Prestation{
		Name:         rec.str("name"),
		Animal:       models.AnimalType(rec.str("animal")),
		Price:        rec.float("price"),
		VisitsPerDay: rec.int("visits"),
		Duration:     rec.int("duration"),
		Description:  rec.str("description"),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Prestation #%d %q saved (%s, %.2f/day)", p.ID, p.Name, p.Animal, p.Price), nil
}
