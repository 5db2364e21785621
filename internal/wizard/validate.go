package wizard

import (
	"errors"
	"strconv"
	"strings"

	"github.com/colpuxase-art/shasitter-sub000/internal/pricing"
)

// Parse errors carry the text shown to the user before re-prompting.

func parseRequiredText(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", errors.New("this field cannot be empty")
	}
	return s, nil
}

// parseOptionalText treats "-" as an explicit empty value.
func parseOptionalText(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "-" {
		return "", nil
	}
	return s, nil
}

func parsePrice(input string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, errors.New("enter a non-negative price, e.g. 25.50")
	}
	return pricing.Round2(v), nil
}

func parseNonNegativeInt(input string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v < 0 {
		return 0, errors.New("enter a non-negative whole number")
	}
	return v, nil
}

func parsePercent(input string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v < 0 || v > 100 {
		return 0, errors.New("enter a whole number between 0 and 100")
	}
	return v, nil
}

func parseDate(input string) (string, error) {
	s := strings.TrimSpace(input)
	if _, err := pricing.ParseDay(s); err != nil {
		return "", errors.New("enter a date as YYYY-MM-DD, e.g. 2025-07-14")
	}
	return s, nil
}
