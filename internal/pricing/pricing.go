// Package pricing computes a booking's total cost and its staff/company
// split. Pure computation, no I/O.
package pricing

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidDateRange is returned when the end date is before the start date.
var ErrInvalidDateRange = errors.New("end date is before start date")

// Quote is the price breakdown for one booking.
type Quote struct {
	Days          int
	Total         float64
	EmployeeShare float64
	CompanyShare  float64
	Percent       int
}

// Round2 rounds to 2 decimal places, half away from zero.
// Idempotent on values already rounded to 2dp.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseDay parses a strict YYYY-MM-DD calendar date in UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}

// Days returns the inclusive day count of [start, end] in whole UTC days.
func Days(start, end time.Time) (int, error) {
	s := start.UTC().Truncate(24 * time.Hour)
	e := end.UTC().Truncate(24 * time.Hour)
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		return 0, ErrInvalidDateRange
	}
	return days, nil
}

// Price computes the quote for a booking. dailyRate is the prestation's
// per-day price; employeeID is 0 when no employee is assigned, in which
// case the percent is ignored and the company keeps the full total.
// Every stored money value is rounded to 2dp as it is produced.
func Price(dailyRate float64, start, end time.Time, employeeID int64, percent int) (Quote, error) {
	days, err := Days(start, end)
	if err != nil {
		return Quote{}, err
	}

	total := Round2(dailyRate * float64(days))

	q := Quote{Days: days, Total: total}
	if employeeID == 0 {
		q.CompanyShare = total
		return q, nil
	}

	q.Percent = percent
	q.EmployeeShare = Round2(total * float64(percent) / 100)
	q.CompanyShare = Round2(total - q.EmployeeShare)
	return q, nil
}
