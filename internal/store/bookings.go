package store

import (
	"context"
	"fmt"

	"github.com/colpuxase-art/shasitter-sub000/internal/models"
)

const bookingSelect = `
SELECT b.id, b.client_id, c.name, b.prestation_id, p.name,
       b.employee_id, COALESCE(e.name, ''), b.slot, b.start_date, b.end_date,
       b.days, b.total_price, b.employee_percent, b.employee_share, b.company_share
FROM bookings b
JOIN clients c ON c.id = b.client_id
JOIN prestations p ON p.id = b.prestation_id
LEFT JOIN employees e ON e.id = b.employee_id`

func (s *Store) queryBookings(ctx context.Context, where string, args ...any) ([]models.Booking, error) {
	rows, err := s.db.QueryContext(ctx, bookingSelect+where, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		var b models.Booking
		var slot string
		if err := rows.Scan(
			&b.ID, &b.ClientID, &b.ClientName, &b.PrestationID, &b.PrestationName,
			&b.EmployeeID, &b.EmployeeName, &slot, &b.StartDate, &b.EndDate,
			&b.Days, &b.TotalPrice, &b.EmployeePercent, &b.EmployeeShare, &b.CompanyShare,
		); err != nil {
			return nil, err
		}
		b.Slot = models.TimeSlot(slot)
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListBookings returns all bookings, join-enriched, in insertion order.
func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.queryBookings(ctx, " ORDER BY b.id")
}

// UpcomingBookings returns bookings that end on or after today (YYYY-MM-DD),
// ordered by start date.
func (s *Store) UpcomingBookings(ctx context.Context, today string) ([]models.Booking, error) {
	return s.queryBookings(ctx, " WHERE b.end_date >= ? ORDER BY b.start_date, b.id", today)
}

// PastBookings returns bookings that ended before today (YYYY-MM-DD),
// most recent first.
func (s *Store) PastBookings(ctx context.Context, today string) ([]models.Booking, error) {
	return s.queryBookings(ctx, " WHERE b.end_date < ? ORDER BY b.start_date DESC, b.id DESC", today)
}

// Summary is the accounting aggregate behind /api/compta/summary.
type Summary struct {
	Bookings      int     `json:"bookings"`
	Revenue       float64 `json:"revenue"`
	EmployeeTotal float64 `json:"employee_total"`
	CompanyTotal  float64 `json:"company_total"`
	Prestations   int     `json:"prestations"`
	Clients       int     `json:"clients"`
	Employees     int     `json:"employees"`
}

// Summarize computes the all-time accounting summary.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(total_price), 0),
		       COALESCE(SUM(employee_share), 0),
		       COALESCE(SUM(company_share), 0)
		FROM bookings`).
		Scan(&sum.Bookings, &sum.Revenue, &sum.EmployeeTotal, &sum.CompanyTotal)
	if err != nil {
		return Summary{}, fmt.Errorf("summarize bookings: %w", err)
	}

	counts := []struct {
		table string
		dst   *int
	}{
		{"prestations", &sum.Prestations},
		{"clients", &sum.Clients},
		{"employees", &sum.Employees},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return Summary{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return sum, nil
}
