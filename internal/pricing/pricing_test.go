package pricing

import (
	"errors"
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", s, err)
	}
	return d
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2025-06-01", true},
		{"2025-12-31", true},
		{"2025-6-1", false},
		{"01-06-2025", false},
		{"2025/06/01", false},
		{"2025-13-01", false},
		{"2025-06-32", false},
		{"yesterday", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDay(tt.input)
			if tt.valid && err != nil {
				t.Errorf("ParseDay(%q) = %v, want nil", tt.input, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("ParseDay(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		days    int
		wantErr bool
	}{
		{"same day", "2025-06-01", "2025-06-01", 1, false},
		{"one week", "2025-06-01", "2025-06-07", 7, false},
		{"across month", "2025-06-29", "2025-07-02", 4, false},
		{"end before start", "2025-06-02", "2025-06-01", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := Days(day(t, tt.start), day(t, tt.end))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateRange) {
					t.Fatalf("Days() error = %v, want ErrInvalidDateRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Days() error = %v", err)
			}
			if days != tt.days {
				t.Errorf("Days() = %d, want %d", days, tt.days)
			}
		})
	}
}

func TestPriceWithEmployee(t *testing.T) {
	q, err := Price(46.00, day(t, "2025-06-01"), day(t, "2025-06-03"), 7, 30)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if q.Days != 3 {
		t.Errorf("Days = %d, want 3", q.Days)
	}
	if q.Total != 138.00 {
		t.Errorf("Total = %v, want 138.00", q.Total)
	}
	if q.EmployeeShare != 41.40 {
		t.Errorf("EmployeeShare = %v, want 41.40", q.EmployeeShare)
	}
	if q.CompanyShare != 96.60 {
		t.Errorf("CompanyShare = %v, want 96.60", q.CompanyShare)
	}
	if q.Percent != 30 {
		t.Errorf("Percent = %d, want 30", q.Percent)
	}
}

func TestPriceWithoutEmployee(t *testing.T) {
	// Percent supplied upstream must be ignored when no employee is attached.
	for _, percent := range []int{0, 30, 100} {
		q, err := Price(25.50, day(t, "2025-06-01"), day(t, "2025-06-02"), 0, percent)
		if err != nil {
			t.Fatalf("Price() error = %v", err)
		}
		if q.EmployeeShare != 0 {
			t.Errorf("EmployeeShare = %v, want 0", q.EmployeeShare)
		}
		if q.Percent != 0 {
			t.Errorf("Percent = %d, want 0", q.Percent)
		}
		if q.CompanyShare != q.Total {
			t.Errorf("CompanyShare = %v, want total %v", q.CompanyShare, q.Total)
		}
		if q.Total != 51.00 {
			t.Errorf("Total = %v, want 51.00", q.Total)
		}
	}
}

func TestPriceInvalidRange(t *testing.T) {
	_, err := Price(10, day(t, "2025-06-05"), day(t, "2025-06-01"), 0, 0)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("Price() error = %v, want ErrInvalidDateRange", err)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.234, 1.23},
		{1.236, 1.24},
		{41.4, 41.4},
		{-1.236, -1.24},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// Idempotent on already-rounded values.
	for _, v := range []float64{138.00, 41.40, 96.60, 0.01, 99999.99} {
		if got := Round2(v); got != v {
			t.Errorf("Round2(%v) = %v, want unchanged", v, got)
		}
	}
}
