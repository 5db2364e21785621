// Package store persists records in a single SQLite file.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/colpuxase-art/shasitter-sub000/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS prestations (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	name           TEXT NOT NULL,
	animal         TEXT NOT NULL,
	price          REAL NOT NULL,
	visits_per_day INTEGER NOT NULL,
	duration       INTEGER NOT NULL,
	description    TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS clients (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	name    TEXT NOT NULL,
	phone   TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	notes   TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS employees (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT NOT NULL,
	phone           TEXT NOT NULL DEFAULT '',
	default_percent INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS bookings (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	client_id        INTEGER NOT NULL REFERENCES clients(id),
	prestation_id    INTEGER NOT NULL REFERENCES prestations(id),
	employee_id      INTEGER NOT NULL DEFAULT 0,
	slot             TEXT NOT NULL,
	start_date       TEXT NOT NULL,
	end_date         TEXT NOT NULL,
	days             INTEGER NOT NULL,
	total_price      REAL NOT NULL,
	employee_percent INTEGER NOT NULL DEFAULT 0,
	employee_share   REAL NOT NULL DEFAULT 0,
	company_share    REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookings_dates ON bookings(end_date, start_date);
`

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and bootstraps the
// schema. Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite handles one writer at a time; avoid "database is locked"
	// from concurrent bot and dashboard access.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertPrestation inserts p and returns it with the generated id.
func (s *Store) InsertPrestation(ctx context.Context, p models.Prestation) (models.Prestation, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO prestations (name, animal, price, visits_per_day, duration, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, string(p.Animal), p.Price, p.VisitsPerDay, p.Duration, p.Description)
	if err != nil {
		return models.Prestation{}, fmt.Errorf("insert prestation: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return models.Prestation{}, err
	}
	return p, nil
}

// InsertClient inserts c and returns it with the generated id.
func (s *Store) InsertClient(ctx context.Context, c models.Client) (models.Client, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO clients (name, phone, address, notes) VALUES (?, ?, ?, ?)`,
		c.Name, c.Phone, c.Address, c.Notes)
	if err != nil {
		return models.Client{}, fmt.Errorf("insert client: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// InsertEmployee inserts e and returns it with the generated id.
func (s *Store) InsertEmployee(ctx context.Context, e models.Employee) (models.Employee, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO employees (name, phone, default_percent) VALUES (?, ?, ?)`,
		e.Name, e.Phone, e.DefaultPercent)
	if err != nil {
		return models.Employee{}, fmt.Errorf("insert employee: %w", err)
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return models.Employee{}, err
	}
	return e, nil
}

// InsertBooking inserts b and returns it with the generated id.
// Money fields are expected already rounded.
func (s *Store) InsertBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings
		 (client_id, prestation_id, employee_id, slot, start_date, end_date,
		  days, total_price, employee_percent, employee_share, company_share)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ClientID, b.PrestationID, b.EmployeeID, string(b.Slot), b.StartDate, b.EndDate,
		b.Days, b.TotalPrice, b.EmployeePercent, b.EmployeeShare, b.CompanyShare)
	if err != nil {
		return models.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	b.ID, err = res.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// ListPrestations returns all prestations in insertion order.
func (s *Store) ListPrestations(ctx context.Context) ([]models.Prestation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, animal, price, visits_per_day, duration, description
		 FROM prestations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list prestations: %w", err)
	}
	defer rows.Close()

	var out []models.Prestation
	for rows.Next() {
		var p models.Prestation
		var animal string
		if err := rows.Scan(&p.ID, &p.Name, &animal, &p.Price, &p.VisitsPerDay, &p.Duration, &p.Description); err != nil {
			return nil, err
		}
		p.Animal = models.AnimalType(animal)
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListClients returns all clients in insertion order.
func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone, address, notes FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Notes); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListEmployees returns all employees in insertion order.
func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone, default_percent FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []models.Employee
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.DefaultPercent); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetClient returns the client with the given id.
func (s *Store) GetClient(ctx context.Context, id int64) (models.Client, error) {
	var c models.Client
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, phone, address, notes FROM clients WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Notes)
	if err != nil {
		return models.Client{}, fmt.Errorf("get client %d: %w", id, err)
	}
	return c, nil
}

// GetPrestation returns the prestation with the given id.
func (s *Store) GetPrestation(ctx context.Context, id int64) (models.Prestation, error) {
	var p models.Prestation
	var animal string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, animal, price, visits_per_day, duration, description
		 FROM prestations WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &animal, &p.Price, &p.VisitsPerDay, &p.Duration, &p.Description)
	if err != nil {
		return models.Prestation{}, fmt.Errorf("get prestation %d: %w", id, err)
	}
	p.Animal = models.AnimalType(animal)
	return p, nil
}

// GetEmployee returns the employee with the given id.
func (s *Store) GetEmployee(ctx context.Context, id int64) (models.Employee, error) {
	var e models.Employee
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, phone, default_percent FROM employees WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.Phone, &e.DefaultPercent)
	if err != nil {
		return models.Employee{}, fmt.Errorf("get employee %d: %w", id, err)
	}
	return e, nil
}
