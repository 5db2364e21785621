// Package models defines the record types shared by the bot, the store and
// the dashboard API.
package models

// AnimalType is the category of animal a prestation covers.
type AnimalType string

const (
	AnimalCat    AnimalType = "cat"
	AnimalRabbit AnimalType = "rabbit"
	AnimalOther  AnimalType = "other"
)

// AnimalTypes lists the valid categories in display order.
var AnimalTypes = []AnimalType{AnimalCat, AnimalRabbit, AnimalOther}

// ValidAnimalType reports whether s is one of the fixed categories.
func ValidAnimalType(s string) bool {
	switch AnimalType(s) {
	case AnimalCat, AnimalRabbit, AnimalOther:
		return true
	}
	return false
}

// TimeSlot is the part of the day a booking visit happens.
type TimeSlot string

const (
	SlotMorning TimeSlot = "morning"
	SlotEvening TimeSlot = "evening"
	SlotBoth    TimeSlot = "morning+evening"
)

// TimeSlots lists the valid slots in display order.
var TimeSlots = []TimeSlot{SlotMorning, SlotEvening, SlotBoth}

// ValidTimeSlot reports whether s is one of the fixed slots.
func ValidTimeSlot(s string) bool {
	switch TimeSlot(s) {
	case SlotMorning, SlotEvening, SlotBoth:
		return true
	}
	return false
}

// Prestation is a service offering. Immutable once inserted.
type Prestation struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Animal       AnimalType `json:"animal"`
	Price        float64    `json:"price"`          // daily rate, 2dp
	VisitsPerDay int        `json:"visits_per_day"` // 1 or 2
	Duration     int        `json:"duration_minutes"`
	Description  string     `json:"description"`
}

// Client is a customer record.
type Client struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// Employee is a staff member with a default revenue share.
type Employee struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	DefaultPercent int    `json:"default_percent"` // 0-100
}

// Booking ties a client and a prestation to a date range, optionally with
// an assigned employee. Money fields are stored already rounded to 2dp.
// Names are denormalized at insert time for display and dashboard queries.
type Booking struct {
	ID              int64    `json:"id"`
	ClientID        int64    `json:"client_id"`
	ClientName      string   `json:"client_name"`
	PrestationID    int64    `json:"prestation_id"`
	PrestationName  string   `json:"prestation_name"`
	EmployeeID      int64    `json:"employee_id,omitempty"` // 0 means unassigned
	EmployeeName    string   `json:"employee_name,omitempty"`
	Slot            TimeSlot `json:"slot"`
	StartDate       string   `json:"start_date"` // YYYY-MM-DD
	EndDate         string   `json:"end_date"`   // YYYY-MM-DD
	Days            int      `json:"days"`
	TotalPrice      float64  `json:"total_price"`
	EmployeePercent int      `json:"employee_percent"`
	EmployeeShare   float64  `json:"employee_share"`
	CompanyShare    float64  `json:"company_share"`
}
