package employee

import (
	"time"
)

// Employee is the directory record the payroll engine consumes. Directory
// management itself lives outside this service; only the fields needed to
// compute pay are carried.
type Employee struct {
	ID            string
	Matricule     string
	FullName      string
	JobTitle      *string
	HireDate      time.Time
	DepartureDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EmployedOn reports whether the date falls inside the employment window.
// Both bounds are inclusive.
func (e Employee) EmployedOn(date time.Time) bool {
	if date.Before(e.HireDate) {
		return false
	}
	if e.DepartureDate != nil && date.After(*e.DepartureDate) {
		return false
	}
	return true
}
