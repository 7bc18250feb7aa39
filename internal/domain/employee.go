package domain

import "time"

type Employee struct {
	ID          string
	Name        string
	StaffNumber string
	Position    string
	HourlyRate  float64
	Email       string
	HireDate    *time.Time

	// Working-time profile
	HoursPerWeek        float64
	VacationDaysPerYear int
	SickDaysPerYear     int

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
