package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/google/uuid"
)

var staffNumberCounter atomic.Int64

// Employee options
type EmployeeOption func(*domain.Employee)

func WithHoursPerWeek(h float64) EmployeeOption {
	return func(e *domain.Employee) {
		e.HoursPerWeek = h
	}
}

func WithAllowances(vacation, sick int) EmployeeOption {
	return func(e *domain.Employee) {
		e.VacationDaysPerYear = vacation
		e.SickDaysPerYear = sick
	}
}

func WithHourlyRate(rate float64) EmployeeOption {
	return func(e *domain.Employee) {
		e.HourlyRate = rate
	}
}

func WithInactive() EmployeeOption {
	return func(e *domain.Employee) {
		e.Active = false
	}
}

// NewTestEmployee builds a valid active employee with a unique staff number.
func NewTestEmployee(name string, opts ...EmployeeOption) *domain.Employee {
	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.Employee{
		ID:                  uuid.New().String(),
		Name:                name,
		StaffNumber:         fmt.Sprintf("EMP-%04d", staffNumberCounter.Add(1)),
		HoursPerWeek:        40,
		VacationDaysPerYear: 20,
		SickDaysPerYear:     10,
		Active:              true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Record options
type RecordOption func(*domain.TimeRecord)

func WithType(typ domain.RecordType) RecordOption {
	return func(r *domain.TimeRecord) {
		r.Type = typ
	}
}

func WithNotes(notes string) RecordOption {
	return func(r *domain.TimeRecord) {
		r.Notes = notes
	}
}

func WithCreatedAt(ts time.Time) RecordOption {
	return func(r *domain.TimeRecord) {
		r.CreatedAt = ts
		r.UpdatedAt = ts
	}
}

// NewTestRecord builds a work record on the given YYYY-MM-DD date with the
// given "HH:MM-HH:MM" periods.
func NewTestRecord(employeeID, dateStr string, periods []string, opts ...RecordOption) *domain.TimeRecord {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	now := time.Now().UTC().Truncate(time.Second)
	rec := &domain.TimeRecord{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Date:       date,
		Type:       domain.RecordWork,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, p := range periods {
		startStr, endStr, ok := strings.Cut(p, "-")
		if !ok {
			panic(fmt.Sprintf("bad period %q: want HH:MM-HH:MM", p))
		}
		rec.Periods = append(rec.Periods, domain.Period{
			Start: domain.MustClock(startStr),
			End:   domain.MustClock(endStr),
		})
	}
	for _, opt := range opts {
		opt(rec)
	}
	return rec
}
