// Package importer reads an exported archive back into domain objects. It is
// the inverse of package export and accepts exactly the JSON that WriteJSON
// produces, so a backup can be restored on a fresh database.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/export"
	"github.com/google/uuid"
)

// Read decodes an archive from JSON.
func Read(r io.Reader) (*export.Archive, error) {
	var archive export.Archive
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&archive); err != nil {
		return nil, fmt.Errorf("decoding archive: %w", err)
	}
	return &archive, nil
}

// Validate checks the archive for errors before conversion. Returns a slice
// of all validation errors found.
func Validate(archive *export.Archive) []error {
	var errs []error

	staffNumbers := make(map[string]bool)
	for i, emp := range archive.Employees {
		prefix := fmt.Sprintf("employees[%d]", i)

		if emp.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if emp.StaffNumber == "" {
			errs = append(errs, fmt.Errorf("%s.staff_number is required", prefix))
		} else if staffNumbers[emp.StaffNumber] {
			errs = append(errs, fmt.Errorf("%s.staff_number: duplicate %q", prefix, emp.StaffNumber))
		} else {
			staffNumbers[emp.StaffNumber] = true
		}
		if emp.HireDate != "" {
			if _, err := time.Parse("2006-01-02", emp.HireDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.hire_date: invalid date %q (expected YYYY-MM-DD)", prefix, emp.HireDate))
			}
		}

		errs = append(errs, validateRecords(prefix, emp.TimeRecords)...)
	}

	return errs
}

func validateRecords(prefix string, records []export.Record) []error {
	var errs []error

	for i, rec := range records {
		rp := fmt.Sprintf("%s.time_records[%d]", prefix, i)

		if rec.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", rp))
		} else if _, err := time.Parse("2006-01-02", rec.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date %q (expected YYYY-MM-DD)", rp, rec.Date))
		}

		if !domain.ValidRecordTypes[domain.RecordType(rec.Type)] {
			errs = append(errs, fmt.Errorf("%s.record_type: invalid value %q", rp, rec.Type))
		}

		if len(rec.Periods) > domain.MaxPeriods {
			errs = append(errs, fmt.Errorf("%s.periods: %d periods (max %d)", rp, len(rec.Periods), domain.MaxPeriods))
		}
		for j, p := range rec.Periods {
			start, end, err := parsePeriod(p)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s.periods[%d]: %v", rp, j, err))
				continue
			}
			if end <= start {
				errs = append(errs, fmt.Errorf("%s.periods[%d]: end %s must be after start %s", rp, j, end, start))
			}
		}
	}

	return errs
}

// Convert transforms a validated archive into domain objects with fresh IDs.
// Call Validate first; Convert assumes the archive is valid.
func Convert(archive *export.Archive) ([]*domain.Employee, map[string][]*domain.TimeRecord, error) {
	now := time.Now().UTC()

	employees := make([]*domain.Employee, 0, len(archive.Employees))
	records := make(map[string][]*domain.TimeRecord)

	for _, imp := range archive.Employees {
		emp := &domain.Employee{
			ID:                  uuid.New().String(),
			Name:                imp.Name,
			StaffNumber:         imp.StaffNumber,
			Position:            imp.Position,
			HourlyRate:          imp.HourlyRate,
			Email:               imp.Email,
			HoursPerWeek:        imp.HoursPerWeek,
			VacationDaysPerYear: imp.VacationDaysPerYear,
			SickDaysPerYear:     imp.SickDaysPerYear,
			Active:              imp.Active,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if imp.HireDate != "" {
			hired, err := time.Parse("2006-01-02", imp.HireDate)
			if err != nil {
				return nil, nil, fmt.Errorf("parsing hire_date: %w", err)
			}
			emp.HireDate = &hired
		}
		employees = append(employees, emp)

		for _, impRec := range imp.TimeRecords {
			date, err := time.Parse("2006-01-02", impRec.Date)
			if err != nil {
				return nil, nil, fmt.Errorf("parsing record date: %w", err)
			}
			rec := &domain.TimeRecord{
				ID:         uuid.New().String(),
				EmployeeID: emp.ID,
				Date:       date,
				Type:       domain.RecordType(impRec.Type),
				Notes:      impRec.Notes,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			for _, p := range impRec.Periods {
				start, end, err := parsePeriod(p)
				if err != nil {
					return nil, nil, err
				}
				rec.Periods = append(rec.Periods, domain.Period{Start: start, End: end})
			}
			records[emp.ID] = append(records[emp.ID], rec)
		}
	}

	return employees, records, nil
}

func parsePeriod(spec string) (domain.Clock, domain.Clock, error) {
	startStr, endStr, ok := strings.Cut(spec, "-")
	if !ok {
		return 0, 0, fmt.Errorf("malformed period %q (expected HH:MM-HH:MM)", spec)
	}
	start, err := domain.ParseClock(startStr)
	if err != nil {
		return 0, 0, err
	}
	end, err := domain.ParseClock(endStr)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
