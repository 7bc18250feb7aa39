// Package export serializes employees and their time records for backup and
// interchange. JSON keeps the full structure; CSV flattens records to one
// row per entry.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
)

// Archive is the top-level export document.
type Archive struct {
	ExportedAt time.Time  `json:"exported_at"`
	Employees  []Employee `json:"employees"`
}

// Employee is the exported view of one employee with optional records.
type Employee struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	StaffNumber         string   `json:"staff_number"`
	Position            string   `json:"position,omitempty"`
	HourlyRate          float64  `json:"hourly_rate"`
	Email               string   `json:"email,omitempty"`
	HireDate            string   `json:"hire_date,omitempty"`
	HoursPerWeek        float64  `json:"hours_per_week"`
	VacationDaysPerYear int      `json:"vacation_days_per_year"`
	SickDaysPerYear     int      `json:"sick_days_per_year"`
	Active              bool     `json:"active"`
	TimeRecords         []Record `json:"time_records,omitempty"`
}

// Record is the exported view of one time record.
type Record struct {
	Date    string   `json:"date"`
	Periods []string `json:"periods,omitempty"`
	Type    string   `json:"record_type"`
	Notes   string   `json:"notes,omitempty"`
}

// BuildArchive assembles the export document. records maps employee ID to
// that employee's time records; pass nil to export employees only.
func BuildArchive(employees []*domain.Employee, records map[string][]*domain.TimeRecord, now time.Time) Archive {
	archive := Archive{ExportedAt: now.UTC(), Employees: make([]Employee, 0, len(employees))}
	for _, e := range employees {
		exp := Employee{
			ID:                  e.ID,
			Name:                e.Name,
			StaffNumber:         e.StaffNumber,
			Position:            e.Position,
			HourlyRate:          e.HourlyRate,
			Email:               e.Email,
			HoursPerWeek:        e.HoursPerWeek,
			VacationDaysPerYear: e.VacationDaysPerYear,
			SickDaysPerYear:     e.SickDaysPerYear,
			Active:              e.Active,
		}
		if e.HireDate != nil {
			exp.HireDate = e.HireDate.Format("2006-01-02")
		}
		for _, rec := range records[e.ID] {
			exp.TimeRecords = append(exp.TimeRecords, Record{
				Date:    rec.DateKey(),
				Periods: formatPeriods(rec.Periods),
				Type:    string(rec.Type),
				Notes:   rec.Notes,
			})
		}
		archive.Employees = append(archive.Employees, exp)
	}
	return archive
}

// WriteJSON writes the archive as indented JSON.
func WriteJSON(w io.Writer, archive Archive) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(archive); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"staff_number", "name", "date", "record_type", "periods", "total_minutes", "notes",
}

// WriteCSV writes one row per time record. Employees without records yield
// no rows; use JSON for a full roster export.
func WriteCSV(w io.Writer, archive Archive) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, emp := range archive.Employees {
		for _, rec := range emp.TimeRecords {
			total, err := totalMinutes(rec.Periods)
			if err != nil {
				return fmt.Errorf("employee %s date %s: %w", emp.StaffNumber, rec.Date, err)
			}
			row := []string{
				emp.StaffNumber,
				emp.Name,
				rec.Date,
				rec.Type,
				strings.Join(rec.Periods, " "),
				strconv.Itoa(total),
				rec.Notes,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatPeriods(periods []domain.Period) []string {
	out := make([]string, 0, len(periods))
	for _, p := range periods {
		out = append(out, fmt.Sprintf("%s-%s", p.Start, p.End))
	}
	return out
}

func totalMinutes(periods []string) (int, error) {
	total := 0
	for _, p := range periods {
		startStr, endStr, ok := strings.Cut(p, "-")
		if !ok {
			return 0, fmt.Errorf("malformed period %q", p)
		}
		start, err := domain.ParseClock(startStr)
		if err != nil {
			return 0, err
		}
		end, err := domain.ParseClock(endStr)
		if err != nil {
			return 0, err
		}
		total += end.Minutes() - start.Minutes()
	}
	return total, nil
}
