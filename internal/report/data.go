// Package report renders aggregated time data into LaTeX source or PDF.
// It consumes plain values produced by the service layer and performs no
// database access of its own.
package report

import (
	"time"

	"github.com/danielgrube/chronostaff/internal/config"
	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/timesheet"
)

// DayRow is one table line of a monthly report. Weekdays without a record
// appear as blank rows; weekends are omitted entirely.
type DayRow struct {
	Date         time.Time
	StartTime    string // "-" when the day has no periods
	EndTime      string
	TotalMinutes int
	BreakMinutes int
	NetMinutes   int
	IsVacation   bool
	IsSick       bool
	Flags        []domain.ComplianceFlag
}

// Blank reports whether the row is a filler for a weekday without a record.
func (r DayRow) Blank() bool {
	return r.StartTime == "-" && r.TotalMinutes == 0 && !r.IsVacation && !r.IsSick
}

// Data is everything a rendered report needs, ready for template
// substitution or PDF drawing.
type Data struct {
	Company     config.Company
	Employee    string
	StaffNumber string

	// PeriodLabel is the human heading, e.g. "January 2023" or "2023".
	PeriodLabel string

	Rows    []DayRow
	Summary timesheet.PeriodSummary

	// Pay figures; overtime is paid at 1.5x.
	RegularPay  float64
	OvertimePay float64
	TotalPay    float64

	// Year-to-date allowance usage, clamped at zero remaining.
	VacationDaysUsedYTD   int
	SickDaysUsedYTD       int
	VacationDaysRemaining int
	SickDaysRemaining     int
}

// TotalHours returns the period's net worked time in hours.
func (d Data) TotalHours() float64 {
	return float64(d.Summary.TotalNetMinutes) / 60
}

// TotalBreakMinutes sums the break deduction across all rows.
func (d Data) TotalBreakMinutes() int {
	total := 0
	for _, row := range d.Rows {
		total += row.BreakMinutes
	}
	return total
}
