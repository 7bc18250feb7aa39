package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/danielgrube/chronostaff/internal/config"
	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/report"
	"github.com/danielgrube/chronostaff/internal/repository"
	"github.com/danielgrube/chronostaff/internal/timesheet"
)

// overtimeRate is the pay multiplier applied to minutes beyond the expected
// workload of the period.
const overtimeRate = 1.5

type reportService struct {
	employees repository.EmployeeRepo
	records   repository.TimeRecordRepo
	settings  repository.SettingsRepo
}

func NewReportService(employees repository.EmployeeRepo, records repository.TimeRecordRepo, settings repository.SettingsRepo) ReportService {
	return &reportService{employees: employees, records: records, settings: settings}
}

func (s *reportService) MonthlyReport(ctx context.Context, employeeID string, year, month int) (*report.Data, error) {
	from, to, err := monthRange(year, month)
	if err != nil {
		return nil, err
	}
	return s.buildReport(ctx, employeeID, from, to, from.Format("January 2006"), true)
}

func (s *reportService) YearlyReport(ctx context.Context, employeeID string, year int) (*report.Data, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return s.buildReport(ctx, employeeID, from, to, strconv.Itoa(year), false)
}

// buildReport assembles the report data for one employee over [from, to].
// fillWeekdays adds blank rows for weekdays without a record; the yearly
// report lists only recorded days.
func (s *reportService) buildReport(ctx context.Context, employeeID string, from, to time.Time, label string, fillWeekdays bool) (*report.Data, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	raw, err := s.settings.All(ctx)
	if err != nil {
		return nil, err
	}
	cfg, company, allowances, err := config.FromSettings(raw)
	if err != nil {
		return nil, err
	}
	// An individual contract overrides the installation-wide daily norm.
	if emp.HoursPerWeek > 0 && cfg.WorkDaysPerWeek > 0 {
		cfg.StandardHoursPerDay = emp.HoursPerWeek / float64(cfg.WorkDaysPerWeek)
	}

	records, err := s.loadMerged(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	summary, days, err := timesheet.ComputePeriodSummary(records, cfg)
	if err != nil {
		return nil, err
	}

	data := &report.Data{
		Company:     company,
		Employee:    emp.Name,
		StaffNumber: emp.StaffNumber,
		PeriodLabel: label,
		Rows:        buildRows(records, days, from, to, fillWeekdays),
		Summary:     summary,
	}

	regularMinutes := summary.TotalNetMinutes - summary.OvertimeMinutes
	data.RegularPay = float64(regularMinutes) / 60 * emp.HourlyRate
	data.OvertimePay = float64(summary.OvertimeMinutes) / 60 * emp.HourlyRate * overtimeRate
	data.TotalPay = data.RegularPay + data.OvertimePay

	if err := s.fillAllowances(ctx, data, emp, allowances, to); err != nil {
		return nil, err
	}
	return data, nil
}

// loadMerged lists the employee's records for the range and merges duplicate
// dates in memory. Reporting never depends on the operator having run
// consolidation first.
func (s *reportService) loadMerged(ctx context.Context, employeeID string, from, to time.Time) ([]domain.TimeRecord, error) {
	stored, err := s.records.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	values := make([]domain.TimeRecord, 0, len(stored))
	for _, rec := range stored {
		values = append(values, *rec)
	}
	return timesheet.Deduplicate(values)
}

func buildRows(records []domain.TimeRecord, days []timesheet.DayResult, from, to time.Time, fillWeekdays bool) []report.DayRow {
	byDate := make(map[string]report.DayRow, len(records))
	for i, rec := range records {
		byDate[rec.DateKey()] = recordRow(rec, days[i])
	}

	var rows []report.DayRow
	if fillWeekdays {
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if row, ok := byDate[d.Format("2006-01-02")]; ok {
				rows = append(rows, row)
				continue
			}
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			rows = append(rows, report.DayRow{Date: d, StartTime: "-", EndTime: "-"})
		}
		return rows
	}

	for _, row := range byDate {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}

func recordRow(rec domain.TimeRecord, day timesheet.DayResult) report.DayRow {
	row := report.DayRow{
		Date:         rec.Date,
		StartTime:    "-",
		EndTime:      "-",
		TotalMinutes: day.TotalMinutes,
		BreakMinutes: day.BreakMinutes,
		NetMinutes:   day.NetMinutes,
		IsVacation:   rec.Type == domain.RecordVacation,
		IsSick:       rec.Type == domain.RecordSick,
		Flags:        day.Flags,
	}
	if len(rec.Periods) > 0 {
		periods := make([]domain.Period, len(rec.Periods))
		copy(periods, rec.Periods)
		sort.Slice(periods, func(i, j int) bool { return periods[i].Start < periods[j].Start })
		row.StartTime = periods[0].Start.String()
		row.EndTime = periods[len(periods)-1].End.String()
	}
	return row
}

// fillAllowances counts vacation and sick days taken from January 1st of the
// report year up to the end of the reported range, and derives what remains
// of the per-year budgets.
func (s *reportService) fillAllowances(ctx context.Context, data *report.Data, emp *domain.Employee, defaults config.Allowances, to time.Time) error {
	yearStart := time.Date(to.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	records, err := s.loadMerged(ctx, emp.ID, yearStart, to)
	if err != nil {
		return err
	}
	for _, rec := range records {
		switch rec.Type {
		case domain.RecordVacation:
			data.VacationDaysUsedYTD++
		case domain.RecordSick:
			data.SickDaysUsedYTD++
		}
	}

	vacationBudget := emp.VacationDaysPerYear
	if vacationBudget <= 0 {
		vacationBudget = defaults.VacationDaysPerYear
	}
	sickBudget := emp.SickDaysPerYear
	if sickBudget <= 0 {
		sickBudget = defaults.SickDaysPerYear
	}
	data.VacationDaysRemaining = max(0, vacationBudget-data.VacationDaysUsedYTD)
	data.SickDaysRemaining = max(0, sickBudget-data.SickDaysUsedYTD)
	return nil
}
