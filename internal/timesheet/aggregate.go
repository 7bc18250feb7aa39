// Package timesheet implements the pure aggregation core of ChronoStaff:
// converting recorded work periods into net worked minutes with break
// deduction, folding daily records into period summaries, and merging
// duplicate same-date entries. Every function is deterministic and free of
// side effects; persistence and rendering live with the callers.
package timesheet

import (
	"fmt"
	"sort"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
)

// DayResult is the derived view of one daily record.
type DayResult struct {
	Date         time.Time
	Type         domain.RecordType
	TotalMinutes int
	BreakMinutes int
	NetMinutes   int
	Flags        []domain.ComplianceFlag
}

// Violated reports whether any labor rule was flagged for the day.
func (d DayResult) Violated() bool {
	return len(d.Flags) > 0
}

// PeriodSummary is the fold over one reporting period.
type PeriodSummary struct {
	TotalNetMinutes int
	// ExpectedMinutes is standardHoursPerDay * 60 * work day count. Kept in
	// the summary so callers can derive undertime even though
	// OvertimeMinutes is clamped at zero.
	ExpectedMinutes         int
	OvertimeMinutes         int
	WorkDays                int
	VacationDays            int
	SickDays                int
	HolidayDays             int
	ComplianceViolationDays int
}

// ComputeDayResult derives total, break and net minutes plus compliance
// flags for a single record. Periods are summed regardless of record type;
// non-work records simply tend to carry none.
func ComputeDayResult(rec domain.TimeRecord, cfg Config) (DayResult, error) {
	if err := cfg.Validate(); err != nil {
		return DayResult{}, err
	}

	res := DayResult{Date: rec.Date, Type: rec.Type}
	for i, p := range rec.Periods {
		if p.End <= p.Start {
			return DayResult{}, fmt.Errorf("%w: record %s period %d (%s-%s)",
				ErrInvalidPeriod, rec.DateKey(), i+1, p.Start, p.End)
		}
		res.TotalMinutes += p.Minutes()
	}

	res.BreakMinutes = cfg.requiredBreak(res.TotalMinutes)

	// Gaps between periods are break the employee already took; only the
	// remaining shortfall of the required break is deducted from the total.
	// A split day with a real gap therefore nets the same as the equivalent
	// single block. BreakMinutes stays the tier requirement for reporting.
	taken := recordedBreak(rec.Periods)
	res.NetMinutes = res.TotalMinutes - max(0, res.BreakMinutes-taken)
	if res.NetMinutes < 0 {
		res.NetMinutes = 0
	}

	if cfg.MaxDailyMinutes > 0 && res.TotalMinutes > cfg.MaxDailyMinutes {
		res.Flags = append(res.Flags, domain.FlagExceedsMaxDaily)
	}
	if len(rec.Periods) >= 2 && res.BreakMinutes > 0 && taken < res.BreakMinutes {
		res.Flags = append(res.Flags, domain.FlagInsufficientBreak)
	}

	return res, nil
}

// recordedBreak infers the break an employee actually took as the sum of
// gaps between consecutive periods of the day.
func recordedBreak(periods []domain.Period) int {
	sorted := make([]domain.Period, len(periods))
	copy(sorted, periods)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	total := 0
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].Start.Minutes() - sorted[i-1].End.Minutes()
		if gap > 0 {
			total += gap
		}
	}
	return total
}

// ComputePeriodSummary computes a DayResult for every record and folds them
// into one summary. Records are expected to be deduplicated (one per date);
// input order does not matter beyond that. An empty input yields a zero
// summary. The per-day results are returned alongside for report rendering.
func ComputePeriodSummary(records []domain.TimeRecord, cfg Config) (PeriodSummary, []DayResult, error) {
	if err := cfg.Validate(); err != nil {
		return PeriodSummary{}, nil, err
	}

	var sum PeriodSummary
	days := make([]DayResult, 0, len(records))
	for _, rec := range records {
		res, err := ComputeDayResult(rec, cfg)
		if err != nil {
			return PeriodSummary{}, nil, err
		}
		days = append(days, res)

		switch rec.Type {
		case domain.RecordWork:
			sum.WorkDays++
			sum.TotalNetMinutes += res.NetMinutes
		case domain.RecordVacation:
			sum.VacationDays++
		case domain.RecordSick:
			sum.SickDays++
		case domain.RecordHoliday:
			sum.HolidayDays++
		}
		if res.Violated() {
			sum.ComplianceViolationDays++
		}
	}

	sum.ExpectedMinutes = int(cfg.StandardHoursPerDay * 60 * float64(sum.WorkDays))
	sum.OvertimeMinutes = sum.TotalNetMinutes - sum.ExpectedMinutes
	if sum.OvertimeMinutes < 0 {
		sum.OvertimeMinutes = 0
	}

	return sum, days, nil
}
