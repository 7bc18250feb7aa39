package domain

import "time"

// MaxPeriods is the per-day cap on work periods. A day has at most a
// morning, an afternoon and an evening block in the entry forms.
const MaxPeriods = 3

// Period is one contiguous start-end work interval within a calendar day.
type Period struct {
	Start Clock
	End   Clock
}

// Minutes returns the period length. Negative when End precedes Start;
// validation of that case belongs to the aggregation layer.
func (p Period) Minutes() int {
	return p.End.Minutes() - p.Start.Minutes()
}

// TimeRecord is one raw attendance entry for an employee on a date.
// More than one record may exist per date until consolidation merges them.
type TimeRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Periods    []Period
	Type       RecordType
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DateKey returns the record's date in the canonical YYYY-MM-DD form used
// for grouping and storage.
func (r *TimeRecord) DateKey() string {
	return r.Date.Format("2006-01-02")
}
