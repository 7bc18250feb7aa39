package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// periodColumns flattens up to MaxPeriods periods into the six nullable
// start/end column values of a time_records row.
func periodColumns(periods []domain.Period) [domain.MaxPeriods * 2]interface{} {
	var cols [domain.MaxPeriods * 2]interface{}
	for i, p := range periods {
		if i >= domain.MaxPeriods {
			break
		}
		cols[i*2] = p.Start.String()
		cols[i*2+1] = p.End.String()
	}
	return cols
}

// scanPeriods rebuilds the period slice from the nullable column values.
// A period exists when both its start and end columns are present.
func scanPeriods(cols [domain.MaxPeriods * 2]sql.NullString) ([]domain.Period, error) {
	var periods []domain.Period
	for i := 0; i < domain.MaxPeriods; i++ {
		start, end := cols[i*2], cols[i*2+1]
		if !start.Valid || !end.Valid || start.String == "" || end.String == "" {
			continue
		}
		s, err := domain.ParseClock(start.String)
		if err != nil {
			return nil, fmt.Errorf("parsing period %d start: %w", i+1, err)
		}
		e, err := domain.ParseClock(end.String)
		if err != nil {
			return nil, fmt.Errorf("parsing period %d end: %w", i+1, err)
		}
		periods = append(periods, domain.Period{Start: s, End: e})
	}
	return periods, nil
}
