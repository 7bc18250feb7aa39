package timesheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielgrube/chronostaff/internal/domain"
)

// Deduplicate merges raw records sharing a calendar date into one logical
// record per date. The entry forms allow several raw records per date across
// separate user actions; everything downstream of here assumes one.
//
// Merge policy: periods from all records of a date are concatenated in entry
// order (by CreatedAt, input order breaking ties) up to the period cap;
// record type and notes follow the most recently entered record, silently,
// even when types conflict. Output preserves the first-appearance order of
// dates. Applying Deduplicate twice yields the same result as once.
func Deduplicate(records []domain.TimeRecord) ([]domain.TimeRecord, error) {
	groups := make(map[string][]domain.TimeRecord)
	var order []string
	for _, rec := range records {
		key := rec.DateKey()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rec)
	}

	out := make([]domain.TimeRecord, 0, len(order))
	for _, key := range order {
		group := groups[key]
		if len(group) == 1 {
			out = append(out, group[0])
			continue
		}
		merged, err := mergeGroup(group)
		if err != nil {
			return nil, err
		}
		out = append(out, merged)
	}
	return out, nil
}

func mergeGroup(group []domain.TimeRecord) (domain.TimeRecord, error) {
	// Entry order: CreatedAt ascending, stable so that records entered in
	// the same instant keep their input order.
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].CreatedAt.Before(group[j].CreatedAt)
	})

	merged := group[0]
	last := group[len(group)-1]

	var periods []domain.Period
	var notes []string
	for _, rec := range group {
		periods = append(periods, rec.Periods...)
		if rec.Notes != "" {
			notes = append(notes, rec.Notes)
		}
	}
	if len(periods) > domain.MaxPeriods {
		return domain.TimeRecord{}, fmt.Errorf("%w: merging %s yields %d periods (max %d)",
			ErrTooManyPeriods, merged.DateKey(), len(periods), domain.MaxPeriods)
	}

	merged.Periods = periods
	// Last write wins on conflicting types. Known to conflate a worked day
	// with a vacation day; current policy, not a bug.
	merged.Type = last.Type
	merged.Notes = strings.Join(notes, " | ")
	merged.UpdatedAt = last.UpdatedAt
	return merged, nil
}
