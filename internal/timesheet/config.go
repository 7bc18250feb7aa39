package timesheet

import "fmt"

// BreakRule maps a worked-minutes threshold to the break duration that must
// be deducted once the threshold is reached. Rules form a step function:
// only the highest applicable tier counts, tiers are never added up.
type BreakRule struct {
	ThresholdMinutes int
	BreakMinutes     int
}

// Config carries every knob the aggregation needs. It is an immutable value
// passed into each call; there is no ambient settings access.
type Config struct {
	// BreakRules is ordered ascending by threshold.
	BreakRules []BreakRule

	// MaxDailyMinutes is the labor-law ceiling on worked minutes per day.
	// Zero disables the check.
	MaxDailyMinutes int

	// MinRestMinutes is the required rest between two shifts. It is not
	// evaluated within a single day; cross-day evaluation is a reporting
	// concern outside the aggregation itself.
	MinRestMinutes int

	StandardHoursPerDay float64
	WorkDaysPerWeek     int
}

// DefaultConfig returns the German-labor-law-flavored defaults the original
// settings table ships with: 30 min break past 6 h, 45 min past 9 h,
// 10 h daily ceiling, 8-hour days in a 5-day week.
func DefaultConfig() Config {
	return Config{
		BreakRules: []BreakRule{
			{ThresholdMinutes: 360, BreakMinutes: 30},
			{ThresholdMinutes: 540, BreakMinutes: 45},
		},
		MaxDailyMinutes:     600,
		MinRestMinutes:      660,
		StandardHoursPerDay: 8,
		WorkDaysPerWeek:     5,
	}
}

// Validate reports ErrInvalidConfig when the break rule table is missing,
// carries negative values, or is not strictly ascending by threshold.
func (c Config) Validate() error {
	if len(c.BreakRules) == 0 {
		return fmt.Errorf("%w: no break rules", ErrInvalidConfig)
	}
	prev := -1
	for i, r := range c.BreakRules {
		if r.ThresholdMinutes < 0 || r.BreakMinutes < 0 {
			return fmt.Errorf("%w: rule %d has negative values", ErrInvalidConfig, i)
		}
		if r.ThresholdMinutes <= prev {
			return fmt.Errorf("%w: rule thresholds not ascending at index %d", ErrInvalidConfig, i)
		}
		prev = r.ThresholdMinutes
	}
	return nil
}

// requiredBreak returns the break minutes of the last tier whose threshold
// is within totalMinutes, 0 when no tier applies.
func (c Config) requiredBreak(totalMinutes int) int {
	breakMin := 0
	for _, r := range c.BreakRules {
		if r.ThresholdMinutes <= totalMinutes {
			breakMin = r.BreakMinutes
		}
	}
	return breakMin
}
