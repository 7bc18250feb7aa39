package config

import (
	"testing"

	"github.com/danielgrube/chronostaff/internal/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSettings_Defaults(t *testing.T) {
	cfg, company, allowances, err := FromSettings(nil)
	require.NoError(t, err)

	assert.Equal(t, timesheet.DefaultConfig(), cfg)
	assert.Equal(t, DefaultCompany(), company)
	assert.Equal(t, 20, allowances.VacationDaysPerYear)
	assert.Equal(t, 10, allowances.SickDaysPerYear)
}

func TestFromSettings_Overrides(t *testing.T) {
	cfg, company, allowances, err := FromSettings(map[string]string{
		"standard_hours_per_day": "7.5",
		"work_days_per_week":     "4",
		"max_daily_minutes":      "570",
		"break_rules":            "300:15,360:30",
		"vacation_days_per_year": "25",
		"company_name":           "Example AG",
	})
	require.NoError(t, err)

	assert.Equal(t, 7.5, cfg.StandardHoursPerDay)
	assert.Equal(t, 4, cfg.WorkDaysPerWeek)
	assert.Equal(t, 570, cfg.MaxDailyMinutes)
	assert.Equal(t, []timesheet.BreakRule{
		{ThresholdMinutes: 300, BreakMinutes: 15},
		{ThresholdMinutes: 360, BreakMinutes: 30},
	}, cfg.BreakRules)
	assert.Equal(t, 25, allowances.VacationDaysPerYear)
	assert.Equal(t, "Example AG", company.Name)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultCompany().City, company.City)
}

func TestFromSettings_MalformedValues(t *testing.T) {
	_, _, _, err := FromSettings(map[string]string{"standard_hours_per_day": "eight"})
	assert.Error(t, err)

	_, _, _, err = FromSettings(map[string]string{"break_rules": "360=30"})
	assert.Error(t, err)

	// Non-monotonic rules fail config validation.
	_, _, _, err = FromSettings(map[string]string{"break_rules": "540:45,360:30"})
	assert.ErrorIs(t, err, timesheet.ErrInvalidConfig)
}

func TestParseBreakRules(t *testing.T) {
	rules, err := ParseBreakRules(" 360:30 , 540:45 ")
	require.NoError(t, err)
	assert.Equal(t, []timesheet.BreakRule{
		{ThresholdMinutes: 360, BreakMinutes: 30},
		{ThresholdMinutes: 540, BreakMinutes: 45},
	}, rules)

	_, err = ParseBreakRules("360:thirty")
	assert.Error(t, err)
}
