// Package config turns the flat settings table into the typed configuration
// values the aggregation and reporting layers take as explicit parameters.
// Nothing in the application reads settings ambiently.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danielgrube/chronostaff/internal/timesheet"
)

// Company is the letterhead identity printed on reports.
type Company struct {
	Name   string
	Street string
	City   string
	Phone  string
	Email  string

	// Report colors as HTML hex values without the leading '#'.
	PrimaryColor   string
	SecondaryColor string
	TertiaryColor  string
}

// DefaultCompany returns the placeholder identity a fresh installation uses
// until the operator fills in the settings table.
func DefaultCompany() Company {
	return Company{
		Name:           "My Company GmbH",
		Street:         "Businessstraße 123",
		City:           "10115 Berlin",
		Phone:          "+49-30-1234567",
		Email:          "contact@mycompany.com",
		PrimaryColor:   "2B579A",
		SecondaryColor: "00A4EF",
		TertiaryColor:  "00A4EF",
	}
}

// Allowances carries the default per-year vacation and sick day budgets for
// employees without an individual profile.
type Allowances struct {
	VacationDaysPerYear int
	SickDaysPerYear     int
}

// FromSettings assembles the aggregation config, company identity and
// default allowances from raw settings rows. Missing keys fall back to
// defaults; malformed values are errors rather than silent fallbacks.
func FromSettings(settings map[string]string) (timesheet.Config, Company, Allowances, error) {
	cfg := timesheet.DefaultConfig()
	company := DefaultCompany()
	allowances := Allowances{VacationDaysPerYear: 20, SickDaysPerYear: 10}

	var err error
	if v, ok := settings["standard_hours_per_day"]; ok {
		if cfg.StandardHoursPerDay, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, company, allowances, fmt.Errorf("setting standard_hours_per_day: %w", err)
		}
	}
	if v, ok := settings["work_days_per_week"]; ok {
		if cfg.WorkDaysPerWeek, err = strconv.Atoi(v); err != nil {
			return cfg, company, allowances, fmt.Errorf("setting work_days_per_week: %w", err)
		}
	}
	if v, ok := settings["max_daily_minutes"]; ok {
		if cfg.MaxDailyMinutes, err = strconv.Atoi(v); err != nil {
			return cfg, company, allowances, fmt.Errorf("setting max_daily_minutes: %w", err)
		}
	}
	if v, ok := settings["min_rest_minutes"]; ok {
		if cfg.MinRestMinutes, err = strconv.Atoi(v); err != nil {
			return cfg, company, allowances, fmt.Errorf("setting min_rest_minutes: %w", err)
		}
	}
	if v, ok := settings["break_rules"]; ok {
		if cfg.BreakRules, err = ParseBreakRules(v); err != nil {
			return cfg, company, allowances, fmt.Errorf("setting break_rules: %w", err)
		}
	}
	if v, ok := settings["vacation_days_per_year"]; ok {
		if allowances.VacationDaysPerYear, err = strconv.Atoi(v); err != nil {
			return cfg, company, allowances, fmt.Errorf("setting vacation_days_per_year: %w", err)
		}
	}
	if v, ok := settings["sick_days_per_year"]; ok {
		if allowances.SickDaysPerYear, err = strconv.Atoi(v); err != nil {
			return cfg, company, allowances, fmt.Errorf("setting sick_days_per_year: %w", err)
		}
	}

	stringSetting(settings, "company_name", &company.Name)
	stringSetting(settings, "company_street", &company.Street)
	stringSetting(settings, "company_city", &company.City)
	stringSetting(settings, "company_phone", &company.Phone)
	stringSetting(settings, "company_email", &company.Email)
	stringSetting(settings, "primary_color", &company.PrimaryColor)
	stringSetting(settings, "secondary_color", &company.SecondaryColor)
	stringSetting(settings, "tertiary_color", &company.TertiaryColor)

	if err := cfg.Validate(); err != nil {
		return cfg, company, allowances, err
	}
	return cfg, company, allowances, nil
}

// ParseBreakRules parses the "threshold:break,threshold:break" settings
// encoding into an ordered rule table.
func ParseBreakRules(s string) ([]timesheet.BreakRule, error) {
	var rules []timesheet.BreakRule
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		thresholdStr, breakStr, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("malformed break rule %q: want threshold:break", pair)
		}
		threshold, err := strconv.Atoi(strings.TrimSpace(thresholdStr))
		if err != nil {
			return nil, fmt.Errorf("malformed break rule threshold %q: %w", thresholdStr, err)
		}
		breakMin, err := strconv.Atoi(strings.TrimSpace(breakStr))
		if err != nil {
			return nil, fmt.Errorf("malformed break rule minutes %q: %w", breakStr, err)
		}
		rules = append(rules, timesheet.BreakRule{ThresholdMinutes: threshold, BreakMinutes: breakMin})
	}
	return rules, nil
}

func stringSetting(settings map[string]string, key string, dst *string) {
	if v, ok := settings[key]; ok && v != "" {
		*dst = v
	}
}
