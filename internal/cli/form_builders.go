package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/danielgrube/chronostaff/internal/cli/formatter"
	"github.com/danielgrube/chronostaff/internal/domain"
)

func chronoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("want a number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}

// splitPeriodsLine turns "09:00-12:00, 13:00-17:00" into period specs.
func splitPeriodsLine(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' '
	})
	return fields
}

func validatePeriodsLine(s string) error {
	specs := splitPeriodsLine(s)
	if len(specs) > domain.MaxPeriods {
		return fmt.Errorf("at most %d periods", domain.MaxPeriods)
	}
	for _, spec := range specs {
		if !strings.Contains(spec, "-") {
			return fmt.Errorf("%q: want HH:MM-HH:MM", spec)
		}
	}
	return nil
}

// recordForm collects one day's attendance interactively.
func recordForm(date, periodsLine, typeStr, notes *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Date").Placeholder("2025-06-30").Value(date).Validate(validateDate),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("work", string(domain.RecordWork)),
					huh.NewOption("vacation", string(domain.RecordVacation)),
					huh.NewOption("sick", string(domain.RecordSick)),
					huh.NewOption("holiday", string(domain.RecordHoliday)),
				).
				Value(typeStr),
			huh.NewInput().
				Title("Periods (HH:MM-HH:MM, space separated, blank for none)").
				Placeholder("09:00-12:00 12:30-17:00").
				Value(periodsLine).
				Validate(validatePeriodsLine),
			huh.NewInput().Title("Notes").Value(notes),
		),
	).WithTheme(chronoHuhTheme()).WithShowHelp(false)
}

// employeeForm collects the fields of a new employee interactively. All
// values are returned as strings; the caller parses them like flag input.
func employeeForm(name, staffNumber, position, email, rate, hoursPerWeek, hireDate *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(name).Validate(validateRequired),
			huh.NewInput().Title("Staff number").Placeholder("EMP-0001").Value(staffNumber).Validate(validateRequired),
			huh.NewInput().Title("Position").Value(position),
			huh.NewInput().Title("Email").Value(email),
			huh.NewInput().Title("Hourly rate").Placeholder("25.00").Value(rate).Validate(validateOptionalFloat),
			huh.NewInput().Title("Hours per week").Placeholder("40").Value(hoursPerWeek).Validate(validateOptionalFloat),
			huh.NewInput().Title("Hire date (YYYY-MM-DD, blank for none)").Value(hireDate).Validate(validateOptionalDate),
		),
	).WithTheme(chronoHuhTheme()).WithShowHelp(false)
}
