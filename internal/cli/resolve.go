package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielgrube/chronostaff/internal/repository"
)

// resolveEmployeeID turns user input into an employee ID. Staff numbers are
// the primary handle; full UUIDs and unambiguous UUID prefixes also work.
func resolveEmployeeID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("employee is required (staff number or ID)")
	}

	if emp, err := app.Employees.GetByStaffNumber(ctx, input); err == nil {
		return emp.ID, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	employees, err := app.Employees.List(ctx, true)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range employees {
		if e.ID == input {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("employee not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("employee ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
