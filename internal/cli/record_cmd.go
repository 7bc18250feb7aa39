package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielgrube/chronostaff/internal/cli/formatter"
	"github.com/danielgrube/chronostaff/internal/config"
	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/timesheet"
	"github.com/spf13/cobra"
)

func newRecordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Manage time records",
	}

	cmd.AddCommand(
		newRecordAddCmd(app),
		newRecordListCmd(app),
		newRecordUpdateCmd(app),
		newRecordRemoveCmd(app),
		newRecordConsolidateCmd(app),
	)

	return cmd
}

func parsePeriods(specs []string) ([]domain.Period, error) {
	periods := make([]domain.Period, 0, len(specs))
	for _, spec := range specs {
		startStr, endStr, ok := strings.Cut(spec, "-")
		if !ok {
			return nil, fmt.Errorf("invalid period %q, expected HH:MM-HH:MM", spec)
		}
		start, err := domain.ParseClock(startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid period %q: %w", spec, err)
		}
		end, err := domain.ParseClock(endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid period %q: %w", spec, err)
		}
		periods = append(periods, domain.Period{Start: start, End: end})
	}
	return periods, nil
}

func parseMonth(s string) (int, int, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
	}
	return t.Year(), int(t.Month()), nil
}

func newRecordAddCmd(app *App) *cobra.Command {
	var employee, date, typeStr, notes string
	var periodSpecs []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a day's attendance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}

			// Without --date on a terminal, fall back to the form.
			if !cmd.Flags().Changed("date") && app.interactive() {
				var periodsLine string
				form := recordForm(&date, &periodsLine, &typeStr, &notes)
				if err := form.Run(); err != nil {
					return err
				}
				periodSpecs = splitPeriodsLine(periodsLine)
			}

			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}
			periods, err := parsePeriods(periodSpecs)
			if err != nil {
				return err
			}

			rec := &domain.TimeRecord{
				EmployeeID: employeeID,
				Date:       day,
				Periods:    periods,
				Type:       domain.RecordType(typeStr),
				Notes:      notes,
			}
			if err := app.Records.Add(ctx, rec); err != nil {
				return err
			}

			fmt.Printf("Recorded %s for %s (%d periods)\n", rec.Type, rec.DateKey(), len(periods))
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Staff number or employee ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&periodSpecs, "period", nil, "Work period HH:MM-HH:MM (repeatable, max 3)")
	cmd.Flags().StringVar(&typeStr, "type", string(domain.RecordWork), "Record type (work|vacation|sick|holiday)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newRecordListCmd(app *App) *cobra.Command {
	var employee, month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one month of records with derived minutes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}
			year, monthNum, err := parseMonth(month)
			if err != nil {
				return err
			}

			stored, err := app.Records.ListMonth(ctx, employeeID, year, monthNum)
			if err != nil {
				return err
			}
			if len(stored) == 0 {
				fmt.Println("No records found.")
				return nil
			}

			raw, err := app.Settings.All(ctx)
			if err != nil {
				return err
			}
			cfg, _, _, err := config.FromSettings(raw)
			if err != nil {
				return err
			}

			records := make([]domain.TimeRecord, 0, len(stored))
			days := make([]timesheet.DayResult, 0, len(stored))
			for _, rec := range stored {
				day, err := timesheet.ComputeDayResult(*rec, cfg)
				if err != nil {
					return err
				}
				records = append(records, *rec)
				days = append(days, day)
			}

			fmt.Printf("%s\n", formatter.FormatRecordList(records, days))
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Staff number or employee ID")
	cmd.Flags().StringVar(&month, "month", time.Now().Format("2006-01"), "Month (YYYY-MM)")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

func newRecordUpdateCmd(app *App) *cobra.Command {
	var date, typeStr, notes string
	var periodSpecs []string

	cmd := &cobra.Command{
		Use:   "update RECORD-ID",
		Short: "Update a time record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rec, err := app.Records.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("date") {
				day, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				rec.Date = day
			}
			if cmd.Flags().Changed("period") {
				periods, err := parsePeriods(periodSpecs)
				if err != nil {
					return err
				}
				rec.Periods = periods
			}
			if cmd.Flags().Changed("type") {
				rec.Type = domain.RecordType(typeStr)
			}
			if cmd.Flags().Changed("notes") {
				rec.Notes = notes
			}

			if err := app.Records.Update(ctx, rec); err != nil {
				return err
			}

			fmt.Printf("Updated record %s (%s)\n", rec.ID, rec.DateKey())
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&periodSpecs, "period", nil, "Work period HH:MM-HH:MM (repeatable, replaces all)")
	cmd.Flags().StringVar(&typeStr, "type", "", "Record type (work|vacation|sick|holiday)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newRecordRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove RECORD-ID",
		Short: "Delete a time record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Records.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed record %s\n", args[0])
			return nil
		},
	}
}

func newRecordConsolidateCmd(app *App) *cobra.Command {
	var employee, month string

	cmd := &cobra.Command{
		Use:   "consolidate",
		Short: "Merge duplicate same-date entries for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}
			year, monthNum, err := parseMonth(month)
			if err != nil {
				return err
			}

			result, err := app.Records.Consolidate(ctx, employeeID, year, monthNum)
			if err != nil {
				return err
			}

			if len(result.MergedDates) == 0 {
				fmt.Println("Nothing to consolidate.")
				return nil
			}
			fmt.Printf("Consolidated %d dates: %s\n",
				len(result.MergedDates), strings.Join(result.MergedDates, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Staff number or employee ID")
	cmd.Flags().StringVar(&month, "month", time.Now().Format("2006-01"), "Month (YYYY-MM)")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}
