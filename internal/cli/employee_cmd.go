package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/danielgrube/chronostaff/internal/cli/formatter"
	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/spf13/cobra"
)

func newEmployeeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
	}

	cmd.AddCommand(
		newEmployeeAddCmd(app),
		newEmployeeListCmd(app),
		newEmployeeInspectCmd(app),
		newEmployeeUpdateCmd(app),
		newEmployeeReactivateCmd(app),
		newEmployeeRemoveCmd(app),
	)

	return cmd
}

func newEmployeeAddCmd(app *App) *cobra.Command {
	var name, staffNumber, position, email, hireDate string
	var rate, hoursPerWeek float64
	var vacationDays, sickDays int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without --name on a terminal, fall back to the form.
			if !cmd.Flags().Changed("name") && app.interactive() {
				var rateStr, hoursStr string
				form := employeeForm(&name, &staffNumber, &position, &email, &rateStr, &hoursStr, &hireDate)
				if err := form.Run(); err != nil {
					return err
				}
				if rateStr != "" {
					rate, _ = strconv.ParseFloat(rateStr, 64)
				}
				if hoursStr != "" {
					hoursPerWeek, _ = strconv.ParseFloat(hoursStr, 64)
				}
			}

			e := &domain.Employee{
				Name:                name,
				StaffNumber:         staffNumber,
				Position:            position,
				Email:               email,
				HourlyRate:          rate,
				HoursPerWeek:        hoursPerWeek,
				VacationDaysPerYear: vacationDays,
				SickDaysPerYear:     sickDays,
			}
			if hireDate != "" {
				hired, err := time.Parse("2006-01-02", hireDate)
				if err != nil {
					return fmt.Errorf("invalid hire date %q: %w", hireDate, err)
				}
				e.HireDate = &hired
			}

			if err := app.Employees.Create(context.Background(), e); err != nil {
				return err
			}

			fmt.Printf("Created employee %s [%s]\n", e.Name, e.StaffNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&staffNumber, "staff-number", "", "Unique staff number, e.g. EMP-0001")
	cmd.Flags().StringVar(&position, "position", "", "Job title")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&hireDate, "hired", "", "Hire date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate")
	cmd.Flags().Float64Var(&hoursPerWeek, "hours", 40, "Contracted hours per week")
	cmd.Flags().IntVar(&vacationDays, "vacation-days", 0, "Vacation days per year (0 uses the default)")
	cmd.Flags().IntVar(&sickDays, "sick-days", 0, "Sick days per year (0 uses the default)")

	return cmd
}

func newEmployeeListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.Employees.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(employees) == 0 {
				fmt.Println("No employees found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatEmployeeList(employees))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include deactivated employees")

	return cmd
}

func newEmployeeInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect EMPLOYEE",
		Short: "Show employee details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEmployeeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Employees.GetByID(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatEmployeeInspect(e))
			return nil
		},
	}
}

func newEmployeeUpdateCmd(app *App) *cobra.Command {
	var name, position, email, hireDate string
	var rate, hoursPerWeek float64
	var vacationDays, sickDays int

	cmd := &cobra.Command{
		Use:   "update EMPLOYEE",
		Short: "Update an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEmployeeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Employees.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				e.Name = name
			}
			if cmd.Flags().Changed("position") {
				e.Position = position
			}
			if cmd.Flags().Changed("email") {
				e.Email = email
			}
			if cmd.Flags().Changed("hired") {
				hired, err := time.Parse("2006-01-02", hireDate)
				if err != nil {
					return fmt.Errorf("invalid hire date %q: %w", hireDate, err)
				}
				e.HireDate = &hired
			}
			if cmd.Flags().Changed("rate") {
				e.HourlyRate = rate
			}
			if cmd.Flags().Changed("hours") {
				e.HoursPerWeek = hoursPerWeek
			}
			if cmd.Flags().Changed("vacation-days") {
				e.VacationDaysPerYear = vacationDays
			}
			if cmd.Flags().Changed("sick-days") {
				e.SickDaysPerYear = sickDays
			}

			if err := app.Employees.Update(ctx, e); err != nil {
				return err
			}

			fmt.Printf("Updated employee %s [%s]\n", e.Name, e.StaffNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&position, "position", "", "Job title")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&hireDate, "hired", "", "Hire date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate")
	cmd.Flags().Float64Var(&hoursPerWeek, "hours", 0, "Contracted hours per week")
	cmd.Flags().IntVar(&vacationDays, "vacation-days", 0, "Vacation days per year")
	cmd.Flags().IntVar(&sickDays, "sick-days", 0, "Sick days per year")

	return cmd
}

func newEmployeeReactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate EMPLOYEE",
		Short: "Reactivate a deactivated employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEmployeeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Employees.Reactivate(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Reactivated employee %s\n", args[0])
			return nil
		},
	}
}

func newEmployeeRemoveCmd(app *App) *cobra.Command {
	var permanent bool

	cmd := &cobra.Command{
		Use:   "remove EMPLOYEE",
		Short: "Deactivate an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEmployeeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Employees.Remove(ctx, id, permanent); err != nil {
				return err
			}
			if permanent {
				fmt.Printf("Permanently deleted employee %s and all their records\n", args[0])
			} else {
				fmt.Printf("Deactivated employee %s\n", args[0])
			}
			return nil
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().BoolVar(&permanent, "permanent", false, "Delete the employee and all their time records")

	return cmd
}
