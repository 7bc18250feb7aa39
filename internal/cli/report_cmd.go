package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/danielgrube/chronostaff/internal/cli/formatter"
	"github.com/danielgrube/chronostaff/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate time reports",
	}

	cmd.AddCommand(
		newReportMonthlyCmd(app),
		newReportYearlyCmd(app),
	)

	return cmd
}

func newReportMonthlyCmd(app *App) *cobra.Command {
	var employee, month, format, out, template string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Monthly report for one employee",
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

			data, err := app.Reports.MonthlyReport(ctx, employeeID, year, monthNum)
			if err != nil {
				return err
			}
			return writeReport(data, format, out, template)
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Staff number or employee ID")
	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text|tex|pdf)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (required for pdf, default stdout otherwise)")
	cmd.Flags().StringVar(&template, "template", "", "Custom LaTeX template file")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func newReportYearlyCmd(app *App) *cobra.Command {
	var employee, yearStr, format, out, template string

	cmd := &cobra.Command{
		Use:   "yearly",
		Short: "Yearly report for one employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			employeeID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				return fmt.Errorf("invalid year %q", yearStr)
			}

			data, err := app.Reports.YearlyReport(ctx, employeeID, year)
			if err != nil {
				return err
			}
			return writeReport(data, format, out, template)
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Staff number or employee ID")
	cmd.Flags().StringVar(&yearStr, "year", "", "Year (YYYY)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text|tex|pdf)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (required for pdf, default stdout otherwise)")
	cmd.Flags().StringVar(&template, "template", "", "Custom LaTeX template file")
	_ = cmd.MarkFlagRequired("employee")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func writeReport(data *report.Data, format, out, template string) error {
	switch format {
	case "text":
		return writeReportText(data, out)
	case "tex":
		return writeReportTeX(data, out, template)
	case "pdf":
		return writeReportPDF(data, out)
	default:
		return fmt.Errorf("unknown format %q (want text, tex or pdf)", format)
	}
}

func writeReportText(data *report.Data, out string) error {
	rendered := formatter.FormatReportSummary(data)
	if out == "" {
		fmt.Println(rendered)
		return nil
	}
	return os.WriteFile(out, []byte(rendered), 0o644)
}

func writeReportTeX(data *report.Data, out, template string) error {
	engine := report.NewLaTeXEngine()
	if template != "" {
		var err error
		engine, err = report.NewLaTeXEngineFromFile(template)
		if err != nil {
			return err
		}
	}
	rendered, err := engine.Render(*data)
	if err != nil {
		return err
	}
	if out == "" {
		fmt.Print(rendered)
		return nil
	}
	if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote LaTeX report to %s\n", out)
	return nil
}

func writeReportPDF(data *report.Data, out string) error {
	if out == "" {
		return fmt.Errorf("--out is required for pdf output")
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.NewPDFRenderer().Render(*data, f); err != nil {
		return err
	}
	fmt.Printf("Wrote PDF report to %s\n", out)
	return nil
}
