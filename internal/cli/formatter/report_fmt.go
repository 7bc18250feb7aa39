package formatter

import (
	"fmt"
	"strings"

	"github.com/danielgrube/chronostaff/internal/report"
	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatReportSummary renders the terminal view of a report: heading, the
// per-day table and the period totals.
func FormatReportSummary(data *report.Data) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s — %s", data.Employee, data.PeriodLabel)))
	b.WriteString("\n")
	b.WriteString(reportTable(data))
	b.WriteString("\n\n")

	sum := data.Summary
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-22s %s\n", StyleBlue.Render(label), value)
	}
	line("Net worked", fmt.Sprintf("%s (%.2f h)", MinutesToClock(sum.TotalNetMinutes), data.TotalHours()))
	line("Expected", MinutesToClock(sum.ExpectedMinutes))
	line("Overtime", MinutesToClock(sum.OvertimeMinutes))
	line("Work days", fmt.Sprintf("%d", sum.WorkDays))
	line("Vacation days", fmt.Sprintf("%d (%d left this year)", sum.VacationDays, data.VacationDaysRemaining))
	line("Sick days", fmt.Sprintf("%d (%d left this year)", sum.SickDays, data.SickDaysRemaining))
	if sum.ComplianceViolationDays > 0 {
		line("Flagged days", StyleRed.Render(fmt.Sprintf("%d", sum.ComplianceViolationDays)))
	}
	line("Regular pay", Money(data.RegularPay))
	line("Overtime pay", Money(data.OvertimePay))
	line("Total pay", Bold(Money(data.TotalPay)))

	return b.String()
}

func reportTable(data *report.Data) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Date", "Start", "End", "Total", "Break", "Net", "Flags"})
	for _, row := range data.Rows {
		if row.Blank() {
			t.AppendRow(table.Row{Dim(row.Date.Format("Mon 02.01.")), Dim("-"), Dim("-"), "", "", "", ""})
			continue
		}
		label := row.Date.Format("Mon 02.01.")
		switch {
		case row.IsVacation:
			t.AppendRow(table.Row{label, StyleBlue.Render("vacation"), "", "", "", "", ""})
		case row.IsSick:
			t.AppendRow(table.Row{label, StyleYellow.Render("sick"), "", "", "", "", ""})
		default:
			t.AppendRow(table.Row{
				label,
				row.StartTime,
				row.EndTime,
				MinutesToClock(row.TotalMinutes),
				MinutesToClock(row.BreakMinutes),
				MinutesToClock(row.NetMinutes),
				FlagList(row.Flags),
			})
		}
	}
	t.AppendFooter(table.Row{"", "", "", "", "Net total", MinutesToClock(data.Summary.TotalNetMinutes), ""})
	t.SetStyle(table.StyleRounded)
	return t.Render()
}
