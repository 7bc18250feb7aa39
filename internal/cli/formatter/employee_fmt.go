package formatter

import (
	"fmt"
	"strings"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatEmployeeList renders the roster as a table.
func FormatEmployeeList(employees []*domain.Employee) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Staff No", "Name", "Position", "Rate", "Hours/Week", "Status"})
	for _, e := range employees {
		status := StyleGreen.Render("active")
		if !e.Active {
			status = StyleDim.Render("inactive")
		}
		t.AppendRow(table.Row{
			e.StaffNumber,
			e.Name,
			e.Position,
			Money(e.HourlyRate),
			fmt.Sprintf("%.1f", e.HoursPerWeek),
			status,
		})
	}
	t.SetStyle(table.StyleRounded)
	return t.Render()
}

// FormatEmployeeInspect renders one employee's full profile.
func FormatEmployeeInspect(e *domain.Employee) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s [%s]", e.Name, e.StaffNumber)))
	b.WriteString("\n")

	write := func(label, value string) {
		if value == "" {
			value = Dim("-")
		}
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render(label+":"), value)
	}

	write("Position", e.Position)
	write("Email", e.Email)
	hireDate := ""
	if e.HireDate != nil {
		hireDate = e.HireDate.Format("2006-01-02")
	}
	write("Hired", hireDate)
	write("Hourly rate", Money(e.HourlyRate))
	write("Hours/week", fmt.Sprintf("%.1f", e.HoursPerWeek))
	write("Vacation days/year", fmt.Sprintf("%d", e.VacationDaysPerYear))
	write("Sick days/year", fmt.Sprintf("%d", e.SickDaysPerYear))
	if e.Active {
		write("Status", StyleGreen.Render("active"))
	} else {
		write("Status", StyleDim.Render("inactive"))
	}
	return b.String()
}
