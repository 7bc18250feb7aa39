package formatter

import (
	"fmt"
	"strings"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/timesheet"
	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatRecordList renders one month of records with per-day derived minutes.
// days must align index-wise with records, as returned by the aggregation.
func FormatRecordList(records []domain.TimeRecord, days []timesheet.DayResult) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Date", "Type", "Periods", "Total", "Break", "Net", "Flags", "Notes"})

	totalNet := 0
	for i, rec := range records {
		day := days[i]
		totalNet += day.NetMinutes
		t.AppendRow(table.Row{
			rec.DateKey(),
			typeLabel(rec.Type),
			formatPeriods(rec.Periods),
			MinutesToClock(day.TotalMinutes),
			MinutesToClock(day.BreakMinutes),
			MinutesToClock(day.NetMinutes),
			FlagList(day.Flags),
			rec.Notes,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Net total", MinutesToClock(totalNet), "", ""})
	t.SetStyle(table.StyleRounded)
	return t.Render()
}

func typeLabel(typ domain.RecordType) string {
	switch typ {
	case domain.RecordWork:
		return string(typ)
	case domain.RecordVacation:
		return StyleBlue.Render(string(typ))
	case domain.RecordSick:
		return StyleYellow.Render(string(typ))
	case domain.RecordHoliday:
		return StyleGreen.Render(string(typ))
	default:
		return string(typ)
	}
}

func formatPeriods(periods []domain.Period) string {
	if len(periods) == 0 {
		return Dim("-")
	}
	parts := make([]string, 0, len(periods))
	for _, p := range periods {
		parts = append(parts, fmt.Sprintf("%s-%s", p.Start, p.End))
	}
	return strings.Join(parts, " ")
}
