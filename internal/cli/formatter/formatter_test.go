package formatter

import (
	"strings"
	"testing"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/testutil"
	"github.com/danielgrube/chronostaff/internal/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "8:30", MinutesToClock(510))
	assert.Equal(t, "0:05", MinutesToClock(5))
	assert.Equal(t, "0:00", MinutesToClock(0))
}

func TestFormatEmployeeList(t *testing.T) {
	active := testutil.NewTestEmployee("Active Person")
	inactive := testutil.NewTestEmployee("Gone Person", testutil.WithInactive())

	out := FormatEmployeeList([]*domain.Employee{active, inactive})

	assert.Contains(t, out, "Active Person")
	assert.Contains(t, out, active.StaffNumber)
	assert.Contains(t, out, "inactive")
}

func TestFormatRecordList_ShowsDerivedMinutes(t *testing.T) {
	rec := testutil.NewTestRecord("emp", "2023-01-05", []string{"08:00-16:30"})
	day, err := timesheet.ComputeDayResult(*rec, timesheet.DefaultConfig())
	require.NoError(t, err)

	out := FormatRecordList([]domain.TimeRecord{*rec}, []timesheet.DayResult{day})

	assert.Contains(t, out, "2023-01-05")
	assert.Contains(t, out, "8:30") // total
	assert.Contains(t, out, "8:00") // net after 30 min break
	assert.Contains(t, out, "Net total")
}

func TestFlagList(t *testing.T) {
	assert.Contains(t, FlagList(nil), "-")

	out := FlagList([]domain.ComplianceFlag{
		domain.FlagExceedsMaxDaily,
		domain.FlagInsufficientBreak,
	})
	assert.Contains(t, out, "OVER DAILY MAX")
	assert.Contains(t, out, "SHORT BREAK")
}

func TestHeader_Underlines(t *testing.T) {
	out := Header("Summary")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "SUMMARY")
}
