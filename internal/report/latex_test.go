package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielgrube/chronostaff/internal/config"
	"github.com/danielgrube/chronostaff/internal/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() Data {
	return Data{
		Company:     config.DefaultCompany(),
		Employee:    "Max Mustermann",
		StaffNumber: "10042",
		PeriodLabel: "January 2023",
		Rows: []DayRow{
			{
				Date:         time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
				StartTime:    "09:00",
				EndTime:      "17:00",
				TotalMinutes: 480,
				BreakMinutes: 30,
				NetMinutes:   450,
			},
			{
				Date:       time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
				StartTime:  "-",
				EndTime:    "-",
				IsVacation: true,
			},
		},
		Summary: timesheet.PeriodSummary{
			TotalNetMinutes: 450,
			ExpectedMinutes: 480,
			WorkDays:        1,
			VacationDays:    1,
		},
	}
}

func TestLaTeXEngine_ReplacesAllMarkers(t *testing.T) {
	out, err := NewLaTeXEngine().Render(sampleData())
	require.NoError(t, err)

	for _, marker := range []string{"___DATA0___", "___DATA1___", "___DATA2___", "___DATA3___", "___DATA4___", "___DATA5___"} {
		assert.NotContains(t, out, marker)
	}
	assert.Contains(t, out, `\newcommand{\companyname}{My Company GmbH}`)
	assert.Contains(t, out, `\newcommand{\employeename}{Max Mustermann}`)
	assert.Contains(t, out, `\newcommand{\reportperiod}{January 2023}`)
	assert.Contains(t, out, `\definecolor{primary}{HTML}{2B579A}`)
	assert.Contains(t, out, `02.01.2023 & 09:00 & 17:00 & 480 & 30 & No & No \\`)
	assert.Contains(t, out, `03.01.2023 & - & - & 0 & 0 & Yes & No \\`)
	assert.Contains(t, out, `\multicolumn{3}{|l|}{\textbf{Total}} & 480 & 30 & 1 days & 0 days \\`)
	assert.Contains(t, out, `\textbf{Total Working Hours:} & 7.50 hours \\`)
}

func TestLaTeXEngine_EscapesSpecialCharacters(t *testing.T) {
	data := sampleData()
	data.Employee = "Müller & Söhne #1_test"
	data.Company.Name = "50% GmbH"

	out, err := NewLaTeXEngine().Render(data)
	require.NoError(t, err)
	assert.Contains(t, out, `Müller \& Söhne \#1\_test`)
	assert.Contains(t, out, `50\% GmbH`)
}

func TestLaTeXEngine_CustomTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.tex")
	custom := strings.Join([]string{
		"% ___DATA0___",
		"% ___DATA1___",
		"% ___DATA2___",
		"% ___DATA3___",
		"% ___DATA4___",
		"% ___DATA5___",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

	engine, err := NewLaTeXEngineFromFile(path)
	require.NoError(t, err)
	out, err := engine.Render(sampleData())
	require.NoError(t, err)
	assert.Contains(t, out, `\employeenumber`)
}

func TestLaTeXEngine_MissingMarker(t *testing.T) {
	engine := &LaTeXEngine{template: "% ___DATA0___ only"}
	_, err := engine.Render(sampleData())
	assert.Error(t, err)
}
