package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArchive(t *testing.T) Archive {
	t.Helper()
	emp := testutil.NewTestEmployee("Clara Voss")
	records := map[string][]*domain.TimeRecord{
		emp.ID: {
			testutil.NewTestRecord(emp.ID, "2023-01-05", []string{"09:00-13:00", "13:30-17:00"},
				testutil.WithNotes("split day")),
			testutil.NewTestRecord(emp.ID, "2023-01-06", nil, testutil.WithType(domain.RecordVacation)),
		},
	}
	return BuildArchive([]*domain.Employee{emp}, records,
		time.Date(2023, 2, 1, 12, 0, 0, 0, time.UTC))
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	archive := sampleArchive(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, archive))

	var decoded Archive
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Employees, 1)
	assert.Equal(t, "Clara Voss", decoded.Employees[0].Name)
	require.Len(t, decoded.Employees[0].TimeRecords, 2)
	assert.Equal(t, []string{"09:00-13:00", "13:30-17:00"}, decoded.Employees[0].TimeRecords[0].Periods)
	assert.Equal(t, "vacation", decoded.Employees[0].TimeRecords[1].Type)
}

func TestWriteCSV_FlattensRecords(t *testing.T) {
	archive := sampleArchive(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, archive))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 records
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "2023-01-05", rows[1][2])
	assert.Equal(t, "450", rows[1][5])
	assert.Equal(t, "vacation", rows[2][3])
	assert.Equal(t, "0", rows[2][5])
}

func TestBuildArchive_EmployeesOnly(t *testing.T) {
	emp := testutil.NewTestEmployee("Solo")
	archive := BuildArchive([]*domain.Employee{emp}, nil, time.Now())

	require.Len(t, archive.Employees, 1)
	assert.Empty(t, archive.Employees[0].TimeRecords)
}
