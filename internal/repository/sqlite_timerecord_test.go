package repository

import (
	"context"
	"testing"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/danielgrube/chronostaff/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordTestSetup(t *testing.T) (*SQLiteTimeRecordRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	empRepo := NewSQLiteEmployeeRepo(database)

	emp := testutil.NewTestEmployee("Recorder")
	require.NoError(t, empRepo.Create(context.Background(), emp))

	return NewSQLiteTimeRecordRepo(database), emp.ID
}

func TestTimeRecordRepo_CreateAndGetByID(t *testing.T) {
	repo, empID := recordTestSetup(t)
	ctx := context.Background()

	rec := testutil.NewTestRecord(empID, "2023-01-05",
		[]string{"09:00-13:00", "13:30-17:00"}, testutil.WithNotes("split day"))
	require.NoError(t, repo.Create(ctx, rec))

	fetched, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-05", fetched.DateKey())
	require.Len(t, fetched.Periods, 2)
	assert.Equal(t, "09:00", fetched.Periods[0].Start.String())
	assert.Equal(t, "17:00", fetched.Periods[1].End.String())
	assert.Equal(t, domain.RecordWork, fetched.Type)
	assert.Equal(t, "split day", fetched.Notes)
}

func TestTimeRecordRepo_NoPeriods(t *testing.T) {
	repo, empID := recordTestSetup(t)
	ctx := context.Background()

	rec := testutil.NewTestRecord(empID, "2023-01-06", nil, testutil.WithType(domain.RecordVacation))
	require.NoError(t, repo.Create(ctx, rec))

	fetched, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Periods)
	assert.Equal(t, domain.RecordVacation, fetched.Type)
}

func TestTimeRecordRepo_TooManyPeriodsRejected(t *testing.T) {
	repo, empID := recordTestSetup(t)

	rec := testutil.NewTestRecord(empID, "2023-01-05", []string{
		"08:00-09:00", "10:00-11:00", "12:00-13:00",
	})
	rec.Periods = append(rec.Periods, domain.Period{
		Start: domain.MustClock("14:00"), End: domain.MustClock("15:00"),
	})

	assert.Error(t, repo.Create(context.Background(), rec))
}

func TestTimeRecordRepo_ListByEmployee_RangeAndOrder(t *testing.T) {
	repo, empID := recordTestSetup(t)
	ctx := context.Background()

	jan5 := testutil.NewTestRecord(empID, "2023-01-05", []string{"09:00-17:00"})
	jan9 := testutil.NewTestRecord(empID, "2023-01-09", []string{"09:00-17:00"})
	feb1 := testutil.NewTestRecord(empID, "2023-02-01", []string{"09:00-17:00"})
	for _, rec := range []*domain.TimeRecord{jan9, feb1, jan5} {
		require.NoError(t, repo.Create(ctx, rec))
	}

	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	list, err := repo.ListByEmployee(ctx, empID, from, to)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, jan5.ID, list[0].ID)
	assert.Equal(t, jan9.ID, list[1].ID)
}

func TestTimeRecordRepo_AllowsRawDuplicatesPerDate(t *testing.T) {
	repo, empID := recordTestSetup(t)
	ctx := context.Background()

	first := testutil.NewTestRecord(empID, "2023-01-05", []string{"09:00-12:00"},
		testutil.WithCreatedAt(time.Date(2023, 1, 5, 12, 0, 0, 0, time.UTC)))
	second := testutil.NewTestRecord(empID, "2023-01-05", []string{"13:00-17:00"},
		testutil.WithCreatedAt(time.Date(2023, 1, 5, 17, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	day := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	list, err := repo.ListByEmployee(ctx, empID, day, day)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Ordered by created_at within the date.
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestTimeRecordRepo_Update(t *testing.T) {
	repo, empID := recordTestSetup(t)
	ctx := context.Background()

	rec := testutil.NewTestRecord(empID, "2023-01-05", []string{"09:00-17:00"})
	require.NoError(t, repo.Create(ctx, rec))

	rec.Periods = []domain.Period{{Start: domain.MustClock("08:00"), End: domain.MustClock("12:00")}}
	rec.Type = domain.RecordSick
	rec.Notes = "went home sick"
	rec.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Update(ctx, rec))

	fetched, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Periods, 1)
	assert.Equal(t, "08:00", fetched.Periods[0].Start.String())
	assert.Equal(t, domain.RecordSick, fetched.Type)

	// Dropped trailing periods must be cleared, not left behind.
	assert.Len(t, fetched.Periods, 1)
}

func TestTimeRecordRepo_DeleteByEmployeeDate(t *testing.T) {
	repo, empID := recordTestSetup(t)
	ctx := context.Background()

	day := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestRecord(empID, "2023-01-05", []string{"09:00-12:00"})))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRecord(empID, "2023-01-05", []string{"13:00-17:00"})))
	keeper := testutil.NewTestRecord(empID, "2023-01-06", []string{"09:00-17:00"})
	require.NoError(t, repo.Create(ctx, keeper))

	require.NoError(t, repo.DeleteByEmployeeDate(ctx, empID, day))

	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	list, err := repo.ListByEmployee(ctx, empID, from, to)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keeper.ID, list[0].ID)
}

func TestTimeRecordRepo_Delete_NotFound(t *testing.T) {
	repo, _ := recordTestSetup(t)
	assert.ErrorIs(t, repo.Delete(context.Background(), "nonexistent"), ErrNotFound)
}
