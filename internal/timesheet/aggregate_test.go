package timesheet

import (
	"testing"
	"time"

	"github.com/danielgrube/chronostaff/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(dateStr string, typ domain.RecordType, periods ...domain.Period) domain.TimeRecord {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	return domain.TimeRecord{
		EmployeeID: "emp-1",
		Date:       d,
		Periods:    periods,
		Type:       typ,
	}
}

func period(start, end string) domain.Period {
	return domain.Period{Start: domain.MustClock(start), End: domain.MustClock(end)}
}

func TestComputeDayResult_SinglePeriodWithBreakTier(t *testing.T) {
	rec := day("2023-01-02", domain.RecordWork, period("09:00", "17:00"))

	res, err := ComputeDayResult(rec, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 480, res.TotalMinutes)
	assert.Equal(t, 30, res.BreakMinutes)
	assert.Equal(t, 450, res.NetMinutes)
}

func TestComputeDayResult_SplitDayMatchesSinglePeriodNet(t *testing.T) {
	// Two periods with a real 30-minute gap must net the same 450 minutes
	// as one 480-minute block: the gap never double-counts against the
	// tier-derived break.
	single := day("2023-01-02", domain.RecordWork, period("09:00", "17:00"))
	split := day("2023-01-02", domain.RecordWork,
		period("09:00", "13:00"), period("13:30", "17:00"))

	sres, err := ComputeDayResult(single, DefaultConfig())
	require.NoError(t, err)
	res, err := ComputeDayResult(split, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 450, res.TotalMinutes)
	assert.Equal(t, 30, res.BreakMinutes)
	assert.Equal(t, 450, res.NetMinutes)
	assert.Equal(t, sres.NetMinutes, res.NetMinutes)
	assert.NotContains(t, res.Flags, domain.FlagInsufficientBreak)
}

func TestComputeDayResult_NetNeverExceedsTotal(t *testing.T) {
	cfg := DefaultConfig()
	for _, minutes := range []int{0, 60, 359, 360, 480, 540, 600, 720} {
		end := domain.Clock(8*60 + minutes)
		rec := day("2023-01-02", domain.RecordWork, domain.Period{Start: domain.MustClock("08:00"), End: end})
		if minutes == 0 {
			rec.Periods = nil
		}

		res, err := ComputeDayResult(rec, cfg)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.NetMinutes, res.TotalMinutes)
		if res.BreakMinutes == 0 {
			assert.Equal(t, res.TotalMinutes, res.NetMinutes)
		}
	}
}

func TestComputeDayResult_BreakTierMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	prevBreak := 0
	for minutes := 1; minutes <= 840; minutes++ {
		got := cfg.requiredBreak(minutes)
		assert.GreaterOrEqual(t, got, prevBreak, "tier regression at %d minutes", minutes)
		prevBreak = got
	}
}

func TestComputeDayResult_InvalidPeriod(t *testing.T) {
	rec := day("2023-01-02", domain.RecordWork, period("17:00", "09:00"))

	_, err := ComputeDayResult(rec, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	zero := day("2023-01-02", domain.RecordWork, period("09:00", "09:00"))
	_, err = ComputeDayResult(zero, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestComputeDayResult_ExceedsMaxDaily(t *testing.T) {
	rec := day("2023-01-02", domain.RecordWork, period("07:00", "18:30"))

	res, err := ComputeDayResult(rec, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 690, res.TotalMinutes)
	assert.Contains(t, res.Flags, domain.FlagExceedsMaxDaily)
}

func TestComputeDayResult_InsufficientBreak(t *testing.T) {
	// 10-minute gap against a required 30-minute break.
	rec := day("2023-01-02", domain.RecordWork,
		period("09:00", "13:00"), period("13:10", "17:00"))

	res, err := ComputeDayResult(rec, DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, res.Flags, domain.FlagInsufficientBreak)
	// The 10 minutes already taken count; only the 20-minute shortfall is
	// deducted from the 470-minute total.
	assert.Equal(t, 450, res.NetMinutes)

	// A single block gives no gap to judge; no flag even though the tier
	// applies.
	single := day("2023-01-02", domain.RecordWork, period("09:00", "17:00"))
	res, err = ComputeDayResult(single, DefaultConfig())
	require.NoError(t, err)
	assert.NotContains(t, res.Flags, domain.FlagInsufficientBreak)
}

func TestComputeDayResult_SumsPeriodsOnNonWorkTypes(t *testing.T) {
	rec := day("2023-01-02", domain.RecordVacation, period("09:00", "11:00"))

	res, err := ComputeDayResult(rec, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 120, res.TotalMinutes)
}

func TestComputePeriodSummary_Empty(t *testing.T) {
	sum, days, err := ComputePeriodSummary(nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, days)
	assert.Equal(t, PeriodSummary{}, sum)
}

func TestComputePeriodSummary_Fold(t *testing.T) {
	records := []domain.TimeRecord{
		day("2023-01-02", domain.RecordWork, period("08:00", "18:00")), // 600 total, 45 break
		day("2023-01-03", domain.RecordWork, period("09:00", "17:00")), // 480 total, 30 break
		day("2023-01-04", domain.RecordVacation),
		day("2023-01-05", domain.RecordSick),
		day("2023-01-06", domain.RecordHoliday),
	}

	sum, days, err := ComputePeriodSummary(records, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, days, 5)

	assert.Equal(t, 2, sum.WorkDays)
	assert.Equal(t, 555+450, sum.TotalNetMinutes)
	assert.Equal(t, 960, sum.ExpectedMinutes)
	assert.Equal(t, 45, sum.OvertimeMinutes)
	assert.Equal(t, 1, sum.VacationDays)
	assert.Equal(t, 1, sum.SickDays)
	assert.Equal(t, 1, sum.HolidayDays)
	assert.Equal(t, 0, sum.ComplianceViolationDays)
}

func TestComputePeriodSummary_OvertimeClampedAtZero(t *testing.T) {
	records := []domain.TimeRecord{
		day("2023-01-02", domain.RecordWork, period("09:00", "12:00")),
	}

	sum, _, err := ComputePeriodSummary(records, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 180, sum.TotalNetMinutes)
	assert.Equal(t, 480, sum.ExpectedMinutes)
	// Worked less than expected: no negative overtime reported.
	assert.Equal(t, 0, sum.OvertimeMinutes)
}

func TestComputePeriodSummary_CountsViolationDays(t *testing.T) {
	records := []domain.TimeRecord{
		day("2023-01-02", domain.RecordWork, period("07:00", "19:00")),
		day("2023-01-03", domain.RecordWork, period("09:00", "17:00")),
	}

	sum, _, err := ComputePeriodSummary(records, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.ComplianceViolationDays)
}

func TestComputePeriodSummary_PropagatesInvalidPeriod(t *testing.T) {
	records := []domain.TimeRecord{
		day("2023-01-02", domain.RecordWork, period("17:00", "09:00")),
	}

	_, _, err := ComputePeriodSummary(records, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
