package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

func day(y, m, d int) domain.DayKey {
	return domain.DayKey{Year: y, Month: m, Day: d}
}

func TestAggregateTotalsInclusiveBounds(t *testing.T) {
	daily := domain.DailySnapshot{
		day(2025, 1, 1):  {Patients: 10, Revenue: 1000, Docs: 2, Tomos: 1},
		day(2025, 1, 31): {Patients: 5, Revenue: 500},
		day(2025, 2, 1):  {Patients: 99, Revenue: 9900},
		day(2024, 12, 31): {Patients: 7, Revenue: 700},
	}
	period, err := domain.ParseDateRange("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	totals := AggregateTotals(daily, period)
	assert.Equal(t, 15, totals.Patients)
	assert.InDelta(t, 1500, totals.Revenue, 1e-9)
	assert.Equal(t, 2, totals.Docs)
	assert.Equal(t, 1, totals.Tomos)
}

func TestAggregateTotalsEmpty(t *testing.T) {
	period, err := domain.ParseDateRange("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	totals := AggregateTotals(domain.DailySnapshot{}, period)
	assert.Equal(t, Totals{}, totals)
	assert.Equal(t, 0.0, totals.AverageTicket())
}

func TestAggregateTotalsAcrossYears(t *testing.T) {
	daily := domain.DailySnapshot{
		day(2024, 1, 5):  {Revenue: 1000, Patients: 10},
		day(2024, 1, 20): {Revenue: 2000, Patients: 5},
		day(2023, 1, 10): {Revenue: 1500, Patients: 8},
	}

	totals := AggregateTotals(daily, mustRange(t, "2024-01-01", "2024-01-31"))
	assert.InDelta(t, 3000, totals.Revenue, 1e-9)
	assert.Equal(t, 15, totals.Patients)

	previous := AggregateTotals(daily, mustRange(t, "2023-01-01", "2023-01-31"))
	assert.InDelta(t, 1, PercentChange(totals.Revenue, previous.Revenue), 1e-9)
}

func TestAverageTicket(t *testing.T) {
	assert.InDelta(t, 125, Totals{Revenue: 500, Patients: 4}.AverageTicket(), 1e-9)
	assert.Equal(t, 0.0, Totals{Revenue: 500}.AverageTicket())
}

func TestMonthTotals(t *testing.T) {
	daily := domain.DailySnapshot{
		day(2025, 3, 1):  {Patients: 3, Revenue: 300},
		day(2025, 3, 31): {Patients: 4, Revenue: 400},
		day(2025, 4, 1):  {Patients: 100, Revenue: 10000},
		day(2024, 3, 15): {Patients: 50, Revenue: 5000},
	}

	totals := MonthTotals(daily, domain.MonthKey{Year: 2025, Month: 3})
	assert.Equal(t, 7, totals.Patients)
	assert.InDelta(t, 700, totals.Revenue, 1e-9)
}
