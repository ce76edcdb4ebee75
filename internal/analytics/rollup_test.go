package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

func TestRevenueRollupLevelsAgree(t *testing.T) {
	daily := make(domain.DailySnapshot)
	// 100 per month in 2025
	for m := 1; m <= 12; m++ {
		daily[day(2025, m, 10)] = domain.DailyRecord{Revenue: 100}
	}
	daily[day(2024, 6, 10)] = domain.DailyRecord{Revenue: 555}

	rollup := RevenueRollup(daily, 2025)
	for m := 0; m < 12; m++ {
		assert.InDelta(t, 100, rollup.Monthly[m], 1e-9)
	}
	for q := 0; q < 4; q++ {
		assert.InDelta(t, 300, rollup.Quarterly[q], 1e-9)
	}
	assert.InDelta(t, 600, rollup.Semesterly[0], 1e-9)
	assert.InDelta(t, 600, rollup.Semesterly[1], 1e-9)
	assert.InDelta(t, 1200, rollup.Annual, 1e-9)
}

func TestBuildComparisonGridShape(t *testing.T) {
	daily := domain.DailySnapshot{
		day(2024, 1, 5): {Revenue: 100},
		day(2025, 1, 5): {Revenue: 150},
	}

	rows := BuildComparisonGrid(daily, 2024, 2025)
	require.Len(t, rows, 12)

	for i, row := range rows {
		assert.Equal(t, i, row.MonthIndex)
		assert.Equal(t, MonthNames[i], row.MonthName)

		if i%3 == 0 {
			require.NotNil(t, row.QuarterlyChange, "quarter anchor at row %d", i)
			assert.Equal(t, 3, row.QuarterlyChange.Span)
		} else {
			assert.Nil(t, row.QuarterlyChange, "row %d", i)
		}
		if i%6 == 0 {
			require.NotNil(t, row.SemesterlyChange)
			assert.Equal(t, 6, row.SemesterlyChange.Span)
		} else {
			assert.Nil(t, row.SemesterlyChange)
		}
		if i == 0 {
			require.NotNil(t, row.AnnualChange)
			assert.Equal(t, 12, row.AnnualChange.Span)
		} else {
			assert.Nil(t, row.AnnualChange)
		}
	}
}

func TestBuildComparisonGridValues(t *testing.T) {
	daily := domain.DailySnapshot{
		day(2024, 1, 5): {Revenue: 100},
		day(2025, 1, 5): {Revenue: 150},
		day(2025, 2, 5): {Revenue: 80},
	}

	rows := BuildComparisonGrid(daily, 2024, 2025)

	jan := rows[0]
	assert.InDelta(t, 100, jan.YearARevenue, 1e-9)
	assert.InDelta(t, 150, jan.YearBRevenue, 1e-9)
	require.True(t, jan.MonthlyChange.Finite())
	assert.InDelta(t, 0.5, jan.MonthlyChange.Ratio, 1e-9)

	// february: 80 against a zero month of 2024
	feb := rows[1]
	assert.Equal(t, GrowthUnbounded, feb.MonthlyChange.State)

	// march: zero against zero
	mar := rows[2]
	require.True(t, mar.MonthlyChange.Finite())
	assert.Equal(t, 0.0, mar.MonthlyChange.Ratio)

	// annual: 230 vs 100
	require.True(t, jan.AnnualChange.Finite())
	assert.InDelta(t, 1.3, jan.AnnualChange.Ratio, 1e-9)
}

func TestBuildComparisonGridEmptyYears(t *testing.T) {
	rows := BuildComparisonGrid(domain.DailySnapshot{}, 2024, 2025)
	require.Len(t, rows, 12)
	for _, row := range rows {
		assert.Equal(t, 0.0, row.YearARevenue)
		assert.Equal(t, 0.0, row.YearBRevenue)
		assert.True(t, row.MonthlyChange.Finite())
		assert.Equal(t, 0.0, row.MonthlyChange.Ratio)
	}
}
