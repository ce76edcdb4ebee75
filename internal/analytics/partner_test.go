package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

func month(y, m int) domain.MonthKey {
	return domain.MonthKey{Year: y, Month: m}
}

func mustRange(t *testing.T, start, end string) domain.DateRange {
	t.Helper()
	r, err := domain.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestAggregateByPeriodPoolsOverlappingMonths(t *testing.T) {
	records := domain.PartnerSnapshot{
		month(2025, 1): {
			{DentistName: "Dr. Silva", ExamValue: 100},
			{DentistName: "Dra. Souza", ExamValue: 300},
		},
		month(2025, 2): {
			{DentistName: "Dr. Silva", ExamValue: 50},
		},
		month(2025, 4): {
			{DentistName: "Dr. Silva", ExamValue: 999},
		},
	}

	// range ends mid-february: february still counts, month-level overlap
	totals := AggregateByPeriod(records, mustRange(t, "2025-01-01", "2025-02-10"))
	require.Len(t, totals, 2)
	assert.Equal(t, PartnerTotal{DentistName: "Dra. Souza", TotalValue: 300}, totals[0])
	assert.Equal(t, PartnerTotal{DentistName: "Dr. Silva", TotalValue: 150}, totals[1])
}

func TestAggregateByPeriodOverlapBoundaries(t *testing.T) {
	records := domain.PartnerSnapshot{
		month(2024, 3): {{DentistName: "Dr. Silva", ExamValue: 100}},
	}

	// last day of march overlaps
	totals := AggregateByPeriod(records, mustRange(t, "2024-03-31", "2024-04-15"))
	require.Len(t, totals, 1)

	// starting in april does not
	totals = AggregateByPeriod(records, mustRange(t, "2024-04-01", "2024-04-15"))
	assert.Empty(t, totals)
}

func TestAggregateByPeriodTwoMonthPool(t *testing.T) {
	records := domain.PartnerSnapshot{
		month(2024, 1): {{DentistName: "Dra. A", ExamValue: 500}},
		month(2024, 2): {
			{DentistName: "Dra. A", ExamValue: 700},
			{DentistName: "Dra. B", ExamValue: 300},
		},
	}

	totals := AggregateByPeriod(records, mustRange(t, "2024-01-01", "2024-02-29"))
	require.Len(t, totals, 2)
	assert.Equal(t, PartnerTotal{DentistName: "Dra. A", TotalValue: 1200}, totals[0])
	assert.Equal(t, PartnerTotal{DentistName: "Dra. B", TotalValue: 300}, totals[1])
}

func TestAggregateByPeriodTieBreaksByName(t *testing.T) {
	records := domain.PartnerSnapshot{
		month(2025, 1): {
			{DentistName: "B", ExamValue: 100},
			{DentistName: "A", ExamValue: 100},
		},
	}

	totals := AggregateByPeriod(records, mustRange(t, "2025-01-01", "2025-01-31"))
	require.Len(t, totals, 2)
	assert.Equal(t, "A", totals[0].DentistName)
	assert.Equal(t, "B", totals[1].DentistName)
}

func TestCompareTwoPeriodsUnion(t *testing.T) {
	p1 := []PartnerTotal{
		{DentistName: "Dr. Silva", TotalValue: 150},
		{DentistName: "Dr. Novo", TotalValue: 80},
	}
	p2 := []PartnerTotal{
		{DentistName: "Dr. Silva", TotalValue: 100},
		{DentistName: "Dra. Sumida", TotalValue: 40},
	}

	rows := CompareTwoPeriods(p1, p2)
	require.Len(t, rows, 3)

	// sorted by ValueP1 descending
	assert.Equal(t, "Dr. Silva", rows[0].DentistName)
	assert.InDelta(t, 50, rows[0].Change, 1e-9)
	require.True(t, rows[0].PercentChange.Finite())
	assert.InDelta(t, 0.5, rows[0].PercentChange.Ratio, 1e-9)

	assert.Equal(t, "Dr. Novo", rows[1].DentistName)
	assert.Equal(t, 0.0, rows[1].ValueP2)
	assert.Equal(t, GrowthUnbounded, rows[1].PercentChange.State)

	assert.Equal(t, "Dra. Sumida", rows[2].DentistName)
	assert.Equal(t, 0.0, rows[2].ValueP1)
	assert.InDelta(t, -40, rows[2].Change, 1e-9)
}

func TestRankings(t *testing.T) {
	comparison := []PartnerComparison{
		{DentistName: "Up Small", Change: 10},
		{DentistName: "Up Big", Change: 100},
		{DentistName: "Flat", Change: 0},
		{DentistName: "Down Small", Change: -5},
		{DentistName: "Down Big", Change: -50},
	}

	growth := RankGrowth(comparison)
	require.Len(t, growth, 2)
	assert.Equal(t, "Up Big", growth[0].DentistName)
	assert.Equal(t, "Up Small", growth[1].DentistName)

	decline := RankDecline(comparison)
	require.Len(t, decline, 2)
	assert.Equal(t, "Down Big", decline[0].DentistName)
	assert.Equal(t, "Down Small", decline[1].DentistName)
}

func TestMonthlyTimeSeriesMidMonthRule(t *testing.T) {
	records := domain.PartnerSnapshot{
		month(2025, 1): {{DentistName: "Dr. Silva", ExamValue: 100}},
		month(2025, 2): {{DentistName: "Dr. Silva", ExamValue: 200}},
	}

	// range ends on feb 10: february's mid-month (day 15) falls outside,
	// so the batch is excluded even though the month overlaps the range
	series := MonthlyTimeSeries(records, "Dr. Silva", mustRange(t, "2025-01-01", "2025-02-10"))
	assert.InDelta(t, 100, series[0], 1e-9)
	assert.Equal(t, 0.0, series[1])

	// extend past the 15th and february appears
	series = MonthlyTimeSeries(records, "Dr. Silva", mustRange(t, "2025-01-01", "2025-02-20"))
	assert.InDelta(t, 200, series[1], 1e-9)
}

func TestMonthlyTimeSeriesMergesAcrossYears(t *testing.T) {
	records := domain.PartnerSnapshot{
		month(2024, 12): {{DentistName: "Dr. Silva", ExamValue: 70}},
		month(2025, 12): {{DentistName: "Dr. Silva", ExamValue: 30}},
	}

	series := MonthlyTimeSeries(records, "Dr. Silva", mustRange(t, "2024-01-01", "2025-12-31"))
	assert.InDelta(t, 100, series[11], 1e-9)
}

func TestAnnualTimeSeries(t *testing.T) {
	records := domain.PartnerSnapshot{
		month(2023, 5):  {{DentistName: "Dr. Silva", ExamValue: 10}},
		month(2025, 1):  {{DentistName: "Dr. Silva", ExamValue: 20}},
		month(2025, 2):  {{DentistName: "Dr. Silva", ExamValue: 5}},
		month(2024, 11): {{DentistName: "Outro", ExamValue: 999}},
	}

	series := AnnualTimeSeries(records, "Dr. Silva")
	require.Len(t, series, 2)
	assert.Equal(t, YearTotal{Year: 2023, Total: 10}, series[0])
	assert.Equal(t, YearTotal{Year: 2025, Total: 25}, series[1])
}

func TestUniqueDentists(t *testing.T) {
	records := domain.PartnerSnapshot{
		month(2025, 1): {{DentistName: "B"}, {DentistName: "A"}},
		month(2025, 2): {{DentistName: "A"}},
	}

	assert.Equal(t, []string{"A", "B"}, UniqueDentists(records))
}
