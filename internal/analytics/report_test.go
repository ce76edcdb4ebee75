package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

func TestBuildDashboard(t *testing.T) {
	daily := domain.DailySnapshot{
		day(2025, 8, 1):  {Patients: 10, Revenue: 1000},
		day(2025, 8, 15): {Patients: 10, Revenue: 1000},
		day(2025, 8, 20): {Patients: 99, Revenue: 9999}, // after "now", still August
		day(2024, 8, 10): {Patients: 10, Revenue: 500},
		day(2025, 2, 1):  {Patients: 10, Revenue: 2000},
		day(2024, 2, 1):  {Patients: 10, Revenue: 1000},
	}
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	report := BuildDashboard(daily, now)

	// month-to-date cuts off at today
	assert.InDelta(t, 2000, report.MonthRevenue.Current, 1e-9)
	assert.InDelta(t, 500, report.MonthRevenue.Previous, 1e-9)
	assert.InDelta(t, 1500, report.MonthRevenue.Difference, 1e-9)
	require.True(t, report.MonthRevenue.PercentChange.Finite())
	assert.InDelta(t, 3, report.MonthRevenue.PercentChange.Ratio, 1e-9)

	assert.InDelta(t, 20, report.MonthPatients.Current, 1e-9)

	// ticket: (2000+2000)/30 vs (1000+500)/20
	assert.InDelta(t, 4000.0/30, report.TicketYTD.Current, 1e-9)
	assert.InDelta(t, 75, report.TicketYTD.Previous, 1e-9)

	// the chart covers full calendar months regardless of today
	require.Len(t, report.MonthlyChart, 12)
	aug := report.MonthlyChart[7]
	assert.InDelta(t, 11999, aug.RevenueCurrent, 1e-9)
	assert.InDelta(t, 500, aug.RevenuePrevious, 1e-9)
}

func TestComparePeriodYearOverYear(t *testing.T) {
	daily := domain.DailySnapshot{
		day(2025, 5, 10): {Patients: 5, Revenue: 500},
		day(2024, 5, 10): {Patients: 10, Revenue: 1000},
	}

	report := ComparePeriodYearOverYear(daily, mustRange(t, "2025-05-01", "2025-05-31"))
	assert.Equal(t, mustRange(t, "2024-05-01", "2024-05-31"), report.PreviousPeriod)
	assert.InDelta(t, -500, report.Revenue.Difference, 1e-9)
	require.True(t, report.Revenue.PercentChange.Finite())
	assert.InDelta(t, -0.5, report.Revenue.PercentChange.Ratio, 1e-9)
}

func TestBuildPartnerReportDeclineReasons(t *testing.T) {
	records := domain.PartnerSnapshot{
		month(2025, 1): {{DentistName: "Dr. Caiu", ExamValue: 50}},
		month(2024, 12): {
			{DentistName: "Dr. Caiu", ExamValue: 100},
			{DentistName: "Dr. Subiu", ExamValue: 10},
		},
	}
	period1 := mustRange(t, "2025-01-01", "2025-01-31")
	period2 := mustRange(t, "2024-12-01", "2024-12-31")

	key := domain.DeclineReasonKey(period1.End, "Dr. Caiu")
	reasons := domain.DeclineReasons{key: domain.DeclineCompetition}

	report := BuildPartnerReport(records, reasons, period1, period2)

	require.Len(t, report.Decline, 2)
	assert.Equal(t, "Dr. Caiu", report.Decline[0].DentistName)
	assert.Equal(t, key, report.Decline[0].ReasonKey)
	assert.Equal(t, domain.DeclineCompetition, report.Decline[0].Reason)

	// Dr. Subiu went 0 <- 10, a decline with no recorded reason
	assert.Equal(t, "Dr. Subiu", report.Decline[1].DentistName)
	assert.Equal(t, domain.DeclineNone, report.Decline[1].Reason)

	assert.Empty(t, report.Growth)
	require.Len(t, report.Ranking, 1)
	assert.Equal(t, "Dr. Caiu", report.Ranking[0].DentistName)
}

func TestBuildFinancialPanelDefaultsToLatestYear(t *testing.T) {
	monthly := domain.MonthlyFinancialSnapshot{
		{Year: 2024, Month: 1}: {MonthlyRevenue: 100},
		{Year: 2025, Month: 2}: {MonthlyRevenue: 300},
	}
	annual := domain.AnnualFinancialSnapshot{2023: {RH: 10}}

	panel := BuildFinancialPanel(monthly, annual, 0)
	assert.Equal(t, []int{2025, 2024, 2023}, panel.Years)
	assert.Equal(t, 2025, panel.SelectedYear)
	assert.InDelta(t, 300, panel.MonthlyRows[1].MonthlyRevenue, 1e-9)
	assert.Empty(t, panel.ExpenseBreakdown)

	panel = BuildFinancialPanel(monthly, annual, 2023)
	assert.Equal(t, 2023, panel.SelectedYear)
	require.Len(t, panel.ExpenseBreakdown, 1)
	assert.Equal(t, "RH", panel.ExpenseBreakdown[0].Name)
}

func TestDefaultPeriods(t *testing.T) {
	now := time.Date(2025, 3, 18, 9, 0, 0, 0, time.UTC)
	pair := DefaultPeriods(now)

	assert.Equal(t, domain.Date{Year: 2025, Month: 3, Day: 1}, pair.Analysis.Start)
	assert.Equal(t, domain.Date{Year: 2025, Month: 3, Day: 18}, pair.Analysis.End)
	assert.Equal(t, domain.Date{Year: 2025, Month: 2, Day: 1}, pair.Comparison.Start)
	assert.Equal(t, domain.Date{Year: 2025, Month: 2, Day: 28}, pair.Comparison.End)
}

func TestCurrentYearPeriods(t *testing.T) {
	now := time.Date(2025, 3, 18, 9, 0, 0, 0, time.UTC)
	pair := CurrentYearPeriods(now)

	assert.Equal(t, domain.Date{Year: 2025, Month: 1, Day: 1}, pair.Analysis.Start)
	assert.Equal(t, domain.Date{Year: 2025, Month: 3, Day: 18}, pair.Analysis.End)
	assert.Equal(t, domain.Date{Year: 2024, Month: 3, Day: 18}, pair.Comparison.End)
}

func TestMonthlyReminder(t *testing.T) {
	day5 := time.Date(2025, 9, 5, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-09", MonthIdentifier(day5))

	assert.True(t, MonthlyReminderDue(day5, ""))
	assert.True(t, MonthlyReminderDue(day5, "2025-08"))
	// already acknowledged this month
	assert.False(t, MonthlyReminderDue(day5, "2025-09"))
	// wrong day
	assert.False(t, MonthlyReminderDue(time.Date(2025, 9, 6, 8, 0, 0, 0, time.UTC), ""))
}

func TestBuildSummaryReportYears(t *testing.T) {
	snap := &domain.Snapshot{
		Daily: domain.DailySnapshot{
			day(2024, 1, 1): {Patients: 1, Revenue: 100},
		},
		MonthlyFinancials: domain.MonthlyFinancialSnapshot{
			{Year: 2025, Month: 1}: {MonthlyRevenue: 100},
		},
		Prospections: []domain.Prospection{
			{ID: 1, DentistName: "A", MeetingDate: domain.Date{Year: 2023, Month: 6, Day: 1}},
		},
	}

	report := BuildSummaryReport(snap)
	assert.Equal(t, []int{2023, 2024, 2025}, report.Years)
}
