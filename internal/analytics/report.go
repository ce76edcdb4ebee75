package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

// The facade below is what the api layer calls. Every builder is a pure
// function of a snapshot, the user-chosen parameters and an explicit "now";
// nothing here reads the wall clock.

// StatComparison is one headline card: a current figure against the same
// figure one year earlier.
type StatComparison struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	Difference    float64 `json:"difference"`
	PercentChange Growth  `json:"percentChange"`
}

func newStatComparison(current, previous float64) StatComparison {
	return StatComparison{
		Current:       current,
		Previous:      previous,
		Difference:    current - previous,
		PercentChange: NewGrowth(current, previous),
	}
}

// MonthOverlay is one month of the current-vs-previous-year chart.
type MonthOverlay struct {
	MonthIndex       int     `json:"monthIndex"`
	RevenueCurrent   float64 `json:"revenueCurrent"`
	RevenuePrevious  float64 `json:"revenuePrevious"`
	PatientsCurrent  int     `json:"patientsCurrent"`
	PatientsPrevious int     `json:"patientsPrevious"`
}

type DashboardReport struct {
	MonthRevenue  StatComparison `json:"monthRevenue"`
	MonthPatients StatComparison `json:"monthPatients"`
	TicketYTD     StatComparison `json:"ticketYtd"`
	MonthlyChart  []MonthOverlay `json:"monthlyChart"`
}

// BuildDashboard computes the headline cards: current month-to-date against
// the same stretch of last year, and year-to-date average ticket likewise.
func BuildDashboard(daily domain.DailySnapshot, now time.Time) DashboardReport {
	today := domain.DateOf(now)
	monthToDate := domain.DateRange{Start: domain.Date{Year: today.Year, Month: today.Month, Day: 1}, End: today}
	current := AggregateTotals(daily, monthToDate)
	previous := AggregateTotals(daily, monthToDate.ShiftYears(-1))

	ytd := domain.DateRange{Start: domain.Date{Year: today.Year, Month: 1, Day: 1}, End: today}
	currentYTD := AggregateTotals(daily, ytd)
	previousYTD := AggregateTotals(daily, ytd.ShiftYears(-1))

	chart := make([]MonthOverlay, 12)
	for i := 0; i < 12; i++ {
		cur := MonthTotals(daily, domain.MonthKey{Year: today.Year, Month: i + 1})
		prev := MonthTotals(daily, domain.MonthKey{Year: today.Year - 1, Month: i + 1})
		chart[i] = MonthOverlay{
			MonthIndex:       i,
			RevenueCurrent:   cur.Revenue,
			RevenuePrevious:  prev.Revenue,
			PatientsCurrent:  cur.Patients,
			PatientsPrevious: prev.Patients,
		}
	}

	return DashboardReport{
		MonthRevenue:  newStatComparison(current.Revenue, previous.Revenue),
		MonthPatients: newStatComparison(float64(current.Patients), float64(previous.Patients)),
		TicketYTD:     newStatComparison(currentYTD.AverageTicket(), previousYTD.AverageTicket()),
		MonthlyChart:  chart,
	}
}

type PeriodComparisonReport struct {
	Period         domain.DateRange `json:"period"`
	PreviousPeriod domain.DateRange `json:"previousPeriod"`
	Current        Totals           `json:"current"`
	Previous       Totals           `json:"previous"`
	Revenue        StatComparison   `json:"revenue"`
	Patients       StatComparison   `json:"patients"`
}

// ComparePeriodYearOverYear pits an arbitrary range against the same range
// shifted one calendar year back.
func ComparePeriodYearOverYear(daily domain.DailySnapshot, period domain.DateRange) PeriodComparisonReport {
	previous := period.ShiftYears(-1)
	cur := AggregateTotals(daily, period)
	prev := AggregateTotals(daily, previous)
	return PeriodComparisonReport{
		Period:         period,
		PreviousPeriod: previous,
		Current:        cur,
		Previous:       prev,
		Revenue:        newStatComparison(cur.Revenue, prev.Revenue),
		Patients:       newStatComparison(float64(cur.Patients), float64(prev.Patients)),
	}
}

// DeclineRow joins a declining partner with the user's recorded reason for
// that analysis period.
type DeclineRow struct {
	PartnerComparison
	ReasonKey string               `json:"reasonKey"`
	Reason    domain.DeclineReason `json:"reason"`
}

type PartnerReport struct {
	Period1    domain.DateRange    `json:"period1"`
	Period2    domain.DateRange    `json:"period2"`
	Ranking    []PartnerTotal      `json:"ranking"`
	Comparison []PartnerComparison `json:"comparison"`
	Growth     []PartnerComparison `json:"growth"`
	Decline    []DeclineRow        `json:"decline"`
}

// BuildPartnerReport runs the whole partner pipeline over two independently
// chosen ranges: period-1 ranking, the two-period comparison, and the
// growth/decline rankings. Decline rows carry the composite key under which
// a decline reason is (or can be) filed.
func BuildPartnerReport(records domain.PartnerSnapshot, reasons domain.DeclineReasons, period1, period2 domain.DateRange) PartnerReport {
	p1 := AggregateByPeriod(records, period1)
	p2 := AggregateByPeriod(records, period2)
	comparison := CompareTwoPeriods(p1, p2)

	decline := make([]DeclineRow, 0)
	for _, row := range RankDecline(comparison) {
		key := domain.DeclineReasonKey(period1.End, row.DentistName)
		decline = append(decline, DeclineRow{
			PartnerComparison: row,
			ReasonKey:         key,
			Reason:            reasons[key],
		})
	}

	return PartnerReport{
		Period1:    period1,
		Period2:    period2,
		Ranking:    p1,
		Comparison: comparison,
		Growth:     RankGrowth(comparison),
		Decline:    decline,
	}
}

type DentistReport struct {
	DentistName    string      `json:"dentistName"`
	Period1Monthly [12]float64 `json:"period1Monthly"`
	Period2Monthly [12]float64 `json:"period2Monthly"`
	Annual         []YearTotal `json:"annual"`
}

// BuildDentistReport is the single-partner view: the two periods' monthly
// series overlaid on one 12-month axis, plus the all-time annual evolution.
func BuildDentistReport(records domain.PartnerSnapshot, dentistName string, period1, period2 domain.DateRange) DentistReport {
	return DentistReport{
		DentistName:    dentistName,
		Period1Monthly: MonthlyTimeSeries(records, dentistName, period1),
		Period2Monthly: MonthlyTimeSeries(records, dentistName, period2),
		Annual:         AnnualTimeSeries(records, dentistName),
	}
}

type SummaryReport struct {
	Years        []int                   `json:"years"`
	Operational  map[int]OperationalYear `json:"operational"`
	Reconciled   map[int]ReconciledYear  `json:"reconciled"`
	Prospections map[int]ProspectionYear `json:"prospections"`
	Annual       []AnnualResults         `json:"annual"`
}

// BuildSummaryReport is the year-by-year management overview across every
// store family.
func BuildSummaryReport(snap *domain.Snapshot) SummaryReport {
	operational := OperationalSummary(snap.Daily)
	reconciled := ReconciledSummary(snap.MonthlyFinancials)
	prospections := ProspectionSummary(snap.Prospections)

	seen := make(map[int]struct{})
	for y := range operational {
		seen[y] = struct{}{}
	}
	for y := range reconciled {
		seen[y] = struct{}{}
	}
	for y := range prospections {
		seen[y] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)

	return SummaryReport{
		Years:        years,
		Operational:  operational,
		Reconciled:   reconciled,
		Prospections: prospections,
		Annual:       AnnualResultsByYear(snap.AnnualFinancials, snap.Daily),
	}
}

type FinancialPanel struct {
	Years            []int                             `json:"years"`
	KPIs             []FinancialKPIs                   `json:"kpis"`
	SelectedYear     int                               `json:"selectedYear"`
	ExpenseBreakdown []ExpenseSlice                    `json:"expenseBreakdown"`
	MonthlyRows      [12]domain.MonthlyFinancialRecord `json:"monthlyRows"`
}

// BuildFinancialPanel assembles the financial dashboard for one selected
// year; selectedYear 0 means the most recent year with data.
func BuildFinancialPanel(monthly domain.MonthlyFinancialSnapshot, annual domain.AnnualFinancialSnapshot, selectedYear int) FinancialPanel {
	seen := make(map[int]struct{})
	for key := range monthly {
		seen[key.Year] = struct{}{}
	}
	for y := range annual {
		seen[y] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	if selectedYear == 0 && len(years) > 0 {
		selectedYear = years[0]
	}

	panel := FinancialPanel{
		Years:        years,
		KPIs:         KPIsByYear(monthly, annual),
		SelectedYear: selectedYear,
	}
	panel.ExpenseBreakdown = ExpenseBreakdown(annual[selectedYear])
	for key, rec := range monthly {
		if key.Year == selectedYear && key.Month >= 1 && key.Month <= 12 {
			panel.MonthlyRows[key.Month-1] = rec
		}
	}
	return panel
}

// PeriodPair is the analysis/comparison range pair the partner views start
// from.
type PeriodPair struct {
	Analysis   domain.DateRange `json:"analysis"`
	Comparison domain.DateRange `json:"comparison"`
}

// DefaultPeriods is month-to-date against the full previous month.
func DefaultPeriods(now time.Time) PeriodPair {
	today := domain.DateOf(now)
	lastOfPrev := domain.DateOf(time.Date(today.Year, time.Month(today.Month), 0, 0, 0, 0, 0, time.UTC))
	return PeriodPair{
		Analysis: domain.DateRange{
			Start: domain.Date{Year: today.Year, Month: today.Month, Day: 1},
			End:   today,
		},
		Comparison: domain.DateRange{
			Start: domain.Date{Year: lastOfPrev.Year, Month: lastOfPrev.Month, Day: 1},
			End:   lastOfPrev,
		},
	}
}

// CurrentYearPeriods is year-to-date against the same stretch of last year.
func CurrentYearPeriods(now time.Time) PeriodPair {
	today := domain.DateOf(now)
	return PeriodPair{
		Analysis: domain.DateRange{
			Start: domain.Date{Year: today.Year, Month: 1, Day: 1},
			End:   today,
		},
		Comparison: domain.DateRange{
			Start: domain.Date{Year: today.Year - 1, Month: 1, Day: 1},
			End:   today.AddYears(-1),
		},
	}
}

// LastYearPeriods is the full previous year against the year before it.
func LastYearPeriods(now time.Time) PeriodPair {
	year := now.Year() - 1
	return PeriodPair{
		Analysis: domain.DateRange{
			Start: domain.Date{Year: year, Month: 1, Day: 1},
			End:   domain.Date{Year: year, Month: 12, Day: 31},
		},
		Comparison: domain.DateRange{
			Start: domain.Date{Year: year - 1, Month: 1, Day: 1},
			End:   domain.Date{Year: year - 1, Month: 12, Day: 31},
		},
	}
}

// ReminderDay is the day of the month the closing-entry reminder fires.
const ReminderDay = 5

// MonthIdentifier is the "YYYY-MM" memo the reminder dedupes on.
func MonthIdentifier(now time.Time) string {
	return fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month()))
}

// MonthlyReminderDue decides whether the monthly-entry reminder should show:
// it fires on day 5 at most once per month. Persisting the memo stays with
// the caller.
func MonthlyReminderDue(now time.Time, lastNotified string) bool {
	return now.Day() == ReminderDay && lastNotified != MonthIdentifier(now)
}
