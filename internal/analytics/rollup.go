package analytics

import (
	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

// MonthNames are the row labels of the comparison grid, as the table renders
// them.
var MonthNames = [12]string{
	"JANEIRO", "FEVEREIRO", "MARÇO", "ABRIL", "MAIO", "JUNHO",
	"JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO", "NOVEMBRO", "DEZEMBRO",
}

// YearTotals is one calendar year of revenue rolled up through every
// granularity: 12 months, 4 quarters, 2 semesters, 1 annual sum. Absent
// months contribute zero.
type YearTotals struct {
	Monthly    [12]float64
	Quarterly  [4]float64
	Semesterly [2]float64
	Annual     float64
}

// RevenueRollup folds the daily store into the per-granularity sums for one
// year. Each level is the exact sum of the level below it.
func RevenueRollup(daily domain.DailySnapshot, year int) YearTotals {
	var t YearTotals
	for key, rec := range daily {
		if key.Year != year || key.Month < 1 || key.Month > 12 {
			continue
		}
		t.Monthly[key.Month-1] += rec.Revenue
	}
	for q := 0; q < 4; q++ {
		for m := q * 3; m < q*3+3; m++ {
			t.Quarterly[q] += t.Monthly[m]
		}
	}
	t.Semesterly[0] = t.Quarterly[0] + t.Quarterly[1]
	t.Semesterly[1] = t.Quarterly[2] + t.Quarterly[3]
	t.Annual = t.Semesterly[0] + t.Semesterly[1]
	return t
}

// SpannedGrowth is a change value anchored to one grid row that a table
// renderer merges over Span rows (3 for a quarter, 6 for a semester, 12 for
// the year). It appears exactly once per covered block.
type SpannedGrowth struct {
	Growth
	Span int `json:"span"`
}

// MonthRow is one of the 12 fixed rows of the year-over-year comparison grid.
// MonthlyChange is always present; the coarser changes only on their anchor
// rows (quarters at 0,3,6,9; semesters at 0,6; annual at 0).
type MonthRow struct {
	MonthIndex       int            `json:"monthIndex"`
	MonthName        string         `json:"monthName"`
	YearARevenue     float64        `json:"yearARevenue"`
	YearBRevenue     float64        `json:"yearBRevenue"`
	MonthlyChange    Growth         `json:"monthlyChange"`
	QuarterlyChange  *SpannedGrowth `json:"quarterlyChange,omitempty"`
	SemesterlyChange *SpannedGrowth `json:"semesterlyChange,omitempty"`
	AnnualChange     *SpannedGrowth `json:"annualChange,omitempty"`
}

// BuildComparisonGrid compares yearB against yearA at every granularity.
// Always returns 12 rows; a year with no data contributes zeros and the
// changes follow the zero-division policy of PercentChange.
func BuildComparisonGrid(daily domain.DailySnapshot, yearA, yearB int) []MonthRow {
	a := RevenueRollup(daily, yearA)
	b := RevenueRollup(daily, yearB)

	rows := make([]MonthRow, 12)
	for i := 0; i < 12; i++ {
		row := MonthRow{
			MonthIndex:    i,
			MonthName:     MonthNames[i],
			YearARevenue:  a.Monthly[i],
			YearBRevenue:  b.Monthly[i],
			MonthlyChange: NewGrowth(b.Monthly[i], a.Monthly[i]),
		}
		if i%3 == 0 {
			q := i / 3
			row.QuarterlyChange = &SpannedGrowth{
				Growth: NewGrowth(b.Quarterly[q], a.Quarterly[q]),
				Span:   3,
			}
		}
		if i%6 == 0 {
			s := i / 6
			row.SemesterlyChange = &SpannedGrowth{
				Growth: NewGrowth(b.Semesterly[s], a.Semesterly[s]),
				Span:   6,
			}
		}
		if i == 0 {
			row.AnnualChange = &SpannedGrowth{
				Growth: NewGrowth(b.Annual, a.Annual),
				Span:   12,
			}
		}
		rows[i] = row
	}
	return rows
}
