package analytics

import (
	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

// Totals is the sum of the daily operational fields over a date range.
type Totals struct {
	Revenue  float64 `json:"revenue"`
	Patients int     `json:"patients"`
	Docs     int     `json:"docs"`
	Tomos    int     `json:"tomos"`
}

// AverageTicket is revenue per patient, zero when no patients were seen.
func (t Totals) AverageTicket() float64 {
	if t.Patients == 0 {
		return 0
	}
	return t.Revenue / float64(t.Patients)
}

// AggregateTotals sums every daily entry whose date falls inside the
// inclusive range. An empty snapshot or a range with no entries yields the
// zero value, never an error; absent fields already count as zero in the
// record itself.
func AggregateTotals(daily domain.DailySnapshot, period domain.DateRange) Totals {
	var totals Totals
	for key, rec := range daily {
		if !period.Contains(key.Date()) {
			continue
		}
		totals.Revenue += rec.Revenue
		totals.Patients += rec.Patients
		totals.Docs += rec.Docs
		totals.Tomos += rec.Tomos
	}
	return totals
}

// MonthTotals sums one calendar month of daily entries.
func MonthTotals(daily domain.DailySnapshot, month domain.MonthKey) Totals {
	var totals Totals
	for key, rec := range daily {
		if key.Year != month.Year || key.Month != month.Month {
			continue
		}
		totals.Revenue += rec.Revenue
		totals.Patients += rec.Patients
		totals.Docs += rec.Docs
		totals.Tomos += rec.Tomos
	}
	return totals
}
