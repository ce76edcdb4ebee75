package analytics

import (
	"sort"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

// PartnerTotal is one referring dentist's pooled value over a period.
type PartnerTotal struct {
	DentistName string  `json:"dentistName"`
	TotalValue  float64 `json:"totalValue"`
}

// AggregateByPeriod pools every batch whose month overlaps the range and sums
// per dentist name (exact string match). The result is sorted by total
// descending, ties broken by name so rankings are deterministic.
//
// Note the month-level overlap rule differs on purpose from the day-level
// containment rule of AggregateTotals; see DESIGN.md.
func AggregateByPeriod(records domain.PartnerSnapshot, period domain.DateRange) []PartnerTotal {
	pooled := make(map[string]float64)
	for key, batch := range records {
		if !period.OverlapsMonth(key) {
			continue
		}
		for _, rec := range batch {
			pooled[rec.DentistName] += rec.ExamValue
		}
	}

	totals := make([]PartnerTotal, 0, len(pooled))
	for name, value := range pooled {
		totals = append(totals, PartnerTotal{DentistName: name, TotalValue: value})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].TotalValue != totals[j].TotalValue {
			return totals[i].TotalValue > totals[j].TotalValue
		}
		return totals[i].DentistName < totals[j].DentistName
	})
	return totals
}

// PartnerComparison is one dentist's movement between the analysis period
// (P1) and the comparison period (P2).
type PartnerComparison struct {
	DentistName   string  `json:"dentistName"`
	ValueP1       float64 `json:"valueP1"`
	ValueP2       float64 `json:"valueP2"`
	Change        float64 `json:"change"`
	PercentChange Growth  `json:"percentChange"`
}

// CompareTwoPeriods joins the two period aggregates on the union of dentist
// names, treating absence as zero, sorted by the analysis-period value
// descending.
func CompareTwoPeriods(period1, period2 []PartnerTotal) []PartnerComparison {
	p1 := make(map[string]float64, len(period1))
	for _, t := range period1 {
		p1[t.DentistName] = t.TotalValue
	}
	p2 := make(map[string]float64, len(period2))
	for _, t := range period2 {
		p2[t.DentistName] = t.TotalValue
	}

	names := make(map[string]struct{}, len(p1)+len(p2))
	for name := range p1 {
		names[name] = struct{}{}
	}
	for name := range p2 {
		names[name] = struct{}{}
	}

	rows := make([]PartnerComparison, 0, len(names))
	for name := range names {
		v1, v2 := p1[name], p2[name]
		rows = append(rows, PartnerComparison{
			DentistName:   name,
			ValueP1:       v1,
			ValueP2:       v2,
			Change:        v1 - v2,
			PercentChange: NewGrowth(v1, v2),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ValueP1 != rows[j].ValueP1 {
			return rows[i].ValueP1 > rows[j].ValueP1
		}
		return rows[i].DentistName < rows[j].DentistName
	})
	return rows
}

// RankGrowth keeps only dentists that grew, biggest absolute gain first.
// A zero change lands in neither ranking.
func RankGrowth(comparison []PartnerComparison) []PartnerComparison {
	ranked := make([]PartnerComparison, 0)
	for _, row := range comparison {
		if row.Change > 0 {
			ranked = append(ranked, row)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Change != ranked[j].Change {
			return ranked[i].Change > ranked[j].Change
		}
		return ranked[i].DentistName < ranked[j].DentistName
	})
	return ranked
}

// RankDecline keeps only dentists that fell, most severe decline first.
func RankDecline(comparison []PartnerComparison) []PartnerComparison {
	ranked := make([]PartnerComparison, 0)
	for _, row := range comparison {
		if row.Change < 0 {
			ranked = append(ranked, row)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Change != ranked[j].Change {
			return ranked[i].Change < ranked[j].Change
		}
		return ranked[i].DentistName < ranked[j].DentistName
	})
	return ranked
}

// MonthlyTimeSeries sums one dentist's values into 12 month buckets. Batches
// are located by their mid-month date, and buckets merge across years by
// month number so two periods a year apart overlay on the same axis.
func MonthlyTimeSeries(records domain.PartnerSnapshot, dentistName string, period domain.DateRange) [12]float64 {
	var buckets [12]float64
	for key, batch := range records {
		if !period.Contains(key.MidMonth()) {
			continue
		}
		for _, rec := range batch {
			if rec.DentistName == dentistName {
				buckets[key.Month-1] += rec.ExamValue
			}
		}
	}
	return buckets
}

// YearTotal is one year's pooled value for a single dentist.
type YearTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// AnnualTimeSeries pools one dentist's values per year, ascending, omitting
// years that contribute nothing.
func AnnualTimeSeries(records domain.PartnerSnapshot, dentistName string) []YearTotal {
	pooled := make(map[int]float64)
	for key, batch := range records {
		for _, rec := range batch {
			if rec.DentistName == dentistName {
				pooled[key.Year] += rec.ExamValue
			}
		}
	}

	series := make([]YearTotal, 0, len(pooled))
	for year, total := range pooled {
		if total > 0 {
			series = append(series, YearTotal{Year: year, Total: total})
		}
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series
}

// UniqueDentists lists every dentist name seen in any batch, sorted, for
// the search box suggestions.
func UniqueDentists(records domain.PartnerSnapshot) []string {
	seen := make(map[string]struct{})
	for _, batch := range records {
		for _, rec := range batch {
			seen[rec.DentistName] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
