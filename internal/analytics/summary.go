package analytics

import (
	"sort"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

// OperationalMonth is one month of summed daily entries plus the derived
// average ticket.
type OperationalMonth struct {
	Patients      int     `json:"patients"`
	Revenue       float64 `json:"revenue"`
	Docs          int     `json:"docs"`
	Tomos         int     `json:"tomos"`
	AverageTicket float64 `json:"averageTicket"`
}

type OperationalYear struct {
	Months [12]OperationalMonth `json:"months"`
	Total  OperationalMonth     `json:"total"`
}

// OperationalSummary rolls the daily store into fixed 12-month rows per year.
// Months without entries stay zero.
func OperationalSummary(daily domain.DailySnapshot) map[int]OperationalYear {
	summary := make(map[int]OperationalYear)
	for key, rec := range daily {
		if key.Month < 1 || key.Month > 12 {
			continue
		}
		year := summary[key.Year]
		m := &year.Months[key.Month-1]
		m.Patients += rec.Patients
		m.Revenue += rec.Revenue
		m.Docs += rec.Docs
		m.Tomos += rec.Tomos
		year.Total.Patients += rec.Patients
		year.Total.Revenue += rec.Revenue
		year.Total.Docs += rec.Docs
		year.Total.Tomos += rec.Tomos
		summary[key.Year] = year
	}
	for y, year := range summary {
		for i := range year.Months {
			year.Months[i].AverageTicket = averageTicket(year.Months[i].Revenue, year.Months[i].Patients)
		}
		year.Total.AverageTicket = averageTicket(year.Total.Revenue, year.Total.Patients)
		summary[y] = year
	}
	return summary
}

func averageTicket(revenue float64, patients int) float64 {
	if patients == 0 {
		return 0
	}
	return revenue / float64(patients)
}

type ReconciledYear struct {
	Months [12]domain.MonthlyFinancialRecord `json:"months"`
	Total  domain.MonthlyFinancialRecord     `json:"total"`
}

// ReconciledSummary lays the accountant-confirmed monthly records onto the
// fixed 12-month grid with a per-year total row.
func ReconciledSummary(monthly domain.MonthlyFinancialSnapshot) map[int]ReconciledYear {
	summary := make(map[int]ReconciledYear)
	for key, rec := range monthly {
		if key.Month < 1 || key.Month > 12 {
			continue
		}
		year := summary[key.Year]
		year.Months[key.Month-1] = rec
		year.Total.MonthlyRevenue += rec.MonthlyRevenue
		year.Total.MonthlyProfit += rec.MonthlyProfit
		year.Total.Dividends += rec.Dividends
		year.Total.MonthlyReserve += rec.MonthlyReserve
		summary[key.Year] = year
	}
	return summary
}

// AnnualResults is the director-level closing of one year, derived from the
// raw operational revenue and the annual expense breakdown.
type AnnualResults struct {
	Year          int     `json:"year"`
	Faturamento   float64 `json:"faturamento"`
	Despesas      float64 `json:"despesas"`
	Investimentos float64 `json:"investimentos"`
	Impostos      float64 `json:"impostos"`
	EBITDA        float64 `json:"ebitda"`
	Lucro         float64 `json:"lucro"`
	Dividendos    float64 `json:"dividendos"`
	Sobras        float64 `json:"sobras"`
	Margem        float64 `json:"margem"`
}

// AnnualResultsByYear computes the yearly closing rows, ascending by year.
// Only years with an annual breakdown entry appear.
func AnnualResultsByYear(annual domain.AnnualFinancialSnapshot, daily domain.DailySnapshot) []AnnualResults {
	operational := OperationalSummary(daily)

	years := make([]int, 0, len(annual))
	for y := range annual {
		years = append(years, y)
	}
	sort.Ints(years)

	results := make([]AnnualResults, 0, len(years))
	for _, y := range years {
		rec := annual[y]
		faturamento := operational[y].Total.Revenue
		despesas := rec.RH + rec.Maintenance + rec.Material + rec.Marketing + rec.Operational
		ebitda := faturamento - despesas
		lucro := ebitda - rec.Interest - rec.Taxes
		var margem float64
		if faturamento > 0 {
			margem = lucro / faturamento * 100
		}
		results = append(results, AnnualResults{
			Year:          y,
			Faturamento:   faturamento,
			Despesas:      despesas,
			Investimentos: rec.Equipment,
			Impostos:      rec.Taxes,
			EBITDA:        ebitda,
			Lucro:         lucro,
			Dividendos:    rec.DividendsReal,
			Sobras:        lucro - rec.DividendsReal,
			Margem:        margem,
		})
	}
	return results
}

// FinancialKPIs is the per-year indicator set of the financial panel, built
// from the reconciled monthly figures and the annual expense breakdown.
type FinancialKPIs struct {
	Year         int     `json:"year"`
	Receita      float64 `json:"receita"`
	Lucro        float64 `json:"lucro"`
	Despesas     float64 `json:"despesas"`
	EBITDA       float64 `json:"ebitda"`
	MargemEBITDA float64 `json:"margemEbitda"`
	MargemLucro  float64 `json:"margemLucro"`
	Dividendos   float64 `json:"dividendos"`
	PayoutRatio  float64 `json:"payoutRatio"`
}

// KPIsByYear covers the union of years present in either financial store,
// ascending.
func KPIsByYear(monthly domain.MonthlyFinancialSnapshot, annual domain.AnnualFinancialSnapshot) []FinancialKPIs {
	reconciled := ReconciledSummary(monthly)

	seen := make(map[int]struct{})
	for y := range reconciled {
		seen[y] = struct{}{}
	}
	for y := range annual {
		seen[y] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)

	kpis := make([]FinancialKPIs, 0, len(years))
	for _, y := range years {
		receita := reconciled[y].Total.MonthlyRevenue
		lucro := reconciled[y].Total.MonthlyProfit
		rec := annual[y]
		despesas := rec.RH + rec.Maintenance + rec.Material + rec.Marketing + rec.Operational
		ebitda := receita - despesas
		k := FinancialKPIs{
			Year:       y,
			Receita:    receita,
			Lucro:      lucro,
			Despesas:   despesas,
			EBITDA:     ebitda,
			Dividendos: rec.DividendsReal,
		}
		if receita > 0 {
			k.MargemEBITDA = ebitda / receita * 100
			k.MargemLucro = lucro / receita * 100
		}
		if lucro > 0 {
			k.PayoutRatio = rec.DividendsReal / lucro * 100
		}
		kpis = append(kpis, k)
	}
	return kpis
}

// ExpenseSlice is one pie slice of the annual expense breakdown.
type ExpenseSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ExpenseBreakdown lists the positive expense categories of one year.
func ExpenseBreakdown(rec domain.AnnualFinancialRecord) []ExpenseSlice {
	all := []ExpenseSlice{
		{Name: "RH", Value: rec.RH},
		{Name: "Manutenção", Value: rec.Maintenance},
		{Name: "Material", Value: rec.Material},
		{Name: "Marketing", Value: rec.Marketing},
		{Name: "Operacional", Value: rec.Operational},
		{Name: "Investimentos", Value: rec.Equipment},
	}
	slices := make([]ExpenseSlice, 0, len(all))
	for _, s := range all {
		if s.Value > 0 {
			slices = append(slices, s)
		}
	}
	return slices
}

type ProspectionYear struct {
	Months [12]int `json:"months"`
	Total  int     `json:"total"`
}

// ProspectionSummary counts prospection meetings per month of their meeting
// date.
func ProspectionSummary(prospections []domain.Prospection) map[int]ProspectionYear {
	summary := make(map[int]ProspectionYear)
	for _, p := range prospections {
		d := p.MeetingDate
		if d.Month < 1 || d.Month > 12 {
			continue
		}
		year := summary[d.Year]
		year.Months[d.Month-1]++
		year.Total++
		summary[d.Year] = year
	}
	return summary
}
