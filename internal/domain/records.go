package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DailyRecord is one day of raw operational numbers. The latest write for a
// date is the only truth, no history is kept.
type DailyRecord struct {
	Patients int     `json:"patients" db:"patients"`
	Revenue  float64 `json:"revenue" db:"revenue"`
	Docs     int     `json:"docs" db:"docs"`
	Tomos    int     `json:"tomos" db:"tomos"`
}

// MonthlyFinancialRecord is the accountant-confirmed view of one month,
// independent of the raw daily revenue.
type MonthlyFinancialRecord struct {
	MonthlyRevenue float64 `json:"monthlyRevenue" db:"monthly_revenue"`
	MonthlyProfit  float64 `json:"monthlyProfit" db:"monthly_profit"`
	Dividends      float64 `json:"dividends" db:"dividends"`
	MonthlyReserve float64 `json:"monthlyReserve" db:"monthly_reserve"`
}

// AnnualFinancialRecord is the director-level annual expense and dividend
// breakdown, at most one per year.
type AnnualFinancialRecord struct {
	RH                  float64 `json:"rh" db:"rh"`
	Maintenance         float64 `json:"maintenance" db:"maintenance"`
	Material            float64 `json:"material" db:"material"`
	Marketing           float64 `json:"marketing" db:"marketing"`
	Operational         float64 `json:"operational" db:"operational"`
	Equipment           float64 `json:"equipment" db:"equipment"`
	Interest            float64 `json:"interest" db:"interest"`
	Taxes               float64 `json:"taxes" db:"taxes"`
	DividendsAccounting float64 `json:"dividendsAccounting" db:"dividends_accounting"`
	DividendsReal       float64 `json:"dividendsReal" db:"dividends_real"`
}

// PartnerRecord is one referring dentist's referred exam value inside a
// month-keyed upload batch.
type PartnerRecord struct {
	DentistName string  `json:"dentistName" db:"dentist_name"`
	ExamValue   float64 `json:"examValue" db:"exam_value"`
}

// PartnerExamRecord is the parallel by-count metric for the same relationship.
type PartnerExamRecord struct {
	DentistName string `json:"dentistName" db:"dentist_name"`
	ExamCount   int    `json:"examCount" db:"exam_count"`
}

type Prospection struct {
	ID          int64  `json:"id" db:"id"`
	DentistName string `json:"dentistName" db:"dentist_name"`
	MeetingDate Date   `json:"meetingDate" db:"meeting_date"`
}

// UploadMeta describes one partner-relation file upload. A batch replaces the
// whole month it is keyed to.
type UploadMeta struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Metric     string    `json:"metric" db:"metric"`
	Month      MonthKey  `json:"month"`
	FileName   string    `json:"fileName" db:"file_name"`
	FileSize   int64     `json:"fileSize" db:"file_size"`
	UploadedAt time.Time `json:"uploadedAt" db:"uploaded_at"`
}

const (
	MetricValue = "value"
	MetricExams = "exams"
)

type (
	DailySnapshot            map[DayKey]DailyRecord
	MonthlyFinancialSnapshot map[MonthKey]MonthlyFinancialRecord
	AnnualFinancialSnapshot  map[Year]AnnualFinancialRecord
	PartnerSnapshot          map[MonthKey][]PartnerRecord
	PartnerExamSnapshot      map[MonthKey][]PartnerExamRecord
)

// Snapshot is the fully materialized store state the aggregation core reads.
// The core never mutates it.
type Snapshot struct {
	Daily             DailySnapshot
	MonthlyFinancials MonthlyFinancialSnapshot
	AnnualFinancials  AnnualFinancialSnapshot
	PartnersByValue   PartnerSnapshot
	PartnersByExams   PartnerExamSnapshot
	Prospections      []Prospection
	DeclineReasons    DeclineReasons
}

// AsValues maps the by-count metric onto the value-shaped records so both
// metrics go through the same aggregation paths.
func (s PartnerExamSnapshot) AsValues() PartnerSnapshot {
	out := make(PartnerSnapshot, len(s))
	for key, records := range s {
		converted := make([]PartnerRecord, 0, len(records))
		for _, r := range records {
			converted = append(converted, PartnerRecord{
				DentistName: r.DentistName,
				ExamValue:   float64(r.ExamCount),
			})
		}
		out[key] = converted
	}
	return out
}

// Years lists the years present in the daily store, most recent first, the
// order year pickers expect.
func (s DailySnapshot) Years() []int {
	seen := make(map[int]struct{})
	for key := range s {
		seen[key.Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
