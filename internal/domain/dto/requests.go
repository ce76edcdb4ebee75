package dto

// DailyEntryRequest is the payload for saving one day of operational numbers.
type DailyEntryRequest struct {
	Date     string  `json:"date" validate:"required"`
	Patients int     `json:"patients" validate:"min=0"`
	Revenue  float64 `json:"revenue" validate:"min=0"`
	Docs     int     `json:"docs" validate:"min=0"`
	Tomos    int     `json:"tomos" validate:"min=0"`
}

// MonthlyFinancialsRequest carries the accountant-confirmed numbers for the
// month addressed in the path.
type MonthlyFinancialsRequest struct {
	MonthlyRevenue float64 `json:"monthlyRevenue" validate:"min=0"`
	MonthlyProfit  float64 `json:"monthlyProfit"`
	Dividends      float64 `json:"dividends" validate:"min=0"`
	MonthlyReserve float64 `json:"monthlyReserve" validate:"min=0"`
}

// AnnualFinancialsRequest carries the annual expense and dividend breakdown
// for the year addressed in the path.
type AnnualFinancialsRequest struct {
	RH                  float64 `json:"rh" validate:"min=0"`
	Maintenance         float64 `json:"maintenance" validate:"min=0"`
	Material            float64 `json:"material" validate:"min=0"`
	Marketing           float64 `json:"marketing" validate:"min=0"`
	Operational         float64 `json:"operational" validate:"min=0"`
	Equipment           float64 `json:"equipment" validate:"min=0"`
	Interest            float64 `json:"interest" validate:"min=0"`
	Taxes               float64 `json:"taxes" validate:"min=0"`
	DividendsAccounting float64 `json:"dividendsAccounting" validate:"min=0"`
	DividendsReal       float64 `json:"dividendsReal" validate:"min=0"`
}

// DeclineReasonRequest annotates a declining dentist inside a comparison
// window. An empty reason clears the annotation.
type DeclineReasonRequest struct {
	PeriodEnd   string `json:"periodEnd" validate:"required"`
	DentistName string `json:"dentistName" validate:"required"`
	Reason      string `json:"reason"`
}

// ProspectionRequest registers a planned meeting with a dentist.
type ProspectionRequest struct {
	DentistName string `json:"dentistName" validate:"required"`
	MeetingDate string `json:"meetingDate" validate:"required"`
}
