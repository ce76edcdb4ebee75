package domain

// DeclineReason classifies why a partner's referred revenue dropped between
// two analysis periods. The set is closed; the empty value clears the entry.
type DeclineReason string

const (
	DeclineCompetition     DeclineReason = "Concorrência"
	DeclineDissatisfaction DeclineReason = "Insatisfação"
	DeclinePrice           DeclineReason = "Preço"
	DeclineRecess          DeclineReason = "Recesso/Férias"
	DeclineIllness         DeclineReason = "Doença/Gravidez"
	DeclineRelocation      DeclineReason = "Mudança/Aposentadoria"
	DeclineUnknownMotive   DeclineReason = "Não sabe motivo"
	DeclineNone            DeclineReason = ""
)

var declineReasons = map[DeclineReason]struct{}{
	DeclineCompetition:     {},
	DeclineDissatisfaction: {},
	DeclinePrice:           {},
	DeclineRecess:          {},
	DeclineIllness:         {},
	DeclineRelocation:      {},
	DeclineUnknownMotive:   {},
	DeclineNone:            {},
}

func (r DeclineReason) Valid() bool {
	_, ok := declineReasons[r]
	return ok
}

// DeclineReasons is keyed by DeclineReasonKey.
type DeclineReasons map[string]DeclineReason

// DeclineReasonKey scopes a classification to one analysis period and one
// dentist: "<period-1-end>_<dentist>".
func DeclineReasonKey(periodEnd Date, dentistName string) string {
	return periodEnd.String() + "_" + dentistName
}
