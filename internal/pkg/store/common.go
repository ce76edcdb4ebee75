package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
)

const (
	tableDailyEntries      = "daily_entries"
	tableMonthlyFinancials = "monthly_financials"
	tableAnnualFinancials  = "annual_financials"
	tablePartnerRecords    = "partner_records"
	tablePartnerExams      = "partner_records_by_exams"
	tablePartnerUploads    = "partner_uploads"
	tableDeclineReasons    = "decline_reasons"
	tableProspections      = "prospections"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel SQL builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
