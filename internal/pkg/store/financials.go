package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

var (
	monthlyFinancialColumns = []string{
		"year", "month", "monthly_revenue", "monthly_profit", "dividends", "monthly_reserve",
	}
	annualFinancialColumns = []string{
		"year", "rh", "maintenance", "material", "marketing", "operational",
		"equipment", "interest", "taxes", "dividends_accounting", "dividends_real",
	}
)

func (s *store) UpsertMonthlyFinancials(ctx context.Context, key domain.MonthKey, rec domain.MonthlyFinancialRecord) error {
	query := builder().Insert(tableMonthlyFinancials).
		Columns(monthlyFinancialColumns...).
		Values(key.Year, key.Month, rec.MonthlyRevenue, rec.MonthlyProfit, rec.Dividends, rec.MonthlyReserve).
		Suffix(`on conflict (year, month) do update set
	monthly_revenue = excluded.monthly_revenue,
	monthly_profit = excluded.monthly_profit,
	dividends = excluded.dividends,
	monthly_reserve = excluded.monthly_reserve`)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert monthly financials %d-%s: %w", key.Year, key.MonthLabel(), wrapErr(err))
	}
	return nil
}

func (s *store) DeleteMonthlyFinancials(ctx context.Context, key domain.MonthKey) error {
	query := builder().Delete(tableMonthlyFinancials).
		Where(sq.Eq{"year": key.Year, "month": key.Month})

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete monthly financials %d-%s: %w", key.Year, key.MonthLabel(), wrapErr(err))
	}
	return nil
}

func (s *store) LoadMonthlyFinancials(ctx context.Context) (domain.MonthlyFinancialSnapshot, error) {
	query := builder().Select(monthlyFinancialColumns...).From(tableMonthlyFinancials)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	snapshot := make(domain.MonthlyFinancialSnapshot)
	for rows.Next() {
		var (
			key domain.MonthKey
			rec domain.MonthlyFinancialRecord
		)
		if err := rows.Scan(&key.Year, &key.Month, &rec.MonthlyRevenue, &rec.MonthlyProfit, &rec.Dividends, &rec.MonthlyReserve); err != nil {
			return nil, err
		}
		snapshot[key] = rec
	}
	return snapshot, rows.Err()
}

func (s *store) UpsertAnnualFinancials(ctx context.Context, year int, rec domain.AnnualFinancialRecord) error {
	query := builder().Insert(tableAnnualFinancials).
		Columns(annualFinancialColumns...).
		Values(year, rec.RH, rec.Maintenance, rec.Material, rec.Marketing, rec.Operational,
			rec.Equipment, rec.Interest, rec.Taxes, rec.DividendsAccounting, rec.DividendsReal).
		Suffix(`on conflict (year) do update set
	rh = excluded.rh,
	maintenance = excluded.maintenance,
	material = excluded.material,
	marketing = excluded.marketing,
	operational = excluded.operational,
	equipment = excluded.equipment,
	interest = excluded.interest,
	taxes = excluded.taxes,
	dividends_accounting = excluded.dividends_accounting,
	dividends_real = excluded.dividends_real`)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert annual financials %d: %w", year, wrapErr(err))
	}
	return nil
}

func (s *store) DeleteAnnualFinancials(ctx context.Context, year int) error {
	query := builder().Delete(tableAnnualFinancials).
		Where(sq.Eq{"year": year})

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete annual financials %d: %w", year, wrapErr(err))
	}
	return nil
}

func (s *store) LoadAnnualFinancials(ctx context.Context) (domain.AnnualFinancialSnapshot, error) {
	query := builder().Select(annualFinancialColumns...).From(tableAnnualFinancials)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	snapshot := make(domain.AnnualFinancialSnapshot)
	for rows.Next() {
		var (
			year int
			rec  domain.AnnualFinancialRecord
		)
		if err := rows.Scan(&year, &rec.RH, &rec.Maintenance, &rec.Material, &rec.Marketing, &rec.Operational,
			&rec.Equipment, &rec.Interest, &rec.Taxes, &rec.DividendsAccounting, &rec.DividendsReal); err != nil {
			return nil, err
		}
		snapshot[year] = rec
	}
	return snapshot, rows.Err()
}
