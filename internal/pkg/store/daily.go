package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

var dailyColumns = []string{"date", "patients", "revenue", "docs", "tomos"}

func (s *store) UpsertDailyEntry(ctx context.Context, date domain.Date, rec domain.DailyRecord) error {
	query := builder().Insert(tableDailyEntries).
		Columns(dailyColumns...).
		Values(date.Time(), rec.Patients, rec.Revenue, rec.Docs, rec.Tomos).
		Suffix(`on conflict (date) do update set
	patients = excluded.patients,
	revenue = excluded.revenue,
	docs = excluded.docs,
	tomos = excluded.tomos`)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert daily entry %s: %w", date, wrapErr(err))
	}
	return nil
}

func (s *store) DeleteDailyEntry(ctx context.Context, date domain.Date) error {
	query := builder().Delete(tableDailyEntries).
		Where(sq.Eq{"date": date.Time()})

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete daily entry %s: %w", date, wrapErr(err))
	}
	return nil
}

func (s *store) LoadDailySnapshot(ctx context.Context) (domain.DailySnapshot, error) {
	query := builder().Select(dailyColumns...).From(tableDailyEntries)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	snapshot := make(domain.DailySnapshot)
	for rows.Next() {
		var (
			date time.Time
			rec  domain.DailyRecord
		)
		if err := rows.Scan(&date, &rec.Patients, &rec.Revenue, &rec.Docs, &rec.Tomos); err != nil {
			return nil, err
		}
		d := domain.DateOf(date)
		snapshot[domain.DayKey{Year: d.Year, Month: d.Month, Day: d.Day}] = rec
	}
	return snapshot, rows.Err()
}
