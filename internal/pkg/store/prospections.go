package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

var prospectionColumns = []string{"id", "dentist_name", "meeting_date"}

func (s *store) AddProspection(ctx context.Context, p domain.Prospection) error {
	query := builder().Insert(tableProspections).
		Columns(prospectionColumns...).
		Values(p.ID, p.DentistName, p.MeetingDate.Time())

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("add prospection %d: %w", p.ID, wrapErr(err))
	}
	return nil
}

func (s *store) DeleteProspection(ctx context.Context, id int64) error {
	query := builder().Delete(tableProspections).Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete prospection %d: %w", id, wrapErr(err))
	}
	return nil
}

func (s *store) LoadProspections(ctx context.Context) ([]domain.Prospection, error) {
	query := builder().Select(prospectionColumns...).From(tableProspections).
		OrderBy("meeting_date", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	prospections := make([]domain.Prospection, 0)
	for rows.Next() {
		var (
			p    domain.Prospection
			date time.Time
		)
		if err := rows.Scan(&p.ID, &p.DentistName, &date); err != nil {
			return nil, err
		}
		p.MeetingDate = domain.DateOf(date)
		prospections = append(prospections, p)
	}
	return prospections, rows.Err()
}
