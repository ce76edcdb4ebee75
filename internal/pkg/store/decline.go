package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

// SetDeclineReason stores an annotation for a declining dentist. An empty
// reason clears the annotation instead.
func (s *store) SetDeclineReason(ctx context.Context, key string, reason domain.DeclineReason) error {
	var query sq.Sqlizer
	if reason == domain.DeclineNone {
		query = builder().Delete(tableDeclineReasons).Where(sq.Eq{"key": key})
	} else {
		query = builder().Insert(tableDeclineReasons).
			Columns("key", "reason").
			Values(key, reason).
			Suffix(`on conflict (key) do update set reason = excluded.reason`)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("set decline reason %q: %w", key, wrapErr(err))
	}
	return nil
}

func (s *store) LoadDeclineReasons(ctx context.Context) (domain.DeclineReasons, error) {
	query := builder().Select("key", "reason").From(tableDeclineReasons)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	reasons := make(domain.DeclineReasons)
	for rows.Next() {
		var (
			key    string
			reason domain.DeclineReason
		)
		if err := rows.Scan(&key, &reason); err != nil {
			return nil, err
		}
		reasons[key] = reason
	}
	return reasons, rows.Err()
}
