package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

var (
	partnerColumns = []string{"year", "month", "dentist_name", "exam_value"}
	examColumns    = []string{"year", "month", "dentist_name", "exam_count"}
	uploadColumns  = []string{"id", "metric", "year", "month", "file_name", "file_size", "uploaded_at"}
)

// ReplacePartnerBatch swaps the whole month of by-value records for the
// uploaded batch and registers the upload, all in one transaction.
func (s *store) ReplacePartnerBatch(ctx context.Context, meta domain.UploadMeta, records []domain.PartnerRecord) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if err := execIn(ctx, tx, builder().Delete(tablePartnerRecords).
			Where(sq.Eq{"year": meta.Month.Year, "month": meta.Month.Month})); err != nil {
			return err
		}

		insert := builder().Insert(tablePartnerRecords).Columns(partnerColumns...)
		for _, r := range records {
			insert = insert.Values(meta.Month.Year, meta.Month.Month, r.DentistName, r.ExamValue)
		}
		if err := execIn(ctx, tx, insert); err != nil {
			return err
		}

		return s.insertUpload(ctx, tx, meta)
	})
}

// ReplacePartnerExamBatch is the by-count twin of ReplacePartnerBatch.
func (s *store) ReplacePartnerExamBatch(ctx context.Context, meta domain.UploadMeta, records []domain.PartnerExamRecord) error {
	return s.inTx(ctx, func(tx pgx.Tx) error {
		if err := execIn(ctx, tx, builder().Delete(tablePartnerExams).
			Where(sq.Eq{"year": meta.Month.Year, "month": meta.Month.Month})); err != nil {
			return err
		}

		insert := builder().Insert(tablePartnerExams).Columns(examColumns...)
		for _, r := range records {
			insert = insert.Values(meta.Month.Year, meta.Month.Month, r.DentistName, r.ExamCount)
		}
		if err := execIn(ctx, tx, insert); err != nil {
			return err
		}

		return s.insertUpload(ctx, tx, meta)
	})
}

func (s *store) insertUpload(ctx context.Context, tx pgx.Tx, meta domain.UploadMeta) error {
	return execIn(ctx, tx, builder().Insert(tablePartnerUploads).
		Columns(uploadColumns...).
		Values(meta.ID, meta.Metric, meta.Month.Year, meta.Month.Month,
			meta.FileName, meta.FileSize, meta.UploadedAt))
}

func (s *store) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return wrapErr(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func execIn(ctx context.Context, tx pgx.Tx, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, sql, args...); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (s *store) LoadPartnerSnapshot(ctx context.Context) (domain.PartnerSnapshot, error) {
	query := builder().Select(partnerColumns...).From(tablePartnerRecords)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	snapshot := make(domain.PartnerSnapshot)
	for rows.Next() {
		var (
			key domain.MonthKey
			rec domain.PartnerRecord
		)
		if err := rows.Scan(&key.Year, &key.Month, &rec.DentistName, &rec.ExamValue); err != nil {
			return nil, err
		}
		snapshot[key] = append(snapshot[key], rec)
	}
	return snapshot, rows.Err()
}

func (s *store) LoadPartnerExamSnapshot(ctx context.Context) (domain.PartnerExamSnapshot, error) {
	query := builder().Select(examColumns...).From(tablePartnerExams)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	snapshot := make(domain.PartnerExamSnapshot)
	for rows.Next() {
		var (
			key domain.MonthKey
			rec domain.PartnerExamRecord
		)
		if err := rows.Scan(&key.Year, &key.Month, &rec.DentistName, &rec.ExamCount); err != nil {
			return nil, err
		}
		snapshot[key] = append(snapshot[key], rec)
	}
	return snapshot, rows.Err()
}

func (s *store) ListUploads(ctx context.Context, metric string) ([]domain.UploadMeta, error) {
	query := builder().Select(uploadColumns...).From(tablePartnerUploads).
		Where(sq.Eq{"metric": metric}).
		OrderBy("uploaded_at desc")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	uploads := make([]domain.UploadMeta, 0)
	for rows.Next() {
		var meta domain.UploadMeta
		if err := rows.Scan(&meta.ID, &meta.Metric, &meta.Month.Year, &meta.Month.Month,
			&meta.FileName, &meta.FileSize, &meta.UploadedAt); err != nil {
			return nil, err
		}
		uploads = append(uploads, meta)
	}
	return uploads, rows.Err()
}
