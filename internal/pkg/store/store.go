package store

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

type Store interface {
	UpsertDailyEntry(ctx context.Context, date domain.Date, rec domain.DailyRecord) error
	DeleteDailyEntry(ctx context.Context, date domain.Date) error
	LoadDailySnapshot(ctx context.Context) (domain.DailySnapshot, error)

	UpsertMonthlyFinancials(ctx context.Context, key domain.MonthKey, rec domain.MonthlyFinancialRecord) error
	DeleteMonthlyFinancials(ctx context.Context, key domain.MonthKey) error
	LoadMonthlyFinancials(ctx context.Context) (domain.MonthlyFinancialSnapshot, error)

	UpsertAnnualFinancials(ctx context.Context, year int, rec domain.AnnualFinancialRecord) error
	DeleteAnnualFinancials(ctx context.Context, year int) error
	LoadAnnualFinancials(ctx context.Context) (domain.AnnualFinancialSnapshot, error)

	ReplacePartnerBatch(ctx context.Context, meta domain.UploadMeta, records []domain.PartnerRecord) error
	ReplacePartnerExamBatch(ctx context.Context, meta domain.UploadMeta, records []domain.PartnerExamRecord) error
	LoadPartnerSnapshot(ctx context.Context) (domain.PartnerSnapshot, error)
	LoadPartnerExamSnapshot(ctx context.Context) (domain.PartnerExamSnapshot, error)
	ListUploads(ctx context.Context, metric string) ([]domain.UploadMeta, error)

	SetDeclineReason(ctx context.Context, key string, reason domain.DeclineReason) error
	LoadDeclineReasons(ctx context.Context) (domain.DeclineReasons, error)

	AddProspection(ctx context.Context, p domain.Prospection) error
	DeleteProspection(ctx context.Context, id int64) error
	LoadProspections(ctx context.Context) ([]domain.Prospection, error)

	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

type store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool}
}

// Connect opens the pool and pings it with a short retry loop so a cold
// database container does not kill the service at boot.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
