// Package storetest provides a Func-field mock of the store interface for
// service tests.
package storetest

import (
	"context"
	"errors"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/store"
)

var _ store.Store = (*MockStore)(nil)

// MockStore fails loudly on any method whose Func field is unset, so a test
// never silently exercises the wrong path.
type MockStore struct {
	UpsertDailyEntryFunc  func(ctx context.Context, date domain.Date, rec domain.DailyRecord) error
	DeleteDailyEntryFunc  func(ctx context.Context, date domain.Date) error
	LoadDailySnapshotFunc func(ctx context.Context) (domain.DailySnapshot, error)

	UpsertMonthlyFinancialsFunc func(ctx context.Context, key domain.MonthKey, rec domain.MonthlyFinancialRecord) error
	DeleteMonthlyFinancialsFunc func(ctx context.Context, key domain.MonthKey) error
	LoadMonthlyFinancialsFunc   func(ctx context.Context) (domain.MonthlyFinancialSnapshot, error)

	UpsertAnnualFinancialsFunc func(ctx context.Context, year int, rec domain.AnnualFinancialRecord) error
	DeleteAnnualFinancialsFunc func(ctx context.Context, year int) error
	LoadAnnualFinancialsFunc   func(ctx context.Context) (domain.AnnualFinancialSnapshot, error)

	ReplacePartnerBatchFunc     func(ctx context.Context, meta domain.UploadMeta, records []domain.PartnerRecord) error
	ReplacePartnerExamBatchFunc func(ctx context.Context, meta domain.UploadMeta, records []domain.PartnerExamRecord) error
	LoadPartnerSnapshotFunc     func(ctx context.Context) (domain.PartnerSnapshot, error)
	LoadPartnerExamSnapshotFunc func(ctx context.Context) (domain.PartnerExamSnapshot, error)
	ListUploadsFunc             func(ctx context.Context, metric string) ([]domain.UploadMeta, error)

	SetDeclineReasonFunc   func(ctx context.Context, key string, reason domain.DeclineReason) error
	LoadDeclineReasonsFunc func(ctx context.Context) (domain.DeclineReasons, error)

	AddProspectionFunc    func(ctx context.Context, p domain.Prospection) error
	DeleteProspectionFunc func(ctx context.Context, id int64) error
	LoadProspectionsFunc  func(ctx context.Context) ([]domain.Prospection, error)

	LoadSnapshotFunc func(ctx context.Context) (*domain.Snapshot, error)
}

var errNotImplemented = errors.New("not implemented in mock")

func (m *MockStore) UpsertDailyEntry(ctx context.Context, date domain.Date, rec domain.DailyRecord) error {
	if m.UpsertDailyEntryFunc != nil {
		return m.UpsertDailyEntryFunc(ctx, date, rec)
	}
	return errNotImplemented
}

func (m *MockStore) DeleteDailyEntry(ctx context.Context, date domain.Date) error {
	if m.DeleteDailyEntryFunc != nil {
		return m.DeleteDailyEntryFunc(ctx, date)
	}
	return errNotImplemented
}

func (m *MockStore) LoadDailySnapshot(ctx context.Context) (domain.DailySnapshot, error) {
	if m.LoadDailySnapshotFunc != nil {
		return m.LoadDailySnapshotFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockStore) UpsertMonthlyFinancials(ctx context.Context, key domain.MonthKey, rec domain.MonthlyFinancialRecord) error {
	if m.UpsertMonthlyFinancialsFunc != nil {
		return m.UpsertMonthlyFinancialsFunc(ctx, key, rec)
	}
	return errNotImplemented
}

func (m *MockStore) DeleteMonthlyFinancials(ctx context.Context, key domain.MonthKey) error {
	if m.DeleteMonthlyFinancialsFunc != nil {
		return m.DeleteMonthlyFinancialsFunc(ctx, key)
	}
	return errNotImplemented
}

func (m *MockStore) LoadMonthlyFinancials(ctx context.Context) (domain.MonthlyFinancialSnapshot, error) {
	if m.LoadMonthlyFinancialsFunc != nil {
		return m.LoadMonthlyFinancialsFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockStore) UpsertAnnualFinancials(ctx context.Context, year int, rec domain.AnnualFinancialRecord) error {
	if m.UpsertAnnualFinancialsFunc != nil {
		return m.UpsertAnnualFinancialsFunc(ctx, year, rec)
	}
	return errNotImplemented
}

func (m *MockStore) DeleteAnnualFinancials(ctx context.Context, year int) error {
	if m.DeleteAnnualFinancialsFunc != nil {
		return m.DeleteAnnualFinancialsFunc(ctx, year)
	}
	return errNotImplemented
}

func (m *MockStore) LoadAnnualFinancials(ctx context.Context) (domain.AnnualFinancialSnapshot, error) {
	if m.LoadAnnualFinancialsFunc != nil {
		return m.LoadAnnualFinancialsFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockStore) ReplacePartnerBatch(ctx context.Context, meta domain.UploadMeta, records []domain.PartnerRecord) error {
	if m.ReplacePartnerBatchFunc != nil {
		return m.ReplacePartnerBatchFunc(ctx, meta, records)
	}
	return errNotImplemented
}

func (m *MockStore) ReplacePartnerExamBatch(ctx context.Context, meta domain.UploadMeta, records []domain.PartnerExamRecord) error {
	if m.ReplacePartnerExamBatchFunc != nil {
		return m.ReplacePartnerExamBatchFunc(ctx, meta, records)
	}
	return errNotImplemented
}

func (m *MockStore) LoadPartnerSnapshot(ctx context.Context) (domain.PartnerSnapshot, error) {
	if m.LoadPartnerSnapshotFunc != nil {
		return m.LoadPartnerSnapshotFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockStore) LoadPartnerExamSnapshot(ctx context.Context) (domain.PartnerExamSnapshot, error) {
	if m.LoadPartnerExamSnapshotFunc != nil {
		return m.LoadPartnerExamSnapshotFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockStore) ListUploads(ctx context.Context, metric string) ([]domain.UploadMeta, error) {
	if m.ListUploadsFunc != nil {
		return m.ListUploadsFunc(ctx, metric)
	}
	return nil, errNotImplemented
}

func (m *MockStore) SetDeclineReason(ctx context.Context, key string, reason domain.DeclineReason) error {
	if m.SetDeclineReasonFunc != nil {
		return m.SetDeclineReasonFunc(ctx, key, reason)
	}
	return errNotImplemented
}

func (m *MockStore) LoadDeclineReasons(ctx context.Context) (domain.DeclineReasons, error) {
	if m.LoadDeclineReasonsFunc != nil {
		return m.LoadDeclineReasonsFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockStore) AddProspection(ctx context.Context, p domain.Prospection) error {
	if m.AddProspectionFunc != nil {
		return m.AddProspectionFunc(ctx, p)
	}
	return errNotImplemented
}

func (m *MockStore) DeleteProspection(ctx context.Context, id int64) error {
	if m.DeleteProspectionFunc != nil {
		return m.DeleteProspectionFunc(ctx, id)
	}
	return errNotImplemented
}

func (m *MockStore) LoadProspections(ctx context.Context) ([]domain.Prospection, error) {
	if m.LoadProspectionsFunc != nil {
		return m.LoadProspectionsFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockStore) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	if m.LoadSnapshotFunc != nil {
		return m.LoadSnapshotFunc(ctx)
	}
	return nil, errNotImplemented
}
