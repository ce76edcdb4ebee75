package entries

import (
	"context"
	"fmt"
	"time"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/store"
)

// Service owns all manual writes: daily numbers, confirmed financials,
// decline annotations and prospection meetings.
type Service struct {
	store store.Store
	now   func() time.Time
}

func NewEntriesService(store store.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SaveDailyEntry overwrites the record for the date, there is no history.
func (s *Service) SaveDailyEntry(ctx context.Context, date domain.Date, rec domain.DailyRecord) error {
	if err := s.store.UpsertDailyEntry(ctx, date, rec); err != nil {
		return fmt.Errorf("store.UpsertDailyEntry: %w", err)
	}
	return nil
}

func (s *Service) DeleteDailyEntry(ctx context.Context, date domain.Date) error {
	if err := s.store.DeleteDailyEntry(ctx, date); err != nil {
		return fmt.Errorf("store.DeleteDailyEntry: %w", err)
	}
	return nil
}

func (s *Service) SaveMonthlyFinancials(ctx context.Context, key domain.MonthKey, rec domain.MonthlyFinancialRecord) error {
	if err := s.store.UpsertMonthlyFinancials(ctx, key, rec); err != nil {
		return fmt.Errorf("store.UpsertMonthlyFinancials: %w", err)
	}
	return nil
}

func (s *Service) DeleteMonthlyFinancials(ctx context.Context, key domain.MonthKey) error {
	if err := s.store.DeleteMonthlyFinancials(ctx, key); err != nil {
		return fmt.Errorf("store.DeleteMonthlyFinancials: %w", err)
	}
	return nil
}

func (s *Service) SaveAnnualFinancials(ctx context.Context, year int, rec domain.AnnualFinancialRecord) error {
	if err := s.store.UpsertAnnualFinancials(ctx, year, rec); err != nil {
		return fmt.Errorf("store.UpsertAnnualFinancials: %w", err)
	}
	return nil
}

func (s *Service) DeleteAnnualFinancials(ctx context.Context, year int) error {
	if err := s.store.DeleteAnnualFinancials(ctx, year); err != nil {
		return fmt.Errorf("store.DeleteAnnualFinancials: %w", err)
	}
	return nil
}

// SetDeclineReason annotates a declining dentist for a comparison window.
// An empty reason clears the annotation.
func (s *Service) SetDeclineReason(ctx context.Context, periodEnd domain.Date, dentistName string, reason domain.DeclineReason) error {
	if !reason.Valid() {
		return constants.ErrUnknownReason
	}

	key := domain.DeclineReasonKey(periodEnd, dentistName)
	if err := s.store.SetDeclineReason(ctx, key, reason); err != nil {
		return fmt.Errorf("store.SetDeclineReason: %w", err)
	}
	return nil
}

// AddProspection registers a planned meeting with a dentist. The id is
// assigned here so clients can delete by it.
func (s *Service) AddProspection(ctx context.Context, dentistName string, meetingDate domain.Date) (domain.Prospection, error) {
	p := domain.Prospection{
		ID:          s.now().UnixMilli(),
		DentistName: dentistName,
		MeetingDate: meetingDate,
	}
	if err := s.store.AddProspection(ctx, p); err != nil {
		return domain.Prospection{}, fmt.Errorf("store.AddProspection: %w", err)
	}
	return p, nil
}

func (s *Service) DeleteProspection(ctx context.Context, id int64) error {
	if err := s.store.DeleteProspection(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteProspection: %w", err)
	}
	return nil
}

func (s *Service) ListProspections(ctx context.Context) ([]domain.Prospection, error) {
	prospections, err := s.store.LoadProspections(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.LoadProspections: %w", err)
	}
	return prospections, nil
}
