package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/DrRobsonAmuiJr/ROE/internal/analytics"
	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/store"
)

// Service turns persisted snapshots into the read models the dashboard
// renders. It holds no state besides the store, every report is computed
// from a fresh snapshot.
type Service struct {
	store store.Store
	now   func() time.Time
}

func NewReportsService(store store.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Dashboard(ctx context.Context) (analytics.DashboardReport, error) {
	daily, err := s.store.LoadDailySnapshot(ctx)
	if err != nil {
		return analytics.DashboardReport{}, fmt.Errorf("store.LoadDailySnapshot: %w", err)
	}

	return analytics.BuildDashboard(daily, s.now()), nil
}

func (s *Service) ComparisonGrid(ctx context.Context, yearA, yearB int) ([]analytics.MonthRow, error) {
	daily, err := s.store.LoadDailySnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.LoadDailySnapshot: %w", err)
	}

	return analytics.BuildComparisonGrid(daily, yearA, yearB), nil
}

func (s *Service) PeriodComparison(ctx context.Context, period domain.DateRange) (analytics.PeriodComparisonReport, error) {
	daily, err := s.store.LoadDailySnapshot(ctx)
	if err != nil {
		return analytics.PeriodComparisonReport{}, fmt.Errorf("store.LoadDailySnapshot: %w", err)
	}

	return analytics.ComparePeriodYearOverYear(daily, period), nil
}

func (s *Service) Years(ctx context.Context) ([]int, error) {
	daily, err := s.store.LoadDailySnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.LoadDailySnapshot: %w", err)
	}

	return daily.Years(), nil
}

func (s *Service) PartnerReport(ctx context.Context, metric string, period1, period2 domain.DateRange) (analytics.PartnerReport, error) {
	records, err := s.partnerRecords(ctx, metric)
	if err != nil {
		return analytics.PartnerReport{}, err
	}

	reasons, err := s.store.LoadDeclineReasons(ctx)
	if err != nil {
		return analytics.PartnerReport{}, fmt.Errorf("store.LoadDeclineReasons: %w", err)
	}

	return analytics.BuildPartnerReport(records, reasons, period1, period2), nil
}

func (s *Service) DentistReport(ctx context.Context, metric, dentistName string, period1, period2 domain.DateRange) (analytics.DentistReport, error) {
	records, err := s.partnerRecords(ctx, metric)
	if err != nil {
		return analytics.DentistReport{}, err
	}

	return analytics.BuildDentistReport(records, dentistName, period1, period2), nil
}

func (s *Service) Dentists(ctx context.Context, metric string) ([]string, error) {
	records, err := s.partnerRecords(ctx, metric)
	if err != nil {
		return nil, err
	}

	return analytics.UniqueDentists(records), nil
}

func (s *Service) Summary(ctx context.Context) (analytics.SummaryReport, error) {
	snap, err := s.store.LoadSnapshot(ctx)
	if err != nil {
		return analytics.SummaryReport{}, fmt.Errorf("store.LoadSnapshot: %w", err)
	}

	return analytics.BuildSummaryReport(snap), nil
}

// FinancialPanel builds the financial view for the selected year. Year 0
// selects the most recent year with confirmed data.
func (s *Service) FinancialPanel(ctx context.Context, year int) (analytics.FinancialPanel, error) {
	monthly, err := s.store.LoadMonthlyFinancials(ctx)
	if err != nil {
		return analytics.FinancialPanel{}, fmt.Errorf("store.LoadMonthlyFinancials: %w", err)
	}

	annual, err := s.store.LoadAnnualFinancials(ctx)
	if err != nil {
		return analytics.FinancialPanel{}, fmt.Errorf("store.LoadAnnualFinancials: %w", err)
	}

	return analytics.BuildFinancialPanel(monthly, annual, year), nil
}

// Periods resolves a named preset into a range pair. An empty preset means
// the default month-to-date window.
func (s *Service) Periods(preset string) (analytics.PeriodPair, error) {
	switch preset {
	case "", "default":
		return analytics.DefaultPeriods(s.now()), nil
	case "current-year":
		return analytics.CurrentYearPeriods(s.now()), nil
	case "last-year":
		return analytics.LastYearPeriods(s.now()), nil
	default:
		return analytics.PeriodPair{}, constants.Invalidf("unknown period preset %q", preset)
	}
}

// Reminder reports whether the monthly closing reminder should fire, given
// the identifier of the last month the client acknowledged.
type Reminder struct {
	Due   bool   `json:"due"`
	Month string `json:"month"`
}

func (s *Service) Reminder(lastNotified string) Reminder {
	now := s.now()
	return Reminder{
		Due:   analytics.MonthlyReminderDue(now, lastNotified),
		Month: analytics.MonthIdentifier(now),
	}
}

func (s *Service) partnerRecords(ctx context.Context, metric string) (domain.PartnerSnapshot, error) {
	switch metric {
	case domain.MetricValue:
		records, err := s.store.LoadPartnerSnapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("store.LoadPartnerSnapshot: %w", err)
		}
		return records, nil
	case domain.MetricExams:
		records, err := s.store.LoadPartnerExamSnapshot(ctx)
		if err != nil {
			return nil, fmt.Errorf("store.LoadPartnerExamSnapshot: %w", err)
		}
		return records.AsValues(), nil
	default:
		return nil, constants.Invalidf("unknown metric %q", metric)
	}
}
