package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
)

// LoadSnapshot materializes the whole store state for the aggregation core.
// The seven tables are independent, so they load concurrently.
func (s *store) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var snap domain.Snapshot

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		snap.Daily, err = s.LoadDailySnapshot(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snap.MonthlyFinancials, err = s.LoadMonthlyFinancials(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snap.AnnualFinancials, err = s.LoadAnnualFinancials(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snap.PartnersByValue, err = s.LoadPartnerSnapshot(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snap.PartnersByExams, err = s.LoadPartnerExamSnapshot(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snap.Prospections, err = s.LoadProspections(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		snap.DeclineReasons, err = s.LoadDeclineReasons(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
