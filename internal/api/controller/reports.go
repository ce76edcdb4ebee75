package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
)

func (c *Controller) GetDashboard(ctx echo.Context) error {
	report, err := c.reports.Dashboard(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}

func (c *Controller) GetYears(ctx echo.Context) error {
	years, err := c.reports.Years(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, years)
}

// GetComparisonGrid returns the 12-row month grid comparing year_a against
// year_b.
func (c *Controller) GetComparisonGrid(ctx echo.Context) error {
	yearA, err := intQueryParam(ctx, "year_a")
	if err != nil {
		return err
	}
	yearB, err := intQueryParam(ctx, "year_b")
	if err != nil {
		return err
	}

	grid, err := c.reports.ComparisonGrid(ctx.Request().Context(), yearA, yearB)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, grid)
}

// GetPeriodComparison compares an arbitrary date range against the same
// range shifted one year back.
func (c *Controller) GetPeriodComparison(ctx echo.Context) error {
	period, err := domain.ParseDateRange(ctx.QueryParams().Get("start"), ctx.QueryParams().Get("end"))
	if err != nil {
		return err
	}

	report, err := c.reports.PeriodComparison(ctx.Request().Context(), period)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}

func (c *Controller) GetSummary(ctx echo.Context) error {
	report, err := c.reports.Summary(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}

// GetFinancialPanel returns the financial view for ?year=, defaulting to the
// most recent year with confirmed data.
func (c *Controller) GetFinancialPanel(ctx echo.Context) error {
	year := 0
	if raw := ctx.QueryParams().Get("year"); raw != "" {
		var err error
		if year, err = strconv.Atoi(raw); err != nil {
			return constants.Invalidf("bad year %q", raw)
		}
	}

	panel, err := c.reports.FinancialPanel(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, panel)
}

func (c *Controller) GetReminder(ctx echo.Context) error {
	lastNotified := ctx.QueryParams().Get("last_notified")
	return ctx.JSON(http.StatusOK, c.reports.Reminder(lastNotified))
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParams().Get(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, constants.Invalidf("bad %s %q", name, raw)
	}
	return value, nil
}
