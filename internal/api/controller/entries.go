package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
	"github.com/DrRobsonAmuiJr/ROE/internal/domain/dto"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
)

func (c *Controller) PutDailyEntry(ctx echo.Context) error {
	var req dto.DailyEntryRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return err
	}

	rec := domain.DailyRecord{
		Patients: req.Patients,
		Revenue:  req.Revenue,
		Docs:     req.Docs,
		Tomos:    req.Tomos,
	}
	if err := c.entries.SaveDailyEntry(ctx.Request().Context(), date, rec); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rec)
}

func (c *Controller) DeleteDailyEntry(ctx echo.Context) error {
	date, err := domain.ParseDate(ctx.Param("date"))
	if err != nil {
		return err
	}

	if err := c.entries.DeleteDailyEntry(ctx.Request().Context(), date); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) PutMonthlyFinancials(ctx echo.Context) error {
	key, err := domain.ParseMonthKey(ctx.Param("year"), ctx.Param("month"))
	if err != nil {
		return err
	}

	var req dto.MonthlyFinancialsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	rec := domain.MonthlyFinancialRecord{
		MonthlyRevenue: req.MonthlyRevenue,
		MonthlyProfit:  req.MonthlyProfit,
		Dividends:      req.Dividends,
		MonthlyReserve: req.MonthlyReserve,
	}
	if err := c.entries.SaveMonthlyFinancials(ctx.Request().Context(), key, rec); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rec)
}

func (c *Controller) DeleteMonthlyFinancials(ctx echo.Context) error {
	key, err := domain.ParseMonthKey(ctx.Param("year"), ctx.Param("month"))
	if err != nil {
		return err
	}

	if err := c.entries.DeleteMonthlyFinancials(ctx.Request().Context(), key); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) PutAnnualFinancials(ctx echo.Context) error {
	year, err := yearParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AnnualFinancialsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	rec := domain.AnnualFinancialRecord{
		RH:                  req.RH,
		Maintenance:         req.Maintenance,
		Material:            req.Material,
		Marketing:           req.Marketing,
		Operational:         req.Operational,
		Equipment:           req.Equipment,
		Interest:            req.Interest,
		Taxes:               req.Taxes,
		DividendsAccounting: req.DividendsAccounting,
		DividendsReal:       req.DividendsReal,
	}
	if err := c.entries.SaveAnnualFinancials(ctx.Request().Context(), year, rec); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rec)
}

func (c *Controller) DeleteAnnualFinancials(ctx echo.Context) error {
	year, err := yearParam(ctx)
	if err != nil {
		return err
	}

	if err := c.entries.DeleteAnnualFinancials(ctx.Request().Context(), year); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func yearParam(ctx echo.Context) (int, error) {
	raw := ctx.Param("year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, constants.Invalidf("bad year %q", raw)
	}
	return year, nil
}
