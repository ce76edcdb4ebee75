package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
	"github.com/DrRobsonAmuiJr/ROE/internal/domain/dto"
)

// GetPartnerReport builds the referring-dentist comparison for two periods.
// Explicit ranges come from p1_start/p1_end/p2_start/p2_end; when absent the
// ?preset= window pair is used.
func (c *Controller) GetPartnerReport(ctx echo.Context) error {
	metric := metricParam(ctx)
	period1, period2, err := c.periodsFromQuery(ctx)
	if err != nil {
		return err
	}

	report, err := c.reports.PartnerReport(ctx.Request().Context(), metric, period1, period2)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}

func (c *Controller) GetDentists(ctx echo.Context) error {
	dentists, err := c.reports.Dentists(ctx.Request().Context(), metricParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dentists)
}

func (c *Controller) GetDentistReport(ctx echo.Context) error {
	metric := metricParam(ctx)
	period1, period2, err := c.periodsFromQuery(ctx)
	if err != nil {
		return err
	}

	report, err := c.reports.DentistReport(ctx.Request().Context(), metric, ctx.Param("name"), period1, period2)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}

func (c *Controller) GetPeriods(ctx echo.Context) error {
	pair, err := c.reports.Periods(ctx.QueryParams().Get("preset"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, pair)
}

// UploadPartnerBatch ingests an xlsx relation for one month and metric. The
// batch replaces whatever the month held before.
func (c *Controller) UploadPartnerBatch(ctx echo.Context) error {
	metric := ctx.FormValue("metric")
	if metric == "" {
		metric = domain.MetricValue
	}

	month, err := domain.ParseMonthKey(ctx.FormValue("year"), ctx.FormValue("month"))
	if err != nil {
		return err
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file").SetInternal(err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck

	meta, err := c.partners.Upload(ctx.Request().Context(), metric, month, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, meta)
}

func (c *Controller) GetUploads(ctx echo.Context) error {
	uploads, err := c.partners.Uploads(ctx.Request().Context(), metricParam(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, uploads)
}

func (c *Controller) PutDeclineReason(ctx echo.Context) error {
	var req dto.DeclineReasonRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	periodEnd, err := domain.ParseDate(req.PeriodEnd)
	if err != nil {
		return err
	}

	err = c.entries.SetDeclineReason(ctx.Request().Context(), periodEnd, req.DentistName, domain.DeclineReason(req.Reason))
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func metricParam(ctx echo.Context) string {
	metric := ctx.QueryParams().Get("metric")
	if metric == "" {
		metric = domain.MetricValue
	}
	return metric
}

func (c *Controller) periodsFromQuery(ctx echo.Context) (domain.DateRange, domain.DateRange, error) {
	params := ctx.QueryParams()
	if params.Get("p1_start") == "" {
		pair, err := c.reports.Periods(params.Get("preset"))
		if err != nil {
			return domain.DateRange{}, domain.DateRange{}, err
		}
		return pair.Analysis, pair.Comparison, nil
	}

	period1, err := domain.ParseDateRange(params.Get("p1_start"), params.Get("p1_end"))
	if err != nil {
		return domain.DateRange{}, domain.DateRange{}, err
	}
	period2, err := domain.ParseDateRange(params.Get("p2_start"), params.Get("p2_end"))
	if err != nil {
		return domain.DateRange{}, domain.DateRange{}, err
	}
	return period1, period2, nil
}
