package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
	"github.com/DrRobsonAmuiJr/ROE/internal/domain/dto"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
)

func (c *Controller) GetProspections(ctx echo.Context) error {
	prospections, err := c.entries.ListProspections(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, prospections)
}

func (c *Controller) CreateProspection(ctx echo.Context) error {
	var req dto.ProspectionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	meetingDate, err := domain.ParseDate(req.MeetingDate)
	if err != nil {
		return err
	}

	p, err := c.entries.AddProspection(ctx.Request().Context(), req.DentistName, meetingDate)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, p)
}

func (c *Controller) DeleteProspection(ctx echo.Context) error {
	raw := ctx.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return constants.Invalidf("bad id %q", raw)
	}

	if err := c.entries.DeleteProspection(ctx.Request().Context(), id); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
