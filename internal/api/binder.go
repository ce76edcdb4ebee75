package api

import (
	"github.com/labstack/echo/v4"

	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
)

// Binder binds the request body and runs struct validation in one step, so
// controllers get either a valid payload or a 400-coded error.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return constants.Invalidf("bind: %s", err.Error())
	}
	return c.Validate(i)
}
