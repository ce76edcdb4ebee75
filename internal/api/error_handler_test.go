package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
)

func respondWith(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.JSONSerializer = sonicSerializer{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	httpErrorHandler(err, e.NewContext(req, rec))
	return rec
}

func TestHTTPErrorHandlerCodedErrors(t *testing.T) {
	rec := respondWith(t, constants.ErrDBNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")

	// a wrapped coded error keeps its status
	rec = respondWith(t, fmt.Errorf("store.LoadDailySnapshot: %w", constants.ErrDBNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = respondWith(t, constants.Invalidf("bad year %q", "x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPErrorHandlerFallback(t *testing.T) {
	rec := respondWith(t, fmt.Errorf("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = respondWith(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
