package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/events-planner/internal/service"
	"github.com/labstack/echo/v4"
)

func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrParticipantExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
