package handler

import (
	"net/http"

	"github.com/Eursukkul/events-planner/internal/dto"
	"github.com/Eursukkul/events-planner/internal/service"
	"github.com/labstack/echo/v4"
)

type LogisticsHandler struct {
	svc service.AssociationService
}

func NewLogisticsHandler(svc service.AssociationService) *LogisticsHandler {
	return &LogisticsHandler{svc: svc}
}

func (h *LogisticsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/reserved", h.FindReserved)
}

// FindReserved answers 204 when an event in the range has no logistics at
// all, and 200 with a possibly empty list otherwise.
func (h *LogisticsHandler) FindReserved(c echo.Context) error {
	start, end := c.QueryParam("start"), c.QueryParam("end")
	startDate, err := dto.ParseDate(&start)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start date")
	}
	endDate, err := dto.ParseDate(&end)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end date")
	}

	items, err := h.svc.FindReservedLogistics(c.Request().Context(), startDate, endDate)
	if err != nil {
		return toHTTPError(err)
	}
	if items == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, dto.ToLogisticsResponses(items))
}
