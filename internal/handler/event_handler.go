package handler

import (
	"net/http"

	"github.com/Eursukkul/events-planner/internal/dto"
	"github.com/Eursukkul/events-planner/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	svc     service.AssociationService
	costSvc service.CostService
}

func NewEventHandler(svc service.AssociationService, costSvc service.CostService) *EventHandler {
	return &EventHandler{svc: svc, costSvc: costSvc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/participants", h.LinkAllParticipants)
	g.POST("/logistics", h.LinkLogistics)
	g.POST("/costs/recompute", h.RecomputeCosts)
}

func (h *EventHandler) LinkAllParticipants(c echo.Context) error {
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	event, err := req.ToModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.svc.LinkEventToAllItsParticipants(c.Request().Context(), event)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(saved))
}

func (h *EventHandler) LinkLogistics(c echo.Context) error {
	description := c.QueryParam("description")
	if description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description query parameter is required")
	}

	var req dto.LogisticsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UnitPrice < 0 || req.Quantity < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "unit_price and quantity must not be negative")
	}

	saved, err := h.svc.LinkLogisticsToEvent(c.Request().Context(), req.ToModel(), description)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToLogisticsResponse(saved))
}

// RecomputeCosts runs the cost job outside its schedule.
func (h *EventHandler) RecomputeCosts(c echo.Context) error {
	if err := h.costSvc.RecomputeCosts(c.Request().Context()); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "recomputed"})
}
