package handler

import (
	"net/http"
	"strconv"

	"github.com/Eursukkul/events-planner/internal/dto"
	"github.com/Eursukkul/events-planner/internal/models"
	"github.com/Eursukkul/events-planner/internal/service"
	"github.com/labstack/echo/v4"
)

type ParticipantHandler struct {
	svc service.AssociationService
}

func NewParticipantHandler(svc service.AssociationService) *ParticipantHandler {
	return &ParticipantHandler{svc: svc}
}

func (h *ParticipantHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.RegisterParticipant)
	g.POST("/:id/events", h.LinkEvent)
}

func (h *ParticipantHandler) RegisterParticipant(c echo.Context) error {
	var req dto.RegisterParticipantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Surname == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and surname are required")
	}
	if !models.Role(req.Role).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be one of ORGANIZER, INVITEE, SPEAKER")
	}

	participant, err := h.svc.RegisterParticipant(c.Request().Context(), req.ToModel())
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

func (h *ParticipantHandler) LinkEvent(c echo.Context) error {
	participantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid participant id")
	}

	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	event, err := req.ToModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.svc.LinkEventToParticipant(c.Request().Context(), event, participantID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(saved))
}
