package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Eursukkul/events-planner/internal/dto"
	"github.com/Eursukkul/events-planner/internal/models"
	"github.com/Eursukkul/events-planner/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPCode(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	assert.Equal(t, code, he.Code)
}

func TestRegisterParticipant_Handler_Success(t *testing.T) {
	svc := &mockAssociationService{
		registerFn: func(ctx context.Context, p *models.Participant) (*models.Participant, error) {
			return p, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/v1/participants", `{"id":1,"name":"Tounsi","surname":"Ahmed","role":"ORGANIZER"}`)

	err := NewParticipantHandler(svc).RegisterParticipant(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.ParticipantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "ORGANIZER", resp.Role)
	assert.Empty(t, resp.Events)
}

func TestRegisterParticipant_Handler_InvalidRole(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/v1/participants", `{"id":1,"name":"Tounsi","surname":"Ahmed","role":"GUEST"}`)

	err := NewParticipantHandler(&mockAssociationService{}).RegisterParticipant(c)

	assertHTTPCode(t, err, http.StatusBadRequest)
}

func TestRegisterParticipant_Handler_MissingName(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/v1/participants", `{"id":1,"surname":"Ahmed","role":"INVITEE"}`)

	err := NewParticipantHandler(&mockAssociationService{}).RegisterParticipant(c)

	assertHTTPCode(t, err, http.StatusBadRequest)
}

func TestRegisterParticipant_Handler_Conflict(t *testing.T) {
	svc := &mockAssociationService{
		registerFn: func(ctx context.Context, p *models.Participant) (*models.Participant, error) {
			return nil, fmt.Errorf("%w: id %d", service.ErrParticipantExists, p.ID)
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/v1/participants", `{"id":1,"name":"Tounsi","surname":"Ahmed","role":"SPEAKER"}`)

	err := NewParticipantHandler(svc).RegisterParticipant(c)

	assertHTTPCode(t, err, http.StatusConflict)
}

func TestLinkEvent_Handler_Success(t *testing.T) {
	var gotID int
	svc := &mockAssociationService{
		linkEventFn: func(ctx context.Context, e *models.Event, participantID int) (*models.Event, error) {
			gotID = participantID
			return e, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/v1/participants/7/events", `{"id":101,"description":"Annual conference","start_date":"2023-01-10","end_date":"2023-01-12"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := NewParticipantHandler(svc).LinkEvent(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, gotID)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 101, resp.ID)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2023-01-10", *resp.StartDate)
}

func TestLinkEvent_Handler_InvalidID(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/v1/participants/abc/events", `{"id":1}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := NewParticipantHandler(&mockAssociationService{}).LinkEvent(c)

	assertHTTPCode(t, err, http.StatusBadRequest)
}

func TestLinkEvent_Handler_InvalidDate(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/v1/participants/1/events", `{"id":1,"start_date":"10/01/2023"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := NewParticipantHandler(&mockAssociationService{}).LinkEvent(c)

	assertHTTPCode(t, err, http.StatusBadRequest)
}

func TestLinkEvent_Handler_ParticipantNotFound(t *testing.T) {
	svc := &mockAssociationService{
		linkEventFn: func(ctx context.Context, e *models.Event, participantID int) (*models.Event, error) {
			return nil, fmt.Errorf("%w: id %d", service.ErrParticipantNotFound, participantID)
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/v1/participants/50/events", `{"id":1}`)
	c.SetParamNames("id")
	c.SetParamValues("50")

	err := NewParticipantHandler(svc).LinkEvent(c)

	assertHTTPCode(t, err, http.StatusNotFound)
}

func TestLinkEvent_Handler_InternalError(t *testing.T) {
	svc := &mockAssociationService{
		linkEventFn: func(ctx context.Context, e *models.Event, participantID int) (*models.Event, error) {
			return nil, errors.New("db error")
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/v1/participants/1/events", `{"id":1}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := NewParticipantHandler(svc).LinkEvent(c)

	assertHTTPCode(t, err, http.StatusInternalServerError)
}
