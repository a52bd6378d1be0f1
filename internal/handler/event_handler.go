package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "clubsite/internal/errors"
	"clubsite/internal/model"
	"clubsite/internal/service"
)

// EventHandler handles public event listing and admin event management.
type EventHandler struct {
	events service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// CreateEventRequest represents an event create payload. Date arrives as a
// string from the admin form and is coerced server-side.
type CreateEventRequest struct {
	Title            string `json:"title" validate:"required"`
	Date             string `json:"date" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Status           string `json:"status" validate:"required,oneof=upcoming past"`
	RegistrationLink string `json:"registrationLink" validate:"omitempty,url"`
	Summary          string `json:"summary"`
	Image            string `json:"image"`
}

// UpdateEventRequest represents a partial event update. Absent fields are
// left untouched.
type UpdateEventRequest struct {
	Title            *string `json:"title"`
	Date             *string `json:"date"`
	Description      *string `json:"description"`
	Status           *string `json:"status" validate:"omitempty,oneof=upcoming past"`
	RegistrationLink *string `json:"registrationLink" validate:"omitempty,url"`
	Summary          *string `json:"summary"`
	Image            *string `json:"image"`
}

// EventResponse wraps a persisted event.
type EventResponse struct {
	Success bool         `json:"success"`
	Event   *model.Event `json:"event"`
}

// eventDateLayouts are the accepted transport encodings for event dates.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseEventDate(value string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Failure 500 {object} errors.ErrorResponse
// @Router /events [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.events.List(c.Request().Context())
	if err != nil {
		log.Printf("list events failed: %v", err)
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventRequest true "Event fields"
// @Success 201 {object} EventResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    "INVALID_DATE",
		})
	}

	event := &model.Event{
		Title:            req.Title,
		Date:             date,
		Description:      req.Description,
		Status:           model.EventStatus(req.Status),
		RegistrationLink: req.RegistrationLink,
		Summary:          req.Summary,
		Image:            req.Image,
	}

	created, err := h.events.Create(c.Request().Context(), event)
	if err != nil {
		log.Printf("create event failed: %v", err)
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, EventResponse{Success: true, Event: created})
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body UpdateEventRequest true "Fields to change"
// @Success 200 {object} EventResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [put]
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid event id",
			Code:    "INVALID_ID",
		})
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
				Success: false,
				Message: err.Error(),
				Code:    "INVALID_DATE",
			})
		}
		fields["date"] = date
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = model.EventStatus(*req.Status)
	}
	if req.RegistrationLink != nil {
		fields["registration_link"] = *req.RegistrationLink
	}
	if req.Summary != nil {
		fields["summary"] = *req.Summary
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	event, err := h.events.Update(c.Request().Context(), id, fields)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			log.Printf("update event %s failed: %v", id, err)
		}
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, EventResponse{Success: true, Event: event})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/events/{id} [delete]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid event id",
			Code:    "INVALID_ID",
		})
	}

	if err := h.events.Delete(c.Request().Context(), id); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			log.Printf("delete event %s failed: %v", id, err)
		}
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
