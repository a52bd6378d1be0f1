package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "clubsite/internal/errors"
	"clubsite/internal/service"
)

// submissionReceivedMessage is shown to visitors after a successful submission.
const submissionReceivedMessage = "Thank you for your message! We'll get back to you within 24 hours."

// ContactHandler handles the public contact form and the admin submission views.
type ContactHandler struct {
	submissions service.SubmissionService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(submissions service.SubmissionService) *ContactHandler {
	return &ContactHandler{submissions: submissions}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// ContactResponse confirms a stored submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Submit godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form fields"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
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

	submission, err := h.submissions.Submit(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		log.Printf("contact submission failed: %v", err)
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, ContactResponse{
		Success: true,
		Message: submissionReceivedMessage,
		ID:      submission.ID.String(),
	})
}

// ListSubmissions godoc
// @Summary List contact submissions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ContactSubmission
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/submissions [get]
func (h *ContactHandler) ListSubmissions(c echo.Context) error {
	submissions, err := h.submissions.List(c.Request().Context())
	if err != nil {
		log.Printf("list submissions failed: %v", err)
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, submissions)
}

// DeleteSubmission godoc
// @Summary Delete a contact submission
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/submissions/{id} [delete]
func (h *ContactHandler) DeleteSubmission(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid submission id",
			Code:    "INVALID_ID",
		})
	}

	if err := h.submissions.Delete(c.Request().Context(), id); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Dashboard godoc
// @Summary Admin dashboard stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *ContactHandler) Dashboard(c echo.Context) error {
	stats, err := h.submissions.Dashboard(c.Request().Context())
	if err != nil {
		log.Printf("dashboard stats failed: %v", err)
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}
