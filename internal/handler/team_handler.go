package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "clubsite/internal/errors"
	"clubsite/internal/model"
	"clubsite/internal/service"
)

// maxPhotoBytes caps team photo uploads at 5 MiB.
const maxPhotoBytes = 5 << 20

// TeamHandler handles public team listings and admin member management.
type TeamHandler struct {
	members service.MemberService
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(members service.MemberService) *TeamHandler {
	return &TeamHandler{members: members}
}

// CreateMemberForm represents the multipart fields of a member create. The
// photo file travels alongside, and isFeatured/displayOrder arrive as form
// strings that get coerced.
type CreateMemberForm struct {
	Name      string `form:"name" validate:"required,min=2"`
	Role      string `form:"role" validate:"required"`
	Instagram string `form:"instagram" validate:"omitempty,url"`
	LinkedIn  string `form:"linkedin" validate:"omitempty,url"`
}

// UpdateMemberRequest represents a partial member update. The photo is never
// replaced here; only the listed fields change.
type UpdateMemberRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2"`
	Role         *string `json:"role"`
	Instagram    *string `json:"instagram" validate:"omitempty,url"`
	LinkedIn     *string `json:"linkedin" validate:"omitempty,url"`
	IsFeatured   *bool   `json:"isFeatured"`
	DisplayOrder *int    `json:"displayOrder"`
}

// MemberResponse wraps a persisted team member.
type MemberResponse struct {
	Success bool              `json:"success"`
	Member  *model.TeamMember `json:"member"`
}

// ListTeam godoc
// @Summary List all team members
// @Tags team
// @Produce json
// @Success 200 {array} model.TeamMember
// @Failure 500 {object} errors.ErrorResponse
// @Router /team [get]
func (h *TeamHandler) ListTeam(c echo.Context) error {
	members, err := h.members.List(c.Request().Context())
	if err != nil {
		log.Printf("list team failed: %v", err)
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, members)
}

// ListFeatured godoc
// @Summary List featured team members
// @Tags team
// @Produce json
// @Success 200 {array} model.TeamMember
// @Failure 500 {object} errors.ErrorResponse
// @Router /team/featured [get]
func (h *TeamHandler) ListFeatured(c echo.Context) error {
	members, err := h.members.ListFeatured(c.Request().Context())
	if err != nil {
		log.Printf("list featured team failed: %v", err)
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, members)
}

// CreateMember godoc
// @Summary Create a team member with photo
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Member name"
// @Param role formData string true "Member role"
// @Param photo formData file true "Profile photo"
// @Success 201 {object} MemberResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/team [post]
func (h *TeamHandler) CreateMember(c echo.Context) error {
	var form CreateMemberForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid form data",
			Code:    "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: err.Error(),
			Code:    "VALIDATION_ERROR",
		})
	}

	// Booleans and integers arrive as form strings. An absent field keeps its
	// zero default; a present but unparseable one fails the request before
	// anything is stored.
	isFeatured := false
	if v := c.FormValue("isFeatured"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
				Success: false,
				Message: fmt.Sprintf("isFeatured must be a boolean, got %q", v),
				Code:    "VALIDATION_ERROR",
			})
		}
		isFeatured = parsed
	}
	displayOrder := 0
	if v := c.FormValue("displayOrder"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
				Success: false,
				Message: fmt.Sprintf("displayOrder must be an integer, got %q", v),
				Code:    "VALIDATION_ERROR",
			})
		}
		displayOrder = parsed
	}

	photo, filename, contentType, err := readPhoto(c)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	member := &model.TeamMember{
		Name:         form.Name,
		Role:         form.Role,
		Instagram:    form.Instagram,
		LinkedIn:     form.LinkedIn,
		IsFeatured:   isFeatured,
		DisplayOrder: displayOrder,
	}

	created, err := h.members.Create(c.Request().Context(), member, photo, filename, contentType)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			log.Printf("create member failed: %v", err)
		}
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, MemberResponse{Success: true, Member: created})
}

// ListMembers godoc
// @Summary List all team members (admin view)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TeamMember
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/team [get]
func (h *TeamHandler) ListMembers(c echo.Context) error {
	return h.ListTeam(c)
}

// UpdateMember godoc
// @Summary Update a team member
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param request body UpdateMemberRequest true "Fields to change"
// @Success 200 {object} MemberResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/team/{id} [put]
func (h *TeamHandler) UpdateMember(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid member id",
			Code:    "INVALID_ID",
		})
	}

	var req UpdateMemberRequest
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
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Instagram != nil {
		fields["instagram"] = *req.Instagram
	}
	if req.LinkedIn != nil {
		fields["linkedin"] = *req.LinkedIn
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		fields["display_order"] = *req.DisplayOrder
	}

	member, err := h.members.Update(c.Request().Context(), id, fields)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			log.Printf("update member %s failed: %v", id, err)
		}
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MemberResponse{Success: true, Member: member})
}

// DeleteMember godoc
// @Summary Delete a team member
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/team/{id} [delete]
func (h *TeamHandler) DeleteMember(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Success: false,
			Message: "invalid member id",
			Code:    "INVALID_ID",
		})
	}

	if err := h.members.Delete(c.Request().Context(), id); err != nil {
		he := apperrors.MapErrorToHTTP(err)
		if he.StatusCode == http.StatusInternalServerError {
			log.Printf("delete member %s failed: %v", id, err)
		}
		return c.JSON(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// readPhoto pulls the uploaded photo out of the multipart form.
func readPhoto(c echo.Context) (data []byte, filename, contentType string, err error) {
	file, err := c.FormFile("photo")
	if err != nil {
		return nil, "", "", apperrors.ErrPhotoRequired
	}
	if file.Size > maxPhotoBytes {
		return nil, "", "", apperrors.NewHTTPError(http.StatusBadRequest, "photo exceeds 5MB limit", "PHOTO_TOO_LARGE")
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer src.Close()

	data, err = io.ReadAll(io.LimitReader(src, maxPhotoBytes+1))
	if err != nil {
		return nil, "", "", err
	}
	if len(data) == 0 {
		return nil, "", "", apperrors.ErrPhotoRequired
	}

	return data, file.Filename, file.Header.Get("Content-Type"), nil
}
