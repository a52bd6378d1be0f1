package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "clubsite/internal/errors"
	"clubsite/internal/model"
)

// MockMemberService is a mock implementation of service.MemberService.
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) Create(ctx context.Context, member *model.TeamMember, photo []byte, filename, contentType string) (*model.TeamMember, error) {
	args := m.Called(ctx, member, photo, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockMemberService) List(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockMemberService) ListFeatured(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockMemberService) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.TeamMember, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

func (m *MockMemberService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// memberForm builds a multipart body with the given fields and an optional photo.
func memberForm(t *testing.T, fields map[string]string, photoName string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	if photoName != "" {
		part, err := w.CreateFormFile("photo", photoName)
		assert.NoError(t, err)
		_, err = part.Write(photo)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestCreateMemberMultipart(t *testing.T) {
	e := newTestEcho()
	svc := new(MockMemberService)
	h := NewTeamHandler(svc)

	photo := []byte("fake-jpeg-bytes")
	body, contentType := memberForm(t, map[string]string{
		"name":         "Aarav Mehta",
		"role":         "President",
		"isFeatured":   "true",
		"displayOrder": "3",
	}, "aarav.jpg", photo)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(m *model.TeamMember) bool {
		return m.Name == "Aarav Mehta" && m.Role == "President" && m.IsFeatured && m.DisplayOrder == 3
	}), photo, "aarav.jpg", mock.Anything).
		Return(&model.TeamMember{
			ID:       uuid.New(),
			Name:     "Aarav Mehta",
			ImageURL: "/uploads/1_aarav.jpg",
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/team", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.CreateMember(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp MemberResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "/uploads/1_aarav.jpg", resp.Member.ImageURL)
	svc.AssertExpectations(t)
}

func TestCreateMemberWithoutPhoto(t *testing.T) {
	e := newTestEcho()
	svc := new(MockMemberService)
	h := NewTeamHandler(svc)

	body, contentType := memberForm(t, map[string]string{
		"name": "Aarav Mehta",
		"role": "President",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/team", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.CreateMember(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateMemberMissingFields(t *testing.T) {
	e := newTestEcho()
	svc := new(MockMemberService)
	h := NewTeamHandler(svc)

	body, contentType := memberForm(t, map[string]string{
		"name": "Aarav Mehta",
	}, "aarav.jpg", []byte("photo"))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/team", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.CreateMember(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateMemberRejectsUnparseableFields(t *testing.T) {
	cases := []struct {
		name    string
		fields  map[string]string
		message string
	}{
		{
			"non-integer displayOrder",
			map[string]string{"name": "Aarav Mehta", "role": "President", "displayOrder": "abc"},
			"displayOrder",
		},
		{
			"non-boolean isFeatured",
			map[string]string{"name": "Aarav Mehta", "role": "President", "isFeatured": "yes"},
			"isFeatured",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			svc := new(MockMemberService)
			h := NewTeamHandler(svc)

			body, contentType := memberForm(t, tc.fields, "aarav.jpg", []byte("photo"))

			req := httptest.NewRequest(http.MethodPost, "/api/admin/team", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()

			assert.NoError(t, h.CreateMember(e.NewContext(req, rec)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp apperrors.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "VALIDATION_ERROR", resp.Code)
			assert.Contains(t, resp.Message, tc.message)
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateMemberPartial(t *testing.T) {
	e := newTestEcho()
	svc := new(MockMemberService)
	h := NewTeamHandler(svc)

	id := uuid.New()
	expected := map[string]interface{}{
		"is_featured":   true,
		"display_order": 1,
	}
	svc.On("Update", mock.Anything, id, expected).
		Return(&model.TeamMember{ID: id, IsFeatured: true, DisplayOrder: 1}, nil)

	req := httptest.NewRequest(http.MethodPut, "/", jsonBody(`{"isFeatured":true,"displayOrder":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	assert.NoError(t, h.UpdateMember(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdateMemberNotFound(t *testing.T) {
	e := newTestEcho()
	svc := new(MockMemberService)
	h := NewTeamHandler(svc)

	id := uuid.New()
	svc.On("Update", mock.Anything, id, mock.Anything).
		Return(nil, apperrors.ErrMemberNotFound)

	req := httptest.NewRequest(http.MethodPut, "/", jsonBody(`{"role":"Advisor"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	assert.NoError(t, h.UpdateMember(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFeaturedIsSubset(t *testing.T) {
	e := newTestEcho()
	svc := new(MockMemberService)
	h := NewTeamHandler(svc)

	all := []model.TeamMember{
		{ID: uuid.New(), Name: "Aarav", IsFeatured: true, DisplayOrder: 1},
		{ID: uuid.New(), Name: "Diya", IsFeatured: false, DisplayOrder: 2},
		{ID: uuid.New(), Name: "Rohan", IsFeatured: true, DisplayOrder: 3},
	}
	featured := []model.TeamMember{all[0], all[2]}

	svc.On("List", mock.Anything).Return(all, nil)
	svc.On("ListFeatured", mock.Anything).Return(featured, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/team", nil)
	rec := httptest.NewRecorder()
	assert.NoError(t, h.ListTeam(e.NewContext(req, rec)))
	var gotAll []model.TeamMember
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gotAll))

	req = httptest.NewRequest(http.MethodGet, "/api/team/featured", nil)
	rec = httptest.NewRecorder()
	assert.NoError(t, h.ListFeatured(e.NewContext(req, rec)))
	var gotFeatured []model.TeamMember
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gotFeatured))

	ids := map[uuid.UUID]bool{}
	for _, m := range gotAll {
		ids[m.ID] = true
	}
	for _, m := range gotFeatured {
		assert.True(t, ids[m.ID])
		assert.True(t, m.IsFeatured)
	}
	// Ordering ascends by displayOrder in both listings.
	for i := 1; i < len(gotAll); i++ {
		assert.LessOrEqual(t, gotAll[i-1].DisplayOrder, gotAll[i].DisplayOrder)
	}
	for i := 1; i < len(gotFeatured); i++ {
		assert.LessOrEqual(t, gotFeatured[i-1].DisplayOrder, gotFeatured[i].DisplayOrder)
	}
}

func TestDeleteMember(t *testing.T) {
	e := newTestEcho()
	svc := new(MockMemberService)
	h := NewTeamHandler(svc)

	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	assert.NoError(t, h.DeleteMember(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
