package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aisyah456/liblary-web/internal/app/models"
	"github.com/Aisyah456/liblary-web/internal/app/models/dto"
	"github.com/Aisyah456/liblary-web/internal/pkg/apperrors"
)

func newFacultyRouter(svc *fakeFacultyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewFacultyController(svc)

	faculties := router.Group("/faculties")
	faculties.GET("", controller.GetAllFaculties)
	faculties.GET("/:id", controller.GetFacultyByID)
	faculties.POST("", controller.CreateFaculty)
	faculties.PUT("/:id", controller.UpdateFaculty)
	faculties.DELETE("/:id", controller.DeleteFaculty)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) *dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return &resp
}

func TestFacultyController_Create(t *testing.T) {
	router := newFacultyRouter(&fakeFacultyService{createID: 7})

	rec := doRequest(t, router, http.MethodPost, "/faculties", `{"name":"Fakultas Teknik","abbreviation":"FT"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var faculty models.Faculty
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &faculty))
	assert.EqualValues(t, 7, faculty.ID)
	assert.Equal(t, "Fakultas Teknik", faculty.Name)
}

func TestFacultyController_Create_MissingName(t *testing.T) {
	router := newFacultyRouter(&fakeFacultyService{})

	rec := doRequest(t, router, http.MethodPost, "/faculties", `{"abbreviation":"FT"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error.Fields, "name")
}

func TestFacultyController_Create_MalformedJSON(t *testing.T) {
	router := newFacultyRouter(&fakeFacultyService{})

	rec := doRequest(t, router, http.MethodPost, "/faculties", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFacultyController_Create_DuplicateName(t *testing.T) {
	svc := &fakeFacultyService{
		createErr: apperrors.NewValidationError().Add("name", "name is already in use"),
	}
	router := newFacultyRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/faculties", `{"name":"Fakultas Teknik"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "name is already in use", resp.Error.Fields["name"])
}

func TestFacultyController_GetByID_NotFound(t *testing.T) {
	router := newFacultyRouter(&fakeFacultyService{err: apperrors.ErrFacultyNotFound})

	rec := doRequest(t, router, http.MethodGet, "/faculties/99", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestFacultyController_GetByID_NonNumericID(t *testing.T) {
	router := newFacultyRouter(&fakeFacultyService{})

	rec := doRequest(t, router, http.MethodGet, "/faculties/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFacultyController_GetAll(t *testing.T) {
	svc := &fakeFacultyService{faculties: []*models.Faculty{
		{ID: 1, Name: "Fakultas Teknik"},
		{ID: 2, Name: "Fakultas Hukum"},
	}}
	router := newFacultyRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/faculties", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var faculties []*models.Faculty
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &faculties))
	require.Len(t, faculties, 2)
	assert.Equal(t, "Fakultas Hukum", faculties[1].Name)
}

func TestFacultyController_Delete(t *testing.T) {
	router := newFacultyRouter(&fakeFacultyService{})

	rec := doRequest(t, router, http.MethodDelete, "/faculties/1", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestFacultyController_Delete_Blocked(t *testing.T) {
	router := newFacultyRouter(&fakeFacultyService{err: apperrors.ErrFacultyHasMajors})

	rec := doRequest(t, router, http.MethodDelete, "/faculties/1", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, dto.ErrorCodeResourceConflict, resp.Error.Code)
}

func TestFacultyController_Update_NotFound(t *testing.T) {
	router := newFacultyRouter(&fakeFacultyService{err: apperrors.ErrFacultyNotFound})

	rec := doRequest(t, router, http.MethodPut, "/faculties/12", `{"name":"Fakultas Teknik"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
