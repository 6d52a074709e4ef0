package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aisyah456/liblary-web/internal/app/models"
	"github.com/Aisyah456/liblary-web/internal/app/models/dto"
	"github.com/Aisyah456/liblary-web/internal/pkg/apperrors"
)

func newClearanceRouter(svc *fakeClearanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewClearanceController(svc)

	clearances := router.Group("/bebas_pustaka")
	clearances.GET("", controller.GetAllClearances)
	clearances.GET("/:id", controller.GetClearanceByID)
	clearances.POST("", controller.SubmitClearance)
	clearances.PUT("/:id", controller.ReviewClearance)
	clearances.DELETE("/:id", controller.DeleteClearance)
	return router
}

func TestClearanceController_Submit(t *testing.T) {
	submitted := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	svc := &fakeClearanceService{request: &models.ClearanceRequest{
		ID:          3,
		MemberID:    "2021001",
		SubmittedAt: submitted,
		Reason:      "Syarat wisuda",
		Status:      models.StatusSubmitted,
	}}
	router := newClearanceRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/bebas_pustaka",
		`{"member_id":"2021001","reason":"Syarat wisuda"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var request models.ClearanceRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &request))
	assert.EqualValues(t, 3, request.ID)
	assert.Equal(t, models.StatusSubmitted, request.Status)
	assert.Nil(t, request.ValidatedAt)
}

func TestClearanceController_Submit_MissingFields(t *testing.T) {
	router := newClearanceRouter(&fakeClearanceService{})

	rec := doRequest(t, router, http.MethodPost, "/bebas_pustaka", `{}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Contains(t, resp.Error.Fields, "member_id")
	assert.Contains(t, resp.Error.Fields, "reason")
}

func TestClearanceController_Submit_UnknownMember(t *testing.T) {
	svc := &fakeClearanceService{
		err: apperrors.NewValidationError().Add("member_id", "member does not exist"),
	}
	router := newClearanceRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/bebas_pustaka",
		`{"member_id":"9999999","reason":"Syarat wisuda"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, "member does not exist", resp.Error.Fields["member_id"])
}

func TestClearanceController_Review(t *testing.T) {
	validated := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	svc := &fakeClearanceService{request: &models.ClearanceRequest{
		ID:          3,
		MemberID:    "2021001",
		Reason:      "Syarat wisuda",
		Status:      models.StatusPassed,
		ValidatedAt: &validated,
	}}
	router := newClearanceRouter(svc)

	rec := doRequest(t, router, http.MethodPut, "/bebas_pustaka/3", `{"status":"Passed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var request models.ClearanceRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &request))
	assert.Equal(t, models.StatusPassed, request.Status)
	require.NotNil(t, request.ValidatedAt)
	assert.True(t, validated.Equal(*request.ValidatedAt))
}

func TestClearanceController_Review_InvalidStatus(t *testing.T) {
	router := newClearanceRouter(&fakeClearanceService{})

	rec := doRequest(t, router, http.MethodPut, "/bebas_pustaka/3", `{"status":"Rejected"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Contains(t, resp.Error.Fields, "status")
}

func TestClearanceController_Review_NotFound(t *testing.T) {
	router := newClearanceRouter(&fakeClearanceService{err: apperrors.ErrClearanceNotFound})

	rec := doRequest(t, router, http.MethodPut, "/bebas_pustaka/404", `{"status":"Pending"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearanceController_GetAll(t *testing.T) {
	svc := &fakeClearanceService{requests: []*models.ClearanceRequest{
		{ID: 1, MemberID: "2021001", Status: models.StatusSubmitted},
		{ID: 2, MemberID: "2021002", Status: models.StatusPassed},
	}}
	router := newClearanceRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/bebas_pustaka", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var requests []*models.ClearanceRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &requests))
	assert.Len(t, requests, 2)
}

func TestClearanceController_Delete(t *testing.T) {
	router := newClearanceRouter(&fakeClearanceService{})

	rec := doRequest(t, router, http.MethodDelete, "/bebas_pustaka/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestClearanceController_Delete_NotFound(t *testing.T) {
	router := newClearanceRouter(&fakeClearanceService{err: apperrors.ErrClearanceNotFound})

	rec := doRequest(t, router, http.MethodDelete, "/bebas_pustaka/404", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}
