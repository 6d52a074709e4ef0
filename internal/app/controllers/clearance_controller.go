package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aisyah456/liblary-web/internal/app/models/dto"
	"github.com/Aisyah456/liblary-web/internal/app/services"
	"github.com/Aisyah456/liblary-web/internal/middleware"
)

// ClearanceController handles library clearance (bebas pustaka) requests
type ClearanceController struct {
	clearanceService services.ClearanceService
}

// NewClearanceController creates a new ClearanceController
func NewClearanceController(clearanceService services.ClearanceService) *ClearanceController {
	return &ClearanceController{
		clearanceService: clearanceService,
	}
}

// SubmitClearance handles a new clearance request
// @Summary Submit a clearance request
// @Description Submits a new clearance request for a member. Status and submission time are set by the server.
// @Tags clearance
// @Accept json
// @Produce json
// @Param request body dto.SubmitClearanceRequest true "Clearance request"
// @Success 201 {object} models.ClearanceRequest "Request submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /bebas_pustaka [post]
func (c *ClearanceController) SubmitClearance(ctx *gin.Context) {
	var req dto.SubmitClearanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	request, err := c.clearanceService.Submit(ctx, req.MemberID, req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, request)
}

// GetClearanceByID retrieves a clearance request by ID
// @Summary Get clearance request by ID
// @Description Retrieves a clearance request with its member, major and faculty resolved
// @Tags clearance
// @Produce json
// @Param id path int true "Clearance request ID"
// @Success 200 {object} models.ClearanceRequest "Request retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /bebas_pustaka/{id} [get]
func (c *ClearanceController) GetClearanceByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	request, err := c.clearanceService.GetClearanceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, request)
}

// GetAllClearances retrieves all clearance requests
// @Summary Get all clearance requests
// @Description Retrieves every clearance request with member, major and faculty resolved
// @Tags clearance
// @Produce json
// @Success 200 {array} models.ClearanceRequest "Requests retrieved successfully"
// @Router /bebas_pustaka [get]
func (c *ClearanceController) GetAllClearances(ctx *gin.Context) {
	requests, err := c.clearanceService.GetAllClearances(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// ReviewClearance applies a review update to a clearance request
// @Summary Review a clearance request
// @Description Updates the supplied fields of a request. Moving into Passed stamps the validation time once.
// @Tags clearance
// @Accept json
// @Produce json
// @Param id path int true "Clearance request ID"
// @Param request body dto.ReviewClearanceRequest true "Review update"
// @Success 200 {object} models.ClearanceRequest "Request updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /bebas_pustaka/{id} [put]
func (c *ClearanceController) ReviewClearance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ReviewClearanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	request, err := c.clearanceService.Review(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, request)
}

// DeleteClearance deletes a clearance request
// @Summary Delete a clearance request
// @Description Removes a clearance request by its ID
// @Tags clearance
// @Param id path int true "Clearance request ID"
// @Success 204 "Request deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Router /bebas_pustaka/{id} [delete]
func (c *ClearanceController) DeleteClearance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.clearanceService.DeleteClearance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
