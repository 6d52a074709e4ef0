package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Aisyah456/liblary-web/internal/app/models"
	"github.com/Aisyah456/liblary-web/internal/app/models/dto"
	"github.com/Aisyah456/liblary-web/internal/app/services"
	"github.com/Aisyah456/liblary-web/internal/middleware"
)

// MajorController handles major-related operations
type MajorController struct {
	majorService services.MajorService
}

// NewMajorController creates a new MajorController
func NewMajorController(majorService services.MajorService) *MajorController {
	return &MajorController{
		majorService: majorService,
	}
}

func majorFromRequest(facultyID int64, name string, level *string) *models.Major {
	major := &models.Major{
		FacultyID: facultyID,
		Name:      name,
	}
	if level != nil {
		l := models.MajorLevel(*level)
		major.Level = &l
	}
	return major
}

// CreateMajor handles major creation
// @Summary Create a new major
// @Description Creates a new major under an existing faculty
// @Tags majors
// @Accept json
// @Produce json
// @Param request body dto.CreateMajorRequest true "Major information"
// @Success 201 {object} models.Major "Major created successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /majors [post]
func (c *MajorController) CreateMajor(ctx *gin.Context) {
	var req dto.CreateMajorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	major := majorFromRequest(req.FacultyID, req.Name, req.Level)

	id, err := c.majorService.CreateMajor(ctx, major)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	major.ID = id

	ctx.JSON(http.StatusCreated, major)
}

// GetMajorByID retrieves a major by ID
// @Summary Get major by ID
// @Description Retrieves a specific major with its faculty attached
// @Tags majors
// @Produce json
// @Param id path int true "Major ID"
// @Success 200 {object} models.Major "Major retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid major ID"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Router /majors/{id} [get]
func (c *MajorController) GetMajorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	major, err := c.majorService.GetMajorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, major)
}

// GetAllMajors retrieves all majors
// @Summary Get all majors
// @Description Retrieves all majors, optionally filtered by faculty
// @Tags majors
// @Produce json
// @Param faculty_id query int false "Filter by faculty ID"
// @Success 200 {array} models.Major "Majors retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty_id filter"
// @Router /majors [get]
func (c *MajorController) GetAllMajors(ctx *gin.Context) {
	var facultyID int64
	if raw := ctx.Query("faculty_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "faculty_id must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		facultyID = parsed
	}

	majors, err := c.majorService.GetAllMajors(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, majors)
}

// UpdateMajor updates an existing major
// @Summary Update a major
// @Description Updates an existing major with the provided information
// @Tags majors
// @Accept json
// @Produce json
// @Param id path int true "Major ID"
// @Param request body dto.UpdateMajorRequest true "Updated major information"
// @Success 200 {object} models.Major "Major updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed request body"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /majors/{id} [put]
func (c *MajorController) UpdateMajor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMajorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	major := majorFromRequest(req.FacultyID, req.Name, req.Level)
	major.ID = id

	if err := c.majorService.UpdateMajor(ctx, major); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, major)
}

// DeleteMajor deletes a major
// @Summary Delete a major
// @Description Deletes a major that has no members assigned to it
// @Tags majors
// @Param id path int true "Major ID"
// @Success 204 "Major deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid major ID"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Failure 409 {object} dto.ErrorResponse "Major has assigned members"
// @Router /majors/{id} [delete]
func (c *MajorController) DeleteMajor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.majorService.DeleteMajor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
