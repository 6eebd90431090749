package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/app/models/dto"
	"github.com/ozank/academix/internal/app/services"
	"github.com/ozank/academix/internal/middleware"
	"github.com/ozank/academix/internal/pkg/apperrors"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// GetFaculty retrieves all faculty members
// @Summary Get all faculty members
// @Description Retrieves all faculty members, most-recently-created first, with assigned course summaries
// @Tags faculty
// @Produce json
// @Success 200 {array} dto.FacultyResponse "Faculty retrieved successfully"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /faculty [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	faculty, err := c.facultyService.GetFaculty(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewFacultyListResponse(faculty))
}

// GetFacultyMember retrieves a faculty member by ID
// @Summary Get faculty member by ID
// @Description Retrieves a single faculty member with assigned course summaries
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.FacultyResponse "Faculty member retrieved successfully"
// @Failure 404 {object} dto.MessageResponse "Faculty not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyMember(ctx *gin.Context) {
	faculty, err := c.facultyService.GetFacultyMember(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewFacultyResponse(faculty))
}

// CreateFacultyMember handles faculty creation
// @Summary Create a new faculty member
// @Description Creates a faculty member with the provided information
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.FacultyResponse "Faculty member created successfully"
// @Failure 400 {object} dto.MessageResponse "Missing fields or duplicate email"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /faculty [post]
func (c *FacultyController) CreateFacultyMember(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrMissingFields)
		return
	}

	faculty, err := c.facultyService.CreateFacultyMember(ctx, &models.Faculty{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewFacultyResponse(faculty))
}

// UpdateFacultyMember handles partial faculty updates
// @Summary Update a faculty member
// @Description Updates only the supplied fields of a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Fields to update"
// @Success 200 {object} dto.FacultyResponse "Faculty member updated successfully"
// @Failure 400 {object} dto.MessageResponse "Invalid request body or duplicate email"
// @Failure 404 {object} dto.MessageResponse "Faculty not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFacultyMember(ctx *gin.Context) {
	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	faculty, err := c.facultyService.UpdateFacultyMember(ctx, ctx.Param("id"), models.FacultyUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewFacultyResponse(faculty))
}

// DeleteFacultyMember handles faculty deletion
// @Summary Delete a faculty member
// @Description Deletes a faculty member; course teaching references follow store semantics
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.DeleteResponse "Faculty member deleted successfully"
// @Failure 404 {object} dto.MessageResponse "Faculty not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFacultyMember(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.facultyService.DeleteFacultyMember(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{ID: id})
}

// AssignCourse assigns a course to a faculty member
// @Summary Assign a course to a faculty member
// @Description Records the assignment on the faculty member and makes them the course's teaching faculty; the last assignment wins
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID"
// @Param request body dto.AssignRequest true "Course to assign"
// @Success 200 {object} dto.FacultyResponse "Course assigned successfully"
// @Failure 400 {object} dto.MessageResponse "Missing course ID"
// @Failure 404 {object} dto.MessageResponse "Faculty or Course not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /faculty/{id}/assign [post]
func (c *FacultyController) AssignCourse(ctx *gin.Context) {
	var req dto.AssignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrMissingFields)
		return
	}

	faculty, err := c.facultyService.AssignCourse(ctx, ctx.Param("id"), req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewFacultyResponse(faculty))
}
