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

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetCourses retrieves all courses
// @Summary Get all courses
// @Description Retrieves all courses, most-recently-created first, with faculty and enrolled student summaries
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponse "Courses retrieved successfully"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewCourseListResponse(courses))
}

// GetCourse retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a single course with faculty and enrolled student summaries
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.CourseResponse "Course retrieved successfully"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course with no faculty and an empty enrollment set
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CourseResponse "Course created successfully"
// @Failure 400 {object} dto.MessageResponse "Missing fields or duplicate code"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrMissingFields)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &models.Course{
		Name:    req.Name,
		Code:    req.Code,
		Credits: req.Credits,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCourseResponse(course))
}

// UpdateCourse handles partial course updates
// @Summary Update a course
// @Description Updates only the supplied fields of a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.CourseResponse "Course updated successfully"
// @Failure 400 {object} dto.MessageResponse "Invalid request body or duplicate code"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, ctx.Param("id"), models.CourseUpdate{
		Name:    req.Name,
		Code:    req.Code,
		Credits: req.Credits,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// DeleteCourse handles course deletion
// @Summary Delete a course
// @Description Deletes a course; enrollment and assignment references held by other entities follow store semantics
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.DeleteResponse "Course deleted successfully"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{ID: id})
}
