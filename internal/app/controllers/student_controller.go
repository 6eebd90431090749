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

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetStudents retrieves all students
// @Summary Get all students
// @Description Retrieves all students, most-recently-created first, with enrolled course summaries
// @Tags students
// @Produce json
// @Success 200 {array} dto.StudentResponse "Students retrieved successfully"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	students, err := c.studentService.GetStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStudentListResponse(students))
}

// GetStudent retrieves a student by ID
// @Summary Get student by ID
// @Description Retrieves a single student with enrolled course summaries
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.StudentResponse "Student retrieved successfully"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStudentResponse(student))
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a student with the provided information
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.StudentResponse "Student created successfully"
// @Failure 400 {object} dto.MessageResponse "Missing fields or duplicate email"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrMissingFields)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &models.Student{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStudentResponse(student))
}

// UpdateStudent handles partial student updates
// @Summary Update a student
// @Description Updates only the supplied fields of a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.StudentResponse "Student updated successfully"
// @Failure 400 {object} dto.MessageResponse "Invalid request body or duplicate email"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid request body"))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, ctx.Param("id"), models.StudentUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStudentResponse(student))
}

// DeleteStudent handles student deletion
// @Summary Delete a student
// @Description Deletes a student; enrollment references held by courses follow store semantics
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.DeleteResponse "Student deleted successfully"
// @Failure 404 {object} dto.MessageResponse "Student not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponse{ID: id})
}

// EnrollStudent enrolls a student in a course
// @Summary Enroll a student in a course
// @Description Records the enrollment on both the student and the course; enrolling twice is a no-op
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 200 {object} dto.StudentResponse "Student enrolled successfully"
// @Failure 400 {object} dto.MessageResponse "Missing course ID"
// @Failure 404 {object} dto.MessageResponse "Student or Course not found"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /students/{id}/enroll [post]
func (c *StudentController) EnrollStudent(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrMissingFields)
		return
	}

	student, err := c.studentService.EnrollStudent(ctx, ctx.Param("id"), req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStudentResponse(student))
}
