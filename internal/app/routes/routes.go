package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ozank/academix/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	courseController *controllers.CourseController,
) {
	api := router.Group("/api")

	// Student routes
	students := api.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudent)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.POST("/:id/enroll", studentController.EnrollStudent)
	}

	// Faculty routes
	faculty := api.Group("/faculty")
	{
		faculty.GET("", facultyController.GetFaculty)
		faculty.GET("/:id", facultyController.GetFacultyMember)
		faculty.POST("", facultyController.CreateFacultyMember)
		faculty.PUT("/:id", facultyController.UpdateFacultyMember)
		faculty.DELETE("/:id", facultyController.DeleteFacultyMember)
		faculty.POST("/:id/assign", facultyController.AssignCourse)
	}

	// Course routes
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}
}
