package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ozank/academix/internal/app/models"
	"github.com/ozank/academix/internal/pkg/apperrors"
)

// In-memory repository fakes. They mirror the store contract closely
// enough for service-level behavior: sequential ids, summary population
// on enrollment/assignment and the same sentinel errors.

type fakeStudentRepo struct {
	nextID   int
	students map[string]*models.Student
	courses  map[string]models.CourseSummary
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		students: map[string]*models.Student{},
		courses:  map[string]models.CourseSummary{},
	}
}

func (r *fakeStudentRepo) GetAll(ctx context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (r *fakeStudentRepo) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	r.nextID++
	created := *student
	created.ID = fmt.Sprintf("student-%d", r.nextID)
	created.EnrolledCourses = []models.CourseSummary{}
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.students[created.ID] = &created
	return &created, nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, id string, update models.StudentUpdate) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.Email != nil {
		s.Email = *update.Email
	}
	if update.Phone != nil {
		s.Phone = *update.Phone
	}
	s.UpdatedAt = time.Now()
	return s, nil
}

func (r *fakeStudentRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.students[id]; !ok {
		return false, nil
	}
	delete(r.students, id)
	return true, nil
}

func (r *fakeStudentRepo) Enroll(ctx context.Context, studentID, courseID string) (*models.Student, error) {
	s, ok := r.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentOrCourseNotFound
	}
	course, ok := r.courses[courseID]
	if !ok {
		return nil, apperrors.ErrStudentOrCourseNotFound
	}
	for _, c := range s.EnrolledCourses {
		if c.ID == courseID {
			return s, nil
		}
	}
	s.EnrolledCourses = append(s.EnrolledCourses, course)
	return s, nil
}

func (r *fakeStudentRepo) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	for id, s := range r.students {
		if s.Email == email && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeFacultyRepo struct {
	nextID  int
	faculty map[string]*models.Faculty
	courses map[string]models.CourseSummary
	// courseFaculty models the single facultyId reference each course
	// carries; assignments overwrite it unconditionally.
	courseFaculty map[string]string
}

func newFakeFacultyRepo() *fakeFacultyRepo {
	return &fakeFacultyRepo{
		faculty:       map[string]*models.Faculty{},
		courses:       map[string]models.CourseSummary{},
		courseFaculty: map[string]string{},
	}
}

func (r *fakeFacultyRepo) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	out := make([]*models.Faculty, 0, len(r.faculty))
	for _, f := range r.faculty {
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFacultyRepo) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	f, ok := r.faculty[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return f, nil
}

func (r *fakeFacultyRepo) Create(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	r.nextID++
	created := *faculty
	created.ID = fmt.Sprintf("faculty-%d", r.nextID)
	created.AssignedCourses = []models.CourseSummary{}
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.faculty[created.ID] = &created
	return &created, nil
}

func (r *fakeFacultyRepo) Update(ctx context.Context, id string, update models.FacultyUpdate) (*models.Faculty, error) {
	f, ok := r.faculty[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	if update.Name != nil {
		f.Name = *update.Name
	}
	if update.Email != nil {
		f.Email = *update.Email
	}
	if update.Department != nil {
		f.Department = *update.Department
	}
	f.UpdatedAt = time.Now()
	return f, nil
}

func (r *fakeFacultyRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.faculty[id]; !ok {
		return false, nil
	}
	delete(r.faculty, id)
	return true, nil
}

func (r *fakeFacultyRepo) Assign(ctx context.Context, facultyID, courseID string) (*models.Faculty, error) {
	f, ok := r.faculty[facultyID]
	if !ok {
		return nil, apperrors.ErrFacultyOrCourseNotFound
	}
	course, ok := r.courses[courseID]
	if !ok {
		return nil, apperrors.ErrFacultyOrCourseNotFound
	}
	r.courseFaculty[courseID] = facultyID
	for _, c := range f.AssignedCourses {
		if c.ID == courseID {
			return f, nil
		}
	}
	f.AssignedCourses = append(f.AssignedCourses, course)
	return f, nil
}

func (r *fakeFacultyRepo) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	for id, f := range r.faculty {
		if f.Email == email && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeCourseRepo struct {
	nextID  int
	courses map[string]*models.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*models.Course{}}
}

func (r *fakeCourseRepo) GetAll(ctx context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (r *fakeCourseRepo) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	r.nextID++
	created := *course
	created.ID = fmt.Sprintf("course-%d", r.nextID)
	created.EnrolledStudents = []models.StudentSummary{}
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.courses[created.ID] = &created
	return &created, nil
}

func (r *fakeCourseRepo) Update(ctx context.Context, id string, update models.CourseUpdate) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Code != nil {
		c.Code = *update.Code
	}
	if update.Credits != nil {
		c.Credits = *update.Credits
	}
	c.UpdatedAt = time.Now()
	return c, nil
}

func (r *fakeCourseRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := r.courses[id]; !ok {
		return false, nil
	}
	delete(r.courses, id)
	return true, nil
}

func (r *fakeCourseRepo) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	for id, c := range r.courses {
		if c.Code == code && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
