package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/progress"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
)

// StudentDashboardService aggregates the student's course partition, progress
// and per-assignment acknowledgment state.
type StudentDashboardService interface {
	Dashboard(ctx context.Context, student models.User) (dto.StudentDashboardResponse, error)
	CourseAssignments(ctx context.Context, student models.User, courseID string) ([]dto.StudentAssignmentResponse, error)
}

type studentDashboardService struct {
	courses     repository.CourseRepository
	assignments repository.AssignmentRepository
	groups      repository.GroupRepository
	logger      zerolog.Logger
	now         func() time.Time
}

// NewStudentDashboardService builds a new student dashboard service.
func NewStudentDashboardService(courses repository.CourseRepository, assignments repository.AssignmentRepository, groups repository.GroupRepository, logger zerolog.Logger) StudentDashboardService {
	return &studentDashboardService{
		courses:     courses,
		assignments: assignments,
		groups:      groups,
		logger:      logger.With().Str("component", "student_dashboard_service").Logger(),
		now:         time.Now,
	}
}

// Dashboard partitions every course into enrolled and available for the
// student, with completion progress and pending counts on the enrolled half.
func (s *studentDashboardService) Dashboard(ctx context.Context, student models.User) (dto.StudentDashboardResponse, error) {
	if !student.IsStudent() {
		return dto.StudentDashboardResponse{}, ErrForbidden
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return dto.StudentDashboardResponse{}, err
	}

	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return dto.StudentDashboardResponse{}, err
	}

	byCourse := make(map[string][]models.Assignment)
	for _, assignment := range assignments {
		byCourse[assignment.CourseID] = append(byCourse[assignment.CourseID], assignment)
	}

	response := dto.StudentDashboardResponse{
		Enrolled:  []dto.StudentCourseResponse{},
		Available: []dto.CourseResponse{},
	}

	for _, course := range courses {
		if !course.HasStudent(student.Email) {
			response.Available = append(response.Available, dto.NewCourseResponse(course))
			continue
		}

		courseAssignments := byCourse[course.ID]
		response.Enrolled = append(response.Enrolled, dto.StudentCourseResponse{
			CourseResponse: dto.NewCourseResponse(course),
			Progress:       progress.CourseProgress(courseAssignments, student.Email),
			Pending:        progress.PendingCount(courseAssignments, student.Email),
		})
	}

	return response, nil
}

// CourseAssignments returns the student view of every assignment in a course
// the student is enrolled in: acknowledgment status, deadline urgency, and
// the action available to the student.
func (s *studentDashboardService) CourseAssignments(ctx context.Context, student models.User, courseID string) ([]dto.StudentAssignmentResponse, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if !course.HasStudent(student.Email) {
		return nil, ErrForbidden
	}

	assignments, err := s.assignments.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	groups, err := s.groups.ListForStudent(ctx, courseID, student.Email)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]dto.StudentAssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, dto.NewStudentAssignmentResponse(assignment, student.Email, groups, now))
	}

	return responses, nil
}
