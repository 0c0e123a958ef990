package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/progress"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
)

// ProfessorDashboardService aggregates per-course stats for the professor's
// landing view.
type ProfessorDashboardService interface {
	Dashboard(ctx context.Context, professor models.User) (dto.ProfessorDashboardResponse, error)
}

type professorDashboardService struct {
	courses     repository.CourseRepository
	assignments repository.AssignmentRepository
	logger      zerolog.Logger
}

// NewProfessorDashboardService builds a new professor dashboard service.
func NewProfessorDashboardService(courses repository.CourseRepository, assignments repository.AssignmentRepository, logger zerolog.Logger) ProfessorDashboardService {
	return &professorDashboardService{
		courses:     courses,
		assignments: assignments,
		logger:      logger.With().Str("component", "professor_dashboard_service").Logger(),
	}
}

// Dashboard returns the professor's courses with assignment, roster and
// submission counts.
func (s *professorDashboardService) Dashboard(ctx context.Context, professor models.User) (dto.ProfessorDashboardResponse, error) {
	if !professor.IsProfessor() {
		return dto.ProfessorDashboardResponse{}, ErrForbidden
	}

	courses, err := s.courses.ListByProfessor(ctx, professor.Email)
	if err != nil {
		return dto.ProfessorDashboardResponse{}, err
	}

	// One collection read covers every course on the dashboard.
	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return dto.ProfessorDashboardResponse{}, err
	}

	byCourse := make(map[string][]models.Assignment, len(courses))
	for _, assignment := range assignments {
		byCourse[assignment.CourseID] = append(byCourse[assignment.CourseID], assignment)
	}

	response := dto.ProfessorDashboardResponse{Courses: make([]dto.ProfessorCourseResponse, 0, len(courses))}
	for _, course := range courses {
		courseAssignments := byCourse[course.ID]

		withSubmissions := 0
		for _, assignment := range courseAssignments {
			if progress.HasSubmissions(assignment) {
				withSubmissions++
			}
		}

		response.Courses = append(response.Courses, dto.ProfessorCourseResponse{
			CourseResponse: dto.NewCourseResponse(course),
			Stats: dto.CourseStats{
				Assignments:     len(courseAssignments),
				Students:        len(course.Students),
				WithSubmissions: withSubmissions,
			},
		})
	}

	return response, nil
}
