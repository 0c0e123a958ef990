package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
)

// CourseService exposes course creation and enrollment use cases.
type CourseService interface {
	Create(ctx context.Context, owner models.User, req dto.CourseCreateRequest) (dto.CourseResponse, error)
	ListForProfessor(ctx context.Context, email string) ([]dto.CourseResponse, error)
	ListAll(ctx context.Context) ([]dto.CourseResponse, error)
	Enroll(ctx context.Context, courseID string, student models.User) (dto.CourseResponse, error)
}

type courseService struct {
	courses   repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCourseService builds a new course service.
func NewCourseService(courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		courses:   courses,
		validator: validate,
		logger:    logger.With().Str("component", "course_service").Logger(),
	}
}

// Create registers a new course owned by the professor. Only professors may
// create courses.
func (s *courseService) Create(ctx context.Context, owner models.User, req dto.CourseCreateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.CourseResponse{}, err
	}

	if !owner.IsProfessor() {
		return dto.CourseResponse{}, ErrForbidden
	}

	course := models.Course{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		Professor:      owner.Name,
		ProfessorEmail: owner.Email,
		Students:       []string{},
	}

	if err := s.courses.Append(ctx, course); err != nil {
		return dto.CourseResponse{}, err
	}

	s.logger.Info().Str("course_id", course.ID).Str("professor", owner.Email).Msg("course created")

	return dto.NewCourseResponse(course), nil
}

// ListForProfessor returns the courses owned by the given professor email.
func (s *courseService) ListForProfessor(ctx context.Context, email string) ([]dto.CourseResponse, error) {
	courses, err := s.courses.ListByProfessor(ctx, email)
	if err != nil {
		return nil, err
	}

	return dto.NewCourseResponseSlice(courses), nil
}

// ListAll returns every course; students use it to compute the
// enrolled/available partition.
func (s *courseService) ListAll(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewCourseResponseSlice(courses), nil
}

// Enroll adds the student to the course roster. Idempotent: enrolling twice
// leaves a single roster entry. Only student accounts may enroll, which keeps
// the roster free of professor emails.
func (s *courseService) Enroll(ctx context.Context, courseID string, student models.User) (dto.CourseResponse, error) {
	if !student.IsStudent() {
		return dto.CourseResponse{}, ErrForbidden
	}

	course, err := s.courses.Enroll(ctx, courseID, student.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.CourseResponse{}, ErrCourseNotFound
		}
		return dto.CourseResponse{}, err
	}

	s.logger.Info().Str("course_id", courseID).Str("student", student.Email).Msg("student enrolled")

	return dto.NewCourseResponse(course), nil
}
