package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/progress"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
)

// Assignment list filter states, matching the management view's dropdown.
const (
	FilterAll       = "all"
	FilterSubmitted = "submitted"
	FilterPending   = "pending"
)

// AssignmentListFilter narrows the management listing.
type AssignmentListFilter struct {
	Status string
	Search string
}

// AssignmentService exposes the professor-facing assignment use cases.
type AssignmentService interface {
	Create(ctx context.Context, owner models.User, courseID string, req dto.AssignmentCreateRequest) (dto.AssignmentResponse, error)
	Update(ctx context.Context, owner models.User, id string, req dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error)
	Delete(ctx context.Context, owner models.User, id string) error
	ListForCourse(ctx context.Context, owner models.User, courseID string, filter AssignmentListFilter) ([]dto.AssignmentResponse, error)
}

type assignmentService struct {
	assignments repository.AssignmentRepository
	courses     repository.CourseRepository
	validator   *validator.Validate
	sanitizer   *bluemonday.Policy
	logger      zerolog.Logger
	now         func() time.Time
}

// NewAssignmentService builds a new assignment service.
func NewAssignmentService(assignments repository.AssignmentRepository, courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		courses:     courses,
		validator:   validate,
		sanitizer:   bluemonday.UGCPolicy(),
		logger:      logger.With().Str("component", "assignment_service").Logger(),
		now:         time.Now,
	}
}

// Create adds an assignment to a course the caller owns. Title and deadline
// are required; description is sanitized before it is persisted.
func (s *assignmentService) Create(ctx context.Context, owner models.User, courseID string, req dto.AssignmentCreateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AssignmentResponse{}, err
	}

	course, err := s.ownedCourse(ctx, owner, courseID)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return dto.AssignmentResponse{}, fmt.Errorf("%w: invalid deadline", ErrValidation)
	}

	assignment := models.Assignment{
		ID:              uuid.NewString(),
		CourseID:        course.ID,
		Title:           strings.TrimSpace(req.Title),
		Description:     s.sanitizer.Sanitize(req.Description),
		Deadline:        deadline,
		Link:            strings.TrimSpace(req.Link),
		Type:            req.Type,
		Acknowledgments: []models.Acknowledgment{},
		GroupMembers:    []string{},
		CreatedAt:       s.now(),
	}

	if err := s.assignments.Append(ctx, assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().Str("assignment_id", assignment.ID).Str("course_id", course.ID).Str("type", assignment.Type).Msg("assignment created")

	return dto.NewAssignmentResponse(assignment, course), nil
}

// Update overwrites title, description, deadline, link and type only. A type
// change is rejected once any acknowledgment state exists, because the two
// acknowledgment field groups are not convertible.
func (s *assignmentService) Update(ctx context.Context, owner models.User, id string, req dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.AssignmentResponse{}, err
	}

	current, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	course, err := s.ownedCourse(ctx, owner, current.CourseID)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	var deadline *time.Time
	if req.Deadline != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return dto.AssignmentResponse{}, fmt.Errorf("%w: invalid deadline", ErrValidation)
		}
		deadline = &parsed
	}

	updated, err := s.assignments.Mutate(ctx, id, func(a *models.Assignment) error {
		if req.Type != nil && *req.Type != a.Type && a.HasAcknowledgmentState() {
			return fmt.Errorf("%w: cannot change type after acknowledgments exist", ErrValidation)
		}

		if req.Title != nil {
			a.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			a.Description = s.sanitizer.Sanitize(*req.Description)
		}
		if deadline != nil {
			a.Deadline = *deadline
		}
		if req.Link != nil {
			a.Link = strings.TrimSpace(*req.Link)
		}
		if req.Type != nil {
			a.Type = *req.Type
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().Str("assignment_id", id).Msg("assignment updated")

	return dto.NewAssignmentResponse(updated, course), nil
}

// Delete removes an assignment owned by the caller.
func (s *assignmentService) Delete(ctx context.Context, owner models.User, id string) error {
	current, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}

	if _, err := s.ownedCourse(ctx, owner, current.CourseID); err != nil {
		return err
	}

	if err := s.assignments.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}

	s.logger.Info().Str("assignment_id", id).Msg("assignment deleted")
	return nil
}

// ListForCourse returns the course's assignments for the management view,
// optionally narrowed by submission status and a title/description search.
func (s *assignmentService) ListForCourse(ctx context.Context, owner models.User, courseID string, filter AssignmentListFilter) ([]dto.AssignmentResponse, error) {
	course, err := s.ownedCourse(ctx, owner, courseID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignments.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Assignment, 0, len(assignments))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, assignment := range assignments {
		switch filter.Status {
		case FilterSubmitted:
			if !progress.HasSubmissions(assignment) {
				continue
			}
		case FilterPending:
			if progress.HasSubmissions(assignment) {
				continue
			}
		}

		if search != "" {
			title := strings.ToLower(assignment.Title)
			desc := strings.ToLower(assignment.Description)
			if !strings.Contains(title, search) && !strings.Contains(desc, search) {
				continue
			}
		}

		filtered = append(filtered, assignment)
	}

	return dto.NewAssignmentResponseSlice(filtered, course), nil
}

// ownedCourse loads the course and verifies the caller owns it.
func (s *assignmentService) ownedCourse(ctx context.Context, owner models.User, courseID string) (models.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, err
	}

	if !course.OwnedBy(owner.Email) {
		return models.Course{}, ErrForbidden
	}

	return course, nil
}
