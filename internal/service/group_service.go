package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
)

// GroupService exposes group formation for group assignments. The owning
// professor forms groups; acknowledgment authorization then follows the
// group's leader (or its first member when no leader is designated).
type GroupService interface {
	Create(ctx context.Context, owner models.User, req dto.GroupCreateRequest) (dto.GroupResponse, error)
	SetLeader(ctx context.Context, owner models.User, assignmentID string, req dto.GroupSetLeaderRequest) (dto.GroupResponse, error)
	GetForAssignment(ctx context.Context, assignmentID string) (dto.GroupResponse, error)
}

type groupService struct {
	groups      repository.GroupRepository
	assignments repository.AssignmentRepository
	courses     repository.CourseRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewGroupService builds a new group service.
func NewGroupService(groups repository.GroupRepository, assignments repository.AssignmentRepository, courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) GroupService {
	return &groupService{
		groups:      groups,
		assignments: assignments,
		courses:     courses,
		validator:   validate,
		logger:      logger.With().Str("component", "group_service").Logger(),
	}
}

// Create forms the group for a group assignment. Each group assignment has at
// most one group; members must be enrolled students of the parent course.
func (s *groupService) Create(ctx context.Context, owner models.User, req dto.GroupCreateRequest) (dto.GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.GroupResponse{}, err
	}

	assignment, err := s.assignments.GetByID(ctx, req.AssignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.GroupResponse{}, ErrAssignmentNotFound
		}
		return dto.GroupResponse{}, err
	}

	if !assignment.IsGroup() {
		return dto.GroupResponse{}, fmt.Errorf("%w: assignment is not a group assignment", ErrValidation)
	}

	course, err := s.ownedCourse(ctx, owner, assignment.CourseID)
	if err != nil {
		return dto.GroupResponse{}, err
	}

	if _, err := s.groups.GetByAssignment(ctx, req.AssignmentID); err == nil {
		return dto.GroupResponse{}, ErrGroupExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return dto.GroupResponse{}, err
	}

	for _, member := range req.Members {
		if !course.HasStudent(member) {
			return dto.GroupResponse{}, fmt.Errorf("%w: %s is not enrolled in the course", ErrValidation, member)
		}
	}

	group := models.Group{
		CourseID:     course.ID,
		AssignmentID: assignment.ID,
		Members:      req.Members,
		Leader:       req.Leader,
	}

	if group.Leader != "" && !group.HasMember(group.Leader) {
		return dto.GroupResponse{}, fmt.Errorf("%w: leader must be a group member", ErrValidation)
	}

	if err := s.groups.Append(ctx, group); err != nil {
		return dto.GroupResponse{}, err
	}

	s.logger.Info().
		Str("assignment_id", assignment.ID).
		Int("members", len(group.Members)).
		Str("leader", group.EffectiveLeader()).
		Msg("group created")

	return dto.NewGroupResponse(group), nil
}

// SetLeader designates (or clears) the group leader. Clearing falls back to
// the first-member rule.
func (s *groupService) SetLeader(ctx context.Context, owner models.User, assignmentID string, req dto.GroupSetLeaderRequest) (dto.GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.GroupResponse{}, err
	}

	assignment, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.GroupResponse{}, ErrAssignmentNotFound
		}
		return dto.GroupResponse{}, err
	}

	if _, err := s.ownedCourse(ctx, owner, assignment.CourseID); err != nil {
		return dto.GroupResponse{}, err
	}

	group, err := s.groups.GetByAssignment(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.GroupResponse{}, ErrGroupNotFound
		}
		return dto.GroupResponse{}, err
	}

	if req.Leader != "" && !group.HasMember(req.Leader) {
		return dto.GroupResponse{}, fmt.Errorf("%w: leader must be a group member", ErrValidation)
	}

	updated, err := s.groups.SetLeader(ctx, assignmentID, req.Leader)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.GroupResponse{}, ErrGroupNotFound
		}
		return dto.GroupResponse{}, err
	}

	s.logger.Info().Str("assignment_id", assignmentID).Str("leader", updated.EffectiveLeader()).Msg("group leader updated")

	return dto.NewGroupResponse(updated), nil
}

// GetForAssignment returns the assignment's group.
func (s *groupService) GetForAssignment(ctx context.Context, assignmentID string) (dto.GroupResponse, error) {
	group, err := s.groups.GetByAssignment(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.GroupResponse{}, ErrGroupNotFound
		}
		return dto.GroupResponse{}, err
	}

	return dto.NewGroupResponse(group), nil
}

// ownedCourse loads the course and verifies the caller owns it.
func (s *groupService) ownedCourse(ctx context.Context, owner models.User, courseID string) (models.Course, error) {
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
