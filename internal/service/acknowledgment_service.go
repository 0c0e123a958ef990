package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/observability"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
)

// AcknowledgmentService drives the assignment acknowledgment state machine:
// Unacknowledged to Acknowledged, terminal, with per-student transitions for
// individual assignments and a single leader-gated transition for group ones.
type AcknowledgmentService interface {
	Acknowledge(ctx context.Context, student models.User, assignmentID string) (dto.AcknowledgmentStatus, error)
}

type acknowledgmentService struct {
	assignments repository.AssignmentRepository
	courses     repository.CourseRepository
	groups      repository.GroupRepository
	logger      zerolog.Logger
	tracer      trace.Tracer
	now         func() time.Time
}

// NewAcknowledgmentService builds a new acknowledgment service.
func NewAcknowledgmentService(assignments repository.AssignmentRepository, courses repository.CourseRepository, groups repository.GroupRepository, logger zerolog.Logger) AcknowledgmentService {
	return &acknowledgmentService{
		assignments: assignments,
		courses:     courses,
		groups:      groups,
		logger:      logger.With().Str("component", "acknowledgment_service").Logger(),
		tracer:      otel.Tracer("github.com/noah-isme/joineazy-go-api/internal/service/acknowledgment"),
		now:         time.Now,
	}
}

// Acknowledge records the student's completion declaration. Individual
// assignments transition per student and are idempotent; group assignments
// transition once, for the whole group, and only the effective leader may do
// it. Re-running a finalized group acknowledgment fails as already-final.
func (s *acknowledgmentService) Acknowledge(ctx context.Context, student models.User, assignmentID string) (dto.AcknowledgmentStatus, error) {
	ctx, span := s.tracer.Start(ctx, "acknowledgment.acknowledge")
	defer span.End()
	span.SetAttributes(
		attribute.String("assignment.id", assignmentID),
		attribute.String("student.email", student.Email),
	)

	assignment, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			span.SetStatus(codes.Error, "assignment not found")
			return dto.AcknowledgmentStatus{}, ErrAssignmentNotFound
		}
		span.RecordError(err)
		return dto.AcknowledgmentStatus{}, err
	}

	course, err := s.courses.GetByID(ctx, assignment.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.AcknowledgmentStatus{}, ErrCourseNotFound
		}
		return dto.AcknowledgmentStatus{}, err
	}

	if !course.HasStudent(student.Email) {
		span.SetStatus(codes.Error, "not enrolled")
		observability.AcknowledgmentOutcomes().WithLabelValues(assignment.Type, "forbidden").Inc()
		return dto.AcknowledgmentStatus{}, ErrForbidden
	}

	if assignment.IsGroup() {
		return s.acknowledgeGroup(ctx, span, student, assignment)
	}

	return s.acknowledgeIndividual(ctx, span, student, assignmentID)
}

func (s *acknowledgmentService) acknowledgeIndividual(ctx context.Context, span trace.Span, student models.User, assignmentID string) (dto.AcknowledgmentStatus, error) {
	when := s.now()
	var status dto.AcknowledgmentStatus

	_, err := s.assignments.Mutate(ctx, assignmentID, func(a *models.Assignment) error {
		for _, ack := range a.Acknowledgments {
			if ack.Email == student.Email {
				// Re-acknowledging is a no-op, not an error.
				ts := ack.Timestamp
				status = dto.AcknowledgmentStatus{Acknowledged: true, Timestamp: &ts}
				return nil
			}
		}

		a.Acknowledgments = append(a.Acknowledgments, models.Acknowledgment{Email: student.Email, Timestamp: when})
		status = dto.AcknowledgmentStatus{Acknowledged: true, Timestamp: &when}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.AcknowledgmentStatus{}, ErrAssignmentNotFound
		}
		span.RecordError(err)
		return dto.AcknowledgmentStatus{}, err
	}

	observability.AcknowledgmentOutcomes().WithLabelValues(models.AssignmentTypeIndividual, "acknowledged").Inc()
	s.logger.Info().Str("assignment_id", assignmentID).Str("student", student.Email).Msg("assignment acknowledged")

	return status, nil
}

func (s *acknowledgmentService) acknowledgeGroup(ctx context.Context, span trace.Span, student models.User, assignment models.Assignment) (dto.AcknowledgmentStatus, error) {
	group, err := s.groups.GetByAssignment(ctx, assignment.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			span.SetStatus(codes.Error, "no group record")
			observability.AcknowledgmentOutcomes().WithLabelValues(models.AssignmentTypeGroup, "not_in_group").Inc()
			return dto.AcknowledgmentStatus{}, ErrNotInGroup
		}
		return dto.AcknowledgmentStatus{}, err
	}

	if !group.HasMember(student.Email) {
		span.SetStatus(codes.Error, "no group record")
		observability.AcknowledgmentOutcomes().WithLabelValues(models.AssignmentTypeGroup, "not_in_group").Inc()
		return dto.AcknowledgmentStatus{}, ErrNotInGroup
	}

	when := s.now()
	_, err = s.assignments.Mutate(ctx, assignment.ID, func(a *models.Assignment) error {
		if a.Acknowledged {
			return ErrAlreadyAcknowledged
		}
		if !group.IsLeader(student.Email) {
			return ErrForbidden
		}

		a.Acknowledged = true
		a.AcknowledgedBy = student.Email
		a.AcknowledgedAt = &when
		for _, member := range group.Members {
			if !a.HasGroupMember(member) {
				a.GroupMembers = append(a.GroupMembers, member)
			}
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyAcknowledged):
			span.SetStatus(codes.Error, "already final")
			observability.AcknowledgmentOutcomes().WithLabelValues(models.AssignmentTypeGroup, "already_final").Inc()
		case errors.Is(err, ErrForbidden):
			span.SetStatus(codes.Error, "not the leader")
			observability.AcknowledgmentOutcomes().WithLabelValues(models.AssignmentTypeGroup, "forbidden").Inc()
		case errors.Is(err, repository.ErrNotFound):
			return dto.AcknowledgmentStatus{}, ErrAssignmentNotFound
		default:
			span.RecordError(err)
		}
		return dto.AcknowledgmentStatus{}, err
	}

	observability.AcknowledgmentOutcomes().WithLabelValues(models.AssignmentTypeGroup, "acknowledged").Inc()
	s.logger.Info().
		Str("assignment_id", assignment.ID).
		Str("leader", student.Email).
		Int("members", len(group.Members)).
		Msg("group assignment acknowledged")

	return dto.AcknowledgmentStatus{Acknowledged: true, Timestamp: &when, AcknowledgedBy: student.Email}, nil
}
