package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/models"
)

func TestAssignmentCreateValidatesAndSanitizes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAssignmentService(f.assignments, f.courses, f.validate, f.logger)
	course := f.seedCourse(t, "c1", studentA.Email)

	deadline := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)

	_, err := svc.Create(ctx, professor, course.ID, dto.AssignmentCreateRequest{
		Title: "Lab 1", Deadline: "next tuesday", Type: models.AssignmentTypeIndividual,
	})
	require.Error(t, err, "unparseable deadline must be rejected")

	created, err := svc.Create(ctx, professor, course.ID, dto.AssignmentCreateRequest{
		Title:       "  Lab 1  ",
		Description: `<p>Read chapter 3</p><script>alert("x")</script>`,
		Deadline:    deadline,
		Type:        models.AssignmentTypeIndividual,
	})
	require.NoError(t, err)
	require.Equal(t, "Lab 1", created.Title)
	require.Contains(t, created.Description, "Read chapter 3")
	require.NotContains(t, created.Description, "<script>")
	require.Equal(t, 0, created.SubmissionCount)
	require.Equal(t, 1, created.TotalEligible)
}

func TestAssignmentCreateRequiresCourseOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAssignmentService(f.assignments, f.courses, f.validate, f.logger)
	course := f.seedCourse(t, "c1")

	deadline := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	req := dto.AssignmentCreateRequest{Title: "Lab 1", Deadline: deadline, Type: models.AssignmentTypeIndividual}

	other := professor
	other.Email = "other@uni.edu"
	_, err := svc.Create(ctx, other, course.ID, req)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(ctx, professor, "missing", req)
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestAssignmentUpdateRejectsTypeChangeAfterAcknowledgments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAssignmentService(f.assignments, f.courses, f.validate, f.logger)
	course := f.seedCourse(t, "c1", studentA.Email)
	assignment := f.seedAssignment(t, "a1", course.ID, models.AssignmentTypeIndividual)

	_, err := f.assignments.Mutate(ctx, assignment.ID, func(a *models.Assignment) error {
		a.Acknowledgments = append(a.Acknowledgments, models.Acknowledgment{Email: studentA.Email, Timestamp: time.Now()})
		return nil
	})
	require.NoError(t, err)

	groupType := models.AssignmentTypeGroup
	_, err = svc.Update(ctx, professor, assignment.ID, dto.AssignmentUpdateRequest{Type: &groupType})
	require.ErrorIs(t, err, ErrValidation)

	// Other fields still update.
	title := "Lab 1 (revised)"
	updated, err := svc.Update(ctx, professor, assignment.ID, dto.AssignmentUpdateRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
}

func TestAssignmentDeleteLeavesSiblings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAssignmentService(f.assignments, f.courses, f.validate, f.logger)
	course := f.seedCourse(t, "c1")
	f.seedAssignment(t, "a1", course.ID, models.AssignmentTypeIndividual)
	f.seedAssignment(t, "a2", course.ID, models.AssignmentTypeIndividual)

	require.NoError(t, svc.Delete(ctx, professor, "a1"))
	require.ErrorIs(t, svc.Delete(ctx, professor, "a1"), ErrAssignmentNotFound)

	remaining, err := svc.ListForCourse(ctx, professor, course.ID, AssignmentListFilter{Status: FilterAll})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "a2", remaining[0].ID)
}

func TestAssignmentListFiltersByStatusAndSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAssignmentService(f.assignments, f.courses, f.validate, f.logger)
	course := f.seedCourse(t, "c1", studentA.Email)
	f.seedAssignment(t, "a1", course.ID, models.AssignmentTypeIndividual)
	f.seedAssignment(t, "a2", course.ID, models.AssignmentTypeIndividual)

	_, err := f.assignments.Mutate(ctx, "a1", func(a *models.Assignment) error {
		a.Title = "Graph homework"
		a.Acknowledgments = append(a.Acknowledgments, models.Acknowledgment{Email: studentA.Email, Timestamp: time.Now()})
		return nil
	})
	require.NoError(t, err)

	submitted, err := svc.ListForCourse(ctx, professor, course.ID, AssignmentListFilter{Status: FilterSubmitted})
	require.NoError(t, err)
	require.Len(t, submitted, 1)
	require.Equal(t, "a1", submitted[0].ID)

	pending, err := svc.ListForCourse(ctx, professor, course.ID, AssignmentListFilter{Status: FilterPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "a2", pending[0].ID)

	found, err := svc.ListForCourse(ctx, professor, course.ID, AssignmentListFilter{Status: FilterAll, Search: "graph"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "a1", found[0].ID)
}
