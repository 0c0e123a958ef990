package repository

import (
	"context"

	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/store"
)

// AssignmentRepository defines persistence operations for assignments.
// Mutate runs a closure against the matched assignment inside the
// read-modify-write cycle, so protocol steps (acknowledgments) survive
// conflict retries by being reapplied on fresh state.
type AssignmentRepository interface {
	List(ctx context.Context) ([]models.Assignment, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.Assignment, error)
	GetByID(ctx context.Context, id string) (models.Assignment, error)
	Append(ctx context.Context, assignment models.Assignment) error
	Mutate(ctx context.Context, id string, fn func(a *models.Assignment) error) (models.Assignment, error)
	Delete(ctx context.Context, id string) error
}

type assignmentRepository struct {
	assignments collection[models.Assignment]
}

// NewAssignmentRepository instantiates a store-backed assignment repository.
func NewAssignmentRepository(s store.Store) AssignmentRepository {
	return &assignmentRepository{assignments: newCollection[models.Assignment](s, store.KeyAssignments)}
}

func (r *assignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	assignments, _, err := r.assignments.load(ctx)
	if err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *assignmentRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	assignments, _, err := r.assignments.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Assignment, 0, len(assignments))
	for _, assignment := range assignments {
		if assignment.CourseID == courseID {
			matched = append(matched, assignment)
		}
	}

	return matched, nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id string) (models.Assignment, error) {
	assignments, _, err := r.assignments.load(ctx)
	if err != nil {
		return models.Assignment{}, err
	}

	for _, assignment := range assignments {
		if assignment.ID == id {
			return assignment, nil
		}
	}

	return models.Assignment{}, ErrNotFound
}

func (r *assignmentRepository) Append(ctx context.Context, assignment models.Assignment) error {
	return r.assignments.mutate(ctx, func(assignments []models.Assignment) ([]models.Assignment, error) {
		return append(assignments, assignment), nil
	})
}

func (r *assignmentRepository) Mutate(ctx context.Context, id string, fn func(a *models.Assignment) error) (models.Assignment, error) {
	var updated models.Assignment
	err := r.assignments.mutate(ctx, func(assignments []models.Assignment) ([]models.Assignment, error) {
		for i := range assignments {
			if assignments[i].ID != id {
				continue
			}
			if err := fn(&assignments[i]); err != nil {
				return nil, err
			}
			updated = assignments[i]
			return assignments, nil
		}

		return nil, ErrNotFound
	})
	if err != nil {
		return models.Assignment{}, err
	}

	return updated, nil
}

func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	return r.assignments.mutate(ctx, func(assignments []models.Assignment) ([]models.Assignment, error) {
		remaining := assignments[:0]
		found := false
		for _, assignment := range assignments {
			if assignment.ID == id {
				found = true
				continue
			}
			remaining = append(remaining, assignment)
		}
		if !found {
			return nil, ErrNotFound
		}

		return remaining, nil
	})
}
