package repository

import (
	"context"

	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/store"
)

// GroupRepository defines persistence operations for assignment groups. A
// group assignment has at most one group per (assignmentId, member) in
// practice; lookup by assignment id is the authorization path.
type GroupRepository interface {
	List(ctx context.Context) ([]models.Group, error)
	ListForStudent(ctx context.Context, courseID, email string) ([]models.Group, error)
	GetByAssignment(ctx context.Context, assignmentID string) (models.Group, error)
	Append(ctx context.Context, group models.Group) error
	SetLeader(ctx context.Context, assignmentID, leader string) (models.Group, error)
}

type groupRepository struct {
	groups collection[models.Group]
}

// NewGroupRepository instantiates a store-backed group repository.
func NewGroupRepository(s store.Store) GroupRepository {
	return &groupRepository{groups: newCollection[models.Group](s, store.KeyGroups)}
}

func (r *groupRepository) List(ctx context.Context) ([]models.Group, error) {
	groups, _, err := r.groups.load(ctx)
	if err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *groupRepository) ListForStudent(ctx context.Context, courseID, email string) ([]models.Group, error) {
	groups, _, err := r.groups.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Group, 0, len(groups))
	for _, group := range groups {
		if group.CourseID == courseID && group.HasMember(email) {
			matched = append(matched, group)
		}
	}

	return matched, nil
}

func (r *groupRepository) GetByAssignment(ctx context.Context, assignmentID string) (models.Group, error) {
	groups, _, err := r.groups.load(ctx)
	if err != nil {
		return models.Group{}, err
	}

	for _, group := range groups {
		if group.AssignmentID == assignmentID {
			return group, nil
		}
	}

	return models.Group{}, ErrNotFound
}

func (r *groupRepository) Append(ctx context.Context, group models.Group) error {
	return r.groups.mutate(ctx, func(groups []models.Group) ([]models.Group, error) {
		return append(groups, group), nil
	})
}

func (r *groupRepository) SetLeader(ctx context.Context, assignmentID, leader string) (models.Group, error) {
	var updated models.Group
	err := r.groups.mutate(ctx, func(groups []models.Group) ([]models.Group, error) {
		for i := range groups {
			if groups[i].AssignmentID != assignmentID {
				continue
			}
			groups[i].Leader = leader
			updated = groups[i]
			return groups, nil
		}

		return nil, ErrNotFound
	})
	if err != nil {
		return models.Group{}, err
	}

	return updated, nil
}
