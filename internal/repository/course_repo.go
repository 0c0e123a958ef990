package repository

import (
	"context"

	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/store"
)

// CourseRepository defines persistence operations for courses. Courses are
// never deleted; the only mutation after creation is student enrollment.
type CourseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	ListByProfessor(ctx context.Context, email string) ([]models.Course, error)
	GetByID(ctx context.Context, id string) (models.Course, error)
	Append(ctx context.Context, course models.Course) error
	Enroll(ctx context.Context, courseID, studentEmail string) (models.Course, error)
}

type courseRepository struct {
	courses collection[models.Course]
}

// NewCourseRepository instantiates a store-backed course repository.
func NewCourseRepository(s store.Store) CourseRepository {
	return &courseRepository{courses: newCollection[models.Course](s, store.KeyCourses)}
}

func (r *courseRepository) List(ctx context.Context) ([]models.Course, error) {
	courses, _, err := r.courses.load(ctx)
	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) ListByProfessor(ctx context.Context, email string) ([]models.Course, error) {
	courses, _, err := r.courses.load(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if course.OwnedBy(email) {
			owned = append(owned, course)
		}
	}

	return owned, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (models.Course, error) {
	courses, _, err := r.courses.load(ctx)
	if err != nil {
		return models.Course{}, err
	}

	for _, course := range courses {
		if course.ID == id {
			return course, nil
		}
	}

	return models.Course{}, ErrNotFound
}

func (r *courseRepository) Append(ctx context.Context, course models.Course) error {
	return r.courses.mutate(ctx, func(courses []models.Course) ([]models.Course, error) {
		return append(courses, course), nil
	})
}

// Enroll adds the student to the course roster. Enrolling an already-enrolled
// student is a no-op; an unknown course id is ErrNotFound.
func (r *courseRepository) Enroll(ctx context.Context, courseID, studentEmail string) (models.Course, error) {
	var enrolled models.Course
	err := r.courses.mutate(ctx, func(courses []models.Course) ([]models.Course, error) {
		for i := range courses {
			if courses[i].ID != courseID {
				continue
			}
			if !courses[i].HasStudent(studentEmail) {
				courses[i].Students = append(courses[i].Students, studentEmail)
			}
			enrolled = courses[i]
			return courses, nil
		}

		return nil, ErrNotFound
	})
	if err != nil {
		return models.Course{}, err
	}

	return enrolled, nil
}
