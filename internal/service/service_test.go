package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
	"github.com/noah-isme/joineazy-go-api/internal/session"
	"github.com/noah-isme/joineazy-go-api/internal/store"
)

// fixture wires the repositories over a fresh in-memory store so each test
// exercises the real load/modify/save cycle.
type fixture struct {
	store       *store.MemoryStore
	users       repository.UserRepository
	courses     repository.CourseRepository
	assignments repository.AssignmentRepository
	groups      repository.GroupRepository
	sessions    *session.Manager
	validate    *validator.Validate
	logger      zerolog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	backing := store.NewMemoryStore()
	logger := zerolog.Nop()

	return &fixture{
		store:       backing,
		users:       repository.NewUserRepository(backing),
		courses:     repository.NewCourseRepository(backing),
		assignments: repository.NewAssignmentRepository(backing),
		groups:      repository.NewGroupRepository(backing),
		sessions:    session.NewManager(backing, logger),
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
	}
}

var (
	professor = models.User{Name: "Grace", Email: "grace@uni.edu", Password: "hopper1", Role: models.RoleProfessor}
	studentA  = models.User{Name: "Ada", Email: "ada@uni.edu", Password: "lovelace", Role: models.RoleStudent}
	studentB  = models.User{Name: "Alan", Email: "alan@uni.edu", Password: "turing1", Role: models.RoleStudent}
	studentC  = models.User{Name: "Edsger", Email: "edsger@uni.edu", Password: "dijkstra", Role: models.RoleStudent}
)

// seedCourse stores a course owned by professor with the given roster.
func (f *fixture) seedCourse(t *testing.T, id string, roster ...string) models.Course {
	t.Helper()

	course := models.Course{
		ID:             id,
		Name:           "Distributed Systems",
		Professor:      professor.Name,
		ProfessorEmail: professor.Email,
		Students:       append([]string{}, roster...),
	}
	require.NoError(t, f.courses.Append(context.Background(), course))
	return course
}

// seedAssignment stores an assignment on the given course.
func (f *fixture) seedAssignment(t *testing.T, id, courseID, kind string) models.Assignment {
	t.Helper()

	assignment := models.Assignment{
		ID:              id,
		CourseID:        courseID,
		Title:           "Lab report",
		Deadline:        time.Now().Add(72 * time.Hour),
		Type:            kind,
		Acknowledgments: []models.Acknowledgment{},
		GroupMembers:    []string{},
		CreatedAt:       time.Now(),
	}
	require.NoError(t, f.assignments.Append(context.Background(), assignment))
	return assignment
}
