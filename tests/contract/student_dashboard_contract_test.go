package contract_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/joineazy-go-api/internal/handler"
	"github.com/noah-isme/joineazy-go-api/internal/middleware"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/repository"
	"github.com/noah-isme/joineazy-go-api/internal/service"
	"github.com/noah-isme/joineazy-go-api/internal/session"
	"github.com/noah-isme/joineazy-go-api/internal/store"
)

func TestStudentDashboardContract(t *testing.T) {
	schemaPath, err := filepath.Abs(filepath.Join("..", "contracts", "student_dashboard.schema.json"))
	require.NoError(t, err)

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile("file://" + schemaPath)
	require.NoError(t, err)

	ctx := context.Background()
	backing := store.NewMemoryStore()
	courses := repository.NewCourseRepository(backing)
	assignments := repository.NewAssignmentRepository(backing)
	groups := repository.NewGroupRepository(backing)

	student := models.User{Name: "Ada", Email: "ada@uni.edu", Password: "lovelace", Role: models.RoleStudent}

	require.NoError(t, courses.Append(ctx, models.Course{
		ID:             "c1",
		Name:           "Distributed Systems",
		Professor:      "Grace",
		ProfessorEmail: "grace@uni.edu",
		Students:       []string{student.Email},
	}))
	require.NoError(t, courses.Append(ctx, models.Course{
		ID:             "c2",
		Name:           "Networks",
		Professor:      "Grace",
		ProfessorEmail: "grace@uni.edu",
		Students:       []string{},
	}))
	require.NoError(t, assignments.Append(ctx, models.Assignment{
		ID:              "a1",
		CourseID:        "c1",
		Title:           "Lab 1",
		Deadline:        time.Now().Add(48 * time.Hour),
		Type:            models.AssignmentTypeIndividual,
		Acknowledgments: []models.Acknowledgment{{Email: student.Email, Timestamp: time.Now()}},
		GroupMembers:    []string{},
		CreatedAt:       time.Now(),
	}))

	dashboards := service.NewStudentDashboardService(courses, assignments, groups, zerolog.Nop())
	acknowledgments := service.NewAcknowledgmentService(assignments, courses, groups, zerolog.Nop())
	studentHandler := handler.NewStudentHandler(dashboards, acknowledgments, zerolog.Nop())

	app := fiber.New()
	studentHandler.Register(app.Group("/api/v1/student", middleware.SessionProtected()))

	token, err := session.Encode(student)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/student/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NoError(t, schema.Validate(payload))
}
