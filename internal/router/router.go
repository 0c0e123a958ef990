package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/joineazy-go-api/internal/config"
	"github.com/noah-isme/joineazy-go-api/internal/handler"
	"github.com/noah-isme/joineazy-go-api/internal/middleware"
	"github.com/noah-isme/joineazy-go-api/internal/models"
	"github.com/noah-isme/joineazy-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler               *handler.AuthHandler
	CourseHandler             *handler.CourseHandler
	AssignmentHandler         *handler.AssignmentHandler
	GroupHandler              *handler.GroupHandler
	StudentHandler            *handler.StudentHandler
	ProfessorDashboardHandler *handler.ProfessorDashboardHandler
	SeedHandler               *handler.SeedHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	session := middleware.SessionProtected()

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
		deps.AuthHandler.RegisterProtected(api.Group("/auth", session))
	}

	// Professor surface: course and assignment management plus the dashboard.
	if deps.CourseHandler != nil {
		professor := api.Group("/professor", session, requireRole(models.RoleProfessor))

		courses := professor.Group("/courses")
		deps.CourseHandler.RegisterProfessor(courses)

		if deps.AssignmentHandler != nil {
			assignments := professor.Group("/assignments")
			deps.AssignmentHandler.Register(courses, assignments)

			if deps.GroupHandler != nil {
				deps.GroupHandler.RegisterProfessor(assignments)
			}
		}

		if deps.ProfessorDashboardHandler != nil {
			deps.ProfessorDashboardHandler.Register(professor)
		}
	}

	// Student surface: enrollment, dashboard and acknowledgments.
	if deps.StudentHandler != nil {
		student := api.Group("/student", session, requireRole(models.RoleStudent))
		deps.StudentHandler.Register(student)

		if deps.CourseHandler != nil {
			deps.CourseHandler.RegisterStudent(student.Group("/courses"))
		}
	}

	// Group lookup is shared by both roles.
	if deps.GroupHandler != nil {
		deps.GroupHandler.RegisterShared(api.Group("/assignments", session))
	}

	if deps.SeedHandler != nil {
		deps.SeedHandler.Register(api.Group("/seed"))
	}
}

func requireRole(role string) fiber.Handler {
	return middleware.RequireRole(role, func(c *fiber.Ctx) error {
		return c.Next()
	})
}
