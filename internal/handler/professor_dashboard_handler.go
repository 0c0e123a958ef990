package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/service"
	"github.com/noah-isme/joineazy-go-api/internal/utils"
)

// ProfessorDashboardHandler serves the aggregated professor dashboard.
type ProfessorDashboardHandler struct {
	service service.ProfessorDashboardService
	logger  zerolog.Logger
}

// NewProfessorDashboardHandler constructs a professor dashboard handler.
func NewProfessorDashboardHandler(service service.ProfessorDashboardService, logger zerolog.Logger) *ProfessorDashboardHandler {
	return &ProfessorDashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "professor_dashboard_handler").Logger(),
	}
}

// Register wires the professor dashboard route.
func (h *ProfessorDashboardHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.dashboardView)
}

func (h *ProfessorDashboardHandler) dashboardView(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	response, err := h.service.Dashboard(c.Context(), user)
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build professor dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	return utils.SendSuccess(c, "dashboard retrieved", response)
}
