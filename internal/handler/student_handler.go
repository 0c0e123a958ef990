package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/service"
	"github.com/noah-isme/joineazy-go-api/internal/utils"
)

// StudentHandler handles the student dashboard and acknowledgment endpoints.
type StudentHandler struct {
	dashboard       service.StudentDashboardService
	acknowledgments service.AcknowledgmentService
	logger          zerolog.Logger
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(dashboard service.StudentDashboardService, acknowledgments service.AcknowledgmentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		dashboard:       dashboard,
		acknowledgments: acknowledgments,
		logger:          logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register wires the student routes.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.dashboardView)
	router.Get("/courses/:courseID/assignments", h.courseAssignments)
	router.Post("/assignments/:assignmentID/acknowledge", h.acknowledge)
}

func (h *StudentHandler) dashboardView(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	response, err := h.dashboard.Dashboard(c.Context(), user)
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build student dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}

	return utils.SendSuccess(c, "dashboard retrieved", response)
}

func (h *StudentHandler) courseAssignments(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	responses, err := h.dashboard.CourseAssignments(c.Context(), user, c.Params("courseID"))
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list course assignments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list assignments")
	}

	return utils.SendSuccess(c, "assignments retrieved", responses)
}

func (h *StudentHandler) acknowledge(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	status, err := h.acknowledgments.Acknowledge(c.Context(), user, c.Params("assignmentID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotInGroup):
			return utils.SendState(c, fiber.StatusConflict, "needs_group", "join a group before acknowledging")
		case errors.Is(err, service.ErrAlreadyAcknowledged):
			return utils.SendError(c, fiber.StatusConflict, "assignment already acknowledged")
		default:
			if resp, ok := respondKnownError(c, err); ok {
				return resp
			}
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to acknowledge assignment")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to acknowledge assignment")
		}
	}

	return utils.SendSuccess(c, "assignment acknowledged", status)
}
