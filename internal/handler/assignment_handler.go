package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/service"
	"github.com/noah-isme/joineazy-go-api/internal/utils"
)

// AssignmentHandler handles assignment management for professors.
type AssignmentHandler struct {
	service service.AssignmentService
	logger  zerolog.Logger
}

// NewAssignmentHandler constructs an assignment handler.
func NewAssignmentHandler(service service.AssignmentService, logger zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		logger:  logger.With().Str("component", "assignment_handler").Logger(),
	}
}

// Register wires the professor-facing assignment routes.
func (h *AssignmentHandler) Register(courses fiber.Router, assignments fiber.Router) {
	courses.Post("/:courseID/assignments", h.create)
	courses.Get("/:courseID/assignments", h.list)
	assignments.Put("/:assignmentID", h.update)
	assignments.Delete("/:assignmentID", h.remove)
}

func (h *AssignmentHandler) create(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var payload dto.AssignmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Create(c.Context(), user, c.Params("courseID"), payload)
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create assignment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create assignment")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "assignment created", response)
}

func (h *AssignmentHandler) list(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	filter := service.AssignmentListFilter{
		Status: strings.TrimSpace(c.Query("status", service.FilterAll)),
		Search: strings.TrimSpace(c.Query("q")),
	}

	responses, err := h.service.ListForCourse(c.Context(), user, c.Params("courseID"), filter)
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list assignments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list assignments")
	}

	return utils.SendSuccess(c, "assignments retrieved", responses)
}

func (h *AssignmentHandler) update(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var payload dto.AssignmentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Update(c.Context(), user, c.Params("assignmentID"), payload)
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to update assignment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update assignment")
	}

	return utils.SendSuccess(c, "assignment updated", response)
}

func (h *AssignmentHandler) remove(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), user, c.Params("assignmentID")); err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete assignment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete assignment")
	}

	return utils.SendSuccess(c, "assignment deleted", nil)
}
