package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/service"
	"github.com/noah-isme/joineazy-go-api/internal/utils"
)

// GroupHandler handles group management for group assignments.
type GroupHandler struct {
	service service.GroupService
	logger  zerolog.Logger
}

// NewGroupHandler constructs a group handler.
func NewGroupHandler(service service.GroupService, logger zerolog.Logger) *GroupHandler {
	return &GroupHandler{
		service: service,
		logger:  logger.With().Str("component", "group_handler").Logger(),
	}
}

// RegisterProfessor wires the professor-facing group routes.
func (h *GroupHandler) RegisterProfessor(assignments fiber.Router) {
	assignments.Post("/:assignmentID/group", h.create)
	assignments.Put("/:assignmentID/group/leader", h.setLeader)
}

// RegisterShared wires the group routes available to any session.
func (h *GroupHandler) RegisterShared(assignments fiber.Router) {
	assignments.Get("/:assignmentID/group", h.get)
}

func (h *GroupHandler) create(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var payload dto.GroupCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	payload.AssignmentID = c.Params("assignmentID")

	response, err := h.service.Create(c.Context(), user, payload)
	if err != nil {
		if errors.Is(err, service.ErrGroupExists) {
			return utils.SendError(c, fiber.StatusConflict, "group already exists for assignment")
		}
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create group")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create group")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "group created", response)
}

func (h *GroupHandler) setLeader(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var payload dto.GroupSetLeaderRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.SetLeader(c.Context(), user, c.Params("assignmentID"), payload)
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to set group leader")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to set group leader")
	}

	return utils.SendSuccess(c, "group leader updated", response)
}

func (h *GroupHandler) get(c *fiber.Ctx) error {
	response, err := h.service.GetForAssignment(c.Context(), c.Params("assignmentID"))
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch group")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch group")
	}

	return utils.SendSuccess(c, "group retrieved", response)
}
