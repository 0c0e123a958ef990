package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/joineazy-go-api/internal/dto"
	"github.com/noah-isme/joineazy-go-api/internal/service"
	"github.com/noah-isme/joineazy-go-api/internal/utils"
)

// CourseHandler handles course creation, listing and enrollment.
type CourseHandler struct {
	service service.CourseService
	logger  zerolog.Logger
}

// NewCourseHandler constructs a course handler.
func NewCourseHandler(service service.CourseService, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		logger:  logger.With().Str("component", "course_handler").Logger(),
	}
}

// RegisterProfessor wires the professor-facing course routes.
func (h *CourseHandler) RegisterProfessor(router fiber.Router) {
	router.Post("", h.create)
	router.Get("", h.listOwned)
}

// RegisterStudent wires the student-facing course routes.
func (h *CourseHandler) RegisterStudent(router fiber.Router) {
	router.Get("", h.listAll)
	router.Post("/:courseID/enroll", h.enroll)
}

func (h *CourseHandler) create(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var payload dto.CourseCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Create(c.Context(), user, payload)
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create course")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create course")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "course created", response)
}

func (h *CourseHandler) listOwned(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	courses, err := h.service.ListForProfessor(c.Context(), user.Email)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list professor courses")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list courses")
	}

	return utils.SendSuccess(c, "courses retrieved", courses)
}

func (h *CourseHandler) listAll(c *fiber.Ctx) error {
	courses, err := h.service.ListAll(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list courses")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list courses")
	}

	return utils.SendSuccess(c, "courses retrieved", courses)
}

func (h *CourseHandler) enroll(c *fiber.Ctx) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	response, err := h.service.Enroll(c.Context(), c.Params("courseID"), user)
	if err != nil {
		if resp, ok := respondKnownError(c, err); ok {
			return resp
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to enroll student")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to enroll")
	}

	return utils.SendSuccess(c, "enrolled in course", response)
}
