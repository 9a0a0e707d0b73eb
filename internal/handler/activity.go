package handler

import (
	"quizbot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ActivityHandler serves an owner's generation history and stats
type ActivityHandler struct {
	service service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(service service.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// ListQuizzes godoc
// @Summary List the caller's previously generated quiz questions
// @Tags activity
// @Produce json
// @Success 200 {array} dto.QuizResponse
// @Router /quizzes [get]
func (h *ActivityHandler) ListQuizzes(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	quizzes, err := h.service.ListQuizzes(c.Context(), owner)
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// ListDescribes godoc
// @Summary List the caller's description generation history
// @Tags activity
// @Produce json
// @Success 200 {array} dto.DescribeResponse
// @Router /describes [get]
func (h *ActivityHandler) ListDescribes(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	describes, err := h.service.ListDescribes(c.Context(), owner)
	if err != nil {
		return err
	}
	return c.JSON(describes)
}

// GetStats godoc
// @Summary Aggregate generation stats for the caller
// @Tags activity
// @Produce json
// @Success 200 {object} dto.OwnerStatsResponse
// @Router /stats [get]
func (h *ActivityHandler) GetStats(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	stats, err := h.service.GetOwnerStats(c.Context(), owner)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
