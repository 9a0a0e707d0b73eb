package handler

import (
	"strconv"

	"quizbot/internal/domain"
	"quizbot/internal/dto"
	"quizbot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ownerHeader carries the authenticated owner identifier. Authentication
// itself lives in an upstream gateway; this layer only requires that the
// header is present.
const ownerHeader = "X-Owner-ID"

// GenerationHandler handles generation and answer-submission HTTP requests
type GenerationHandler struct {
	service service.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service service.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

func ownerID(c *fiber.Ctx) (string, error) {
	owner := c.Get(ownerHeader)
	if owner == "" {
		return "", domain.NewInvalidInputError("owner id header is required")
	}
	return owner, nil
}

// GenerateQuiz godoc
// @Summary Generate quiz questions for a topic
// @Description Calls the completion endpoint and persists the extracted questions
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation parameters"
// @Success 200 {array} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz [post]
func (h *GenerationHandler) GenerateQuiz(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body could not be parsed")
	}

	quiz, err := h.service.GenerateQuiz(c.Context(), req.Topic, req.Difficulty, req.Count, owner)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// GenerateDescribe godoc
// @Summary Generate a description for a topic
// @Tags describe
// @Accept json
// @Produce json
// @Param request body dto.GenerateDescribeRequest true "Generation parameters"
// @Success 200 {array} dto.DescribeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /describe [post]
func (h *GenerationHandler) GenerateDescribe(c *fiber.Ctx) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.GenerateDescribeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body could not be parsed")
	}

	describe, err := h.service.GenerateDescribe(c.Context(), req.Topic, owner)
	if err != nil {
		return err
	}
	return c.JSON(describe)
}

// SubmitAnswer godoc
// @Summary Submit an answer for a quiz question
// @Description Grades the answer by exact match against the stored correct answer
// @Tags quiz
// @Accept json
// @Produce json
// @Param quizId path int true "Quiz ID"
// @Param request body dto.SubmitAnswerRequest true "Answer"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{quizId}/answer [post]
func (h *GenerationHandler) SubmitAnswer(c *fiber.Ctx) error {
	quizID, err := strconv.ParseInt(c.Params("quizId"), 10, 64)
	if err != nil {
		return domain.NewInvalidInputError("quiz id must be an integer")
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body could not be parsed")
	}

	result, err := h.service.SubmitAnswer(c.Context(), quizID, req.UserAnswer)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
