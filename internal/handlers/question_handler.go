package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/services"
)

type QuestionHandler struct {
	questionService services.QuestionService
}

func NewQuestionHandler(questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// HandleGenerateQuestions handles POST /generate-questions
func (h *QuestionHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobDescription == "" || req.CVContent == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description and CV content are required",
		})
	}

	questions, err := h.questionService.GenerateQuestions(c.Context(), req.JobDescription, req.CVContent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate interview questions",
		})
	}

	// The generator returns an empty list for unparseable, question-free
	// model output; surfacing that is this boundary's job.
	if len(questions) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "No questions could be generated from the model response",
		})
	}

	return c.JSON(models.GenerateQuestionsResponse{
		Success:   true,
		Questions: questions,
	})
}
