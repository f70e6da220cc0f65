package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/services"
)

type AnalyzeHandler struct {
	analyzerService services.AnalyzerService
}

func NewAnalyzeHandler(analyzerService services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzerService: analyzerService,
	}
}

// HandleAnalyzeInterview handles POST /analyze-interview
func (h *AnalyzeHandler) HandleAnalyzeInterview(c *fiber.Ctx) error {
	var req models.AnalyzeInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Messages) == 0 || req.ResponseTimes == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Interview messages and response times are required",
		})
	}

	results, err := h.analyzerService.AnalyzeInterview(
		c.Context(),
		req.Messages,
		req.ResponseTimes,
		req.JobDescription,
		req.CVContent,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze the interview",
		})
	}

	return c.JSON(models.AnalyzeInterviewResponse{
		Success: true,
		Results: results,
	})
}
