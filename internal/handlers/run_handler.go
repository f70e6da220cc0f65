package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/services"
)

type RunHandler struct {
	runnerService services.CodeRunnerService
}

func NewRunHandler(runnerService services.CodeRunnerService) *RunHandler {
	return &RunHandler{
		runnerService: runnerService,
	}
}

// HandleRunCode handles POST /run-code
func (h *RunHandler) HandleRunCode(c *fiber.Ctx) error {
	var req models.RunCodeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Code == "" || req.Language == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Code and language are required",
		})
	}

	result, err := h.runnerService.Run(c.Context(), req.Language, req.Code)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedLanguage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unsupported language",
				"languages": h.runnerService.Languages(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to run code",
		})
	}

	return c.JSON(models.RunCodeResponse{
		Success:    true,
		Output:     result.Output,
		Simulated:  result.Simulated,
		DurationMs: result.Duration.Milliseconds(),
	})
}
