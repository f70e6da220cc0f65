package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-interviewer/internal/models"
)

type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// HandleExportResults handles POST /export-results. It validates the posted
// evaluation and echoes it back as a downloadable JSON file; no copy is kept
// server-side.
func (h *ExportHandler) HandleExportResults(c *fiber.Ctx) error {
	var results models.EvaluationResult

	if err := c.BodyParser(&results); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid evaluation payload",
		})
	}

	if results.Summary == "" && results.OverallScore == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Evaluation results are required",
		})
	}

	filename := fmt.Sprintf("interview-results-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.JSON(results)
}
