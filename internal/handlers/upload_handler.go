package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-interviewer/internal/models"
	"alfredoptarigan/ai-interviewer/internal/services"
)

var acceptedMediaTypes = map[string]bool{
	"application/pdf": true,
	"text/plain":      true,
}

type UploadHandler struct {
	storageService services.StorageService
	parserService  services.DocumentParserService
	maxFileSize    int64
}

func NewUploadHandler(
	storageService services.StorageService,
	parserService services.DocumentParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		parserService:  parserService,
		maxFileSize:    maxFileSize,
	}
}

// HandleParseCV handles POST /parse-cv. The upload is staged on disk only
// for the duration of extraction; nothing persists across the request.
func (h *UploadHandler) HandleParseCV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	if contentType := file.Header.Get("Content-Type"); contentType != "" && !acceptedMediaTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid file type. Please upload a PDF or TXT file",
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "cv")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid file type. Please upload a PDF or TXT file",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save uploaded file: %v", err),
		})
	}
	defer func() {
		if err := h.storageService.DeleteFile(filename); err != nil {
			log.Printf("⚠️  Failed to clean up upload %s: %v", filename, err)
		}
	}()

	content, err := h.parserService.ExtractText(filePath)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid file type. Please upload a PDF or TXT file",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to parse the file: %v", err),
		})
	}

	return c.JSON(models.ParseCVResponse{
		Success:  true,
		FileName: file.Filename,
		Content:  content,
	})
}
