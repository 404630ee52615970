package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/resume-analyzer/resume-analyzer/internal/models"
	"github.com/resume-analyzer/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	worker      services.Worker
	maxFileSize int64
}

func NewAnalyzeHandler(worker services.Worker, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		worker:      worker,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "resume file is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := resumeFile.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read uploaded file")
	}

	requestID := uuid.New()
	log.Printf("📥 [%s] Received %s (%d bytes)\n", requestID, resumeFile.Filename, len(data))

	analysis, err := h.worker.Submit(c.UserContext(), services.AnalysisJob{
		RequestID:      requestID,
		Document:       data,
		// Workers may outlive the request; fasthttp reuses its buffers.
		JobDescription: utils.CopyString(c.FormValue("jobDescription")),
	})
	if err != nil {
		if errors.Is(err, services.ErrDocumentUnreadable) {
			return c.JSON(models.ErrorResponse{Error: models.UnreadableDocumentMessage})
		}
		log.Printf("❌ [%s] Analysis could not run: %v\n", requestID, err)
		return fiber.NewError(fiber.StatusServiceUnavailable, "analysis is unavailable, please retry")
	}

	return c.JSON(analysis.Result)
}
