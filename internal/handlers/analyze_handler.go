package handlers

import (
	"bytes"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resumatch/internal/models"
	"alfredoptarigan/resumatch/internal/services"
	"alfredoptarigan/resumatch/internal/views"
)

const (
	resumeField         = "resume"
	jobDescriptionField = "job_description"
)

type AnalyzeHandler struct {
	analyzer      services.AnalyzerService
	uploadService services.UploadService
	validate      *validator.Validate
	maxFileSize   int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	uploadService services.UploadService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:      analyzer,
		uploadService: uploadService,
		validate:      validator.New(),
		maxFileSize:   maxFileSize,
	}
}

// HandleIndex handles GET /
func (h *AnalyzeHandler) HandleIndex(c *fiber.Ctx) error {
	return h.renderPage(c, fiber.StatusOK, views.PageData{})
}

// HandleAnalyzePage handles POST /analyze and answers with the HTML page.
func (h *AnalyzeHandler) HandleAnalyzePage(c *fiber.Ctx) error {
	jobDescription := c.FormValue(jobDescriptionField)
	data := views.PageData{JobDescription: jobDescription}

	analysis, err := h.analyzeUpload(c)
	if err != nil {
		status, message := classifyError(err)
		if status == fiber.StatusBadRequest {
			data.Warning = message
		} else {
			data.Error = message
		}
		return h.renderPage(c, status, data)
	}

	report := views.NewReport(analysis.Result)
	report.ID = analysis.ID.String()
	data.Report = &report

	return h.renderPage(c, fiber.StatusOK, data)
}

// HandleAnalyzeAPI handles POST /api/v1/analyze
func (h *AnalyzeHandler) HandleAnalyzeAPI(c *fiber.Ctx) error {
	analysis, err := h.analyzeUpload(c)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(toResponse(analysis))
}

// HandleAnalyzeText handles POST /api/v1/analyze/text
func (h *AnalyzeHandler) HandleAnalyzeText(c *fiber.Ctx) error {
	var req models.AnalyzeTextRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
			Code:  fiber.StatusBadRequest,
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "resume_text and job_description are required",
			Code:  fiber.StatusBadRequest,
		})
	}

	analysis, err := h.analyzer.AnalyzeText(c.UserContext(), models.AnalysisRequest{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(toResponse(analysis))
}

// analyzeUpload applies the presence checks before anything is read or sent.
func (h *AnalyzeHandler) analyzeUpload(c *fiber.Ctx) (*services.Analysis, error) {
	jobDescription := c.FormValue(jobDescriptionField)

	file, err := c.FormFile(resumeField)
	if err != nil || file == nil || strings.TrimSpace(jobDescription) == "" {
		return nil, services.ErrMissingInput
	}

	data, kind, err := h.uploadService.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return h.analyzer.AnalyzeDocument(c.UserContext(), data, kind, jobDescription)
}

func (h *AnalyzeHandler) renderPage(c *fiber.Ctx, status int, data views.PageData) error {
	data.MaxFileSize = h.maxFileSize

	var buf bytes.Buffer
	if err := views.RenderPage(&buf, data); err != nil {
		return err
	}

	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

// classifyError maps pipeline errors to a status and a user-facing message.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMissingInput):
		return fiber.StatusBadRequest, views.MissingInputWarning
	case errors.Is(err, services.ErrUnsupportedFile),
		errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusBadRequest, err.Error()
	default:
		log.Printf("❌ Analysis error: %v", err)
		return fiber.StatusInternalServerError, err.Error()
	}
}

func jsonError(c *fiber.Ctx, err error) error {
	status, message := classifyError(err)
	if status == fiber.StatusInternalServerError {
		message = "Analysis Error: " + message
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
		Code:  status,
	})
}

func toResponse(analysis *services.Analysis) models.AnalyzeResponse {
	report := views.NewReport(analysis.Result)
	report.ID = analysis.ID.String()
	return report.ToResponse()
}
