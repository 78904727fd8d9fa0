package handler

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/genapply/genapply/internal/dto"
	"github.com/genapply/genapply/internal/latex"
	"github.com/genapply/genapply/internal/middleware"
	"github.com/genapply/genapply/internal/repository"
	"github.com/genapply/genapply/internal/response"
	"github.com/genapply/genapply/internal/usecase"
	"github.com/genapply/genapply/internal/util"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const maxUploadBytes = 5 * 1024 * 1024

type ResumeHandler struct {
	uc *usecase.ResumeUsecase
}

func NewResumeHandler(uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", h.Health)
	api.Get("/templates", h.Templates)
	api.Get("/tasks", h.ListTasks)
	api.Get("/tasks/:id", h.GetTask)
	api.Get("/tasks/:id/similar", h.SimilarTasks)

	generate := middleware.RateLimiter(10, time.Minute)
	api.Post("/extract-resume-json", generate, h.ExtractResumeJSON)
	api.Post("/generate-cover-letter", generate, h.GenerateCoverLetter)
	api.Post("/optimize-resume", generate, h.OptimizeResume)
	api.Post("/ai-enhance", generate, h.Enhance)
}

func (h *ResumeHandler) Health(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "ok",
		Data: fiber.Map{
			"status": "healthy",
			"endpoints": []string{
				"GET /api/health",
				"GET /api/templates",
				"GET /api/tasks",
				"GET /api/tasks/:id",
				"GET /api/tasks/:id/similar",
				"POST /api/extract-resume-json",
				"POST /api/generate-cover-letter",
				"POST /api/optimize-resume",
				"POST /api/ai-enhance",
			},
		},
	})
}

func (h *ResumeHandler) Templates(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Available resume templates",
		Data: fiber.Map{
			"templates":    latex.TemplateNames(),
			"descriptions": latex.TemplateInfo(),
		},
	})
}

func (h *ResumeHandler) ExtractResumeJSON(c *fiber.Ctx) error {
	fileID := c.FormValue("file_id")
	apiKey := c.FormValue("api_key")
	modelType := defaultModelType(c.FormValue("model_type"))
	mdl := c.FormValue("model")

	if msg := requireFields(
		requiredField{"file_id", fileID},
		requiredField{"api_key", apiKey},
	); msg != "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: msg, FileID: fileID,
		})
	}

	filename, contentType, data, err := h.readUpload(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: err.Error(), FileID: fileID,
		})
	}

	result, err := h.uc.ExtractResumeJSON(c.Context(), fileID, filename, contentType, data, modelType, apiKey, mdl)
	if err != nil {
		return h.respondError(c, fileID, "failed to extract resume", err)
	}

	meta := fiber.Map{"extracted_text_length": result.ExtractedLength}
	if len(result.SkippedSections) > 0 {
		meta["skipped_sections"] = result.SkippedSections
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume extracted successfully",
		FileID:  fileID,
		Data:    result.Resume,
		Meta:    meta,
	})
}

func (h *ResumeHandler) GenerateCoverLetter(c *fiber.Ctx) error {
	var req dto.CoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}

	req.ModelType = defaultModelType(req.ModelType)
	if msg := requireFields(
		requiredField{"file_id", req.FileID},
		requiredField{"api_key", req.APIKey},
		requiredField{"job_description", req.JobDescription},
	); msg != "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: msg, FileID: req.FileID,
		})
	}

	pdf, err := h.uc.GenerateCoverLetter(c.Context(), &req)
	if err != nil {
		return h.respondError(c, req.FileID, "failed to generate cover letter", err)
	}

	return sendPDF(c, pdf, fmt.Sprintf("cover_letter_%s.pdf", req.FileID))
}

func (h *ResumeHandler) OptimizeResume(c *fiber.Ctx) error {
	var req dto.OptimizeResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}

	req.ModelType = defaultModelType(req.ModelType)
	if msg := requireFields(
		requiredField{"file_id", req.FileID},
		requiredField{"api_key", req.APIKey},
		requiredField{"job_description", req.JobDescription},
		requiredField{"template", req.Template},
	); msg != "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: msg, FileID: req.FileID,
		})
	}

	// Reject unknown templates before any model call is spent.
	if !latex.ValidTemplate(req.Template) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("invalid template %q, available templates: %s", req.Template, strings.Join(latex.TemplateNames(), ", ")),
			FileID:  req.FileID,
		})
	}

	pdf, err := h.uc.OptimizeResume(c.Context(), &req)
	if err != nil {
		return h.respondError(c, req.FileID, "failed to optimize resume", err)
	}

	return sendPDF(c, pdf, fmt.Sprintf("optimized_resume_%s.pdf", req.FileID))
}

// Enhance accepts either a multipart file upload or a JSON body referencing
// an already extracted resume (inline resume_json or stored file_id).
func (h *ResumeHandler) Enhance(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return h.enhanceStored(c)
	}

	fileID := c.FormValue("file_id")
	apiKey := c.FormValue("api_key")
	modelType := defaultModelType(c.FormValue("model_type"))
	mdl := c.FormValue("model")
	jobDescription := c.FormValue("job_description")

	if msg := requireFields(
		requiredField{"file_id", fileID},
		requiredField{"api_key", apiKey},
		requiredField{"job_description", jobDescription},
	); msg != "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: msg, FileID: fileID,
		})
	}

	filename, contentType, data, err := h.readUpload(c)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: err.Error(), FileID: fileID,
		})
	}

	report, err := h.uc.Enhance(c.Context(), fileID, filename, contentType, data, jobDescription, modelType, apiKey, mdl)
	if err != nil {
		return h.respondError(c, fileID, "failed to analyze resume", err)
	}
	return h.sendReport(c, fileID, report)
}

func (h *ResumeHandler) enhanceStored(c *fiber.Ctx) error {
	var req dto.EnhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: "invalid request body",
		}, err)
	}

	req.ModelType = defaultModelType(req.ModelType)
	if msg := requireFields(
		requiredField{"file_id", req.FileID},
		requiredField{"api_key", req.APIKey},
		requiredField{"job_description", req.JobDescription},
	); msg != "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusBadRequest, Message: msg, FileID: req.FileID,
		})
	}

	report, err := h.uc.EnhanceStored(c.Context(), &req)
	if err != nil {
		return h.respondError(c, req.FileID, "failed to analyze resume", err)
	}
	return h.sendReport(c, req.FileID, report)
}

func (h *ResumeHandler) sendReport(c *fiber.Ctx, fileID string, report *usecase.EnhancementReport) error {
	if !report.Success {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: report.Error,
			FileID:  fileID,
			Details: report,
		})
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume analysis completed",
		FileID:  fileID,
		Data:    report,
	})
}

func (h *ResumeHandler) GetTask(c *fiber.Ctx) error {
	task, err := h.uc.GetTask(c.Params("id"))
	if err != nil {
		code := fiber.StatusInternalServerError
		if errors.Is(err, gorm.ErrRecordNotFound) {
			code = fiber.StatusNotFound
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: code, Message: "task not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Task detail",
		Data:    task,
	})
}

func (h *ResumeHandler) ListTasks(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	tasks, total, err := h.uc.ListTasks(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list tasks",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Task history",
		Data:       tasks,
		Pagination: response.NewPagination(page, pageSize, len(tasks), total),
	})
}

func (h *ResumeHandler) SimilarTasks(c *fiber.Ctx) error {
	topK := c.QueryInt("top_k", 5)
	if topK < 1 || topK > 50 {
		topK = 5
	}

	tasks, err := h.uc.SimilarTasks(c.Params("id"), topK)
	if err != nil {
		code := fiber.StatusInternalServerError
		if errors.Is(err, gorm.ErrRecordNotFound) {
			code = fiber.StatusNotFound
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: code, Message: "failed to find similar tasks",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Similar tasks",
		Data:    tasks,
	})
}

func (h *ResumeHandler) readUpload(c *fiber.Ctx) (filename, contentType string, data []byte, err error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", "", nil, errors.New("file is required")
	}
	if strings.TrimSpace(file.Filename) == "" {
		return "", "", nil, errors.New("uploaded file has no filename")
	}
	if file.Size > maxUploadBytes {
		return "", "", nil, errors.New("file size is too large (max 5MB)")
	}

	f, err := file.Open()
	if err != nil {
		return "", "", nil, fmt.Errorf("cannot read uploaded file: %w", err)
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return "", "", nil, fmt.Errorf("cannot read uploaded file: %w", err)
	}

	return file.Filename, file.Header.Get("Content-Type"), data, nil
}

// respondError maps domain errors onto HTTP status codes.
func (h *ResumeHandler) respondError(c *fiber.Ctx, fileID, message string, err error) error {
	code := fiber.StatusInternalServerError

	var unsupported *util.UnsupportedFormatError
	switch {
	case errors.Is(err, repository.ErrResumeNotFound):
		code = fiber.StatusNotFound
		message = "no resume data found for this file_id, call extract-resume-json first"
	case errors.As(err, &unsupported):
		code = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, usecase.ErrTextTooShort):
		code = fiber.StatusBadRequest
		message = err.Error()
	case strings.Contains(err.Error(), "unsupported model_type"),
		strings.Contains(err.Error(), "supported for OpenAI only"),
		strings.Contains(err.Error(), "invalid template"):
		code = fiber.StatusBadRequest
		message = err.Error()
	}

	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
		FileID:  fileID,
	}, err)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdf)
}

type requiredField struct {
	name, value string
}

func defaultModelType(modelType string) string {
	if strings.TrimSpace(modelType) == "" {
		return "OpenAI"
	}
	return modelType
}

func requireFields(fields ...requiredField) string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	if len(missing) == 1 {
		return missing[0] + " is required"
	}
	return "missing required fields: " + strings.Join(missing, ", ")
}
