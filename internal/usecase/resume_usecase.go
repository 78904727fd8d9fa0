package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/genapply/genapply/internal/config"
	"github.com/genapply/genapply/internal/dto"
	"github.com/genapply/genapply/internal/latex"
	"github.com/genapply/genapply/internal/model"
	"github.com/genapply/genapply/internal/repository"
	"github.com/genapply/genapply/internal/service"
	"github.com/genapply/genapply/internal/util"
	"github.com/pgvector/pgvector-go"
)

// minExtractedChars is the minimum usable length of extracted resume text.
// Anything shorter is treated as a failed extraction rather than fed to an
// LLM.
const minExtractedChars = 50

var ErrTextTooShort = errors.New("could not extract sufficient text from the uploaded file")

// ExtractResult is the outcome of a successful resume extraction.
type ExtractResult struct {
	FileID          string         `json:"file_id"`
	Resume          map[string]any `json:"resume"`
	ExtractedLength int            `json:"extracted_text_length"`
	SkippedSections []string       `json:"skipped_sections,omitempty"`
}

type ResumeUsecase struct {
	resumeRepo *repository.ResumeRepository
	taskRepo   *repository.TaskRepository
}

func NewResumeUsecase(resumeRepo *repository.ResumeRepository, taskRepo *repository.TaskRepository) *ResumeUsecase {
	return &ResumeUsecase{resumeRepo: resumeRepo, taskRepo: taskRepo}
}

// ExtractResumeJSON turns an uploaded resume file into a structured JSON
// resume and stores it under the client's file_id. Synthesis is best effort
// per section; the skipped list names any section that failed.
func (uc *ResumeUsecase) ExtractResumeJSON(ctx context.Context, fileID, filename, contentType string, data []byte, modelType, apiKey, mdl string) (*ExtractResult, error) {
	task := uc.startTask(fileID, model.TaskKindExtract, filename, modelType, mdl)

	text, err := util.ExtractText(data, contentType, filename)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}
	if len(strings.TrimSpace(text)) < minExtractedChars {
		uc.failTask(task, ErrTextTooShort)
		return nil, ErrTextTooShort
	}

	backend, err := service.ResolveBackend(modelType, apiKey)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}
	if mdl == "" {
		mdl = service.DefaultModel
	}

	resume, skipped := GenerateJSONResume(ctx, backend, mdl, text)
	if len(resume) == 0 {
		err := fmt.Errorf("resume synthesis produced no sections")
		uc.failTask(task, err)
		return nil, err
	}

	if err := uc.resumeRepo.Put(fileID, resume); err != nil {
		uc.failTask(task, err)
		return nil, err
	}

	task.ExtractedLength = len(text)
	task.SkippedSections = strings.Join(skipped, ",")
	uc.completeTask(task)
	uc.embedTaskAsync(task, modelType, apiKey, text)

	return &ExtractResult{
		FileID:          fileID,
		Resume:          resume,
		ExtractedLength: len(text),
		SkippedSections: skipped,
	}, nil
}

// GenerateCoverLetter produces a compiled cover letter PDF for a stored
// resume. Contact details fall back from the request's personal_info to the
// stored resume basics, then to placeholder defaults.
func (uc *ResumeUsecase) GenerateCoverLetter(ctx context.Context, req *dto.CoverLetterRequest) ([]byte, error) {
	task := uc.startTask(req.FileID, model.TaskKindCoverLetter, "", req.ModelType, req.Model)

	resume, err := uc.resolveResume(req.FileID, req.ResumeJSON)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}

	if req.ModelType != service.ModelTypeOpenAI {
		err := fmt.Errorf("cover letter generation is currently supported for OpenAI only, got model_type %q", req.ModelType)
		uc.failTask(task, err)
		return nil, err
	}
	backend, err := service.ResolveBackend(req.ModelType, req.APIKey)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}
	mdl := req.Model
	if mdl == "" {
		mdl = service.DefaultModel
	}

	body, err := uc.coverLetterBody(ctx, backend, mdl, req, resume)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}

	info := resolvePersonalInfo(req, resume)
	first, last := latex.SplitName(info.Name)

	source := latex.BuildCoverLetter(latex.CoverLetterFields{
		FirstName:        first,
		LastName:         last,
		Phone:            info.Phone,
		Email:            info.Email,
		Address:          info.Address,
		LinkedIn:         info.LinkedIn,
		IncludeExtraInfo: req.IncludeAdditionalPersonalInfo,
		RecipientName:    req.CompanyInfo.HiringManager,
		CompanyName:      req.CompanyInfo.CompanyName,
		Department:       req.CompanyInfo.Department,
		Location:         req.CompanyInfo.Location,
		Body:             body,
	})

	pdf, err := uc.compile(source, "cover_letter.tex", "cover_letter.pdf")
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}

	uc.completeTask(task)
	return pdf, nil
}

// OptimizeResume renders a stored resume into the requested LaTeX template,
// optionally rewriting it against the job description first.
func (uc *ResumeUsecase) OptimizeResume(ctx context.Context, req *dto.OptimizeResumeRequest) ([]byte, error) {
	task := uc.startTask(req.FileID, model.TaskKindOptimize, "", req.ModelType, req.Model)

	resume, err := uc.resolveResume(req.FileID, req.ResumeJSON)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}

	improve := req.ImproveResume == nil || *req.ImproveResume
	if improve {
		backend, err := service.ResolveBackend(req.ModelType, req.APIKey)
		if err != nil {
			uc.failTask(task, err)
			return nil, err
		}
		mdl := req.Model
		if mdl == "" {
			mdl = service.DefaultModel
		}

		raw, err := json.MarshalIndent(resume, "", "  ")
		if err != nil {
			uc.failTask(task, err)
			return nil, err
		}
		cvText := string(raw)
		if req.JobDescription != "" {
			cvText = cvText + "\n\nTarget job description:\n" + req.JobDescription
		}

		tailored := TailorResume(ctx, backend, mdl, cvText)
		improved, skipped := GenerateJSONResume(ctx, backend, mdl, tailored)
		if len(improved) > 0 {
			resume = improved
			task.SkippedSections = strings.Join(skipped, ",")
		} else {
			log.Printf("resume improvement produced no sections, rendering stored resume for file_id %s", req.FileID)
		}
	}

	doc, err := dto.ResumeDocumentFromMap(resume)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}

	ordering := req.SectionOrdering
	if len(ordering) == 0 {
		ordering = dto.DefaultSectionOrdering
	}

	source, err := latex.ComposeResume(req.Template, doc, ordering)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}

	pdf, err := uc.compile(source, "resume.tex", "resume.pdf")
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}

	uc.completeTask(task)
	return pdf, nil
}

// Enhance runs the two-pass enhancement analysis over an uploaded resume.
// The file is extracted and synthesized into a resume document first so the
// analysis sees the same structure the JSON intake path provides. The report
// itself carries success or failure; an error return means the file could
// not be read or synthesized at all.
func (uc *ResumeUsecase) Enhance(ctx context.Context, fileID, filename, contentType string, data []byte, jobDescription, modelType, apiKey, mdl string) (*EnhancementReport, error) {
	task := uc.startTask(fileID, model.TaskKindEnhance, filename, modelType, mdl)

	text, err := util.ExtractText(data, contentType, filename)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}
	if len(strings.TrimSpace(text)) < minExtractedChars {
		uc.failTask(task, ErrTextTooShort)
		return nil, ErrTextTooShort
	}

	if modelType != service.ModelTypeOpenAI {
		report := unsupportedEnhancementReport(modelType)
		uc.failTask(task, errors.New(report.Error))
		return report, nil
	}
	backend, err := service.ResolveBackend(modelType, apiKey)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}
	if mdl == "" {
		mdl = service.DefaultModel
	}

	report, skipped, err := enhanceResumeText(ctx, backend, mdl, modelType, text, jobDescription)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}
	if report.Success {
		task.ExtractedLength = len(text)
		task.SkippedSections = strings.Join(skipped, ",")
		uc.completeTask(task)
		uc.embedTaskAsync(task, modelType, apiKey, text)
	} else {
		uc.failTask(task, errors.New(report.Error))
	}
	return report, nil
}

// EnhanceStored runs the enhancement analysis over an already extracted
// resume, inline or loaded from the store.
func (uc *ResumeUsecase) EnhanceStored(ctx context.Context, req *dto.EnhanceRequest) (*EnhancementReport, error) {
	task := uc.startTask(req.FileID, model.TaskKindEnhance, "", req.ModelType, req.Model)

	resume, err := uc.resolveResume(req.FileID, req.ResumeJSON)
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}
	raw, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		uc.failTask(task, err)
		return nil, err
	}

	report := EnhanceResume(ctx, req.ModelType, req.APIKey, req.Model, string(raw), req.JobDescription)
	if report.Success {
		uc.completeTask(task)
	} else {
		uc.failTask(task, errors.New(report.Error))
	}
	return report, nil
}

func (uc *ResumeUsecase) GetTask(id string) (*dto.GenerationTaskDTO, error) {
	task, err := uc.taskRepo.FindTaskByID(id)
	if err != nil {
		return nil, err
	}
	d := taskToDTO(task)
	return &d, nil
}

func (uc *ResumeUsecase) ListTasks(page, pageSize int) ([]dto.GenerationTaskDTO, int64, error) {
	tasks, total, err := uc.taskRepo.ListTasks(page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.GenerationTaskDTO, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToDTO(&tasks[i]))
	}
	return out, total, nil
}

// SimilarTasks finds past tasks whose resume text embeddings are closest to
// the given task's embedding.
func (uc *ResumeUsecase) SimilarTasks(id string, topK int) ([]dto.GenerationTaskDTO, error) {
	task, err := uc.taskRepo.FindTaskByID(id)
	if err != nil {
		return nil, err
	}
	if task.Embedding == nil {
		return nil, fmt.Errorf("task %s has no embedding, similarity search requires a Gemini-backed request", id)
	}

	similar, err := uc.taskRepo.FindSimilar(*task.Embedding, topK)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GenerationTaskDTO, 0, len(similar))
	for i := range similar {
		out = append(out, taskToDTO(&similar[i]))
	}
	return out, nil
}

// resolveResume prefers an inline resume over the stored one. Inline data is
// persisted on receipt so later requests can reference the same file_id.
func (uc *ResumeUsecase) resolveResume(fileID string, inline map[string]any) (map[string]any, error) {
	if len(inline) > 0 {
		if err := uc.resumeRepo.Put(fileID, inline); err != nil {
			return nil, err
		}
		return inline, nil
	}
	return uc.resumeRepo.Get(fileID)
}

// coverLetterBody asks the model for the letter's body content. A backend
// error fails the request; the canned fallback covers only an empty answer.
func (uc *ResumeUsecase) coverLetterBody(ctx context.Context, backend service.Backend, mdl string, req *dto.CoverLetterRequest, resume map[string]any) (string, error) {
	position := req.CompanyInfo.Position
	if position == "" {
		position = "Software Engineer"
	}
	company := req.CompanyInfo.CompanyName
	if company == "" {
		company = "Hiring Company"
	}
	location := req.CompanyInfo.Location
	if location == "" {
		location = "Location"
	}

	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(coverLetterPrompt, position, company, location, req.JobDescription, string(resumeJSON))
	answer, err := backend.Complete(ctx, systemCoverLetter, prompt, mdl)
	if err != nil {
		return "", fmt.Errorf("cover letter body generation failed: %w", err)
	}

	body := normalizeLLMText(answer)
	if body == "" {
		return fmt.Sprintf("I am writing to express my strong interest in the %s position at %s. Thank you for considering my application.", position, company), nil
	}
	return body, nil
}

func (uc *ResumeUsecase) compile(source, sourceName, outputName string) ([]byte, error) {
	cfg := config.LoadRenderConfig()
	command := []string{cfg.Compiler, "-interaction=nonstopmode", "-halt-on-error", sourceName}
	return latex.Render(command, sourceName, source, outputName, cfg.SupportDir)
}

// resolvePersonalInfo merges the request's explicit personal_info with the
// resume's basics section. Explicit values win; defaults are applied later
// at template substitution.
func resolvePersonalInfo(req *dto.CoverLetterRequest, resume map[string]any) dto.PersonalInfo {
	info := req.PersonalInfo

	basics, _ := resume["basics"].(map[string]any)
	pick := func(explicit string, key string) string {
		if explicit != "" {
			return explicit
		}
		if basics != nil {
			if v, ok := basics[key].(string); ok {
				return v
			}
		}
		return ""
	}

	info.Name = pick(info.Name, "name")
	info.Phone = pick(info.Phone, "phone")
	info.Email = pick(info.Email, "email")
	info.Address = pick(info.Address, "address")
	info.LinkedIn = pick(info.LinkedIn, "website")
	return info
}

func (uc *ResumeUsecase) startTask(fileID, kind, filename, modelType, mdl string) *model.GenerationTask {
	task := &model.GenerationTask{
		FileID:    fileID,
		Kind:      kind,
		Filename:  filename,
		ModelType: modelType,
		Model:     mdl,
		Status:    model.TaskStatusProcessing,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if uc.taskRepo != nil {
		if err := uc.taskRepo.CreateTask(task); err != nil {
			log.Printf("failed to record %s task for file_id %s: %v", kind, fileID, err)
		}
	}
	return task
}

func (uc *ResumeUsecase) completeTask(task *model.GenerationTask) {
	task.Status = model.TaskStatusCompleted
	task.UpdatedAt = time.Now()
	uc.saveTask(task)
}

func (uc *ResumeUsecase) failTask(task *model.GenerationTask, cause error) {
	task.Status = model.TaskStatusFailed
	task.Error = cause.Error()
	task.UpdatedAt = time.Now()
	uc.saveTask(task)
}

func (uc *ResumeUsecase) saveTask(task *model.GenerationTask) {
	if uc.taskRepo == nil {
		return
	}
	if err := uc.taskRepo.UpdateTask(task); err != nil {
		log.Printf("failed to update task %s: %v", task.ID, err)
	}
}

// embedTaskAsync attaches a resume-text embedding to a completed task so it
// participates in similarity search. Only Gemini requests carry a key that
// can produce embeddings; failures are logged and dropped.
func (uc *ResumeUsecase) embedTaskAsync(task *model.GenerationTask, modelType, apiKey, text string) {
	if uc.taskRepo == nil || modelType != service.ModelTypeGemini {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		gemini := service.NewGeminiService(apiKey)
		values, err := gemini.GenerateEmbedding(ctx, text)
		if err != nil {
			log.Printf("embedding generation failed for task %s: %v", task.ID, err)
			return
		}
		vec := pgvector.NewVector(values)
		task.Embedding = &vec
		uc.saveTask(task)
	}()
}

func taskToDTO(t *model.GenerationTask) dto.GenerationTaskDTO {
	return dto.GenerationTaskDTO{
		ID:              t.ID.String(),
		FileID:          t.FileID,
		Kind:            t.Kind,
		Filename:        t.Filename,
		ModelType:       t.ModelType,
		Model:           t.Model,
		Status:          t.Status,
		Error:           t.Error,
		ExtractedLength: t.ExtractedLength,
		SkippedSections: t.SkippedSections,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
