package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/genapply/genapply/internal/service"
)

// Sampling temperatures for the two enhancement passes.
const (
	analysisTemperature    = 0.3
	enhancementTemperature = 0.4
)

// EnhancementMetadata records which model produced a report and when.
type EnhancementMetadata struct {
	Model                  string `json:"model"`
	ModelType              string `json:"model_type"`
	Timestamp              string `json:"timestamp"`
	ResumeSectionsAnalyzed int    `json:"resume_sections_analyzed"`
}

// EnhancementReport is the combined result of the analysis and
// enhancement passes. On failure Error is set and the raw model texts
// are preserved for debugging.
type EnhancementReport struct {
	Success        bool                 `json:"success"`
	Analysis       json.RawMessage      `json:"analysis,omitempty"`
	Enhancements   json.RawMessage      `json:"enhancements,omitempty"`
	Metadata       *EnhancementMetadata `json:"metadata,omitempty"`
	Error          string               `json:"error,omitempty"`
	RawAnalysis    string               `json:"raw_analysis,omitempty"`
	RawEnhancement string               `json:"raw_enhancement,omitempty"`
}

// EnhanceResume runs the two-pass enhancement analysis: a scoring pass
// against the job description, then a content generation pass. Only the
// OpenAI backend is supported; the report is all-or-nothing, both passes
// must return valid JSON.
func EnhanceResume(ctx context.Context, modelType, apiKey, model, resumeText, jobDescription string) *EnhancementReport {
	if modelType != service.ModelTypeOpenAI {
		return unsupportedEnhancementReport(modelType)
	}

	backend, err := service.ResolveBackend(modelType, apiKey)
	if err != nil {
		return &EnhancementReport{Success: false, Error: err.Error()}
	}
	if model == "" {
		model = service.DefaultModel
	}

	return enhanceWithBackend(ctx, backend, model, modelType, resumeText, jobDescription)
}

func unsupportedEnhancementReport(modelType string) *EnhancementReport {
	return &EnhancementReport{
		Success: false,
		Error:   fmt.Sprintf("AI enhancement is currently supported for OpenAI only, got model_type %q", modelType),
	}
}

// enhanceResumeText synthesizes a resume document from raw extracted text,
// then analyzes the document rather than the text itself. An empty merge
// aborts before any analysis call.
func enhanceResumeText(ctx context.Context, backend service.Backend, model, modelType, text, jobDescription string) (*EnhancementReport, []string, error) {
	resume, skipped := GenerateJSONResume(ctx, backend, model, text)
	if len(resume) == 0 {
		return nil, nil, errors.New("resume synthesis produced no sections")
	}
	raw, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return nil, nil, err
	}
	return enhanceWithBackend(ctx, backend, model, modelType, string(raw), jobDescription), skipped, nil
}

func enhanceWithBackend(ctx context.Context, backend service.Backend, model, modelType, resumeText, jobDescription string) *EnhancementReport {
	analysisText, err := backend.Complete(ctx, systemAnalysis,
		fmt.Sprintf(analysisPrompt, resumeText, jobDescription), model,
		service.WithTemperature(analysisTemperature))
	if err != nil {
		return &EnhancementReport{Success: false, Error: fmt.Sprintf("analysis request failed: %v", err)}
	}

	enhancementText, err := backend.Complete(ctx, systemEnhancement,
		fmt.Sprintf(enhancementPrompt, resumeText, jobDescription), model,
		service.WithTemperature(enhancementTemperature))
	if err != nil {
		return &EnhancementReport{
			Success:     false,
			Error:       fmt.Sprintf("enhancement request failed: %v", err),
			RawAnalysis: analysisText,
		}
	}

	return assembleReport(analysisText, enhancementText, model, modelType, countTopLevelKeys(json.RawMessage(resumeText)))
}

// assembleReport parses the two pass outputs into the final report. Both
// must be valid JSON objects or the report fails with the raw texts kept.
// resumeSections is the section count of the analyzed resume document.
func assembleReport(analysisText, enhancementText, model, modelType string, resumeSections int) *EnhancementReport {
	report := &EnhancementReport{}

	var analysis json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(analysisText)), &analysis); err != nil || !isJSONObject(analysis) {
		report.Error = "analysis response was not valid JSON"
		report.RawAnalysis = analysisText
		report.RawEnhancement = enhancementText
		return report
	}

	var enhancements json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(enhancementText)), &enhancements); err != nil || !isJSONObject(enhancements) {
		report.Error = "enhancement response was not valid JSON"
		report.RawAnalysis = analysisText
		report.RawEnhancement = enhancementText
		return report
	}

	report.Success = true
	report.Analysis = analysis
	report.Enhancements = enhancements
	report.Metadata = &EnhancementMetadata{
		Model:                  model,
		ModelType:              modelType,
		Timestamp:              time.Now().UTC().Format(time.RFC3339),
		ResumeSectionsAnalyzed: resumeSections,
	}
	return report
}

func isJSONObject(raw json.RawMessage) bool {
	var obj map[string]any
	return json.Unmarshal(raw, &obj) == nil
}

func countTopLevelKeys(raw json.RawMessage) int {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0
	}
	return len(obj)
}
