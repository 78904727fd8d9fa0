package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceResumeRejectsNonOpenAI(t *testing.T) {
	for _, modelType := range []string{"Gemini", "DeepSeek", "Anthropic", ""} {
		report := EnhanceResume(context.Background(), modelType, "key", "model", "resume", "job")
		require.NotNil(t, report)
		assert.False(t, report.Success)
		assert.Contains(t, report.Error, "OpenAI only")
		assert.Empty(t, report.RawAnalysis)
	}
}

func enhanceAnswers() map[string]string {
	return map[string]string{
		"comprehensive assessment":  `{"match_score": 72, "strengths": ["a"], "gaps": ["b"]}`,
		"generate enhanced content": "```json\n" + `{"enhanced_summary": "better", "enhanced_skills": ["x"]}` + "\n```",
	}
}

func TestEnhanceWithBackendRunsBothPasses(t *testing.T) {
	backend := &fakeBackend{answers: enhanceAnswers()}
	resumeDoc := `{"basics": {"name": "Ada"}, "work": [], "skills": []}`

	report := enhanceWithBackend(context.Background(), backend, "gpt-4o", "OpenAI", resumeDoc, "job description")

	require.True(t, report.Success)
	assert.Empty(t, report.Error)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(report.Analysis, &parsed))
	assert.Equal(t, float64(72), parsed["match_score"])

	require.NoError(t, json.Unmarshal(report.Enhancements, &parsed))
	assert.Equal(t, "better", parsed["enhanced_summary"])

	require.NotNil(t, report.Metadata)
	assert.Equal(t, "gpt-4o", report.Metadata.Model)
	assert.Equal(t, "OpenAI", report.Metadata.ModelType)
	assert.Equal(t, 3, report.Metadata.ResumeSectionsAnalyzed)
	assert.NotEmpty(t, report.Metadata.Timestamp)
}

func TestEnhanceWithBackendTemperatures(t *testing.T) {
	backend := &fakeBackend{answers: enhanceAnswers()}

	enhanceWithBackend(context.Background(), backend, "gpt-4o", "OpenAI", `{"basics": {}}`, "job")

	require.Len(t, backend.settings, 2)
	require.NotNil(t, backend.settings[0].Temperature)
	assert.Equal(t, 0.3, *backend.settings[0].Temperature)
	require.NotNil(t, backend.settings[1].Temperature)
	assert.Equal(t, 0.4, *backend.settings[1].Temperature)
}

func TestEnhanceResumeTextSynthesizesBeforeAnalyzing(t *testing.T) {
	answers := fullAnswers()
	for key, answer := range enhanceAnswers() {
		answers[key] = answer
	}
	backend := &fakeBackend{answers: answers}

	report, skipped, err := enhanceResumeText(context.Background(), backend, "gpt-4o", "OpenAI",
		"RAW-UPLOAD-TEXT resume contents", "job description")

	require.NoError(t, err)
	require.True(t, report.Success)
	assert.Empty(t, skipped)
	assert.Equal(t, 6, report.Metadata.ResumeSectionsAnalyzed)

	// Six synthesis calls precede the two analysis passes, and the
	// analysis sees the synthesized document, not the raw text.
	require.Len(t, backend.calls, 8)
	for _, call := range backend.calls[:6] {
		assert.Contains(t, call, "RAW-UPLOAD-TEXT")
	}
	analysisCall := backend.calls[6]
	assert.Contains(t, analysisCall, "comprehensive assessment")
	assert.Contains(t, analysisCall, "Ada Lovelace")
	assert.Contains(t, analysisCall, `"education"`)
	assert.NotContains(t, analysisCall, "RAW-UPLOAD-TEXT")
}

func TestEnhanceResumeTextEmptyMergeFails(t *testing.T) {
	backend := &fakeBackend{answers: map[string]string{}}

	report, _, err := enhanceResumeText(context.Background(), backend, "gpt-4o", "OpenAI",
		"RAW-UPLOAD-TEXT resume contents", "job")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sections")
	assert.Nil(t, report)
	// Synthesis failed for all six sections; no analysis call was spent.
	assert.Len(t, backend.calls, 6)
}

func TestEnhancementReportBadAnalysisJSON(t *testing.T) {
	report := buildReport(t, "not json at all", `{"enhanced_summary": "x"}`, "gpt-4o")

	assert.False(t, report.Success)
	assert.Contains(t, report.Error, "analysis")
	assert.Equal(t, "not json at all", report.RawAnalysis)
	assert.NotEmpty(t, report.RawEnhancement)
	assert.Nil(t, report.Analysis)
	assert.Nil(t, report.Enhancements)
}

func TestEnhancementReportBadEnhancementJSON(t *testing.T) {
	report := buildReport(t, `{"match_score": 10}`, "broken", "gpt-4o")

	assert.False(t, report.Success)
	assert.Contains(t, report.Error, "enhancement")
	assert.NotEmpty(t, report.RawAnalysis)
	assert.Equal(t, "broken", report.RawEnhancement)
}

func TestEnhancementReportNonObjectJSON(t *testing.T) {
	// A bare JSON array parses but is not a usable report payload.
	report := buildReport(t, `[1, 2, 3]`, `{"enhanced_summary": "x"}`, "gpt-4o")
	assert.False(t, report.Success)
}

func buildReport(t *testing.T, analysisText, enhancementText, model string) *EnhancementReport {
	t.Helper()
	return assembleReport(analysisText, enhancementText, model, "OpenAI", 2)
}
