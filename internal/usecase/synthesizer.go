package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/genapply/genapply/internal/service"
)

// stripCodeFence removes a leading ```json (or bare ```) fence and the
// matching trailing fence, when present. Content without fences passes
// through unchanged.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// GenerateJSONResume synthesizes a JSON resume from raw CV text by issuing
// one completion per section and merging the results. A section that fails
// to generate or parse is skipped rather than failing the whole document;
// the returned slice lists the skipped section names in synthesis order.
func GenerateJSONResume(ctx context.Context, backend service.Backend, model, cvText string) (map[string]any, []string) {
	result := make(map[string]any)
	var skipped []string

	for _, section := range sectionPrompts {
		prompt := strings.ReplaceAll(section.prompt, cvTextPlaceholder, cvText)

		answer, err := backend.Complete(ctx, systemPrompt, prompt, model)
		if err != nil {
			log.Printf("resume synthesis: section %s failed: %v", section.name, err)
			skipped = append(skipped, section.name)
			continue
		}

		var parsed map[string]any
		if err := json.Unmarshal([]byte(stripCodeFence(answer)), &parsed); err != nil {
			log.Printf("resume synthesis: section %s returned invalid JSON: %v", section.name, err)
			skipped = append(skipped, section.name)
			continue
		}

		// The basics prompt describes a bare object; wrap it so the
		// merged document always keys basics consistently.
		if section.name == "basics" {
			if _, ok := parsed["basics"]; !ok {
				parsed = map[string]any{"basics": parsed}
			}
		}

		for key, value := range parsed {
			result[key] = value
		}
	}

	return result, skipped
}

// TailorResume rewrites the CV text against the tailoring guidelines.
// Any failure returns the input unchanged so tailoring stays best effort.
func TailorResume(ctx context.Context, backend service.Backend, model, cvText string) string {
	prompt := strings.ReplaceAll(tailoringPrompt, cvTextPlaceholder, cvText)

	answer, err := backend.Complete(ctx, systemTailoring, prompt, model)
	if err != nil {
		log.Printf("resume tailoring failed, keeping original text: %v", err)
		return cvText
	}

	tailored := normalizeLLMText(answer)
	if tailored == "" {
		return cvText
	}
	return tailored
}

// normalizeLLMText normalizes free-text completions: stray wrapping quotes
// are removed and the text always ends with exactly one period.
func normalizeLLMText(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, `"`)
	text = strings.TrimSpace(text)
	text = strings.TrimRight(text, ".")
	if text == "" {
		return text
	}
	return text + "."
}
