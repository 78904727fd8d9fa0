package dto

import "encoding/json"

// ResumeDocument is the structured resume assembled from the six section
// prompts. Every section is optional: synthesis is best effort and a section
// whose LLM call failed is simply absent.
type ResumeDocument struct {
	Basics    *ResumeBasics   `json:"basics,omitempty"`
	Education []EducationItem `json:"education,omitempty"`
	Awards    []AwardItem     `json:"awards,omitempty"`
	Projects  []ProjectItem   `json:"projects,omitempty"`
	Skills    []SkillItem     `json:"skills,omitempty"`
	Work      []WorkItem      `json:"work,omitempty"`
}

type ResumeBasics struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Address string `json:"address"`
}

type EducationItem struct {
	Institution     string   `json:"institution"`
	Area            string   `json:"area"`
	AdditionalAreas []string `json:"additionalAreas"`
	StudyType       string   `json:"studyType"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Score           string   `json:"score"`
	Location        string   `json:"location"`
}

type AwardItem struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Awarder string `json:"awarder"`
	Summary string `json:"summary"`
}

type ProjectItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	URL         string   `json:"url"`
}

type SkillItem struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

type WorkItem struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Location   string   `json:"location"`
	Highlights []string `json:"highlights"`
}

// ResumeDocumentFromMap converts the loosely-typed merge result of synthesis
// into the typed document used by template composition. Unknown keys are
// dropped.
func ResumeDocumentFromMap(m map[string]any) (*ResumeDocument, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
