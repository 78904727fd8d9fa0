package latex

import (
	"strings"
	"testing"

	"github.com/genapply/genapply/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *dto.ResumeDocument {
	return &dto.ResumeDocument{
		Basics: &dto.ResumeBasics{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Phone: "+44 123",
		},
		Education: []dto.EducationItem{
			{Institution: "University of London", Area: "Mathematics", StudyType: "BSc", StartDate: "1833", EndDate: "1837"},
		},
		Work: []dto.WorkItem{
			{Company: "Analytical Engines Ltd", Position: "Programmer", StartDate: "1842", EndDate: "1843",
				Highlights: []string{"Wrote the first published algorithm"}},
		},
		Skills: []dto.SkillItem{
			{Name: "Programming Languages", Keywords: []string{"Analytical Engine notation"}},
		},
		Projects: []dto.ProjectItem{
			{Name: "Notes on the Analytical Engine", Description: "Translation and commentary"},
		},
		Awards: []dto.AwardItem{
			{Title: "Countess of Lovelace", Date: "1838"},
		},
	}
}

func TestComposeResumeInvalidTemplate(t *testing.T) {
	_, err := ComposeResume("Nonexistent", sampleDocument(), []string{"education"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid template "Nonexistent"`)
	for _, name := range TemplateNames() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestComposeResumeAllRegisteredTemplates(t *testing.T) {
	for _, name := range TemplateNames() {
		out, err := ComposeResume(name, sampleDocument(), []string{"education", "work"})
		require.NoError(t, err, "template %s", name)
		assert.Contains(t, out, "\\moderncvstyle{"+templateRegistry[name].Style+"}")
		assert.Contains(t, out, "\\moderncvcolor{"+templateRegistry[name].Color+"}")
		assert.Contains(t, out, "\\begin{document}")
		assert.Contains(t, out, "\\end{document}")
	}
}

func TestComposeResumeSectionOrdering(t *testing.T) {
	out, err := ComposeResume("Simple", sampleDocument(), []string{"skills", "education"})
	require.NoError(t, err)

	skillsAt := strings.Index(out, "\\section{Skills}")
	educationAt := strings.Index(out, "\\section{Education}")
	require.NotEqual(t, -1, skillsAt)
	require.NotEqual(t, -1, educationAt)
	assert.Less(t, skillsAt, educationAt)

	// Sections outside the ordering are omitted entirely.
	assert.NotContains(t, out, "\\section{Work Experience}")
	assert.NotContains(t, out, "\\section{Projects}")
	assert.NotContains(t, out, "\\section{Awards}")
}

func TestComposeResumeEmptySectionsOmitted(t *testing.T) {
	doc := &dto.ResumeDocument{
		Basics: &dto.ResumeBasics{Name: "Ada Lovelace"},
	}
	out, err := ComposeResume("Modern", doc, []string{"education", "work", "skills", "projects", "awards"})
	require.NoError(t, err)
	assert.NotContains(t, out, "\\section{")
}

func TestComposeResumeHeaderDefaults(t *testing.T) {
	out, err := ComposeResume("Simple", &dto.ResumeDocument{}, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "\\name{John}{Doe}")
}

func TestComposeResumeEscapesContent(t *testing.T) {
	doc := &dto.ResumeDocument{
		Basics: &dto.ResumeBasics{Name: "Ada Lovelace"},
		Work: []dto.WorkItem{
			{Company: "AT&T", Position: "R&D Engineer", Highlights: []string{"Cut costs by 50%"}},
		},
	}
	out, err := ComposeResume("Simple", doc, []string{"work"})
	require.NoError(t, err)
	assert.Contains(t, out, `AT\&T`)
	assert.Contains(t, out, `R\&D Engineer`)
	assert.Contains(t, out, `50\%`)
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in          string
		first, last string
	}{
		{"Ada Lovelace", "Ada", "Lovelace"},
		{"Ada Augusta King Lovelace", "Ada", "Lovelace"},
		{"Ada", "Ada", "Doe"},
		{"", "John", "Doe"},
		{"   ", "John", "Doe"},
	}
	for _, tc := range cases {
		first, last := SplitName(tc.in)
		assert.Equal(t, tc.first, first, "input %q", tc.in)
		assert.Equal(t, tc.last, last, "input %q", tc.in)
	}
}

func TestTemplateRegistryConsistency(t *testing.T) {
	names := TemplateNames()
	assert.Len(t, names, len(templateRegistry))
	for _, name := range names {
		assert.True(t, ValidTemplate(name))
	}
	assert.False(t, ValidTemplate("simple"))

	info := TemplateInfo()
	for _, name := range names {
		assert.NotEmpty(t, info[name])
	}
}
