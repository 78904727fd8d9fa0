package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCoverLetterFillsAllPlaceholders(t *testing.T) {
	out := BuildCoverLetter(CoverLetterFields{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Phone:         "+44 123",
		Email:         "ada@example.com",
		CompanyName:   "Analytical Engines Ltd",
		Location:      "London",
		RecipientName: "Charles Babbage",
		Body:          "I would be a great fit.",
	})

	assert.NotContains(t, out, "<<")
	assert.NotContains(t, out, ">>")
	assert.Contains(t, out, `\name{Ada}{Lovelace}`)
	assert.Contains(t, out, `\email{ada@example.com}`)
	assert.Contains(t, out, "Analytical Engines Ltd")
	assert.Contains(t, out, `\opening{Dear Charles Babbage,}`)
}

func TestBuildCoverLetterDefaults(t *testing.T) {
	out := BuildCoverLetter(CoverLetterFields{Body: "Hello."})

	assert.Contains(t, out, `\name{John}{Doe}`)
	assert.Contains(t, out, `\phone[mobile]{+1 (555) 123-4567}`)
	assert.Contains(t, out, `\email{example@email.com}`)
	assert.Contains(t, out, "Hiring Company")
	assert.Contains(t, out, `\opening{Dear Hiring Manager,}`)
}

func TestBuildCoverLetterOptionalSections(t *testing.T) {
	withOut := BuildCoverLetter(CoverLetterFields{Body: "Hello."})
	assert.NotContains(t, withOut, `\address{`)
	assert.NotContains(t, withOut, `\homepage{`)

	// Extra info present but not requested stays out.
	notRequested := BuildCoverLetter(CoverLetterFields{
		Address:  "1 Main St",
		LinkedIn: "linkedin.com/in/ada",
		Body:     "Hello.",
	})
	assert.NotContains(t, notRequested, `\address{`)
	assert.NotContains(t, notRequested, `\homepage{`)

	requested := BuildCoverLetter(CoverLetterFields{
		Address:          "1 Main St",
		LinkedIn:         "linkedin.com/in/ada",
		IncludeExtraInfo: true,
		Body:             "Hello.",
	})
	assert.Contains(t, requested, `\address{1 Main St}`)
	assert.Contains(t, requested, `\homepage{linkedin.com/in/ada}`)
}

func TestBuildCoverLetterDepartmentLine(t *testing.T) {
	without := BuildCoverLetter(CoverLetterFields{CompanyName: "Acme", Body: "Hi."})
	with := BuildCoverLetter(CoverLetterFields{CompanyName: "Acme", Department: "Engineering", Body: "Hi."})

	assert.NotContains(t, without, "Engineering")
	assert.Contains(t, with, `Acme\\Engineering`)
}

func TestBuildCoverLetterGenericRecipientGreeting(t *testing.T) {
	for _, name := range []string{"Hiring Manager", "HR Team", "recruitment team"} {
		out := BuildCoverLetter(CoverLetterFields{RecipientName: name, Body: "Hi."})
		assert.Contains(t, out, `\opening{Dear Hiring Manager,}`, "recipient %q", name)
	}

	personal := BuildCoverLetter(CoverLetterFields{RecipientName: "Grace Hopper", Body: "Hi."})
	assert.Contains(t, personal, `\opening{Dear Grace Hopper,}`)
}

func TestBuildCoverLetterNoBraceArtifacts(t *testing.T) {
	out := BuildCoverLetter(CoverLetterFields{
		FirstName:   "Ada",
		CompanyName: "Acme",
		Body:        "Line one.\nLine two with 100% effort.",
	})

	assert.NotContains(t, out, "{{")
	assert.NotContains(t, out, "}}")
	assert.NotContains(t, out, `\\\\`)
	assert.Contains(t, out, `100\% effort`)
	assert.Equal(t, 1, strings.Count(out, `\makelettertitle`))
}
