package latex

import (
	"fmt"
	"strings"

	"github.com/genapply/genapply/internal/dto"
)

// Template describes one entry in the fixed resume-template registry. Styles
// and colors map onto moderncv variants.
type Template struct {
	Style       string
	Color       string
	Description string
}

var templateRegistry = map[string]Template{
	"Simple":  {Style: "classic", Color: "black", Description: "Basic single-column layout"},
	"Modern":  {Style: "banking", Color: "blue", Description: "Clean modern design with color accents"},
	"Awesome": {Style: "casual", Color: "orange", Description: "Professional two-column layout"},
	"Deedy":   {Style: "oldstyle", Color: "grey", Description: "Two-column design with emphasis on skills"},
	"BGJC":    {Style: "classic", Color: "burgundy", Description: "Traditional academic style"},
	"Plush":   {Style: "fancy", Color: "purple", Description: "Elegant two-column with modern typography"},
	"Alta":    {Style: "casual", Color: "green", Description: "Contemporary design with subtle colors"},
}

// templateOrder keeps /api/templates listing stable.
var templateOrder = []string{"Simple", "Modern", "Awesome", "Deedy", "BGJC", "Plush", "Alta"}

func TemplateNames() []string {
	names := make([]string, len(templateOrder))
	copy(names, templateOrder)
	return names
}

func TemplateInfo() map[string]string {
	info := make(map[string]string, len(templateRegistry))
	for name, tpl := range templateRegistry {
		info[name] = tpl.Description
	}
	return info
}

func ValidTemplate(name string) bool {
	_, ok := templateRegistry[name]
	return ok
}

// ComposeResume generates LaTeX source for the named template. Sections are
// emitted strictly in the caller-supplied order; section names not in the
// order list are omitted, as are sections missing from the document.
func ComposeResume(templateName string, doc *dto.ResumeDocument, sectionOrdering []string) (string, error) {
	tpl, ok := templateRegistry[templateName]
	if !ok {
		return "", fmt.Errorf("invalid template %q, available templates: %s",
			templateName, strings.Join(TemplateNames(), ", "))
	}

	var b strings.Builder
	b.WriteString("\\documentclass[11pt,a4paper,sans]{moderncv}\n")
	b.WriteString("\\moderncvstyle{" + tpl.Style + "}\n")
	b.WriteString("\\moderncvcolor{" + tpl.Color + "}\n")
	b.WriteString("\\usepackage[english]{babel}\n")
	b.WriteString("\\usepackage[utf8]{inputenc}\n")
	b.WriteString("\\usepackage[scale=0.75]{geometry}\n\n")

	writeHeader(&b, doc.Basics)

	b.WriteString("\\begin{document}\n\\makecvtitle\n")
	for _, section := range sectionOrdering {
		switch section {
		case "education":
			writeEducation(&b, doc.Education)
		case "work":
			writeWork(&b, doc.Work)
		case "skills":
			writeSkills(&b, doc.Skills)
		case "projects":
			writeProjects(&b, doc.Projects)
		case "awards":
			writeAwards(&b, doc.Awards)
		}
	}
	b.WriteString("\\end{document}\n")

	return b.String(), nil
}

func writeHeader(b *strings.Builder, basics *dto.ResumeBasics) {
	first, last := "John", "Doe"
	if basics != nil {
		first, last = SplitName(basics.Name)
	}
	fmt.Fprintf(b, "\\name{%s}{%s}\n", EscapeField(first, "John"), EscapeField(last, "Doe"))
	if basics == nil {
		b.WriteString("\n")
		return
	}
	if basics.Phone != "" {
		fmt.Fprintf(b, "\\phone[mobile]{%s}\n", EscapeField(basics.Phone, ""))
	}
	if basics.Email != "" {
		fmt.Fprintf(b, "\\email{%s}\n", EscapeField(basics.Email, ""))
	}
	if basics.Website != "" {
		fmt.Fprintf(b, "\\homepage{%s}\n", EscapeField(basics.Website, ""))
	}
	if basics.Address != "" {
		fmt.Fprintf(b, "\\address{%s}{}{}\n", EscapeField(basics.Address, ""))
	}
	b.WriteString("\n")
}

func writeEducation(b *strings.Builder, items []dto.EducationItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\\section{Education}\n")
	for _, item := range items {
		area := item.Area
		if item.StudyType != "" {
			area = strings.TrimSpace(item.StudyType + " in " + item.Area)
		}
		fmt.Fprintf(b, "\\cventry{%s--%s}{%s}{%s}{%s}{%s}{}\n",
			EscapeField(item.StartDate, ""), EscapeField(item.EndDate, ""),
			EscapeField(area, ""), EscapeField(item.Institution, ""),
			EscapeField(item.Location, ""), EscapeField(item.Score, ""))
	}
}

func writeWork(b *strings.Builder, items []dto.WorkItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\\section{Work Experience}\n")
	for _, item := range items {
		fmt.Fprintf(b, "\\cventry{%s--%s}{%s}{%s}{%s}{}{%s}\n",
			EscapeField(item.StartDate, ""), EscapeField(item.EndDate, ""),
			EscapeField(item.Position, ""), EscapeField(item.Company, ""),
			EscapeField(item.Location, ""), highlightList(item.Highlights))
	}
}

func highlightList(highlights []string) string {
	if len(highlights) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\\begin{itemize}")
	for _, h := range highlights {
		b.WriteString("\\item " + EscapeField(h, ""))
	}
	b.WriteString("\\end{itemize}")
	return b.String()
}

func writeSkills(b *strings.Builder, items []dto.SkillItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\\section{Skills}\n")
	for _, item := range items {
		fmt.Fprintf(b, "\\cvitem{%s}{%s}\n",
			EscapeField(item.Name, ""), EscapeField(strings.Join(item.Keywords, ", "), ""))
	}
}

func writeProjects(b *strings.Builder, items []dto.ProjectItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\\section{Projects}\n")
	for _, item := range items {
		description := item.Description
		if len(item.Keywords) > 0 {
			description = strings.TrimSpace(description + " " + strings.Join(item.Keywords, ", "))
		}
		fmt.Fprintf(b, "\\cvitem{%s}{%s}\n",
			EscapeField(item.Name, ""), EscapeField(description, ""))
	}
}

func writeAwards(b *strings.Builder, items []dto.AwardItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\\section{Awards}\n")
	for _, item := range items {
		summary := item.Title
		if item.Awarder != "" {
			summary += ", " + item.Awarder
		}
		if item.Summary != "" {
			summary += ". " + item.Summary
		}
		fmt.Fprintf(b, "\\cvitem{%s}{%s}\n",
			EscapeField(item.Date, ""), EscapeField(summary, ""))
	}
}

// SplitName separates a full name into first and last parts, applying the
// same defaults the cover letter uses for missing pieces.
func SplitName(fullName string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(fullName))
	switch len(parts) {
	case 0:
		return "John", "Doe"
	case 1:
		return parts[0], "Doe"
	default:
		return parts[0], parts[len(parts)-1]
	}
}
