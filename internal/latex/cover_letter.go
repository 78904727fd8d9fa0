package latex

import "strings"

// coverLetterTemplate is the fixed moderncv cover-letter source. Placeholders
// use the <<NAME>> form so they can never collide with LaTeX braces; each is
// substituted exactly once.
const coverLetterTemplate = `\documentclass[11pt,a4paper,roman]{moderncv}
\usepackage[english]{babel}

\moderncvstyle{classic}
\moderncvcolor{green}

% character encoding
\usepackage[utf8]{inputenc}

% adjust the page margins
\usepackage[scale=0.75]{geometry}

% personal data
\name{<<NAME_FIRST>>}{<<NAME_LAST>>}
\phone[mobile]{<<PHONE>>}
\email{<<EMAIL>>}<<ADDRESS_SECTION>><<LINKEDIN_SECTION>>

\begin{document}

\recipient{<<RECIPIENT_NAME>>}{<<COMPANY_NAME>><<DEPARTMENT_SECTION>>\\
<<LOCATION>>}

\date{\today}
\opening{<<OPENING_GREETING>>}
\closing{Sincerely,}

\makelettertitle

<<BODY_CONTENT>>

\vspace{0.5cm}

\makeletterclosing

\end{document}
`

type CoverLetterFields struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string

	// Optional personal lines, emitted only when IncludeExtraInfo is set.
	Address          string
	LinkedIn         string
	IncludeExtraInfo bool

	RecipientName string
	CompanyName   string
	Department    string
	Location      string

	Body string
}

var genericRecipients = map[string]bool{
	"hiring manager":   true,
	"hr team":          true,
	"recruitment team": true,
}

// BuildCoverLetter fills the cover-letter template in a single substitution
// pass. Optional sections contribute an empty string when their field is
// absent, so the output never contains empty commands like \address{}.
func BuildCoverLetter(f CoverLetterFields) string {
	addressSection := ""
	if f.IncludeExtraInfo && strings.TrimSpace(f.Address) != "" {
		addressSection = "\n\\address{" + EscapeField(f.Address, "") + "}"
	}

	linkedinSection := ""
	if f.IncludeExtraInfo && strings.TrimSpace(f.LinkedIn) != "" {
		linkedinSection = "\n\\homepage{" + EscapeField(f.LinkedIn, "") + "}"
	}

	departmentSection := ""
	if strings.TrimSpace(f.Department) != "" {
		departmentSection = `\\` + EscapeField(f.Department, "")
	}

	recipient := "Hiring Manager"
	greeting := "Dear Hiring Manager,"
	if name := strings.TrimSpace(f.RecipientName); name != "" {
		recipient = EscapeField(name, "Hiring Manager")
		if !genericRecipients[strings.ToLower(name)] {
			greeting = "Dear " + recipient + ","
		}
	}

	replacer := strings.NewReplacer(
		"<<NAME_FIRST>>", EscapeField(f.FirstName, "John"),
		"<<NAME_LAST>>", EscapeField(f.LastName, "Doe"),
		"<<PHONE>>", EscapeField(f.Phone, "+1 (555) 123-4567"),
		"<<EMAIL>>", EscapeField(f.Email, "example@email.com"),
		"<<ADDRESS_SECTION>>", addressSection,
		"<<LINKEDIN_SECTION>>", linkedinSection,
		"<<RECIPIENT_NAME>>", recipient,
		"<<COMPANY_NAME>>", EscapeField(f.CompanyName, "Hiring Company"),
		"<<DEPARTMENT_SECTION>>", departmentSection,
		"<<LOCATION>>", EscapeField(f.Location, "Location"),
		"<<OPENING_GREETING>>", greeting,
		"<<BODY_CONTENT>>", EscapeField(f.Body, ""),
	)

	return replacer.Replace(coverLetterTemplate)
}
