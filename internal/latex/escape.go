package latex

import "strings"

// fieldReplacer escapes LaTeX-significant characters in user-controlled single
// fields (names, addresses, free-form body text). Newlines become explicit
// line breaks.
var fieldReplacer = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"$", `\$`,
	"&", `\&`,
	"%", `\%`,
	"#", `\#`,
	"^", `\textasciicircum{}`,
	"_", `\_`,
	"~", `\textasciitilde{}`,
	"<", `\textless{}`,
	">", `\textgreater{}`,
	"|", `\textbar{}`,
	"\n", `\\`,
)

// EscapeField escapes one user-controlled string for use inside a LaTeX
// template. Empty or whitespace-only input yields the fallback unescaped, so
// fallbacks must themselves be LaTeX-safe literals.
func EscapeField(text string, fallback string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fallback
	}
	return fieldReplacer.Replace(trimmed)
}

// documentReplacer is the richer table used for whole resume documents, where
// hyphens, brackets and non-breaking spaces also need protection inside
// generated section markup.
var documentReplacer = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\^{}`,
	"\n", "\\newline%\n",
	"-", `{-}`,
	"\u00a0", "~",
	"[", `{[}`,
	"]", `{]}`,
)

// EscapeDocument walks an arbitrary JSON-shaped value (maps, slices, strings)
// and escapes every string leaf for LaTeX. Non-string scalars pass through.
func EscapeDocument(data any) any {
	switch v := data.(type) {
	case map[string]any:
		escaped := make(map[string]any, len(v))
		for key, value := range v {
			escaped[key] = EscapeDocument(value)
		}
		return escaped
	case []any:
		escaped := make([]any, len(v))
		for i, item := range v {
			escaped[i] = EscapeDocument(item)
		}
		return escaped
	case string:
		return documentReplacer.Replace(v)
	default:
		return data
	}
}
