package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeFieldSpecialCharacters(t *testing.T) {
	escaped := EscapeField(`100% of $5 & #1 _rank_ {ok} \cmd ~home ^top a<b>c|d`, "")

	// Every $ in the output must be the escaped form \$.
	for i, r := range escaped {
		if r == '$' {
			require.Greater(t, i, 0)
			assert.Equal(t, byte('\\'), escaped[i-1], "unescaped $ at index %d in %q", i, escaped)
		}
	}
	assert.Contains(t, escaped, `\%`)
	assert.Contains(t, escaped, `\$`)
	assert.Contains(t, escaped, `\&`)
	assert.Contains(t, escaped, `\#`)
	assert.Contains(t, escaped, `\_`)
	assert.Contains(t, escaped, `\{`)
	assert.Contains(t, escaped, `\}`)
	assert.Contains(t, escaped, `\textbackslash{}`)
	assert.Contains(t, escaped, `\textasciitilde{}`)
	assert.Contains(t, escaped, `\textasciicircum{}`)
	assert.Contains(t, escaped, `\textless{}`)
	assert.Contains(t, escaped, `\textgreater{}`)
	assert.Contains(t, escaped, `\textbar{}`)
}

func TestEscapeFieldDistinctInputsStayDistinct(t *testing.T) {
	inputs := []string{"a&b", "a\\&b", "a{b", "a\\{b", "50%", "50\\%", "x_y", "x\\_y"}

	seen := make(map[string]string)
	for _, in := range inputs {
		out := EscapeField(in, "")
		prev, dup := seen[out]
		require.False(t, dup, "inputs %q and %q collide on %q", in, prev, out)
		seen[out] = in
	}
}

func TestEscapeFieldNewlinesBecomeLineBreaks(t *testing.T) {
	escaped := EscapeField("first line\nsecond line", "")
	assert.Equal(t, `first line\\second line`, escaped)
}

func TestEscapeFieldFallback(t *testing.T) {
	assert.Equal(t, "John", EscapeField("", "John"))
	assert.Equal(t, "John", EscapeField("   \t ", "John"))
	assert.Equal(t, "", EscapeField("", ""))
}

func TestEscapeDocumentWalksNestedValues(t *testing.T) {
	doc := map[string]any{
		"basics": map[string]any{
			"name": "R&D Lead",
		},
		"skills": []any{
			map[string]any{
				"keywords": []any{"C#", "F#"},
			},
		},
		"count": 3,
	}

	escaped, ok := EscapeDocument(doc).(map[string]any)
	require.True(t, ok)

	basics := escaped["basics"].(map[string]any)
	assert.Equal(t, `R\&D Lead`, basics["name"])

	skills := escaped["skills"].([]any)
	keywords := skills[0].(map[string]any)["keywords"].([]any)
	assert.Equal(t, `C\#`, keywords[0])
	assert.Equal(t, `F\#`, keywords[1])

	assert.Equal(t, 3, escaped["count"])
}

func TestEscapeDocumentHyphensAndBrackets(t *testing.T) {
	out := EscapeDocument("state-of-the-art [beta]").(string)
	assert.Equal(t, "state{-}of{-}the{-}art {[}beta{]}", out)
	assert.False(t, strings.Contains(out, "[beta]"))
}
