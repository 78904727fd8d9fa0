package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFileType(t *testing.T) {
	cases := []struct {
		contentType string
		filename    string
		want        string
	}{
		{"application/pdf", "resume.bin", FileTypePDF},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "x", FileTypeDocx},
		{"application/msword", "x", FileTypeDoc},
		{"application/json", "x", FileTypeJSON},
		{"text/plain", "x", FileTypeText},
		{"text/markdown", "x", FileTypeText},

		// Content type missing or generic: extension decides.
		{"", "resume.pdf", FileTypePDF},
		{"application/octet-stream", "resume.PDF", FileTypePDF},
		{"", "resume.docx", FileTypeDocx},
		{"", "resume.doc", FileTypeDoc},
		{"", "resume.json", FileTypeJSON},
		{"", "resume.txt", FileTypeText},
		{"", "resume.text", FileTypeText},

		{"application/octet-stream", "resume.xyz", FileTypeUnknown},
		{"", "", FileTypeUnknown},
	}

	for _, tc := range cases {
		got := DetectFileType(tc.contentType, tc.filename)
		assert.Equal(t, tc.want, got, "content type %q, filename %q", tc.contentType, tc.filename)
	}
}

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText([]byte("hello resume"), "text/plain", "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello resume", text)
}

func TestExtractTextJSON(t *testing.T) {
	raw := `{"basics": {"name": "Ada"}}`
	text, err := ExtractText([]byte(raw), "application/json", "resume.json")
	require.NoError(t, err)
	assert.Equal(t, raw, text)
}

func TestExtractTextUnknownFallsBackToUTF8(t *testing.T) {
	text, err := ExtractText([]byte("plain content, odd extension"), "", "resume.xyz")
	require.NoError(t, err)
	assert.Equal(t, "plain content, odd extension", text)
}

func TestExtractTextUndecodableBinary(t *testing.T) {
	_, err := ExtractText([]byte{0xff, 0xfe, 0x00, 0x81}, "application/octet-stream", "resume.xyz")
	require.Error(t, err)

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, FileTypeUnknown, unsupported.DetectedType)
	assert.Equal(t, "application/octet-stream", unsupported.ContentType)
	assert.Equal(t, "resume.xyz", unsupported.Filename)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractTextBrokenPDF(t *testing.T) {
	_, err := ExtractText([]byte("not a real pdf"), "application/pdf", "resume.pdf")
	assert.Error(t, err)
}

func TestExtractTextBrokenDocx(t *testing.T) {
	_, err := ExtractText([]byte("not a real docx"), "", "resume.docx")
	assert.Error(t, err)
}
