package util

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
	"github.com/nguyenthenguyen/docx"
)

const (
	FileTypePDF     = "pdf"
	FileTypeDocx    = "docx"
	FileTypeDoc     = "doc"
	FileTypeJSON    = "json"
	FileTypeText    = "text"
	FileTypeUnknown = "unknown"
)

// UnsupportedFormatError is returned when an upload can neither be matched to a
// known format nor decoded as UTF-8 text.
type UnsupportedFormatError struct {
	DetectedType string
	ContentType  string
	Filename     string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type or unable to extract text (detected: %s, content type: %s, filename: %s)",
		e.DetectedType, e.ContentType, e.Filename)
}

// DetectFileType resolves the upload format, checking the declared content type
// first and falling back to the filename extension.
func DetectFileType(contentType, filename string) string {
	switch {
	case contentType == "application/pdf":
		return FileTypePDF
	case contentType == "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return FileTypeDocx
	case contentType == "application/msword":
		return FileTypeDoc
	case contentType == "application/json":
		return FileTypeJSON
	case strings.HasPrefix(contentType, "text/"):
		return FileTypeText
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FileTypePDF
	case ".docx":
		return FileTypeDocx
	case ".doc":
		return FileTypeDoc
	case ".json":
		return FileTypeJSON
	case ".txt", ".text":
		return FileTypeText
	}

	return FileTypeUnknown
}

// ExtractText returns the plain-text content of an uploaded document.
func ExtractText(data []byte, contentType, filename string) (string, error) {
	fileType := DetectFileType(contentType, filename)

	switch fileType {
	case FileTypePDF:
		return extractPDFText(data)
	case FileTypeDocx, FileTypeDoc:
		return extractDocxText(data)
	case FileTypeJSON, FileTypeText:
		return string(data), nil
	default:
		// Last resort: treat the bytes as UTF-8 text.
		if utf8.Valid(data) {
			return string(data), nil
		}
		return "", &UnsupportedFormatError{
			DetectedType: fileType,
			ContentType:  contentType,
			Filename:     filename,
		}
	}
}

func extractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		fullText.WriteString(pageText)
		fullText.WriteString("\n")
	}

	return strings.TrimSpace(fullText.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	r := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
