package ingestion

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Minimum input lengths below which analysis is refused.
const (
	MinDocumentChars = 50
	MinSkillsChars   = 10
)

// ReadDocument reads a resume or job-posting file and returns its cleaned
// plain text. The format is chosen by extension: .pdf and .docx are decoded,
// .txt and .md are read as-is; anything else is an UnsupportedFormatError.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return ReadDocumentBytes(filepath.Base(path), data)
}

// ReadDocumentBytes decodes an in-memory document, picking the decoder from
// the file name's extension. Used for uploads where no file path exists.
func ReadDocumentBytes(name string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		text, err := decodePDF(data)
		if err != nil {
			return "", &DecodeError{Format: "pdf", Cause: err}
		}
		return CleanText(text), nil
	case ".docx":
		text, err := decodeDocx(data)
		if err != nil {
			return "", &DecodeError{Format: "docx", Cause: err}
		}
		return CleanText(text), nil
	case ".txt", ".md":
		return CleanText(string(data)), nil
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

// CheckLength enforces a minimum text length, returning InputTooShortError
// when the trimmed text is below min.
func CheckLength(text, purpose string, min int) error {
	got := len(strings.TrimSpace(text))
	if got < min {
		return &InputTooShortError{Purpose: purpose, MinChars: min, Got: got}
	}
	return nil
}

func decodePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxParagraph = regexp.MustCompile(`</w:p>`)
	docxTag       = regexp.MustCompile(`<[^>]+>`)
)

func decodeDocx(data []byte) (string, error) {
	reader, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = reader.Close() }()

	content := reader.Editable().GetContent()
	content = docxParagraph.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	return content, nil
}
