package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocumentBytes_PlainTextAndMarkdown(t *testing.T) {
	text, err := ReadDocumentBytes("resume.txt", []byte("Jane Doe\r\nBackend engineer"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nBackend engineer", text)

	text, err = ReadDocumentBytes("resume.md", []byte("# Summary\nEngineer"))
	require.NoError(t, err)
	assert.Contains(t, text, "# Summary")
}

func TestReadDocumentBytes_UnsupportedExtension(t *testing.T) {
	_, err := ReadDocumentBytes("resume.odt", []byte("data"))

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".odt", unsupported.Ext)
}

func TestReadDocumentBytes_CorruptPDF(t *testing.T) {
	_, err := ReadDocumentBytes("resume.pdf", []byte("not a pdf at all"))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "pdf", decodeErr.Format)
}

func TestReadDocumentBytes_CorruptDocx(t *testing.T) {
	_, err := ReadDocumentBytes("resume.docx", []byte("not a zip archive"))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "docx", decodeErr.Format)
}

func TestReadDocument_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Backend engineer with 6 years of experience."), 0o644))

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer with 6 years of experience.", text)
}

func TestReadDocument_MissingFile(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
