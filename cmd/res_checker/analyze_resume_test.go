package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResumeContent = `Jane Doe
jane.doe@example.com

EXPERIENCE
Software Engineer with 4 years of experience building web
applications with React, Node.js and PostgreSQL.

SKILLS
JavaScript, React, Node.js, PostgreSQL, Docker

EDUCATION
B.S. Computer Science`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeResumeCommand_WritesOutputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := writeTestFile(t, tmpDir, "resume.txt", testResumeContent)
	outFile := filepath.Join(tmpDir, "result.json")

	cmd := exec.Command(binaryPath, "analyze-resume", "--resume", resumeFile, "--output", outFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))

	result, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(result), "overall_score")
	assert.Contains(t, string(result), "React")
}

func TestAnalyzeResumeCommand_StdoutWhenNoOutputFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := writeTestFile(t, tmpDir, "resume.txt", testResumeContent)

	cmd := exec.Command(binaryPath, "analyze-resume", "--resume", resumeFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", string(output))
	assert.Contains(t, string(output), "overall_score")
}

func TestAnalyzeResumeCommand_MissingResumeFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze-resume")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestAnalyzeResumeCommand_NonexistentFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze-resume", "--resume", "/nonexistent/resume.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read resume")
}

func TestAnalyzeResumeCommand_UnsupportedFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := writeTestFile(t, tmpDir, "resume.odt", testResumeContent)

	cmd := exec.Command(binaryPath, "analyze-resume", "--resume", resumeFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unsupported document format")
}

func TestAnalyzeResumeCommand_TooShort(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := writeTestFile(t, tmpDir, "resume.txt", "too short")

	cmd := exec.Command(binaryPath, "analyze-resume", "--resume", resumeFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "input too short")
}
