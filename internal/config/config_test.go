package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"job_url": "https://example.com/job",
		"output": "analysis.json",
		"port": 9090,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0o644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "analysis.json", cfg.Output)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0o644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_MutuallyExclusiveJobInputs(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/job"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.NoError(t, (&Config{}).Validate())
}

func TestValidate_MissingInputFiles(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.txt"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")

	existing := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(existing, []byte("text"), 0o644))
	assert.NoError(t, (&Config{Job: existing}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.txt"}
	merged := cfg.MergeWithDefaults(Config{Resume: "default.txt", Output: "out.json", Port: 9000})

	assert.Equal(t, "mine.txt", merged.Resume, "explicit values win over defaults")
	assert.Equal(t, "out.json", merged.Output)
	assert.Equal(t, 9000, merged.Port)
}

func TestMergeWithDefaults_FallbackPort(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultPort, merged.Port)
}
