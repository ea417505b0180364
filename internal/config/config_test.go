package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"url": "https://www.linkedin.com/in/someone",
		"out": "resume.json",
		"fetch_endpoint": "https://import.example.com/v1/profile",
		"database_url": "postgres://localhost/importer",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://www.linkedin.com/in/someone", cfg.URL)
	assert.Equal(t, "resume.json", cfg.Out)
	assert.Equal(t, "https://import.example.com/v1/profile", cfg.FetchEndpoint)
	assert.Equal(t, "postgres://localhost/importer", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"Empty path", ""},
		{"Missing file", "/nonexistent/config.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "export.zip")
	require.NoError(t, os.WriteFile(archive, []byte("x"), 0o600))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"Empty config is valid", Config{}, ""},
		{"File input", Config{File: archive}, ""},
		{"File and URL exclusive", Config{File: archive, URL: "https://linkedin.com/in/x"}, "mutually exclusive"},
		{"Missing input file", Config{File: "/nonexistent/export.zip"}, "not found"},
		{"Port out of range", Config{Port: 70000}, "port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateUnsupportedExtension(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(doc, []byte("x"), 0o600))

	err := (&Config{File: doc}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input file type")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{URL: "https://linkedin.com/in/cli-flag"}
	defaults := Config{
		URL:           "https://linkedin.com/in/from-file",
		Out:           "out.json",
		FetchEndpoint: "https://import.example.com",
		Port:          9000,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "https://linkedin.com/in/cli-flag", merged.URL, "explicit value wins")
	assert.Equal(t, "out.json", merged.Out)
	assert.Equal(t, "https://import.example.com", merged.FetchEndpoint)
	assert.Equal(t, 9000, merged.Port)
}

func TestMergeWithDefaultsPortFallback(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, DefaultPort, merged.Port)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PROFILE_IMPORTER_DATABASE_URL", "postgres://env/db")
	t.Setenv("PROFILE_IMPORTER_FETCH_ENDPOINT", "https://env.example.com")

	cfg := Config{DatabaseURL: "postgres://file/db"}
	cfg.FromEnv()

	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "https://env.example.com", cfg.FetchEndpoint)
}
