package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileYAML = `profiles:
  default:
    api_key: simDefault
  staging:
    api_key: simStaging
    api_server: https://api.staging.example.com/
`

// isolate points every lookup at a temporary directory so that the developer's
// own environment and files cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, key := range []string{"ALGO_PROFILE", "ALGORITHMIA_API_KEY", "ALGORITHMIA_API", "ALGO_LOG_LEVEL", "ALGO_LOG_DEVELOPMENT", "ALGO_HTTP_IDLE_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("HOME", dir)
	t.Setenv("ALGO_CONFIG_FILE", filepath.Join(dir, "config.yaml"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestInit_NoFiles_UsesDefaults(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, Init(""))

	assert.Equal(t, DefaultProfile, GetProfile())
	assert.Equal(t, "", GetAPIKey())
	assert.Equal(t, DefaultAPIServer, GetAPIServer())
	assert.Equal(t, "warn", GetLogLevel())
	assert.False(t, IsLogDevelopment())
	assert.Equal(t, 30*time.Second, GetIdleConnTimeout())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigFile())
}

func TestInit_ProfileFile_SelectsProfile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), profileYAML)

	require.NoError(t, Init(""))
	assert.Equal(t, "simDefault", GetAPIKey())
	assert.Equal(t, DefaultAPIServer, GetAPIServer())

	require.NoError(t, Init("staging"))
	assert.Equal(t, "staging", GetProfile())
	assert.Equal(t, "simStaging", GetAPIKey())
	assert.Equal(t, "https://api.staging.example.com", GetAPIServer())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigFile())
}

func TestInit_ProfileFromEnvironment(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), profileYAML)
	t.Setenv("ALGO_PROFILE", "staging")

	require.NoError(t, Init(""))
	assert.Equal(t, "simStaging", GetAPIKey())

	require.NoError(t, Init("default"))
	assert.Equal(t, "simDefault", GetAPIKey(), "flag wins over ALGO_PROFILE")
}

func TestInit_UnknownProfile_ReturnsError(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), profileYAML)

	err := Init("production")
	assert.ErrorContains(t, err, `profile "production" not found`)
}

func TestInit_EnvironmentOverridesProfile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), profileYAML)
	t.Setenv("ALGORITHMIA_API_KEY", "simEnv")
	t.Setenv("ALGORITHMIA_API", "http://localhost:8080")
	t.Setenv("ALGO_LOG_LEVEL", "DEBUG")
	t.Setenv("ALGO_LOG_DEVELOPMENT", "true")
	t.Setenv("ALGO_HTTP_IDLE_TIMEOUT", "5s")

	require.NoError(t, Init("staging"))

	assert.Equal(t, "simEnv", GetAPIKey())
	assert.Equal(t, "http://localhost:8080", GetAPIServer())
	assert.Equal(t, "debug", GetLogLevel())
	assert.True(t, IsLogDevelopment())
	assert.Equal(t, 5*time.Second, GetIdleConnTimeout())
}

func TestInit_DotEnvFile_IsLoaded(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "ALGORITHMIA_API_KEY=simDotEnv\n")
	t.Cleanup(func() { _ = os.Unsetenv("ALGORITHMIA_API_KEY") })

	require.NoError(t, Init(""))
	assert.Equal(t, "simDotEnv", GetAPIKey())
}

func TestInit_InvalidValues_ReturnError(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, dir string)
		expectedErr string
	}{
		{
			name:        "malformed profile file",
			setup:       func(t *testing.T, dir string) { writeFile(t, filepath.Join(dir, "config.yaml"), "profiles: [unterminated") },
			expectedErr: "failed to load config file",
		},
		{
			name: "profile with invalid api server",
			setup: func(t *testing.T, dir string) {
				writeFile(t, filepath.Join(dir, "config.yaml"), "profiles:\n  default:\n    api_server: api.example.com\n")
			},
			expectedErr: "invalid URL for field APIServer",
		},
		{
			name:        "non-http api server",
			setup:       func(t *testing.T, dir string) { t.Setenv("ALGORITHMIA_API", "ftp://api.example.com") },
			expectedErr: "invalid API server address",
		},
		{
			name:        "unknown log level",
			setup:       func(t *testing.T, dir string) { t.Setenv("ALGO_LOG_LEVEL", "verbose") },
			expectedErr: "invalid ALGO_LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			tt.setup(t, dir)

			assert.ErrorContains(t, Init(""), tt.expectedErr)
		})
	}
}
