package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString_ExistingVariable_ReturnsValue(t *testing.T) {
	tests := []struct {
		name         string
		envKey       string
		envValue     string
		defaultValue string
		expected     string
	}{
		{"simple string", "ALGO_TEST_STRING", "hello world", "default", "hello world"},
		{"empty string", "ALGO_TEST_EMPTY", "", "default", ""},
		{"url", "ALGO_TEST_URL", "https://api.algorithmia.com", "default", "https://api.algorithmia.com"},
		{"whitespace", "ALGO_TEST_WHITESPACE", "  spaced  ", "default", "  spaced  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envValue)

			assert.Equal(t, tt.expected, GetEnvString(tt.envKey, tt.defaultValue))
		})
	}
}

func TestGetEnvString_MissingVariable_ReturnsDefault(t *testing.T) {
	assert.Equal(t, "default value", GetEnvString("ALGO_TEST_NONEXISTENT_STRING", "default value"))
	assert.Equal(t, "", GetEnvString("ALGO_TEST_NONEXISTENT_EMPTY", ""))
}

func TestGetEnvBool_ValidValues_ReturnsCorrectBool(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{" t ", true},
		{"false", false},
		{"0", false},
		{"F", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("ALGO_TEST_BOOL", tt.value)

			assert.Equal(t, tt.expected, GetEnvBool("ALGO_TEST_BOOL", !tt.expected))
		})
	}
}

func TestGetEnvBool_InvalidOrMissing_ReturnsDefault(t *testing.T) {
	t.Setenv("ALGO_TEST_BOOL_INVALID", "maybe")
	t.Setenv("ALGO_TEST_BOOL_BLANK", "   ")

	assert.True(t, GetEnvBool("ALGO_TEST_BOOL_INVALID", true))
	assert.False(t, GetEnvBool("ALGO_TEST_BOOL_BLANK", false))
	assert.True(t, GetEnvBool("ALGO_TEST_BOOL_NONEXISTENT", true))
}

func TestGetEnvDuration_ValidValues_ReturnsCorrectDuration(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
	}{
		{"30s", 30 * time.Second},
		{"1m30s", 90 * time.Second},
		{"250ms", 250 * time.Millisecond},
		{"0s", 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("ALGO_TEST_DURATION", tt.value)

			assert.Equal(t, tt.expected, GetEnvDuration("ALGO_TEST_DURATION", time.Hour))
		})
	}
}

func TestGetEnvDuration_InvalidOrMissing_ReturnsDefault(t *testing.T) {
	t.Setenv("ALGO_TEST_DURATION_INVALID", "thirty seconds")

	assert.Equal(t, 5*time.Second, GetEnvDuration("ALGO_TEST_DURATION_INVALID", 5*time.Second))
	assert.Equal(t, 5*time.Second, GetEnvDuration("ALGO_TEST_DURATION_NONEXISTENT", 5*time.Second))
}
