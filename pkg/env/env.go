package env

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup returns the parsed value of key, or defaultValue when the variable
// is unset, blank, or fails to parse. Nothing is printed: stdout belongs to
// the algorithm result.
func lookup[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return defaultValue
	}
	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetEnvString returns the raw value of key. An empty but set variable is
// returned as-is.
func GetEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookup(key, defaultValue, strconv.ParseBool)
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	return lookup(key, defaultValue, time.ParseDuration)
}
