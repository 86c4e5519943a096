package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/trigg3rX/algo-cli/pkg/env"
	"github.com/trigg3rX/algo-cli/pkg/logging"
	"github.com/trigg3rX/algo-cli/pkg/yaml"
)

const (
	DefaultProfile         = "default"
	DefaultAPIServer       = "https://api.algorithmia.com"
	DefaultLogLevel        = "warn"
	DefaultIdleConnTimeout = 30 * time.Second
)

// Profile is one named entry of the profile file.
type Profile struct {
	APIKey    string `yaml:"api_key"`
	APIServer string `yaml:"api_server" validate:"omitempty,url"`
}

type profileFile struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

type Config struct {
	// Profile
	profile    string
	configFile string

	// API Configuration
	apiKey    string
	apiServer string

	// Other Configuration
	logLevel        string
	logDevelopment  bool
	idleConnTimeout time.Duration
}

var cfg Config

// Init resolves the configuration for one invocation. Precedence, highest
// first: process environment, .env file, profile file, defaults. An empty
// profile falls back to ALGO_PROFILE and then "default".
func Init(profile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	if env.IsEmpty(profile) {
		profile = env.GetEnvString("ALGO_PROFILE", "")
	}
	explicitProfile := !env.IsEmpty(profile)
	if !explicitProfile {
		profile = DefaultProfile
	}

	configFile := setting("ALGO_CONFIG_FILE", defaultConfigFile())
	profiles, err := loadProfiles(configFile)
	if err != nil {
		return err
	}
	selected, found := profiles[profile]
	if !found && explicitProfile && profile != DefaultProfile {
		return fmt.Errorf("profile %q not found in %s", profile, configFile)
	}

	// API Configuration
	apiKey := setting("ALGORITHMIA_API_KEY", selected.APIKey)
	apiServer := selected.APIServer
	if apiServer == "" {
		apiServer = DefaultAPIServer
	}
	apiServer = strings.TrimRight(setting("ALGORITHMIA_API", apiServer), "/")
	if !env.IsValidURL(apiServer) {
		return fmt.Errorf("invalid API server address %q: must be an http:// or https:// URL", apiServer)
	}

	// Other Configuration
	logLevel := strings.ToLower(strings.TrimSpace(setting("ALGO_LOG_LEVEL", DefaultLogLevel)))
	if _, err := logging.ParseLevel(logLevel); err != nil {
		return fmt.Errorf("invalid ALGO_LOG_LEVEL: %w", err)
	}
	logDevelopment := env.GetEnvBool("ALGO_LOG_DEVELOPMENT", false)
	idleConnTimeout := env.GetEnvDuration("ALGO_HTTP_IDLE_TIMEOUT", DefaultIdleConnTimeout)
	if idleConnTimeout <= 0 {
		idleConnTimeout = DefaultIdleConnTimeout
	}

	cfg = Config{
		profile:         profile,
		configFile:      configFile,
		apiKey:          apiKey,
		apiServer:       apiServer,
		logLevel:        logLevel,
		logDevelopment:  logDevelopment,
		idleConnTimeout: idleConnTimeout,
	}
	return nil
}

// setting reads key from the environment, treating a blank value as unset.
func setting(key, defaultValue string) string {
	value := env.GetEnvString(key, "")
	if env.IsEmpty(value) {
		return defaultValue
	}
	return value
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".algorithmia", "config.yaml")
}

// loadProfiles reads the profile file. A missing file yields no profiles.
func loadProfiles(path string) (map[string]Profile, error) {
	if path == "" {
		return nil, nil
	}

	var file profileFile
	err := yaml.LoadAndValidateYAML(path, &file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return file.Profiles, nil
}

func GetProfile() string {
	return cfg.profile
}

func GetConfigFile() string {
	return cfg.configFile
}

func GetAPIKey() string {
	return cfg.apiKey
}

func GetAPIServer() string {
	return cfg.apiServer
}

func GetLogLevel() string {
	return cfg.logLevel
}

// IsLogDevelopment reports whether log lines carry caller information.
func IsLogDevelopment() bool {
	return cfg.logDevelopment
}

func GetIdleConnTimeout() time.Duration {
	return cfg.idleConnTimeout
}
