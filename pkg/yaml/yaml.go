package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML loads a YAML file into the provided struct. A missing file is
// reported with an error wrapping os.ErrNotExist.
func LoadYAML(path string, target interface{}) error {
	if path == "" {
		return fmt.Errorf("yaml path cannot be empty")
	}

	if target == nil {
		return fmt.Errorf("target cannot be nil")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read yaml file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal yaml file %s: %w", path, err)
	}

	return nil
}

// LoadAndValidateYAML loads path into target and checks its validate tags.
func LoadAndValidateYAML(path string, target interface{}) error {
	if err := LoadYAML(path, target); err != nil {
		return err
	}
	if err := NewValidator().ValidateConfig(target); err != nil {
		return fmt.Errorf("invalid yaml file %s: %w", path, err)
	}
	return nil
}
