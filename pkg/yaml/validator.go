package yaml

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/trigg3rX/algo-cli/pkg/env"
)

// Validator checks `validate` struct tags on decoded YAML configuration.
// Supported rules: omitempty, url.
type Validator struct{}

// NewValidator creates a new YAML validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateConfig validates a configuration struct
func (v *Validator) ValidateConfig(config interface{}) error {
	configValue := reflect.ValueOf(config)
	if configValue.Kind() == reflect.Ptr {
		configValue = configValue.Elem()
	}

	if configValue.Kind() != reflect.Struct {
		return fmt.Errorf("config must be a struct")
	}

	return v.validateStruct(configValue)
}

// validateStruct recursively validates struct fields, including struct
// values held in maps
func (v *Validator) validateStruct(structValue reflect.Value) error {
	structType := structValue.Type()

	for i := 0; i < structValue.NumField(); i++ {
		field := structValue.Field(i)
		fieldType := structType.Field(i)

		// Skip unexported fields
		if !field.CanInterface() {
			continue
		}

		if tag := fieldType.Tag.Get("validate"); tag != "" {
			if err := v.validateField(field, fieldType, tag); err != nil {
				return fmt.Errorf("field %s: %w", fieldType.Name, err)
			}
		}

		switch field.Kind() {
		case reflect.Struct:
			if err := v.validateStruct(field); err != nil {
				return fmt.Errorf("nested field %s: %w", fieldType.Name, err)
			}
		case reflect.Map:
			if field.Type().Elem().Kind() != reflect.Struct {
				continue
			}
			keys := field.MapKeys()
			sort.Slice(keys, func(a, b int) bool { return fmt.Sprint(keys[a]) < fmt.Sprint(keys[b]) })
			for _, key := range keys {
				if err := v.validateStruct(field.MapIndex(key)); err != nil {
					return fmt.Errorf("%s[%v]: %w", fieldType.Name, key, err)
				}
			}
		}
	}

	return nil
}

// validateField validates a single field based on validation tags
func (v *Validator) validateField(field reflect.Value, fieldType reflect.StructField, tag string) error {
	for _, rule := range strings.Split(tag, ",") {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		if rule == "omitempty" {
			if field.IsZero() {
				return nil
			}
			continue
		}

		if err := v.applyValidationRule(field, fieldType, rule); err != nil {
			return err
		}
	}

	return nil
}

// applyValidationRule applies a single validation rule
func (v *Validator) applyValidationRule(field reflect.Value, fieldType reflect.StructField, rule string) error {
	switch rule {
	case "url":
		return v.validateURL(field, fieldType)
	default:
		return fmt.Errorf("unknown validation rule: %s", rule)
	}
}

// validateURL validates URLs
func (v *Validator) validateURL(field reflect.Value, fieldType reflect.StructField) error {
	if field.Kind() != reflect.String {
		return fmt.Errorf("url field %s must be a string", fieldType.Name)
	}

	if !env.IsValidURL(field.String()) {
		return fmt.Errorf("invalid URL for field %s: %s", fieldType.Name, field.String())
	}

	return nil
}
