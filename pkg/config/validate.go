package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the `validate` tags of a config section and prefixes failures with its name.
func validateStruct(section string, c any) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid %s configuration: %w", section, err)
	}
	return nil
}
