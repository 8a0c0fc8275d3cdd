package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/marmos91/aclwire/pkg/acl/platform"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags and custom
// rules.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return validateCustomRules(cfg)
}

// validateCustomRules covers what struct tags cannot express.
func validateCustomRules(cfg *Config) error {
	// Source and target must resolve to a platform: either shipped,
	// already registered, or defined in this very configuration.
	available := platform.Names()
	for _, section := range cfg.Platforms {
		if name, ok := section["name"].(string); ok {
			available = append(available, name)
		}
	}

	if !slices.Contains(available, cfg.Translator.Source) {
		return fmt.Errorf("translator.source: unknown platform %q (available: %s)",
			cfg.Translator.Source, strings.Join(available, ", "))
	}
	if !slices.Contains(available, cfg.Translator.Target) {
		return fmt.Errorf("translator.target: unknown platform %q (available: %s)",
			cfg.Translator.Target, strings.Join(available, ", "))
	}

	return nil
}

// formatValidationError turns validator errors into readable messages.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q validation", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
