package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for values the program cannot use.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Table.Path == "" {
		errs = append(errs, ValidationError{"table.path", "must not be empty"})
	}
	if c.Table.DebounceMs < 0 {
		errs = append(errs, ValidationError{"table.debounce_ms", "must not be negative"})
	}
	if c.Editor.Gap < 0 {
		errs = append(errs, ValidationError{"editor.gap", "must not be negative"})
	}

	switch c.Render.Format {
	case "text", "html":
	default:
		errs = append(errs, ValidationError{"render.format", fmt.Sprintf("unknown format %q (want text or html)", c.Render.Format)})
	}
	if c.Render.Width < 0 {
		errs = append(errs, ValidationError{"render.width", "must not be negative"})
	}
	if c.Render.Gap < 0 {
		errs = append(errs, ValidationError{"render.gap", "must not be negative"})
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{"logging.level", fmt.Sprintf("unknown level %q", c.Logging.Level)})
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{"logging.format", fmt.Sprintf("unknown format %q (want text or json)", c.Logging.Format)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
