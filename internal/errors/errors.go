package errors

import (
	"fmt"
	"strings"
)

// UserError represents an error that should be shown to the user with helpful context
type UserError struct {
	Message    string
	Suggestion string
	Details    string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration error with helpful context
type ConfigError struct {
	Field      string
	Value      interface{}
	Message    string
	Suggestion string
}

func (e ConfigError) Error() string {
	msg := "Configuration error"
	if e.Field != "" {
		msg += fmt.Sprintf(" in field '%s'", e.Field)
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	msg += ": " + e.Message

	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}

	return msg
}

// UnknownApplicationError reports an application name that matches none of
// the supported applications. It is the only domain error this tool raises;
// "not found" outcomes resolve through fallbacks instead.
type UnknownApplicationError struct {
	Primary   string
	Secondary string
}

func (e UnknownApplicationError) Error() string {
	name := e.Primary
	if name == "" {
		name = e.Secondary
	}
	msg := fmt.Sprintf("unknown application '%s'", name)
	if e.Primary != "" && e.Secondary != "" && !strings.EqualFold(e.Primary, e.Secondary) {
		msg = fmt.Sprintf("unknown application '%s' (alias '%s')", e.Primary, e.Secondary)
	}
	return msg + "\n  💡 Supported applications: word, powerpoint, excel"
}
