package enforce

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateParam is returned when an enforcer is declared with two
	// parameters sharing a name.
	ErrDuplicateParam = errors.New("duplicate parameter")

	// ErrUnknownParam is returned when a call supplies, or a constraint map
	// names, a parameter the enforcer does not declare.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrMissingParam is returned when a call omits a parameter that has no
	// default value.
	ErrMissingParam = errors.New("missing parameter")

	// ErrReturnViolation is returned when a return value fails its spec.
	ErrReturnViolation = errors.New("return value violates contract")
)

// Violation describes a single rejected argument.
type Violation struct {
	Param   string
	Message string
}

// ArgumentError aggregates every argument rejected by a single call.
type ArgumentError struct {
	FuncName   string
	Violations []Violation
}

func (e *ArgumentError) Error() string {
	if len(e.Violations) == 0 {
		return e.FuncName + "(): argument contract violated"
	}

	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Message
	}
	return fmt.Sprintf("%s(): %s", e.FuncName, strings.Join(parts, "; "))
}

// Has reports whether a given parameter was rejected.
func (e *ArgumentError) Has(param string) bool {
	for _, v := range e.Violations {
		if v.Param == param {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for a parameter.
func (e *ArgumentError) Get(param string) []string {
	var messages []string
	for _, v := range e.Violations {
		if v.Param == param {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Params returns the rejected parameter names in order of first appearance.
func (e *ArgumentError) Params() []string {
	var params []string
	seen := make(map[string]bool)
	for _, v := range e.Violations {
		if !seen[v.Param] {
			params = append(params, v.Param)
			seen[v.Param] = true
		}
	}
	return params
}

// AsArgumentError extracts an ArgumentError from an error chain, or nil.
func AsArgumentError(err error) *ArgumentError {
	if err == nil {
		return nil
	}
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr
	}
	return nil
}
