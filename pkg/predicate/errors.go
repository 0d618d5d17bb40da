package predicate

import "errors"

// ErrViolation is the default error wrapped by Validate when a predicate
// rejects a value.
var ErrViolation = errors.New("constraint violated")
