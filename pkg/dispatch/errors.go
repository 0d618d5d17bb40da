package dispatch

import "errors"

// ErrNoOverload is returned when no registered overload accepts a call.
var ErrNoOverload = errors.New("invalid overload")
