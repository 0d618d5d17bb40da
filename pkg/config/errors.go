package config

import "errors"

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the enforcement configuration.
var ErrParsingConfig = errors.New("failed to parse enforcement config")
