// Package config loads contract-enforcement options from environment
// variables.
//
// It parses the ENFORCE_* variables (falling back to a local .env file when
// present) into hint.Options, so the strictness of runtime checking can be
// tuned per deployment:
//
//	ENFORCE_ALLOW_SUBCLASSES=true
//	ENFORCE_CHECK_DEFAULTS=true
//	ENFORCE_STRICT_BOOLS=true
//
// All three default to true, matching hint.DefaultOptions.
//
//	opts, err := config.Load()
//	if err != nil {
//		// handle error
//	}
//	hint.Matches(v, spec, opts)
package config
