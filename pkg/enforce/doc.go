// Package enforce validates function arguments and return values against
// type specs and value constraints, replacing hand-written if/return
// boilerplate at call boundaries.
//
// An Enforcer is declared once per contract from resolved (name, spec)
// parameter pairs; it compiles one predicate per parameter up front through
// the shared hint cache. At call time the caller supplies a mapping of
// parameter name to value and either proceeds or receives a descriptive
// error.
//
// # Usage
//
//	scale := enforce.MustNew("Scale", hint.DefaultOptions, []enforce.Param{
//		enforce.Required("factor", hint.Union(hint.Of[int](), hint.Of[float64]())),
//		enforce.WithDefault("label", hint.Of[string](), "linear"),
//	})
//
//	if err := scale.Check(map[string]any{"factor": "2"}); err != nil {
//		// Scale(): 'factor' expected 'int or float64' (no bools as ints),
//		// got 'string' with value "2"
//	}
//
// # Error Handling
//
// Unknown parameter names and missing arguments without defaults are
// programmer misuse and surface immediately as ErrUnknownParam or
// ErrMissingParam. Spec mismatches are data-dependent failures: every
// rejected argument of a call is collected into one ArgumentError, which
// exposes per-parameter messages via Has, Get and Params and cooperates with
// errors.As through AsArgumentError.
package enforce
