// Package ironclad provides runtime contract enforcement for Go programs.
//
// Ironclad combines a structural type matcher with a composable predicate
// algebra so callers can describe what a value must look like and get a
// readable diagnostic when it does not.
//
// Key Features:
//
//   - Composable, generically typed predicates with lineage-tracked messages
//   - Structural specs for unions, literals, tuples, sequences, sets, and maps
//   - Argument and return-value enforcement for function boundaries
//   - Overload dispatch selecting the most specific matching signature
//   - LRU-cached compilation of specs into predicates
//
// Basic Usage:
//
//	// Describe a constraint and check values against it
//	positive := predicate.Positive[int]()
//	if msg, ok := positive.Explain(-3); !ok {
//		log.Println(msg) // "should be positive"
//	}
//
//	// Describe a structure and compile it into a predicate
//	spec := hint.MapOf(hint.Of[string](), hint.Union(hint.Of[int](), hint.Of[float64]()))
//	pred := hint.AsPredicate(spec, hint.DefaultOptions)
//	pred.Check(map[string]any{"rate": 2.5}) // true
//
// Enforcing Function Contracts:
//
//	enf, _ := enforce.New("Scale", hint.DefaultOptions, []enforce.Param{
//		enforce.Required("factor", hint.Union(hint.Of[int](), hint.Of[float64]())),
//		enforce.WithDefault("label", hint.Of[string](), "linear"),
//	})
//	if err := enf.Check(map[string]any{"factor": "fast"}); err != nil {
//		// 'factor' expected int or float64, got 'string' with value "fast"
//	}
//
// The toolkit is organized into focused packages:
//
//   - pkg/predicate: the predicate algebra, quantifiers, and diagnostics
//   - pkg/hint: structural specs, matching semantics, and the predicate compiler
//   - pkg/enforce: named-argument and return-value enforcement
//   - pkg/dispatch: runtime overload resolution over spec signatures
//   - pkg/config: environment-driven enforcement options
package ironclad
