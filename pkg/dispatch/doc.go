// Package dispatch provides runtime overloads selected by argument matching.
//
// A Multimethod holds candidate overloads, each declared as parameter specs
// plus an implementation. Call binds the arguments against every overload
// and runs the most specific one that accepts them all, where specificity is
// the number of non-wildcard parameter specs and ties fall to registration
// order.
//
// # Usage
//
//	area := dispatch.New("Area", hint.DefaultOptions).
//		Register([]enforce.Param{
//			enforce.Required("r", hint.Of[float64]()),
//		}, func(args []any) (any, error) {
//			r := args[0].(float64)
//			return math.Pi * r * r, nil
//		}).
//		Register([]enforce.Param{
//			enforce.Required("w", hint.Of[int]()),
//			enforce.Required("h", hint.Of[int]()),
//		}, func(args []any) (any, error) {
//			return args[0].(int) * args[1].(int), nil
//		})
//
//	out, err := area.Call(3, 4) // 12
//
// When nothing matches the returned error wraps ErrNoOverload and lists the
// argument types alongside every candidate signature.
package dispatch
