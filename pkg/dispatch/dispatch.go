package dispatch

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/ironclad/pkg/enforce"
	"github.com/dmitrymomot/ironclad/pkg/hint"
	"github.com/dmitrymomot/ironclad/pkg/predicate"
)

// Impl is an overload body, invoked with the bound positional arguments.
type Impl func(args []any) (any, error)

type overload struct {
	params     []enforce.Param
	validators []predicate.Predicate[any]
	score      int
	impl       Impl
}

// Multimethod dispatches a call to the registered overload whose parameter
// specs match the arguments. Among multiple matches the most specific
// overload wins (the one with the fewest wildcard specs), with registration
// order as the stable tiebreak.
//
// Register all overloads before calling; a Multimethod is safe for
// concurrent Calls once registration is done.
type Multimethod struct {
	name      string
	opts      hint.Options
	overloads []overload
}

// New creates an empty multimethod with the given display name.
func New(name string, opts hint.Options) *Multimethod {
	return &Multimethod{name: name, opts: opts}
}

// Register adds an overload and returns the receiver for chaining.
// Validators are compiled immediately. Duplicate parameter names within one
// overload are programmer misuse and panic.
func (m *Multimethod) Register(params []enforce.Param, impl Impl) *Multimethod {
	seen := make(map[string]bool, len(params))
	validators := make([]predicate.Predicate[any], len(params))
	score := 0

	for i, p := range params {
		if seen[p.Name] {
			panic(fmt.Sprintf("dispatch: duplicate parameter %q in overload of %s", p.Name, m.name))
		}
		seen[p.Name] = true
		validators[i] = hint.AsPredicate(p.Spec, m.opts)
		if p.Spec.Kind() != hint.KindAny {
			score++
		}
	}

	m.overloads = append(m.overloads, overload{
		params:     params,
		validators: validators,
		score:      score,
		impl:       impl,
	})
	return m
}

// Call binds the arguments positionally against each overload, filling
// omitted trailing parameters from their defaults, and invokes the most
// specific overload whose specs all accept. Returns ErrNoOverload when
// nothing matches.
func (m *Multimethod) Call(args ...any) (any, error) {
	best := -1
	bestScore := -1

	for i, o := range m.overloads {
		bound, ok := o.bind(args, m.opts)
		if !ok {
			continue
		}
		accepted := true
		for j, pred := range o.validators {
			if !pred.Check(bound[j]) {
				accepted = false
				break
			}
		}
		// registration order breaks ties, so strictly-greater only
		if accepted && o.score > bestScore {
			best = i
			bestScore = o.score
		}
	}

	if best < 0 {
		return nil, fmt.Errorf("%w: no overload of %s() matches (%s); candidates: %s",
			ErrNoOverload, m.name, argTypes(args), m.candidates())
	}

	o := m.overloads[best]
	bound, _ := o.bind(args, m.opts)
	return o.impl(bound)
}

// bind maps positional arguments onto the overload's parameters, applying
// defaults for omitted trailing parameters.
func (o overload) bind(args []any, opts hint.Options) ([]any, bool) {
	if len(args) > len(o.params) {
		return nil, false
	}

	bound := make([]any, len(o.params))
	copy(bound, args)
	for i := len(args); i < len(o.params); i++ {
		p := o.params[i]
		if !p.HasDefault || !opts.CheckDefaults {
			return nil, false
		}
		bound[i] = p.Default
	}
	return bound, true
}

func (m *Multimethod) candidates() string {
	sigs := make([]string, len(m.overloads))
	for i, o := range m.overloads {
		parts := make([]string, len(o.params))
		for j, p := range o.params {
			parts[j] = p.Name + ": " + p.Spec.String()
		}
		sigs[i] = fmt.Sprintf("%s(%s)", m.name, strings.Join(parts, ", "))
	}
	return strings.Join(sigs, " | ")
}

func argTypes(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = typeLabel(a)
	}
	return strings.Join(parts, ", ")
}

func typeLabel(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
