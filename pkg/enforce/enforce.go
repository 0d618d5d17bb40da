package enforce

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/ironclad/pkg/hint"
	"github.com/dmitrymomot/ironclad/pkg/predicate"
)

// maxValueRepr caps the rendered length of offending values in error
// messages.
const maxValueRepr = 80

// Param declares a single enforced parameter: its name, the spec its values
// must satisfy, and an optional default applied when the argument is absent.
type Param struct {
	Name       string
	Spec       hint.Spec
	Default    any
	HasDefault bool
}

// Required declares a parameter without a default.
func Required(name string, spec hint.Spec) Param {
	return Param{Name: name, Spec: spec}
}

// WithDefault declares a parameter with a default value, applied and
// validated when Options.CheckDefaults is set.
func WithDefault(name string, spec hint.Spec, def any) Param {
	return Param{Name: name, Spec: spec, Default: def, HasDefault: true}
}

// Option customizes an Enforcer.
type Option func(*Enforcer)

// WithLogger enables debug logging of compilation and rejected calls.
func WithLogger(log *slog.Logger) Option {
	return func(e *Enforcer) { e.log = log }
}

// WithReturn adds a spec the return value must satisfy, checked via
// CheckReturn.
func WithReturn(spec hint.Spec) Option {
	return func(e *Enforcer) { e.ret = &spec }
}

// Enforcer validates named arguments against parameter specs. Validators are
// compiled once at construction (through the shared predicate cache) and the
// enforcer is safe for concurrent use afterwards.
//
// The enforcer never reflects on callables: callers hand it already-resolved
// parameter declarations, and at call time a mapping of parameter name to
// value.
type Enforcer struct {
	funcName   string
	opts       hint.Options
	params     []Param
	validators map[string]predicate.Predicate[any]
	conditions string
	ret        *hint.Spec
	retPred    predicate.Predicate[any]
	log        *slog.Logger
}

// New builds an enforcer for a function-like contract. Duplicate parameter
// names are programmer misuse and fail immediately.
func New(funcName string, opts hint.Options, params []Param, options ...Option) (*Enforcer, error) {
	e := &Enforcer{
		funcName:   funcName,
		opts:       opts,
		params:     params,
		validators: make(map[string]predicate.Predicate[any], len(params)),
	}
	for _, o := range options {
		o(e)
	}

	mentionBools := false
	for _, p := range params {
		if _, ok := e.validators[p.Name]; ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateParam, p.Name, funcName)
		}
		e.validators[p.Name] = hint.AsPredicate(p.Spec, opts)
		if hint.SpecContainsInt(p.Spec) {
			mentionBools = true
		}
	}
	e.conditions = renderConditions(opts, mentionBools)

	if e.ret != nil {
		e.retPred = hint.AsPredicate(*e.ret, opts)
	}

	if e.log != nil {
		e.log.Debug("compiled argument validators",
			slog.String("func", funcName),
			slog.Int("params", len(params)))
	}

	return e, nil
}

// MustNew is New but panics on error, for package-level contract values.
func MustNew(funcName string, opts hint.Options, params []Param, options ...Option) *Enforcer {
	e, err := New(funcName, opts, params, options...)
	if err != nil {
		panic(err)
	}
	return e
}

// Check validates a call. Arguments for unknown parameters and missing
// arguments without defaults are hard errors; spec mismatches are collected
// into a single ArgumentError covering every rejected argument.
func (e *Enforcer) Check(args map[string]any) error {
	for name := range args {
		if _, ok := e.validators[name]; !ok {
			return fmt.Errorf("%w: %q in %s", ErrUnknownParam, name, e.funcName)
		}
	}

	var violations []Violation
	for _, p := range e.params {
		val, supplied := args[p.Name]
		if !supplied {
			if !p.HasDefault {
				return fmt.Errorf("%w: %q in %s", ErrMissingParam, p.Name, e.funcName)
			}
			if !e.opts.CheckDefaults {
				continue
			}
			val = p.Default
		}

		pred := e.validators[p.Name]
		if pred.Check(val) {
			continue
		}
		violations = append(violations, Violation{
			Param: p.Name,
			Message: fmt.Sprintf("'%s' expected %s%s, got '%s' with value %s",
				p.Name, pred.RenderMsg(val), e.conditions, typeLabel(val), shortRepr(val)),
		})
	}

	if len(violations) == 0 {
		return nil
	}

	if e.log != nil {
		e.log.Debug("rejected call",
			slog.String("func", e.funcName),
			slog.Int("violations", len(violations)))
	}
	return &ArgumentError{FuncName: e.funcName, Violations: violations}
}

// Values validates value constraints (arbitrary predicates rather than type
// specs) against a call. Constraint names must belong to declared
// parameters.
func (e *Enforcer) Values(args map[string]any, constraints map[string]predicate.Predicate[any]) error {
	for name := range constraints {
		if _, ok := e.validators[name]; !ok {
			return fmt.Errorf("%w: %q in %s", ErrUnknownParam, name, e.funcName)
		}
	}

	bound, err := e.bind(args)
	if err != nil {
		return err
	}

	var violations []Violation
	for _, p := range e.params {
		pred, constrained := constraints[p.Name]
		if !constrained {
			continue
		}
		val, ok := bound[p.Name]
		if !ok {
			continue
		}
		if pred.Check(val) {
			continue
		}
		violations = append(violations, Violation{
			Param: p.Name,
			Message: fmt.Sprintf("'%s' failed constraint: %s; got %s",
				p.Name, pred.RenderMsg(val), shortRepr(val)),
		})
	}

	if len(violations) == 0 {
		return nil
	}
	return &ArgumentError{FuncName: e.funcName, Violations: violations}
}

// Coerce applies defaults and per-parameter coercer functions, returning the
// rebound argument mapping. Useful for turning string arguments from CLIs,
// environments or web handlers into their proper types before Check.
func (e *Enforcer) Coerce(args map[string]any, coercers map[string]func(any) any) (map[string]any, error) {
	for name := range coercers {
		if _, ok := e.validators[name]; !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownParam, name, e.funcName)
		}
	}

	bound, err := e.bind(args)
	if err != nil {
		return nil, err
	}

	for name, coerce := range coercers {
		if val, ok := bound[name]; ok {
			bound[name] = coerce(val)
		}
	}
	return bound, nil
}

// CheckReturn validates a return value against the spec given via
// WithReturn. It is a no-op when no return spec was declared.
func (e *Enforcer) CheckReturn(out any) error {
	if e.ret == nil {
		return nil
	}
	if e.retPred.Check(out) {
		return nil
	}
	return fmt.Errorf("%w: %s(): return expected %s, got '%s'",
		ErrReturnViolation, e.funcName, e.ret.String(), typeLabel(out))
}

// bind resolves a call into a full name-to-value mapping, applying defaults
// for absent arguments.
func (e *Enforcer) bind(args map[string]any) (map[string]any, error) {
	for name := range args {
		if _, ok := e.validators[name]; !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownParam, name, e.funcName)
		}
	}

	bound := make(map[string]any, len(e.params))
	for _, p := range e.params {
		if val, ok := args[p.Name]; ok {
			bound[p.Name] = val
			continue
		}
		if !p.HasDefault {
			return nil, fmt.Errorf("%w: %q in %s", ErrMissingParam, p.Name, e.funcName)
		}
		bound[p.Name] = p.Default
	}
	return bound, nil
}

func renderConditions(opts hint.Options, mentionBools bool) string {
	var conds []string
	if !opts.AllowSubclasses {
		conds = append(conds, "no subclasses")
	}
	if opts.StrictBools && mentionBools {
		conds = append(conds, "no bools as ints")
	}
	if len(conds) == 0 {
		return ""
	}
	out := " ("
	for i, c := range conds {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out + ")"
}

func typeLabel(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	return t.String()
}

func shortRepr(v any) string {
	s := fmt.Sprintf("%#v", v)
	if len(s) > maxValueRepr {
		return s[:maxValueRepr] + "..."
	}
	return s
}
