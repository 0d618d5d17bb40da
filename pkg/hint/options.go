package hint

// Options configures type enforcement. Create once and pass by value; the
// zero value is all-false, so start from DefaultOptions when overriding a
// single field.
type Options struct {
	// AllowSubclasses controls whether a value whose dynamic type merely
	// conforms to an atomic spec type (an interface implementer, or a type
	// assignable to it) matches, rather than requiring exact type identity.
	AllowSubclasses bool

	// CheckDefaults controls whether declared default parameter values are
	// applied and validated by the argument-enforcement layer.
	CheckDefaults bool

	// StrictBools controls whether a boolean value is rejected by an integer
	// spec. When false, a bool satisfies an int spec, emulating hosts whose
	// numeric tower treats booleans as integers.
	StrictBools bool
}

// DefaultOptions is the implicit configuration wherever options are
// optional: subclasses allowed, defaults checked, bools never ints.
var DefaultOptions = Options{
	AllowSubclasses: true,
	CheckDefaults:   true,
	StrictBools:     true,
}
