package coerce

// Kind tags a Type implementation so the delegation fallback can decide
// whether a derived type is of the same runtime kind as the wrapped one.
type Kind uint8

const (
	KindNominal Kind = iota
	KindLax
	KindConstructor
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindNominal:
		return "nominal"
	case KindLax:
		return "lax"
	case KindConstructor:
		return "constructor"
	default:
		return "unknown"
	}
}

// Introspect is the read-only descriptive surface of a Type.
type Introspect interface {
	// Primitive returns the underlying representation tag ("int", "string", ...)
	Primitive() string
	// Name returns the declared name of the type
	Name() string
	// HasDefault reports whether the type carries a default value
	HasDefault() bool
}

// Evaluator groups the three evaluation entry points of a Type.
type Evaluator interface {
	// CallSafe evaluates input and never fails over the error channel;
	// every outcome is folded into the returned Result.
	CallSafe(input any) Result[any]
	// CallUnsafe evaluates input and returns a non-nil error on any
	// transform or validation failure.
	CallUnsafe(input any) (any, error)
	// Try evaluates input, folding transform failures into a Result that
	// records the original input. on may be nil; when supplied, the
	// result is passed through it and its return value is returned.
	Try(input any, on func(Result[any]) Result[any]) Result[any]
}

// Capabilities is the dynamic extension surface of a Type. Operations
// outside the enumerated contract are reachable only through it.
type Capabilities interface {
	// Supports reports whether the type handles the named operation
	Supports(op string) bool
	// Invoke runs the named operation; unsupported operations fail with
	// a CapabilityError
	Invoke(op string, args ...any) (any, error)
}

// Type is the full capability contract implemented by every value that
// can be wrapped by, or produced from, a constructor type.
type Type interface {
	Introspect
	Evaluator
	Capabilities

	// Kind returns the runtime kind tag
	Kind() Kind
	// AST returns a structural description of the type; withMeta controls
	// whether metadata is included
	AST(withMeta bool) Node
	// Lax returns a failure-suppressing variant of the type
	Lax() Type
}
