package base

import (
	"fmt"

	"github.com/ib-77/coerce/pkg/coerce"
)

// Check validates a value, returning a non-nil error when it is invalid.
type Check func(v any) error

type config struct {
	name   string
	def    any
	hasDef bool
	checks []Check
	meta   map[string]any
}

// Option configures a Nominal.
type Option func(*config)

// WithName sets the declared name of the type. The default is the
// primitive tag itself.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithDefault sets the value substituted for a nil input.
func WithDefault(v any) Option {
	return func(c *config) {
		c.def = v
		c.hasDef = true
	}
}

// WithCheck appends a validation check. It panics if check is nil.
func WithCheck(check Check) Option {
	if check == nil {
		panic("base: nil check")
	}
	return func(c *config) {
		c.checks = append(c.checks, check)
	}
}

// WithMeta sets a metadata entry carried on the type.
func WithMeta(key string, v any) Option {
	return func(c *config) {
		if c.meta == nil {
			c.meta = make(map[string]any)
		}
		c.meta[key] = v
	}
}

// Nominal is a minimal base type: a primitive tag plus an optional name,
// default value, validation checks and metadata. It is the value raw type
// descriptors are lifted into. Immutable after construction; every
// derivation returns a new instance.
type Nominal struct {
	primitive string
	name      string
	def       any
	hasDef    bool
	checks    []Check
	meta      map[string]any
}

func NewNominal(primitive string, opts ...Option) *Nominal {
	cfg := config{name: primitive}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Nominal{
		primitive: primitive,
		name:      cfg.name,
		def:       cfg.def,
		hasDef:    cfg.hasDef,
		checks:    cfg.checks,
		meta:      cfg.meta,
	}
}

func (n *Nominal) Kind() coerce.Kind {
	return coerce.KindNominal
}

func (n *Nominal) Primitive() string {
	return n.primitive
}

func (n *Nominal) Name() string {
	return n.name
}

func (n *Nominal) HasDefault() bool {
	return n.hasDef
}

// Default returns the default value and whether one is set.
func (n *Nominal) Default() (any, bool) {
	return n.def, n.hasDef
}

func (n *Nominal) CallUnsafe(input any) (any, error) {
	if input == nil && n.hasDef {
		input = n.def
	}
	for _, check := range n.checks {
		if err := check(input); err != nil {
			return nil, err
		}
	}
	return input, nil
}

func (n *Nominal) CallSafe(input any) coerce.Result[any] {
	out, err := n.CallUnsafe(input)
	if err != nil {
		return coerce.Failure[any](input, err)
	}
	return coerce.Success(out)
}

func (n *Nominal) Try(input any, on func(coerce.Result[any]) coerce.Result[any]) coerce.Result[any] {
	r := n.CallSafe(input)
	if on != nil {
		return on(r)
	}
	return r
}

func (n *Nominal) AST(withMeta bool) coerce.Node {
	args := []any{n.primitive}
	if n.name != n.primitive {
		args = append(args, n.name)
	}
	if withMeta && len(n.meta) > 0 {
		args = append(args, n.metaCopy())
	}
	return coerce.Node{Tag: "nominal", Args: args}
}

func (n *Nominal) Lax() coerce.Type {
	return NewLax(n)
}

func (n *Nominal) Supports(op string) bool {
	switch op {
	case OpNamed, OpDefault, OpCheck, OpMeta:
		return true
	default:
		return false
	}
}

// Invoke handles the extension operations of Nominal. Derivation
// operations return a new Nominal of the same kind; OpMeta returns the
// metadata map.
func (n *Nominal) Invoke(op string, args ...any) (any, error) {
	switch op {
	case OpNamed:
		name, err := oneArg[string](op, args)
		if err != nil {
			return nil, err
		}
		return n.derive(func(c *config) { c.name = name }), nil
	case OpDefault:
		if len(args) != 1 {
			return nil, fmt.Errorf("base: %s expects 1 argument, got %d", op, len(args))
		}
		return n.derive(func(c *config) { c.def = args[0]; c.hasDef = true }), nil
	case OpCheck:
		check, err := oneArg[Check](op, args)
		if err != nil {
			return nil, err
		}
		return n.derive(func(c *config) { c.checks = append(c.checks, check) }), nil
	case OpMeta:
		return n.metaCopy(), nil
	default:
		return nil, &coerce.CapabilityError{Op: op, Kind: n.Kind()}
	}
}

func (n *Nominal) derive(mutate func(*config)) *Nominal {
	cfg := config{
		name:   n.name,
		def:    n.def,
		hasDef: n.hasDef,
		checks: append([]Check(nil), n.checks...),
		meta:   n.metaCopy(),
	}
	mutate(&cfg)
	return &Nominal{
		primitive: n.primitive,
		name:      cfg.name,
		def:       cfg.def,
		hasDef:    cfg.hasDef,
		checks:    cfg.checks,
		meta:      cfg.meta,
	}
}

func (n *Nominal) metaCopy() map[string]any {
	if len(n.meta) == 0 {
		return nil
	}
	m := make(map[string]any, len(n.meta))
	for k, v := range n.meta {
		m[k] = v
	}
	return m
}

func oneArg[T any](op string, args []any) (T, error) {
	var zero T
	if len(args) != 1 {
		return zero, fmt.Errorf("base: %s expects 1 argument, got %d", op, len(args))
	}
	v, ok := args[0].(T)
	if !ok {
		return zero, fmt.Errorf("base: %s expects %T, got %T", op, zero, args[0])
	}
	return v, nil
}
