package ctor

import (
	"reflect"

	"github.com/ib-77/coerce/pkg/coerce"
	"github.com/ib-77/coerce/pkg/coerce/base"
	"github.com/ib-77/coerce/pkg/coerce/fn"
)

// Constructor decorates a Type with a transform: evaluation first runs
// the transform, then hands the transformed value to the wrapped type's
// own entry point. It implements coerce.Type itself, so constructors can
// be nested and further decorated. Immutable after construction.
type Constructor struct {
	typ  coerce.Type
	f    fn.Fn
	meta map[string]any
}

// New builds a Constructor around input. input is used as-is when it is
// a coerce.Type; a string is lifted into a base.Nominal with that
// primitive tag; any other value is lifted using its reflect.Kind as the
// tag. When transform is nil the fallback supplied via WithFn is used;
// with neither, New fails with coerce.ErrMissingFn.
func New(input any, transform fn.Step, opts ...Option) (*Constructor, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := resolveFn(transform, cfg)
	if err != nil {
		return nil, err
	}

	return &Constructor{
		typ:  liftType(input),
		f:    f,
		meta: cfg.meta,
	}, nil
}

// Must is New that panics on a configuration error.
func Must(input any, transform fn.Step, opts ...Option) *Constructor {
	c, err := New(input, transform, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func liftType(input any) coerce.Type {
	switch v := input.(type) {
	case coerce.Type:
		return v
	case string:
		return base.NewNominal(v)
	case nil:
		return base.NewNominal("any")
	default:
		return base.NewNominal(reflect.TypeOf(input).Kind().String())
	}
}

// Type returns the wrapped type.
func (c *Constructor) Type() coerce.Type {
	return c.typ
}

// Fn returns the owned transform composition.
func (c *Constructor) Fn() fn.Fn {
	return c.f
}

// Meta returns a copy of the constructor's metadata.
func (c *Constructor) Meta() map[string]any {
	return copyMeta(c.meta)
}

func (c *Constructor) Kind() coerce.Kind {
	return coerce.KindConstructor
}

func (c *Constructor) Primitive() string {
	return c.typ.Primitive()
}

func (c *Constructor) Name() string {
	return c.typ.Name()
}

func (c *Constructor) HasDefault() bool {
	return c.typ.HasDefault()
}

// CallSafe runs the transform and hands the result to the wrapped type's
// safe path. It never fails over the error channel: a failing transform
// yields a Failure carrying the original input. A final result produced
// by the transform is returned as-is, skipping the wrapped type's checks.
func (c *Constructor) CallSafe(input any) coerce.Result[any] {
	out, err := c.f.Invoke(input)
	if err != nil {
		return coerce.Failure[any](input, err)
	}
	if r, ok := out.(coerce.Result[any]); ok {
		return r
	}
	return c.typ.CallSafe(out)
}

// CallUnsafe runs the transform and asks the wrapped type to coerce the
// result. Any failure, transform-level or validation-level, is returned
// as a non-nil error.
func (c *Constructor) CallUnsafe(input any) (any, error) {
	out, err := c.f.Invoke(input)
	if err != nil {
		return nil, err
	}
	if r, ok := out.(coerce.Result[any]); ok {
		return r.Unwrap()
	}
	return c.typ.CallUnsafe(out)
}

// Try runs the transform; a transform failure becomes a Failure carrying
// the ORIGINAL input, while a transformed value is delegated to the
// wrapped type's own Try so validation failures keep the wrapped type's
// vocabulary. on may be nil; when supplied on a transform failure or a
// final result, its return value becomes the return value of Try.
func (c *Constructor) Try(input any, on func(coerce.Result[any]) coerce.Result[any]) coerce.Result[any] {
	out, err := c.f.Invoke(input)
	if err != nil {
		r := coerce.Failure[any](input, err)
		if on != nil {
			return on(r)
		}
		return r
	}
	if r, ok := out.(coerce.Result[any]); ok {
		if on != nil {
			return on(r)
		}
		return r
	}
	return c.typ.Try(out, on)
}

// Append returns a new Constructor with the same wrapped type whose
// transform runs the current composition first, then the given one.
func (c *Constructor) Append(transform fn.Step, opts ...Option) (*Constructor, error) {
	g, cfg, err := composeArg(transform, opts)
	if err != nil {
		return nil, err
	}
	return &Constructor{
		typ:  c.typ,
		f:    c.f.Append(g),
		meta: mergeMeta(c.meta, cfg.meta),
	}, nil
}

// Prepend is the symmetric composition: the given transform runs before
// the current composition.
func (c *Constructor) Prepend(transform fn.Step, opts ...Option) (*Constructor, error) {
	g, cfg, err := composeArg(transform, opts)
	if err != nil {
		return nil, err
	}
	return &Constructor{
		typ:  c.typ,
		f:    c.f.Prepend(g),
		meta: mergeMeta(c.meta, cfg.meta),
	}, nil
}

func composeArg(transform fn.Step, opts []Option) (fn.Fn, config, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	g, err := resolveFn(transform, cfg)
	if err != nil {
		return fn.Fn{}, cfg, err
	}
	return g, cfg, nil
}

// AST returns the tagged structural description
// [constructor [wrapped-type-ast fn-descriptor]].
func (c *Constructor) AST(withMeta bool) coerce.Node {
	return coerce.Node{
		Tag:  "constructor",
		Args: []any{c.typ.AST(withMeta), c.f.Descriptor()},
	}
}

// Lax wraps the lax variant of the wrapped type in a fresh Constructor
// with the same transform and options.
func (c *Constructor) Lax() coerce.Type {
	return &Constructor{
		typ:  c.typ.Lax(),
		f:    c.f,
		meta: copyMeta(c.meta),
	}
}

// Func returns a single-argument callable equivalent to CallUnsafe.
func (c *Constructor) Func() func(any) (any, error) {
	return c.CallUnsafe
}

// Supports reports the extension operations reachable through the
// wrapped type.
func (c *Constructor) Supports(op string) bool {
	return c.typ.Supports(op)
}

// Invoke forwards an operation to the wrapped type. When the wrapped
// type answers with a derived type of its own kind, the answer is
// re-wrapped in a new Constructor reusing this constructor's transform
// and options, so the transform survives chained derivations.
func (c *Constructor) Invoke(op string, args ...any) (any, error) {
	if !c.typ.Supports(op) {
		return nil, &coerce.CapabilityError{Op: op, Kind: c.typ.Kind()}
	}
	res, err := c.typ.Invoke(op, args...)
	if err != nil {
		return nil, err
	}
	if t, ok := res.(coerce.Type); ok && t.Kind() == c.typ.Kind() {
		return &Constructor{typ: t, f: c.f, meta: copyMeta(c.meta)}, nil
	}
	return res, nil
}

// Equal reports structural equality: same wrapped type (compared by its
// meta-free structural description) and same transform. Metadata is
// excluded.
func (c *Constructor) Equal(other *Constructor) bool {
	if other == nil {
		return false
	}
	if !c.f.Equal(other.f) {
		return false
	}
	return c.typ.AST(false).Equal(other.typ.AST(false))
}

func copyMeta(meta map[string]any) map[string]any {
	if len(meta) == 0 {
		return nil
	}
	m := make(map[string]any, len(meta))
	for k, v := range meta {
		m[k] = v
	}
	return m
}

func mergeMeta(old, extra map[string]any) map[string]any {
	if len(old) == 0 && len(extra) == 0 {
		return nil
	}
	m := make(map[string]any, len(old)+len(extra))
	for k, v := range old {
		m[k] = v
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}
