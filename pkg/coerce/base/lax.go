package base

import (
	"github.com/ib-77/coerce/pkg/coerce"
)

// Lax wraps a type and suppresses its failures: evaluation is
// best-effort, falling back to the default value when one is set and to
// the input itself otherwise.
type Lax struct {
	inner coerce.Type
}

func NewLax(inner coerce.Type) *Lax {
	return &Lax{inner: inner}
}

// Inner returns the wrapped type.
func (l *Lax) Inner() coerce.Type {
	return l.inner
}

func (l *Lax) Kind() coerce.Kind {
	return coerce.KindLax
}

func (l *Lax) Primitive() string {
	return l.inner.Primitive()
}

func (l *Lax) Name() string {
	return l.inner.Name()
}

func (l *Lax) HasDefault() bool {
	return l.inner.HasDefault()
}

func (l *Lax) CallUnsafe(input any) (any, error) {
	out, err := l.inner.CallUnsafe(input)
	if err != nil {
		return l.fallback(input), nil
	}
	return out, nil
}

func (l *Lax) CallSafe(input any) coerce.Result[any] {
	r := l.inner.CallSafe(input)
	if r.IsFailure() {
		return coerce.Success(l.fallback(input))
	}
	return r
}

func (l *Lax) Try(input any, on func(coerce.Result[any]) coerce.Result[any]) coerce.Result[any] {
	r := l.CallSafe(input)
	if on != nil {
		return on(r)
	}
	return r
}

func (l *Lax) AST(withMeta bool) coerce.Node {
	return coerce.Node{Tag: "lax", Args: []any{l.inner.AST(withMeta)}}
}

// Lax is idempotent.
func (l *Lax) Lax() coerce.Type {
	return l
}

func (l *Lax) Supports(op string) bool {
	return l.inner.Supports(op)
}

// Invoke forwards to the wrapped type. A derived type of the wrapped
// kind is re-wrapped so laxness survives derivation.
func (l *Lax) Invoke(op string, args ...any) (any, error) {
	res, err := l.inner.Invoke(op, args...)
	if err != nil {
		return nil, err
	}
	if t, ok := res.(coerce.Type); ok && t.Kind() == l.inner.Kind() {
		return NewLax(t), nil
	}
	return res, nil
}

func (l *Lax) fallback(input any) any {
	if d, ok := defaultOf(l.inner); ok {
		return d
	}
	return input
}

func defaultOf(t coerce.Type) (any, bool) {
	if !t.HasDefault() {
		return nil, false
	}
	if n, ok := t.(*Nominal); ok {
		return n.Default()
	}
	return nil, false
}
