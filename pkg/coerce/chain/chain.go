package chain

import (
	"github.com/ib-77/coerce/pkg/coerce"
	"github.com/ib-77/coerce/pkg/coerce/ctor"
	"github.com/ib-77/coerce/pkg/coerce/fn"
)

// Chain wraps a Constructor build pipeline to enable fluent chaining.
// The first configuration error short-circuits the rest of the chain.
type Chain struct {
	c   *ctor.Constructor
	err error
}

// Lift starts a chain by building a Constructor around input.
func Lift(input any, transform fn.Step, opts ...ctor.Option) *Chain {
	c, err := ctor.New(input, transform, opts...)
	return &Chain{c: c, err: err}
}

// From starts a chain from an existing Constructor.
func From(c *ctor.Constructor) *Chain {
	return &Chain{c: c}
}

// Then appends a transform that runs after the current composition.
func (ch *Chain) Then(transform fn.Step, opts ...ctor.Option) *Chain {
	if ch.err != nil {
		return ch
	}
	c, err := ch.c.Append(transform, opts...)
	return &Chain{c: c, err: err}
}

// Before prepends a transform that runs before the current composition.
func (ch *Chain) Before(transform fn.Step, opts ...ctor.Option) *Chain {
	if ch.err != nil {
		return ch
	}
	c, err := ch.c.Prepend(transform, opts...)
	return &Chain{c: c, err: err}
}

// Ensure runs a side effect on the constructor built so far without
// changing the chain. It is skipped once the chain holds an error.
func (ch *Chain) Ensure(onBuilt func(*ctor.Constructor)) *Chain {
	if ch.err == nil && onBuilt != nil {
		onBuilt(ch.c)
	}
	return ch
}

// Constructor returns the built Constructor or the first configuration
// error encountered along the chain.
func (ch *Chain) Constructor() (*ctor.Constructor, error) {
	return ch.c, ch.err
}

// Must returns the built Constructor, panicking on a configuration error.
func (ch *Chain) Must() *ctor.Constructor {
	if ch.err != nil {
		panic(ch.err)
	}
	return ch.c
}

// Call evaluates input through the built constructor's unsafe path.
func (ch *Chain) Call(input any) (any, error) {
	if ch.err != nil {
		return nil, ch.err
	}
	return ch.c.CallUnsafe(input)
}

// Try evaluates input through the built constructor, folding every
// failure, configuration included, into a Result.
func (ch *Chain) Try(input any) coerce.Result[any] {
	if ch.err != nil {
		return coerce.Failure[any](input, ch.err)
	}
	return ch.c.Try(input, nil)
}

// Finally collapses an evaluation to a final value via handlers.
func Finally[Out any](ch *Chain, input any,
	onSuccess func(v any) Out,
	onFailure func(err error) Out) Out {

	r := ch.Try(input)
	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return onFailure(r.Err())
}
