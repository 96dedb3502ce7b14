package coerce

import (
	"time"

	"github.com/google/uuid"
)

// Result is the discriminated outcome of evaluating an input against a
// Type: a success carrying the coerced value, or a failure carrying the
// error together with the original, untransformed input. A final result
// additionally marks that a transform produced the outcome directly and
// the wrapped type's own checks were skipped.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	input     any
	err       error
	isSuccess bool
	isFinal   bool
	hasValue  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		isFinal:   false,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

// Final builds a success that short-circuits evaluation: the value is
// already considered coerced and no further checks run.
func Final[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		isFinal:   true,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

// Failure builds a failed result. input is the original value handed to
// the failing stage, kept so callers can tell a transform failure (which
// records the pre-transform input) from a validation failure (which
// records whatever the wrapped type reported).
func Failure[T any](input any, err error) Result[T] {
	return Result[T]{
		input:     input,
		err:       err,
		isSuccess: false,
		isFinal:   false,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Input() any {
	return r.input
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsFinal() bool {
	return r.isFinal
}

func (r Result[T]) HasValue() bool {
	return r.hasValue
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Unwrap collapses the result into the (value, error) convention.
func (r Result[T]) Unwrap() (T, error) {
	if r.isSuccess {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}
