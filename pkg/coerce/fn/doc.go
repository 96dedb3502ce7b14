// Package fn represents transforms as immutable compositions of named
// steps with a stable composition algebra.
//
// Key operations:
// - Wrap/Named/MustWrap: build an Fn from a single step
// - Invoke: run the steps left to right, stopping on the first error
// - Append/Prepend: compose two Fn values into a new one
// - Descriptor: structural description of the steps for printing
//
// Composition is associative: chaining a then b then c behaves the same
// however the chaining is grouped. A step may short-circuit the whole
// composition by returning a coerce.Result[any] directly.
package fn
