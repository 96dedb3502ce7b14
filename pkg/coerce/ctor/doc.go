// Package ctor implements the decorating type wrapper: a Constructor
// owns a wrapped Type and a transform, and evaluation becomes
// "transform, then coerce/validate with the wrapped type".
//
// Key operations:
// - New/Must: build a Constructor from a Type or a raw descriptor
// - CallSafe/CallUnsafe/Try: the three evaluation conventions
// - Append/Prepend: derive a Constructor with an extended transform
// - AST/Lax/Func: structural description, best-effort variant, callable
// - Supports/Invoke: delegation fallback with same-kind re-wrapping
//
// A Constructor implements coerce.Type, so it quacks like whatever it
// wraps and can itself be wrapped again.
package ctor
