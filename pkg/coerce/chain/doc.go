// Package chain provides a fluent wrapper for building and evaluating
// Constructor pipelines without handling configuration errors at each
// step.
//
// Key operations:
// - Lift/From: begin a chain from a raw descriptor, Type or Constructor
// - Then/Before: extend the transform after or before the composition
// - Ensure: run side effects on the constructor built so far
// - Call/Try: evaluate an input through the built constructor
// - Finally: reduce an evaluation to a concrete value via handlers
package chain
