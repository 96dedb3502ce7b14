// Package base contains minimal Type implementations used as building
// blocks for decoration: Nominal, a primitive tag with optional name,
// default, checks and metadata, and Lax, a failure-suppressing wrapper.
//
// Key constructs:
// - NewNominal + options (WithName/WithDefault/WithCheck/WithMeta)
// - NewLax: best-effort variant of any Type
// - Op* constants: extension operations reachable via Supports/Invoke
//
// Raw type descriptors handed to higher-level constructors are lifted
// into Nominal values from this package.
package base
