package base

// Extension operations handled by the base types, reachable through the
// Capabilities surface.
const (
	// OpNamed derives a type with a new declared name (args: string)
	OpNamed = "named"
	// OpDefault derives a type with a default value (args: any)
	OpDefault = "default"
	// OpCheck derives a type with an extra validation check (args: Check)
	OpCheck = "check"
	// OpMeta returns the metadata map of the type (no args)
	OpMeta = "meta"
)
