package runtimeapi

// These consts are used in various places of the emitter.
// Instead of defining them in each file, we define them here so that we can quickly iterate on
// debugging without spending "where do we have debug logging?" time.

// ----- Output prints -----
// These consts must be disabled by default. Enable them only when debugging.

const (
	// PrintFinalizedMachineCode prints the hex of each finalized unit in Assemble.
	PrintFinalizedMachineCode = false
	// PrintFixupResolution prints every patched fixup site with its resolved displacement.
	PrintFixupResolution = false
)

// ----- Validations -----
// These consts must be enabled by default.

const (
	// UnboundLabelValidationEnabled makes Assemble fail when a label still has pending references.
	UnboundLabelValidationEnabled = true
)
