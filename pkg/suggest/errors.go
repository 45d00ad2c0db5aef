package suggest

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", ErrX) so callers
// can recover the kind via errors.Is while still getting a specific
// message.
var (
	// ErrConfigInvalid is returned by New when construction parameters
	// violate an invariant (e.g. top_k <= 0). Fatal to the instance.
	ErrConfigInvalid = errors.New("suggest: invalid configuration")

	// ErrDuplicateTool is reported by AddTools for a spec whose name
	// already exists in the catalog. Does not destabilize the engine.
	ErrDuplicateTool = errors.New("suggest: duplicate tool name")

	// ErrUnknownTool is reported by RemoveTool for a name not present in
	// the catalog.
	ErrUnknownTool = errors.New("suggest: unknown tool name")

	// ErrInternal marks an unexpected broken invariant. Never silently
	// swallowed.
	ErrInternal = errors.New("suggest: internal invariant violation")
)

// configError wraps ErrConfigInvalid with context about which
// parameter failed.
func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfigInvalid, fmt.Sprintf(format, args...))
}

// duplicateToolError wraps ErrDuplicateTool with the offending name.
func duplicateToolError(name string) error {
	return fmt.Errorf("%w: %q", ErrDuplicateTool, name)
}

// unknownToolError wraps ErrUnknownTool with the offending name.
func unknownToolError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTool, name)
}
