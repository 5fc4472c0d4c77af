package driving

import "github.com/custodia-labs/radix-cli/internal/core/domain"

// Keypad is the calculator's interaction state machine.
// A Keypad is owned by a single controller and is not safe for concurrent use.
type Keypad interface {
	// Press applies one keypad input.
	// Ignored inputs return nil and leave the state unchanged.
	Press(input domain.KeypadInput) error

	// Snapshot returns a copy of the current state.
	Snapshot() domain.KeypadSnapshot

	// Reset clears the keypad and selects base.
	Reset(base domain.Base)
}
