package parameter

import "time"

// Terminal input
const (
	// KeyHoldWindow keeps a control held after its last key event, terminals report no key release
	KeyHoldWindow = 150 * time.Millisecond

	// StatusRows is the number of terminal rows reserved below the playfield
	StatusRows = 1
)
