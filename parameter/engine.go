package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the nominal frame interval; velocities are expressed in pixels per nominal frame
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameScale caps a single tick at this many nominal frames so a stalled loop cannot teleport entities
	MaxFrameScale = 2.0

	// ScoreInterval is the play time that earns one score point
	ScoreInterval = 100 * time.Millisecond
)

// Event queue capacity
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Default viewport in pixels
const (
	ViewportWidth  = 900.0
	ViewportHeight = 600.0
)
