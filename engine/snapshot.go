package engine

import (
	"time"

	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/vmath"
)

// Snapshot is the read-only per-tick state handed to presenters
// Slices are copies owned by the snapshot
type Snapshot struct {
	Role   protocol.Role
	Bounds vmath.Rect
	Now    time.Duration

	Chaser component.Chaser
	Target component.Target
	Clones []component.Clone
	Lines  []component.Line
	Waves  []component.Shockwave

	LineTTL time.Duration

	Ability   ability.Kind
	Remaining time.Duration
	TimeScale float64
	Score     int

	GameOver   bool
	FinalScore int

	// Session level fields, filled by the session
	Phase    string
	Opponent string
	Outcome  Outcome
}
