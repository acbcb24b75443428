package ability

import (
	"time"

	"github.com/lixenwraith/chase/parameter"
)

// Timer mirrors the chaser's active ability on the target side for display only
type Timer struct {
	Kind      Kind
	Remaining time.Duration
}

// Start begins a local countdown for k, replacing any running one
func (t *Timer) Start(k Kind) {
	t.Kind = k
	t.Remaining = k.Spec().Duration
}

// Tick counts down by the fixed decrement and clears on expiry
func (t *Timer) Tick() {
	if t.Kind == None {
		return
	}
	t.Remaining -= parameter.AbilityTickDecrement
	if t.Remaining <= 0 {
		t.Kind = None
		t.Remaining = 0
	}
}
