package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/chase/event"
	"github.com/lixenwraith/chase/parameter"
)

// Game consumes queued events and advances one frame per tick
type Game interface {
	// HandleEvent returns false to stop the loop
	HandleEvent(ev event.GameEvent) bool

	// Tick returns the frame to present and false to stop the loop
	Tick(now time.Time) (Snapshot, bool)
}

// Presenter draws a snapshot, called on the loop goroutine only
type Presenter interface {
	Present(s Snapshot)
}

// Presenters fans a snapshot out to each presenter in order
type Presenters []Presenter

func (ps Presenters) Present(s Snapshot) {
	for _, p := range ps {
		p.Present(s)
	}
}

// Loop is the single-threaded frame driver
// Producers (input, network) only push to the queue, all state changes happen here
type Loop struct {
	queue     *event.EventQueue
	game      Game
	presenter Presenter
	clock     TimeProvider
	interval  time.Duration

	frames uint64
	last   Snapshot
}

func NewLoop(queue *event.EventQueue, game Game, presenter Presenter, clock TimeProvider) *Loop {
	return &Loop{
		queue:     queue,
		game:      game,
		presenter: presenter,
		clock:     clock,
		interval:  parameter.FrameUpdateInterval,
	}
}

// SetInterval overrides the tick period, non-positive values are ignored
func (l *Loop) SetInterval(d time.Duration) {
	if d > 0 {
		l.interval = d
	}
}

// Step drains pending events and runs one tick
func (l *Loop) Step() bool {
	for _, ev := range l.queue.Consume() {
		if !l.game.HandleEvent(ev) {
			return false
		}
	}

	snap, ok := l.game.Tick(l.clock.Now())
	l.frames++
	l.last = snap
	if l.presenter != nil {
		l.presenter.Present(snap)
	}
	return ok
}

// Run ticks until the game stops or ctx is cancelled
func (l *Loop) Run(ctx context.Context) Snapshot {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return l.last
		case <-ticker.C:
			if !l.Step() {
				return l.last
			}
		}
	}
}

// Frames returns the number of completed ticks
func (l *Loop) Frames() uint64 {
	return l.frames
}
