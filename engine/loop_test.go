package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/chase/event"
	"github.com/lixenwraith/chase/parameter"
)

type stubGame struct {
	handled []event.EventType
	ticks   int
	stopOn  event.EventType
	maxTick int
}

func (g *stubGame) HandleEvent(ev event.GameEvent) bool {
	g.handled = append(g.handled, ev.Type)
	return ev.Type != g.stopOn
}

func (g *stubGame) Tick(now time.Time) (Snapshot, bool) {
	g.ticks++
	return Snapshot{Score: g.ticks}, g.maxTick == 0 || g.ticks < g.maxTick
}

type countingPresenter struct {
	frames int
	last   Snapshot
}

func (p *countingPresenter) Present(s Snapshot) {
	p.frames++
	p.last = s
}

func TestLoopStepDrainsQueueBeforeTick(t *testing.T) {
	q := event.NewEventQueue()
	g := &stubGame{}
	p := &countingPresenter{}
	l := NewLoop(q, g, p, NewMockTimeProvider(time.Unix(0, 0)))

	q.Push(event.GameEvent{Type: event.EventPointer})
	q.Push(event.GameEvent{Type: event.EventMessage})

	if !l.Step() {
		t.Fatal("Expected loop to continue")
	}
	if len(g.handled) != 2 || g.handled[0] != event.EventPointer || g.handled[1] != event.EventMessage {
		t.Errorf("Expected events in order, got %v", g.handled)
	}
	if g.ticks != 1 || p.frames != 1 {
		t.Errorf("Expected 1 tick and 1 frame, got %d and %d", g.ticks, p.frames)
	}
	if q.Len() != 0 {
		t.Errorf("Expected drained queue, got %d", q.Len())
	}
}

func TestLoopStopsOnEvent(t *testing.T) {
	q := event.NewEventQueue()
	g := &stubGame{stopOn: event.EventQuit}
	l := NewLoop(q, g, nil, NewMockTimeProvider(time.Unix(0, 0)))

	q.Push(event.GameEvent{Type: event.EventQuit})
	if l.Step() {
		t.Error("Expected loop to stop on quit")
	}
	if g.ticks != 0 {
		t.Errorf("Expected no tick after stop, got %d", g.ticks)
	}
}

func TestLoopRunUntilGameStops(t *testing.T) {
	q := event.NewEventQueue()
	g := &stubGame{maxTick: 3}
	p := &countingPresenter{}
	l := NewLoop(q, g, p, NewMonotonicTimeProvider())
	l.SetInterval(time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	last := l.Run(ctx)
	if last.Score != 3 {
		t.Errorf("Expected last snapshot of tick 3, got %d", last.Score)
	}
	if l.Frames() != 3 {
		t.Errorf("Expected 3 frames, got %d", l.Frames())
	}
}

func TestLoopRunCancelled(t *testing.T) {
	l := NewLoop(event.NewEventQueue(), &stubGame{}, nil, NewMonotonicTimeProvider())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestFrameScaleClamped(t *testing.T) {
	if s := FrameScale(parameter.FrameUpdateInterval); s != 1 {
		t.Errorf("Expected 1, got %f", s)
	}
	if s := FrameScale(time.Second); s != parameter.MaxFrameScale {
		t.Errorf("Expected clamp to %f, got %f", parameter.MaxFrameScale, s)
	}
	if s := FrameScale(-time.Millisecond); s != 0 {
		t.Errorf("Expected 0 for negative elapsed, got %f", s)
	}
}

func TestStepperRoundTime(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(100, 0))
	st := NewStepper(clock.Now())

	clock.Advance(8 * time.Millisecond)
	dt, now := st.Step(clock.Now())
	if dt != 0.5 {
		t.Errorf("Expected dt 0.5, got %f", dt)
	}
	if now != 8*time.Millisecond {
		t.Errorf("Expected round time 8ms, got %v", now)
	}

	clock.Advance(time.Second)
	dt, now = st.Step(clock.Now())
	if dt != parameter.MaxFrameScale {
		t.Errorf("Expected clamped dt, got %f", dt)
	}
	if now != time.Second+8*time.Millisecond {
		t.Errorf("Unexpected round time %v", now)
	}
}

func TestPresentersFanOut(t *testing.T) {
	a, b := &countingPresenter{}, &countingPresenter{}
	Presenters{a, b}.Present(Snapshot{Score: 3})
	if a.frames != 1 || b.frames != 1 {
		t.Fatalf("Expected both presenters called once, got %d and %d", a.frames, b.frames)
	}
	if b.last.Score != 3 {
		t.Errorf("Expected score 3, got %d", b.last.Score)
	}
}
