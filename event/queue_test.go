package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/chase/parameter"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventPointer, Payload: &PointerPayload{X: float64(i)}})
	}

	if q.Len() != 5 {
		t.Fatalf("Expected 5 pending, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		p := ev.Payload.(*PointerPayload)
		if p.X != float64(i) {
			t.Errorf("Expected X=%d at index %d, got %f", i, i, p.X)
		}
	}

	if q.Consume() != nil {
		t.Error("Expected nil after drain")
	}
}

func TestEventQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventMessage, Payload: &MessagePayload{Seq: uint32(i)}})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
	last := events[len(events)-1].Payload.(*MessagePayload)
	if last.Seq != uint32(total-1) {
		t.Errorf("Expected newest seq %d, got %d", total-1, last.Seq)
	}
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventControl})
			}
		}()
	}
	wg.Wait()

	if n := len(q.Consume()); n != 400 {
		t.Errorf("Expected 400 events, got %d", n)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventChannelClosed.String() != "EventChannelClosed" {
		t.Errorf("Expected EventChannelClosed, got %s", EventChannelClosed.String())
	}
	if EventType(999).String() != "EventUnknown" {
		t.Errorf("Expected EventUnknown, got %s", EventType(999).String())
	}
}
