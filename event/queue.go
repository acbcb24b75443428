package event

import (
	"sync/atomic"

	"github.com/lixenwraith/chase/parameter"
)

type slot struct {
	ev    GameEvent
	ready atomic.Bool // set after ev is written, cleared by the consumer
}

// EventQueue is the lock-free MPSC ring between producer goroutines (input, network) and the frame loop
// Push may be called from any goroutine, Consume only from the loop
// When producers outrun the loop the oldest events are overwritten and counted
type EventQueue struct {
	slots   [parameter.EventQueueSize]slot
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
	scratch []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{scratch: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// Push reserves a slot by CAS on the write index, then publishes it
func (q *EventQueue) Push(ev GameEvent) {
	for {
		w := q.write.Load()
		if !q.write.CompareAndSwap(w, w+1) {
			continue
		}
		s := &q.slots[w&parameter.EventBufferMask]
		s.ev = ev
		s.ready.Store(true)

		// Drag the read index forward over the slot just overwritten
		if r := q.read.Load(); w+1-r > parameter.EventQueueSize {
			if q.read.CompareAndSwap(r, w+1-parameter.EventQueueSize) {
				q.dropped.Add(w + 1 - parameter.EventQueueSize - r)
			}
		}
		return
	}
}

// Consume returns pending events oldest first, stopping at the first unpublished slot
// The returned slice is reused by the next call
func (q *EventQueue) Consume() []GameEvent {
	for {
		r := q.read.Load()
		w := q.write.Load()
		if w == r {
			return nil
		}
		if w-r > parameter.EventQueueSize {
			r = w - parameter.EventQueueSize
		}

		out := q.scratch[:0]
		for i := r; i < w; i++ {
			s := &q.slots[i&parameter.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			out = append(out, s.ev)
			s.ev = GameEvent{}
			s.ready.Store(false)
		}

		if q.read.CompareAndSwap(r, r+uint64(len(out))) {
			q.scratch = out
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is the approximate number of pending events
func (q *EventQueue) Len() int {
	r, w := q.read.Load(), q.write.Load()
	switch {
	case w <= r:
		return 0
	case w-r > parameter.EventQueueSize:
		return parameter.EventQueueSize
	default:
		return int(w - r)
	}
}

// Dropped counts events overwritten before the loop consumed them
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
