package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chase/event"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// Poller reads terminal events on its own goroutine and pushes logical events to the queue
// It never touches game state
type Poller struct {
	screen tcell.Screen
	queue  *event.EventQueue
	keys   *KeyTable
	bounds vmath.Rect
	grid   vmath.Grid
	crash  func(any)
}

func NewPoller(screen tcell.Screen, queue *event.EventQueue, bounds vmath.Rect) *Poller {
	cols, rows := screen.Size()
	return &Poller{
		screen: screen,
		queue:  queue,
		keys:   DefaultKeyTable(),
		bounds: bounds,
		grid:   PlayfieldGrid(cols, rows, bounds),
	}
}

// PlayfieldGrid maps a terminal of cols x rows onto bounds, leaving the status rows out
func PlayfieldGrid(cols, rows int, bounds vmath.Rect) vmath.Grid {
	return vmath.NewGrid(cols, rows-parameter.StatusRows, bounds)
}

// SetCrashHandler installs the handler called when the poll goroutine panics
func (p *Poller) SetCrashHandler(fn func(any)) {
	p.crash = fn
}

// Run polls until the screen is finalized
func (p *Poller) Run() {
	defer func() {
		if r := recover(); r != nil {
			if p.crash != nil {
				p.crash(r)
				return
			}
			panic(r)
		}
	}()

	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		if ge, ok := p.Translate(ev); ok {
			p.queue.Push(ge)
		}
	}
}

// Translate maps a terminal event to a game event
func (p *Poller) Translate(ev tcell.Event) (event.GameEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c := p.keys.Lookup(ev)
		switch c {
		case ControlNone:
			return event.GameEvent{}, false
		case ControlQuit:
			return event.GameEvent{Type: event.EventQuit}, true
		}
		return event.GameEvent{Type: event.EventControl, Payload: c}, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		pos := p.grid.ToPixel(x, y)
		return event.GameEvent{
			Type: event.EventPointer,
			Payload: &event.PointerPayload{
				X:       pos.X,
				Y:       pos.Y,
				Pressed: ev.Buttons()&tcell.Button1 != 0,
			},
		}, true

	case *tcell.EventResize:
		cols, rows := ev.Size()
		p.grid = PlayfieldGrid(cols, rows, p.bounds)
		log.Printf("input: resize %dx%d", cols, rows)
		return event.GameEvent{Type: event.EventResize, Payload: &event.ResizePayload{Cols: cols, Rows: rows}}, true
	}
	return event.GameEvent{}, false
}
