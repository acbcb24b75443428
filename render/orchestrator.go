package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chase/engine"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/status"
	"github.com/lixenwraith/chase/vmath"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline, it implements engine.Presenter
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the standard layer set
func NewDefaultOrchestrator(screen tcell.Screen, reg *status.Registry) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(&FloorRenderer{}, PriorityBackground)
	o.Register(&LineRenderer{}, PriorityLines)
	o.Register(&WaveRenderer{}, PriorityWaves)
	o.Register(&CloneRenderer{}, PriorityClones)
	o.Register(&TargetRenderer{}, PriorityTarget)
	o.Register(&ChaserRenderer{}, PriorityChaser)
	o.Register(NewStatusBarRenderer(reg), PriorityUI)
	o.Register(&OverlayRenderer{}, PriorityOverlay)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Present executes the render pipeline: clear, render all, flush
func (o *RenderOrchestrator) Present(snap engine.Snapshot) {
	w, h := o.screen.Size()
	if bw, bh := o.buffer.Size(); bw != w || bh != h {
		o.buffer.Resize(w, h)
		o.screen.Sync()
	} else {
		o.buffer.Clear()
	}
	if w == 0 || h <= 0 {
		return
	}

	if snap.Bounds.Width() <= 0 || snap.Bounds.Height() <= 0 {
		snap.Bounds = vmath.Viewport(parameter.ViewportWidth, parameter.ViewportHeight)
	}

	ctx := NewRenderContext(snap, w, h)
	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen)
}

// Buffer exposes the composited frame, for tests
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}
