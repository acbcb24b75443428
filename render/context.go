package render

import (
	"github.com/lixenwraith/chase/engine"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap engine.Snapshot

	// Grid maps viewport pixels onto the playfield rows
	Grid vmath.Grid

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

func NewRenderContext(snap engine.Snapshot, width, height int) RenderContext {
	return RenderContext{
		Snap:         snap,
		Grid:         vmath.NewGrid(width, height-parameter.StatusRows, snap.Bounds),
		ScreenWidth:  width,
		ScreenHeight: height,
	}
}

// ToScreen maps a viewport pixel to its cell
func (rc *RenderContext) ToScreen(p vmath.Vec2) (int, int) {
	return rc.Grid.ToCell(p)
}

// StatusY is the first row below the playfield
func (rc *RenderContext) StatusY() int {
	return rc.Grid.Rows
}
