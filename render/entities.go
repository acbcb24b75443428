package render

import (
	"math"

	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// Glyphs
const (
	glyphChaser = '█'
	glyphClone  = '▓'
	glyphTarget = '◎'
	glyphLine   = '•'
	glyphWave   = '·'
	glyphFloor  = '▁'
)

// FloorRenderer marks the bottom edge of the playfield
type FloorRenderer struct{}

func (r *FloorRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	y := ctx.Grid.Rows - 1
	for x := 0; x < ctx.Grid.Cols; x++ {
		buf.Set(x, y, glyphFloor, RgbFloor, BlendReplace, 1)
	}
}

// LineRenderer draws obstacle lines faded by age
type LineRenderer struct{}

func (r *LineRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	snap := ctx.Snap
	for i := range snap.Lines {
		l := &snap.Lines[i]
		alpha := l.Opacity(snap.Now, snap.LineTTL)
		if alpha <= 0 {
			continue
		}
		plotSegment(ctx, buf, l.A(), l.B(), glyphLine, RgbLine, alpha)
	}
}

// WaveRenderer draws shockwave rings
type WaveRenderer struct{}

func (r *WaveRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for i := range ctx.Snap.Waves {
		w := &ctx.Snap.Waves[i]
		alpha := 1 - w.Radius/w.MaxRadius
		plotRing(ctx, buf, w.Center(), w.Radius, glyphWave, RgbWave, max(alpha, 0.2))
	}
}

// CloneRenderer draws decoy clones at the chaser's base size
type CloneRenderer struct{}

func (r *CloneRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for i := range ctx.Snap.Clones {
		c := &ctx.Snap.Clones[i]
		plotDisc(ctx, buf, c.Pos(), parameter.ChaserSize/2, glyphClone, RgbClone, 0.8)
	}
}

// TargetRenderer draws the target marker
type TargetRenderer struct{}

func (r *TargetRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	x, y := ctx.ToScreen(ctx.Snap.Target.Pos())
	buf.Set(x, y, glyphTarget, RgbTarget, BlendReplace, 1)
}

// ChaserRenderer draws the chaser scaled and faded by its ability multipliers
type ChaserRenderer struct{}

func (r *ChaserRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	c := ctx.Snap.Chaser
	radius := c.Radius(parameter.ChaserSize)
	alpha := c.Opacity
	if alpha == 0 {
		alpha = 1
	}
	plotDisc(ctx, buf, c.Pos(), radius, glyphChaser, RgbChaser, alpha)

	// Facing tick one cell past the rim
	angle := (c.Rotation - 90) * math.Pi / 180
	tip := vmath.V2Add(c.Pos(), vmath.V2FromAngle(angle, radius+ctx.Grid.CellWidth()))
	x, y := ctx.ToScreen(tip)
	buf.Set(x, y, facingGlyph(angle), RgbChaser, BlendAlpha, alpha)
}

// facingGlyph picks an arrow for a direction in radians, screen y down
func facingGlyph(angle float64) rune {
	arrows := [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	i := int(math.Round(angle/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return arrows[i]
}

// plotDisc fills every cell whose center lies inside the circle, at least the center cell
func plotDisc(ctx RenderContext, buf *RenderBuffer, center vmath.Vec2, radius float64, glyph rune, fg RGB, alpha float64) {
	x0, y0 := ctx.ToScreen(vmath.V2(center.X-radius, center.Y-radius))
	x1, y1 := ctx.ToScreen(vmath.V2(center.X+radius, center.Y+radius))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vmath.V2Dist(ctx.Grid.ToPixel(x, y), center) <= radius {
				buf.Set(x, y, glyph, fg, BlendAlpha, alpha)
			}
		}
	}
	cx, cy := ctx.ToScreen(center)
	buf.Set(cx, cy, glyph, fg, BlendAlpha, alpha)
}

// plotSegment samples a segment at half-cell steps
func plotSegment(ctx RenderContext, buf *RenderBuffer, a, b vmath.Vec2, glyph rune, fg RGB, alpha float64) {
	step := math.Min(ctx.Grid.CellWidth(), ctx.Grid.CellHeight()) / 2
	n := max(int(vmath.V2Dist(a, b)/step), 1)
	for i := 0; i <= n; i++ {
		x, y := ctx.ToScreen(vmath.V2Lerp(a, b, float64(i)/float64(n)))
		buf.Set(x, y, glyph, fg, BlendAlpha, alpha)
	}
}

// plotRing samples a circle perimeter inside the playfield
func plotRing(ctx RenderContext, buf *RenderBuffer, center vmath.Vec2, radius float64, glyph rune, fg RGB, alpha float64) {
	step := ctx.Grid.CellWidth() / 2
	n := max(int(2*math.Pi*radius/step), 8)
	for i := 0; i < n; i++ {
		p := vmath.V2Add(center, vmath.V2FromAngle(2*math.Pi*float64(i)/float64(n), radius))
		if !ctx.Snap.Bounds.Contains(p) {
			continue
		}
		x, y := ctx.ToScreen(p)
		buf.Set(x, y, glyph, fg, BlendAlpha, alpha)
	}
}
