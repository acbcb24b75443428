package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// RenderBuffer is a cell compositor flushed to the screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to the background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbStatusText, Bg: RgbBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y, the zero cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set composites a foreground glyph over the existing background
func (b *RenderBuffer) Set(x, y int, r rune, fg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	switch mode {
	case BlendReplace:
		dst.Fg = fg
	case BlendAlpha:
		// Alpha fades toward the cell background
		dst.Fg = dst.Bg.Blend(fg, alpha)
	case BlendMax:
		dst.Fg = dst.Fg.Max(fg)
	}
}

// SetBg updates the background while preserving rune and foreground
func (b *RenderBuffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// Text writes s starting at x, clipped to the row
func (b *RenderBuffer) Text(x, y int, s string, fg, bg RGB) int {
	for _, r := range s {
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
		}
		x++
	}
	return x
}

// FillRow paints a whole row background
func (b *RenderBuffer) FillRow(y int, bg RGB) {
	if y < 0 || y >= b.height {
		return
	}
	for x := 0; x < b.width; x++ {
		b.cells[y*b.width+x] = Cell{Rune: ' ', Fg: RgbStatusText, Bg: bg}
	}
}

// Flush writes the buffer to the screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell()).Attributes(c.Attrs)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}
