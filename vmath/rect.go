package vmath

// Rect is an axis-aligned area in viewport pixels
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Viewport returns the rect spanning [0,w]x[0,h]
func Viewport(w, h float64) Rect {
	return Rect{MaxX: w, MaxY: h}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Inset shrinks the rect by m on every side, collapsing to the center when m exceeds half extent
func (r Rect) Inset(m float64) Rect {
	out := Rect{r.MinX + m, r.MinY + m, r.MaxX - m, r.MaxY - m}
	if out.MinX > out.MaxX {
		c := (r.MinX + r.MaxX) / 2
		out.MinX, out.MaxX = c, c
	}
	if out.MinY > out.MaxY {
		c := (r.MinY + r.MaxY) / 2
		out.MinY, out.MaxY = c, c
	}
	return out
}

// Clamp returns p restricted to the rect
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{Clamp(p.X, r.MinX, r.MaxX), Clamp(p.Y, r.MinY, r.MaxY)}
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) Center() Vec2 {
	return Vec2{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}
