package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Max returns per-channel maximum
func (dst RGB) Max(src RGB) RGB {
	return RGB{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
	}
}

// Luma returns perceived brightness in [0, 255]
func (c RGB) Luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// Tcell converts to a tcell true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// BlendMode defines compositing operations
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src
	BlendAlpha                    // Dst = Src*a + Dst*(1-a)
	BlendMax                      // Dst = max(Dst, Src) per channel
)

// Palette
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background
	RgbFloor      = RGB{65, 72, 104}

	RgbChaser = RGB{255, 120, 80}
	RgbClone  = RGB{255, 180, 140}
	RgbTarget = RGB{125, 207, 255}
	RgbLine   = RGB{158, 206, 106}
	RgbWave   = RGB{224, 175, 104}

	RgbStatusBg   = RGB{36, 40, 59}
	RgbStatusText = RGB{192, 202, 245}
	RgbRoleChaser = RGB{247, 118, 142}
	RgbRoleTarget = RGB{122, 162, 247}
	RgbAbility    = RGB{187, 154, 247}
	RgbWarning    = RGB{255, 158, 100}

	RgbOverlayBg   = RGB{0, 0, 0}
	RgbOverlayText = RGB{255, 255, 255}
)
