package component

// Surface identifies what the chaser is resting against
type Surface uint8

const (
	SurfaceNone Surface = iota
	SurfaceGround
	SurfaceCeiling
	SurfaceLeftWall
	SurfaceRightWall
	SurfaceLine
)

var surfaceNames = [...]string{"none", "ground", "ceiling", "left_wall", "right_wall", "line"}

func (s Surface) String() string {
	if int(s) < len(surfaceNames) {
		return surfaceNames[s]
	}
	return "none"
}

// ParseSurface is the inverse of String, unknown names map to SurfaceNone
func ParseSurface(name string) Surface {
	for i, n := range surfaceNames {
		if n == name {
			return Surface(i)
		}
	}
	return SurfaceNone
}

func (s Surface) IsWall() bool {
	return s == SurfaceLeftWall || s == SurfaceRightWall
}
