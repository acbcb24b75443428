package physics

import (
	"github.com/lixenwraith/chase/vmath"
)

// Contact describes a circle overlapping a thick segment
// Normal is unit length and points from the segment toward the circle
type Contact struct {
	Normal vmath.Vec2
	Depth  float64
}

// CircleSegment tests a circle against a segment of the given thickness
// Zero-length segments never collide
func CircleSegment(center vmath.Vec2, radius float64, a, b vmath.Vec2, thickness float64) (Contact, bool) {
	seg := vmath.V2Sub(b, a)
	lenSq := vmath.V2MagSq(seg)
	if lenSq < vmath.Epsilon {
		return Contact{}, false
	}

	t := vmath.Clamp(vmath.V2Dot(vmath.V2Sub(center, a), seg)/lenSq, 0, 1)
	closest := vmath.V2Add(a, vmath.V2Scale(seg, t))
	sep := vmath.V2Sub(center, closest)
	dist := vmath.V2Mag(sep)

	reach := radius + thickness/2
	if dist >= reach {
		return Contact{}, false
	}

	normal := vmath.V2Normalize(vmath.V2Perp(seg))
	if vmath.V2Dot(normal, sep) < 0 {
		normal = vmath.V2Scale(normal, -1)
	}

	return Contact{Normal: normal, Depth: reach - dist}, true
}

// Caught reports contact between two circles given their diameters
func Caught(a, b vmath.Vec2, diameterA, diameterB float64) bool {
	return vmath.V2Dist(a, b) < (diameterA+diameterB)/2
}
