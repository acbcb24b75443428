package parameter

import "time"

// Entity sizes (diameters in pixels)
const (
	ChaserSize = 45.0
	TargetSize = 24.0
)

// Chaser movement
const (
	Gravity = 0.6

	// WallSlideGravityFactor is the gravity fraction applied while resting on a side wall
	WallSlideGravityFactor = 0.2

	// MoveAccel is added to horizontal velocity per frame while a horizontal key is held
	MoveAccel = 0.8

	// MaxRunSpeed stops key acceleration beyond this horizontal speed, ability impulses are not capped
	MaxRunSpeed = 10.0

	// CrouchAccel is the extra downward pull per frame while move-down is held in the air
	CrouchAccel = 0.4

	// Damping per nominal frame
	DampingGroundX = 0.85
	DampingGroundY = 0.85
	DampingAirX    = 0.97
	DampingAirY    = 0.99

	CeilingRestitution = 0.3
	WallRestitution    = 0.6
)

// Jump streak
const (
	JumpBaseVY   = 14.0
	JumpStreakVY = 1.5
	JumpStreakVX = 1.0

	// JumpStreakWindow is the max gap between landing and the next jump that keeps the streak alive
	JumpStreakWindow = 300 * time.Millisecond
	JumpStreakMax    = 5

	WallJumpVX = 10.0
	WallJumpVY = 14.0
)

// Obstacle lines
const (
	LineThickness = 6.0

	// LineRestitution above 1 makes lines bouncy
	LineRestitution = 1.2

	LineTTL = 5000 * time.Millisecond

	// LineMinSegment is the pointer travel required before a new segment is recorded
	LineMinSegment = 20.0
)

// Clones
const (
	CloneCount       = 4
	CloneSpawnRadius = 80.0
	CloneSpawnSpeed  = 3.0
	CloneLifetime    = 4000 * time.Millisecond
	CloneAttraction  = 0.3
	CloneFloorBounce = 0.6
	CloneWallBounce  = 0.8
	CloneDampingX    = 0.98
)

// Shockwaves
const (
	ShockwaveCount      = 3
	ShockwaveBaseRadius = 20.0
	ShockwaveRadiusStep = 40.0
	ShockwaveMaxRadius  = 250.0
	ShockwaveSpeed      = 10.0

	// ShockwaveBand is the distance tolerance between ring radius and target distance that triggers a push
	ShockwaveBand = 30.0
	ShockwavePush = 20.0
)
