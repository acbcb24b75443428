package parameter

import "time"

// AbilityTickDecrement is subtracted from the active ability's remaining duration every tick
const AbilityTickDecrement = FrameUpdateInterval

// Ability cooldowns and durations
const (
	SuperJumpCooldown = 2500 * time.Millisecond
	SuperJumpDuration = 600 * time.Millisecond

	DashCooldown = 3000 * time.Millisecond
	DashDuration = 400 * time.Millisecond

	TeleportCooldown = 4500 * time.Millisecond
	TeleportDuration = 200 * time.Millisecond

	GrowCooldown = 5000 * time.Millisecond
	GrowDuration = 2500 * time.Millisecond

	CloneCooldown = 6000 * time.Millisecond
	CloneDuration = 4000 * time.Millisecond

	VortexCooldown = 4000 * time.Millisecond
	VortexDuration = 2000 * time.Millisecond

	GhostCooldown = 5500 * time.Millisecond
	GhostDuration = 3000 * time.Millisecond

	ShockwaveCooldown = 3500 * time.Millisecond
	ShockwaveDuration = 800 * time.Millisecond

	TimeSlowCooldown = 7000 * time.Millisecond
	TimeSlowDuration = 2000 * time.Millisecond

	MagnetCooldown = 4000 * time.Millisecond
	MagnetDuration = 2500 * time.Millisecond
)

// Ability effect magnitudes
const (
	SuperJumpVY = 18.0
	SuperJumpVX = 8.0

	DashSpeed = 35.0

	TeleportMinDist    = 100.0
	TeleportDistRange  = 80.0
	TeleportSpread     = 0.8
	TeleportDriftSpeed = 5.0

	GrowMultiplier = 1.8
	GhostOpacity   = 0.5

	TimeSlowScale = 0.4

	VortexPull = 3.0
	MagnetPull = 2.0

	// VortexSpinPerFrame is the cosmetic rotation in degrees per frame while Vortex is active
	VortexSpinPerFrame = 15.0
)

// Autopilot (solo mode chaser)
const (
	AutopilotHomingAccel     = 0.4
	AutopilotPullHomingAccel = 0.6
	AutopilotAbilityChance   = 0.015
	AutopilotAbilityMinGap   = 2000 * time.Millisecond
	AutopilotAbilityMinDist  = 100.0

	// Floor hop toward a target at a different height
	AutopilotHopChance = 0.01
	AutopilotHopMinDY  = 50.0
	AutopilotHopVY     = 12.0
	AutopilotHopVX     = 4.0

	// Floor leap toward the side wall when the target is high
	AutopilotClimbChance = 0.025
	AutopilotClimbMinDY  = 100.0
	AutopilotClimbVX     = 12.0
	AutopilotClimbVY     = 16.0

	// Leap off a wall toward a target across the room
	AutopilotWallLeapChance = 0.03
	AutopilotWallLeapMinDX  = 80.0
	AutopilotWallLeapPower  = 16.0
	AutopilotWallLeapLift   = 3.0
)
