package world

import "time"

// Gameplay constants. These must be identical for every observer of a match,
// so they are compiled in rather than configured.
const (
	NumLanes    = 4
	TrackLength = 6000.0
	WinMargin   = 10.0   // past TrackLength before a crossing counts
	StartY      = -120.0 // racers line up just behind the start line
	SpawnZone   = 400.0  // entity-free stretch at both ends of the track

	PlayerRadius   = 40.0
	ObstacleRadius = 40.0
	CollisionScale = 0.8

	MaxSpeed   = 600.0 // track units per second, no boost
	BoostSpeed = 900.0

	AccelTime         = 1500 * time.Millisecond // standing start to MaxSpeed
	QueueWindow       = 400 * time.Millisecond  // blocked turns retry this long
	StrikeCooldown    = 2 * time.Second
	KnockbackRecovery = 1200 * time.Millisecond
	StrikeRangeBehind = 150.0 // furthest a target may trail the striker

	NumPickups       = 12
	NumSoftObstacles = 10
	NumHardObstacles = 4
)

// CollisionThreshold is the center distance at which a racer touches a
// track entity in the same lane.
const CollisionThreshold = (PlayerRadius + ObstacleRadius) * CollisionScale

// Accel is derived from AccelTime so a racer reaches MaxSpeed in the same
// real-world time regardless of tick rate.
var Accel = MaxSpeed / AccelTime.Seconds()
