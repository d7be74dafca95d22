package world

import "time"

// Pickup is a collectible worth one point. It is deleted the instant a racer
// touches it.
type Pickup struct {
	Position
}

// Obstacle blocks a lane. Destructible obstacles are deleted on impact and
// cost the racer half their speed; indestructible ones are permanent and
// cause knockback.
type Obstacle struct {
	Position
	Indestructible bool
}

// StrikeEvent is the most recent successful strike, kept so observers can
// play the hit notification. Overwritten on each strike, not a log.
type StrikeEvent struct {
	StrikerID string
	TargetID  string
	Time      time.Time
}
