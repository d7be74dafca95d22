package world

import "time"

// Character is a racer's visual identity, unique within a match.
type Character int

const (
	CharacterNone Character = iota
	CharacterComet
	CharacterBolt
	CharacterNova
	CharacterDart
)

func (c Character) String() string {
	switch c {
	case CharacterComet:
		return "comet"
	case CharacterBolt:
		return "bolt"
	case CharacterNova:
		return "nova"
	case CharacterDart:
		return "dart"
	}
	return "none"
}

// Characters returns the selectable deck.
func Characters() []Character {
	return []Character{CharacterComet, CharacterBolt, CharacterNova, CharacterDart}
}

// Direction is a lane-change direction. Left moves toward lane 0.
type Direction int

const (
	NoTurn Direction = iota
	Left
	Right
)

func (d Direction) laneDelta() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

// QueuedTurn is a deferred lane change retried every tick until it succeeds
// or ExpiresAt passes. The zero value means no turn is queued.
type QueuedTurn struct {
	Direction Direction
	ExpiresAt time.Time
}

// Player is one racer's full state. It is owned exclusively by the State that
// holds it and mutated only during setup, a tick, or an action call.
type Player struct {
	ID        string
	Character Character
	Ready     bool
	Position
	Speed    float64
	Score    int
	Boosting bool

	// KnockbackEnd is set iff the racer is in the knockback/disabled state;
	// the zero value means not stunned. Boosting is never true while it is set.
	KnockbackEnd time.Time
	Queued       QueuedTurn
	LastStrikeAt time.Time
}

// stunned reports whether the knockback window is set, expired or not. The
// tick step clears expired windows; action guards treat an uncleared window
// as still disabling.
func (p *Player) stunned() bool {
	return !p.KnockbackEnd.IsZero()
}

// knockBack stuns p, shoving it back along the track proportionally to its
// speed at impact.
func knockBack(p *Player, now time.Time) {
	p.Y -= PlayerRadius * (1 + p.Speed/MaxSpeed)
	p.Speed = 0
	p.Boosting = false
	p.KnockbackEnd = now.Add(KnockbackRecovery)
}
