package world

import "time"

// Phase gates which update and action logic runs.
type Phase int

const (
	Selecting Phase = iota
	Racing
)

func (p Phase) String() string {
	if p == Racing {
		return "racing"
	}
	return "selecting"
}

// Outcome is a racer's end-of-match result.
type Outcome int

const (
	Lost Outcome = iota
	Won
)

func (o Outcome) String() string {
	if o == Won {
		return "WON"
	}
	return "LOST"
}

// State is the single authoritative match state. The host serializes all
// access: one tick or one action call mutates it at a time, never both.
type State struct {
	Players    map[string]*Player
	PlayerIDs  []string // fixed roster order; all per-tick iteration follows it
	Phase      Phase
	LastUpdate time.Time
	Pickups    []Pickup
	Obstacles  []Obstacle
	LastStrike *StrikeEvent

	// Results is nil until the race is decided; once set the match is over
	// and every further tick and action is a no-op.
	Results map[string]Outcome
}

// Player returns the racer with the given ID, or nil if it is not in the
// roster.
func (s *State) Player(id string) *Player {
	return s.Players[id]
}

// GameOver reports whether the race has been decided.
func (s *State) GameOver() bool {
	return s.Results != nil
}
