package world

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the plain-data view of a State handed to renderers and
// spectators. Players and results are listed in roster order so two encodings
// of the same state are byte-identical, which makes snapshots diffable.
type Snapshot struct {
	Phase      Phase
	Time       time.Time
	Players    []PlayerSnapshot
	Pickups    []Pickup
	Obstacles  []Obstacle
	LastStrike *StrikeEvent
	Results    []PlayerResult
}

type PlayerSnapshot struct {
	ID           string
	Character    Character
	Ready        bool
	Lane         int
	Y            float64
	Speed        float64
	Score        int
	Boosting     bool
	KnockbackEnd time.Time
}

type PlayerResult struct {
	ID      string
	Outcome Outcome
}

// Snapshot copies the observable state into an independent plain-data value.
// Mutating the returned snapshot never touches the live state.
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		Phase:     s.Phase,
		Time:      s.LastUpdate,
		Players:   make([]PlayerSnapshot, 0, len(s.PlayerIDs)),
		Pickups:   append([]Pickup(nil), s.Pickups...),
		Obstacles: append([]Obstacle(nil), s.Obstacles...),
	}
	for _, id := range s.PlayerIDs {
		p := s.Players[id]
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID:           p.ID,
			Character:    p.Character,
			Ready:        p.Ready,
			Lane:         p.Lane,
			Y:            p.Y,
			Speed:        p.Speed,
			Score:        p.Score,
			Boosting:     p.Boosting,
			KnockbackEnd: p.KnockbackEnd,
		})
	}
	if s.LastStrike != nil {
		strike := *s.LastStrike
		snap.LastStrike = &strike
	}
	if s.Results != nil {
		for _, id := range s.PlayerIDs {
			snap.Results = append(snap.Results, PlayerResult{ID: id, Outcome: s.Results[id]})
		}
	}
	return snap
}

// EncodeSnapshot marshals a snapshot for the wire or for digesting.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	return msgpack.Marshal(s)
}

// DecodeSnapshot is the observer-side inverse of EncodeSnapshot.
func DecodeSnapshot(b []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
