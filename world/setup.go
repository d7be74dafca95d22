package world

import (
	"math/rand"
	"time"
)

// Starting lanes keyed by roster size. Patterns keep racers from starting
// collapsed into adjacent lanes.
var startingLanes = map[int][]int{
	2: {1, 3},
	3: {1, 2, 3},
	4: {1, 3, 1, 3},
}

// Setup builds the initial match state for the given roster, starting in the
// character-selection phase. rng drives character and entity lane placement;
// inject a seeded source for reproducible matches.
func Setup(playerIDs []string, rng *rand.Rand, now time.Time) *State {
	s := &State{
		Players:    make(map[string]*Player, len(playerIDs)),
		PlayerIDs:  append([]string(nil), playerIDs...),
		Phase:      Selecting,
		LastUpdate: now,
	}
	for _, id := range playerIDs {
		s.Players[id] = &Player{ID: id}
	}
	s.assignStartingLanes()
	s.seedTrack(rng)
	return s
}

// SetupRacing builds a match that skips the selection phase: each racer gets
// a distinct character from a shuffled deck and the state starts racing.
func SetupRacing(playerIDs []string, rng *rand.Rand, now time.Time) *State {
	s := Setup(playerIDs, rng, now)
	deck := shuffledCharacters(rng)
	for i, id := range s.PlayerIDs {
		p := s.Players[id]
		p.Character = deck[i%len(deck)]
		p.Ready = true
	}
	s.Phase = Racing
	return s
}

func shuffledCharacters(rng *rand.Rand) []Character {
	deck := Characters()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

func (s *State) assignStartingLanes() {
	pattern := startingLanes[len(s.PlayerIDs)]
	for i, id := range s.PlayerIDs {
		p := s.Players[id]
		if pattern != nil {
			p.Lane = pattern[i]
		} else {
			p.Lane = i % NumLanes
		}
		p.Y = StartY
		p.Speed = 0
	}
}

// seedTrack places pickups and obstacles evenly along the track, clear of the
// spawn zones at either end, with rng-chosen lanes.
func (s *State) seedTrack(rng *rand.Rand) {
	s.Pickups = make([]Pickup, 0, NumPickups)
	for i := 0; i < NumPickups; i++ {
		s.Pickups = append(s.Pickups, Pickup{
			Position: Position{Lane: rng.Intn(NumLanes), Y: spacedY(i, NumPickups)},
		})
	}

	s.Obstacles = make([]Obstacle, 0, NumSoftObstacles+NumHardObstacles)
	s.seedObstacles(rng, NumSoftObstacles, false)
	s.seedObstacles(rng, NumHardObstacles, true)
}

func (s *State) seedObstacles(rng *rand.Rand, count int, indestructible bool) {
	for i := 0; i < count; i++ {
		s.Obstacles = append(s.Obstacles, Obstacle{
			Position:       Position{Lane: rng.Intn(NumLanes), Y: spacedY(i, count)},
			Indestructible: indestructible,
		})
	}
}

// spacedY is the i-th of count evenly spaced positions inside the seedable
// stretch of track.
func spacedY(i, count int) float64 {
	span := TrackLength - 2*SpawnZone
	return SpawnZone + span*(float64(i)+0.5)/float64(count)
}

// maybeStartRace transitions to racing once every racer is ready and holds a
// character. Starting lanes are reassigned on the transition.
func (s *State) maybeStartRace(now time.Time) {
	for _, id := range s.PlayerIDs {
		p := s.Players[id]
		if !p.Ready || p.Character == CharacterNone {
			return
		}
	}
	s.assignStartingLanes()
	s.Phase = Racing
	s.LastUpdate = now
}
