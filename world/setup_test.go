package world

import (
	"math/rand"
	"reflect"
	"testing"
)

func rosterOf(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	return ids
}

func TestStartingLanePatterns(t *testing.T) {
	patterns := map[int][]int{
		2: {1, 3},
		3: {1, 2, 3},
		4: {1, 3, 1, 3},
	}
	for count, want := range patterns {
		s := Setup(rosterOf(count), rand.New(rand.NewSource(1)), t0)
		for i, id := range s.PlayerIDs {
			p := s.Player(id)
			if p.Lane != want[i] {
				t.Errorf("%d players: %s lane = %d, want %d", count, id, p.Lane, want[i])
			}
			if p.Y != StartY || p.Speed != 0 {
				t.Errorf("%d players: %s y=%f speed=%f, want behind the line at rest", count, id, p.Y, p.Speed)
			}
		}
	}
}

func TestSeededTrack(t *testing.T) {
	s := Setup(rosterOf(2), rand.New(rand.NewSource(7)), t0)

	if len(s.Pickups) != NumPickups {
		t.Fatalf("pickups = %d, want %d", len(s.Pickups), NumPickups)
	}
	if len(s.Obstacles) != NumSoftObstacles+NumHardObstacles {
		t.Fatalf("obstacles = %d, want %d", len(s.Obstacles), NumSoftObstacles+NumHardObstacles)
	}

	hard := 0
	for _, o := range s.Obstacles {
		if o.Indestructible {
			hard++
		}
		if o.Lane < 0 || o.Lane >= NumLanes {
			t.Fatalf("obstacle in lane %d", o.Lane)
		}
		if o.Y < SpawnZone || o.Y > TrackLength-SpawnZone {
			t.Fatalf("obstacle at y=%f inside a spawn zone", o.Y)
		}
	}
	if hard != NumHardObstacles {
		t.Fatalf("indestructible obstacles = %d, want %d", hard, NumHardObstacles)
	}

	for _, pk := range s.Pickups {
		if pk.Lane < 0 || pk.Lane >= NumLanes {
			t.Fatalf("pickup in lane %d", pk.Lane)
		}
		if pk.Y < SpawnZone || pk.Y > TrackLength-SpawnZone {
			t.Fatalf("pickup at y=%f inside a spawn zone", pk.Y)
		}
	}

	if s.Phase != Selecting {
		t.Fatalf("phase = %v, want selecting", s.Phase)
	}
}

func TestSetupIsDeterministicPerSeed(t *testing.T) {
	a := Setup(rosterOf(3), rand.New(rand.NewSource(99)), t0)
	b := Setup(rosterOf(3), rand.New(rand.NewSource(99)), t0)

	if !reflect.DeepEqual(a.Obstacles, b.Obstacles) {
		t.Fatal("same seed produced different obstacles")
	}
	if !reflect.DeepEqual(a.Pickups, b.Pickups) {
		t.Fatal("same seed produced different pickups")
	}
}

func TestSelectionFlow(t *testing.T) {
	s := Setup(rosterOf(2), rand.New(rand.NewSource(1)), t0)

	s.SelectCharacter("a", CharacterComet, t0)
	s.SelectCharacter("b", CharacterComet, t0) // taken
	if s.Player("b").Character != CharacterNone {
		t.Fatal("duplicate character selection accepted")
	}
	s.SelectCharacter("b", CharacterBolt, t0)

	s.ToggleReady("a", t0)
	if s.Phase != Selecting {
		t.Fatal("race started with an unready player")
	}
	s.ToggleReady("b", t0)
	if s.Phase != Racing {
		t.Fatal("race did not start with everyone ready")
	}

	// Lanes are reassigned on the transition.
	if s.Player("a").Lane != 1 || s.Player("b").Lane != 3 {
		t.Fatalf("lanes = %d,%d, want 1,3", s.Player("a").Lane, s.Player("b").Lane)
	}

	// Selection is locked once racing.
	s.SelectCharacter("a", CharacterNova, t0)
	if s.Player("a").Character != CharacterComet {
		t.Fatal("character changed after selection lock")
	}
}

func TestLastCharacterPickStartsRace(t *testing.T) {
	s := Setup(rosterOf(2), rand.New(rand.NewSource(1)), t0)

	s.SelectCharacter("a", CharacterComet, t0)
	s.ToggleReady("a", t0)
	s.ToggleReady("b", t0)
	if s.Phase != Selecting {
		t.Fatal("race started while a racer had no character")
	}

	s.SelectCharacter("b", CharacterDart, t0)
	if s.Phase != Racing {
		t.Fatal("completing the last pick did not start the race")
	}
}

func TestClearedCharacterBlocksStart(t *testing.T) {
	s := Setup(rosterOf(2), rand.New(rand.NewSource(1)), t0)

	s.SelectCharacter("a", CharacterComet, t0)
	s.SelectCharacter("b", CharacterBolt, t0)
	s.SelectCharacter("b", CharacterNone, t0)
	s.ToggleReady("a", t0)
	s.ToggleReady("b", t0)
	if s.Phase != Selecting {
		t.Fatal("race started after a pick was cleared")
	}
}

func TestSetupRacingSkipsSelection(t *testing.T) {
	s := SetupRacing(rosterOf(3), rand.New(rand.NewSource(5)), t0)

	if s.Phase != Racing {
		t.Fatalf("phase = %v, want racing", s.Phase)
	}
	seen := make(map[Character]bool)
	for _, id := range s.PlayerIDs {
		p := s.Player(id)
		if p.Character == CharacterNone {
			t.Fatalf("%s has no character", id)
		}
		if seen[p.Character] {
			t.Fatalf("character %v assigned twice", p.Character)
		}
		seen[p.Character] = true
		if !p.Ready {
			t.Fatalf("%s not marked ready", id)
		}
	}
}
