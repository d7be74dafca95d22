// Package host is the in-process reference host for the lane-racer
// simulation: it owns the authoritative world.State, serializes player
// actions relative to ticks, and fans encoded snapshots out to observers.
package host

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/ksuid"

	"lanerush/world"
)

// TickInterval is the default fixed simulation rate (about 30 Hz).
const TickInterval = 33 * time.Millisecond

type ActionKind int

const (
	TurnLeft ActionKind = iota
	TurnRight
	StartBoost
	StopBoost
	Strike
	SelectCharacter
	ToggleReady
)

// Action is a single player intent. Actions are queued and drained at the
// top of each tick, so no action ever races a simulation step.
type Action struct {
	PlayerID  string
	Kind      ActionKind
	Character world.Character // SelectCharacter only
}

type Host struct {
	state   *world.State
	actions chan Action

	mu          sync.RWMutex
	subscribers map[chan []byte]struct{}
}

// New builds a host around a fresh match for the given roster.
func New(playerIDs []string, rng *rand.Rand, now time.Time) *Host {
	return NewWithState(world.Setup(playerIDs, rng, now))
}

// NewWithState builds a host around an existing match state, taking ownership
// of it. Useful for replays and tests that need a hand-built track.
func NewWithState(state *world.State) *Host {
	return &Host{
		state:       state,
		actions:     make(chan Action, 1024),
		subscribers: make(map[chan []byte]struct{}),
	}
}

// MintRoster creates n fresh player identities.
func MintRoster(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = ksuid.New().String()
	}
	return ids
}

// Do queues a player action to be applied before the next tick. Overflowing
// the buffer drops the action, matching the simulation's silent-no-op policy.
func (h *Host) Do(a Action) {
	select {
	case h.actions <- a:
	default:
	}
}

// Subscribe registers an observer fed one encoded snapshot per tick. Slow
// observers skip frames rather than stall the loop.
func (h *Host) Subscribe() chan []byte {
	sub := make(chan []byte, 64)
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

// Unsubscribe stops feeding the given observer channel.
func (h *Host) Unsubscribe(sub chan []byte) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.mu.Unlock()
}

// Step drains pending actions, advances one tick, and publishes the
// resulting snapshot. It returns the outcome map once the race is decided,
// nil before that. Step is the synchronous core of Run, exposed for tests
// and replay tooling.
func (h *Host) Step(now time.Time) map[string]world.Outcome {
	for len(h.actions) > 0 {
		h.apply(<-h.actions, now)
	}
	h.state.Update(now)
	h.publish()
	return h.state.Results
}

// Run drives the match at the given interval until it produces results.
func (h *Host) Run(interval time.Duration) map[string]world.Outcome {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for now := range ticker.C {
		if results := h.Step(now); results != nil {
			return results
		}
	}
	return nil
}

// Snapshot returns the current observable state.
func (h *Host) Snapshot() *world.Snapshot {
	return h.state.Snapshot()
}

func (h *Host) apply(a Action, now time.Time) {
	switch a.Kind {
	case TurnLeft:
		h.state.TurnLeft(a.PlayerID, now)
	case TurnRight:
		h.state.TurnRight(a.PlayerID, now)
	case StartBoost:
		h.state.StartBoost(a.PlayerID)
	case StopBoost:
		h.state.StopBoost(a.PlayerID)
	case Strike:
		h.state.Strike(a.PlayerID, now)
	case SelectCharacter:
		h.state.SelectCharacter(a.PlayerID, a.Character, now)
	case ToggleReady:
		h.state.ToggleReady(a.PlayerID, now)
	}
}

func (h *Host) publish() {
	raw, err := world.EncodeSnapshot(h.state.Snapshot())
	if err != nil {
		log.Println(err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers {
		select {
		case sub <- raw:
		default:
		}
	}
}
