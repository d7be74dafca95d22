package world

import (
	"math"
	"time"
)

// Action handlers never return errors: out-of-context inputs (cooldowns,
// track edges, unknown players) are absorbed as silent no-ops so UI controls
// can simply do nothing when pressed at the wrong moment.

// TurnLeft moves the racer one lane toward lane 0, queueing the intent when
// the move is blocked or the racer is stunned.
func (s *State) TurnLeft(id string, now time.Time) {
	s.turn(id, Left, now)
}

// TurnRight moves the racer one lane away from lane 0, queueing the intent
// when the move is blocked or the racer is stunned.
func (s *State) TurnRight(id string, now time.Time) {
	s.turn(id, Right, now)
}

func (s *State) turn(id string, dir Direction, now time.Time) {
	if s.Phase != Racing || s.GameOver() {
		return
	}
	p, ok := s.Players[id]
	if !ok {
		return
	}
	s.attemptTurn(p, dir, now, true)
}

// attemptTurn runs the shared turn logic. fresh distinguishes a new intent
// from a queued retry: a retry never re-queues and never refreshes the
// original expiry.
func (s *State) attemptTurn(p *Player, dir Direction, now time.Time, fresh bool) {
	target := p.Lane + dir.laneDelta()
	if target < 0 || target >= NumLanes {
		// Hard track edge: dropped outright, existing queue untouched.
		return
	}
	if fresh {
		if p.stunned() {
			p.Queued = QueuedTurn{Direction: dir, ExpiresAt: now.Add(QueueWindow)}
			return
		}
		// New intent supersedes whatever was queued before.
		p.Queued = QueuedTurn{}
	}
	if CollidesWithAny(target, p.Y, s.Obstacles) {
		if fresh {
			p.Queued = QueuedTurn{Direction: dir, ExpiresAt: now.Add(QueueWindow)}
		}
		return
	}
	p.Lane = target
	p.Queued = QueuedTurn{}
}

// StartBoost pins the racer at BoostSpeed until StopBoost. Ignored while
// stunned; knockback and boosting are mutually exclusive.
func (s *State) StartBoost(id string) {
	if s.Phase != Racing || s.GameOver() {
		return
	}
	p, ok := s.Players[id]
	if !ok || p.stunned() {
		return
	}
	p.Boosting = true
}

// StopBoost unconditionally releases the boost.
func (s *State) StopBoost(id string) {
	p, ok := s.Players[id]
	if !ok {
		return
	}
	p.Boosting = false
}

// Strike knocks back the nearest other racer by track position. Targets more
// than StrikeRangeBehind behind the striker are out of reach; there is no
// forward limit. Equidistant candidates resolve to the earliest roster entry.
func (s *State) Strike(id string, now time.Time) {
	if s.Phase != Racing || s.GameOver() {
		return
	}
	striker, ok := s.Players[id]
	if !ok || striker.stunned() {
		return
	}
	if !striker.LastStrikeAt.IsZero() && now.Sub(striker.LastStrikeAt) < StrikeCooldown {
		return
	}

	var target *Player
	var best float64
	for _, otherID := range s.PlayerIDs {
		if otherID == id {
			continue
		}
		other := s.Players[otherID]
		dy := other.Y - striker.Y
		if dy < -StrikeRangeBehind {
			continue
		}
		if target == nil || math.Abs(dy) < best {
			target = other
			best = math.Abs(dy)
		}
	}
	if target == nil {
		return
	}

	knockBack(target, now)
	striker.LastStrikeAt = now
	s.LastStrike = &StrikeEvent{StrikerID: id, TargetID: target.ID, Time: now}
}

// SelectCharacter sets the racer's character during the selection phase.
// Characters already held by another racer are rejected; CharacterNone clears
// the current pick. Picking the last missing character can start the race if
// everyone is already ready.
func (s *State) SelectCharacter(id string, ch Character, now time.Time) {
	if s.Phase != Selecting {
		return
	}
	p, ok := s.Players[id]
	if !ok {
		return
	}
	if ch == CharacterNone {
		p.Character = CharacterNone
		return
	}
	for _, otherID := range s.PlayerIDs {
		if otherID != id && s.Players[otherID].Character == ch {
			return
		}
	}
	p.Character = ch
	s.maybeStartRace(now)
}

// ToggleReady flips the racer's ready flag. When every racer is ready and has
// a character the match leaves the selection phase.
func (s *State) ToggleReady(id string, now time.Time) {
	if s.Phase != Selecting {
		return
	}
	p, ok := s.Players[id]
	if !ok {
		return
	}
	p.Ready = !p.Ready
	s.maybeStartRace(now)
}
