package world

import (
	"math"
	"time"
)

// Update advances the race by one tick. deltaTime is derived from the host
// clock (now minus the previous update), so kinematics stay stable under
// jittery tick timing. Once results exist the state is frozen.
func (s *State) Update(now time.Time) {
	if s.GameOver() {
		return
	}
	if s.Phase != Racing {
		s.LastUpdate = now
		return
	}

	dt := now.Sub(s.LastUpdate).Seconds()
	if dt < 0 {
		dt = 0
	}
	s.LastUpdate = now

	for _, id := range s.PlayerIDs {
		s.updatePlayer(s.Players[id], now, dt)
	}
	s.checkWinners()
}

func (s *State) updatePlayer(p *Player, now time.Time, dt float64) {
	if s.resolveObstacleHit(p, now) {
		// At most one obstacle interaction per tick, and it costs the racer
		// their movement for the tick.
		return
	}
	s.collectPickups(p)

	if now.Before(p.KnockbackEnd) {
		// Stunned: no movement, no boost.
		p.Speed = 0
		p.Boosting = false
		return
	}
	if p.stunned() {
		// Window just ran out: standing start, boost must be re-pressed.
		p.KnockbackEnd = time.Time{}
		p.Speed = 0
		return
	}

	s.retryQueuedTurn(p, now)

	if p.Boosting {
		p.Speed = BoostSpeed
	} else {
		p.Speed = math.Min(p.Speed+Accel*dt, MaxSpeed)
	}
	p.Y += p.Speed * dt
}

// resolveObstacleHit scans obstacles in insertion order and resolves the
// first one overlapping p, reporting whether a hit happened. Indestructible
// obstacles knock the racer back; destructible ones are deleted and halve the
// racer's speed unless boosting.
func (s *State) resolveObstacleHit(p *Player, now time.Time) bool {
	for i, o := range s.Obstacles {
		if o.Lane != p.Lane || !withinThreshold(o.Y, p.Y) {
			continue
		}
		if o.Indestructible {
			knockBack(p, now)
		} else {
			s.Obstacles = append(s.Obstacles[:i], s.Obstacles[i+1:]...)
			if !p.Boosting {
				p.Speed /= 2
			}
		}
		return true
	}
	return false
}

// collectPickups deletes every pickup overlapping p and scores one point
// each. Stacked pickups are all collected in the same tick.
func (s *State) collectPickups(p *Player) {
	kept := s.Pickups[:0]
	for _, pk := range s.Pickups {
		if pk.Lane == p.Lane && withinThreshold(pk.Y, p.Y) {
			p.Score++
			continue
		}
		kept = append(kept, pk)
	}
	s.Pickups = kept
}

// retryQueuedTurn re-attempts a pending lane change. Expired queues are
// dropped; a still-blocked retry keeps its original expiry.
func (s *State) retryQueuedTurn(p *Player, now time.Time) {
	if p.Queued.Direction == NoTurn {
		return
	}
	if !now.Before(p.Queued.ExpiresAt) {
		p.Queued = QueuedTurn{}
		return
	}
	s.attemptTurn(p, p.Queued.Direction, now, false)
}

// checkWinners fills Results once any racer crosses the finish line. Every
// simultaneous crosser wins; everyone else loses.
func (s *State) checkWinners() {
	crossed := false
	for _, id := range s.PlayerIDs {
		if s.Players[id].Y >= TrackLength+WinMargin {
			crossed = true
			break
		}
	}
	if !crossed {
		return
	}
	s.Results = make(map[string]Outcome, len(s.PlayerIDs))
	for _, id := range s.PlayerIDs {
		if s.Players[id].Y >= TrackLength+WinMargin {
			s.Results[id] = Won
		} else {
			s.Results[id] = Lost
		}
	}
}
