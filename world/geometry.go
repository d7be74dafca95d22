package world

import "math"

// Position locates an entity on the track: a discrete lane plus a continuous
// distance along it. Lane is always in [0, NumLanes).
type Position struct {
	Lane int
	Y    float64
}

func withinThreshold(a, b float64) bool {
	return math.Abs(a-b) <= CollisionThreshold
}

// CollidesWithAny reports whether any obstacle occupies lane within the
// collision threshold of y. Lane match is exact; partial lane overlap is not
// modeled.
func CollidesWithAny(lane int, y float64, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.Lane == lane && withinThreshold(o.Y, y) {
			return true
		}
	}
	return false
}
