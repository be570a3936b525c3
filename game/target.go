package game

import (
	"math/rand"

	"github.com/meghashyamc/clickcircle/geometry"
)

// Target is the circle the player has to click.
type Target struct {
	Position geometry.Vector
	Radius   float64
}

// Collider is the box around the circle used for hit testing. Clicks in the
// box corners outside the circle still count.
func (t Target) Collider() geometry.Rect {
	return geometry.RectAround(t.Position, t.Radius)
}

func (t Target) IsHit(p geometry.Vector) bool {
	return t.Collider().Contains(p)
}

// relocate moves the target to a random spot inside area.
func (t *Target) relocate(rng *rand.Rand, area geometry.Rect) {
	t.Position = area.RandomPoint(rng)
}
