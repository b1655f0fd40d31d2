package physics

import (
	"math"

	"github.com/tTrmc/Orbit-Simulator/parameter"
	"github.com/tTrmc/Orbit-Simulator/vmath"
)

// Gravity computes pairwise Newtonian attraction between bodies
type Gravity struct {
	// G is the gravitational constant; overridable for tests and scaled scenarios
	G float64
}

// NewGravity returns a field using the SI gravitational constant
func NewGravity() Gravity {
	return Gravity{G: parameter.G}
}

// Attraction returns the force vector exerted by b on a. Coincident bodies
// exert no force that step, which guards the r=0 singularity. When b is the
// anchor, a's DistanceToAnchor is refreshed from the same distance
// computation instead of a second pass.
func (g Gravity) Attraction(a, b *Body) vmath.Vec2 {
	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	distance := math.Hypot(dx, dy)

	if distance == 0 {
		return vmath.Vec2{}
	}

	if b.Anchor {
		a.DistanceToAnchor = distance
	}

	force := g.G * a.Mass * b.Mass / (distance * distance)
	angle := math.Atan2(dy, dx)
	return vmath.Vec2{X: math.Cos(angle) * force, Y: math.Sin(angle) * force}
}
