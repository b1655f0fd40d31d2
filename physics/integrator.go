package physics

import "github.com/tTrmc/Orbit-Simulator/vmath"

// Integrator advances bodies with semi-implicit (symplectic) Euler: velocity
// is updated from the accumulated force first, then position from the
// already-updated velocity. The scheme stays bounded over long orbital runs
// where explicit Euler spirals outward.
type Integrator struct {
	gravity Gravity

	// scratch force accumulator, reused across steps
	forces []vmath.Vec2
}

// NewIntegrator creates an integrator over the given gravity field
func NewIntegrator(gravity Gravity) *Integrator {
	return &Integrator{gravity: gravity}
}

// Step advances every non-anchor body by one time slice dt. All forces are
// accumulated from the positions at the start of the step before any body
// moves, so the pairwise sums are independent of body update order. Anchor
// bodies are skipped entirely: no force integration, no trail append.
func (in *Integrator) Step(bodies []*Body, dt float64) {
	if len(in.forces) < len(bodies) {
		in.forces = make([]vmath.Vec2, len(bodies))
	}

	for i, a := range bodies {
		if a.Anchor {
			continue
		}
		var total vmath.Vec2
		for j, b := range bodies {
			if i == j {
				continue
			}
			total = total.Add(in.gravity.Attraction(a, b))
		}
		in.forces[i] = total
	}

	for i, a := range bodies {
		if a.Anchor {
			continue
		}
		a.Vel = a.Vel.Add(in.forces[i].Scale(dt / a.Mass))
		a.Pos = a.Pos.Add(a.Vel.Scale(dt))
		a.Trail.Push(a.Pos)
	}
}
