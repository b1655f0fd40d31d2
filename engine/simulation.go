package engine

import (
	"github.com/tTrmc/Orbit-Simulator/camera"
	"github.com/tTrmc/Orbit-Simulator/parameter"
	"github.com/tTrmc/Orbit-Simulator/physics"
)

// Simulation orchestrates the integration loop around a pause flag. Each
// frame tick runs exactly one integrator step while running and nothing
// while paused; camera pan/zoom and rendering stay live either way. All
// state is owned by the single frame-loop goroutine.
type Simulation struct {
	bodies     []*physics.Body
	cam        *camera.Camera
	integrator *physics.Integrator
	dt         float64

	paused bool
	steps  int64
}

// NewSimulation creates a running simulation over the given bodies. The body
// order is preserved for deterministic force summation.
func NewSimulation(bodies []*physics.Body, cam *camera.Camera) *Simulation {
	return &Simulation{
		bodies:     bodies,
		cam:        cam,
		integrator: physics.NewIntegrator(physics.NewGravity()),
		dt:         parameter.Timestep,
	}
}

// Tick advances the simulation by one step unless paused. Called once per
// rendered frame by the externally-owned frame loop.
func (s *Simulation) Tick() {
	if s.paused {
		return
	}
	s.integrator.Step(s.bodies, s.dt)
	s.steps++
}

// TogglePause flips between running and paused and returns the new paused state
func (s *Simulation) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Paused reports whether integration is suspended
func (s *Simulation) Paused() bool {
	return s.paused
}

// Bodies exposes the body list for rendering; stable order, read access only
func (s *Simulation) Bodies() []*physics.Body {
	return s.bodies
}

// Camera returns the viewport transform
func (s *Simulation) Camera() *camera.Camera {
	return s.cam
}

// Steps returns the number of integration steps taken
func (s *Simulation) Steps() int64 {
	return s.steps
}

// ElapsedDays returns the simulated time covered so far, in days
func (s *Simulation) ElapsedDays() float64 {
	return float64(s.steps) * s.dt / (3600 * 24)
}
