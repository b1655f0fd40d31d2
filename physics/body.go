package physics

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tTrmc/Orbit-Simulator/parameter"
	"github.com/tTrmc/Orbit-Simulator/vmath"
)

// ErrInvalidBody is returned when a body configuration violates a
// construction invariant
var ErrInvalidBody = errors.New("invalid body")

// BodyConfig is the explicit per-body construction input. All bodies are
// built once at startup; there is no runtime creation or destruction.
type BodyConfig struct {
	Name   string
	Pos    vmath.Vec2 // meters, world space
	Vel    vmath.Vec2 // meters/second
	Mass   float64    // kilograms, must be > 0
	Radius int        // base display radius in cells
	Color  tcell.Color
	Anchor bool // anchor bodies are force sources but are never integrated
}

// Body is a point mass in the simulation
type Body struct {
	Name   string
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Mass   float64
	Radius int
	Color  tcell.Color
	Anchor bool

	// Trail holds the most recent integrated positions for path rendering
	Trail *Trail

	// DistanceToAnchor is refreshed each integration step as a side effect
	// of the force pass; it is meaningless before the first step
	DistanceToAnchor float64
}

// NewBody validates cfg and builds a body with an empty trail. Mass must be
// strictly positive; a non-positive mass would feed infinities and NaNs into
// the integrator, so it is rejected here rather than re-checked per step.
func NewBody(cfg BodyConfig) (*Body, error) {
	if cfg.Mass <= 0 {
		return nil, fmt.Errorf("%w: %q mass %g must be positive", ErrInvalidBody, cfg.Name, cfg.Mass)
	}
	return &Body{
		Name:   cfg.Name,
		Pos:    cfg.Pos,
		Vel:    cfg.Vel,
		Mass:   cfg.Mass,
		Radius: cfg.Radius,
		Color:  cfg.Color,
		Anchor: cfg.Anchor,
		Trail:  NewTrail(parameter.TrailCap),
	}, nil
}
