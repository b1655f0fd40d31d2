package physics

import (
	"math"
	"testing"

	"github.com/tTrmc/Orbit-Simulator/parameter"
	"github.com/tTrmc/Orbit-Simulator/vmath"
)

const forceEpsilon = 1e-9

func mustBody(t *testing.T, cfg BodyConfig) *Body {
	t.Helper()
	body, err := NewBody(cfg)
	if err != nil {
		t.Fatalf("Expected valid body, got %v", err)
	}
	return body
}

func TestAttractionMagnitudeAndDirection(t *testing.T) {
	// Unit G keeps expected values readable
	g := Gravity{G: 1}

	tests := []struct {
		name   string
		bPos   vmath.Vec2
		wantFx float64
		wantFy float64
	}{
		{"Along +X", vmath.Vec2{X: 2}, 1.5, 0},
		{"Along -X", vmath.Vec2{X: -2}, -1.5, 0},
		{"Along +Y", vmath.Vec2{Y: 2}, 0, 1.5},
		{"Diagonal 3-4-5", vmath.Vec2{X: 3, Y: 4}, 6.0 / 25 * 0.6, 6.0 / 25 * 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustBody(t, BodyConfig{Name: "a", Mass: 2})
			b := mustBody(t, BodyConfig{Name: "b", Mass: 3, Pos: tt.bPos})

			f := g.Attraction(a, b)
			if math.Abs(f.X-tt.wantFx) > forceEpsilon {
				t.Errorf("Expected fx %v, got %v", tt.wantFx, f.X)
			}
			if math.Abs(f.Y-tt.wantFy) > forceEpsilon {
				t.Errorf("Expected fy %v, got %v", tt.wantFy, f.Y)
			}
		})
	}
}

func TestAttractionZeroDistanceSafety(t *testing.T) {
	g := NewGravity()
	a := mustBody(t, BodyConfig{Name: "a", Mass: 1e24, Pos: vmath.Vec2{X: 5, Y: -7}})
	b := mustBody(t, BodyConfig{Name: "b", Mass: 1e24, Pos: vmath.Vec2{X: 5, Y: -7}})

	f := g.Attraction(a, b)
	if f != (vmath.Vec2{}) {
		t.Errorf("Expected zero force for coincident bodies, got %v", f)
	}
	if math.IsNaN(f.X) || math.IsInf(f.X, 0) || math.IsNaN(f.Y) || math.IsInf(f.Y, 0) {
		t.Errorf("Expected finite force components, got %v", f)
	}
}

func TestAttractionAnchorDistanceSideEffect(t *testing.T) {
	g := NewGravity()
	planet := mustBody(t, BodyConfig{Name: "planet", Mass: 5.97219e24, Pos: vmath.Vec2{X: -parameter.AU}})
	sun := mustBody(t, BodyConfig{Name: "sun", Mass: 1.98892e30, Anchor: true})
	other := mustBody(t, BodyConfig{Name: "other", Mass: 6.4171e23, Pos: vmath.Vec2{X: parameter.AU}})

	g.Attraction(planet, sun)
	if math.Abs(planet.DistanceToAnchor-parameter.AU) > 1 {
		t.Errorf("Expected DistanceToAnchor %v, got %v", parameter.AU, planet.DistanceToAnchor)
	}

	// A non-anchor pair must not touch the stored distance
	g.Attraction(planet, other)
	if math.Abs(planet.DistanceToAnchor-parameter.AU) > 1 {
		t.Errorf("Expected DistanceToAnchor to be untouched, got %v", planet.DistanceToAnchor)
	}
}

func TestGravityDefaultConstant(t *testing.T) {
	g := NewGravity()
	if g.G != 6.67430e-11 {
		t.Errorf("Expected SI gravitational constant, got %v", g.G)
	}
}
