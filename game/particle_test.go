package game

import (
	"math"
	"testing"
)

func TestParticleStep(t *testing.T) {
	r := newTestRun(nil)
	r.Particles = append(r.Particles,
		Particle{X: 0, Y: 0, VX: 100, VY: -50, Life: 1},
		Particle{Life: 0.02},
	)
	r.stepParticles(0.02)

	if len(r.Particles) != 1 {
		t.Fatalf("expired particle kept: %d", len(r.Particles))
	}
	p := r.Particles[0]
	if !almostEqual(p.X, 2) || !almostEqual(p.Y, -1) {
		t.Fatalf("position = (%v, %v)", p.X, p.Y)
	}
	damp := math.Pow(0.001, 0.02)
	if !almostEqual(p.VX, 100*damp) || !almostEqual(p.VY, -50*damp) {
		t.Fatalf("velocity = (%v, %v)", p.VX, p.VY)
	}
	if !almostEqual(p.Fade(), 0.98) {
		t.Fatalf("fade = %v", p.Fade())
	}
}

func TestBurst(t *testing.T) {
	r := NewRun(testViewport, WithRand(fixedRand(0)))
	r.burst(10, 20, 5, 220, NeonRed)
	if len(r.Particles) != 5 {
		t.Fatalf("burst size %d", len(r.Particles))
	}
	for _, p := range r.Particles {
		if p.X != 10 || p.Y != 20 || p.Neon != NeonRed || p.Life != 0.35 || p.VX != 40 || p.Age != 0 {
			t.Fatalf("unexpected particle %+v", p)
		}
	}
}
