package game

import "math"

// 速度每秒衰减到原来的 0.001
const particleDamping = 0.001

// burst 以 (x, y) 为中心向随机方向喷射 n 个粒子
func (r *Run) burst(x, y float64, n int, power float64, neon Neon) {
	for i := 0; i < n; i++ {
		a := randRange(r.rng, 0, 2*math.Pi)
		r.Particles = append(r.Particles, Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(a) * randRange(r.rng, 40, power),
			VY:   math.Sin(a) * randRange(r.rng, 40, power),
			Life: randRange(r.rng, 0.35, 0.75),
			Neon: neon,
		})
	}
}

// stepParticles 老化、积分、阻尼，寿命耗尽即移除
func (r *Run) stepParticles(dt float64) {
	damp := math.Pow(particleDamping, dt)
	for i := len(r.Particles) - 1; i >= 0; i-- {
		p := &r.Particles[i]
		p.Age += dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= damp
		p.VY *= damp
		if p.Age >= p.Life {
			r.Particles = removeAt(r.Particles, i)
		}
	}
}
