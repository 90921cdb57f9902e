package game

import "math"

// HazardInterval 危险物生成间隔（秒），随等级缩短，下限 0.25
func HazardInterval(level int) float64 {
	return math.Max(0.25, 1.1-float64(level)*0.08)
}

// CoinInterval 金币生成间隔（秒），随等级缩短，下限 0.55
func CoinInterval(level int) float64 {
	return math.Max(0.55, 1.35-float64(level)*0.06)
}

const (
	doubleHazardLevel = 4
	doubleHazardProb  = 0.35
)

// stepSpawner 两个独立累加器，到点清零并生成
func (r *Run) stepSpawner(dt float64) {
	r.hazardTimer += dt
	r.coinTimer += dt

	if r.hazardTimer >= HazardInterval(r.Level) {
		r.hazardTimer = 0
		r.spawnHazard()
		// 高等级时有概率追加一个
		if r.Level >= doubleHazardLevel && r.rng.Float64() < doubleHazardProb {
			r.spawnHazard()
		}
	}

	if r.coinTimer >= CoinInterval(r.Level) {
		r.coinTimer = 0
		r.spawnCoin()
	}
}

func (r *Run) spawnHazard() {
	fromLeft := r.rng.Float64() < 0.5
	h := Hazard{
		X: r.World.Viewport.W + 40,
		Y: r.World.FloorY() + randRange(r.rng, 8, 40),
		R: randRange(r.rng, 10, 18),
	}
	speed := randRange(r.rng, 260, 520)
	if fromLeft {
		h.X = -40
		h.VX = speed
	} else {
		h.VX = -speed
	}
	r.Hazards = append(r.Hazards, h)
}

func (r *Run) spawnCoin() {
	r.Coins = append(r.Coins, Coin{
		X:      randRange(r.rng, 60, r.World.Viewport.W-60),
		Y:      r.World.FloorY() - randRange(r.rng, 60, 240),
		R:      coinRadius,
		Wobble: randRange(r.rng, 0, 2*math.Pi),
	})
}
