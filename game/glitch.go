package game

import "math"

// Glitch 屏幕撕裂效果的剩余时间（秒）
type Glitch struct {
	Time float64
}

// Kick 只升不降：取当前值与请求值的较大者
func (g *Glitch) Kick(sec float64) {
	g.Time = math.Max(g.Time, sec)
}

// Active 是否仍在生效
func (g Glitch) Active() bool {
	return g.Time > 0
}

// Advance 每个渲染帧衰减 dt，返回本帧强度 min(1, time*3)，不小于 0
func (g *Glitch) Advance(dt float64) float64 {
	if g.Time <= 0 {
		return 0
	}
	g.Time -= dt
	return clamp(g.Time*3, 0, 1)
}

// Bands 撕裂条数：强度 0..1 对应 8..26
func Bands(strength float64) int {
	return int(math.Floor(8 + strength*18))
}
