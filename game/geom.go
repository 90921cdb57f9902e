package game

import "math"

// Rand 随机数来源，*rand.Rand（math/rand/v2）即满足
type Rand interface {
	Float64() float64
}

// randRange 在 [a, b) 区间内均匀采样
func randRange(r Rand, a, b float64) float64 {
	return a + r.Float64()*(b-a)
}

// RectCircleHit 矩形与圆的重叠测试：取圆心在矩形上的最近点，比较平方距离
func RectCircleHit(rx, ry, rw, rh, cx, cy, cr float64) bool {
	nx := math.Max(rx, math.Min(cx, rx+rw))
	ny := math.Max(ry, math.Min(cy, ry+rh))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= cr*cr
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
