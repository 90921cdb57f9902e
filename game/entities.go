package game

import "math"

// Neon 粒子颜色标签
type Neon uint8

const (
	NeonCyan Neon = iota
	NeonMagenta
	NeonRed
)

// RGB 返回标签对应的基础颜色
func (n Neon) RGB() (r, g, b uint8) {
	switch n {
	case NeonMagenta:
		return 255, 61, 245
	case NeonRed:
		return 255, 80, 120
	default:
		return 0, 255, 225
	}
}

// Hazard 地面滚动的危险球，速度符号即生成方向
type Hazard struct {
	X, Y float64
	R    float64
	VX   float64
}

// Coin 悬浮金币，Wobble 为摆动相位
type Coin struct {
	X, Y   float64
	R      float64
	Wobble float64
}

// DrawY 带摆动偏移的纵坐标（渲染与碰撞都用它）
func (c Coin) DrawY() float64 {
	return c.Y + math.Sin(c.Wobble)*coinWobbleAmp
}

// Particle 衰减粒子，Age >= Life 时销毁
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64
	Life   float64
	Neon   Neon
}

// Fade 线性淡出系数 1 - age/life
func (p Particle) Fade() float64 {
	if p.Life <= 0 {
		return 0
	}
	return clamp(1-p.Age/p.Life, 0, 1)
}

// removeAt 交换删除：把末尾元素移到 i 再截断。
// 逆序遍历时末尾元素已访问过，不会漏访也不会重复访问。
func removeAt[T any](s []T, i int) []T {
	last := len(s) - 1
	s[i] = s[last]
	var zero T
	s[last] = zero
	return s[:last]
}
