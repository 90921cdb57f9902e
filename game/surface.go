package game

import "image/color"

// Style 绘制样式：颜色（含透明度）与发光半径
type Style struct {
	Color color.NRGBA
	Glow  float64
}

// Surface 立即模式 2D 绘制面。核心只依赖该能力接口，
// 浏览器、终端、桌面各自实现
type Surface interface {
	Clear()
	FillRect(x, y, w, h float64, st Style)
	StrokeRect(x, y, w, h float64, st Style)
	Line(x0, y0, x1, y1 float64, st Style)
	FillCircle(cx, cy, r float64, st Style)
	// Blit 把本面上 (x, y, w, h) 区域拷贝到 (dx, dy)
	Blit(x, y, w, h, dx, dy float64)
}

// rgba 以 0..1 的透明度构造颜色
func rgba(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp(a, 0, 1)*255 + 0.5)}
}

var (
	colCyan    = func(a float64) color.NRGBA { return rgba(0, 255, 225, a) }
	colMagenta = func(a float64) color.NRGBA { return rgba(255, 61, 245, a) }
)
