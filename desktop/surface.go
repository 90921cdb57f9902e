package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"glitcharcade/game"
)

var background = color.NRGBA{R: 5, G: 6, B: 10, A: 255}

// Surface 在 *ebiten.Image 上实现 game.Surface
type Surface struct {
	dst     *ebiten.Image
	snap    *ebiten.Image
	snapped bool
}

// Begin 绑定本帧的目标图像
func (s *Surface) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.snapped = false
}

func (s *Surface) Clear() {
	s.dst.Fill(background)
}

// halo 发光近似：更大一圈的半透明底色
func halo(c color.NRGBA) color.NRGBA {
	c.A /= 4
	return c
}

func (s *Surface) FillRect(x, y, w, h float64, st game.Style) {
	if st.Glow > 0 {
		g := st.Glow / 3
		vector.DrawFilledRect(s.dst, float32(x-g), float32(y-g), float32(w+2*g), float32(h+2*g), halo(st.Color), true)
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), st.Color, true)
}

func (s *Surface) StrokeRect(x, y, w, h float64, st game.Style) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), 1, st.Color, true)
}

func (s *Surface) Line(x0, y0, x1, y1 float64, st game.Style) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, st.Color, true)
}

func (s *Surface) FillCircle(cx, cy, r float64, st game.Style) {
	if st.Glow > 0 {
		vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r+st.Glow/3), halo(st.Color), true)
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), st.Color, true)
}

// Blit 图像不能绘制到自身，首次调用时把当前帧拷贝一份作为采样源
func (s *Surface) Blit(x, y, w, h, dx, dy float64) {
	b := s.dst.Bounds()
	if !s.snapped {
		if s.snap == nil || s.snap.Bounds() != b {
			if s.snap != nil {
				s.snap.Deallocate()
			}
			s.snap = ebiten.NewImage(b.Dx(), b.Dy())
		}
		s.snap.Clear()
		s.snap.DrawImage(s.dst, nil)
		s.snapped = true
	}
	src := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(b)
	if src.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// 子图像左上角对应 GeoM 原点
	op.GeoM.Translate(dx+float64(src.Min.X)-x, dy+float64(src.Min.Y)-y)
	s.dst.DrawImage(s.snap.SubImage(src).(*ebiten.Image), op)
}
