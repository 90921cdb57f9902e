package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"glitcharcade/game"
)

// 每个字符格对应的世界像素
const (
	CellW = 8.0
	CellH = 16.0
)

// 背景色
var background = color.NRGBA{R: 5, G: 6, B: 10, A: 255}

// Surface 在 tcell 字符网格上实现 game.Surface。
// 首行留给状态栏，游戏画面从 top 行开始
type Surface struct {
	screen tcell.Screen
	top    int
}

func NewSurface(screen tcell.Screen, top int) *Surface {
	return &Surface{screen: screen, top: top}
}

// Viewport 按当前终端尺寸换算的世界视口
func (s *Surface) Viewport() game.Viewport {
	cols, rows := s.screen.Size()
	return game.Viewport{W: float64(cols) * CellW, H: float64(rows-s.top) * CellH}
}

func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(toColor(background)))
}

// cell 像素坐标 -> 字符格
func (s *Surface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / CellW)), int(math.Floor(y/CellH)) + s.top
}

func (s *Surface) inside(cx, cy int) bool {
	cols, rows := s.screen.Size()
	return cx >= 0 && cx < cols && cy >= s.top && cy < rows
}

// tint 把颜色按透明度混合到格子背景上
func (s *Surface) tint(cx, cy int, c color.NRGBA) {
	if !s.inside(cx, cy) {
		return
	}
	mainc, comb, st, _ := s.screen.GetContent(cx, cy)
	fg, bg, _ := st.Decompose()
	s.screen.SetContent(cx, cy, mainc, comb, st.Foreground(fg).Background(blend(bg, c)))
}

// glyph 在格子上画前景字符，保留背景
func (s *Surface) glyph(cx, cy int, r rune, c color.NRGBA, bold bool) {
	if !s.inside(cx, cy) || c.A == 0 {
		return
	}
	_, _, st, _ := s.screen.GetContent(cx, cy)
	_, bg, _ := st.Decompose()
	s.screen.SetContent(cx, cy, r, nil, st.Foreground(blend(bg, c)).Background(bg).Bold(bold))
}

// FillRect 两边都小于半格的矩形（粒子）画成点，其余按格子着色
func (s *Surface) FillRect(x, y, w, h float64, st game.Style) {
	if w < CellW/2 && h < CellH/2 {
		cx, cy := s.cell(x, y)
		s.glyph(cx, cy, '·', st.Color, false)
		return
	}
	s.tintSpan(x, y, w, h, st.Color)
}

func (s *Surface) tintSpan(x, y, w, h float64, c color.NRGBA) {
	x0, y0 := s.cell(x, y)
	x1, y1 := s.cell(x+w-0.001, y+h-0.001)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.tint(cx, cy, c)
		}
	}
}

func (s *Surface) StrokeRect(x, y, w, h float64, st game.Style) {
	x0, y0 := s.cell(x, y)
	x1, y1 := s.cell(x+w-0.001, y+h-0.001)
	for cx := x0; cx <= x1; cx++ {
		s.glyph(cx, y0, '─', st.Color, false)
		s.glyph(cx, y1, '─', st.Color, false)
	}
	for cy := y0; cy <= y1; cy++ {
		s.glyph(x0, cy, '│', st.Color, false)
		s.glyph(x1, cy, '│', st.Color, false)
	}
}

func (s *Surface) Line(x0, y0, x1, y1 float64, st game.Style) {
	ax, ay := s.cell(x0, y0)
	bx, by := s.cell(x1, y1)
	steps := max(abs(bx-ax), abs(by-ay))
	r := '·'
	if ay == by {
		r = '─'
	}
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cx := ax + int(math.Round(t*float64(bx-ax)))
		cy := ay + int(math.Round(t*float64(by-ay)))
		s.glyph(cx, cy, r, st.Color, false)
	}
}

// FillCircle 半径不足一格时画成实心点；发光用粗体近似
func (s *Surface) FillCircle(cx, cy, r float64, st game.Style) {
	if r < CellW {
		x, y := s.cell(cx, cy)
		s.glyph(x, y, '●', st.Color, st.Glow > 0)
		return
	}
	x0, y0 := s.cell(cx-r, cy-r)
	x1, y1 := s.cell(cx+r, cy+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px := (float64(x) + 0.5) * CellW
			py := (float64(y-s.top) + 0.5) * CellH
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r {
				s.tint(x, y, st.Color)
			}
		}
	}
}

// Blit 按整格复制一段行带，并横向错位
func (s *Surface) Blit(x, y, w, h, dx, dy float64) {
	cols, _ := s.screen.Size()
	_, r0 := s.cell(x, y)
	_, r1 := s.cell(x, y+h-0.001)
	_, d0 := s.cell(0, dy)
	shift := int(math.Round(dx / CellW))
	c0, _ := s.cell(x, 0)
	c1, _ := s.cell(x+w-0.001, 0)
	c0, c1 = max(c0, 0), min(c1, cols-1)

	type cellData struct {
		r    rune
		comb []rune
		st   tcell.Style
	}
	for row := r0; row <= r1; row++ {
		dst := d0 + (row - r0)
		if !s.inside(0, row) || !s.inside(0, dst) {
			continue
		}
		buf := make([]cellData, 0, c1-c0+1)
		for c := c0; c <= c1; c++ {
			r, comb, st, _ := s.screen.GetContent(c, row)
			buf = append(buf, cellData{r, comb, st})
		}
		for i, cd := range buf {
			if tx := c0 + i + shift; tx >= 0 && tx < cols {
				s.screen.SetContent(tx, dst, cd.r, cd.comb, cd.st)
			}
		}
	}
}

// blend 以 c 的透明度把 c 叠加到 base 上
func blend(base tcell.Color, c color.NRGBA) tcell.Color {
	br, bg, bb := base.RGB()
	if br < 0 {
		br, bg, bb = int32(background.R), int32(background.G), int32(background.B)
	}
	a := float64(c.A) / 255
	mix := func(b int32, v uint8) int32 {
		return int32(math.Round(float64(b)*(1-a) + float64(v)*a))
	}
	return tcell.NewRGBColor(mix(br, c.R), mix(bg, c.G), mix(bb, c.B))
}

func toColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
