package game

import "math"

// fixedRand 永远返回同一个值
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

type recHUD struct {
	score    int
	hp       int
	level    int
	progress float64
	overlay  bool
	title    string
	body     string
}

func (h *recHUD) SetScore(v int)          { h.score = v }
func (h *recHUD) SetHP(v int)             { h.hp = v }
func (h *recHUD) SetLevel(v int)          { h.level = v }
func (h *recHUD) SetProgress(v float64)   { h.progress = v }
func (h *recHUD) ShowOverlay(t, b string) { h.overlay, h.title, h.body = true, t, b }
func (h *recHUD) HideOverlay()            { h.overlay, h.title, h.body = false, "", "" }

// recSurface 记录每种绘制调用的次数
type recSurface struct {
	ops   map[string]int
	blits [][6]float64
}

func newRecSurface() *recSurface { return &recSurface{ops: make(map[string]int)} }

func (s *recSurface) Clear()                                 { s.ops["clear"]++ }
func (s *recSurface) FillRect(_, _, _, _ float64, _ Style)   { s.ops["fillRect"]++ }
func (s *recSurface) StrokeRect(_, _, _, _ float64, _ Style) { s.ops["strokeRect"]++ }
func (s *recSurface) Line(_, _, _, _ float64, _ Style)       { s.ops["line"]++ }
func (s *recSurface) FillCircle(_, _, _ float64, _ Style)    { s.ops["circle"]++ }
func (s *recSurface) Blit(x, y, w, h, dx, dy float64) {
	s.ops["blit"]++
	s.blits = append(s.blits, [6]float64{x, y, w, h, dx, dy})
}

var testViewport = Viewport{W: 800, H: 600}

func newTestRun(hud HUD) *Run {
	opts := []Option{WithRand(fixedRand(0.5))}
	if hud != nil {
		opts = append(opts, WithHUD(hud))
	}
	return NewRun(testViewport, opts...)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
