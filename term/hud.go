package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// HUD 实现 game.HUD：首行状态栏与居中浮层
type HUD struct {
	score, hp, level int
	progress         float64
	overlay          bool
	title, body      string
}

func (h *HUD) SetScore(v int)        { h.score = v }
func (h *HUD) SetHP(v int)           { h.hp = v }
func (h *HUD) SetLevel(v int)        { h.level = v }
func (h *HUD) SetProgress(v float64) { h.progress = v }

func (h *HUD) ShowOverlay(title, body string) {
	h.overlay, h.title, h.body = true, title, body
}

func (h *HUD) HideOverlay() {
	h.overlay, h.title, h.body = false, "", ""
}

const barWidth = 20

// StatusLine 状态栏文本
func (h *HUD) StatusLine() string {
	filled := int(h.progress / 100 * barWidth)
	filled = max(0, min(barWidth, filled))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf(" SCORE %d  HP %d  LVL %d  %s  [R]estart [Esc]quit", h.score, h.hp, h.level, bar)
}

// Draw 画状态栏与浮层
func (h *HUD) Draw(s tcell.Screen) {
	cols, rows := s.Size()
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 225)).Background(tcell.ColorBlack)
	for x := 0; x < cols; x++ {
		s.SetContent(x, 0, ' ', nil, st)
	}
	drawText(s, 0, 0, h.StatusLine(), st)

	if !h.overlay {
		return
	}
	ost := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(60, 10, 60)).Bold(true)
	drawCentered(s, cols/2, rows/2-1, h.title, ost)
	drawCentered(s, cols/2, rows/2+1, h.body, ost.Bold(false))
	drawCentered(s, cols/2, rows/2+3, "press R to restart", ost.Bold(false))
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

func drawCentered(s tcell.Screen, cx, y int, text string, st tcell.Style) {
	drawText(s, cx-len([]rune(text))/2, y, text, st)
}
