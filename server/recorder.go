package server

import (
	"fmt"
	"image/color"
	"math"

	"glitcharcade/game"
)

// DrawCmd 一条绘制指令，浏览器端按序在 canvas 上回放
type DrawCmd struct {
	Op string    `json:"op"`
	A  []float64 `json:"a,omitempty"`
	C  string    `json:"c,omitempty"`
	G  float64   `json:"g,omitempty"`
}

// 指令名
const (
	OpClear      = "clear"
	OpFillRect   = "fr"
	OpStrokeRect = "sr"
	OpLine       = "ln"
	OpFillCircle = "fc"
	OpBlit       = "bl"
)

// Recorder 实现 game.Surface，把一帧的绘制记录为指令列表
type Recorder struct {
	cmds []DrawCmd
}

func NewRecorder() *Recorder {
	return &Recorder{cmds: make([]DrawCmd, 0, 256)}
}

// Commands 当前帧的指令（下一次 Clear 前有效）
func (r *Recorder) Commands() []DrawCmd {
	return r.cmds
}

// Clear 新的一帧：丢弃旧指令
func (r *Recorder) Clear() {
	r.cmds = append(r.cmds[:0], DrawCmd{Op: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, st game.Style) {
	r.add(OpFillRect, st, x, y, w, h)
}

func (r *Recorder) StrokeRect(x, y, w, h float64, st game.Style) {
	r.add(OpStrokeRect, st, x, y, w, h)
}

func (r *Recorder) Line(x0, y0, x1, y1 float64, st game.Style) {
	r.add(OpLine, st, x0, y0, x1, y1)
}

func (r *Recorder) FillCircle(cx, cy, rad float64, st game.Style) {
	r.add(OpFillCircle, st, cx, cy, rad)
}

func (r *Recorder) Blit(x, y, w, h, dx, dy float64) {
	r.cmds = append(r.cmds, DrawCmd{Op: OpBlit, A: round2(x, y, w, h, dx, dy)})
}

func (r *Recorder) add(op string, st game.Style, args ...float64) {
	r.cmds = append(r.cmds, DrawCmd{Op: op, A: round2(args...), C: cssColor(st.Color), G: st.Glow})
}

// round2 保留两位小数，压缩 JSON 体积
func round2(v ...float64) []float64 {
	for i := range v {
		v[i] = math.Round(v[i]*100) / 100
	}
	return v
}

// cssColor NRGBA -> "rgba(r,g,b,a)"
func cssColor(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255)
}
