package game

const (
	scanlineStep  = 4.0
	scanlineAlpha = 0.10
	glowBlur      = 18.0
	particleSize  = 2.2
)

// Renderer 只读地绘制一局游戏；自带随机源用于撕裂条采样
type Renderer struct {
	rng Rand
}

func NewRenderer(rng Rand) *Renderer {
	return &Renderer{rng: rng}
}

// Effects 本帧的后处理参数，由帧驱动在绘制前算好
type Effects struct {
	Tear     bool
	Strength float64
}

// Draw 背景、地面、实体、粒子，最后按强度叠加撕裂条
func (d *Renderer) Draw(s Surface, r *Run, fx Effects) {
	vp := r.World.Viewport
	s.Clear()

	scan := Style{Color: rgba(0, 0, 0, scanlineAlpha)}
	for y := 0.0; y < vp.H; y += scanlineStep {
		s.FillRect(0, y, vp.W, 1, scan)
	}

	ground := r.World.FloorY() + r.Player.H
	s.FillRect(0, ground, vp.W, vp.H-r.World.FloorY(), Style{Color: colCyan(0.10)})
	s.Line(0, ground, vp.W, ground, Style{Color: colCyan(0.35)})

	for _, h := range r.Hazards {
		s.FillCircle(h.X, h.Y, h.R, Style{Color: colMagenta(0.85), Glow: glowBlur})
	}
	for _, c := range r.Coins {
		cy := c.DrawY()
		s.FillCircle(c.X, cy, c.R, Style{Color: colCyan(0.85), Glow: glowBlur})
		s.FillCircle(c.X-3, cy-3, 2.2, Style{Color: rgba(255, 255, 255, 0.55)})
	}

	drawPlayer(s, &r.Player)

	for _, p := range r.Particles {
		cr, cg, cb := p.Neon.RGB()
		s.FillRect(p.X, p.Y, particleSize, particleSize, Style{Color: rgba(cr, cg, cb, 0.65*p.Fade())})
	}

	if fx.Tear {
		d.tear(s, vp, fx.Strength)
	}
}

// tear 从已绘制的帧中随机取水平条，按强度横向错位重绘
func (d *Renderer) tear(s Surface, vp Viewport, strength float64) {
	n := Bands(strength)
	for i := 0; i < n; i++ {
		y := randRange(d.rng, 0, vp.H)
		h := randRange(d.rng, 6, 22)
		shift := randRange(d.rng, -18, 18) * strength
		s.Blit(0, y, vp.W, h, shift, y)
	}
}

func drawPlayer(s Surface, p *Player) {
	s.FillRect(p.X, p.Y, p.W, p.H, Style{Color: colCyan(0.22), Glow: glowBlur})
	s.StrokeRect(p.X, p.Y, p.W, p.H, Style{Color: colCyan(0.75)})
	s.FillRect(p.X+8, p.Y+10, p.W-16, p.H-20, Style{Color: colMagenta(0.25)})
}
