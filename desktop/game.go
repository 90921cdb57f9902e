package desktop

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"glitcharcade/config"
	"glitcharcade/game"
)

// keyNames 物理按键 -> 与浏览器一致的小写键名
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "arrowleft",
	ebiten.KeyA:          "a",
	ebiten.KeyArrowRight: "arrowright",
	ebiten.KeyD:          "d",
	ebiten.KeyArrowUp:    "arrowup",
	ebiten.KeyW:          "w",
	ebiten.KeySpace:      " ",
}

// hud 实现 game.HUD，用调试文字绘制
type hud struct {
	score, hp, level int
	progress         float64
	overlay          bool
	title, body      string
}

func (h *hud) SetScore(v int)        { h.score = v }
func (h *hud) SetHP(v int)           { h.hp = v }
func (h *hud) SetLevel(v int)        { h.level = v }
func (h *hud) SetProgress(v float64) { h.progress = v }
func (h *hud) ShowOverlay(t, b string) {
	h.overlay, h.title, h.body = true, t, b
}
func (h *hud) HideOverlay() { h.overlay, h.title, h.body = false, "", "" }

// Game 实现 ebiten.Game：Update 采样键盘，Draw 作为帧驱动
type Game struct {
	surface *Surface
	hud     *hud
	keys    *game.KeySet
	loop    *game.Loop
	w, h    int
	log     *zap.SugaredLogger
}

func NewGame(vp game.Viewport, seed uint64, log *zap.SugaredLogger) *Game {
	g := &Game{
		surface: &Surface{},
		hud:     &hud{},
		keys:    game.NewKeySet(),
		w:       int(vp.W),
		h:       int(vp.H),
		log:     log,
	}
	run := game.NewRun(vp,
		game.WithRand(rand.New(rand.NewPCG(seed, 1))),
		game.WithHUD(g.hud),
		game.WithLogger(log),
	)
	g.loop = game.NewLoop(run, g.keys, game.NewRenderer(rand.New(rand.NewPCG(seed, 2))))
	return g
}

// Update 把按键状态同步到按住集合；R 重开，Esc 退出
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.keys.Reset()
		g.loop.Run.Restart()
	}
	for k, name := range keyNames {
		if ebiten.IsKeyPressed(k) {
			g.keys.Press(name)
		} else {
			g.keys.Release(name)
		}
	}
	return nil
}

// Draw 每次显示刷新执行一帧
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen)
	g.loop.Frame(time.Now(), g.surface)

	h := g.hud
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d   HP %d   LVL %d   %3.0f%%", h.score, h.hp, h.level, h.progress), 12, 10)
	if h.overlay {
		ebitenutil.DebugPrintAt(screen, h.title, g.w/2-len(h.title)*3, g.h/2-24)
		ebitenutil.DebugPrintAt(screen, h.body, g.w/2-len(h.body)*3, g.h/2)
		ebitenutil.DebugPrintAt(screen, "press R to restart", g.w/2-54, g.h/2+24)
	}
}

// Layout 窗口尺寸即世界视口
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.loop.Run.Resize(game.Viewport{W: float64(g.w), H: float64(g.h)})
	}
	return g.w, g.h
}

// Run 打开窗口并阻塞直到关闭
func Run(cfg config.Config, seed uint64, log *zap.SugaredLogger) error {
	vp := game.Viewport{W: float64(cfg.Viewport.Width), H: float64(cfg.Viewport.Height)}
	ebiten.SetWindowSize(cfg.Viewport.Width, cfg.Viewport.Height)
	ebiten.SetWindowTitle("Glitch Arcade")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	log.Infow("desktop front-end started", "width", cfg.Viewport.Width, "height", cfg.Viewport.Height)
	if err := ebiten.RunGame(NewGame(vp, seed, log)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
