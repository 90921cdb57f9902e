package term

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"glitcharcade/game"
)

// App 终端前端：一个协程内完成事件、模拟与绘制
type App struct {
	screen  tcell.Screen
	surface *Surface
	hud     *HUD
	keys    *HoldKeys
	loop    *game.Loop
	fps     int
	log     *zap.SugaredLogger
}

// New 组装终端前端；screen 需已 Init
func New(screen tcell.Screen, fps int, seed uint64, log *zap.SugaredLogger) *App {
	a := &App{
		screen:  screen,
		surface: NewSurface(screen, 1),
		hud:     &HUD{},
		fps:     fps,
		log:     log,
	}
	keys := game.NewKeySet()
	a.keys = NewHoldKeys(keys, HoldWindow)
	run := game.NewRun(a.surface.Viewport(),
		game.WithRand(rand.New(rand.NewPCG(seed, 1))),
		game.WithHUD(a.hud),
		game.WithLogger(log),
	)
	a.loop = game.NewLoop(run, keys, game.NewRenderer(rand.New(rand.NewPCG(seed, 2))))
	return a
}

// Run 阻塞运行直到退出键或 ctx 取消
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.fps))
	defer ticker.Stop()
	a.log.Infow("terminal front-end started", "viewport", a.surface.Viewport())

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if quit := a.HandleEvent(ev, time.Now()); quit {
				a.log.Info("quit requested")
				return nil
			}
		case now := <-ticker.C:
			a.Frame(now)
		}
	}
}

// HandleEvent 处理一个终端事件，返回是否退出
func (a *App) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.loop.Run.Resize(a.surface.Viewport())
	case *tcell.EventKey:
		if IsQuit(ev) {
			return true
		}
		name := KeyName(ev)
		if name == "" {
			return false
		}
		if a.keys.Press(name, now) == game.ActRestart {
			a.keys.Reset()
			a.loop.Run.Restart()
		}
	}
	return false
}

// Frame 释放过期按键，推进一帧并刷新屏幕
func (a *App) Frame(now time.Time) {
	a.keys.Expire(now)
	a.loop.Frame(now, a.surface)
	a.hud.Draw(a.screen)
	a.screen.Show()
}

// Game 当前这局
func (a *App) Game() *game.Run {
	return a.loop.Run
}
