package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// State 一局游戏的生命周期状态
type State int

const (
	Running State = iota
	Ended
)

func (s State) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// Outcome 结束时的胜负
type Outcome int

const (
	OutcomeNone Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "none"
}

// Run 一局游戏的全部状态，单一所有者，重开时原地复位
type Run struct {
	World  World
	Player Player

	Hazards   []Hazard
	Coins     []Coin
	Particles []Particle

	Score    int
	HP       int
	Level    int
	Progress float64
	Elapsed  float64

	State   State
	Outcome Outcome
	Glitch  Glitch

	hazardTimer float64
	coinTimer   float64

	rng Rand
	hud HUD
	log *zap.SugaredLogger
}

// Option 构造选项
type Option func(*Run)

// WithRand 指定随机源（测试用脚本化随机数）
func WithRand(r Rand) Option {
	return func(run *Run) { run.rng = r }
}

// WithHUD 指定 HUD 接收端
func WithHUD(h HUD) Option {
	return func(run *Run) { run.hud = h }
}

// WithLogger 指定日志
func WithLogger(l *zap.SugaredLogger) Option {
	return func(run *Run) { run.log = l }
}

// NewRun 按视口创建一局新游戏
func NewRun(vp Viewport, opts ...Option) *Run {
	r := &Run{World: World{Gravity: Gravity, Viewport: vp}}
	for _, o := range opts {
		o(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if r.hud == nil {
		r.hud = nopHUD{}
	}
	if r.log == nil {
		r.log = zap.NewNop().Sugar()
	}
	r.Player = newPlayer(r.World)
	r.reset()
	return r
}

// Running 模拟是否在推进
func (r *Run) Running() bool {
	return r.State == Running
}

// Restart 复位所有计数与实体，玩家回到中央，隐藏浮层
func (r *Run) Restart() {
	r.log.Infow("run restart", "prevState", r.State, "prevScore", r.Score, "prevLevel", r.Level)
	r.reset()
}

func (r *Run) reset() {
	r.Score, r.HP, r.Level, r.Progress = 0, StartHP, StartLevel, 0
	r.Elapsed = 0
	r.Hazards = r.Hazards[:0]
	r.Coins = r.Coins[:0]
	r.Particles = r.Particles[:0]
	r.hazardTimer, r.coinTimer = 0, 0
	r.Player.reset(r.World)
	r.State, r.Outcome = Running, OutcomeNone
	r.hud.HideOverlay()
	r.pushHUD()
}

// Resize 视口变化：只更新世界尺寸，玩家位置在下一步被钳制
func (r *Run) Resize(vp Viewport) {
	r.World.Viewport = vp
}

// Update 推进一步：物理 -> 生成 -> 碰撞计分 -> 粒子，最后写 HUD。
// 结束状态下不执行；本步内一旦结束，剩余步骤跳过
func (r *Run) Update(dt float64, in Controls) {
	if r.State != Running {
		return
	}
	dt = clamp(dt, 0, MaxStep)
	r.Elapsed += dt

	if r.Player.step(r.World, in, dt) {
		r.burst(r.Player.X, r.Player.Y+r.Player.H, burstJumpN, burstJumpPower, NeonMagenta)
	}
	r.stepSpawner(dt)
	if r.stepHazards(dt); r.State == Running {
		if r.stepCoins(dt); r.State == Running {
			r.stepParticles(dt)
		}
	}
	r.pushHUD()
}

func (r *Run) pushHUD() {
	r.hud.SetScore(r.Score)
	r.hud.SetHP(r.HP)
	r.hud.SetLevel(r.Level)
	r.hud.SetProgress(r.Progress)
}

// end 进入结束状态并显示浮层
func (r *Run) end(win bool) {
	r.State = Ended
	if win {
		r.Outcome = Win
		r.hud.ShowOverlay("Arcade Restored!",
			fmt.Sprintf("You stabilized the glitch. Final score: %d", r.Score))
	} else {
		r.Outcome = Lose
		r.hud.ShowOverlay("Game Over",
			fmt.Sprintf("The glitch won this run. Final score: %d", r.Score))
	}
	r.log.Infow("run ended", "outcome", r.Outcome, "score", r.Score, "level", r.Level, "elapsed", r.Elapsed)
}
