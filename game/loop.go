package game

import "time"

// Loop 每帧驱动：计算 dt，运行中则推进模拟，然后无条件渲染
type Loop struct {
	Run      *Run
	Keys     *KeySet
	Renderer *Renderer

	last time.Time
}

// NewLoop 组装帧驱动
func NewLoop(run *Run, keys *KeySet, renderer *Renderer) *Loop {
	return &Loop{Run: run, Keys: keys, Renderer: renderer}
}

// FrameDelta 两帧间隔（秒），钳制到 [0, MaxStep]；首帧为 0
func FrameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return 0
	}
	return clamp(now.Sub(last).Seconds(), 0, MaxStep)
}

// Frame 执行一帧：update（仅运行中）-> 撕裂衰减 -> render
func (l *Loop) Frame(now time.Time, s Surface) {
	dt := FrameDelta(l.last, now)
	l.last = now
	l.Step(dt, s)
}

// Step 以给定 dt 执行一帧，便于无时钟测试
func (l *Loop) Step(dt float64, s Surface) {
	if l.Run.Running() {
		l.Run.Update(dt, l.Keys.Sample())
	}
	fx := Effects{Tear: l.Run.Glitch.Active()}
	if fx.Tear {
		fx.Strength = l.Run.Glitch.Advance(dt)
	}
	l.Renderer.Draw(s, l.Run, fx)
}

// HandleKey 展示层按键回调：更新按住集合，R 键立即重开。
// 只能在帧驱动所在的 goroutine 调用；跨 goroutine 请走请求通道
func (l *Loop) HandleKey(key string, down bool) {
	if !down {
		l.Keys.Release(key)
		return
	}
	if l.Keys.Press(key) == ActRestart {
		l.Run.Restart()
	}
}
