package server

import (
	"encoding/json"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"glitcharcade/game"
)

// Sender 会话的下行通道（WebSocket 连接或测试替身）
type Sender interface {
	// Enqueue 非阻塞入队，队列满返回 false
	Enqueue(b []byte) bool
	Close() error
}

// Summary 会话的只读摘要（供管理接口跨协程读取）
type Summary struct {
	ID        string    `json:"id"`
	Created   time.Time `json:"created"`
	State     string    `json:"state"`
	Outcome   string    `json:"outcome"`
	Score     int       `json:"score"`
	HP        int       `json:"hp"`
	Level     int       `json:"level"`
	Progress  float64   `json:"progress"`
	Hazards   int       `json:"hazards"`
	Coins     int       `json:"coins"`
	Particles int       `json:"particles"`
	Elapsed   float64   `json:"elapsed"`
	Frame     int64     `json:"frame"`
}

// FrameMessage 下行帧
type FrameMessage struct {
	Type string    `json:"type"`
	Seq  int64     `json:"seq"`
	Cmds []DrawCmd `json:"cmds"`
	HUD  HUDState  `json:"hud"`
}

// Session 一个连接对应一局游戏：权威状态在内存，单协程 Tick 推进
type Session struct {
	ID      string
	Created time.Time
	order   uint64

	run  *game.Run
	loop *game.Loop
	keys *game.KeySet
	hud  *playerHUD
	rec  *Recorder

	conn        Sender
	restartChan chan struct{}
	resizeChan  chan game.Viewport
	done        chan struct{}
	closeOnce   sync.Once

	fps       int
	frameSeq  int64
	lastState game.State
	summary   atomic.Pointer[Summary]
	metrics   *SessionMetrics
	log       *zap.SugaredLogger

	tickerStarted bool
}

// NewSession 创建会话；seed 决定模拟与撕裂效果的随机序列
func NewSession(id string, conn Sender, vp game.Viewport, fps int, seed uint64, log *zap.SugaredLogger) *Session {
	s := &Session{
		ID:          id,
		Created:     time.Now(),
		keys:        game.NewKeySet(),
		hud:         &playerHUD{},
		rec:         NewRecorder(),
		conn:        conn,
		restartChan: make(chan struct{}, 1),
		resizeChan:  make(chan game.Viewport, 8),
		done:        make(chan struct{}),
		fps:         fps,
		metrics:     &SessionMetrics{},
		log:         log.With("session", id),
	}
	s.run = game.NewRun(vp,
		game.WithRand(rand.New(rand.NewPCG(seed, 1))),
		game.WithHUD(s.hud),
		game.WithLogger(s.log),
	)
	s.loop = game.NewLoop(s.run, s.keys, game.NewRenderer(rand.New(rand.NewPCG(seed, 2))))
	s.publish()
	return s
}

// OnMessage 入站消息只修改按键集合或投递请求，不直接改动局面
func (s *Session) OnMessage(im InputMessage) {
	s.metrics.IncInputsAccepted()
	switch im.Type {
	case MsgKey:
		if !im.Down {
			s.keys.Release(im.Key)
			return
		}
		if s.keys.Press(im.Key) == game.ActRestart {
			s.RequestRestart()
		}
	case MsgResize:
		s.RequestResize(game.Viewport{W: im.W, H: im.H})
	case MsgRestart:
		s.RequestRestart()
	}
}

// RequestRestart 请求在 Tick 协程中重开；多次请求在同一帧内合并
func (s *Session) RequestRestart() {
	select {
	case s.restartChan <- struct{}{}:
	default:
	}
}

// RequestResize 请求在 Tick 协程中更新视口；拥塞时丢弃
func (s *Session) RequestResize(vp game.Viewport) {
	select {
	case s.resizeChan <- vp:
	default:
	}
}

// BeginFrame 处理积压的重开/视口请求（非阻塞 drain）
func (s *Session) BeginFrame() {
	for {
		select {
		case vp := <-s.resizeChan:
			s.run.Resize(vp)
		case <-s.restartChan:
			s.run.Restart()
			s.keys.Reset()
			s.metrics.IncRestarts()
		default:
			return
		}
	}
}

// Tick 执行一帧：请求 -> 模拟与渲染 -> 统计 -> 下发
func (s *Session) Tick(now time.Time) {
	start := time.Now()
	s.BeginFrame()
	s.loop.Frame(now, s.rec)
	s.trackOutcome()
	s.Broadcast()
	s.publish()
	s.metrics.AddFrame(time.Since(start).Nanoseconds())
}

// trackOutcome 运行 -> 结束 的转换计入胜负统计
func (s *Session) trackOutcome() {
	st := s.run.State
	if s.lastState == game.Running && st == game.Ended {
		if s.run.Outcome == game.Win {
			s.metrics.IncWins()
		} else {
			s.metrics.IncLosses()
		}
	}
	s.lastState = st
}

// Broadcast 将当前帧编码后压入发送队列
func (s *Session) Broadcast() {
	s.frameSeq++
	msg := FrameMessage{Type: "frame", Seq: s.frameSeq, Cmds: s.rec.Commands(), HUD: s.hud.state}
	b, err := json.Marshal(msg)
	if err != nil {
		s.log.Errorw("encode frame", "err", err)
		return
	}
	if s.conn == nil || !s.conn.Enqueue(b) {
		s.metrics.IncFramesDropped()
	}
}

func (s *Session) publish() {
	r := s.run
	s.summary.Store(&Summary{
		ID:        s.ID,
		Created:   s.Created,
		State:     r.State.String(),
		Outcome:   r.Outcome.String(),
		Score:     r.Score,
		HP:        r.HP,
		Level:     r.Level,
		Progress:  r.Progress,
		Hazards:   len(r.Hazards),
		Coins:     len(r.Coins),
		Particles: len(r.Particles),
		Elapsed:   r.Elapsed,
		Frame:     s.frameSeq,
	})
}

// Summary 最近一帧结束时的摘要
func (s *Session) Summary() Summary {
	return *s.summary.Load()
}

// Metrics 会话指标
func (s *Session) Metrics() *SessionMetrics {
	return s.metrics
}

// Close 停止 Tick 并关闭连接，可重复调用
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if s.conn != nil {
			err = s.conn.Close()
		}
		s.log.Infow("session closed", "frames", atomic.LoadInt64(&s.metrics.Frames))
	})
	return err
}
