package server

import (
	"sync/atomic"
)

// SessionMetrics 记录会话运行期的关键指标（用于监控与调试）
type SessionMetrics struct {
	Frames         int64 // 已执行的帧数
	FramesDropped  int64 // 因发送队列满被丢弃的帧
	InputsAccepted int64 // 被接受的输入消息
	InputsRejected int64 // 无法解析或非法的输入消息
	Restarts       int64 // 重开次数
	Wins           int64 // 胜利结束的局数
	Losses         int64 // 失败结束的局数
	TotalFrameNs   int64 // 帧累计耗时（纳秒）
}

func (m *SessionMetrics) IncFramesDropped()  { atomic.AddInt64(&m.FramesDropped, 1) }
func (m *SessionMetrics) IncInputsAccepted() { atomic.AddInt64(&m.InputsAccepted, 1) }
func (m *SessionMetrics) IncInputsRejected() { atomic.AddInt64(&m.InputsRejected, 1) }
func (m *SessionMetrics) IncRestarts()       { atomic.AddInt64(&m.Restarts, 1) }
func (m *SessionMetrics) IncWins()           { atomic.AddInt64(&m.Wins, 1) }
func (m *SessionMetrics) IncLosses()         { atomic.AddInt64(&m.Losses, 1) }
func (m *SessionMetrics) AddFrame(ns int64) {
	atomic.AddInt64(&m.Frames, 1)
	atomic.AddInt64(&m.TotalFrameNs, ns)
}

// load 原子读取一份副本
func (m *SessionMetrics) load() SessionMetrics {
	return SessionMetrics{
		Frames:         atomic.LoadInt64(&m.Frames),
		FramesDropped:  atomic.LoadInt64(&m.FramesDropped),
		InputsAccepted: atomic.LoadInt64(&m.InputsAccepted),
		InputsRejected: atomic.LoadInt64(&m.InputsRejected),
		Restarts:       atomic.LoadInt64(&m.Restarts),
		Wins:           atomic.LoadInt64(&m.Wins),
		Losses:         atomic.LoadInt64(&m.Losses),
		TotalFrameNs:   atomic.LoadInt64(&m.TotalFrameNs),
	}
}

// merge 累加到汇总
func (m *SessionMetrics) merge(o SessionMetrics) {
	m.Frames += o.Frames
	m.FramesDropped += o.FramesDropped
	m.InputsAccepted += o.InputsAccepted
	m.InputsRejected += o.InputsRejected
	m.Restarts += o.Restarts
	m.Wins += o.Wins
	m.Losses += o.Losses
	m.TotalFrameNs += o.TotalFrameNs
}

// Snapshot 返回只读副本，便于 HTTP 输出
func (m *SessionMetrics) Snapshot() map[string]any {
	c := m.load()
	var avgMs float64
	if c.Frames > 0 {
		avgMs = float64(c.TotalFrameNs) / float64(c.Frames) / 1e6
	}
	return map[string]any{
		"frames":          c.Frames,
		"frames_dropped":  c.FramesDropped,
		"inputs_accepted": c.InputsAccepted,
		"inputs_rejected": c.InputsRejected,
		"restarts":        c.Restarts,
		"wins":            c.Wins,
		"losses":          c.Losses,
		"avg_frame_ms":    avgMs,
	}
}
