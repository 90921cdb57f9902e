package server

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"glitcharcade/config"
	"glitcharcade/game"
)

// SessionManager 管理多个会话的生命周期
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cfg     config.Config
	created atomic.Uint64
	log     *zap.SugaredLogger
}

func NewSessionManager(cfg config.Config, log *zap.SugaredLogger) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		log:      log,
	}
}

// seedFor 配置了 seed 时按创建顺序递增，否则取时间
func (m *SessionManager) seedFor(n uint64) uint64 {
	if m.cfg.Seed != 0 {
		return m.cfg.Seed + n - 1
	}
	return uint64(time.Now().UnixNano()) + n
}

// Create 新建会话并登记（不启动 Tick）
func (m *SessionManager) Create(conn Sender) *Session {
	vp := game.Viewport{W: float64(m.cfg.Viewport.Width), H: float64(m.cfg.Viewport.Height)}
	seq := m.created.Add(1)
	s := NewSession(uuid.NewString(), conn, vp, m.cfg.FPS, m.seedFor(seq), m.log)
	s.order = seq

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	m.log.Infow("session created", "session", s.ID)
	return s
}

// Get 按 id 查找
func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove 注销并关闭会话
func (m *SessionManager) Remove(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return nil
	}
	return s.Close()
}

// List 按创建顺序排列的会话列表
func (m *SessionManager) List() []*Session {
	m.mu.RLock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].order < out[j].order })
	return out
}

// Metrics 汇总所有在线会话的指标
func (m *SessionManager) Metrics() *SessionMetrics {
	total := &SessionMetrics{}
	for _, s := range m.List() {
		total.merge(s.metrics.load())
	}
	return total
}

// CloseAll 关闭全部会话，聚合错误
func (m *SessionManager) CloseAll() error {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	var err error
	for _, s := range all {
		err = multierr.Append(err, s.Close())
	}
	return err
}
