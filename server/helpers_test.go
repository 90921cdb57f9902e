package server

import (
	"encoding/json"
	"sync"
	"testing"

	"go.uber.org/zap"

	"glitcharcade/config"
	"glitcharcade/game"
)

type fakeSender struct {
	mu     sync.Mutex
	frames [][]byte
	full   bool
	closed bool
}

func (f *fakeSender) Enqueue(b []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.full || f.closed {
		return false
	}
	f.frames = append(f.frames, append([]byte(nil), b...))
	return true
}

func (f *fakeSender) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *fakeSender) last(t *testing.T) FrameMessage {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.frames) == 0 {
		t.Fatalf("no frames sent")
	}
	var msg FrameMessage
	if err := json.Unmarshal(f.frames[len(f.frames)-1], &msg); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return msg
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 42
	return cfg
}

func newTestSession(conn Sender) *Session {
	return NewSession("test", conn, game.Viewport{W: 800, H: 600}, 60, 7, zap.NewNop().Sugar())
}

// hitPlayer 在玩家中心放一个危险物
func hitPlayer(s *Session) {
	cx, cy := s.run.Player.Center()
	s.run.Hazards = append(s.run.Hazards, game.Hazard{X: cx, Y: cy, R: 10})
}
