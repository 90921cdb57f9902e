package game

import (
	"testing"
	"time"
)

func TestFrameDelta(t *testing.T) {
	now := time.Unix(100, 0)
	if dt := FrameDelta(time.Time{}, now); dt != 0 {
		t.Fatalf("first frame dt = %v", dt)
	}
	if dt := FrameDelta(now, now.Add(16*time.Millisecond)); !almostEqual(dt, 0.016) {
		t.Fatalf("dt = %v", dt)
	}
	if dt := FrameDelta(now, now.Add(time.Second)); dt != MaxStep {
		t.Fatalf("slow frame dt = %v, want %v", dt, MaxStep)
	}
	if dt := FrameDelta(now, now.Add(-time.Second)); dt != 0 {
		t.Fatalf("backwards clock dt = %v", dt)
	}
}

func TestLoopRendersWhenEnded(t *testing.T) {
	r := newTestRun(nil)
	l := NewLoop(r, NewKeySet(), NewRenderer(fixedRand(0.5)))
	r.HP = 1
	placeHazardOnPlayer(r)

	s := newRecSurface()
	l.Step(0.016, s)
	if r.State != Ended {
		t.Fatalf("run should have ended")
	}
	// 受击触发撕裂，同帧即开始衰减并绘制
	if !almostEqual(r.Glitch.Time, GlitchOnHit-0.016) || s.ops["blit"] != 26 {
		t.Fatalf("glitch=%v blits=%d", r.Glitch.Time, s.ops["blit"])
	}

	l.Keys.Press("arrowright")
	x := r.Player.X
	for i := 0; i < 5; i++ {
		l.Step(0.016, s)
	}
	if s.ops["clear"] != 6 {
		t.Fatalf("render skipped while ended: %d clears", s.ops["clear"])
	}
	if r.Player.X != x {
		t.Fatalf("simulation advanced while ended")
	}
}

func TestLoopFrameUsesClock(t *testing.T) {
	r := newTestRun(nil)
	l := NewLoop(r, NewKeySet(), NewRenderer(fixedRand(0.5)))
	start := time.Unix(0, 0)
	l.Frame(start, newRecSurface())
	if r.Elapsed != 0 {
		t.Fatalf("first frame advanced time: %v", r.Elapsed)
	}
	l.Frame(start.Add(5*time.Second), newRecSurface())
	if !almostEqual(r.Elapsed, MaxStep) {
		t.Fatalf("elapsed = %v, want clamp %v", r.Elapsed, MaxStep)
	}
}

func TestHandleKeyRestart(t *testing.T) {
	r := newTestRun(nil)
	l := NewLoop(r, NewKeySet(), NewRenderer(fixedRand(0.5)))
	r.Score, r.State = 120, Ended

	l.HandleKey("a", true)
	if !l.Keys.Has("a") {
		t.Fatalf("key not held")
	}
	l.HandleKey("a", false)
	if l.Keys.Has("a") {
		t.Fatalf("key not released")
	}
	l.HandleKey("R", true)
	if r.State != Running || r.Score != 0 {
		t.Fatalf("R did not restart: state=%v score=%d", r.State, r.Score)
	}
}
