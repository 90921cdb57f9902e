package server

import "testing"

func TestMetricsSnapshot(t *testing.T) {
	m := &SessionMetrics{}
	if avg := m.Snapshot()["avg_frame_ms"]; avg != 0.0 {
		t.Fatalf("avg with no frames = %v", avg)
	}
	m.AddFrame(2_000_000)
	m.AddFrame(4_000_000)
	m.IncWins()
	m.IncFramesDropped()
	snap := m.Snapshot()
	if snap["frames"] != int64(2) || snap["wins"] != int64(1) || snap["frames_dropped"] != int64(1) {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap["avg_frame_ms"] != 3.0 {
		t.Fatalf("avg_frame_ms = %v", snap["avg_frame_ms"])
	}

	total := &SessionMetrics{}
	total.merge(m.load())
	total.merge(m.load())
	if total.Frames != 4 || total.Wins != 2 {
		t.Fatalf("merge: %+v", total)
	}
}
