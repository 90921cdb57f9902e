package game

import "testing"

func TestSpawnIntervals(t *testing.T) {
	cases := []struct {
		level        int
		hazard, coin float64
	}{
		{1, 1.02, 1.29},
		{5, 0.7, 1.05},
		{11, 0.25, 0.69},
		{30, 0.25, 0.55},
	}
	for _, c := range cases {
		if got := HazardInterval(c.level); !closeTo(got, c.hazard) {
			t.Fatalf("HazardInterval(%d) = %v, want %v", c.level, got, c.hazard)
		}
		if got := CoinInterval(c.level); !closeTo(got, c.coin) {
			t.Fatalf("CoinInterval(%d) = %v, want %v", c.level, got, c.coin)
		}
	}
}

func closeTo(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestSpawnHazardSides(t *testing.T) {
	left := NewRun(testViewport, WithRand(fixedRand(0.25)))
	left.spawnHazard()
	h := left.Hazards[0]
	if h.X != -40 || h.VX != 325 {
		t.Fatalf("left spawn: %+v", h)
	}
	if h.Y < left.World.FloorY()+8 || h.Y > left.World.FloorY()+40 {
		t.Fatalf("left spawn y out of band: %v", h.Y)
	}

	right := NewRun(testViewport, WithRand(fixedRand(0.75)))
	right.spawnHazard()
	h = right.Hazards[0]
	if h.X != testViewport.W+40 || h.VX != -455 {
		t.Fatalf("right spawn: %+v", h)
	}
}

func TestSpawnerAccumulators(t *testing.T) {
	r := newTestRun(nil)
	r.stepSpawner(HazardInterval(1) - 0.01)
	if len(r.Hazards) != 0 || len(r.Coins) != 0 {
		t.Fatalf("spawned too early: hazards=%d coins=%d", len(r.Hazards), len(r.Coins))
	}
	r.stepSpawner(0.01)
	if len(r.Hazards) != 1 || r.hazardTimer != 0 {
		t.Fatalf("hazard not spawned at interval: %d timer=%v", len(r.Hazards), r.hazardTimer)
	}
	r.stepSpawner(CoinInterval(1))
	if len(r.Coins) != 1 || r.coinTimer != 0 {
		t.Fatalf("coin not spawned at interval: %d timer=%v", len(r.Coins), r.coinTimer)
	}
	c := r.Coins[0]
	if c.X < 60 || c.X > testViewport.W-60 || c.Y > r.World.FloorY()-60 || c.Y < r.World.FloorY()-240 {
		t.Fatalf("coin out of band: %+v", c)
	}
}

func TestSecondHazardFromLevelFour(t *testing.T) {
	cases := []struct {
		level int
		rnd   float64
		want  int
	}{
		{3, 0.25, 1},
		{4, 0.25, 2},
		{4, 0.5, 1},
		{7, 0.1, 2},
	}
	for _, c := range cases {
		r := NewRun(testViewport, WithRand(fixedRand(c.rnd)))
		r.Level = c.level
		r.stepSpawner(HazardInterval(c.level))
		if len(r.Hazards) != c.want {
			t.Fatalf("level %d rand %v: %d hazards, want %d", c.level, c.rnd, len(r.Hazards), c.want)
		}
	}
}
