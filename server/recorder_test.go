package server

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"glitcharcade/game"
)

func TestRecorderFrame(t *testing.T) {
	r := NewRecorder()
	r.FillRect(1, 2, 3, 4, game.Style{})
	r.Clear()
	r.FillRect(0.123, 2, 3, 4, game.Style{Color: color.NRGBA{R: 0, G: 255, B: 225, A: 255}, Glow: 18})
	r.FillCircle(10, 20, 5, game.Style{Color: color.NRGBA{R: 255, G: 61, B: 245, A: 0}})
	r.Blit(0, 10, 800, 12, -3.456, 10)

	cmds := r.Commands()
	if len(cmds) != 4 {
		t.Fatalf("expected 4 commands after clear, got %d: %+v", len(cmds), cmds)
	}
	if cmds[0].Op != OpClear {
		t.Fatalf("first op %q", cmds[0].Op)
	}
	fr := cmds[1]
	if fr.Op != OpFillRect || fr.A[0] != 0.12 || fr.C != "rgba(0,255,225,1)" || fr.G != 18 {
		t.Fatalf("unexpected fill rect %+v", fr)
	}
	if cmds[2].C != "rgba(255,61,245,0)" {
		t.Fatalf("unexpected circle colour %q", cmds[2].C)
	}
	bl := cmds[3]
	if bl.Op != OpBlit || bl.A[4] != -3.46 || bl.C != "" {
		t.Fatalf("unexpected blit %+v", bl)
	}
}

func TestRecorderDrawsRun(t *testing.T) {
	run := game.NewRun(game.Viewport{W: 400, H: 300})
	r := NewRecorder()
	game.NewRenderer(rand.New(rand.NewPCG(1, 2))).Draw(r, run, game.Effects{})
	if len(r.Commands()) == 0 || r.Commands()[0].Op != OpClear {
		t.Fatalf("run not recorded")
	}
}
