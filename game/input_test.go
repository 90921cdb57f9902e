package game

import "testing"

func TestKeySetBindings(t *testing.T) {
	k := NewKeySet()
	if act := k.Press("ArrowLeft"); act != ActLeft {
		t.Fatalf("ArrowLeft mapped to %v", act)
	}
	if !k.Has("arrowleft") {
		t.Fatalf("expected normalized key to be held")
	}
	k.Press("D")
	c := k.Sample()
	if !c.Left || !c.Right || c.Jump {
		t.Fatalf("unexpected controls %+v", c)
	}
	if c.Target() != 0 {
		t.Fatalf("opposite keys should cancel, target=%v", c.Target())
	}

	k.Release("ARROWLEFT")
	if c := k.Sample(); c.Left || !c.Right || c.Target() != 1 {
		t.Fatalf("after release: %+v", c)
	}

	k.Press("Space")
	if c := k.Sample(); !c.Jump {
		t.Fatalf("space should jump")
	}
	k.Reset()
	if c := k.Sample(); c != (Controls{}) {
		t.Fatalf("reset should clear, got %+v", c)
	}
}

func TestActionOf(t *testing.T) {
	want := map[string]Action{
		"w": ActJump, "ArrowUp": ActJump, " ": ActJump,
		"a": ActLeft, "d": ActRight, "R": ActRestart, "x": ActNone,
	}
	for key, act := range want {
		if got := ActionOf(key); got != act {
			t.Fatalf("ActionOf(%q) = %v, want %v", key, got, act)
		}
	}
}

func TestKeySetIgnoresUnboundKeys(t *testing.T) {
	k := NewKeySet()
	for _, key := range []string{"x", "junk-1", "F13", ""} {
		if act := k.Press(key); act != ActNone {
			t.Fatalf("Press(%q) = %v", key, act)
		}
		if k.Has(key) {
			t.Fatalf("unbound key %q held", key)
		}
	}
	k.Press("a")
	k.mu.Lock()
	n := len(k.held)
	k.mu.Unlock()
	if n != 1 {
		t.Fatalf("held set size %d, want 1", n)
	}
}
