package core

import (
	"testing"

	"github.com/automoto/beatchain/shared/messages"
)

func TestGameLoopRunsScript(t *testing.T) {
	m := newMatch(t, nil)
	script := make(Frames, 30)
	for i := range script {
		script[i] = [2]messages.FighterInput{messages.NeutralInput(0), messages.NeutralInput(1)}
	}

	loop := NewGameLoop(m, script, 0)
	var seen int
	loop.OnTick(func(TickResult) { seen++ })

	if n := loop.Run(); n != 30 {
		t.Fatalf("Run stepped %d ticks, want 30", n)
	}
	if seen != 30 || m.Tick() != 30 {
		t.Fatalf("callbacks %d, match tick %d", seen, m.Tick())
	}
}

func TestGameLoopStop(t *testing.T) {
	m := newMatch(t, nil)
	loop := NewGameLoop(m, make(Frames, 10), 0)
	loop.Stop()
	loop.Stop()

	if n := loop.Run(); n != 0 {
		t.Fatalf("stopped loop ran %d ticks", n)
	}
}

func TestFramesExhaust(t *testing.T) {
	f := make(Frames, 2)
	if _, ok := f.Next(1); !ok {
		t.Fatal("frame 1 missing")
	}
	if _, ok := f.Next(2); ok {
		t.Fatal("frame 2 past the end")
	}
}
