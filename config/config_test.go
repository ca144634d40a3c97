package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeMotion(t *testing.T) {
	tests := []struct {
		name       string
		horizontal int
		vertical   int
		facing     float64
		want       Motion
	}{
		{"neutral", 0, 0, 1, MotionNeutral},
		{"right facing right is forward", 1, 0, 1, MotionForward},
		{"right facing left is back", 1, 0, -1, MotionBack},
		{"left facing left is forward", -1, 0, -1, MotionForward},
		{"down-right facing right", 1, -1, 1, MotionDownForward},
		{"down-left facing right", -1, -1, 1, MotionDownBack},
		{"up-left facing left", -1, 1, -1, MotionUpForward},
		{"up", 0, 1, 1, MotionUp},
		{"down", 0, -1, -1, MotionDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeMotion(tt.horizontal, tt.vertical, tt.facing); got != tt.want {
				t.Fatalf("EncodeMotion(%d, %d, %v) = %d, want %d", tt.horizontal, tt.vertical, tt.facing, got, tt.want)
			}
		})
	}
}

func TestButtonsNewestBitFirst(t *testing.T) {
	got := (ButtonA | ButtonC | ButtonF).Buttons()
	want := []Button{ButtonF, ButtonC, ButtonA}
	if len(got) != len(want) {
		t.Fatalf("got %d buttons, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("button %d = %s, want %s", i, got[i], want[i])
		}
	}
	if s := (ButtonA | ButtonB).String(); s != "AB" {
		t.Fatalf("String() = %q, want AB", s)
	}
}

func TestLoadOverridesSections(t *testing.T) {
	saved := Kernel
	savedCombat := Combat
	t.Cleanup(func() {
		Kernel = saved
		Combat = savedCombat
	})

	path := filepath.Join(t.TempDir(), "kernel.ini")
	data := "[kernel]\nconsume_lockout = 4\n\n[combat]\ninstant_block_window = 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Kernel.ConsumeLockout != 4 {
		t.Errorf("ConsumeLockout = %d, want 4", Kernel.ConsumeLockout)
	}
	if Kernel.HistoryLength != saved.HistoryLength {
		t.Errorf("HistoryLength changed to %d", Kernel.HistoryLength)
	}
	if Combat.InstantBlockWindow != 5 {
		t.Errorf("InstantBlockWindow = %d, want 5", Combat.InstantBlockWindow)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent.ini")); err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if Kernel.TickRate != 60 {
		t.Fatalf("TickRate = %d, want 60", Kernel.TickRate)
	}
}
