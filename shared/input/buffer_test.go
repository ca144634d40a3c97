package input

import (
	"testing"

	cfg "github.com/automoto/beatchain/config"
)

func feed(b *Buffer, motions string) {
	for _, c := range motions {
		b.Update(cfg.Motion(c-'0'), 0)
	}
}

func TestMatchCommand(t *testing.T) {
	tests := []struct {
		name     string
		history  string
		priority int
		want     CommandType
		wantPrio int
	}{
		{"dash", "5556665566666", 0, CommandDash, 1},
		{"back dash", "55544455444", 0, CommandBackDash, 1},
		{"fireball", "55522222333366", 1, CommandFireball, 2},
		{"reverse fireball", "5552222211144", 1, CommandReverseFireball, 2},
		{"dragon punch", "555662223333", 2, CommandDragonPunch, 3},
		{"reverse dragon punch", "554442221111", 2, CommandReverseDragonPunch, 3},
		{"half circle back", "5566322211144", 3, CommandHalfCircleBack, 4},
		{"half circle forward", "5544122233366", 3, CommandHalfCircleForward, 4},
		{"dragon punch outranks a later fireball", "5556232366", 0, CommandDragonPunch, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, prio, ok := MatchCommand(tt.history, tt.priority)
			if !ok {
				t.Fatalf("MatchCommand(%q, %d) found nothing", tt.history, tt.priority)
			}
			if got != tt.want || prio != tt.wantPrio {
				t.Fatalf("MatchCommand(%q, %d) = %s@%d, want %s@%d", tt.history, tt.priority, got, prio, tt.want, tt.wantPrio)
			}
		})
	}
}

func TestMatchCommandRespectsIncomingPriority(t *testing.T) {
	if got, _, ok := MatchCommand("55522222333366", 2); ok {
		t.Fatalf("fireball matched against priority 2 as %s", got)
	}
	if _, _, ok := MatchCommand("5555555555", 0); ok {
		t.Fatal("neutral history matched a command")
	}
}

func TestMatchCommandScansWholeHistory(t *testing.T) {
	// Motions after the shape do not hide it.
	got, prio, ok := MatchCommand("5556235555", 0)
	if !ok || got != CommandDragonPunch || prio != 3 {
		t.Fatalf("got %s@%d ok=%v, want DRAGON_PUNCH@3", got, prio, ok)
	}
}

func TestBufferRecognizesDash(t *testing.T) {
	b := NewBuffer()
	feed(b, "5556665566666")
	if b.Active() != CommandDash {
		t.Fatalf("active = %s, want DASH", b.Active())
	}
	if b.Command.Priority != 1 {
		t.Fatalf("priority = %d, want 1", b.Command.Priority)
	}
	if b.CurrentMotion != cfg.MotionForward {
		t.Fatalf("current motion = %d", b.CurrentMotion)
	}
}

func TestBufferDefaultsToNeutral(t *testing.T) {
	b := NewBuffer()
	if b.CurrentMotion != cfg.MotionNeutral || b.PreviousMotion != cfg.MotionNeutral {
		t.Fatalf("fresh buffer motions = %d/%d", b.CurrentMotion, b.PreviousMotion)
	}
	if b.Active() != CommandNone {
		t.Fatalf("fresh buffer has command %s", b.Active())
	}
}

func TestBufferConsumeLockout(t *testing.T) {
	tests := []struct {
		name   string
		motion cfg.Motion
	}{
		{"neutral after the dash", cfg.MotionNeutral},
		{"still holding forward", cfg.MotionForward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			feed(b, "555666556")
			if b.Active() != CommandDash {
				t.Fatalf("setup: active = %s, want DASH", b.Active())
			}

			b.Consume()
			if b.Active() != CommandNone || b.Command.Duration != 0 || b.Command.Lockout != 3 {
				t.Fatalf("after consume: %+v", b.Command)
			}

			for tick := 1; tick <= 3; tick++ {
				b.Update(tt.motion, 0)
				if _, _, ok := MatchCommand(b.History(), 0); !ok {
					t.Fatalf("tick %d: history %q no longer matches", tick, b.History())
				}
				if b.Active() != CommandNone {
					t.Fatalf("tick %d: command %s recognized during lockout", tick, b.Active())
				}
			}

			b.Update(tt.motion, 0)
			if b.Active() != CommandDash {
				t.Fatalf("tick 4: history %q active = %s, want DASH", b.History(), b.Active())
			}
		})
	}
}

func TestBufferCommandExpires(t *testing.T) {
	b := NewBuffer()
	feed(b, "555666556")
	for tick := 1; tick <= 4; tick++ {
		b.Update(cfg.MotionNeutral, 0)
		if b.Active() != CommandDash {
			t.Fatalf("tick %d: active = %s, want DASH", tick, b.Active())
		}
		if b.Command.Duration != 5-tick {
			t.Fatalf("tick %d: duration = %d", tick, b.Command.Duration)
		}
	}

	// The window closes and the still-buffered dash is recognized again.
	b.Update(cfg.MotionNeutral, 0)
	if b.Active() != CommandDash || b.Command.Duration != 5 {
		t.Fatalf("after expiry: %+v, want DASH rearmed", b.Command)
	}

	// Once the dash has left the history nothing is recognized.
	for i := 0; i < 25; i++ {
		b.Update(cfg.MotionNeutral, 0)
	}
	if b.Active() != CommandNone {
		t.Fatalf("active = %s after the dash left the history", b.Active())
	}
	if b.Command.Priority != 0 {
		t.Fatalf("priority = %d after expiry, want 0", b.Command.Priority)
	}
}

func TestBufferHistoryCapped(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < 45; i++ {
		b.Update(cfg.MotionDown, cfg.ButtonA)
		if len(b.Motions) > 20 || len(b.Pressed) > 20 || len(b.JustPressed) > 20 {
			t.Fatalf("update %d: history lengths %d/%d/%d", i, len(b.Motions), len(b.Pressed), len(b.JustPressed))
		}
	}
	if len(b.Motions) != 20 {
		t.Fatalf("len = %d, want 20", len(b.Motions))
	}
}

func TestBufferInvalidMotionIsNeutral(t *testing.T) {
	b := NewBuffer()
	b.Update(0, 0)
	b.Update(12, 0)
	if got := b.History(); got != "55" {
		t.Fatalf("history = %q, want 55", got)
	}
}

func TestBufferFreshButtons(t *testing.T) {
	b := NewBuffer()
	b.Update(cfg.MotionNeutral, cfg.ButtonA)
	if b.Fresh() != cfg.ButtonA {
		t.Fatalf("first frame fresh = %s", b.Fresh())
	}
	b.Update(cfg.MotionNeutral, cfg.ButtonA|cfg.ButtonB)
	if b.Fresh() != cfg.ButtonB {
		t.Fatalf("second frame fresh = %s, want B", b.Fresh())
	}
	if b.Held() != cfg.ButtonA|cfg.ButtonB {
		t.Fatalf("held = %s", b.Held())
	}
	b.Update(cfg.MotionNeutral, cfg.ButtonA|cfg.ButtonB)
	if b.Fresh() != 0 {
		t.Fatalf("held buttons reported fresh: %s", b.Fresh())
	}
}

func TestHeldFor(t *testing.T) {
	b := NewBuffer()
	feed(b, "5554444")
	if n := b.HeldFor(func(m cfg.Motion) bool { return m == cfg.MotionBack }); n != 4 {
		t.Fatalf("HeldFor(back) = %d, want 4", n)
	}
	if got := b.Recent(3); len(got) != 3 || got[0] != cfg.MotionBack {
		t.Fatalf("Recent(3) = %v", got)
	}
}
