package input

import (
	cfg "github.com/automoto/beatchain/config"
	"github.com/automoto/beatchain/shared/gamemath"
)

// CommandState is the currently recognized command. Active is CommandNone
// whenever Duration is 0.
type CommandState struct {
	Active   CommandType
	Priority int
	Duration int // frames left to act on Active
	Lockout  int // frames before the table is scanned again
}

// Buffer is one fighter's rolling input history.
type Buffer struct {
	Motions     []cfg.Motion
	Pressed     []cfg.Button
	JustPressed []cfg.Button

	CurrentMotion  cfg.Motion
	PreviousMotion cfg.Motion
	Command        CommandState
}

func NewBuffer() *Buffer {
	n := cfg.Kernel.HistoryLength
	return &Buffer{
		Motions:        make([]cfg.Motion, 0, n+1),
		Pressed:        make([]cfg.Button, 0, n+1),
		JustPressed:    make([]cfg.Button, 0, n+1),
		CurrentMotion:  cfg.MotionNeutral,
		PreviousMotion: cfg.MotionNeutral,
	}
}

// Update records one frame of input and advances the command timers.
// The lockout gate is read before it counts down, so after Consume the
// table stays closed for exactly ConsumeLockout frames.
func (b *Buffer) Update(motion cfg.Motion, buttons cfg.Button) {
	if !motion.Valid() {
		motion = cfg.MotionNeutral
	}
	b.PreviousMotion = b.CurrentMotion
	b.CurrentMotion = motion
	b.Motions = pushCapped(b.Motions, motion)

	var held cfg.Button
	if n := len(b.Pressed); n > 0 {
		held = b.Pressed[n-1]
	}
	b.Pressed = pushCapped(b.Pressed, buttons)
	b.JustPressed = pushCapped(b.JustPressed, buttons&^held)

	canMatch := b.Command.Lockout == 0
	b.Command.Lockout = gamemath.Countdown(b.Command.Lockout)

	if b.Command.Active != CommandNone {
		b.Command.Duration = gamemath.Countdown(b.Command.Duration)
		if b.Command.Duration == 0 {
			b.clearCommand()
		}
	}

	if canMatch {
		b.match()
	}
}

// Consume clears the active command once it has been acted on and closes
// the table for the lockout period.
func (b *Buffer) Consume() {
	b.clearCommand()
	b.Command.Lockout = cfg.Kernel.ConsumeLockout
}

// Active returns the recognized command, or CommandNone.
func (b *Buffer) Active() CommandType {
	return b.Command.Active
}

// Fresh returns the buttons that went down this frame.
func (b *Buffer) Fresh() cfg.Button {
	if n := len(b.JustPressed); n > 0 {
		return b.JustPressed[n-1]
	}
	return 0
}

// Held returns the buttons down this frame.
func (b *Buffer) Held() cfg.Button {
	if n := len(b.Pressed); n > 0 {
		return b.Pressed[n-1]
	}
	return 0
}

// History flattens the motion history oldest to newest, e.g. "5556".
func (b *Buffer) History() string {
	out := make([]byte, len(b.Motions))
	for i, m := range b.Motions {
		out[i] = m.Byte()
	}
	return string(out)
}

// HeldFor counts how many of the newest motions satisfy pred, stopping at
// the first that does not.
func (b *Buffer) HeldFor(pred func(cfg.Motion) bool) int {
	n := 0
	for i := len(b.Motions) - 1; i >= 0; i-- {
		if !pred(b.Motions[i]) {
			break
		}
		n++
	}
	return n
}

// Recent returns up to n of the newest motions, oldest first.
func (b *Buffer) Recent(n int) []cfg.Motion {
	if n > len(b.Motions) {
		n = len(b.Motions)
	}
	return b.Motions[len(b.Motions)-n:]
}

func (b *Buffer) match() {
	command, priority, ok := MatchCommand(b.History(), b.Command.Priority)
	if !ok {
		return
	}
	b.Command.Active = command
	b.Command.Priority = priority
	b.Command.Duration = cfg.Kernel.CommandWindow
}

func (b *Buffer) clearCommand() {
	b.Command.Active = CommandNone
	b.Command.Priority = 0
	b.Command.Duration = 0
}

func pushCapped[T any](history []T, v T) []T {
	history = append(history, v)
	if over := len(history) - cfg.Kernel.HistoryLength; over > 0 {
		history = append(history[:0], history[over:]...)
	}
	return history
}
