package core

import (
	"sync"
	"time"

	"github.com/automoto/beatchain/logging"
	"github.com/automoto/beatchain/shared/messages"
)

// InputSource supplies one frame of input per tick. ok is false once the
// source is exhausted.
type InputSource interface {
	Next(tick uint64) (inputs [2]messages.FighterInput, ok bool)
}

// Frames is a fixed input script.
type Frames [][2]messages.FighterInput

func (f Frames) Next(tick uint64) ([2]messages.FighterInput, bool) {
	if tick >= uint64(len(f)) {
		return [2]messages.FighterInput{}, false
	}
	return f[tick], true
}

// GameLoop steps a match from a source at a fixed rate. A tick rate of
// zero runs unthrottled.
type GameLoop struct {
	match    *Match
	source   InputSource
	tickRate int
	onTick   func(TickResult)

	stopOnce sync.Once
	stopChan chan struct{}
}

func NewGameLoop(match *Match, source InputSource, tickRate int) *GameLoop {
	return &GameLoop{
		match:    match,
		source:   source,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// OnTick registers a callback run after every step.
func (g *GameLoop) OnTick(fn func(TickResult)) {
	g.onTick = fn
}

// Run blocks until Stop is called or the source runs out, and returns the
// number of ticks stepped.
func (g *GameLoop) Run() uint64 {
	var ticks <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		ticks = ticker.C
	}

	logging.Log.Infow("game loop started", "tickRate", g.tickRate)

	var stepped uint64
	for {
		if ticks != nil {
			select {
			case <-g.stopChan:
				logging.Log.Infow("game loop stopped", "ticks", stepped)
				return stepped
			case <-ticks:
			}
		} else {
			select {
			case <-g.stopChan:
				logging.Log.Infow("game loop stopped", "ticks", stepped)
				return stepped
			default:
			}
		}

		if !g.tick(stepped) {
			logging.Log.Infow("input source exhausted", "ticks", stepped)
			return stepped
		}
		stepped++
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick(n uint64) bool {
	inputs, ok := g.source.Next(n)
	if !ok {
		return false
	}
	result := g.match.Step(inputs)
	if g.onTick != nil {
		g.onTick(result)
	}
	return true
}
