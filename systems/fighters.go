package systems

import (
	"github.com/automoto/beatchain/components"
	"github.com/automoto/beatchain/tags"
	"github.com/yohamta/donburi"
)

// fighters returns the fighter entries indexed by slot so every system
// visits them in the same order.
func fighters(w donburi.World) [2]*donburi.Entry {
	var out [2]*donburi.Entry
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		slot := components.Fighter.Get(e).Slot
		if slot >= 0 && slot < len(out) {
			out[slot] = e
		}
	})
	return out
}

// currentTick is the tick number stamped on published signals.
func currentTick(w donburi.World) uint64 {
	if e, ok := components.Match.First(w); ok {
		return components.Match.Get(e).Tick
	}
	return 0
}
