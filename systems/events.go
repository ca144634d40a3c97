package systems

import (
	"github.com/automoto/beatchain/shared/messages"
	"github.com/yohamta/donburi/features/events"
)

// Signals published during a tick. Subscribers run when the tick calls
// events.ProcessAllEvents, after every system has finished.
var (
	AnimationTransitions = events.NewEventType[messages.AnimationTransitionEvent]()
	Hits                 = events.NewEventType[messages.HitEvent]()
	Blocks               = events.NewEventType[messages.BlockEvent]()
)
