package systems

import (
	"github.com/automoto/beatchain/components"
	"github.com/automoto/beatchain/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInputBuffers pushes each fighter's pending input into its buffer
// and resets the pending slot to neutral. Must run first in the tick.
func UpdateInputBuffers(ecs *ecs.ECS) {
	for _, e := range fighters(ecs.World) {
		if e == nil {
			continue
		}
		in := components.Input.Get(e)
		in.Buffer.Update(in.Pending.Motion, in.Pending.Buttons)
		in.Pending = messages.NeutralInput(in.Pending.CharacterID)
	}
}
