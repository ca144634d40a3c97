package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's box in the collision space. Space coordinates
// are y-down; use factory.PlaceObject to place it from world coordinates.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the match's single collision space.
var Space = donburi.NewComponentType[resolv.Space]()
