package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its box in the collision space.
// Object.Data holds the owning *donburi.Entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space of the live session.
var Space = donburi.NewComponentType[resolv.Space]()
