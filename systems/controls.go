package systems

import (
	"github.com/automoto/pong/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GetOrCreateControlMap returns the key bindings, seeded from the defaults.
func GetOrCreateControlMap(e *ecs.ECS) *components.ControlMapData {
	if _, ok := components.ControlMap.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.ControlMap))
		components.ControlMap.SetValue(ent, components.NewControlMap())
	}

	ent, _ := components.ControlMap.First(e.World)
	return components.ControlMap.Get(ent)
}

// ListenForKeys binds the first key pressed this frame to the action being
// remapped. The press is consumed so no other system acts on it.
func ListenForKeys(e *ecs.ECS) {
	controls := GetOrCreateControlMap(e)
	if !controls.IsRemapping() {
		return
	}

	input := getOrCreateInput(e)
	for key := ebiten.Key(0); key <= ebiten.KeyMax; key++ {
		if !input.KeyJustPressed(key) {
			continue
		}
		action := controls.Action
		controls.Remap(key)
		input.Consumed = true
		zap.L().Info("key rebound",
			zap.Stringer("action", action),
			zap.Stringer("key", key),
		)
		return
	}
}
