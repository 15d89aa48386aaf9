package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// KeySource reports the keys held down this frame.
type KeySource interface {
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
}

type ebitenKeys struct{}

func (ebitenKeys) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

// KeyboardSource reads the real keyboard through ebiten.
var KeyboardSource KeySource = ebitenKeys{}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Input))
	}

	ent, _ := components.Input.First(e.World)
	return components.Input.Get(ent)
}

// NewUpdateInput creates the system that snapshots the keyboard at the start
// of each tick. It runs in every state.
func NewUpdateInput(src KeySource) ecs.System {
	if src == nil {
		src = KeyboardSource
	}
	// Reused across frames
	var pressed []ebiten.Key

	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		input.Previous = input.Current
		input.Current = [ebiten.KeyMax + 1]bool{}
		input.Consumed = false

		pressed = src.AppendPressedKeys(pressed[:0])
		for _, key := range pressed {
			if key >= 0 && key <= ebiten.KeyMax {
				input.Current[key] = true
			}
		}
	}
}

// GetAction resolves an action against the current key snapshot. Menu
// actions use fixed keys; player actions go through the control map. No
// action fires on a frame whose key press was taken by remapping.
func GetAction(e *ecs.ECS, action cfg.ActionID) components.ActionState {
	input := getOrCreateInput(e)
	if input.Consumed {
		return components.ActionState{}
	}

	if keys, ok := cfg.Input.MenuBindings[action]; ok {
		return anyKeyState(input, keys)
	}

	key, ok := GetOrCreateControlMap(e).Key(action)
	if !ok {
		return components.ActionState{}
	}
	return input.KeyState(key)
}

func anyKeyState(input *components.InputData, keys []ebiten.Key) components.ActionState {
	curr, prev := false, false
	for _, key := range keys {
		if key < 0 || key > ebiten.KeyMax {
			continue
		}
		curr = curr || input.Current[key]
		prev = prev || input.Previous[key]
	}
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
