package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for every key.
// Actions are resolved on demand through the control map.
// Consumed is set when a key press was swallowed by remapping this frame.
type InputData struct {
	Current  [ebiten.KeyMax + 1]bool
	Previous [ebiten.KeyMax + 1]bool
	Consumed bool
}

var Input = donburi.NewComponentType[InputData]()

// KeyJustPressed reports whether key went down this frame.
func (in *InputData) KeyJustPressed(key ebiten.Key) bool {
	if key < 0 || key > ebiten.KeyMax {
		return false
	}
	return in.Current[key] && !in.Previous[key]
}

// KeyState returns the temporal state of a single key.
func (in *InputData) KeyState(key ebiten.Key) ActionState {
	if key < 0 || key > ebiten.KeyMax {
		return ActionState{}
	}
	curr := in.Current[key]
	prev := in.Previous[key]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
