package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ControlMapData binds each remappable action to one key. While Listening
// is set the next key press is bound to Action instead of being handled as
// input.
type ControlMapData struct {
	Bindings  map[cfg.ActionID]ebiten.Key
	Listening bool
	Action    cfg.ActionID
}

var ControlMap = donburi.NewComponentType[ControlMapData]()

// NewControlMap returns a control map populated with the default bindings.
func NewControlMap() ControlMapData {
	bindings := make(map[cfg.ActionID]ebiten.Key, len(cfg.Input.DefaultBindings))
	for action, key := range cfg.Input.DefaultBindings {
		bindings[action] = key
	}
	return ControlMapData{Bindings: bindings}
}

// Key returns the key bound to an action.
func (c *ControlMapData) Key(action cfg.ActionID) (ebiten.Key, bool) {
	key, ok := c.Bindings[action]
	return key, ok
}

// ClearAction removes any binding for the action.
func (c *ControlMapData) ClearAction(action cfg.ActionID) {
	delete(c.Bindings, action)
}

// Bind installs key for action.
func (c *ControlMapData) Bind(action cfg.ActionID, key ebiten.Key) {
	if c.Bindings == nil {
		c.Bindings = make(map[cfg.ActionID]ebiten.Key)
	}
	c.Bindings[action] = key
}

// StartRemapping makes the next key press rebind action.
func (c *ControlMapData) StartRemapping(action cfg.ActionID) {
	c.Action = action
	c.Listening = true
}

// StopRemapping leaves remap mode without changing bindings.
func (c *ControlMapData) StopRemapping() {
	c.Action = cfg.ActionNone
	c.Listening = false
}

// IsRemapping reports whether a key press is awaited for an action.
func (c *ControlMapData) IsRemapping() bool {
	return c.Listening && c.Action != cfg.ActionNone
}

// Remap replaces the binding of the action being remapped with key and
// leaves remap mode. It returns false when no remap is in progress.
func (c *ControlMapData) Remap(key ebiten.Key) bool {
	if !c.IsRemapping() {
		return false
	}
	c.ClearAction(c.Action)
	c.Bind(c.Action, key)
	c.StopRemapping()
	return true
}
