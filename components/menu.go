package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// MenuData stores the cursor of the menu currently on screen. Screen and
// Paused identify that menu so the cursor resets when it changes.
type MenuData struct {
	Screen        cfg.GameStateID
	Paused        bool
	SelectedIndex int
}

var Menu = donburi.NewComponentType[MenuData]()
