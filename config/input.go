package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPlayer1Up
	ActionPlayer1Down
	ActionPlayer2Up
	ActionPlayer2Down
	ActionMenu
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// RemappableActions lists the actions shown on the controls screen, in display order.
var RemappableActions = []ActionID{
	ActionPlayer1Up,
	ActionPlayer1Down,
	ActionPlayer2Up,
	ActionPlayer2Down,
	ActionMenu,
}

func (a ActionID) String() string {
	switch a {
	case ActionPlayer1Up:
		return "Player1Up"
	case ActionPlayer1Down:
		return "Player1Down"
	case ActionPlayer2Up:
		return "Player2Up"
	case ActionPlayer2Down:
		return "Player2Down"
	case ActionMenu:
		return "Menu"
	case ActionMenuUp:
		return "MenuUp"
	case ActionMenuDown:
		return "MenuDown"
	case ActionMenuLeft:
		return "MenuLeft"
	case ActionMenuRight:
		return "MenuRight"
	case ActionMenuSelect:
		return "MenuSelect"
	case ActionMenuBack:
		return "MenuBack"
	}
	return "None"
}

// InputConfig holds the default key for each remappable action and the
// fixed keys used for menu navigation.
type InputConfig struct {
	DefaultBindings map[ActionID]ebiten.Key
	MenuBindings    map[ActionID][]ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		DefaultBindings: map[ActionID]ebiten.Key{
			ActionPlayer1Up:   ebiten.KeyArrowUp,
			ActionPlayer1Down: ebiten.KeyArrowDown,
			ActionPlayer2Up:   ebiten.KeyW,
			ActionPlayer2Down: ebiten.KeyS,
			ActionMenu:        ebiten.KeyEscape,
		},
		MenuBindings: map[ActionID][]ebiten.Key{
			ActionMenuUp:     {ebiten.KeyArrowUp, ebiten.KeyW},
			ActionMenuDown:   {ebiten.KeyArrowDown, ebiten.KeyS},
			ActionMenuLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
			ActionMenuRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
			ActionMenuSelect: {ebiten.KeyEnter, ebiten.KeySpace},
			ActionMenuBack:   {ebiten.KeyBackspace},
		},
	}
}
