package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// MenuItem is one selectable line of a menu screen. Adjust is optional and
// handles left/right on value items.
type MenuItem struct {
	Label  func(e *ecs.ECS) string
	Select func(e *ecs.ECS)
	Adjust func(e *ecs.ECS, dir int)
}

// MenuScreen describes a vertical list menu. Back runs on the back key and
// may be nil.
type MenuScreen struct {
	Title func(e *ecs.ECS) string
	Items []MenuItem
	Back  func(e *ecs.ECS)
	Hint  string
}

func staticLabel(s string) func(*ecs.ECS) string {
	return func(*ecs.ECS) string { return s }
}

func goTo(s cfg.GameStateID) func(*ecs.ECS) {
	return func(e *ecs.ECS) { RequestTransition(e, s) }
}

const navigateHint = "Up/Down: Navigate   Enter: Select"

var (
	MainMenu = &MenuScreen{
		Title: staticLabel("PONG"),
		Items: []MenuItem{
			{Label: staticLabel("Start Game"), Select: goTo(cfg.StateStartGame)},
			{Label: staticLabel("Controls"), Select: goTo(cfg.StateControls)},
			{Label: staticLabel("Quit Game"), Select: func(e *ecs.ECS) {
				GetOrCreateGameState(e).QuitRequested = true
			}},
		},
		Hint: navigateHint,
	}

	ControlsMenu = newControlsMenu()

	StartGameMenu = &MenuScreen{
		Title: staticLabel("NEW GAME"),
		Items: []MenuItem{
			playerSlotItem(1),
			playerSlotItem(2),
			{Label: staticLabel("Start Game"), Select: goTo(cfg.StatePlaying)},
			{Label: staticLabel("Back"), Select: goTo(cfg.StateMain)},
		},
		Back: goTo(cfg.StateMain),
		Hint: "Left/Right: Change player   Enter: Select",
	}

	PausedMenu = &MenuScreen{
		Title: staticLabel("PAUSED"),
		Items: []MenuItem{
			{Label: staticLabel("Resume"), Select: func(e *ecs.ECS) { RequestPause(e, cfg.Unpaused) }},
			{Label: staticLabel("Main Menu"), Select: goTo(cfg.StateMain)},
		},
		Back: func(e *ecs.ECS) { RequestPause(e, cfg.Unpaused) },
		Hint: navigateHint,
	}

	EndGameMenu = &MenuScreen{
		Title: func(e *ecs.ECS) string {
			return fmt.Sprintf("Player %d wins!", GetOrCreateScore(e).Winner())
		},
		Items: []MenuItem{
			{Label: staticLabel("Restart"), Select: goTo(cfg.StatePlaying)},
			{Label: staticLabel("Quit"), Select: goTo(cfg.StateMain)},
		},
		Back: goTo(cfg.StateMain),
		Hint: navigateHint,
	}
)

func newControlsMenu() *MenuScreen {
	m := &MenuScreen{
		Title: staticLabel("CONTROLS"),
		Back:  goTo(cfg.StateMain),
		Hint:  "Enter: Rebind   Backspace: Back",
	}
	for _, action := range cfg.RemappableActions {
		m.Items = append(m.Items, bindingItem(action))
	}
	m.Items = append(m.Items, MenuItem{Label: staticLabel("Back"), Select: goTo(cfg.StateMain)})
	return m
}

func bindingItem(action cfg.ActionID) MenuItem {
	return MenuItem{
		Label: func(e *ecs.ECS) string {
			controls := GetOrCreateControlMap(e)
			if controls.IsRemapping() && controls.Action == action {
				return fmt.Sprintf("%s: press a key", action)
			}
			key, ok := controls.Key(action)
			if !ok {
				return fmt.Sprintf("%s: unbound", action)
			}
			return fmt.Sprintf("%s: %s", action, key)
		},
		Select: func(e *ecs.ECS) {
			GetOrCreateControlMap(e).StartRemapping(action)
		},
	}
}

func playerSlotItem(slot int) MenuItem {
	cycle := func(e *ecs.ECS, dir int) {
		settings := GetOrCreateSettings(e)
		current := settings.Player(slot)
		idx := 0
		for i, t := range components.PlayerTypeOptions {
			if t == current {
				idx = i
				break
			}
		}
		n := len(components.PlayerTypeOptions)
		settings.SetPlayer(slot, components.PlayerTypeOptions[(idx+dir+n)%n])
	}

	return MenuItem{
		Label: func(e *ecs.ECS) string {
			return fmt.Sprintf("Player %d: < %s >", slot, GetOrCreateSettings(e).Player(slot))
		},
		Select: func(e *ecs.ECS) { cycle(e, 1) },
		Adjust: cycle,
	}
}

// menuFor returns the screen shown in the current state, if any.
func menuFor(state *components.GameStateData) (*MenuScreen, bool) {
	switch state.Current {
	case cfg.StateMain:
		return MainMenu, true
	case cfg.StateControls:
		return ControlsMenu, true
	case cfg.StateStartGame:
		return StartGameMenu, true
	case cfg.StateEndGame:
		return EndGameMenu, true
	case cfg.StatePlaying:
		if state.IsPaused() {
			return PausedMenu, true
		}
	}
	return nil, false
}

// syncMenuCursor resets the cursor when a different screen comes up.
func syncMenuCursor(e *ecs.ECS) *components.MenuData {
	state := GetOrCreateGameState(e)
	menu := getOrCreateMenu(e)
	if menu.Screen != state.Current || menu.Paused != state.IsPaused() {
		menu.Screen = state.Current
		menu.Paused = state.IsPaused()
		menu.SelectedIndex = 0
	}
	return menu
}

// NewUpdateMenu creates the system that navigates a menu screen and runs
// the selected item.
func NewUpdateMenu(screen *MenuScreen) ecs.System {
	return func(e *ecs.ECS) {
		menu := syncMenuCursor(e)

		// Keys belong to the remap listener until it binds one
		if GetOrCreateControlMap(e).IsRemapping() {
			return
		}

		numItems := len(screen.Items)
		if numItems == 0 {
			return
		}
		menu.SelectedIndex = (menu.SelectedIndex%numItems + numItems) % numItems

		if GetAction(e, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numItems) % numItems
		}
		if GetAction(e, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numItems
		}

		item := screen.Items[menu.SelectedIndex]
		if item.Adjust != nil {
			if GetAction(e, cfg.ActionMenuLeft).JustPressed {
				item.Adjust(e, -1)
			}
			if GetAction(e, cfg.ActionMenuRight).JustPressed {
				item.Adjust(e, 1)
			}
		}

		if GetAction(e, cfg.ActionMenuSelect).JustPressed && item.Select != nil {
			item.Select(e)
			return
		}

		if GetAction(e, cfg.ActionMenuBack).JustPressed && screen.Back != nil {
			screen.Back(e)
		}
	}
}

// DrawMenu renders the full-screen menus shown outside of a match.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	state := GetOrCreateGameState(e)
	if state.Current == cfg.StatePlaying {
		return
	}
	m, ok := menuFor(state)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawMenuScreen(e, screen, m, cfg.Menu.TitleY, cfg.Menu.MenuStartY,
		cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap,
		cfg.Menu.TitleColor, cfg.Menu.TextColorNormal, cfg.Menu.TextColorSelected)

	hintFont := fonts.Small.Get()
	text.Draw(screen, m.Hint, hintFont, centerTextX(m.Hint, hintFont, width), int(height)-12, cfg.Menu.TextColorNormal) //nolint:staticcheck // TODO: migrate to text/v2
}

func drawMenuScreen(e *ecs.ECS, screen *ebiten.Image, m *MenuScreen, titleY, startY, step float64, titleColor, normal, selected color.RGBA) {
	width := float64(screen.Bounds().Dx())
	menu := getOrCreateMenu(e)

	titleFont := fonts.Title.Get()
	title := m.Title(e)
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(titleY), titleColor) //nolint:staticcheck // TODO: migrate to text/v2

	itemFont := fonts.Bold.Get()
	for i, item := range m.Items {
		y := startY + float64(i)*step
		textColor := normal
		if i == menu.SelectedIndex {
			textColor = selected
		}
		label := item.Label(e)
		text.Draw(screen, label, itemFont, centerTextX(label, itemFont, width), int(y+cfg.Menu.MenuItemHeight), textColor) //nolint:staticcheck // TODO: migrate to text/v2
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
