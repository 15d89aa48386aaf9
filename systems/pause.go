package systems

import (
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause when the menu action is pressed during a match.
func UpdatePause(e *ecs.ECS) {
	if !GetAction(e, cfg.ActionMenu).JustPressed {
		return
	}

	if GetOrCreateGameState(e).IsPaused() {
		RequestPause(e, cfg.Unpaused)
	} else {
		RequestPause(e, cfg.Paused)
	}
}

// DrawPause renders the pause overlay on top of the frozen match.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	state := GetOrCreateGameState(e)
	if !state.IsPaused() {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	numItems := float64(len(PausedMenu.Items))
	step := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	startY := height/2 - numItems*step/2

	drawMenuScreen(e, screen, PausedMenu, startY-40, startY, step,
		cfg.Menu.TitleColor, cfg.Pause.TextColorNormal, cfg.Pause.TextColorSelected)
}
