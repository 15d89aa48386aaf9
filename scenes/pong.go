package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PongScene struct {
	ecs      *ecs.ECS
	viewport systems.Viewport
	keys     systems.KeySource
	once     sync.Once
}

// NewPongScene creates the game scene. keys may be nil to read the real
// keyboard.
func NewPongScene(vp systems.Viewport, keys systems.KeySource) *PongScene {
	return &PongScene{viewport: vp, keys: keys}
}

// Update advances the game by one tick. It returns ebiten.Termination once
// the player quits from the main menu.
func (ps *PongScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.QuitRequested(ps.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ps *PongScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// ECS exposes the scene's world, configuring it on first use.
func (ps *PongScene) ECS() *ecs.ECS {
	ps.once.Do(ps.configure)
	return ps.ecs
}

func (ps *PongScene) configure() {
	ps.ecs = NewPongECS(ps.viewport, ps.keys)

	if cfg.Debug.SkipMenu {
		systems.RequestTransition(ps.ecs, cfg.StatePlaying)
	}
}

// NewPongECS wires every system in tick order. State changes requested
// during a tick take effect in the last system.
func NewPongECS(vp systems.Viewport, keys systems.KeySource) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	systems.GetOrCreateGameState(e)

	// Systems that always run
	e.AddSystem(systems.NewUpdateInput(keys))
	e.AddSystem(systems.InState(cfg.StateControls, systems.ListenForKeys))

	// Menus, each only on its own screen
	e.AddSystem(systems.InState(cfg.StateMain, systems.NewUpdateMenu(systems.MainMenu)))
	e.AddSystem(systems.InState(cfg.StateControls, systems.NewUpdateMenu(systems.ControlsMenu)))
	e.AddSystem(systems.InState(cfg.StateStartGame, systems.NewUpdateMenu(systems.StartGameMenu)))
	e.AddSystem(systems.InState(cfg.StateEndGame, systems.NewUpdateMenu(systems.EndGameMenu)))

	// Match systems that run even when paused
	e.AddSystem(systems.WhilePlaying(systems.UpdatePause))
	e.AddSystem(systems.WhenPaused(systems.NewUpdateMenu(systems.PausedMenu)))
	e.AddSystem(systems.WhilePlaying(systems.NewEnsureSession(vp)))

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePaddles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.SpeedUpBall))
	e.AddSystem(systems.WithGameplayChecks(systems.BallPaddleCollision))
	e.AddSystem(systems.WithGameplayChecks(systems.DetectPoint))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEvents))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateScoreFlash))

	e.AddSystem(systems.NewApplyTransitions(vp))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawMenu)

	return e
}
