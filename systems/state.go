package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GetOrCreateGameState returns the singleton state machine, creating it in
// the Main state if needed.
func GetOrCreateGameState(e *ecs.ECS) *components.GameStateData {
	if _, ok := components.GameState.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameState))
		components.GameState.SetValue(ent, components.GameStateData{
			Current: cfg.StateMain,
			Paused:  cfg.Unpaused,
		})
	}

	ent, _ := components.GameState.First(e.World)
	return components.GameState.Get(ent)
}

// RequestTransition asks for a new game state. The request is applied by
// ApplyTransitions at the end of the tick; the last request wins.
func RequestTransition(e *ecs.ECS, next cfg.GameStateID) {
	state := GetOrCreateGameState(e)
	state.Next = &next
}

// RequestPause asks for a new paused state, applied with the other transitions.
func RequestPause(e *ecs.ECS, next cfg.PausedStateID) {
	state := GetOrCreateGameState(e)
	state.NextPaused = &next
}

// NewApplyTransitions creates the end-of-tick system that applies pending
// state requests and runs the enter/exit hooks.
func NewApplyTransitions(vp Viewport) ecs.System {
	return func(e *ecs.ECS) {
		ApplyTransitions(e, vp)
	}
}

// ApplyTransitions applies pending requests. A request for the current
// state does nothing.
func ApplyTransitions(e *ecs.ECS, vp Viewport) {
	state := GetOrCreateGameState(e)

	if state.Next != nil {
		next := *state.Next
		state.Next = nil

		if next != state.Current {
			prev := state.Current
			exitState(e, state, prev)
			state.Current = next
			zap.L().Info("game state changed",
				zap.Stringer("from", prev),
				zap.Stringer("to", next),
			)
			enterState(e, state, next, vp)
		}
	}

	if state.NextPaused != nil {
		next := *state.NextPaused
		state.NextPaused = nil

		// Pause requests outlive a state change only while still Playing
		if state.Current == cfg.StatePlaying && next != state.Paused {
			state.Paused = next
			zap.L().Info("pause state changed", zap.Stringer("paused", next))
		}
	}
}

func exitState(e *ecs.ECS, state *components.GameStateData, prev cfg.GameStateID) {
	switch prev {
	case cfg.StatePlaying:
		TeardownSession(e)
		state.SessionPending = false
		state.Paused = cfg.Unpaused
	case cfg.StateControls:
		GetOrCreateControlMap(e).StopRemapping()
	}
}

func enterState(e *ecs.ECS, state *components.GameStateData, next cfg.GameStateID, vp Viewport) {
	switch next {
	case cfg.StatePlaying:
		state.Paused = cfg.Unpaused
		state.NextPaused = nil
		state.SessionPending = !SetupSession(e, vp)
	case cfg.StateControls:
		GetOrCreateControlMap(e).StopRemapping()
	case cfg.StateStartGame:
		GetOrCreateSettings(e)
	}
}

// InState wraps a system to run only while the game is in the given state.
func InState(s cfg.GameStateID, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateGameState(e).Current != s {
			return
		}
		system(e)
	}
}

// WhilePlaying wraps a system to run during a match whether or not it is paused.
func WhilePlaying(system ecs.System) ecs.System {
	return InState(cfg.StatePlaying, system)
}

// WithGameplayChecks wraps a system to run only during an unpaused match.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreateGameState(e).IsPlaying() {
			return
		}
		system(e)
	}
}

// WhenPaused wraps a system to run only while a match is paused. It is the
// exact complement of WithGameplayChecks within StatePlaying.
func WhenPaused(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !GetOrCreateGameState(e).IsPaused() {
			return
		}
		system(e)
	}
}

// QuitRequested reports whether the player chose to leave the game.
func QuitRequested(e *ecs.ECS) bool {
	return GetOrCreateGameState(e).QuitRequested
}
