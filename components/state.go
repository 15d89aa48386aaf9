package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// GameStateData is the singleton state machine. Requests are recorded in
// the Next fields and only take effect when transitions are applied at the
// end of a tick.
type GameStateData struct {
	Current    cfg.GameStateID
	Paused     cfg.PausedStateID
	Next       *cfg.GameStateID
	NextPaused *cfg.PausedStateID

	SessionPending bool // Playing was entered but the arena is not built yet
	QuitRequested  bool
}

var GameState = donburi.NewComponentType[GameStateData]()

// IsPlaying reports whether gameplay systems may run.
func (s *GameStateData) IsPlaying() bool {
	return s.Current == cfg.StatePlaying && s.Paused == cfg.Unpaused
}

// IsPaused reports whether the paused overlay is active.
func (s *GameStateData) IsPaused() bool {
	return s.Current == cfg.StatePlaying && s.Paused == cfg.Paused
}
