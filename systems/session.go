package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Viewport reports the current window size. A zero size means the window
// is not ready yet.
type Viewport interface {
	Size() (width, height int)
}

// GetSession returns the root entity of the live match.
func GetSession(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Pong.First(e.World)
}

// NewEnsureSession retries arena setup every tick until the viewport is
// available.
func NewEnsureSession(vp Viewport) ecs.System {
	return func(e *ecs.ECS) {
		state := GetOrCreateGameState(e)
		if !state.SessionPending {
			return
		}
		if SetupSession(e, vp) {
			state.SessionPending = false
		}
	}
}

// SetupSession builds the arena for the current player settings and resets
// the score. It returns false without side effects when the viewport has
// no size yet.
func SetupSession(e *ecs.ECS, vp Viewport) bool {
	if _, ok := GetSession(e); ok {
		return true
	}

	width, height := 0, 0
	if vp != nil {
		width, height = vp.Size()
	}
	if width <= 0 || height <= 0 {
		zap.L().Debug("viewport not ready, deferring session setup")
		return false
	}

	GetOrCreateScore(e).Reset()
	resetScoreFlash(e)
	getOrCreateContacts(e).Clear()
	getOrCreateEvents(e).Queue = nil

	session := factory.CreateSession(e, width, height)
	w, h := float64(width), float64(height)

	createBoard(e, session, w, h)
	createPlayers(e, session, w, GetOrCreateSettings(e))
	factory.CreateBall(e, session)

	zap.L().Debug("session created",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("entities", len(components.Session.Get(session).Children)),
	)
	return true
}

// createBoard spawns the top and bottom walls and a goal sensor behind each
// paddle, mirrored about the vertical centre line.
func createBoard(e *ecs.ECS, session *donburi.Entry, width, height float64) {
	thickness := cfg.Arena.WallThickness
	top := cfg.Arena.TopBuffer

	for _, y := range []float64{
		height/2 - thickness - top,
		-height/2 + thickness,
	} {
		factory.CreateWall(e, session, 0, y, width, thickness)
	}

	sensorHeight := height - top - thickness
	for _, s := range []struct {
		x    float64
		side cfg.Side
	}{
		{-width/2 + thickness, cfg.SideLeft},
		{width/2 - thickness, cfg.SideRight},
	} {
		factory.CreateGoalSensor(e, session, s.side, s.x, -top/2, thickness*2, sensorHeight)
	}
}

// createPlayers spawns player 1 on the left and player 2 on the right.
func createPlayers(e *ecs.ECS, session *donburi.Entry, width float64, settings *components.SettingsData) {
	for _, p := range []struct {
		x      float64
		player components.PlayerType
		side   cfg.Side
	}{
		{-width/2 + cfg.Paddle.Buffer, settings.Player1, cfg.SideLeft},
		{width/2 - cfg.Paddle.Buffer, settings.Player2, cfg.SideRight},
	} {
		factory.CreatePaddle(e, session, p.x, -cfg.Arena.TopBuffer/2, p.player, p.side)
	}
}

// TeardownSession removes every entity owned by the match in one pass.
// Entities that were already removed are skipped.
func TeardownSession(e *ecs.ECS) {
	var roots []*donburi.Entry
	tags.Pong.Each(e.World, func(entry *donburi.Entry) {
		roots = append(roots, entry)
	})

	for _, root := range roots {
		session := components.Session.Get(root)
		space := components.Space.Get(root)
		removed := 0
		for _, child := range session.Children {
			if !e.World.Valid(child) {
				continue
			}
			entry := e.World.Entry(child)
			if entry.HasComponent(components.Object) {
				space.Remove(components.Object.Get(entry).Object)
			}
			e.World.Remove(child)
			removed++
		}
		session.Children = nil
		e.World.Remove(root.Entity())
		zap.L().Debug("session destroyed", zap.Int("entities", removed))
	}

	getOrCreateContacts(e).Clear()
	getOrCreateEvents(e).Queue = nil
}

// removeSessionEntity despawns a single child of the match.
func removeSessionEntity(e *ecs.ECS, session *donburi.Entry, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		components.Space.Get(session).Remove(components.Object.Get(entry).Object)
	}
	components.Session.Get(session).Release(entry.Entity())
	e.World.Remove(entry.Entity())
}
