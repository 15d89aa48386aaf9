package systems

import (
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTransitionIsDeferredToEndOfTick(t *testing.T) {
	e := newTestECS()

	RequestTransition(e, cfg.StateControls)
	assert.Equal(t, cfg.StateMain, GetOrCreateGameState(e).Current)

	ApplyTransitions(e, defaultViewport())
	assert.Equal(t, cfg.StateControls, GetOrCreateGameState(e).Current)
	assert.Nil(t, GetOrCreateGameState(e).Next)
}

func TestLastTransitionRequestWins(t *testing.T) {
	e := newTestECS()

	RequestTransition(e, cfg.StateControls)
	RequestTransition(e, cfg.StateStartGame)
	ApplyTransitions(e, defaultViewport())

	assert.Equal(t, cfg.StateStartGame, GetOrCreateGameState(e).Current)
}

func TestRequestingCurrentStateKeepsSession(t *testing.T) {
	e := newTestECS()
	session := startMatch(t, e)

	RequestTransition(e, cfg.StatePlaying)
	ApplyTransitions(e, defaultViewport())

	again, ok := GetSession(e)
	require.True(t, ok)
	assert.Equal(t, session.Entity(), again.Entity())
	assert.Equal(t, 1, count(e, tags.Pong))
}

func TestEnteringPlayingStartsUnpaused(t *testing.T) {
	e := newTestECS()
	startMatch(t, e)

	RequestPause(e, cfg.Paused)
	ApplyTransitions(e, defaultViewport())
	require.True(t, GetOrCreateGameState(e).IsPaused())

	RequestTransition(e, cfg.StateMain)
	ApplyTransitions(e, defaultViewport())
	assert.Equal(t, cfg.Unpaused, GetOrCreateGameState(e).Paused)

	startMatch(t, e)
	assert.True(t, GetOrCreateGameState(e).IsPlaying())
}

func TestPauseRequestIgnoredOutsidePlaying(t *testing.T) {
	e := newTestECS()

	RequestPause(e, cfg.Paused)
	ApplyTransitions(e, defaultViewport())

	assert.Equal(t, cfg.Unpaused, GetOrCreateGameState(e).Paused)
	assert.False(t, GetOrCreateGameState(e).IsPaused())
}

func TestLeavingPlayingTearsDownSession(t *testing.T) {
	e := newTestECS()
	startMatch(t, e)

	RequestTransition(e, cfg.StateMain)
	ApplyTransitions(e, defaultViewport())

	assert.Equal(t, 0, count(e, tags.Pong))
	assert.Equal(t, 0, count(e, tags.Paddle))
	assert.Equal(t, 0, count(e, tags.Ball))
	assert.Equal(t, 0, count(e, tags.Wall))
	assert.Equal(t, 0, count(e, tags.GoalSensor))
}

func TestGatesAreMutuallyExclusive(t *testing.T) {
	tests := []struct {
		name         string
		state        cfg.GameStateID
		paused       cfg.PausedStateID
		wantGameplay bool
		wantPaused   bool
	}{
		{"playing", cfg.StatePlaying, cfg.Unpaused, true, false},
		{"paused", cfg.StatePlaying, cfg.Paused, false, true},
		{"main menu", cfg.StateMain, cfg.Unpaused, false, false},
		{"end game", cfg.StateEndGame, cfg.Unpaused, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			state := GetOrCreateGameState(e)
			state.Current = tt.state
			state.Paused = tt.paused

			gameplay, paused := false, false
			WithGameplayChecks(func(*ecs.ECS) { gameplay = true })(e)
			WhenPaused(func(*ecs.ECS) { paused = true })(e)

			assert.Equal(t, tt.wantGameplay, gameplay)
			assert.Equal(t, tt.wantPaused, paused)
			if tt.state == cfg.StatePlaying {
				assert.NotEqual(t, gameplay, paused)
			}
		})
	}
}

func TestTransitionsAreLogged(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	e := newTestECS()
	RequestTransition(e, cfg.StateControls)
	ApplyTransitions(e, defaultViewport())

	logs := recorded.FilterMessage("game state changed").All()
	require.Len(t, logs, 1)
	assert.Equal(t, "Main", logs[0].ContextMap()["from"])
	assert.Equal(t, "Controls", logs[0].ContextMap()["to"])
}
