package systems

import (
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

type fixedViewport struct {
	w, h int
}

func (v *fixedViewport) Size() (int, int) {
	return v.w, v.h
}

func defaultViewport() *fixedViewport {
	return &fixedViewport{w: 1280, h: 720}
}

// heldKeys is a KeySource driven by the test.
type heldKeys struct {
	held map[ebiten.Key]bool
}

func newHeldKeys() *heldKeys {
	return &heldKeys{held: map[ebiten.Key]bool{}}
}

func (k *heldKeys) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	for key := ebiten.Key(0); key <= ebiten.KeyMax; key++ {
		if k.held[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

func (k *heldKeys) press(keys ...ebiten.Key) {
	for _, key := range keys {
		k.held[key] = true
	}
}

func (k *heldKeys) releaseAll() {
	k.held = map[ebiten.Key]bool{}
}

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateGameState(e)
	return e
}

// startMatch moves straight into Playing with a ready viewport.
func startMatch(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	RequestTransition(e, cfg.StatePlaying)
	ApplyTransitions(e, defaultViewport())
	session, ok := GetSession(e)
	require.True(t, ok, "session should exist after entering Playing")
	return session
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(c)).Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func mustFirst(t *testing.T, e *ecs.ECS, c interface {
	First(donburi.World) (*donburi.Entry, bool)
}) *donburi.Entry {
	t.Helper()
	entry, ok := c.First(e.World)
	require.True(t, ok)
	return entry
}

func paddleOn(t *testing.T, e *ecs.ECS, side cfg.Side) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.Paddle.Each(e.World, func(entry *donburi.Entry) {
		if components.Paddle.Get(entry).Side == side {
			found = entry
		}
	})
	require.NotNil(t, found, "no paddle on %s", side)
	return found
}

func sensorOn(t *testing.T, e *ecs.ECS, side cfg.Side) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.GoalSensor.Each(e.World, func(entry *donburi.Entry) {
		if components.GoalSensor.Get(entry).Side == side {
			found = entry
		}
	})
	require.NotNil(t, found, "no goal sensor on %s", side)
	return found
}

// placeBall moves the ball and keeps its collision box in step.
func placeBall(e *ecs.ECS, ball *donburi.Entry, x, y float64, vel components.VelocityData) {
	sessionEntry, _ := GetSession(e)
	pos := components.Transform.Get(ball)
	pos.X, pos.Y = x, y
	*components.Velocity.Get(ball) = vel
	syncBody(ball, components.Session.Get(sessionEntry))
}

// stepPhysics runs one gameplay tick without paddle input.
func stepPhysics(e *ecs.ECS) {
	UpdatePhysics(e)
	SpeedUpBall(e)
	BallPaddleCollision(e)
	DetectPoint(e)
	UpdateEvents(e)
	UpdateScoreFlash(e)
}
