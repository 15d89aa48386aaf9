package systems

import (
	"math"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SpeedUpBall multiplies the vertical speed of the ball on every solid
// contact, capped at the maximum ball speed.
func SpeedUpBall(e *ecs.ECS) {
	for _, ev := range getOrCreateContacts(e).Started() {
		if ev.Sensor {
			continue
		}
		ball, ok := entryWith(e, tags.Ball, ev.A, ev.B)
		if !ok {
			continue
		}
		vel := components.Velocity.Get(ball)
		*vel = SpeedUp(*vel)
	}
}

// SpeedUp applies one speed increase to v.
func SpeedUp(v components.VelocityData) components.VelocityData {
	v.Y *= cfg.Ball.SpeedIncrease
	return v.ClampSpeed(cfg.Ball.MaxSpeed)
}

// BallPaddleCollision sends the ball back off a paddle at an angle set by
// where it hit, keeping its speed.
func BallPaddleCollision(e *ecs.ECS) {
	for _, ev := range getOrCreateContacts(e).Started() {
		if ev.Sensor {
			continue
		}
		// Either body order is accepted, not only the ball-first pairs of
		// the contact stage.
		paddle, ok := entryWith(e, tags.Paddle, ev.A, ev.B)
		if !ok {
			continue
		}
		ball, ok := entryWith(e, tags.Ball, ev.A, ev.B)
		if !ok {
			continue
		}

		vel := components.Velocity.Get(ball)
		*vel = ReflectOffPaddle(
			*vel,
			components.Transform.Get(ball).Y,
			components.Transform.Get(paddle).Y,
			components.Size.Get(paddle).H,
		)
	}
}

// ReflectOffPaddle inverts the horizontal velocity and steers the ball up to
// 90 degrees away from horizontal depending on the hit offset from the
// paddle centre. The speed is unchanged.
func ReflectOffPaddle(v components.VelocityData, ballY, paddleY, paddleHeight float64) components.VelocityData {
	speed := v.Speed()
	hit := (ballY - paddleY) / (paddleHeight / 2)
	hit = math.Max(-1, math.Min(1, hit))
	angle := hit * math.Pi / 2

	out := components.VelocityData{X: -v.X, Y: angle * speed}
	n := out.Speed()
	if n == 0 {
		return v
	}
	return components.VelocityData{X: out.X / n * speed, Y: out.Y / n * speed}
}

// ResetBall replaces the ball with a fresh one at the centre moving at the
// serve velocity.
func ResetBall(e *ecs.ECS) {
	session, ok := GetSession(e)
	if !ok {
		return
	}

	var balls []*donburi.Entry
	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		balls = append(balls, entry)
	})
	for _, ball := range balls {
		removeSessionEntity(e, session, ball)
	}

	factory.CreateBall(e, session)
	zap.L().Debug("ball reset", zap.Int("removed", len(balls)))
}

// entryWith returns whichever of a and b has the component, checking a first.
func entryWith(e *ecs.ECS, c donburi.IComponentType, a, b donburi.Entity) (*donburi.Entry, bool) {
	for _, ent := range []donburi.Entity{a, b} {
		if !e.World.Valid(ent) {
			continue
		}
		entry := e.World.Entry(ent)
		if entry.HasComponent(c) {
			return entry, true
		}
	}
	return nil, false
}
