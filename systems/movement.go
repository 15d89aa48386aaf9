package systems

import (
	"math"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaddles sets the vertical velocity of every paddle from keyboard
// input or, for computer players, from the ball position.
func UpdatePaddles(e *ecs.ECS) {
	ballY, hasBall := 0.0, false
	if ball, ok := tags.Ball.First(e.World); ok {
		ballY, hasBall = components.Transform.Get(ball).Y, true
	}

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		paddle := components.Paddle.Get(entry)
		vel := components.Velocity.Get(entry)
		vel.X = 0

		switch {
		case paddle.Player.IsHuman():
			vel.Y = inputDirection(e, paddle.Side) * cfg.Paddle.Speed
		case hasBall:
			pos := components.Transform.Get(entry)
			vel.Y = ComputerVelocity(pos.Y, ballY, paddle.Player.Difficulty)
		default:
			vel.Y = 0
		}
	})
}

// inputDirection returns +1 for up, -1 for down and 0 when both or neither
// are held.
func inputDirection(e *ecs.ECS, side cfg.Side) float64 {
	up, down := cfg.ActionPlayer1Up, cfg.ActionPlayer1Down
	if side == cfg.SideRight {
		up, down = cfg.ActionPlayer2Up, cfg.ActionPlayer2Down
	}

	dir := 0.0
	if GetAction(e, up).Pressed {
		dir++
	}
	if GetAction(e, down).Pressed {
		dir--
	}
	return dir
}

// ComputerVelocity moves a paddle to close the vertical gap to the ball
// within one tick, limited to the difficulty's speed.
func ComputerVelocity(paddleY, ballY float64, d components.Difficulty) float64 {
	limit := d.MaxSpeed()
	v := (ballY - paddleY) * float64(cfg.C.TPS)
	return math.Max(-limit, math.Min(limit, v))
}
