package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePaddle spawns a paddle for a player defending the goal on side.
func CreatePaddle(ecs *ecs.ECS, session *donburi.Entry, x, y float64, player components.PlayerType, side cfg.Side) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)
	components.Paddle.SetValue(paddle, components.PaddleData{
		Player: player,
		Side:   side,
	})
	newBody(session, paddle,
		components.TransformData{X: x, Y: y},
		components.SizeData{W: cfg.Paddle.Width, H: cfg.Paddle.Height},
		tags.ResolvPaddle,
	)
	return paddle
}
