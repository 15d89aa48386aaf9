package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InitialBallVelocity is the serve velocity used at session start and after
// every point.
func InitialBallVelocity() components.VelocityData {
	return components.VelocityData{
		X: cfg.Ball.InitialVelocityX,
		Y: cfg.Ball.InitialVelocityY,
	}
}

// CreateBall spawns the ball at the arena centre with the serve velocity.
func CreateBall(ecs *ecs.ECS, session *donburi.Entry) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)
	components.Ball.SetValue(ball, components.BallData{Radius: cfg.Ball.Radius})
	components.Velocity.SetValue(ball, InitialBallVelocity())
	diameter := cfg.Ball.Radius * 2
	newBody(session, ball,
		components.TransformData{X: 0, Y: 0},
		components.SizeData{W: diameter, H: diameter},
		tags.ResolvBall,
	)
	return ball
}
