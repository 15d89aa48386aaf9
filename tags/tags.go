package tags

import "github.com/yohamta/donburi"

var (
	Pong       = donburi.NewTag().SetName("Pong")
	Paddle     = donburi.NewTag().SetName("Paddle")
	Ball       = donburi.NewTag().SetName("Ball")
	Wall       = donburi.NewTag().SetName("Wall")
	GoalSensor = donburi.NewTag().SetName("GoalSensor")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPaddle = "paddle"
	ResolvBall   = "ball"
	ResolvSensor = "sensor"
)
