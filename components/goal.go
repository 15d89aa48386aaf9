package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// GoalSensorData marks a trigger region behind a paddle. Side is the side
// the sensor belongs to, not the side that scores on it.
type GoalSensorData struct {
	Side cfg.Side
}

var GoalSensor = donburi.NewComponentType[GoalSensorData]()
