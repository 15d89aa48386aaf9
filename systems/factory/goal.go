package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGoalSensor spawns a non-colliding trigger region belonging to side.
func CreateGoalSensor(ecs *ecs.ECS, session *donburi.Entry, side cfg.Side, x, y, w, h float64) *donburi.Entry {
	sensor := archetypes.GoalSensor.Spawn(ecs)
	components.GoalSensor.SetValue(sensor, components.GoalSensorData{Side: side})
	newBody(session, sensor,
		components.TransformData{X: x, Y: y},
		components.SizeData{W: w, H: h},
		tags.ResolvSensor,
	)
	return sensor
}
