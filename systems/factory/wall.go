package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns a solid box centred on (x, y).
func CreateWall(ecs *ecs.ECS, session *donburi.Entry, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	newBody(session, wall,
		components.TransformData{X: x, Y: y},
		components.SizeData{W: w, H: h},
		tags.ResolvSolid,
	)
	return wall
}
