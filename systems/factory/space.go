package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the root entity of a match together with its
// collision space sized to the viewport.
func CreateSession(ecs *ecs.ECS, width, height int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Width:  float64(width),
		Height: float64(height),
	})
	components.Space.Set(session, resolv.NewSpace(width, height, cfg.Arena.CellSize, cfg.Arena.CellSize))
	return session
}

// SyncObject moves a collision box to match a world-space centre position.
// Collision space coordinates start at the top-left of the viewport with
// Y growing downwards.
func SyncObject(obj *resolv.Object, t components.TransformData, size components.SizeData, session *components.SessionData) {
	obj.X = t.X + session.Width/2 - size.W/2
	obj.Y = session.Height/2 - t.Y - size.H/2
	obj.Update()
}

// newBody creates the collision box for an entity, registers it in the
// session space and adopts the entity into the session.
func newBody(session *donburi.Entry, e *donburi.Entry, t components.TransformData, size components.SizeData, resolvTags ...string) {
	sessionData := components.Session.Get(session)

	obj := resolv.NewObject(0, 0, size.W, size.H, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, size.W, size.H))
	obj.Data = e // Link for O(1) lookup

	components.Transform.SetValue(e, t)
	components.Size.SetValue(e, size)
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	components.Space.Get(session).Add(obj)
	SyncObject(obj, t, size, sessionData)

	sessionData.Adopt(e.Entity())
}
