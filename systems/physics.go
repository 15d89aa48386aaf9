package systems

import (
	"math"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances paddles and the ball by one fixed step, records the
// contacts that started or stopped, and keeps the ball out of solid bodies.
func UpdatePhysics(e *ecs.ECS) {
	sessionEntry, ok := GetSession(e)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	contacts := getOrCreateContacts(e)
	contacts.Events = contacts.Events[:0]
	dt := cfg.FixedDelta()

	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		movePaddle(entry, session, dt)
	})

	ball, ok := tags.Ball.First(e.World)
	if !ok {
		endStaleContacts(contacts, nil)
		return
	}

	pos := components.Transform.Get(ball)
	vel := components.Velocity.Get(ball)
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
	syncBody(ball, session)

	touching := detectContacts(ball, contacts)
	for _, other := range touching {
		separate(ball, other)
	}
	syncBody(ball, session)
}

// movePaddle applies the paddle velocity and stops it flush against walls.
func movePaddle(entry *donburi.Entry, session *components.SessionData, dt float64) {
	vel := components.Velocity.Get(entry)
	if vel.Y == 0 {
		return
	}
	pos := components.Transform.Get(entry)
	size := components.Size.Get(entry)
	obj := components.Object.Get(entry)

	newY := pos.Y + vel.Y*dt
	// Collision space Y runs downwards
	if check := obj.Check(0, pos.Y-newY, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			wall, ok := solid.Data.(*donburi.Entry)
			if !ok || !wall.Valid() {
				continue
			}
			wallPos := components.Transform.Get(wall)
			wallSize := components.Size.Get(wall)
			if wallPos.Y > pos.Y {
				newY = math.Min(newY, wallPos.Y-wallSize.H/2-size.H/2)
			} else {
				newY = math.Max(newY, wallPos.Y+wallSize.H/2+size.H/2)
			}
		}
	}

	pos.Y = newY
	factory.SyncObject(obj.Object, *pos, *size, session)
}

func syncBody(entry *donburi.Entry, session *components.SessionData) {
	factory.SyncObject(
		components.Object.Get(entry).Object,
		*components.Transform.Get(entry),
		*components.Size.Get(entry),
		session,
	)
}
