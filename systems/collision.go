package systems

import (
	"math"

	"github.com/automoto/pong/components"
	"github.com/automoto/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// detectContacts compares the bodies overlapping the ball with the pairs
// touching last tick and records started and stopped events.
func detectContacts(ball *donburi.Entry, contacts *components.ContactsData) []*donburi.Entry {
	obj := components.Object.Get(ball).Object
	current := make(map[components.ContactPair]struct{})
	var touching []*donburi.Entry

	if check := obj.Check(0, 0); check != nil {
		for _, other := range check.Objects {
			entry, ok := other.Data.(*donburi.Entry)
			if !ok || !entry.Valid() || !overlaps(obj, other) {
				continue
			}
			pair := components.ContactPair{A: ball.Entity(), B: entry.Entity()}
			if _, seen := current[pair]; seen {
				continue
			}
			current[pair] = struct{}{}
			touching = append(touching, entry)

			if contacts.Begin(pair) {
				contacts.Events = append(contacts.Events, components.ContactEvent{
					ContactPair: pair,
					Started:     true,
					Sensor:      other.HasTags(tags.ResolvSensor),
				})
			}
		}
	}

	endStaleContacts(contacts, current)
	return touching
}

// endStaleContacts stops every active pair missing from current. Pairs of a
// ball that was respawned end here too.
func endStaleContacts(contacts *components.ContactsData, current map[components.ContactPair]struct{}) {
	for pair := range contacts.Active {
		if _, ok := current[pair]; ok {
			continue
		}
		contacts.End(pair)
		contacts.Events = append(contacts.Events, components.ContactEvent{ContactPair: pair})
	}
}

// separate pushes the ball out of a wall or paddle. Walls also turn the
// vertical velocity back into the arena.
func separate(ball, other *donburi.Entry) {
	pos := components.Transform.Get(ball)
	vel := components.Velocity.Get(ball)
	r := components.Size.Get(ball).H / 2
	otherPos := components.Transform.Get(other)
	otherSize := components.Size.Get(other)

	switch {
	case other.HasComponent(tags.Wall):
		if otherPos.Y > pos.Y {
			pos.Y = otherPos.Y - otherSize.H/2 - r
			vel.Y = -math.Abs(vel.Y)
		} else {
			pos.Y = otherPos.Y + otherSize.H/2 + r
			vel.Y = math.Abs(vel.Y)
		}
	case other.HasComponent(tags.Paddle):
		if otherPos.X > pos.X {
			pos.X = otherPos.X - otherSize.W/2 - r
		} else {
			pos.X = otherPos.X + otherSize.W/2 + r
		}
	}
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
