package systems

import (
	"github.com/automoto/pong/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the player slot configuration. It survives
// across matches for the lifetime of the process.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.DefaultSettings())
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// GetOrCreateScore returns the score counters.
func GetOrCreateScore(e *ecs.ECS) *components.ScoreData {
	if _, ok := components.Score.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Score))
	}

	ent, _ := components.Score.First(e.World)
	return components.Score.Get(ent)
}

func getOrCreateContacts(e *ecs.ECS) *components.ContactsData {
	if _, ok := components.Contacts.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Contacts))
	}

	ent, _ := components.Contacts.First(e.World)
	return components.Contacts.Get(ent)
}

func getOrCreateEvents(e *ecs.ECS) *components.EventsData {
	if _, ok := components.Events.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Events))
	}

	ent, _ := components.Events.First(e.World)
	return components.Events.Get(ent)
}

func getOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Menu))
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}

func getOrCreateScoreFlash(e *ecs.ECS) *components.ScoreFlashData {
	if _, ok := components.ScoreFlash.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.ScoreFlash))
		components.ScoreFlash.SetValue(ent, components.ScoreFlashData{Scale: 1})
	}

	ent, _ := components.ScoreFlash.First(e.World)
	return components.ScoreFlash.Get(ent)
}
