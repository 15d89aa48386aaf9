package components

import "github.com/yohamta/donburi"

// ContactPair identifies two bodies touching. A is the moving body.
type ContactPair struct {
	A, B donburi.Entity
}

// ContactEvent reports a contact that started or stopped this tick.
// Sensor is set when either body is a trigger region.
type ContactEvent struct {
	ContactPair
	Started bool
	Sensor  bool
}

// ContactsData holds the pairs currently touching and the events raised
// during the current tick.
type ContactsData struct {
	Active map[ContactPair]struct{}
	Events []ContactEvent
}

var Contacts = donburi.NewComponentType[ContactsData]()

// Begin registers a pair and reports whether it was not already touching.
func (c *ContactsData) Begin(pair ContactPair) bool {
	if c.Active == nil {
		c.Active = make(map[ContactPair]struct{})
	}
	if _, ok := c.Active[pair]; ok {
		return false
	}
	c.Active[pair] = struct{}{}
	return true
}

// End forgets a pair.
func (c *ContactsData) End(pair ContactPair) {
	delete(c.Active, pair)
}

// Started returns the contacts that began this tick.
func (c *ContactsData) Started() []ContactEvent {
	var started []ContactEvent
	for _, ev := range c.Events {
		if ev.Started {
			started = append(started, ev)
		}
	}
	return started
}

// Clear drops all pairs and events.
func (c *ContactsData) Clear() {
	c.Active = nil
	c.Events = c.Events[:0]
}

// GameEventKind enumerates notifications passed through the event queue.
type GameEventKind int

const (
	EventPointScored GameEventKind = iota
	EventAfterPointScored
)

func (k GameEventKind) String() string {
	if k == EventAfterPointScored {
		return "AfterPointScored"
	}
	return "PointScored"
}

// GameEvent is a queued notification. Sensor is set for EventPointScored.
type GameEvent struct {
	Kind   GameEventKind
	Sensor donburi.Entity
}

// EventsData is a FIFO queue drained once per tick.
type EventsData struct {
	Queue []GameEvent
}

var Events = donburi.NewComponentType[EventsData]()

// Push appends an event to the queue.
func (e *EventsData) Push(ev GameEvent) {
	e.Queue = append(e.Queue, ev)
}
