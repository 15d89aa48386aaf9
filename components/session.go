package components

import "github.com/yohamta/donburi"

// SessionData lives on the root entity of a match and owns every entity
// spawned for it. Width and Height are the viewport size the arena was
// built for.
type SessionData struct {
	Children []donburi.Entity
	Width    float64
	Height   float64
}

var Session = donburi.NewComponentType[SessionData]()

// Adopt records e as owned by the session.
func (s *SessionData) Adopt(e donburi.Entity) {
	s.Children = append(s.Children, e)
}

// Release forgets e, typically before it is removed on its own.
func (s *SessionData) Release(e donburi.Entity) {
	for i, child := range s.Children {
		if child == e {
			s.Children = append(s.Children[:i], s.Children[i+1:]...)
			return
		}
	}
}
