package config

// GameStateID is the top-level mode of the game.
type GameStateID int

const (
	StateMain GameStateID = iota
	StateControls
	StateStartGame
	StatePlaying
	StateEndGame
)

func (s GameStateID) String() string {
	switch s {
	case StateMain:
		return "Main"
	case StateControls:
		return "Controls"
	case StateStartGame:
		return "StartGame"
	case StatePlaying:
		return "Playing"
	case StateEndGame:
		return "EndGame"
	}
	return "Unknown"
}

// PausedStateID is only meaningful while StatePlaying is active.
type PausedStateID int

const (
	Unpaused PausedStateID = iota
	Paused
)

func (s PausedStateID) String() string {
	if s == Paused {
		return "Paused"
	}
	return "Unpaused"
}

// Side identifies the half of the arena a paddle or goal sensor belongs to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "Right"
	}
	return "Left"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}
