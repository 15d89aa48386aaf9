package components

import (
	"fmt"

	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// Difficulty sets how fast a computer paddle may track the ball.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyDifficult
	DifficultyImpossible
)

// MaxSpeed returns the tracking speed limit in units per second.
func (d Difficulty) MaxSpeed() float64 {
	switch d {
	case DifficultyDifficult:
		return cfg.AI.DifficultSpeed
	case DifficultyImpossible:
		return cfg.AI.ImpossibleSpeed
	}
	return cfg.AI.EasySpeed
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyDifficult:
		return "Difficult"
	case DifficultyImpossible:
		return "Impossible"
	}
	return "Easy"
}

// PlayerKind distinguishes keyboard players from computer players.
type PlayerKind int

const (
	PlayerHuman PlayerKind = iota
	PlayerComputer
)

// PlayerType is Human or Computer with a difficulty. Difficulty is ignored
// for humans.
type PlayerType struct {
	Kind       PlayerKind
	Difficulty Difficulty
}

// Human returns the keyboard-controlled player type.
func Human() PlayerType {
	return PlayerType{Kind: PlayerHuman}
}

// Computer returns an AI player type with the given difficulty.
func Computer(d Difficulty) PlayerType {
	return PlayerType{Kind: PlayerComputer, Difficulty: d}
}

// IsHuman reports whether the player is keyboard controlled.
func (p PlayerType) IsHuman() bool {
	return p.Kind == PlayerHuman
}

func (p PlayerType) String() string {
	if p.IsHuman() {
		return "Human"
	}
	return p.Difficulty.String()
}

// PlayerTypeOptions is the order the setup menu cycles through.
var PlayerTypeOptions = []PlayerType{
	Human(),
	Computer(DifficultyEasy),
	Computer(DifficultyDifficult),
	Computer(DifficultyImpossible),
}

// SettingsData holds the configuration of both player slots.
// Slots are numbered 1 and 2.
type SettingsData struct {
	Player1 PlayerType
	Player2 PlayerType
}

var Settings = donburi.NewComponentType[SettingsData]()

// DefaultSettings returns Player 1 as Human and Player 2 as an easy computer.
func DefaultSettings() SettingsData {
	return SettingsData{
		Player1: Human(),
		Player2: Computer(DifficultyEasy),
	}
}

// Player returns the type configured for a slot.
func (s *SettingsData) Player(slot int) PlayerType {
	switch slot {
	case 1:
		return s.Player1
	case 2:
		return s.Player2
	}
	panic(fmt.Sprintf("invalid player slot %d", slot))
}

// SetPlayer overwrites a slot. Any slot other than 1 or 2 is a programming
// error and panics.
func (s *SettingsData) SetPlayer(slot int, t PlayerType) {
	switch slot {
	case 1:
		s.Player1 = t
	case 2:
		s.Player2 = t
	default:
		panic(fmt.Sprintf("invalid player slot %d", slot))
	}
}
