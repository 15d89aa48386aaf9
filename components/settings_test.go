package components

import (
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, Human(), s.Player(1))
	assert.Equal(t, Computer(DifficultyEasy), s.Player(2))
}

func TestSetPlayer(t *testing.T) {
	s := DefaultSettings()
	s.SetPlayer(1, Computer(DifficultyImpossible))
	s.SetPlayer(2, Human())

	assert.Equal(t, Computer(DifficultyImpossible), s.Player1)
	assert.Equal(t, Human(), s.Player2)
	assert.Equal(t, "Impossible", s.Player1.String())
}

func TestInvalidSlotPanics(t *testing.T) {
	s := DefaultSettings()
	assert.Panics(t, func() { s.SetPlayer(0, Human()) })
	assert.Panics(t, func() { s.SetPlayer(3, Human()) })
	assert.Panics(t, func() { s.Player(-1) })
}

func TestDifficultySpeeds(t *testing.T) {
	assert.Equal(t, cfg.AI.EasySpeed, DifficultyEasy.MaxSpeed())
	assert.Equal(t, cfg.AI.DifficultSpeed, DifficultyDifficult.MaxSpeed())
	assert.Equal(t, cfg.AI.ImpossibleSpeed, DifficultyImpossible.MaxSpeed())
	assert.Less(t, DifficultyEasy.MaxSpeed(), DifficultyImpossible.MaxSpeed())
}
