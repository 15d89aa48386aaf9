package components

import (
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewControlMapCopiesDefaults(t *testing.T) {
	c := NewControlMap()
	c.Bind(cfg.ActionPlayer1Up, ebiten.KeyQ)

	assert.Equal(t, ebiten.KeyArrowUp, cfg.Input.DefaultBindings[cfg.ActionPlayer1Up])
	fresh := NewControlMap()
	key, ok := fresh.Key(cfg.ActionPlayer1Up)
	assert.True(t, ok)
	assert.Equal(t, ebiten.KeyArrowUp, key)
}

func TestRemap(t *testing.T) {
	c := NewControlMap()
	assert.False(t, c.Remap(ebiten.KeyZ), "no remap in progress")

	c.StartRemapping(cfg.ActionPlayer2Up)
	assert.True(t, c.IsRemapping())
	assert.True(t, c.Remap(ebiten.KeyZ))

	key, _ := c.Key(cfg.ActionPlayer2Up)
	assert.Equal(t, ebiten.KeyZ, key)
	assert.False(t, c.IsRemapping())
	assert.Equal(t, cfg.ActionNone, c.Action)
}

func TestClearAction(t *testing.T) {
	c := NewControlMap()
	c.ClearAction(cfg.ActionMenu)
	_, ok := c.Key(cfg.ActionMenu)
	assert.False(t, ok)
}
