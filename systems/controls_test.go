package systems

import (
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActionUsesControlMap(t *testing.T) {
	e := newTestECS()
	keys := newHeldKeys()
	updateInput := NewUpdateInput(keys)

	keys.press(ebiten.KeyW)
	updateInput(e)
	assert.True(t, GetAction(e, cfg.ActionPlayer2Up).JustPressed)
	assert.False(t, GetAction(e, cfg.ActionPlayer1Up).Pressed)
	// Menu navigation accepts W too
	assert.True(t, GetAction(e, cfg.ActionMenuUp).Pressed)

	updateInput(e)
	state := GetAction(e, cfg.ActionPlayer2Up)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed)

	keys.releaseAll()
	updateInput(e)
	assert.True(t, GetAction(e, cfg.ActionPlayer2Up).JustReleased)
}

func TestRemapConsumesKeyPress(t *testing.T) {
	e := newTestECS()
	keys := newHeldKeys()
	updateInput := NewUpdateInput(keys)
	GetOrCreateGameState(e).Current = cfg.StateControls
	controls := GetOrCreateControlMap(e)
	controls.StartRemapping(cfg.ActionPlayer1Up)

	keys.press(ebiten.KeyK)
	updateInput(e)
	ListenForKeys(e)

	key, ok := controls.Key(cfg.ActionPlayer1Up)
	require.True(t, ok)
	assert.Equal(t, ebiten.KeyK, key)
	assert.False(t, controls.IsRemapping())
	// Swallowed for this frame
	assert.False(t, GetAction(e, cfg.ActionPlayer1Up).Pressed)

	// Held on the next frame: now a normal press, no further rebinding
	keys.press(ebiten.KeyJ)
	updateInput(e)
	ListenForKeys(e)
	key, _ = controls.Key(cfg.ActionPlayer1Up)
	assert.Equal(t, ebiten.KeyK, key)
	assert.True(t, GetAction(e, cfg.ActionPlayer1Up).Pressed)
}

func TestRemapReplacesOldKey(t *testing.T) {
	e := newTestECS()
	keys := newHeldKeys()
	updateInput := NewUpdateInput(keys)
	controls := GetOrCreateControlMap(e)
	controls.StartRemapping(cfg.ActionPlayer1Up)

	keys.press(ebiten.KeyI)
	updateInput(e)
	ListenForKeys(e)

	keys.releaseAll()
	keys.press(ebiten.KeyArrowUp)
	updateInput(e)
	assert.False(t, GetAction(e, cfg.ActionPlayer1Up).Pressed)
}

func TestRemapBindsOnlyFirstKey(t *testing.T) {
	e := newTestECS()
	keys := newHeldKeys()
	updateInput := NewUpdateInput(keys)
	controls := GetOrCreateControlMap(e)
	controls.StartRemapping(cfg.ActionPlayer2Down)

	keys.press(ebiten.KeyB, ebiten.KeyA)
	updateInput(e)
	ListenForKeys(e)

	key, _ := controls.Key(cfg.ActionPlayer2Down)
	assert.Equal(t, ebiten.KeyA, key)
	key, _ = controls.Key(cfg.ActionPlayer1Down)
	assert.Equal(t, ebiten.KeyArrowDown, key)
}

func TestLeavingControlsCancelsRemap(t *testing.T) {
	e := newTestECS()
	RequestTransition(e, cfg.StateControls)
	ApplyTransitions(e, defaultViewport())

	controls := GetOrCreateControlMap(e)
	controls.StartRemapping(cfg.ActionMenu)

	RequestTransition(e, cfg.StateMain)
	ApplyTransitions(e, defaultViewport())

	assert.False(t, controls.IsRemapping())
	key, _ := controls.Key(cfg.ActionMenu)
	assert.Equal(t, ebiten.KeyEscape, key)
}
