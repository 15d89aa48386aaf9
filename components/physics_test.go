package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestClampSpeed(t *testing.T) {
	slow := VelocityData{X: 3, Y: 4}
	assert.Equal(t, slow, slow.ClampSpeed(10))

	fast := VelocityData{X: 30, Y: 40}.ClampSpeed(10)
	assert.InDelta(t, 10, fast.Speed(), 1e-9)
	assert.InDelta(t, 6, fast.X, 1e-9)
	assert.InDelta(t, 8, fast.Y, 1e-9)

	assert.Equal(t, VelocityData{}, VelocityData{}.ClampSpeed(10))
}

func TestContactsTrackPairs(t *testing.T) {
	var c ContactsData
	pair := ContactPair{A: 1, B: 2}

	assert.True(t, c.Begin(pair))
	assert.False(t, c.Begin(pair))

	c.End(pair)
	assert.True(t, c.Begin(pair))

	c.Events = append(c.Events,
		ContactEvent{ContactPair: pair, Started: true},
		ContactEvent{ContactPair: ContactPair{A: 1, B: 3}},
	)
	assert.Len(t, c.Started(), 1)

	c.Clear()
	assert.Empty(t, c.Events)
	assert.True(t, c.Begin(pair))
}

func TestSessionAdoptRelease(t *testing.T) {
	var s SessionData
	s.Adopt(1)
	s.Adopt(2)
	s.Adopt(3)
	s.Release(2)
	s.Release(9)

	assert.Len(t, s.Children, 2)
	assert.NotContains(t, s.Children, donburi.Entity(2))
}
