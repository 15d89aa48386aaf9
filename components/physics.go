package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// TransformData is a centre position in world units. The origin is the
// middle of the arena and Y grows upwards.
type TransformData struct {
	X, Y float64
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData is measured in world units per second.
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()

// Speed returns the magnitude of the velocity.
func (v VelocityData) Speed() float64 {
	return math.Hypot(v.X, v.Y)
}

// ClampSpeed scales v down so its magnitude does not exceed limit.
func (v VelocityData) ClampSpeed(limit float64) VelocityData {
	speed := v.Speed()
	if speed <= limit || speed == 0 {
		return v
	}
	scale := limit / speed
	return VelocityData{X: v.X * scale, Y: v.Y * scale}
}

// SizeData is the full width and height of an entity's collision box.
type SizeData struct {
	W, H float64
}

var Size = donburi.NewComponentType[SizeData]()
