package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box when debug boxes are enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}
	sessionEntry, ok := GetSession(e)
	if !ok {
		return
	}

	for _, obj := range components.Space.Get(sessionEntry).Objects() {
		c := cfg.LightGreen
		if obj.HasTags(tags.ResolvSensor) {
			c = cfg.Red
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
