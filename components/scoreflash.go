package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScoreFlashData scales the score text after a point. Tween is nil when idle.
type ScoreFlashData struct {
	Tween *gween.Tween
	Scale float64
}

var ScoreFlash = donburi.NewComponentType[ScoreFlashData]()
