package systems

import (
	cfg "github.com/automoto/pong/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// TriggerScoreFlash starts the score pop animation from its peak scale.
func TriggerScoreFlash(e *ecs.ECS) {
	flash := getOrCreateScoreFlash(e)
	flash.Tween = gween.New(
		float32(cfg.ScoreFlash.StartScale), 1,
		float32(cfg.ScoreFlash.Duration), ease.OutQuad,
	)
	flash.Scale = cfg.ScoreFlash.StartScale
}

// UpdateScoreFlash eases the score text back to its normal size.
func UpdateScoreFlash(e *ecs.ECS) {
	flash := getOrCreateScoreFlash(e)
	if flash.Tween == nil {
		return
	}

	scale, finished := flash.Tween.Update(float32(cfg.FixedDelta()))
	flash.Scale = float64(scale)
	if finished {
		flash.Tween = nil
		flash.Scale = 1
	}
}

func resetScoreFlash(e *ecs.ECS) {
	flash := getOrCreateScoreFlash(e)
	flash.Tween = nil
	flash.Scale = 1
}
