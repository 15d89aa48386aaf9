package systems

import (
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score above the arena, scaled by the score flash.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if _, ok := GetSession(e); !ok {
		return
	}

	score := GetOrCreateScore(e).DisplayText()
	scale := getOrCreateScoreFlash(e).Scale
	if scale <= 0 {
		scale = 1
	}

	face := fonts.Score.Get()
	bounds := text.BoundString(face, score) //nolint:staticcheck // TODO: migrate to text/v2
	width := float64(screen.Bounds().Dx())
	w := float64(bounds.Dx()) * scale
	h := float64(bounds.Dy()) * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((width-w)/2, cfg.Arena.TopBuffer/2+h/2)
	op.ColorScale.ScaleWithColor(cfg.White)
	text.DrawWithOptions(screen, score, face, op) //nolint:staticcheck // TODO: migrate to text/v2
}
