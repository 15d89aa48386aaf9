package systems

import (
	"image/color"
	"math"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// toScreen converts a world position to screen pixels.
func toScreen(session *components.SessionData, t components.TransformData) (float64, float64) {
	return session.Width/2 + t.X, session.Height/2 - t.Y
}

// DrawArena renders walls, paddles and the ball of the live match.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := GetSession(e)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	drawBox := func(entry *donburi.Entry, clr color.RGBA) {
		x, y := toScreen(session, *components.Transform.Get(entry))
		size := components.Size.Get(entry)
		vector.FillRect(
			screen,
			float32(x-size.W/2), float32(y-size.H/2),
			float32(size.W), float32(size.H),
			clr,
			false,
		)
	}

	drawCentreLine(screen, session)
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		drawBox(entry, cfg.Gray)
	})
	tags.Paddle.Each(e.World, func(entry *donburi.Entry) {
		drawBox(entry, cfg.White)
	})
	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		x, y := toScreen(session, *components.Transform.Get(entry))
		r := components.Ball.Get(entry).Radius
		vector.FillCircle(screen, float32(x), float32(y), float32(r), cfg.White, true)
	})
}

// drawCentreLine dashes the net between the two walls.
func drawCentreLine(screen *ebiten.Image, session *components.SessionData) {
	const dash, gap, width = 12.0, 10.0, 2.0

	_, top := toScreen(session, components.TransformData{Y: session.Height/2 - cfg.Arena.TopBuffer - cfg.Arena.WallThickness*1.5})
	_, bottom := toScreen(session, components.TransformData{Y: -session.Height/2 + cfg.Arena.WallThickness*1.5})
	x := session.Width/2 - width/2

	for y := top; y < bottom; y += dash + gap {
		h := math.Min(dash, bottom-y)
		vector.FillRect(screen, float32(x), float32(y), width, float32(h), cfg.Gray, false)
	}
}
