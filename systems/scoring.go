package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// DetectPoint queues a PointScored event for every goal sensor the ball
// started touching this tick.
func DetectPoint(e *ecs.ECS) {
	events := getOrCreateEvents(e)
	for _, ev := range getOrCreateContacts(e).Started() {
		if !ev.Sensor {
			continue
		}
		sensor, ok := entryWith(e, components.GoalSensor, ev.A, ev.B)
		if !ok {
			continue
		}
		events.Push(components.GameEvent{
			Kind:   components.EventPointScored,
			Sensor: sensor.Entity(),
		})
	}
}

// UpdateEvents drains the event queue in order. Events pushed while
// draining are handled in the same tick.
func UpdateEvents(e *ecs.ECS) {
	events := getOrCreateEvents(e)
	for i := 0; i < len(events.Queue); i++ {
		ev := events.Queue[i]
		switch ev.Kind {
		case components.EventPointScored:
			onPointScored(e, events, ev)
		case components.EventAfterPointScored:
			onAfterPointScored(e)
		}
	}
	events.Queue = events.Queue[:0]
}

func onPointScored(e *ecs.ECS, events *components.EventsData, ev components.GameEvent) {
	if !e.World.Valid(ev.Sensor) {
		zap.L().Warn("point scored on a removed goal sensor")
		return
	}
	sensor := components.GoalSensor.Get(e.World.Entry(ev.Sensor))

	score := GetOrCreateScore(e)
	score.AddPoint(sensor.Side)
	zap.L().Info("point scored",
		zap.Stringer("goal", sensor.Side),
		zap.Int("player1", score.Player1),
		zap.Int("player2", score.Player2),
	)

	TriggerScoreFlash(e)
	ResetBall(e)
	events.Push(components.GameEvent{Kind: components.EventAfterPointScored})
}

func onAfterPointScored(e *ecs.ECS) {
	score := GetOrCreateScore(e)
	if !score.IsGameEnd() {
		return
	}
	zap.L().Info("match won", zap.Int("winner", score.Winner()))
	RequestTransition(e, cfg.StateEndGame)
}
