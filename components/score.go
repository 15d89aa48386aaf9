package components

import (
	"fmt"

	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// ScoreData holds the points of both players for the current match.
type ScoreData struct {
	Player1 int
	Player2 int
}

var Score = donburi.NewComponentType[ScoreData]()

// Reset zeroes both counters.
func (s *ScoreData) Reset() {
	s.Player1 = 0
	s.Player2 = 0
}

// AddPoint credits the player opposite to the goal sensor that was hit:
// a ball in the right goal scores for player 1.
func (s *ScoreData) AddPoint(sensor cfg.Side) {
	switch sensor {
	case cfg.SideRight:
		s.Player1++
	case cfg.SideLeft:
		s.Player2++
	}
}

// IsGameEnd reports whether either player reached the winning score.
func (s *ScoreData) IsGameEnd() bool {
	return s.Player1 >= cfg.Match.MaxScore || s.Player2 >= cfg.Match.MaxScore
}

// Winner returns the winning player slot, or 0 while the match is running.
func (s *ScoreData) Winner() int {
	switch {
	case s.Player1 >= cfg.Match.MaxScore:
		return 1
	case s.Player2 >= cfg.Match.MaxScore:
		return 2
	}
	return 0
}

// DisplayText renders the score as "p1 - p2".
func (s *ScoreData) DisplayText() string {
	return fmt.Sprintf("%d - %d", s.Player1, s.Player2)
}
