package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// PaddleData describes who controls a paddle and which goal it defends.
type PaddleData struct {
	Player PlayerType
	Side   cfg.Side
}

var Paddle = donburi.NewComponentType[PaddleData]()
