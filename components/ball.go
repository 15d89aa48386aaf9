package components

import "github.com/yohamta/donburi"

type BallData struct {
	Radius float64
}

var Ball = donburi.NewComponentType[BallData]()
