package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; everything draws in system order.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"` // Fixed update ticks per second
}

// ArenaConfig contains the static playfield geometry
type ArenaConfig struct {
	WallThickness float64 `yaml:"wallThickness"`
	TopBuffer     float64 `yaml:"topBuffer"` // Space reserved above the arena for the score
	CellSize      int     `yaml:"cellSize"`  // Collision space cell size
}

// PaddleConfig contains paddle dimensions and human movement speed
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Buffer float64 `yaml:"buffer"` // Distance from the vertical screen edge
	Speed  float64 `yaml:"speed"`  // Units per second
}

// BallConfig contains ball dimensions and speed rules
type BallConfig struct {
	Radius           float64 `yaml:"radius"`
	InitialVelocityX float64 `yaml:"initialVelocityX"`
	InitialVelocityY float64 `yaml:"initialVelocityY"`
	SpeedIncrease    float64 `yaml:"speedIncrease"` // Vertical velocity multiplier per contact
	MaxSpeed         float64 `yaml:"maxSpeed"`
}

// MatchConfig contains the scoring rules
type MatchConfig struct {
	MaxScore int `yaml:"maxScore"`
}

// AIConfig contains the computer paddle tracking speeds (units per second)
type AIConfig struct {
	EasySpeed       float64 `yaml:"easySpeed"`
	DifficultSpeed  float64 `yaml:"difficultSpeed"`
	ImpossibleSpeed float64 `yaml:"impossibleSpeed"`
}

// ScoreFlashConfig contains the score pop effect played after each point
type ScoreFlashConfig struct {
	StartScale float64 `yaml:"startScale"`
	Duration   float64 `yaml:"duration"` // Seconds
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA `yaml:"-"`
	TextColorNormal   color.RGBA `yaml:"-"`
	TextColorSelected color.RGBA `yaml:"-"`
	MenuItemHeight    float64    `yaml:"menuItemHeight"`
	MenuItemGap       float64    `yaml:"menuItemGap"`
}

// MenuConfig contains menu screen configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA `yaml:"-"`
	TitleColor        color.RGBA `yaml:"-"`
	TextColorNormal   color.RGBA `yaml:"-"`
	TextColorSelected color.RGBA `yaml:"-"`
	TitleY            float64    `yaml:"titleY"`
	MenuStartY        float64    `yaml:"menuStartY"`
	MenuItemHeight    float64    `yaml:"menuItemHeight"`
	MenuItemGap       float64    `yaml:"menuItemGap"`
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Logging   bool `yaml:"logging"`   // Development logger at debug level
	SkipMenu  bool `yaml:"skipMenu"`  // Start directly in a match
	ShowBoxes bool `yaml:"showBoxes"` // Outline collision boxes
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Paddle PaddleConfig
var Ball BallConfig
var Match MatchConfig
var AI AIConfig
var ScoreFlash ScoreFlashConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Arena = ArenaConfig{
		WallThickness: 10,
		TopBuffer:     100,
		CellSize:      16,
	}

	Paddle = PaddleConfig{
		Width:  10,
		Height: 100,
		Buffer: 40,
		Speed:  600, // 10 units per tick at 60 TPS
	}

	Ball = BallConfig{
		Radius:           8,
		InitialVelocityX: 200,
		InitialVelocityY: 100,
		SpeedIncrease:    2,
		MaxSpeed:         1000,
	}

	Match = MatchConfig{
		MaxScore: 5,
	}

	AI = AIConfig{
		EasySpeed:       360,
		DifficultSpeed:  720,
		ImpossibleSpeed: 1080,
	}

	ScoreFlash = ScoreFlashConfig{
		StartScale: 1.6,
		Duration:   0.5,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            120,
		MenuStartY:        200,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	Debug = DebugConfig{
		Logging:   false,
		SkipMenu:  false,
		ShowBoxes: false,
	}
}

// FixedDelta returns the duration of one update tick in seconds.
func FixedDelta() float64 {
	return 1.0 / float64(C.TPS)
}
