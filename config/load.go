package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the tunable sections of the global configuration. Sections or
// fields missing from a YAML file keep their current values.
type File struct {
	Window     Config           `yaml:"window"`
	Arena      ArenaConfig      `yaml:"arena"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Match      MatchConfig      `yaml:"match"`
	AI         AIConfig         `yaml:"ai"`
	ScoreFlash ScoreFlashConfig `yaml:"scoreFlash"`
	Debug      DebugConfig      `yaml:"debug"`
}

// Current snapshots the global configuration.
func Current() File {
	return File{
		Window:     *C,
		Arena:      Arena,
		Paddle:     Paddle,
		Ball:       Ball,
		Match:      Match,
		AI:         AI,
		ScoreFlash: ScoreFlash,
		Debug:      Debug,
	}
}

// Apply installs f as the global configuration.
func (f File) Apply() {
	window := f.Window
	C = &window
	Arena = f.Arena
	Paddle = f.Paddle
	Ball = f.Ball
	Match = f.Match
	AI = f.AI
	ScoreFlash = f.ScoreFlash
	Debug = f.Debug
}

// Parse overlays YAML data on top of base and validates the result.
func Parse(data []byte, base File) (File, error) {
	f := base
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return base, err
	}
	return f, nil
}

// Load reads a YAML file and applies it over the current configuration.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	f, err := Parse(data, Current())
	if err != nil {
		return fmt.Errorf("load config %q: %w", path, err)
	}
	f.Apply()
	return nil
}

// Validate rejects values the game cannot run with.
func (f File) Validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height)
	case f.Window.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", f.Window.TPS)
	case f.Arena.CellSize <= 0:
		return fmt.Errorf("arena cellSize must be positive, got %d", f.Arena.CellSize)
	case f.Match.MaxScore <= 0:
		return fmt.Errorf("match maxScore must be positive, got %d", f.Match.MaxScore)
	case f.Ball.MaxSpeed <= 0:
		return fmt.Errorf("ball maxSpeed must be positive, got %v", f.Ball.MaxSpeed)
	case f.Ball.MaxSpeed/float64(f.Window.TPS) >= f.Paddle.Width+2*f.Ball.Radius:
		return fmt.Errorf("ball maxSpeed %v moves past a paddle in one tick at %d tps", f.Ball.MaxSpeed, f.Window.TPS)
	case f.Ball.MaxSpeed/float64(f.Window.TPS) >= f.Arena.WallThickness+2*f.Ball.Radius:
		return fmt.Errorf("ball maxSpeed %v moves past a wall in one tick at %d tps", f.Ball.MaxSpeed, f.Window.TPS)
	case !(f.AI.EasySpeed < f.AI.DifficultSpeed && f.AI.DifficultSpeed < f.AI.ImpossibleSpeed):
		return fmt.Errorf("ai speeds must increase with difficulty, got %v/%v/%v",
			f.AI.EasySpeed, f.AI.DifficultSpeed, f.AI.ImpossibleSpeed)
	}
	return nil
}
