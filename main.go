package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/pong/config"
	"github.com/automoto/pong/fonts"
	"github.com/automoto/pong/logging"
	"github.com/automoto/pong/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPongScene(g, nil)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// Size reports the logical screen size, zero until the first Layout.
func (g *Game) Size() (int, int) {
	return g.bounds.Dx(), g.bounds.Dy()
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	debug := flag.Bool("debug", false, "enable debug logging and collision boxes")
	skipMenu := flag.Bool("skip-menu", false, "start a match immediately")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *debug {
		config.Debug.Logging = true
		config.Debug.ShowBoxes = true
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}

	logCfg := logging.DefaultConfig()
	if config.Debug.Logging {
		logCfg = logging.DebugConfig()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	defer logging.Install(logger)()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("failed to load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(config.C.TPS)

	logger.Info("starting",
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height),
		zap.Int("maxScore", config.Match.MaxScore),
	)

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game stopped", zap.Error(err))
	}
}
