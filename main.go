package main

import (
	"net/http"

	"github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/fonts"
	"github.com/automoto/solar-ride/logger"
	"github.com/automoto/solar-ride/scenes"
	"github.com/automoto/solar-ride/skydata"
	"github.com/automoto/solar-ride/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const appName = "solar-ride"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	scene         Scene
	width, height int
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen size fixed and turns it on its side when
// the window is taller than it is wide.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := config.C.Width, config.C.Height
	if outsideHeight > outsideWidth {
		w, h = h, w
	}
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.scene.Layout(w, h)
	}
	return w, h
}

func main() {
	env, envErr := config.ParseEnv()
	if err := logger.Init(env.LogLevel); err != nil {
		_ = logger.Init("info")
		logger.L().Warn("unknown log level, using info", zap.String("level", env.LogLevel))
	}
	log := logger.L()
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Fatal("invalid environment", zap.Error(envErr))
	}
	env.Apply()

	route, err := config.LoadRoute(env.RouteFile)
	if err != nil {
		log.Fatal("could not load route", zap.String("file", env.RouteFile), zap.Error(err))
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("could not load fonts", zap.Error(err))
	}

	if err := systems.InitPersistence(appName); err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
	}
	saved := systems.LoadSettings()

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	systems.ApplySavedSettingsGlobal(saved)

	client := skydata.NewClient(config.Data.PeopleURL, config.Data.BodiesURL,
		skydata.WithHTTPClient(&http.Client{Timeout: config.Data.HTTPTimeout}),
		skydata.WithLogger(logger.Named("skydata")),
	)
	loader := skydata.NewLoader(client, route.Bodies, logger.Named("loader"))

	scene, err := scenes.NewRideScene(route, loader, saved.Component())
	if err != nil {
		log.Fatal("could not build ride", zap.Error(err))
	}

	log.Info("starting ride",
		zap.Int("controlPoints", len(route.ControlPoints)),
		zap.Int("anchors", len(route.Anchors)),
		zap.Int("samples", config.Ride.SampleCount),
		zap.Int("pages", config.Scroll.Pages),
	)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal("ride stopped", zap.Error(err))
	}
}
