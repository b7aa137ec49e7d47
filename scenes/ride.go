package scenes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/automoto/solar-ride/assets"
	"github.com/automoto/solar-ride/checkpoints"
	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/logger"
	"github.com/automoto/solar-ride/navigation"
	"github.com/automoto/solar-ride/skydata"
	"github.com/automoto/solar-ride/systems"
	"github.com/automoto/solar-ride/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const spaceCellSize = 4

// RideScene is one viewing session: a fresh world, one camera rig and one
// data load.
type RideScene struct {
	ecs      *ecs.ECS
	loader   *skydata.Loader
	once     sync.Once
	settings components.SettingsData

	// Data load results, written by the fetch goroutine
	mu        sync.Mutex
	fetched   skydata.Snapshot
	fetchDone bool
}

// NewRideScene builds the session world. Route or anchor problems are
// reported here, before the first frame.
func NewRideScene(route *cfg.Route, loader *skydata.Loader, settings components.SettingsData) (*RideScene, error) {
	s := &RideScene{loader: loader, settings: settings}
	if err := s.configure(route); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *RideScene) Update() {
	s.once.Do(s.start)
	s.handOver()
	s.ecs.Update()
}

func (s *RideScene) Draw(screen *ebiten.Image) {
	s.ecs.Draw(screen)
}

// Layout switches the lens when the window changes orientation.
func (s *RideScene) Layout(width, height int) {
	systems.SetViewport(s.ecs, width, height)
}

func (s *RideScene) configure(route *cfg.Route) error {
	placement, err := checkpoints.NewPlacement(route.ControlPoints, route.Anchors, route.Bodies, checkpoints.Text{
		WelcomeTitle: cfg.Checkpoint.WelcomeTitle,
		Placeholder:  cfg.Checkpoint.PlaceholderText,
	})
	if err != nil {
		return fmt.Errorf("place checkpoints: %w", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateScroll)
	ecs.AddSystem(systems.UpdateSkyData)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateProximity)
	ecs.AddSystem(systems.UpdateReveal)
	ecs.AddSystem(systems.UpdateMessage)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawPath)
	ecs.AddRenderer(cfg.Default, systems.DrawVignette)
	ecs.AddRenderer(cfg.Default, systems.DrawCheckpoints)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	s.ecs = ecs

	routeEntry, err := factory.CreateRoute(s.ecs, route, cfg.Ride.SampleCount)
	if err != nil {
		return err
	}
	path := components.Route.Get(routeEntry).Path

	// The space must exist before anything that registers an object in it
	bounds := path.Points()
	for _, a := range placement.Anchors() {
		if p, err := a.Position(route.ControlPoints); err == nil {
			bounds = append(bounds, p)
		}
	}
	factory.CreateSpace(s.ecs, bounds, 2*cfg.Checkpoint.ActivationRadius, spaceCellSize)

	factory.CreateCamera(s.ecs, cfg.Camera.Landscape, navigation.Solver{
		BankScale:       cfg.Camera.BankScale,
		MaxBank:         cfg.Camera.MaxBank,
		PositionRate:    cfg.Camera.PositionRate,
		OrientationRate: cfg.Camera.OrientationRate,
	})
	factory.CreateScroll(s.ecs, systems.ScrollSpeedFactor(s.settings.ScrollSpeed))
	factory.CreateClock(s.ecs, time.Now())
	factory.CreateSkyData(s.ecs, placement)
	factory.CreateSettings(s.ecs, s.settings, cfg.Debug.Overlay)

	systems.ShowMessage(s.ecs, cfg.Message.StartHint)
	return nil
}

// start runs on the first frame, once the graphics driver is up.
func (s *RideScene) start() {
	if assets.VignetteShader == nil {
		if err := assets.LoadShaders(); err != nil {
			logger.L().Warn("could not compile shaders, drawing without vignette", zap.Error(err))
		}
	}
	s.startFetch()
}

// startFetch loads the sky data off the main goroutine. A session that ends
// first simply never reads the result.
func (s *RideScene) startFetch() {
	if s.loader == nil {
		return
	}
	go func() {
		snap := s.loader.Load(context.Background())

		s.mu.Lock()
		s.fetched = snap
		s.fetchDone = true
		s.mu.Unlock()
	}()
}

// handOver passes a finished load to the binding system on the main goroutine.
func (s *RideScene) handOver() {
	s.mu.Lock()
	if !s.fetchDone {
		s.mu.Unlock()
		return
	}
	snap := s.fetched
	s.fetchDone = false
	s.fetched = skydata.Snapshot{}
	s.mu.Unlock()

	if entry, ok := components.SkyData.First(s.ecs.World); ok {
		components.SkyData.Get(entry).Pending = &snap
	}
}
