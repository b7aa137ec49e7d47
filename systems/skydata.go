package systems

import (
	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/logger"
	"github.com/automoto/solar-ride/skydata"
	"github.com/automoto/solar-ride/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSkyData binds a load the scene handed over since the last frame.
func UpdateSkyData(ecs *ecs.ECS) {
	entry, ok := components.SkyData.First(ecs.World)
	if !ok {
		return
	}
	sky := components.SkyData.Get(entry)
	if sky.Pending == nil {
		return
	}
	snap := *sky.Pending
	sky.Pending = nil
	ApplySkyData(ecs, snap)
}

// ApplySkyData binds a finished data load to the checkpoint anchors and
// spawns one entity per checkpoint. It runs on the main goroutine and binds at
// most once; a failed load leaves the placeholder in place.
func ApplySkyData(ecs *ecs.ECS, snap skydata.Snapshot) {
	entry, ok := components.SkyData.First(ecs.World)
	if !ok {
		return
	}
	sky := components.SkyData.Get(entry)
	if sky.State == components.FetchBound || sky.Placement.Generated() {
		return
	}

	log := logger.Named("binding")
	sky.People = snap.Headcount()

	// Fetch failures were already logged by the loader
	if snap.RecordsErr != nil {
		sky.State = components.FetchFailed
		sky.LastError = snap.RecordsErr
		log.Info("keeping placeholder checkpoints")
		ShowMessage(ecs, "Could not reach the solar system API")
		return
	}

	if err := sky.Placement.Generate(snap.Records, sky.People); err != nil {
		sky.State = components.FetchFailed
		sky.LastError = err
		log.Error("checkpoint generation failed", zap.Error(err))
		return
	}

	sky.State = components.FetchBound
	sky.LastError = nil
	for _, cp := range sky.Placement.Checkpoints() {
		factory.CreateCheckpoint(ecs, cp, cfg.Checkpoint.ActivationRadius, cfg.Checkpoint.RevealDuration)
	}
	log.Info("checkpoints bound",
		zap.Int("checkpoints", len(sky.Placement.Checkpoints())),
		zap.Int("people", sky.People),
	)
}
