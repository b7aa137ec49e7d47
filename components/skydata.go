package components

import (
	"github.com/automoto/solar-ride/checkpoints"
	"github.com/automoto/solar-ride/skydata"
	"github.com/yohamta/donburi"
)

// FetchState describes where the sky data load is.
type FetchState int

const (
	FetchPending FetchState = iota
	FetchBound
	FetchFailed
)

// SkyDataData is the singleton binding state between the data load and the
// checkpoint placement.
type SkyDataData struct {
	State     FetchState
	Placement *checkpoints.Placement
	People    int // -1 when unknown
	LastError error

	// Pending is a finished load waiting to be bound on the next update.
	Pending *skydata.Snapshot
}

var SkyData = donburi.NewComponentType[SkyDataData]()
