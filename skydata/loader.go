package skydata

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Snapshot is the outcome of one session's data load. The two sources fail
// independently.
type Snapshot struct {
	People     PeopleReport
	PeopleErr  error
	Records    []CelestialRecord
	RecordsErr error
}

// Headcount returns the people count, or -1 when it could not be fetched.
func (s Snapshot) Headcount() int {
	if s.PeopleErr != nil {
		return -1
	}
	return s.People.Count
}

// Complete reports whether both sources answered.
func (s Snapshot) Complete() bool {
	return s.PeopleErr == nil && s.RecordsErr == nil
}

// Loader issues both fetches of a session in parallel.
type Loader struct {
	client *Client
	bodies []string
	log    *zap.Logger
}

func NewLoader(client *Client, bodies []string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		client: client,
		bodies: append([]string(nil), bodies...),
		log:    log,
	}
}

// Load waits for both sources. Errors are recorded in the snapshot, never
// returned or panicked.
func (l *Loader) Load(ctx context.Context) Snapshot {
	var snap Snapshot
	var g errgroup.Group

	g.Go(func() error {
		snap.People, snap.PeopleErr = l.client.FetchPeopleCount(ctx)
		if snap.PeopleErr != nil {
			l.log.Warn("people fetch failed", zap.Error(snap.PeopleErr))
		}
		return nil
	})
	g.Go(func() error {
		snap.Records, snap.RecordsErr = l.client.FetchCelestialRecords(ctx, l.bodies)
		if snap.RecordsErr != nil {
			l.log.Warn("celestial fetch failed", zap.Error(snap.RecordsErr))
		}
		return nil
	})
	_ = g.Wait()

	l.log.Info("sky data loaded",
		zap.Int("people", snap.Headcount()),
		zap.Int("records", len(snap.Records)),
		zap.Bool("complete", snap.Complete()))
	return snap
}
