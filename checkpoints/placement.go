package checkpoints

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/solar-ride/gamemath"
	"github.com/automoto/solar-ride/skydata"
)

var ErrInsufficientCelestialData = errors.New("insufficient celestial data")

// UnknownHeadcount marks a people count that could not be fetched.
const UnknownHeadcount = -1

// Checkpoint is one narrative marker along the ride.
type Checkpoint struct {
	Slot     int
	Body     string
	Position gamemath.Vec3
	Rotation gamemath.Euler
	Title    string
	Subtitle string
	Bound    bool
}

// Text is the label copy used before and around bound data.
type Text struct {
	WelcomeTitle string
	Placeholder  string
}

var DefaultText = Text{
	WelcomeTitle: "Welcome to the ride",
	Placeholder:  "Loading the text...",
}

// Placement owns the checkpoint sequence of one session. Generate writes it
// exactly once; afterwards it is read-only.
type Placement struct {
	controlPoints []gamemath.Vec3
	anchors       []Anchor
	text          Text
	checkpoints   []Checkpoint
}

// NewPlacement validates anchors against the route. bodies lists the body ids
// that must be anchored.
func NewPlacement(controlPoints []gamemath.Vec3, anchors []Anchor, bodies []string, text Text) (*Placement, error) {
	if err := ValidateAnchors(anchors, bodies, len(controlPoints)); err != nil {
		return nil, err
	}

	sorted := append([]Anchor(nil), anchors...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Slot < sorted[j].Slot })

	return &Placement{
		controlPoints: append([]gamemath.Vec3(nil), controlPoints...),
		anchors:       sorted,
		text:          text,
	}, nil
}

// Generated reports whether data has been bound.
func (p *Placement) Generated() bool {
	return len(p.checkpoints) > 0
}

// Generate binds records and the people count to the anchors. It is a no-op
// once checkpoints exist or while records is empty. Records are matched to
// anchors by body id, so their order does not matter. A missing body fails the
// whole bind and leaves the placement untouched.
func (p *Placement) Generate(records []skydata.CelestialRecord, people int) error {
	if p.Generated() || len(records) == 0 {
		return nil
	}

	byBody := make(map[string]skydata.CelestialRecord, len(records))
	for _, r := range records {
		byBody[r.ID] = r
	}

	out := make([]Checkpoint, 0, len(p.anchors))
	for _, a := range p.anchors {
		pos, err := a.Position(p.controlPoints)
		if err != nil {
			return err
		}
		cp := Checkpoint{
			Slot:     a.Slot,
			Body:     a.Body,
			Position: pos,
			Rotation: a.Rotation,
			Bound:    true,
		}

		if a.Body == "" {
			cp.Title = p.text.WelcomeTitle
			cp.Subtitle = welcomeSubtitle(people)
		} else {
			rec, ok := byBody[a.Body]
			if !ok {
				return fmt.Errorf("%w: no record for %q (have %d of %d bodies)",
					ErrInsufficientCelestialData, a.Body, len(records), len(p.anchors)-1)
			}
			cp.Title = rec.EnglishName
			cp.Subtitle = planetSubtitle(rec.AvgTemp)
		}
		out = append(out, cp)
	}

	p.checkpoints = out
	return nil
}

// Checkpoints returns the bound sequence, or just the welcome placeholder
// before data arrives.
func (p *Placement) Checkpoints() []Checkpoint {
	if p.Generated() {
		return append([]Checkpoint(nil), p.checkpoints...)
	}
	return []Checkpoint{p.Placeholder()}
}

// Placeholder is the welcome checkpoint shown while data is loading.
func (p *Placement) Placeholder() Checkpoint {
	a := p.anchors[0]
	pos, _ := a.Position(p.controlPoints) // validated in NewPlacement
	return Checkpoint{
		Slot:     a.Slot,
		Position: pos,
		Rotation: a.Rotation,
		Title:    p.text.WelcomeTitle,
		Subtitle: p.text.Placeholder,
	}
}

// SlotFor returns the slot a body is anchored to.
func (p *Placement) SlotFor(body string) (int, bool) {
	for _, a := range p.anchors {
		if a.Body == body && body != "" {
			return a.Slot, true
		}
	}
	return 0, false
}

// Anchors returns the anchors in slot order.
func (p *Placement) Anchors() []Anchor {
	return append([]Anchor(nil), p.anchors...)
}
