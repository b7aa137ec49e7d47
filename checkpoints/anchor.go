// Package checkpoints places narrative checkpoints along the ride and binds
// fetched celestial data to them exactly once.
package checkpoints

import (
	"errors"
	"fmt"

	"github.com/automoto/solar-ride/gamemath"
)

var (
	ErrAnchorOutOfRange = errors.New("anchor references a missing control point")
	ErrDuplicateSlot    = errors.New("duplicate checkpoint slot")
	ErrSlotGap          = errors.New("checkpoint slots must be contiguous from 0")
	ErrUnknownBody      = errors.New("anchor body is not in the body list")
	ErrUnanchoredBody   = errors.New("body has no anchor")
	ErrWelcomeAnchor    = errors.New("slot 0 must be the welcome anchor with no body")
)

// Anchor is an authored checkpoint location: a fixed offset from one of the
// curve's control points plus a fixed label rotation.
type Anchor struct {
	Slot         int            `yaml:"slot"`
	Body         string         `yaml:"body,omitempty"` // empty for the welcome checkpoint
	ControlPoint int            `yaml:"controlPoint"`
	Offset       gamemath.Vec3  `yaml:"offset"`
	Rotation     gamemath.Euler `yaml:"rotation"`
}

// Position resolves the anchor against the route's control points.
func (a Anchor) Position(controlPoints []gamemath.Vec3) (gamemath.Vec3, error) {
	if a.ControlPoint < 0 || a.ControlPoint >= len(controlPoints) {
		return gamemath.Vec3{}, fmt.Errorf("%w: slot %d wants point %d of %d",
			ErrAnchorOutOfRange, a.Slot, a.ControlPoint, len(controlPoints))
	}
	return controlPoints[a.ControlPoint].Add(a.Offset), nil
}

// ValidateAnchors checks that anchors form slots 0..n-1, slot 0 is the welcome
// anchor and every body maps to exactly one slot.
func ValidateAnchors(anchors []Anchor, bodies []string, controlPoints int) error {
	slots := make(map[int]Anchor, len(anchors))
	anchored := make(map[string]int, len(bodies))
	known := make(map[string]bool, len(bodies))
	for _, b := range bodies {
		known[b] = true
	}

	for _, a := range anchors {
		if _, dup := slots[a.Slot]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateSlot, a.Slot)
		}
		slots[a.Slot] = a

		if a.ControlPoint < 0 || a.ControlPoint >= controlPoints {
			return fmt.Errorf("%w: slot %d wants point %d of %d",
				ErrAnchorOutOfRange, a.Slot, a.ControlPoint, controlPoints)
		}
		if a.Body == "" {
			continue
		}
		if !known[a.Body] {
			return fmt.Errorf("%w: %q", ErrUnknownBody, a.Body)
		}
		if prev, dup := anchored[a.Body]; dup {
			return fmt.Errorf("%w: %q at slots %d and %d", ErrDuplicateSlot, a.Body, prev, a.Slot)
		}
		anchored[a.Body] = a.Slot
	}

	for i := range anchors {
		if _, ok := slots[i]; !ok {
			return fmt.Errorf("%w: slot %d missing", ErrSlotGap, i)
		}
	}
	if w, ok := slots[0]; !ok || w.Body != "" {
		return ErrWelcomeAnchor
	}
	for _, b := range bodies {
		if _, ok := anchored[b]; !ok {
			return fmt.Errorf("%w: %q", ErrUnanchoredBody, b)
		}
	}
	return nil
}
