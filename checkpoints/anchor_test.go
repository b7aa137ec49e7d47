package checkpoints

import (
	"testing"

	"github.com/automoto/solar-ride/skydata"
	"github.com/stretchr/testify/require"
)

func TestValidateAnchors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Anchor) []Anchor
		want   error
	}{
		{"valid", func(a []Anchor) []Anchor { return a }, nil},
		{"duplicate slot", func(a []Anchor) []Anchor { a[2].Slot = 1; return a }, ErrDuplicateSlot},
		{"gap", func(a []Anchor) []Anchor { a[8].Slot = 12; return a }, ErrSlotGap},
		{"point out of range", func(a []Anchor) []Anchor { a[3].ControlPoint = 10; return a }, ErrAnchorOutOfRange},
		{"unknown body", func(a []Anchor) []Anchor { a[4].Body = "pluton"; return a }, ErrUnknownBody},
		{"welcome has body", func(a []Anchor) []Anchor { a[0].Body = "mars"; return a }, ErrDuplicateSlot},
		{"body without anchor", func(a []Anchor) []Anchor { return a[:8] }, ErrUnanchoredBody},
		{"empty", func(a []Anchor) []Anchor { return nil }, ErrWelcomeAnchor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnchors(tt.mutate(testAnchors()), skydata.BodyIDs, len(testControlPoints))
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAnchorPositionOutOfRange(t *testing.T) {
	_, err := Anchor{Slot: 3, ControlPoint: -1}.Position(testControlPoints)
	require.ErrorIs(t, err, ErrAnchorOutOfRange)
}
