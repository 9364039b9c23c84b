package guidance

import (
	"testing"

	"github.com/lintang-b-s/navigatorx-junction/pkg/geo"
	"github.com/lintang-b-s/navigatorx-junction/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestGetTurnDirection(t *testing.T) {
	from := geo.NewCoordinate(-7.7700, 110.3700)
	via := geo.NewCoordinate(-7.7700, 110.3710) // heading east

	testCases := []struct {
		name string
		to   geo.Coordinate
		want TurnDirection
	}{
		{
			name: "continue east",
			to:   geo.NewCoordinate(-7.7700, 110.3720),
			want: CONTINUE_ON_STREET,
		},
		{
			name: "turn north is a left turn",
			to:   geo.NewCoordinate(-7.7690, 110.3710),
			want: TURN_LEFT,
		},
		{
			name: "turn south is a right turn",
			to:   geo.NewCoordinate(-7.7710, 110.3710),
			want: TURN_RIGHT,
		},
		{
			name: "slight right",
			to:   geo.NewCoordinate(-7.7703, 110.3720),
			want: TURN_SLIGHT_RIGHT,
		},
		{
			name: "sharp left back towards the west",
			to:   geo.NewCoordinate(-7.7697, 110.3705),
			want: TURN_SHARP_LEFT,
		},
		{
			name: "degenerate edge",
			to:   via,
			want: UNKNOWN,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetTurnDirection(from, via, tt.to))
		})
	}
}

func TestAlignInitialBearing(t *testing.T) {
	prev, curr := alignInitialBearing(util.DegreeToRadians(20), util.DegreeToRadians(350))
	assert.InDelta(t, -30.0, util.RadiansToDegree(curr-prev), 1e-9)

	prev, curr = alignInitialBearing(util.DegreeToRadians(340), util.DegreeToRadians(10))
	assert.InDelta(t, 30.0, util.RadiansToDegree(curr-prev), 1e-9)
}
