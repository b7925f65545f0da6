package detection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepOriginBottomCenter(t *testing.T) {
	g := Geometry{Beams: 720, BearingDeg: 130, StartBin: 20, VerticalOffset: 1}
	s := g.Sweep(400, 601)

	assert.Equal(t, 300.5, s.originX)
	assert.Equal(t, 401.0, s.originY)
}

func TestSweepAngularIncrement(t *testing.T) {
	g := Geometry{Beams: 3, BearingDeg: 90, StartBin: 0}
	s := g.Sweep(100, 100)

	// Three beams spread over 90 degrees: -45, 0, +45.
	b0 := s.Beam(0)
	b1 := s.Beam(1)
	b2 := s.Beam(2)

	// Direction is (-sin θ, -cos θ), so the -45 degree beam leans right.
	assert.InDelta(t, math.Sin(math.Pi/4), b0.DirX, 1e-12, "first beam at -bearing/2")
	assert.InDelta(t, 0, b1.DirX, 1e-12, "middle beam straight up")
	assert.InDelta(t, -1, b1.DirY, 1e-12)
	assert.InDelta(t, -math.Sin(math.Pi/4), b2.DirX, 1e-12, "last beam at +bearing/2")
}

func TestSweepSingleBeamNoDivisionByZero(t *testing.T) {
	g := Geometry{Beams: 1, BearingDeg: 130, StartBin: 0}
	s := g.Sweep(100, 100)

	// The degenerate increment is twice the bearing; beam 0 must still
	// sit at -bearing/2.
	radBearing := 130 * math.Pi / 180
	assert.InDelta(t, 2*radBearing, s.radInc, 1e-12)

	b := s.Beam(0)
	assert.InDelta(t, -math.Sin(-radBearing/2), b.DirX, 1e-12)
	assert.False(t, math.IsNaN(b.DirX))
	assert.False(t, math.IsInf(s.radInc, 0))
}

func TestBeamAtStartOffset(t *testing.T) {
	g := Geometry{Beams: 1, BearingDeg: 0.0001, StartBin: 20, VerticalOffset: 1}
	s := g.Sweep(100, 200)
	b := s.Beam(0)

	// At(0) is the start-bin position: origin + 20 steps along the beam.
	x, y := b.At(0)
	assert.InDelta(t, s.originX+20*b.DirX, x, 1e-12)
	assert.InDelta(t, s.originY+20*b.DirY, y, 1e-12)

	// One step along an (almost) vertical beam moves one row up.
	x1, y1 := b.At(1)
	assert.InDelta(t, y-1, y1, 1e-6)
	assert.InDelta(t, x, x1, 1e-3)
}

func TestBeamPositionsReproducible(t *testing.T) {
	g := Geometry{Beams: 720, BearingDeg: 130, StartBin: 20, VerticalOffset: 1}

	s1 := g.Sweep(480, 640)
	s2 := g.Sweep(480, 640)

	for _, beam := range []int{0, 1, 359, 719} {
		b1 := s1.Beam(beam)
		b2 := s2.Beam(beam)
		for _, bin := range []int{0, 1, 100, 459} {
			x1, y1 := b1.At(bin)
			x2, y2 := b2.At(bin)
			// Bit-for-bit: peak seeds feed region growing directly.
			require.Equal(t, x1, x2)
			require.Equal(t, y1, y2)
		}
	}
}
