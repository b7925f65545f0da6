package detection

import "math"

// Geometry describes the polar sweep used to trace beams over a frame:
// how many beams, the angular span they cover, where sampling starts
// along each beam, and where the sonar sits relative to the image.
type Geometry struct {
	// Beams is the number of rays swept across the bearing.
	Beams int

	// BearingDeg is the total angular span of the fan in degrees.
	BearingDeg float64

	// StartBin is the number of range bins skipped at the start of each
	// beam (the near-field region next to the transducer is unusable).
	StartBin int

	// VerticalOffset shifts the sonar origin below the bottom edge of
	// the image, in pixels.
	VerticalOffset int
}

// Sweep binds a Geometry to concrete frame dimensions. It precomputes
// the origin and angular increment so that beam positions are a pure
// function of (beam, bin).
type Sweep struct {
	geom     Geometry
	originX  float64
	originY  float64
	startRad float64
	radInc   float64
}

// Sweep derives the concrete sweep for a rows-by-cols frame.
//
// The sonar origin is the bottom-center of the image:
// (cols/2, rows+VerticalOffset). Beam angles run linearly from
// -bearing/2 to +bearing/2. With a single beam the angular increment
// degenerates to twice the bearing; the sweep never advances past beam
// 0 in that case, so the value only has to be safe, not meaningful.
func (g Geometry) Sweep(rows, cols int) Sweep {
	radBearing := g.BearingDeg * math.Pi / 180

	var inc float64
	if g.Beams > 1 {
		inc = radBearing / float64(g.Beams-1)
	} else {
		inc = 2 * radBearing
	}

	return Sweep{
		geom:     g,
		originX:  float64(cols) / 2,
		originY:  float64(rows) + float64(g.VerticalOffset),
		startRad: -radBearing / 2,
		radInc:   inc,
	}
}

// Beam is one ray of the sweep: a start position (the StartBin-th range
// bin) and a unit direction vector pointing away from the sonar.
type Beam struct {
	StartX, StartY float64
	DirX, DirY     float64
}

// Beam returns the ray for the given beam index.
func (s Sweep) Beam(i int) Beam {
	rad := s.startRad + s.radInc*float64(i)
	sin, cos := math.Sin(rad), math.Cos(rad)

	// Direction (-sin, -cos): beams point up through the image.
	dirX, dirY := -sin, -cos
	start := float64(s.geom.StartBin)

	return Beam{
		StartX: s.originX + start*dirX,
		StartY: s.originY + start*dirY,
		DirX:   dirX,
		DirY:   dirY,
	}
}

// At returns the image-plane position k steps along the beam from its
// start. The same (beam, k) always yields the same floating-point
// position; peak seeds feed directly into region growing, so the
// mapping must be bit-for-bit reproducible.
func (b Beam) At(k int) (x, y float64) {
	return b.StartX + float64(k)*b.DirX, b.StartY + float64(k)*b.DirY
}
