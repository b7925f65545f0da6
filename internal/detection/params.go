package detection

import "fmt"

// Params controls the peak search and the segmentation pass.
type Params struct {
	// Geometry of the polar sweep.
	Geometry

	// Hmin is the minimum height above the local mean, in intensity
	// units, for a bin to start or continue a peak run.
	Hmin int

	// MeanWindow is the sliding-window size, in bins, for the local
	// background mean. 0 disables averaging (mean is always 0).
	MeanWindow int

	// MinSampleSize is the minimum pixel count for a grown segment to
	// be accepted. Smaller segments are discarded silently.
	MinSampleSize int
}

// DefaultParams returns the compiled-in defaults, tuned for a 720-beam
// forward-looking sonar with a 130 degree fan.
func DefaultParams() Params {
	return Params{
		Geometry: Geometry{
			Beams:          720,
			BearingDeg:     130,
			StartBin:       20,
			VerticalOffset: 1,
		},
		Hmin:          110,
		MeanWindow:    5,
		MinSampleSize: 10,
	}
}

// Validate reports the first parameter that violates the pipeline's
// preconditions. Degenerate values that have defined behavior (a single
// beam, a zero-size window) pass validation.
func (p Params) Validate() error {
	if p.Beams < 0 {
		return fmt.Errorf("beam count must be non-negative, got %d", p.Beams)
	}
	if p.StartBin < 0 {
		return fmt.Errorf("start bin must be non-negative, got %d", p.StartBin)
	}
	if p.BearingDeg <= 0 {
		return fmt.Errorf("bearing must be positive, got %g", p.BearingDeg)
	}
	if p.MeanWindow < 0 {
		return fmt.Errorf("mean window size must be non-negative, got %d", p.MeanWindow)
	}
	if p.MinSampleSize < 0 {
		return fmt.Errorf("minimum sample size must be non-negative, got %d", p.MinSampleSize)
	}
	return nil
}
