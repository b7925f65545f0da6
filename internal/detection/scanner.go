package detection

import (
	"fmt"

	"github.com/sonarlab/sonarseg/internal/sonar"
)

// PeakRecord describes one detected intensity peak: a contiguous run of
// bins along a single beam that rose more than Hmin above the local
// mean. Records are immutable once emitted.
type PeakRecord struct {
	// Threshold is the absolute intensity handed to region growing:
	// the local mean at the bin where the run ended plus the smallest
	// peak height observed inside the run. Taking the weakest point
	// keeps the acceptance threshold loose enough to capture the whole
	// object, not just its brightest core.
	Threshold int

	// X, Y is the image-plane position of the strongest bin of the run,
	// used as the region-growing seed.
	X, Y float64

	// Seq is the discovery order across the whole frame. It breaks
	// threshold ties during ordering so results stay deterministic.
	Seq uint32
}

// ScanObserver receives scan internals for debugging and calibration
// tooling. Implementations must not retain the arguments beyond the
// call. A nil observer skips all collection; the scan result never
// depends on an observer being present.
type ScanObserver interface {
	// Bin is invoked once per visited bin with the raw intensity and
	// the local mean in effect at that bin.
	Bin(beam, bin, intensity, mean int)

	// Peak is invoked once per emitted record, at the bin that closed
	// the run.
	Peak(beam int, rec PeakRecord)
}

// runState is the per-beam peak tracking state machine. Its two states
// are Idle (inPeak false) and InPeak; it lives for one beam scan and is
// reset at the start of the next.
//
// Max and min trackers are independent: the max only moves up, the min
// only moves down, neither resets while the run is open. At close they
// describe the strongest and weakest points of the whole run.
type runState struct {
	inPeak       bool
	maxHeight    int
	maxHeightBin int
	minHeight    int
	minHeightBin int
}

// observe feeds one bin's peak height into the state machine and
// returns true when this bin closed an active run. The tracker fields
// still describe the closed run at that point; the caller emits the
// record and then calls reset.
func (r *runState) observe(bin, height, hmin int) (closed bool) {
	if height > hmin {
		if !r.inPeak {
			// Idle -> InPeak: both trackers start at this bin.
			r.inPeak = true
			r.maxHeight, r.minHeight = height, height
			r.maxHeightBin, r.minHeightBin = bin, bin
			return false
		}
		if height > r.maxHeight {
			r.maxHeight = height
			r.maxHeightBin = bin
		} else if height < r.minHeight {
			r.minHeight = height
			r.minHeightBin = bin
		}
		return false
	}
	if r.inPeak {
		r.inPeak = false
		return true
	}
	return false
}

// reset clears the trackers after an emitted record.
func (r *runState) reset() {
	r.inPeak = false
	r.maxHeight, r.maxHeightBin = 0, -1
	r.minHeight, r.minHeightBin = 0, -1
}

// ScanFrame runs the beam peak scanner over every beam of the sweep and
// returns the detected peaks in discovery order.
//
// Each beam is traced from StartBin to the image edge. At every bin the
// local mean is read from the sliding window, the peak height is the
// raw intensity minus that mean, and runs of bins with height above
// Hmin become PeakRecords when they close. Two details carry the
// detection quality and are deliberate:
//
//   - Bins inside an active run are never pushed into the window, so a
//     peak cannot inflate its own baseline and hide its trailing edge.
//   - A run still open when the beam reaches the image edge emits
//     nothing. Such a run has no trailing edge to measure a closing
//     mean at; dropping it matches the acquisition-side behavior.
//
// The precondition f.Rows() > StartBin must hold, otherwise the bin
// count would underflow; this is reported as an error, not a panic.
func ScanFrame(f *sonar.Frame, p Params, obs ScanObserver) ([]PeakRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if f.Rows() <= p.StartBin {
		return nil, fmt.Errorf("frame rows (%d) must exceed start bin (%d)", f.Rows(), p.StartBin)
	}

	nBins := f.Rows() - p.StartBin
	sweep := p.Geometry.Sweep(f.Rows(), f.Cols())
	win := NewWindow(p.MeanWindow)

	// Typical frames yield a few hundred to a few thousand peaks.
	peaks := make([]PeakRecord, 0, 3000)

	for beam := 0; beam < p.Beams; beam++ {
		scanBeam(f, sweep.Beam(beam), beam, nBins, p.Hmin, win, &peaks, obs)
	}
	return peaks, nil
}

// scanBeam scans a single beam, appending emitted records to peaks.
// The window is cleared on entry, so the caller may reuse one window
// across beams.
func scanBeam(f *sonar.Frame, b Beam, beam, nBins, hmin int, win *Window, peaks *[]PeakRecord, obs ScanObserver) {
	win.Clear()
	var run runState
	run.reset()

	for bin := 0; bin < nBins; bin++ {
		// Sampling is one step ahead of the bin index, mirroring the
		// acquisition loop's pre-increment. Seeds below use At(bin)
		// unchanged; the one-step skew is part of the calibrated
		// geometry.
		x, y := b.At(bin + 1)
		intensity := int(f.AtPoint(x, y))
		mean := win.Mean()

		if obs != nil {
			obs.Bin(beam, bin, intensity, mean)
		}

		if run.observe(bin, intensity-mean, hmin) {
			sx, sy := b.At(run.maxHeightBin)
			rec := PeakRecord{
				Threshold: mean + run.minHeight,
				X:         sx,
				Y:         sy,
				Seq:       uint32(len(*peaks)),
			}
			*peaks = append(*peaks, rec)
			run.reset()

			if obs != nil {
				obs.Peak(beam, rec)
			}
		}

		// Only idle bins feed the background mean.
		if !run.inPeak {
			win.Push(intensity)
		}
	}
}
