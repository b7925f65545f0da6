// Package render provides debug-only instrumentation and visualization
// for the segmentation pipeline: an observer that captures scan
// internals, a segment overlay image, and a beam profile chart.
//
// Nothing here is required for correctness. The pipeline invokes the
// hooks when they are wired and behaves identically when they are not;
// production runs leave all of it nil.
package render

import (
	"github.com/sonarlab/sonarseg/internal/detection"
	"github.com/sonarlab/sonarseg/internal/segment"
)

// BinSample is one bin of the profiled beam: raw intensity and the
// local mean in effect when it was visited.
type BinSample struct {
	Bin       int
	Intensity int
	Mean      int
}

// PeakMark records where a run closed on the profiled beam. ClosedBin
// is the bin that ended the run, not the peak's strongest bin; the
// chart marks the extraction threshold at that point.
type PeakMark struct {
	ClosedBin int
	Record    detection.PeakRecord
}

// SegmentOutcome records one region-growing attempt.
type SegmentOutcome struct {
	Record     detection.PeakRecord
	PixelCount int
	Accepted   bool
}

// Collector implements the pipeline's observer hooks and accumulates
// artifacts for one frame: the bin profile of a single chosen beam, all
// peaks found on it, and the outcome of every region-growing attempt.
//
// The collector is stateful. Run a frame, read the fields, then Reset
// before the next frame. A disabled collector records nothing, so it
// can stay wired while idle.
type Collector struct {
	enabled     bool
	profileBeam int
	lastBin     int

	Profile  []BinSample
	Peaks    []PeakMark
	Outcomes []SegmentOutcome
	Accepted []*segment.Segment
}

// NewCollector creates an enabled collector that profiles the given
// beam index. Peaks and segment outcomes are captured for every beam
// regardless.
func NewCollector(profileBeam int) *Collector {
	return &Collector{enabled: true, profileBeam: profileBeam}
}

// SetEnabled toggles collection without unwiring the hooks.
func (c *Collector) SetEnabled(enabled bool) { c.enabled = enabled }

// ProfileBeam returns the beam index being profiled.
func (c *Collector) ProfileBeam() int { return c.profileBeam }

// Bin implements detection.ScanObserver.
func (c *Collector) Bin(beam, bin, intensity, mean int) {
	if !c.enabled || beam != c.profileBeam {
		return
	}
	c.lastBin = bin
	c.Profile = append(c.Profile, BinSample{Bin: bin, Intensity: intensity, Mean: mean})
}

// Peak implements detection.ScanObserver.
func (c *Collector) Peak(beam int, rec detection.PeakRecord) {
	if !c.enabled || beam != c.profileBeam {
		return
	}
	c.Peaks = append(c.Peaks, PeakMark{ClosedBin: c.lastBin, Record: rec})
}

// Segment implements detection.SegmentObserver. Accepted segments are
// retained by pointer; their pool slots are not reused within the pass,
// so the pointers stay valid until the next frame.
func (c *Collector) Segment(rec detection.PeakRecord, seg *segment.Segment, accepted bool) {
	if !c.enabled {
		return
	}
	c.Outcomes = append(c.Outcomes, SegmentOutcome{
		Record:     rec,
		PixelCount: seg.PixelCount(),
		Accepted:   accepted,
	})
	if accepted {
		c.Accepted = append(c.Accepted, seg)
	}
}

// Reset drops all captured artifacts, keeping the profile beam and
// enabled state.
func (c *Collector) Reset() {
	c.lastBin = 0
	c.Profile = nil
	c.Peaks = nil
	c.Outcomes = nil
	c.Accepted = nil
}
