package detection

import (
	"sort"

	"github.com/sonarlab/sonarseg/internal/segment"
	"github.com/sonarlab/sonarseg/internal/sonar"
)

// RegionGrower is the region-growing collaborator driven once per peak.
// Package segment provides the production implementation; tests
// substitute fakes.
type RegionGrower interface {
	// SetThreshold configures the absolute acceptance intensity for
	// subsequent Grow calls.
	SetThreshold(threshold int)

	// Grow flood-fills from the seed into dst, marking visited pixels
	// in the shared mask and respecting pixels already claimed by
	// earlier calls of the same pass.
	Grow(dst *segment.Segment, f *sonar.Frame, seedRow, seedCol int)
}

// SegmentSource owns the visitation mask and the pooled segment slots.
type SegmentSource interface {
	// ResetMask starts a new pass: all visitation state is cleared.
	// Called exactly once per frame, never between peaks.
	ResetMask(rows, cols int)

	// Segment returns the reusable slot for an accepted-segment index.
	Segment(index int) *segment.Segment
}

// SegmentObserver receives the outcome of every region-growing attempt,
// accepted or not. Debug-only; a nil observer costs nothing.
type SegmentObserver interface {
	Segment(rec PeakRecord, seg *segment.Segment, accepted bool)
}

// Segmenter turns a sonar frame into a filtered list of segments. It
// runs the beam peak scan, orders the peaks, and drives the region
// grower over the shared mask.
//
// Segmenter is single-threaded by design: every Grow call mutates the
// shared visitation mask and the processing order determines which peak
// claims contested pixels, so the peak loop must never run concurrently.
type Segmenter struct {
	Params Params
	Grower RegionGrower
	Source SegmentSource

	// Optional debug hooks; leave nil in production.
	ScanObserver    ScanObserver
	SegmentObserver SegmentObserver
}

// Segment runs one full pass over the frame and returns the accepted
// segments in acceptance order.
//
// Peaks are processed in ascending extraction-threshold order: a weak
// peak has a wide acceptance band, and letting it claim its full
// territory first prevents stronger peaks from carving one object into
// several segments. Ties are broken by discovery order, which keeps the
// pass deterministic.
//
// Pool slots are indexed by the accepted count, not the loop index, so
// a rejected candidate's slot is simply reused by the next peak. The
// pixels a rejected candidate visited stay marked in the mask; later
// peaks do not reclaim them.
func (s *Segmenter) Segment(f *sonar.Frame) ([]*segment.Segment, error) {
	peaks, err := ScanFrame(f, s.Params, s.ScanObserver)
	if err != nil {
		return nil, err
	}

	s.Source.ResetMask(f.Rows(), f.Cols())
	SortPeaks(peaks)

	accepted := make([]*segment.Segment, 0, len(peaks))
	count := 0

	for _, rec := range peaks {
		seg := s.Source.Segment(count)

		s.Grower.SetThreshold(rec.Threshold)
		s.Grower.Grow(seg, f, int(rec.Y), int(rec.X))

		ok := seg.PixelCount() >= s.Params.MinSampleSize
		if ok {
			accepted = append(accepted, seg)
			count++
		}

		if s.SegmentObserver != nil {
			s.SegmentObserver.Segment(rec, seg, ok)
		}
	}

	return accepted, nil
}

// SortPeaks orders records ascending by extraction threshold, breaking
// ties by sequence id. The sort is what makes segmentation output
// independent of beam traversal details.
func SortPeaks(peaks []PeakRecord) {
	sort.Slice(peaks, func(i, j int) bool {
		if peaks[i].Threshold != peaks[j].Threshold {
			return peaks[i].Threshold < peaks[j].Threshold
		}
		return peaks[i].Seq < peaks[j].Seq
	})
}
