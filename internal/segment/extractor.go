package segment

import (
	"github.com/sonarlab/sonarseg/internal/sonar"
)

// DefaultSearchDistance is the default D_seg: how many below-threshold
// pixels in a row the fill may bridge before giving up on a direction.
const DefaultSearchDistance = 2

// Extractor grows segments by 8-connected breadth-first flood fill over
// the frame, writing every examined pixel into the shared visitation
// mask. One Extractor serves a whole segmentation pass; the driver
// adjusts the threshold per peak via SetThreshold.
//
// Extractor is not safe for concurrent use: Grow mutates the shared
// mask, and segmentation order over that mask is load-bearing.
type Extractor struct {
	mask           *Mask
	threshold      int
	searchDistance int
}

// NewExtractor creates an extractor over the given mask.
// searchDistance is the D_seg bridging distance in pixels; negative
// values are treated as 0 (no bridging, pure thresholding).
func NewExtractor(mask *Mask, searchDistance int) *Extractor {
	if searchDistance < 0 {
		searchDistance = 0
	}
	return &Extractor{mask: mask, searchDistance: searchDistance}
}

// SetThreshold sets the absolute intensity a pixel must exceed to join
// the segment directly. The segmentation driver derives it per peak
// from the peak's extraction threshold.
func (e *Extractor) SetThreshold(threshold int) {
	e.threshold = threshold
}

// growNode is one BFS queue entry. gap counts consecutive
// below-threshold pixels on the path from the nearest above-threshold
// pixel; an above-threshold pixel resets it to zero.
type growNode struct {
	row, col int
	gap      int
}

// Grow flood-fills from the seed into dst. dst is reset first, so a
// rejected or out-of-mask seed leaves it with a pixel count of 0.
//
// Rules, applied when a node is dequeued:
//   - already-visited pixels are skipped; everything dequeued past that
//     point is marked visited, members and examined rejects alike;
//   - intensity above the threshold: the pixel joins the segment and
//     its 8 neighbors are enqueued with gap 0;
//   - intensity at or below the threshold with gap < D_seg: the pixel
//     joins as a bridge and neighbors are enqueued with gap+1;
//   - otherwise the pixel is a dead end: marked, not added, not
//     expanded.
//
// The seed follows the same rules as any other pixel. Seeds sit on the
// strongest bin of their peak run, so a seed that fails its own
// threshold means the territory was already claimed by an earlier,
// lower-threshold peak.
func (e *Extractor) Grow(dst *Segment, f *sonar.Frame, seedRow, seedCol int) {
	dst.Reset()

	if e.mask.Visited(seedRow, seedCol) {
		return
	}

	queue := []growNode{{row: seedRow, col: seedCol}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if e.mask.Visited(n.row, n.col) {
			continue
		}
		e.mask.Visit(n.row, n.col)

		intensity := f.At(n.row, n.col)

		nextGap := 0
		if int(intensity) <= e.threshold {
			if n.gap >= e.searchDistance {
				continue
			}
			nextGap = n.gap + 1
		}

		dst.Add(n.row, n.col, intensity)

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				r, c := n.row+dr, n.col+dc
				if !e.mask.Visited(r, c) {
					queue = append(queue, growNode{row: r, col: c, gap: nextGap})
				}
			}
		}
	}
}
