// Package segment provides the region-growing side of the segmentation
// pipeline: the Segment container, the per-frame visitation mask with
// its pooled segment slots, and the flood-fill Extractor that grows a
// segment from a peak seed.
//
// # Acceptance Rule
//
// Growth is an 8-connected breadth-first fill. A pixel joins the
// segment when its intensity exceeds the configured threshold, or, to
// counter fragmentation, when it lies within a small chain distance
// (the search distance, D_seg) of an above-threshold pixel even though
// its own intensity falls short. High-intensity patches belonging to
// one physical object are frequently split by low-intensity pixels from
// noise or acoustic shadow; bridging short gaps keeps them as one
// segment.
//
// # Mask Lifecycle
//
// The visitation mask spans one full segmentation pass over a frame.
// It is reset exactly once, at the start of the pass, and every Grow
// call in that pass writes into it: pixels claimed or even just
// examined by an earlier peak are never re-entered by a later one.
// That includes the pixels of segments that end up below the minimum
// size and are discarded, which is deliberate: known-noise regions are
// not worth re-exploring, at the cost of occasionally losing a small
// object that overlaps a rejected run.
package segment
