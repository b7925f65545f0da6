// Package detection implements peak-driven segmentation of polar
// acoustic frames.
//
// Objects reflect acoustic energy far better than the background, so
// they show up as localized high-intensity patches in a sonar image.
// Detection follows the image formation process: each beam of the polar
// sweep is scanned bin by bin, a sliding-window mean tracks the local
// background level, and contiguous runs of bins rising more than Hmin
// above that mean are recorded as intensity peaks. Peaks from every beam
// are then handed to a region-growing collaborator in ascending order of
// extraction threshold, so wide-acceptance peaks claim their territory
// before narrow ones. That ordering is what keeps a single physical
// object from fragmenting into several segments.
//
// # Pipeline
//
//  1. Beam scan: one Window and one run state per beam, zero or more
//     PeakRecords emitted per beam (ScanFrame)
//  2. Ordering: all records sorted ascending by extraction threshold,
//     ties broken by discovery order
//  3. Region growing: one Grow call per record against the shared
//     visitation mask, minimum-size filter on the result (Segmenter)
//
// The package owns the scan loop and the ordering policy. The actual
// region growing, the shared visitation mask and the segment pool live
// behind the RegionGrower and SegmentSource interfaces; package segment
// provides the production implementations.
//
// # Coordinate System
//
// Frames use image coordinates: origin at top-left, X (columns)
// rightward, Y (rows) downward. The sonar sits at the bottom-center of
// the frame, so beam direction vectors have negative Y components and
// range bins advance upward through the image.
//
// # Determinism
//
// A frame, a parameter set and a freshly reset mask always produce the
// same ordered segment list: beam positions are computed closed-form per
// (beam, bin), peak ordering breaks threshold ties by discovery order,
// and segmentation is strictly sequential over the shared mask state.
// Beam scanning itself has no cross-beam data dependency, but results
// are fully collected before ordering begins, so parallelizing the scan
// would not change the output.
package detection
