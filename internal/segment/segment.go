package segment

import "gonum.org/v1/gonum/stat"

// Pixel is one frame coordinate claimed by a segment.
type Pixel struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Segment is a grown pixel region. Instances are pooled and reused
// across frames; Grow resets the receiver before populating it.
type Segment struct {
	// Pixels is the membership in visit order. The first pixel is the
	// region-growing seed.
	Pixels []Pixel

	// Intensities holds the frame sample for each pixel, parallel to
	// Pixels.
	Intensities []uint16

	// Bounding box, inclusive on both ends. Valid when PixelCount > 0.
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// Reset empties the segment for reuse, keeping allocated capacity.
func (s *Segment) Reset() {
	s.Pixels = s.Pixels[:0]
	s.Intensities = s.Intensities[:0]
	s.MinRow, s.MinCol = 0, 0
	s.MaxRow, s.MaxCol = 0, 0
}

// Add appends a pixel and widens the bounding box.
func (s *Segment) Add(row, col int, intensity uint16) {
	if len(s.Pixels) == 0 {
		s.MinRow, s.MaxRow = row, row
		s.MinCol, s.MaxCol = col, col
	} else {
		if row < s.MinRow {
			s.MinRow = row
		}
		if row > s.MaxRow {
			s.MaxRow = row
		}
		if col < s.MinCol {
			s.MinCol = col
		}
		if col > s.MaxCol {
			s.MaxCol = col
		}
	}
	s.Pixels = append(s.Pixels, Pixel{Row: row, Col: col})
	s.Intensities = append(s.Intensities, intensity)
}

// PixelCount returns the number of pixels in the segment. The
// segmentation driver compares this against the minimum sample size.
func (s *Segment) PixelCount() int { return len(s.Pixels) }

// Stats summarizes a segment for classification and reporting.
type Stats struct {
	// CentroidRow, CentroidCol is the unweighted pixel centroid.
	CentroidRow float64 `json:"centroid_row"`
	CentroidCol float64 `json:"centroid_col"`

	// MeanIntensity and StdDevIntensity describe the sample
	// distribution over the segment's pixels.
	MeanIntensity   float64 `json:"mean_intensity"`
	StdDevIntensity float64 `json:"stddev_intensity"`
}

// Stats computes summary statistics over the segment's pixels.
// Returns the zero value for an empty segment.
func (s *Segment) Stats() Stats {
	n := len(s.Pixels)
	if n == 0 {
		return Stats{}
	}

	var sumRow, sumCol float64
	values := make([]float64, n)
	for i, p := range s.Pixels {
		sumRow += float64(p.Row)
		sumCol += float64(p.Col)
		values[i] = float64(s.Intensities[i])
	}

	mean, std := stat.MeanStdDev(values, nil)
	if n == 1 {
		std = 0 // sample stddev is undefined for a single pixel
	}

	return Stats{
		CentroidRow:     sumRow / float64(n),
		CentroidCol:     sumCol / float64(n),
		MeanIntensity:   mean,
		StdDevIntensity: std,
	}
}
