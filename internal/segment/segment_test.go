package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentAddWidensBoundingBox(t *testing.T) {
	var s Segment
	s.Add(5, 7, 100)
	assert.Equal(t, 5, s.MinRow)
	assert.Equal(t, 5, s.MaxRow)
	assert.Equal(t, 7, s.MinCol)
	assert.Equal(t, 7, s.MaxCol)

	s.Add(2, 9, 110)
	s.Add(8, 3, 120)
	assert.Equal(t, 2, s.MinRow)
	assert.Equal(t, 8, s.MaxRow)
	assert.Equal(t, 3, s.MinCol)
	assert.Equal(t, 9, s.MaxCol)
	assert.Equal(t, 3, s.PixelCount())
}

func TestSegmentResetKeepsCapacity(t *testing.T) {
	var s Segment
	for i := 0; i < 100; i++ {
		s.Add(i, i, uint16(i))
	}
	pixelCap := cap(s.Pixels)

	s.Reset()
	assert.Equal(t, 0, s.PixelCount())
	assert.Equal(t, pixelCap, cap(s.Pixels), "reset reuses pixel storage")

	// The bounding box restarts from the first pixel after a reset.
	s.Add(4, 4, 1)
	assert.Equal(t, 4, s.MinRow)
	assert.Equal(t, 4, s.MaxRow)
}

func TestSegmentStats(t *testing.T) {
	var s Segment
	s.Add(0, 0, 10)
	s.Add(0, 2, 20)
	s.Add(2, 0, 30)
	s.Add(2, 2, 40)

	st := s.Stats()
	assert.InDelta(t, 1.0, st.CentroidRow, 1e-12)
	assert.InDelta(t, 1.0, st.CentroidCol, 1e-12)
	assert.InDelta(t, 25.0, st.MeanIntensity, 1e-12)
	// Sample standard deviation of {10,20,30,40}.
	assert.InDelta(t, 12.909944487358056, st.StdDevIntensity, 1e-9)
}

func TestSegmentStatsEmpty(t *testing.T) {
	var s Segment
	assert.Equal(t, Stats{}, s.Stats())
}

func TestSegmentStatsSinglePixel(t *testing.T) {
	var s Segment
	s.Add(3, 4, 77)

	st := s.Stats()
	assert.Equal(t, 3.0, st.CentroidRow)
	assert.Equal(t, 4.0, st.CentroidCol)
	assert.Equal(t, 77.0, st.MeanIntensity)
	assert.Equal(t, 0.0, st.StdDevIntensity, "stddev is defined as 0 for one sample")
}
