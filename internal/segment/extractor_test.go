package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonarlab/sonarseg/internal/sonar"
)

func frameFromRows(t *testing.T, rows [][]uint16) *sonar.Frame {
	t.Helper()

	nr, nc := len(rows), len(rows[0])
	samples := make([]uint16, 0, nr*nc)
	for _, r := range rows {
		require.Len(t, r, nc)
		samples = append(samples, r...)
	}
	f, err := sonar.NewFrame(nr, nc, samples)
	require.NoError(t, err)
	return f
}

func pixelSet(s *Segment) map[Pixel]bool {
	set := make(map[Pixel]bool, len(s.Pixels))
	for _, p := range s.Pixels {
		set[p] = true
	}
	return set
}

func TestGrowFillsConnectedRegion(t *testing.T) {
	f := frameFromRows(t, [][]uint16{
		{0, 0, 0, 0, 0},
		{0, 9, 9, 0, 0},
		{0, 9, 9, 0, 0},
		{0, 0, 0, 0, 0},
	})

	var mask Mask
	mask.Reset(f.Rows(), f.Cols())
	e := NewExtractor(&mask, 0)
	e.SetThreshold(5)

	var seg Segment
	e.Grow(&seg, f, 1, 1)

	set := pixelSet(&seg)
	for _, want := range []Pixel{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		assert.True(t, set[want], "missing %v", want)
	}
	assert.Equal(t, 4, seg.PixelCount(), "no bridging at distance 0")
	assert.Equal(t, 1, seg.MinRow)
	assert.Equal(t, 2, seg.MaxRow)
	assert.Equal(t, 1, seg.MinCol)
	assert.Equal(t, 2, seg.MaxCol)
}

func TestGrowSeedIsFirstPixel(t *testing.T) {
	f := frameFromRows(t, [][]uint16{
		{0, 0, 0},
		{0, 9, 9},
		{0, 0, 0},
	})

	var mask Mask
	mask.Reset(f.Rows(), f.Cols())
	e := NewExtractor(&mask, 0)
	e.SetThreshold(5)

	var seg Segment
	e.Grow(&seg, f, 1, 2)

	require.NotEmpty(t, seg.Pixels)
	assert.Equal(t, Pixel{Row: 1, Col: 2}, seg.Pixels[0])
	assert.Equal(t, uint16(9), seg.Intensities[0])
}

func TestGrowBridgesGapsUpToSearchDistance(t *testing.T) {
	// Two bright pixels separated by one dim pixel: bridged when the
	// search distance allows one below-threshold step, split when it
	// does not.
	rows := [][]uint16{
		{0, 0, 0, 0, 0},
		{0, 9, 1, 9, 0},
		{0, 0, 0, 0, 0},
	}

	t.Run("bridged", func(t *testing.T) {
		f := frameFromRows(t, rows)
		var mask Mask
		mask.Reset(f.Rows(), f.Cols())
		e := NewExtractor(&mask, 2)
		e.SetThreshold(5)

		var seg Segment
		e.Grow(&seg, f, 1, 1)

		set := pixelSet(&seg)
		assert.True(t, set[Pixel{1, 2}], "dim pixel joins as a bridge")
		assert.True(t, set[Pixel{1, 3}], "bright pixel on the far side is reached")
	})

	t.Run("cut off", func(t *testing.T) {
		f := frameFromRows(t, rows)
		var mask Mask
		mask.Reset(f.Rows(), f.Cols())
		e := NewExtractor(&mask, 0)
		e.SetThreshold(5)

		var seg Segment
		e.Grow(&seg, f, 1, 1)

		set := pixelSet(&seg)
		assert.False(t, set[Pixel{1, 3}], "no bridging, the far pixel stays out")
		assert.Equal(t, 1, seg.PixelCount())
	})
}

func TestGrowGapResetsOnBrightPixel(t *testing.T) {
	// Alternating bright and dim pixels along a row. Every bright pixel
	// resets the chain gap, so the fill walks the whole line even with
	// a search distance of 1.
	f := frameFromRows(t, [][]uint16{
		{0, 0, 0, 0, 0, 0, 0},
		{0, 9, 1, 9, 1, 9, 0},
		{0, 0, 0, 0, 0, 0, 0},
	})

	var mask Mask
	mask.Reset(f.Rows(), f.Cols())
	e := NewExtractor(&mask, 1)
	e.SetThreshold(5)

	var seg Segment
	e.Grow(&seg, f, 1, 1)

	set := pixelSet(&seg)
	for col := 1; col <= 5; col++ {
		assert.True(t, set[Pixel{1, col}], "col %d", col)
	}
}

func TestGrowVisitedSeedYieldsEmptySegment(t *testing.T) {
	f := frameFromRows(t, [][]uint16{
		{9, 9},
		{9, 9},
	})

	var mask Mask
	mask.Reset(2, 2)
	mask.Visit(0, 0)

	e := NewExtractor(&mask, 2)
	e.SetThreshold(5)

	seg := Segment{}
	seg.Add(5, 5, 1) // stale contents from a previous pass
	e.Grow(&seg, f, 0, 0)

	assert.Equal(t, 0, seg.PixelCount(), "claimed seed grows nothing")
}

func TestGrowEarlierClaimBlocksLaterGrow(t *testing.T) {
	// Two seeds over one connected blob. The first grow claims it all;
	// the second, seeded elsewhere on the same blob, finds only visited
	// pixels.
	f := frameFromRows(t, [][]uint16{
		{9, 9, 9},
		{9, 9, 9},
	})

	var mask Mask
	mask.Reset(f.Rows(), f.Cols())
	e := NewExtractor(&mask, 2)
	e.SetThreshold(5)

	var first, second Segment
	e.Grow(&first, f, 0, 0)
	assert.Equal(t, 6, first.PixelCount())

	e.Grow(&second, f, 1, 2)
	assert.Equal(t, 0, second.PixelCount())
}

func TestGrowRejectedPixelsStayMarked(t *testing.T) {
	// A dim 2-pixel blob next to a bright one. Growing from the dim
	// side first visits dim pixels; the marks persist, so a later grow
	// from the bright side cannot pull them in as bridges.
	f := frameFromRows(t, [][]uint16{
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 9, 0},
		{0, 0, 0, 0, 0, 0},
	})

	var mask Mask
	mask.Reset(f.Rows(), f.Cols())
	e := NewExtractor(&mask, 1)
	e.SetThreshold(5)

	var dim Segment
	e.Grow(&dim, f, 1, 1)
	assert.True(t, mask.Visited(1, 1))
	assert.True(t, mask.Visited(1, 2))

	var bright Segment
	e.Grow(&bright, f, 1, 4)

	set := pixelSet(&bright)
	assert.True(t, set[Pixel{1, 4}])
	assert.False(t, set[Pixel{1, 2}], "pixels examined by an earlier grow are off limits")
}

func TestGrowDeadEndsAreMarkedButNotAdded(t *testing.T) {
	f := frameFromRows(t, [][]uint16{
		{0, 0, 0},
		{0, 9, 0},
		{0, 0, 0},
	})

	var mask Mask
	mask.Reset(f.Rows(), f.Cols())
	e := NewExtractor(&mask, 0)
	e.SetThreshold(5)

	var seg Segment
	e.Grow(&seg, f, 1, 1)

	assert.Equal(t, 1, seg.PixelCount())
	// The 8 neighbors were dequeued, found below threshold at the gap
	// limit, and marked without joining.
	for _, p := range []Pixel{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}} {
		assert.True(t, mask.Visited(p.Row, p.Col), "%v", p)
	}
}

func TestGrowStopsAtFrameEdge(t *testing.T) {
	f := frameFromRows(t, [][]uint16{
		{9, 9},
		{9, 9},
	})

	var mask Mask
	mask.Reset(2, 2)
	e := NewExtractor(&mask, 2)
	e.SetThreshold(5)

	var seg Segment
	e.Grow(&seg, f, 0, 0)
	assert.Equal(t, 4, seg.PixelCount(), "growth never leaves the frame")
}

func TestNewExtractorClampsNegativeSearchDistance(t *testing.T) {
	var mask Mask
	e := NewExtractor(&mask, -3)
	assert.Equal(t, 0, e.searchDistance)
}
