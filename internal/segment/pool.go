package segment

// Mask is the shared visitation state for one segmentation pass. It is
// stored flat (row*cols + col) and reset once per frame; Grow calls
// within the pass only ever add marks.
type Mask struct {
	rows, cols int
	visited    []bool
}

// Reset resizes the mask to the frame dimensions and clears every mark.
// Call exactly once per frame, before the first Grow of the pass.
func (m *Mask) Reset(rows, cols int) {
	if n := rows * cols; n != len(m.visited) {
		m.visited = make([]bool, n)
	} else {
		for i := range m.visited {
			m.visited[i] = false
		}
	}
	m.rows, m.cols = rows, cols
}

// Visited reports whether (row, col) has been claimed or examined this
// pass. Out-of-range coordinates read as visited, so growth never
// leaves the frame.
func (m *Mask) Visited(row, col int) bool {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return true
	}
	return m.visited[row*m.cols+col]
}

// Visit marks (row, col). Out-of-range coordinates are ignored.
func (m *Mask) Visit(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return
	}
	m.visited[row*m.cols+col] = true
}

// Rows returns the mask height set by the last Reset.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the mask width set by the last Reset.
func (m *Mask) Cols() int { return m.cols }

// Pool owns the visitation mask and an arena of reusable Segment slots
// keyed by index, so per-frame segmentation does not reallocate pixel
// storage. The segmentation driver acquires slot i for the i-th
// accepted segment; rejected candidates hand the same slot back by
// simply asking for the same index again.
type Pool struct {
	mask  Mask
	slots []*Segment
}

// NewPool creates an empty pool. The mask is unusable until the first
// ResetMask.
func NewPool() *Pool {
	return &Pool{}
}

// Mask exposes the shared visitation mask. The pointer stays valid
// across ResetMask calls; the Extractor holds it for the lifetime of
// the pipeline.
func (p *Pool) Mask() *Mask { return &p.mask }

// ResetMask starts a new segmentation pass over a rows-by-cols frame.
func (p *Pool) ResetMask(rows, cols int) {
	p.mask.Reset(rows, cols)
}

// Segment returns the reusable slot for the given index, allocating
// slots on first use. Slot contents are whatever the last Grow into
// them produced; Grow resets its destination before populating it.
func (p *Pool) Segment(index int) *Segment {
	for index >= len(p.slots) {
		p.slots = append(p.slots, &Segment{})
	}
	return p.slots[index]
}
