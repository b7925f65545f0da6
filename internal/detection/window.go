package detection

// Window is a bounded FIFO of recent bin intensities with a maintained
// running sum, used to compute the local background mean along a beam.
//
// Pushing into a full window evicts the oldest value and subtracts it
// from the sum before the new value is added, so Sum always reflects
// exactly the current contents. A window with capacity 0 holds nothing
// and reports a mean of 0.
type Window struct {
	values []int
	head   int
	count  int
	sum    int
}

// NewWindow creates a window with the given capacity. Capacity must be
// non-negative; 0 is valid and disables averaging.
func NewWindow(capacity int) *Window {
	if capacity < 0 {
		capacity = 0
	}
	return &Window{values: make([]int, capacity)}
}

// Push appends a value, evicting the oldest one first when the window
// is full. A zero-capacity window ignores the value.
func (w *Window) Push(v int) {
	if len(w.values) == 0 {
		return
	}
	if w.count == len(w.values) {
		w.sum -= w.values[w.head]
		w.values[w.head] = v
		w.head = (w.head + 1) % len(w.values)
	} else {
		w.values[(w.head+w.count)%len(w.values)] = v
		w.count++
	}
	w.sum += v
}

// Front returns the oldest value without removing it, or 0 when empty.
func (w *Window) Front() int {
	if w.count == 0 {
		return 0
	}
	return w.values[w.head]
}

// Len returns the number of values currently held.
func (w *Window) Len() int { return w.count }

// Cap returns the window capacity.
func (w *Window) Cap() int { return len(w.values) }

// Sum returns the running sum of the current contents.
func (w *Window) Sum() int { return w.sum }

// Mean returns the integer mean of the current contents, or 0 when the
// window is empty. The division is integer on purpose, matching the
// acquisition-side arithmetic; intensities are non-negative so this
// floors.
func (w *Window) Mean() int {
	if w.count == 0 {
		return 0
	}
	return w.sum / w.count
}

// Clear empties the window and zeroes the sum. Capacity is kept.
func (w *Window) Clear() {
	w.head = 0
	w.count = 0
	w.sum = 0
}

// Resize changes the capacity and clears the window.
func (w *Window) Resize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	w.values = make([]int, capacity)
	w.Clear()
}
