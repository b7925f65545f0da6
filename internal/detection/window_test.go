package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowPushAndSum(t *testing.T) {
	w := NewWindow(3)

	w.Push(10)
	w.Push(20)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 30, w.Sum())
	assert.Equal(t, 15, w.Mean())
	assert.Equal(t, 10, w.Front())

	w.Push(30)
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, 60, w.Sum())

	// Fourth push evicts the oldest value; the sum must always reflect
	// exactly the current contents.
	w.Push(40)
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, 90, w.Sum())
	assert.Equal(t, 30, w.Mean())
	assert.Equal(t, 20, w.Front())
}

func TestWindowMeanIsIntegerDivision(t *testing.T) {
	w := NewWindow(3)
	w.Push(10)
	w.Push(11)
	assert.Equal(t, 10, w.Mean(), "21/2 floors to 10")
}

func TestWindowEmpty(t *testing.T) {
	w := NewWindow(3)
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0, w.Mean())
	assert.Equal(t, 0, w.Front())
	assert.Equal(t, 0, w.Sum())
}

func TestWindowZeroCapacity(t *testing.T) {
	w := NewWindow(0)
	w.Push(100)
	w.Push(200)

	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0, w.Sum())
	assert.Equal(t, 0, w.Mean(), "zero-capacity window always reports mean 0")
}

func TestWindowNegativeCapacityClamped(t *testing.T) {
	w := NewWindow(-5)
	require.Equal(t, 0, w.Cap())
	w.Push(1)
	assert.Equal(t, 0, w.Len())
}

func TestWindowClear(t *testing.T) {
	w := NewWindow(4)
	w.Push(1)
	w.Push(2)
	w.Clear()

	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0, w.Sum())
	assert.Equal(t, 4, w.Cap(), "clear keeps capacity")

	w.Push(7)
	assert.Equal(t, 7, w.Mean())
}

func TestWindowResize(t *testing.T) {
	w := NewWindow(2)
	w.Push(1)
	w.Push(2)

	w.Resize(5)
	assert.Equal(t, 5, w.Cap())
	assert.Equal(t, 0, w.Len(), "resize clears contents")
	assert.Equal(t, 0, w.Sum())

	for _, v := range []int{1, 2, 3, 4, 5, 6} {
		w.Push(v)
	}
	assert.Equal(t, 5, w.Len())
	assert.Equal(t, 2+3+4+5+6, w.Sum())
}

func TestWindowWrapAround(t *testing.T) {
	w := NewWindow(2)
	for v := 1; v <= 100; v++ {
		w.Push(v)
	}
	assert.Equal(t, 99+100, w.Sum())
	assert.Equal(t, 99, w.Front())
}
