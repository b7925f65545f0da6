package sonar

import (
	"fmt"
	"image"
)

// Frame is a read-only grid of unsigned 16-bit intensity samples.
//
// Samples are stored row-major. The zero value is an empty frame; use
// NewFrame or FromImage to construct a usable one.
type Frame struct {
	rows, cols int
	samples    []uint16
}

// NewFrame creates a frame backed by the given samples.
//
// The samples slice must hold exactly rows*cols values in row-major
// order. The frame takes ownership of the slice; the caller must not
// mutate it afterwards.
func NewFrame(rows, cols int, samples []uint16) (*Frame, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", rows, cols)
	}
	if len(samples) != rows*cols {
		return nil, fmt.Errorf("sample count %d does not match %dx%d frame", len(samples), rows, cols)
	}
	return &Frame{rows: rows, cols: cols, samples: samples}, nil
}

// FromImage converts a decoded image into an intensity frame.
//
// Conversion rules:
//   - *image.Gray16: samples are taken verbatim (the native sonar format).
//   - Everything else: ITU-R BT.601 luminance (0.299*R + 0.587*G + 0.114*B)
//     computed on the 8-bit channel values. 8-bit sources therefore keep
//     their 0-255 scale; thresholds tuned against raw 16-bit recordings
//     need re-tuning for converted material, not the other way around.
func FromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	rows := bounds.Dy()
	cols := bounds.Dx()
	samples := make([]uint16, rows*cols)

	if gray, ok := img.(*image.Gray16); ok {
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				c := gray.Gray16At(x+bounds.Min.X, y+bounds.Min.Y)
				samples[y*cols+x] = c.Y
			}
		}
		return &Frame{rows: rows, cols: cols, samples: samples}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			samples[y*cols+x] = uint16(lum)
		}
	}
	return &Frame{rows: rows, cols: cols, samples: samples}
}

// Rows returns the number of range-bin rows.
func (f *Frame) Rows() int { return f.rows }

// Cols returns the frame width in samples.
func (f *Frame) Cols() int { return f.cols }

// At returns the intensity at (row, col), or 0 when the coordinate lies
// outside the grid.
func (f *Frame) At(row, col int) uint16 {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return 0
	}
	return f.samples[row*f.cols+col]
}

// AtPoint samples the frame at a floating-point image position,
// truncating each coordinate toward zero. This mirrors how beam
// positions are accumulated as float vectors and then read as pixels.
func (f *Frame) AtPoint(x, y float64) uint16 {
	return f.At(int(y), int(x))
}

// Gray renders the frame as an 8-bit grayscale image, saturating samples
// above 255. Sonar intensities normally occupy the low end of the 16-bit
// range, so saturation preserves far more detail than taking the high
// byte would. Used by debug overlays; production code never needs it.
func (f *Frame) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.cols, f.rows))
	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.cols; x++ {
			v := f.samples[y*f.cols+x]
			if v > 255 {
				v = 255
			}
			img.Pix[y*img.Stride+x] = uint8(v)
		}
	}
	return img
}
