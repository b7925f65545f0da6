package sonar

import (
	"github.com/anthonynsimon/bild/blur"
)

// Denoise returns a Gaussian-smoothed copy of the frame.
//
// This is an experimentation aid for noisy recordings: smoothing before
// peak search trades trailing-edge sharpness for fewer spurious runs.
// The production pipeline consumes raw frames; nothing in the scanner
// requires pre-filtering.
//
// The filter runs on the 8-bit rendering of the frame, so intensities
// above 255 are saturated first. A radius of 0 or less returns the
// frame unchanged.
func Denoise(f *Frame, radius float64) *Frame {
	if radius <= 0 {
		return f
	}

	blurred := blur.Gaussian(f.Gray(), radius)

	samples := make([]uint16, f.rows*f.cols)
	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.cols; x++ {
			r, _, _, _ := blurred.At(x, y).RGBA()
			samples[y*f.cols+x] = uint16(r >> 8)
		}
	}
	return &Frame{rows: f.rows, cols: f.cols, samples: samples}
}
