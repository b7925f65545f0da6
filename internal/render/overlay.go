package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/sonarlab/sonarseg/internal/segment"
	"github.com/sonarlab/sonarseg/internal/sonar"
)

// Overlay paints the segments over a grayscale rendering of the frame,
// one distinct hue per segment. The result mirrors the calibration mask
// view used when tuning Hmin and the window size against a recording.
func Overlay(f *sonar.Frame, segs []*segment.Segment) *image.RGBA {
	base := f.Gray()
	out := image.NewRGBA(base.Bounds())
	draw.Draw(out, out.Bounds(), base, image.Point{}, draw.Src)

	if len(segs) == 0 {
		return out
	}

	palette := colorful.FastHappyPalette(len(segs))
	for i, seg := range segs {
		r, g, b := palette[i].RGB255()
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		for _, p := range seg.Pixels {
			out.SetRGBA(p.Col, p.Row, c)
		}
	}
	return out
}

// SaveOverlay writes the overlay to disk. The format follows the file
// extension (PNG for .png, and so on).
func SaveOverlay(path string, f *sonar.Frame, segs []*segment.Segment) error {
	if err := imaging.Save(Overlay(f, segs), path); err != nil {
		return fmt.Errorf("failed to save overlay: %w", err)
	}
	return nil
}
