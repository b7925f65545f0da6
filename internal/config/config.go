// Package config loads segmentation parameters from JSON files.
//
// The schema is layered: a generic "general" section supplies fallback
// values shared by several components, and component-specific sections
// override them. Application order is fixed: compiled-in defaults
// first, then the general section, then the component section, so the
// most specific value always wins. Every field is optional; a missing
// field keeps the value from the previous layer, which makes partial
// config files safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sonarlab/sonarseg/internal/detection"
	"github.com/sonarlab/sonarseg/internal/segment"
)

// maxFileSize caps config reads at 1MB. Parameter files are tiny; a
// larger file is a wrong path, not a config.
const maxFileSize = 1 * 1024 * 1024

// General holds fallback values consumed by more than one component.
type General struct {
	MinSampleSize *int `json:"min_sample_size,omitempty"`
}

// PeakSearch configures the beam peak scanner and the segmentation
// driver. Field names follow the recording-side parameter names.
type PeakSearch struct {
	NBeams              *int     `json:"n_beams,omitempty"`
	StartBin            *int     `json:"start_bin,omitempty"`
	Hmin                *int     `json:"hmin,omitempty"`
	Bearing             *float64 `json:"bearing,omitempty"`
	SonVerticalPosition *int     `json:"son_vertical_position,omitempty"`
	MinSampleSize       *int     `json:"min_sample_size,omitempty"`
	MeanWindowSize      *int     `json:"mean_window_size,omitempty"`
}

// Extractor configures the region grower.
type Extractor struct {
	SearchDistance *int `json:"search_distance,omitempty"`
}

// File is the root of a parameter file. Sections may be omitted
// entirely.
type File struct {
	General    *General    `json:"general,omitempty"`
	PeakSearch *PeakSearch `json:"peak_search,omitempty"`
	Extractor  *Extractor  `json:"extractor,omitempty"`
}

// Resolved is a fully-applied parameter set ready to build a pipeline.
type Resolved struct {
	Detection      detection.Params
	SearchDistance int
}

// Default returns the resolved compiled-in defaults.
func Default() Resolved {
	return Resolved{
		Detection:      detection.DefaultParams(),
		SearchDistance: segment.DefaultSearchDistance,
	}
}

// Load reads and parses a parameter file. The file must have a .json
// extension and stay under 1MB; both checks guard against passing an
// image path by mistake.
func Load(path string) (*File, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &f, nil
}

// Resolve layers the file over the compiled-in defaults and validates
// the result. The general section is applied before the component
// sections, so component-specific values win.
func (f *File) Resolve() (Resolved, error) {
	r := Default()

	if f.General != nil {
		if v := f.General.MinSampleSize; v != nil {
			r.Detection.MinSampleSize = *v
		}
	}

	if ps := f.PeakSearch; ps != nil {
		if v := ps.NBeams; v != nil {
			r.Detection.Beams = *v
		}
		if v := ps.StartBin; v != nil {
			r.Detection.StartBin = *v
		}
		if v := ps.Hmin; v != nil {
			r.Detection.Hmin = *v
		}
		if v := ps.Bearing; v != nil {
			r.Detection.BearingDeg = *v
		}
		if v := ps.SonVerticalPosition; v != nil {
			r.Detection.VerticalOffset = *v
		}
		if v := ps.MinSampleSize; v != nil {
			r.Detection.MinSampleSize = *v
		}
		if v := ps.MeanWindowSize; v != nil {
			r.Detection.MeanWindow = *v
		}
	}

	if ex := f.Extractor; ex != nil {
		if v := ex.SearchDistance; v != nil {
			r.SearchDistance = *v
		}
	}

	if err := r.Detection.Validate(); err != nil {
		return Resolved{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if r.SearchDistance < 0 {
		return Resolved{}, fmt.Errorf("invalid configuration: search distance must be non-negative, got %d", r.SearchDistance)
	}
	return r, nil
}

// LoadResolved is the one-call path used by the CLI: load a file if a
// path is given, otherwise fall back to defaults.
func LoadResolved(path string) (Resolved, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := Load(path)
	if err != nil {
		return Resolved{}, err
	}
	return f.Resolve()
}
