package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/sonarlab/sonarseg/internal/config"
	"github.com/sonarlab/sonarseg/internal/detection"
	"github.com/sonarlab/sonarseg/internal/logging"
	"github.com/sonarlab/sonarseg/internal/render"
	"github.com/sonarlab/sonarseg/internal/segment"
	"github.com/sonarlab/sonarseg/internal/sonar"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "JSON parameter file (compiled-in defaults when empty)")
		imagePath   = flag.String("image", "", "sonar frame image to segment (required)")
		overlayPath = flag.String("overlay", "", "write a segment overlay image to this path")
		chartPath   = flag.String("chart", "", "write a beam profile chart (HTML) to this path")
		profileBeam = flag.Int("beam", 0, "beam index profiled by -chart")
		denoise     = flag.Float64("denoise", 0, "Gaussian pre-filter radius, 0 disables")
		showVersion = flag.Bool("version", false, "print version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("sonarseg %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(envOr("SONARSEG_ENV", "production"), envOr("SONARSEG_LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger, *configPath, *imagePath, *overlayPath, *chartPath, *profileBeam, *denoise); err != nil {
		logger.Fatal("segmentation failed", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(logger *zap.Logger, configPath, imagePath, overlayPath, chartPath string, profileBeam int, denoise float64) error {
	params, err := config.LoadResolved(configPath)
	if err != nil {
		return err
	}

	frame, err := sonar.LoadFrame(imagePath)
	if err != nil {
		return err
	}
	logger.Info("frame loaded",
		zap.String("path", imagePath),
		zap.Int("rows", frame.Rows()),
		zap.Int("cols", frame.Cols()))

	if denoise > 0 {
		frame = sonar.Denoise(frame, denoise)
	}

	pool := segment.NewPool()
	segmenter := &detection.Segmenter{
		Params: params.Detection,
		Grower: segment.NewExtractor(pool.Mask(), params.SearchDistance),
		Source: pool,
	}

	var collector *render.Collector
	if overlayPath != "" || chartPath != "" {
		collector = render.NewCollector(profileBeam)
		segmenter.ScanObserver = collector
		segmenter.SegmentObserver = collector
	}

	start := time.Now()
	segs, err := segmenter.Segment(frame)
	if err != nil {
		return err
	}
	logger.Info("segmentation complete",
		zap.Int("segments", len(segs)),
		zap.Duration("elapsed", time.Since(start)))

	printSegments(segs)

	if overlayPath != "" {
		if err := render.SaveOverlay(overlayPath, frame, segs); err != nil {
			return err
		}
		logger.Info("overlay written", zap.String("path", overlayPath))
	}
	if chartPath != "" {
		if err := render.SaveBeamChart(chartPath, collector, params.Detection.Hmin); err != nil {
			return err
		}
		logger.Info("chart written", zap.String("path", chartPath), zap.Int("beam", profileBeam))
	}

	return nil
}

func printSegments(segs []*segment.Segment) {
	if len(segs) == 0 {
		pterm.Info.Println("no segments accepted")
		return
	}

	data := pterm.TableData{
		{"#", "Pixels", "BBox (r1,c1)-(r2,c2)", "Centroid", "Mean", "StdDev"},
	}
	for i, s := range segs {
		st := s.Stats()
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", s.PixelCount()),
			fmt.Sprintf("(%d,%d)-(%d,%d)", s.MinRow, s.MinCol, s.MaxRow, s.MaxCol),
			fmt.Sprintf("(%.1f,%.1f)", st.CentroidRow, st.CentroidCol),
			fmt.Sprintf("%.1f", st.MeanIntensity),
			fmt.Sprintf("%.1f", st.StdDevIntensity),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to render table: %v\n", err)
	}
}
