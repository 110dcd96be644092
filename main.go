// main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"rotor/v2/config"
	rlog "rotor/v2/log"
	"rotor/v2/orient"
)

func main() {
	cfgPath := flag.String("config", "", "YAML scene configuration file")
	mode := flag.String("mode", "", "Orientation representation: euler or quaternion")
	frames := flag.Int("frames", 0, "Stop after this many frames (0 runs until quit)")
	interval := flag.Int("interval", 0, "Milliseconds between frames")
	axes := flag.Bool("axes", true, "Draw the spin axis of each ring")
	points := flag.Int("points", 0, "Points per ring")
	reorth := flag.Int("reorth", 0, "Re-orthonormalize the Euler matrix every N frames (0 disables)")
	drift := flag.Int("drift", 0, "Print a drift report for N ticks instead of animating")
	rows := flag.Int("rows", 10, "Rows shown in the drift report")
	asJSON := flag.Bool("json", false, "Write the drift report as JSON with every sample")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logDir := flag.String("log-dir", "", "Directory for rotor.log")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.LoadConfig(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags given explicitly win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Representation = *mode
		case "frames":
			cfg.Frames = *frames
		case "interval":
			cfg.IntervalMs = *interval
		case "axes":
			cfg.Axes = *axes
		case "points":
			cfg.RingPoints = *points
		case "reorth":
			cfg.ReorthonormalizeEvery = *reorth
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-dir":
			cfg.Logging.LogPath = *logDir
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if *drift > 0 {
		logger, err := rlog.NewLogrusLogger(cfg.Logging.Level, cfg.Logging.LogPath, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		err = runDrift(os.Stdout, cfg, *drift, *rows, *asJSON, logger)
		logger.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Drift report failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The terminal belongs to the renderer, so logs only go to the file.
	logger, err := rlog.NewLogrusLogger(cfg.Logging.Level, cfg.Logging.LogPath, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	err = runGraphics(cfg, logger)
	logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Graphics error: %v\n", err)
		os.Exit(1)
	}
}

func runDrift(w io.Writer, cfg *config.Config, ticks, rows int, asJSON bool, logger rlog.Logger) error {
	speeds, err := cfg.AxisSpeeds()
	if err != nil {
		return err
	}
	logger.Infof("measuring drift over %d ticks", ticks)

	report, err := orient.MeasureDrift(speeds, ticks, cfg.ReorthonormalizeEvery)
	if err != nil {
		return fmt.Errorf("measuring drift: %w", err)
	}
	if report.MaxQuatError > orient.NormTolerance {
		logger.Warnf("quaternion norm drifted by %.3e", report.MaxQuatError)
	}
	if report.MaxMatrixError() > orient.OrthoTolerance {
		logger.Warnf("matrix orthonormality error reached %.3e", report.MaxMatrixError())
	}

	if asJSON {
		return orient.WriteDriftJSON(w, report)
	}
	orient.PrintDriftReport(w, report, rows)
	return nil
}
