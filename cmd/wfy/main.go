package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"

	"github.com/younwookim/wfy/internal/application/game"
	"github.com/younwookim/wfy/internal/application/replay"
	"github.com/younwookim/wfy/internal/application/scene/menu"
	"github.com/younwookim/wfy/internal/application/system"
	"github.com/younwookim/wfy/internal/infrastructure/assets"
	"github.com/younwookim/wfy/internal/infrastructure/config"
	"github.com/younwookim/wfy/internal/infrastructure/logging"
	"github.com/younwookim/wfy/internal/infrastructure/metrics"
)

// maxHeadlessFrames caps a headless run (~10 minutes at 60 TPS)
const maxHeadlessFrames = 36000

type flags struct {
	configPath  string
	fontPath    string
	logLevel    string
	logJSON     bool
	recordPath  string
	replayPath  string
	headless    bool
	metricsAddr string
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	fset := pflag.NewFlagSet("wfy", pflag.ContinueOnError)
	fset.StringVar(&f.configPath, "config", "", "Path to an app.yaml overriding the embedded config")
	fset.StringVar(&f.fontPath, "font", "", "Path to the label font (overrides label.font)")
	fset.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fset.BoolVar(&f.logJSON, "log-json", false, "Write logs as JSON")
	fset.StringVar(&f.recordPath, "record", "", "Record input to file (e.g., --record replay.json)")
	fset.StringVar(&f.replayPath, "replay", "", "Drive the button from a recorded input file")
	fset.BoolVar(&f.headless, "headless", false, "Run the replay without a window and print the final state")
	fset.StringVar(&f.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g., :9090)")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if f.headless && f.replayPath == "" {
		return nil, fmt.Errorf("--headless requires --replay")
	}
	return f, nil
}

func loadConfig(path string) (*config.AppConfig, error) {
	if path != "" {
		return config.NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadApp()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("wfy failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger, err := logging.Configure(logging.Settings{Level: f.logLevel, JSON: f.logJSON})
	if err != nil {
		return err
	}

	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if f.fontPath != "" {
		cfg.Label.Font = f.fontPath
	}

	// The game loop and the metrics server both stop on ctx
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	met := metrics.New(reg)
	if f.metricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, f.metricsAddr, reg, logger); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
	}

	opts := menu.Options{
		Config:     cfg,
		RecordPath: f.recordPath,
		Logger:     logger,
		Metrics:    met,
	}

	var player *replay.Replayer
	if f.replayPath != "" {
		data, err := replay.LoadReplay(f.replayPath)
		if err != nil {
			return fmt.Errorf("failed to load replay: %w", err)
		}
		logger.Info("replaying", "path", f.replayPath, "session", data.Session, "frames", len(data.Frames))
		player = replay.NewReplayer(*data)
		opts.Input = player
		opts.ExitWhenExhausted = true
		defer logReplayProgress(logger, player)
	} else {
		opts.Input = system.NewEbitenInput()
	}

	if f.headless {
		m := menu.New(opts)
		g := newGame(ctx, m, cfg, logger)
		defer g.Close()

		if err := runHeadless(ctx, g, maxHeadlessFrames); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, summarize(m))
		return nil
	}

	face, err := assets.LoadFace(cfg.Label.Font, cfg.Label.FontSize, logger)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	opts.Face = face

	g := newGame(ctx, menu.New(opts), cfg, logger)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// newGame wraps m in the game loop, ticking at the configured rate
func newGame(ctx context.Context, m *menu.Menu, cfg *config.AppConfig, logger *slog.Logger) *game.Game {
	g := game.New(ctx, m, cfg.Window.Width, cfg.Window.Height, logger)
	g.SetDT(1.0 / float64(cfg.Window.TPS))
	return g
}

// logReplayProgress reports how much of a replay was played back
func logReplayProgress(logger *slog.Logger, player *replay.Replayer) {
	logger.Info("replay finished",
		"played", player.CurrentFrame(),
		"total", player.TotalFrames(),
		"complete", player.CurrentFrame() >= player.TotalFrames(),
	)
}
