package main

import (
	"flag"
	"os"
	"sort"
	"time"

	"snake-minigame/config"
	"snake-minigame/game"
	"snake-minigame/game/types"
	"snake-minigame/logger"
	"snake-minigame/monitor"
	"snake-minigame/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type logObserver struct{}

func (logObserver) MinigameActivated(g types.GameType, session uuid.UUID) {
	logger.Log.Infow("minigame activated", "game", g.String(), "session", session.String())
}

func main() {
	configDir := flag.String("config", ".", "Directory holding config.yaml")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := setup(*configDir, *logLevel)
	if err != nil {
		logger.Log.Errorw("startup failed", "error", err.Error())
		logger.Sync()
		os.Exit(1)
	}
	defer logger.Sync()

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	registry := prometheus.NewRegistry()
	assets := ui.NewAssets()
	defer assets.Unload()
	renderer := ui.NewRenderer(assets, cfg.Window.CellSize)

	g, err := game.NewGame(cfg, game.Dependencies{
		Assets:   assets,
		Renderer: renderer,
		Audio:    ui.NewAudio(assets),
		Input:    ui.Keyboard{},
		Observer: logObserver{},
		Metrics:  monitor.NewMetrics("snake", registry),
	})
	if err != nil {
		logger.Log.Errorw("failed to create game", "error", err.Error())
		os.Exit(1)
	}
	if err := g.RequestStart(); err != nil {
		logger.Log.Errorw("failed to start session", "error", err.Error())
		os.Exit(1)
	}
	assets.Resolve()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyEnter) && g.Err() != nil {
			if err := g.RequestStart(); err != nil {
				logger.Log.Errorw("failed to start session", "error", err.Error())
			}
		}

		elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		// Errors are logged by the game and hold it until the next start.
		_ = g.Update(elapsed)
		assets.Resolve()

		renderer.Draw(g)
	}

	logSummary(registry)
}

// setup starts logging at info so configuration errors are reported, then
// loads the config and switches to the configured level.
func setup(configDir, logLevel string) (*config.Config, error) {
	if err := logger.Init("info"); err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := logger.Init(cfg.Log.Level); err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.Log.Level)
	}
	return cfg, nil
}

func logSummary(registry *prometheus.Registry) {
	summary, err := monitor.Summary(registry)
	if err != nil {
		logger.Log.Warnw("failed to gather metrics", "error", err.Error())
		return
	}
	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)
	fields := make([]interface{}, 0, len(names)*2)
	for _, name := range names {
		fields = append(fields, name, summary[name])
	}
	logger.Log.Infow("session summary", fields...)
}
