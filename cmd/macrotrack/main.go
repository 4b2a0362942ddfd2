// Command macrotrack is a desktop form for logging meals and their macros.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phanxgames/macroui"
	"github.com/phanxgames/macroui/ebitenui"
	"github.com/phanxgames/macroui/ecs"
	"github.com/phanxgames/macroui/internal/config"
	"github.com/phanxgames/macroui/internal/macros"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "macrotrack:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	tree := macroui.NewTree(macroui.Descriptor{Size: macroui.Size{Width: 2, Height: 2}})
	tree.SetDebugMode(cfg.UI.Debug)

	db := macros.NewDatabase()
	f, err := buildForm(tree, db, logger)
	if err != nil {
		return err
	}

	world := donburi.NewWorld()
	wireEvents(world, tree, f)

	game, err := ebitenui.NewGame(tree, cfg.UI.FontSize)
	if err != nil {
		return err
	}
	game.OnTick = func() error {
		events.ProcessAllEvents(world)
		return nil
	}

	logger.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height, "tps", cfg.Window.FPS)
	err = ebitenui.Run(game, ebitenui.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		TPS:    cfg.Window.FPS,
	})
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	logger.Info("closed", "meals", db.Len())
	fmt.Println(macros.Render(db))
	return nil
}

// wireEvents routes the tree's application events through world to f.
// They are delivered when the world's events are processed.
func wireEvents(world donburi.World, tree *macroui.Tree, f *form) {
	tree.SetSink(ecs.NewDonburiSink(world))
	ecs.AppEventType.Subscribe(world, func(_ donburi.World, ev macroui.AppEvent) {
		f.handle(ev)
	})
}

// newLogger writes text records to stderr and, when configured, the run log.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, file)
		closeFn = func() { _ = file.Close() }
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	return slog.New(h), closeFn, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
