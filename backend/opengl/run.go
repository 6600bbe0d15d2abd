package opengl

import (
	"log/slog"
	"os"

	"github.com/go-theft-auto/learngl"
)

// Run opens a window for cfg, runs scene until the window closes and tears
// everything down. When cfg enables hot reload a shader watcher is started
// for the duration of the run.
func Run(cfg learngl.Config, scene learngl.Scene, logger *slog.Logger, opts ...learngl.Option) error {
	win, err := OpenWindow(cfg.Window)
	if err != nil {
		logger.Error("window setup failed", "err", err)
		return err
	}
	dev := NewDevice()
	logger.Info("context ready",
		"title", cfg.Window.Title, "version", dev.Version(), "renderer", dev.Renderer())

	loopOpts := []learngl.Option{learngl.WithLogger(logger)}
	if cfg.HotReload && cfg.ShaderDir != "" {
		watcher, err := learngl.NewShaderWatcher(logger)
		if err != nil {
			logger.Warn("shader hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			loopOpts = append(loopOpts, learngl.WithWatcher(watcher))
		}
	}

	return learngl.NewLoop(win, dev, scene, cfg, append(loopOpts, opts...)...).Run()
}

// Main loads the config (base overlaid with the file named by
// LEARNGL_CONFIG), builds the scene and runs it. It is the body of every
// exercise executable.
func Main(base learngl.Config, newScene func(learngl.Config) learngl.Scene) error {
	cfg, err := learngl.ConfigFromEnv(base)
	if err != nil {
		return err
	}
	logger, err := learngl.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return Run(cfg, newScene(cfg), logger)
}
