package scenes

import (
	"log/slog"

	"github.com/go-theft-auto/learngl"
)

// FirstWindowConfig is the very first check that GLFW and the context work:
// a 640x480 window cleared to dark green.
func FirstWindowConfig() learngl.Config {
	cfg := learngl.DefaultConfig()
	cfg.Window.Title = "OpenGL Working!"
	cfg.Window.Width = 640
	cfg.Window.Height = 480
	cfg.ClearColor = learngl.Color{0.1, 0.4, 0.1, 1.0}
	return cfg
}

// HelloWindowConfig is an 800x600 window cleared to slate blue.
func HelloWindowConfig() learngl.Config {
	cfg := learngl.DefaultConfig()
	cfg.Window.Title = "HelloWindow"
	cfg.ClearColor = learngl.Color{0.2, 0.3, 0.4, 1.0}
	return cfg
}

// ClearOnly draws nothing; the loop's clear is the whole frame.
type ClearOnly struct{}

// NewClearOnly returns a scene without GPU objects.
func NewClearOnly() *ClearOnly { return &ClearOnly{} }

func (*ClearOnly) Setup(learngl.Device, *slog.Logger) error { return nil }
func (*ClearOnly) Draw(learngl.Frame) error                  { return nil }
func (*ClearOnly) Release()                                  {}
