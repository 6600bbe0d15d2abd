package learngl

import (
	"errors"
	"fmt"
	"log/slog"
)

// State is the lifecycle state of a Loop.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateClosing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateClosing:
		return "closing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// errAlreadyRun is returned by Run on a loop that has already run.
var errAlreadyRun = errors.New("learngl: loop already run")

// Loop drives one scene in one window until the window is asked to close.
// It is single threaded and must run on the thread that owns the context.
type Loop struct {
	win   Window
	dev   Device
	scene Scene
	cfg   Config

	logger    *slog.Logger
	maxFrames uint64
	watcher   *ShaderWatcher
	hook      func(Frame) error

	state     State
	frames    uint64
	wireframe bool
}

// NewLoop creates a loop that owns win and scene. Run destroys both.
func NewLoop(win Window, dev Device, scene Scene, cfg Config, opts ...Option) *Loop {
	l := &Loop{
		win:       win,
		dev:       dev,
		scene:     scene,
		cfg:       cfg,
		logger:    slog.Default(),
		wireframe: cfg.Wireframe,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current lifecycle state.
func (l *Loop) State() State { return l.state }

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() uint64 { return l.frames }

// Wireframe reports whether polygons are drawn as outlines.
func (l *Loop) Wireframe() bool { return l.wireframe }

// Run sets up the scene, renders until the window should close and tears
// everything down. A setup error is returned before any frame is drawn;
// teardown runs on every path.
func (l *Loop) Run() error {
	if l.state != StateUninitialized {
		return errAlreadyRun
	}
	defer l.teardown()

	w, h := l.win.FramebufferSize()
	l.dev.Viewport(0, 0, int32(w), int32(h))
	l.win.SetResizeHandler(func(width, height int) {
		l.dev.Viewport(0, 0, int32(width), int32(height))
	})

	if err := l.scene.Setup(l.dev, l.logger); err != nil {
		stage, _ := StageOf(err)
		l.logger.Error("scene setup failed", "stage", stage.String(), "err", err)
		return fmt.Errorf("setup: %w", err)
	}

	if l.watcher != nil {
		if ps, ok := l.scene.(ProgramSet); ok {
			for _, p := range ps.Programs() {
				if err := l.watcher.Watch(p); err != nil {
					l.logger.Warn("shader hot reload unavailable", "err", err)
				}
			}
		}
	}

	l.state = StateRunning
	l.logger.Debug("render loop running", "width", w, "height", h)

	for l.state == StateRunning {
		if l.win.ShouldClose() {
			l.state = StateClosing
			break
		}
		if err := l.frame(); err != nil {
			l.state = StateClosing
			return err
		}
	}
	return nil
}

func (l *Loop) frame() error {
	l.win.PollEvents()
	in := l.win.Input()
	l.processInput(in)

	if l.watcher != nil {
		l.watcher.ReloadPending()
	}

	c := l.cfg.ClearColor
	l.dev.ClearColor(c[0], c[1], c[2], c[3])
	l.dev.Clear()
	l.dev.PolygonMode(l.wireframe)

	f := Frame{Index: l.frames, Time: l.win.Time(), Input: in}
	if err := l.scene.Draw(f); err != nil {
		return fmt.Errorf("draw frame %d: %w", f.Index, err)
	}
	if l.hook != nil {
		if err := l.hook(f); err != nil {
			return fmt.Errorf("frame hook %d: %w", f.Index, err)
		}
	}

	l.win.SwapBuffers()
	l.frames++

	if l.maxFrames > 0 && l.frames >= l.maxFrames {
		l.state = StateClosing
	}
	return nil
}

func (l *Loop) processInput(in *InputState) {
	if in == nil {
		return
	}
	if in.KeyDown(KeyEscape) {
		l.win.SetShouldClose(true)
	}
	if in.KeyPressed(KeyW) {
		l.wireframe = !l.wireframe
	}
	if in.KeyPressed(KeyR) {
		l.reloadPrograms()
	}
}

func (l *Loop) reloadPrograms() {
	ps, ok := l.scene.(ProgramSet)
	if !ok {
		return
	}
	for _, p := range ps.Programs() {
		if err := p.Reload(); err != nil {
			l.logger.Error("shader reload failed, keeping previous program", "err", err)
		}
	}
}

func (l *Loop) teardown() {
	if l.state == StateTerminated {
		return
	}
	l.state = StateClosing
	l.win.SetResizeHandler(nil)
	l.scene.Release()
	l.win.Destroy()
	l.state = StateTerminated
	l.logger.Debug("render loop terminated", "frames", l.frames)
}
