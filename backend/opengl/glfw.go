package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

// Window implements learngl.Window on a GLFW window and owns the GLFW
// library for its lifetime. GLFW must run on the main thread; callers lock
// it with runtime.LockOSThread in an init function.
type Window struct {
	window    *glfw.Window
	input     *learngl.InputState
	resize    func(width, height int)
	destroyed bool
}

// OpenWindow initializes GLFW, creates a window with the requested context
// version, makes its context current and loads the GL entry points.
func OpenWindow(cfg learngl.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, &learngl.SetupError{Stage: learngl.StageWindow, Subject: "glfw", Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if cfg.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &learngl.SetupError{Stage: learngl.StageWindow, Subject: cfg.Title, Err: err}
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, &learngl.SetupError{Stage: learngl.StageLoader, Subject: "gl", Err: err}
	}

	w := &Window{
		window: window,
		input:  learngl.NewInputState(),
	}
	window.SetKeyCallback(w.keyCallback)
	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	return w, nil
}

var _ learngl.Window = (*Window)(nil)

func (w *Window) ShouldClose() bool { return w.window.ShouldClose() }

func (w *Window) SetShouldClose(v bool) { w.window.SetShouldClose(v) }

// PollEvents resets per-frame input and runs the GLFW event pump, which
// delivers key and resize callbacks.
func (w *Window) PollEvents() {
	w.input.Reset()
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() { w.window.SwapBuffers() }

func (w *Window) Input() *learngl.InputState { return w.input }

func (w *Window) FramebufferSize() (int, int) { return w.window.GetFramebufferSize() }

func (w *Window) SetResizeHandler(fn func(width, height int)) { w.resize = fn }

func (w *Window) Time() float64 { return glfw.GetTime() }

// Destroy destroys the window and terminates GLFW. Later calls do nothing.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == learngl.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(k, true)
	case glfw.Release:
		w.input.SetKey(k, false)
	}
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if w.resize != nil {
		w.resize(width, height)
	}
}

// glfwKeyToKey maps GLFW keys to learngl keys.
func glfwKeyToKey(key glfw.Key) learngl.Key {
	switch key {
	case glfw.KeyEscape:
		return learngl.KeyEscape
	case glfw.KeyR:
		return learngl.KeyR
	case glfw.KeyW:
		return learngl.KeyW
	default:
		return learngl.KeyNone
	}
}
