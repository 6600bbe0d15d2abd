package fake

import "github.com/go-theft-auto/learngl"

// FrameTime is the time step the fake window advances per presented frame.
const FrameTime = 1.0 / 60.0

// KeyEvent is a scripted key transition delivered by PollEvents.
type KeyEvent struct {
	Key  learngl.Key
	Down bool
}

// Window is a fake learngl.Window driven by a script instead of a user.
type Window struct {
	// CloseAfter requests close once that many frames have been presented.
	// Zero never closes on its own.
	CloseAfter int

	width, height int
	input         *learngl.InputState
	shouldClose   bool
	resize        func(width, height int)
	script        map[int][]KeyEvent // poll number -> events
	queued        []KeyEvent

	polls     int
	swaps     int
	destroyed int
}

// NewWindow returns a fake window with the given framebuffer size.
func NewWindow(width, height int) *Window {
	return &Window{
		width:  width,
		height: height,
		input:  learngl.NewInputState(),
		script: make(map[int][]KeyEvent),
	}
}

var _ learngl.Window = (*Window)(nil)

// At schedules events for the poll with the given zero based index.
func (w *Window) At(poll int, events ...KeyEvent) {
	w.script[poll] = append(w.script[poll], events...)
}

// Press queues a key press for the next poll.
func (w *Window) Press(k learngl.Key) {
	w.queued = append(w.queued, KeyEvent{Key: k, Down: true})
}

// Release queues a key release for the next poll.
func (w *Window) Release(k learngl.Key) {
	w.queued = append(w.queued, KeyEvent{Key: k, Down: false})
}

// Resize changes the framebuffer size and runs the resize handler.
func (w *Window) Resize(width, height int) {
	w.width, w.height = width, height
	if w.resize != nil {
		w.resize(width, height)
	}
}

func (w *Window) ShouldClose() bool { return w.shouldClose }

func (w *Window) SetShouldClose(v bool) { w.shouldClose = v }

func (w *Window) Input() *learngl.InputState { return w.input }

func (w *Window) PollEvents() {
	w.input.Reset()
	for _, e := range w.script[w.polls] {
		w.input.SetKey(e.Key, e.Down)
	}
	for _, e := range w.queued {
		w.input.SetKey(e.Key, e.Down)
	}
	w.queued = w.queued[:0]
	w.polls++
}

func (w *Window) SwapBuffers() {
	w.swaps++
	if w.CloseAfter > 0 && w.swaps >= w.CloseAfter {
		w.shouldClose = true
	}
}

func (w *Window) FramebufferSize() (int, int) { return w.width, w.height }

func (w *Window) SetResizeHandler(fn func(width, height int)) { w.resize = fn }

func (w *Window) HasResizeHandler() bool { return w.resize != nil }

func (w *Window) Time() float64 { return float64(w.swaps) * FrameTime }

func (w *Window) Destroy() { w.destroyed++ }

// Polls returns how many times PollEvents ran.
func (w *Window) Polls() int { return w.polls }

// Swaps returns how many frames were presented.
func (w *Window) Swaps() int { return w.swaps }

// Destroyed returns how many times Destroy ran.
func (w *Window) Destroyed() int { return w.destroyed }
