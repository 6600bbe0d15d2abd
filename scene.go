package learngl

import "log/slog"

// Frame is passed to Scene.Draw once per loop iteration.
type Frame struct {
	Index uint64  // zero based frame number
	Time  float64 // seconds since the window system started
	Input *InputState
}

// Scene is one exercise: it allocates its GPU objects in Setup, issues its
// draw calls in Draw and frees everything in Release. The logger passed to
// Setup is the loop's, for use by ProgramBuilder and friends.
//
// Release is called exactly once after Setup, even when Setup fails part
// way, so it must cope with objects that were never created.
type Scene interface {
	Setup(dev Device, logger *slog.Logger) error
	Draw(f Frame) error
	Release()
}

// ProgramSet is implemented by scenes that expose their shader programs so
// the loop can rebuild them on request or when their files change.
type ProgramSet interface {
	Programs() []*Program
}
