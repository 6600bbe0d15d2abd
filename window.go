package learngl

// Window is the windowing system as seen by the render loop: a close flag,
// an event pump, a presentable back buffer and keyboard state.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)

	// PollEvents processes pending window events and refreshes Input.
	PollEvents()
	// SwapBuffers presents the back buffer; it may block on vsync.
	SwapBuffers()

	Input() *InputState
	FramebufferSize() (width, height int)
	// SetResizeHandler registers fn to run whenever the framebuffer is
	// resized. A nil fn removes the handler.
	SetResizeHandler(fn func(width, height int))
	// Time returns seconds elapsed since the window system started.
	Time() float64

	// Destroy releases the window and its rendering context.
	Destroy()
}
