package learngl

import "log/slog"

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used by the loop. The default is slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMaxFrames closes the loop after n presented frames. Zero means no
// limit.
func WithMaxFrames(n uint64) Option {
	return func(l *Loop) {
		l.maxFrames = n
	}
}

// WithWatcher registers the scene's programs with w once setup succeeds and
// rebuilds changed programs at the start of each frame. The caller keeps
// ownership of w.
func WithWatcher(w *ShaderWatcher) Option {
	return func(l *Loop) {
		l.watcher = w
	}
}

// WithFrameHook runs fn after each frame is drawn and before it is
// presented. A non-nil error ends the loop.
func WithFrameHook(fn func(f Frame) error) Option {
	return func(l *Loop) {
		l.hook = fn
	}
}
