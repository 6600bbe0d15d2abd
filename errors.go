package learngl

import (
	"errors"
	"fmt"
)

var (
	// ErrReleased is returned when a released object is used.
	ErrReleased = errors.New("learngl: object already released")

	// ErrLayoutMismatch is returned when vertex data does not match its
	// declared attribute layout.
	ErrLayoutMismatch = errors.New("learngl: vertex layout mismatch")
)

// Stage identifies which setup step failed.
type Stage int

const (
	StageWindow Stage = iota
	StageLoader
	StageCompile
	StageLink
	StageRead
	StageLayout
	StageTexture
	StageConfig
)

var stageTags = [...]string{
	StageWindow:  "WINDOW_CREATION_FAILED",
	StageLoader:  "LOADER_FAILED",
	StageCompile: "COMPILATION_FAILED",
	StageLink:    "LINKING_FAILED",
	StageRead:    "FILE_NOT_READ",
	StageLayout:  "LAYOUT_MISMATCH",
	StageTexture: "TEXTURE_FAILED",
	StageConfig:  "CONFIG_INVALID",
}

// String returns the fixed tag printed for the stage.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageTags) {
		return "UNKNOWN"
	}
	return stageTags[s]
}

// SetupError describes a failure that prevents the render loop from
// starting. Every setup failure is terminal.
type SetupError struct {
	Stage      Stage
	Subject    string // what failed, e.g. "vertex", "program", a file path
	Diagnostic string // driver info log or a human readable reason
	Err        error  // underlying cause, may be nil
}

func (e *SetupError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Subject, e.Stage)
	if e.Diagnostic != "" {
		msg += ": " + e.Diagnostic
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SetupError) Unwrap() error { return e.Err }

// StageOf returns the stage of the first SetupError in err's chain.
func StageOf(err error) (Stage, bool) {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return 0, false
}
