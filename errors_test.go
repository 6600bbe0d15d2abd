package learngl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/learngl"
)

func TestStage_String(t *testing.T) {
	tests := map[learngl.Stage]string{
		learngl.StageWindow:  "WINDOW_CREATION_FAILED",
		learngl.StageLoader:  "LOADER_FAILED",
		learngl.StageCompile: "COMPILATION_FAILED",
		learngl.StageLink:    "LINKING_FAILED",
		learngl.StageRead:    "FILE_NOT_READ",
		learngl.StageLayout:  "LAYOUT_MISMATCH",
		learngl.StageTexture: "TEXTURE_FAILED",
		learngl.StageConfig:  "CONFIG_INVALID",
		learngl.Stage(99):    "UNKNOWN",
	}
	for stage, want := range tests {
		assert.Equal(t, want, stage.String())
	}
}

func TestSetupError_Error(t *testing.T) {
	cause := errors.New("permission denied")
	err := &learngl.SetupError{
		Stage:      learngl.StageRead,
		Subject:    "shaders/a.vert",
		Diagnostic: "open",
		Err:        cause,
	}
	assert.Equal(t, "shaders/a.vert: FILE_NOT_READ: open: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &learngl.SetupError{Stage: learngl.StageWindow, Subject: "glfw"}
	assert.Equal(t, "glfw: WINDOW_CREATION_FAILED", bare.Error())
}

func TestStageOf(t *testing.T) {
	wrapped := fmt.Errorf("setup: %w", &learngl.SetupError{Stage: learngl.StageLink, Subject: "program"})
	stage, ok := learngl.StageOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, learngl.StageLink, stage)

	_, ok = learngl.StageOf(errors.New("plain"))
	assert.False(t, ok)
	_, ok = learngl.StageOf(nil)
	assert.False(t, ok)
}
