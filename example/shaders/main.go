// Command shaders draws a triangle with per-vertex colors.
//
// Usage:
//
//	go run ./example/shaders/
//	LEARNGL_CONFIG=learngl.yaml go run ./example/shaders/
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
	"github.com/go-theft-auto/learngl/scenes"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	err := opengl.Main(scenes.ShadersConfig(), func(_ learngl.Config) learngl.Scene {
		return scenes.NewVertexColors()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
