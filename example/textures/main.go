// Command textures draws a textured quad with shaders loaded from files.
//
// Usage:
//
//	go run ./example/textures/
//	LEARNGL_CONFIG=learngl.yaml go run ./example/textures/
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
	err := opengl.Main(scenes.TexturesConfig(), func(cfg learngl.Config) learngl.Scene {
		return scenes.NewTextured(cfg)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
