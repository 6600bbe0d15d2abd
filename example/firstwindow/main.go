// Command firstwindow opens a 640x480 window and clears it to dark green, the first check
// that GLFW and the OpenGL context work.
//
// Usage:
//
//	go run ./example/firstwindow/
//	LEARNGL_CONFIG=learngl.yaml go run ./example/firstwindow/
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
	err := opengl.Main(scenes.FirstWindowConfig(), func(_ learngl.Config) learngl.Scene {
		return scenes.NewClearOnly()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
