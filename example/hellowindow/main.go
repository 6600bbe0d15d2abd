// Command hellowindow opens a window and clears it every frame until Escape is pressed.
//
// Usage:
//
//	go run ./example/hellowindow/
//	LEARNGL_CONFIG=learngl.yaml go run ./example/hellowindow/
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
	err := opengl.Main(scenes.HelloWindowConfig(), func(_ learngl.Config) learngl.Scene {
		return scenes.NewClearOnly()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
