// Command hellorectangle draws an indexed rectangle in wireframe.
//
// Usage:
//
//	go run ./example/hellorectangle/
//	LEARNGL_CONFIG=learngl.yaml go run ./example/hellorectangle/
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
	err := opengl.Main(scenes.HelloRectangleConfig(), func(_ learngl.Config) learngl.Scene {
		return scenes.NewHelloRectangle()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
