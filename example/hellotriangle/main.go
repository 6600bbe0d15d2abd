// Command hellotriangle draws one orange triangle from three vertices.
//
// Usage:
//
//	go run ./example/hellotriangle/
//	LEARNGL_CONFIG=learngl.yaml go run ./example/hellotriangle/
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
	err := opengl.Main(scenes.HelloTriangleConfig(), func(_ learngl.Config) learngl.Scene {
		return scenes.NewHelloTriangle()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
