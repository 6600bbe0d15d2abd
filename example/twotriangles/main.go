// Command twotriangles draws two triangles from two vertex arrays.
//
// Usage:
//
//	go run ./example/twotriangles/
//	LEARNGL_CONFIG=learngl.yaml go run ./example/twotriangles/
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
	err := opengl.Main(scenes.TwoTrianglesConfig(), func(_ learngl.Config) learngl.Scene {
		return scenes.NewTwoTriangles()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
