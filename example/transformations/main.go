// Command transformations draws a spinning quad blending two textures.
//
// Usage:
//
//	go run ./example/transformations/
//	LEARNGL_CONFIG=learngl.yaml go run ./example/transformations/
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
	err := opengl.Main(scenes.TransformationsConfig(), func(cfg learngl.Config) learngl.Scene {
		return scenes.NewTransformations(cfg)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
