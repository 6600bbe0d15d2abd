/*
Package learngl runs the "Getting Started" OpenGL exercises: open a window,
compile shaders, upload vertex data, draw every frame and tear it all down.

# Overview

Every exercise is a Scene driven by a Loop. The loop owns the window and the
scene; scenes own their GPU objects through scoped wrappers (Program, Mesh,
Texture) whose Release methods are safe to call more than once. A scene that
fails Setup still has Release called, so partially built scenes clean up
after themselves.

All drawing goes through the Device interface. The backend/opengl package
implements it on OpenGL 4.1 core with a GLFW window; backend/fake records
calls instead so scenes can be tested without a GPU.

# Quick Start

	func init() { runtime.LockOSThread() }

	func main() {
	    err := opengl.Main(scenes.HelloTriangleConfig(), func(learngl.Config) learngl.Scene {
	        return scenes.NewHelloTriangle()
	    })
	    if err != nil {
	        fmt.Fprintln(os.Stderr, err)
	        os.Exit(1)
	    }
	}

A scene builds its objects in Setup and draws them in Draw:

	func (s *Triangle) Setup(dev learngl.Device, logger *slog.Logger) error {
	    var err error
	    b := learngl.ProgramBuilder{Device: dev, Logger: logger}
	    s.program, err = b.Build(learngl.Inline(vs), learngl.Inline(fs))
	    if err != nil {
	        return err
	    }
	    s.mesh, err = learngl.NewMesh(dev, learngl.MeshDesc{
	        Vertices: vertices,
	        Layout:   learngl.Positions3(),
	    })
	    return err
	}

	func (s *Triangle) Draw(learngl.Frame) error { return s.mesh.Draw(s.program) }

# Errors

Setup failures are *SetupError values carrying a Stage. The stage prints as
a fixed tag followed by the driver diagnostic, for example

	fragment: COMPILATION_FAILED: 0:6(1): error: syntax error, unexpected end of file

Tags are WINDOW_CREATION_FAILED, LOADER_FAILED, COMPILATION_FAILED,
LINKING_FAILED, FILE_NOT_READ, LAYOUT_MISMATCH, TEXTURE_FAILED and
CONFIG_INVALID. Vertex data that does not fit its declared layout is
rejected before anything is uploaded and wraps ErrLayoutMismatch.

# Configuration

Each exercise starts from its own Config. Setting LEARNGL_CONFIG to a YAML
or TOML file overlays the settings it names:

	window:
	  width: 1280
	  height: 720
	clear_color: [0.1, 0.1, 0.1, 1.0]
	shader_dir: scenes/shaders
	hot_reload: true
	log_level: debug

With shader_dir and hot_reload set, editing a shader file rebuilds the
program on the next frame. A shader that no longer compiles is logged and
the previous program keeps drawing.

# Keys

	Esc   close the window
	W     toggle wireframe
	R     rebuild every program from its sources
*/
package learngl
