// Package scenes contains the "Getting Started" exercises as learngl.Scene
// implementations, together with the window settings each one runs with.
package scenes

import (
	"embed"
	"path/filepath"

	"github.com/go-theft-auto/learngl"
)

//go:embed shaders textures
var assets embed.FS

// Assets returns the embedded shader and texture files.
func Assets() embed.FS { return assets }

// shaderSource returns the named shader from cfg.ShaderDir when set, so
// that it can be edited and hot reloaded, and the embedded copy otherwise.
func shaderSource(cfg learngl.Config, name string) learngl.ShaderSource {
	if cfg.ShaderDir != "" {
		return learngl.File(filepath.Join(cfg.ShaderDir, name))
	}
	return learngl.FSFile{FS: assets, Path: "shaders/" + name}
}

// imageSource returns the named texture from cfg.AssetDir when set and the
// embedded copy otherwise.
func imageSource(cfg learngl.Config, name string) learngl.ImageSource {
	if cfg.AssetDir != "" {
		return learngl.ImageFile(filepath.Join(cfg.AssetDir, name))
	}
	return learngl.ImageFS{FS: assets, Path: "textures/" + name}
}

// Entry describes one exercise.
type Entry struct {
	Name   string
	Config func() learngl.Config
	New    func(learngl.Config) learngl.Scene
}

var entries = []Entry{
	{"firstwindow", FirstWindowConfig, func(learngl.Config) learngl.Scene { return NewClearOnly() }},
	{"hellowindow", HelloWindowConfig, func(learngl.Config) learngl.Scene { return NewClearOnly() }},
	{"hellotriangle", HelloTriangleConfig, func(learngl.Config) learngl.Scene { return NewHelloTriangle() }},
	{"hellorectangle", HelloRectangleConfig, func(learngl.Config) learngl.Scene { return NewHelloRectangle() }},
	{"twotriangles", TwoTrianglesConfig, func(learngl.Config) learngl.Scene { return NewTwoTriangles() }},
	{"shaders", ShadersConfig, func(learngl.Config) learngl.Scene { return NewVertexColors() }},
	{"textures", TexturesConfig, func(cfg learngl.Config) learngl.Scene { return NewTextured(cfg) }},
	{"transformations", TransformationsConfig, func(cfg learngl.Config) learngl.Scene { return NewTransformations(cfg) }},
}

// All returns every exercise in course order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds an exercise by name.
func Lookup(name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
