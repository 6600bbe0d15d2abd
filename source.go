package learngl

import (
	"io/fs"
	"os"
)

// ShaderSource supplies the text of one shader stage.
type ShaderSource interface {
	// Load returns the full source text.
	Load() (string, error)
	// Name identifies the source in diagnostics.
	Name() string
}

// Inline is shader source given as a literal string.
type Inline string

func (s Inline) Load() (string, error) { return string(s), nil }
func (s Inline) Name() string          { return "inline" }

// File is shader source read from a path on disk each time it is loaded.
type File string

func (f File) Load() (string, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f File) Name() string { return string(f) }

// FSFile is shader source read from a file system, typically an embed.FS.
type FSFile struct {
	FS   fs.FS
	Path string
}

func (f FSFile) Load() (string, error) {
	data, err := fs.ReadFile(f.FS, f.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f FSFile) Name() string { return f.Path }
