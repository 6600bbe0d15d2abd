package scenes_test

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/fake"
	"github.com/go-theft-auto/learngl/scenes"
)

func runEntry(t *testing.T, e scenes.Entry, cfg learngl.Config, frames int) (*fake.Device, *learngl.Loop) {
	t.Helper()
	dev := fake.NewDevice()
	win := fake.NewWindow(cfg.Window.Width, cfg.Window.Height)
	win.CloseAfter = frames

	loop := learngl.NewLoop(win, dev, e.New(cfg), cfg,
		learngl.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, loop.Run())
	return dev, loop
}

func TestAll(t *testing.T) {
	want := []string{
		"firstwindow", "hellowindow", "hellotriangle", "hellorectangle",
		"twotriangles", "shaders", "textures", "transformations",
	}
	var got []string
	for _, e := range scenes.All() {
		got = append(got, e.Name)
		require.NoError(t, e.Config().Validate(), e.Name)
	}
	assert.Equal(t, want, got)

	_, ok := scenes.Lookup("hellotriangle")
	assert.True(t, ok)
	_, ok = scenes.Lookup("nope")
	assert.False(t, ok)
}

func TestEntries_RunCleanly(t *testing.T) {
	for _, e := range scenes.All() {
		t.Run(e.Name, func(t *testing.T) {
			dev, loop := runEntry(t, e, e.Config(), 3)

			assert.Equal(t, uint64(3), loop.Frames())
			assert.Equal(t, 3, dev.Clears())
			assert.Zero(t, dev.LiveCount(), "every object must be released")
			assert.Empty(t, dev.DoubleFrees())
			assert.Empty(t, dev.Errors())
		})
	}
}

func TestEntries_DrawCalls(t *testing.T) {
	tests := []struct {
		name     string
		perFrame int
		count    int32
		indexed  bool
	}{
		{"firstwindow", 0, 0, false},
		{"hellowindow", 0, 0, false},
		{"hellotriangle", 1, 3, false},
		{"hellorectangle", 1, 6, true},
		{"twotriangles", 2, 3, false},
		{"shaders", 1, 3, false},
		{"textures", 1, 6, true},
		{"transformations", 1, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := scenes.Lookup(tt.name)
			require.True(t, ok)
			dev, _ := runEntry(t, e, e.Config(), 2)

			draws := dev.Draws()
			require.Len(t, draws, 2*tt.perFrame)
			for _, d := range draws {
				assert.Equal(t, tt.count, d.Count)
				assert.Equal(t, tt.indexed, d.Indexed)
			}
		})
	}
}

func TestConfigs(t *testing.T) {
	first := scenes.FirstWindowConfig()
	assert.Equal(t, 640, first.Window.Width)
	assert.Equal(t, 480, first.Window.Height)
	assert.Equal(t, learngl.Color{0.1, 0.4, 0.1, 1.0}, first.ClearColor)

	assert.Equal(t, learngl.Color{0.2, 0.3, 0.4, 1.0}, scenes.HelloWindowConfig().ClearColor)
	assert.True(t, scenes.HelloRectangleConfig().Wireframe)

	tr := scenes.TransformationsConfig()
	assert.Equal(t, tr.Window.Width, tr.Window.Height)
}

func TestTwoTriangles_SeparateVertexArrays(t *testing.T) {
	e, _ := scenes.Lookup("twotriangles")
	dev, _ := runEntry(t, e, e.Config(), 1)

	draws := dev.Draws()
	require.Len(t, draws, 2)
	assert.NotEqual(t, draws[0].VertexArray, draws[1].VertexArray)
	assert.Equal(t, draws[0].Program, draws[1].Program)
}

func TestTransform(t *testing.T) {
	m := scenes.Transform(0)
	assert.True(t, m.ApproxEqual(mgl32.Translate3D(0.5, -0.5, 0)))

	// A quarter turn maps +x to +y before the translation.
	p := scenes.Transform(float64(mgl32.DegToRad(90))).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0.5, p.X(), 1e-5)
	assert.InDelta(t, 0.5, p.Y(), 1e-5)
}

func TestTextured_FromDirectories(t *testing.T) {
	shaderDir, assetDir := t.TempDir(), t.TempDir()
	copyAsset(t, "shaders/textures.vert", shaderDir)
	copyAsset(t, "shaders/textures.frag", shaderDir)
	copyAsset(t, "textures/"+scenes.ContainerTexture, assetDir)

	cfg := scenes.TexturesConfig()
	cfg.ShaderDir = shaderDir
	cfg.AssetDir = assetDir

	e, _ := scenes.Lookup("textures")
	dev, _ := runEntry(t, e, cfg, 1)
	assert.Len(t, dev.Draws(), 1)
	assert.Zero(t, dev.LiveCount())
}

func TestTextured_MissingShaderFile(t *testing.T) {
	cfg := scenes.TexturesConfig()
	cfg.ShaderDir = t.TempDir()

	dev := fake.NewDevice()
	win := fake.NewWindow(800, 600)
	loop := learngl.NewLoop(win, dev, scenes.NewTextured(cfg), cfg,
		learngl.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	err := loop.Run()
	stage, ok := learngl.StageOf(err)
	require.True(t, ok)
	assert.Equal(t, learngl.StageRead, stage)
	assert.Zero(t, win.Swaps())
	assert.Zero(t, dev.LiveCount(), "partial setup must be released")
	assert.Empty(t, dev.DoubleFrees())
}

func TestTransformations_Uniforms(t *testing.T) {
	e, _ := scenes.Lookup("transformations")
	cfg := e.Config()
	dev := fake.NewDevice()
	scene := scenes.NewTransformations(cfg)
	win := fake.NewWindow(800, 800)
	win.CloseAfter = 1

	var program uint32
	hook := func(learngl.Frame) error {
		program = scene.Programs()[0].Handle()
		for _, name := range []string{"texture1", "texture2", "transform"} {
			_, ok := dev.Uniform(program, name)
			assert.True(t, ok, name)
		}
		v, _ := dev.Uniform(program, "texture2")
		assert.Equal(t, int32(1), v)
		assert.NotZero(t, dev.BoundTexture(0))
		assert.NotZero(t, dev.BoundTexture(1))
		return nil
	}

	loop := learngl.NewLoop(win, dev, scene, cfg,
		learngl.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), learngl.WithFrameHook(hook))
	require.NoError(t, loop.Run())
	assert.NotZero(t, program)
}

func copyAsset(t *testing.T, name, dir string) {
	t.Helper()
	data, err := fs.ReadFile(scenes.Assets(), name)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, filepath.Base(name)), data, 0o644))
}
