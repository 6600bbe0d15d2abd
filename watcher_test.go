package learngl_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/fake"
)

func newWatchedProgram(t *testing.T, dev *fake.Device) (*learngl.Program, string, *learngl.ShaderWatcher) {
	t.Helper()
	path := writeFile(t, "frag.glsl", testFragmentShader)

	p, err := learngl.BuildProgram(dev, learngl.Inline(testVertexShader), learngl.File(path))
	require.NoError(t, err)

	w, err := learngl.NewShaderWatcher(quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	require.NoError(t, w.Watch(p))
	return p, path, w
}

func TestShaderWatcher_ReloadsOnWrite(t *testing.T) {
	dev := fake.NewDevice()
	p, path, w := newWatchedProgram(t, dev)
	old := p.Handle()

	require.NoError(t, os.WriteFile(path, []byte(testFragmentShader+"\n"), 0o644))

	reloaded := 0
	require.Eventually(t, func() bool {
		n, _ := w.ReloadPending()
		reloaded += n
		return reloaded > 0
	}, 5*time.Second, 10*time.Millisecond)

	assert.NotEqual(t, old, p.Handle())
	assert.Equal(t, []uint32{p.Handle()}, dev.Live(fake.KindProgram))
}

func TestShaderWatcher_BrokenEditKeepsProgram(t *testing.T) {
	dev := fake.NewDevice()
	p, path, w := newWatchedProgram(t, dev)
	old := p.Handle()

	require.NoError(t, os.WriteFile(path, []byte(brokenFragmentShader), 0o644))

	failed := 0
	require.Eventually(t, func() bool {
		_, n := w.ReloadPending()
		failed += n
		return failed > 0
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, old, p.Handle())
	assert.Equal(t, []uint32{old}, dev.Live(fake.KindProgram))
}

func TestShaderWatcher_IgnoresOtherFiles(t *testing.T) {
	dev := fake.NewDevice()
	_, path, w := newWatchedProgram(t, dev)

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))

	// Give the event time to arrive; it must not mark anything dirty.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, w.Pending())
}

func TestShaderWatcher_InlineSourcesIgnored(t *testing.T) {
	dev := fake.NewDevice()
	p := buildTestProgram(t, dev)

	w, err := learngl.NewShaderWatcher(nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(p))
	assert.Empty(t, w.Pending())
}

func TestShaderWatcher_Close(t *testing.T) {
	w, err := learngl.NewShaderWatcher(quietLogger())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestLoop_HotReload(t *testing.T) {
	dev := fake.NewDevice()
	path := writeFile(t, "frag.glsl", testFragmentShader)
	scene := &programScene{fragment: learngl.File(path)}

	w, err := learngl.NewShaderWatcher(quietLogger())
	require.NoError(t, err)
	defer w.Close()

	win := fake.NewWindow(800, 600)
	var first uint32
	hook := func(f learngl.Frame) error {
		h := scene.program.Handle()
		if f.Index == 0 {
			first = h
			require.NoError(t, os.WriteFile(path, []byte(testFragmentShader+"\n"), 0o644))
			return nil
		}
		if h != first {
			win.SetShouldClose(true)
		}
		time.Sleep(time.Millisecond)
		return nil
	}

	loop := learngl.NewLoop(win, dev, scene, learngl.DefaultConfig(),
		learngl.WithLogger(quietLogger()), learngl.WithWatcher(w),
		learngl.WithFrameHook(hook), learngl.WithMaxFrames(5000))
	require.NoError(t, loop.Run())

	assert.Less(t, loop.Frames(), uint64(5000), "program was never reloaded")
	assert.Zero(t, dev.LiveCount())
}

// programScene draws a triangle with a program built from an arbitrary
// fragment source.
type programScene struct {
	fragment learngl.ShaderSource
	program  *learngl.Program
	mesh     *learngl.Mesh
}

func (s *programScene) Setup(dev learngl.Device, logger *slog.Logger) error {
	var err error
	s.program, err = learngl.ProgramBuilder{Device: dev, Logger: logger}.Build(learngl.Inline(testVertexShader), s.fragment)
	if err != nil {
		return err
	}
	s.mesh, err = learngl.NewMesh(dev, learngl.MeshDesc{Vertices: testTriangle, Layout: learngl.Positions3()})
	return err
}

func (s *programScene) Draw(learngl.Frame) error { return s.mesh.Draw(s.program) }

func (s *programScene) Release() {
	s.mesh.Release()
	s.program.Release()
}

func (s *programScene) Programs() []*learngl.Program { return []*learngl.Program{s.program} }
