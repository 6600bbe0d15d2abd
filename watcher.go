package learngl

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ShaderWatcher rebuilds programs when the shader files they were built from
// change on disk. File system events arrive on a background goroutine, which
// only records the changed paths; programs are rebuilt by ReloadPending on
// the render thread.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	done    chan struct{}
	wg      sync.WaitGroup

	mu       sync.Mutex
	programs map[string][]*Program // cleaned path -> programs using it
	dirs     map[string]bool
	dirty    map[string]bool
}

// NewShaderWatcher starts an fsnotify watcher. A nil logger uses slog.Default.
func NewShaderWatcher(logger *slog.Logger) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	sw := &ShaderWatcher{
		watcher:  w,
		logger:   logger,
		done:     make(chan struct{}),
		programs: make(map[string][]*Program),
		dirs:     make(map[string]bool),
		dirty:    make(map[string]bool),
	}
	sw.wg.Add(1)
	go sw.run()
	return sw, nil
}

// Watch registers every File source of p. Inline and embedded sources are
// ignored. Directories are watched rather than files so that editors which
// save by renaming a temporary file are still noticed.
func (sw *ShaderWatcher) Watch(p *Program) error {
	vs, fs := p.Sources()
	for _, src := range []ShaderSource{vs, fs} {
		f, ok := src.(File)
		if !ok {
			continue
		}
		path := filepath.Clean(string(f))
		dir := filepath.Dir(path)

		sw.mu.Lock()
		watched := sw.dirs[dir]
		sw.mu.Unlock()
		if !watched {
			if err := sw.watcher.Add(dir); err != nil {
				return err
			}
		}

		sw.mu.Lock()
		sw.dirs[dir] = true
		sw.programs[path] = append(sw.programs[path], p)
		sw.mu.Unlock()
		sw.logger.Debug("watching shader", "path", path)
	}
	return nil
}

func (sw *ShaderWatcher) run() {
	defer sw.wg.Done()
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			path := filepath.Clean(event.Name)
			sw.mu.Lock()
			if _, ok := sw.programs[path]; ok {
				sw.dirty[path] = true
			}
			sw.mu.Unlock()
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.logger.Warn("shader watcher error", "err", err)
		}
	}
}

// Pending returns the programs whose sources changed since the last call,
// each at most once.
func (sw *ShaderWatcher) Pending() []*Program {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if len(sw.dirty) == 0 {
		return nil
	}
	var out []*Program
	seen := make(map[*Program]bool)
	for path := range sw.dirty {
		for _, p := range sw.programs[path] {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	clear(sw.dirty)
	return out
}

// ReloadPending rebuilds every changed program. A program that fails to
// rebuild keeps its previous handle; the failure is logged and counted.
func (sw *ShaderWatcher) ReloadPending() (reloaded, failed int) {
	for _, p := range sw.Pending() {
		if p.Handle() == 0 {
			continue
		}
		if err := p.Reload(); err != nil {
			failed++
			sw.logger.Error("shader reload failed, keeping previous program", "err", err)
			continue
		}
		reloaded++
		sw.logger.Info("shader program reloaded", "program", p.Handle())
	}
	return reloaded, failed
}

// Close stops the watcher goroutine and releases the fsnotify watcher.
func (sw *ShaderWatcher) Close() error {
	select {
	case <-sw.done:
		return nil
	default:
	}
	close(sw.done)
	err := sw.watcher.Close()
	sw.wg.Wait()
	return err
}
