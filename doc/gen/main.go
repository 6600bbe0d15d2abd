// Command gen runs every exercise in a hidden window for a few frames,
// captures the last frame and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -frames 30 -width 400 hellotriangle textures
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/image/draw"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
	"github.com/go-theft-auto/learngl/scenes"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	frames := flag.Uint64("frames", 3, "frames to render before capturing")
	width := flag.Int("width", 0, "scale screenshots to this width (0 keeps the window size)")
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	level := flag.String("log", "warn", "log level")
	flag.Parse()

	if *frames == 0 {
		return fmt.Errorf("-frames must be at least 1")
	}
	logger, err := learngl.NewLogger(*level, os.Stderr)
	if err != nil {
		return err
	}

	entries, err := selected(flag.Args())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, e := range entries {
		img, err := capture(e, *frames, logger)
		if err != nil {
			return fmt.Errorf("capture %s: %w", e.Name, err)
		}
		if *width > 0 {
			img = scale(img, *width)
		}
		path := filepath.Join(*outDir, e.Name+".jpg")
		if err := save(path, img); err != nil {
			return err
		}
		b := img.Bounds()
		fmt.Printf("  %s.jpg (%dx%d)\n", e.Name, b.Dx(), b.Dy())
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(entries), *outDir)
	return nil
}

func selected(names []string) ([]scenes.Entry, error) {
	if len(names) == 0 {
		return scenes.All(), nil
	}
	out := make([]scenes.Entry, 0, len(names))
	for _, name := range names {
		e, ok := scenes.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown exercise %q", name)
		}
		out = append(out, e)
	}
	return out, nil
}

// capture opens a fresh hidden window per exercise so no GL state leaks
// between screenshots. The image is read from the back buffer just before
// the last frame is presented.
func capture(e scenes.Entry, frames uint64, logger *slog.Logger) (*image.RGBA, error) {
	cfg := e.Config()
	cfg.Window.Hidden = true
	cfg.Window.VSync = false

	win, err := opengl.OpenWindow(cfg.Window)
	if err != nil {
		return nil, err
	}
	dev := opengl.NewDevice()

	var shot *image.RGBA
	hook := func(f learngl.Frame) error {
		if f.Index+1 == frames {
			w, h := win.FramebufferSize()
			shot = dev.ReadPixels(w, h)
		}
		return nil
	}

	loop := learngl.NewLoop(win, dev, e.New(cfg), cfg,
		learngl.WithLogger(logger.With("exercise", e.Name)),
		learngl.WithMaxFrames(frames),
		learngl.WithFrameHook(hook))
	if err := loop.Run(); err != nil {
		return nil, err
	}
	if shot == nil {
		return nil, fmt.Errorf("window closed after %d of %d frames", loop.Frames(), frames)
	}
	if shot.Bounds().Empty() {
		return nil, fmt.Errorf("empty framebuffer")
	}
	return shot, nil
}

func scale(src *image.RGBA, width int) *image.RGBA {
	b := src.Bounds()
	height := b.Dy() * width / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
