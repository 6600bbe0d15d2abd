package learngl

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageSource supplies encoded image bytes for a texture.
type ImageSource interface {
	Open() ([]byte, error)
	Name() string
}

// ImageFile reads an image from disk.
type ImageFile string

func (f ImageFile) Open() ([]byte, error) { return os.ReadFile(string(f)) }
func (f ImageFile) Name() string          { return string(f) }

// ImageFS reads an image from a file system.
type ImageFS struct {
	FS   fs.FS
	Path string
}

func (f ImageFS) Open() ([]byte, error) { return fs.ReadFile(f.FS, f.Path) }
func (f ImageFS) Name() string          { return f.Path }

// TextureOptions controls sampling and upload of a texture.
type TextureOptions struct {
	Wrap   TextureWrap
	Filter TextureFilter
	// KeepOrientation disables the vertical flip. Images are stored top row
	// first while texture coordinates start at the bottom.
	KeepOrientation bool
	NoMipmap        bool
}

// Texture owns a 2D RGBA texture object.
type Texture struct {
	dev           Device
	handle        uint32
	width, height int
}

// DecodeRGBA decodes data in any registered format (PNG, JPEG, GIF, BMP,
// TIFF, WebP) and converts it to tightly packed RGBA.
func DecodeRGBA(data []byte, flip bool) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	if flip {
		flipVertical(dst)
	}
	return dst, nil
}

func flipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	rowLen := img.Bounds().Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bot := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// LoadTexture decodes src and uploads it as a new texture.
func LoadTexture(dev Device, src ImageSource, opts TextureOptions) (*Texture, error) {
	data, err := src.Open()
	if err != nil {
		return nil, &SetupError{Stage: StageRead, Subject: src.Name(), Err: err}
	}
	img, err := DecodeRGBA(data, !opts.KeepOrientation)
	if err != nil {
		return nil, &SetupError{Stage: StageTexture, Subject: src.Name(), Diagnostic: "decode", Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &SetupError{Stage: StageTexture, Subject: src.Name(), Diagnostic: "empty image"}
	}
	return NewTexture(dev, img, opts)
}

// NewTexture uploads img as a new texture. An image without pixels is
// rejected before anything is allocated.
func NewTexture(dev Device, img *image.RGBA, opts TextureOptions) (*Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, &SetupError{Stage: StageTexture, Subject: "texture",
			Diagnostic: fmt.Sprintf("empty %dx%d image", w, h)}
	}
	pix := img.Pix
	if img.Stride != w*4 {
		pix = make([]byte, 0, w*h*4)
		for y := 0; y < h; y++ {
			pix = append(pix, img.Pix[y*img.Stride:y*img.Stride+w*4]...)
		}
	}

	t := &Texture{dev: dev, width: w, height: h}
	t.handle = dev.CreateTexture()
	dev.BindTexture(0, t.handle)
	dev.TexParameters(opts.Wrap, opts.Filter)
	dev.TexImage2DRGBA(int32(w), int32(h), pix)
	if !opts.NoMipmap {
		dev.GenerateMipmap()
	}
	dev.BindTexture(0, 0)
	return t, nil
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Handle returns the texture object name, or 0 after Release.
func (t *Texture) Handle() uint32 { return t.handle }

// Bind binds the texture to texture unit unit.
func (t *Texture) Bind(unit uint32) error {
	if t == nil || t.handle == 0 {
		return ErrReleased
	}
	t.dev.BindTexture(unit, t.handle)
	return nil
}

// Release deletes the texture. It is safe to call more than once.
func (t *Texture) Release() {
	if t == nil || t.handle == 0 {
		return
	}
	t.dev.DeleteTexture(t.handle)
	t.handle = 0
}
