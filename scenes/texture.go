package scenes

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
)

// TexturedQuadVertices interleaves position, color and texture coordinates
// for the four corners of a quad, drawn with RectangleIndices.
var TexturedQuadVertices = []float32{
	// positions      // colors     // texture coords
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,   // top right
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,  // bottom right
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,  // top left
}

// Texture files shipped with the exercises.
const (
	ContainerTexture = "container.bmp"
	SmileyTexture    = "smiley.bmp"
)

func newTexturedQuad(dev learngl.Device) (*learngl.Mesh, error) {
	return learngl.NewMesh(dev, learngl.MeshDesc{
		Vertices: TexturedQuadVertices,
		Indices:  RectangleIndices,
		Layout:   learngl.PositionsColorsTexCoords(),
	})
}

// TexturesConfig is the window for the texture introduction.
func TexturesConfig() learngl.Config {
	cfg := learngl.DefaultConfig()
	cfg.Window.Title = "Textures"
	return cfg
}

// Textured draws a quad sampling one texture tinted by vertex colors. Its
// shaders are loaded from files.
type Textured struct {
	cfg     learngl.Config
	program *learngl.Program
	mesh    *learngl.Mesh
	texture *learngl.Texture
}

// NewTextured returns the scene. Shaders come from cfg.ShaderDir and the
// texture from cfg.AssetDir when those are set.
func NewTextured(cfg learngl.Config) *Textured { return &Textured{cfg: cfg} }

func (s *Textured) Setup(dev learngl.Device, logger *slog.Logger) error {
	var err error
	s.program, err = learngl.ProgramBuilder{Device: dev, Logger: logger}.Build(
		shaderSource(s.cfg, "textures.vert"), shaderSource(s.cfg, "textures.frag"))
	if err != nil {
		return err
	}
	s.texture, err = learngl.LoadTexture(dev, imageSource(s.cfg, ContainerTexture), learngl.TextureOptions{})
	if err != nil {
		return err
	}
	s.mesh, err = newTexturedQuad(dev)
	return err
}

func (s *Textured) Draw(learngl.Frame) error {
	if err := s.program.Use(); err != nil {
		return err
	}
	if err := s.program.SetInt("texture1", 0); err != nil {
		return err
	}
	if err := s.texture.Bind(0); err != nil {
		return err
	}
	return s.mesh.Draw(s.program)
}

func (s *Textured) Release() {
	s.mesh.Release()
	s.texture.Release()
	s.program.Release()
}

func (s *Textured) Programs() []*learngl.Program {
	return []*learngl.Program{s.program}
}

// TransformationsConfig opens a square window.
func TransformationsConfig() learngl.Config {
	cfg := learngl.DefaultConfig()
	cfg.Window.Title = "Transformations"
	cfg.Window.Width = 800
	cfg.Window.Height = 800
	return cfg
}

// Transformations draws the textured quad blended with a second texture,
// moved to the bottom right corner and spinning about the z axis.
type Transformations struct {
	cfg      learngl.Config
	program  *learngl.Program
	mesh     *learngl.Mesh
	textures [2]*learngl.Texture
}

// NewTransformations returns the scene. Shaders come from cfg.ShaderDir and
// textures from cfg.AssetDir when those are set.
func NewTransformations(cfg learngl.Config) *Transformations {
	return &Transformations{cfg: cfg}
}

// Transform returns the model matrix at time t seconds.
func Transform(t float64) mgl32.Mat4 {
	return mgl32.Translate3D(0.5, -0.5, 0.0).Mul4(mgl32.HomogRotate3DZ(float32(t)))
}

func (s *Transformations) Setup(dev learngl.Device, logger *slog.Logger) error {
	var err error
	s.program, err = learngl.ProgramBuilder{Device: dev, Logger: logger}.Build(
		shaderSource(s.cfg, "transform.vert"), shaderSource(s.cfg, "transform.frag"))
	if err != nil {
		return err
	}
	for i, name := range []string{ContainerTexture, SmileyTexture} {
		s.textures[i], err = learngl.LoadTexture(dev, imageSource(s.cfg, name), learngl.TextureOptions{})
		if err != nil {
			return err
		}
	}
	s.mesh, err = newTexturedQuad(dev)
	return err
}

func (s *Transformations) Draw(f learngl.Frame) error {
	p := s.program
	if err := p.Use(); err != nil {
		return err
	}
	for i, t := range s.textures {
		if err := t.Bind(uint32(i)); err != nil {
			return err
		}
	}
	if err := p.SetInt("texture1", 0); err != nil {
		return err
	}
	if err := p.SetInt("texture2", 1); err != nil {
		return err
	}
	if err := p.SetMat4("transform", Transform(f.Time)); err != nil {
		return err
	}
	return s.mesh.Draw(p)
}

func (s *Transformations) Release() {
	s.mesh.Release()
	for _, t := range s.textures {
		t.Release()
	}
	s.program.Release()
}

func (s *Transformations) Programs() []*learngl.Program {
	return []*learngl.Program{s.program}
}
