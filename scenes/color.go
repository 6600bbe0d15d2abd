package scenes

import (
	"log/slog"

	"github.com/go-theft-auto/learngl"
)

const (
	colorVertexShader = `#version 330 core
layout (location = 0) in vec3 pos;
layout (location = 1) in vec3 color;
out vec3 vertexColor;
void main()
{
    gl_Position = vec4(pos, 1.0);
    vertexColor = color;
}
`

	colorFragmentShader = `#version 330 core
out vec4 FragColor;
in  vec3 vertexColor;
void main()
{
    FragColor = vec4(vertexColor, 1.0f);
}
`
)

// ColoredTriangleVertices interleaves a position and an RGB color per
// vertex.
var ColoredTriangleVertices = []float32{
	// positions     // colors
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0,  // bottom right
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,   // top
}

// ShadersConfig is the window for the shader introduction.
func ShadersConfig() learngl.Config {
	cfg := learngl.DefaultConfig()
	cfg.Window.Title = "Introduction To Shaders and GLSL"
	return cfg
}

// VertexColors draws a triangle whose colors are interpolated from a
// second vertex attribute.
type VertexColors struct {
	program *learngl.Program
	mesh    *learngl.Mesh
}

// NewVertexColors returns the scene; GPU objects are created in Setup.
func NewVertexColors() *VertexColors { return &VertexColors{} }

func (s *VertexColors) Setup(dev learngl.Device, logger *slog.Logger) error {
	var err error
	s.program, err = learngl.ProgramBuilder{Device: dev, Logger: logger}.Build(
		learngl.Inline(colorVertexShader), learngl.Inline(colorFragmentShader))
	if err != nil {
		return err
	}
	s.mesh, err = learngl.NewMesh(dev, learngl.MeshDesc{
		Vertices: ColoredTriangleVertices,
		Layout:   learngl.PositionsColors(),
	})
	return err
}

func (s *VertexColors) Draw(learngl.Frame) error {
	return s.mesh.Draw(s.program)
}

func (s *VertexColors) Release() {
	s.mesh.Release()
	s.program.Release()
}

func (s *VertexColors) Programs() []*learngl.Program {
	return []*learngl.Program{s.program}
}
