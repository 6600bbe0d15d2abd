package scenes

import (
	"log/slog"

	"github.com/go-theft-auto/learngl"
)

// Shaders shared by the first triangle exercises: positions pass straight
// through and every fragment is orange.
const (
	positionVertexShader = `#version 330 core
layout (location = 0) in vec3 pos;
void main()
{
    gl_Position = vec4(pos.x, pos.y, pos.z, 1.0);
}
`

	orangeFragmentShader = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0f, .5f, .2f, 1.0f);
}
`
)

// TriangleVertices is one triangle in normalized device coordinates.
var TriangleVertices = []float32{
	-0.5, -0.5, 0.0, // left
	0.5, -0.5, 0.0,  // right
	0.0, 0.5, 0.0,   // top
}

// HelloTriangleConfig is the window for the first triangle.
func HelloTriangleConfig() learngl.Config {
	cfg := learngl.DefaultConfig()
	cfg.Window.Title = "Hello Triangle"
	return cfg
}

// HelloTriangle draws one orange triangle with a single DrawArrays call.
type HelloTriangle struct {
	program *learngl.Program
	mesh    *learngl.Mesh
}

// NewHelloTriangle returns the scene; GPU objects are created in Setup.
func NewHelloTriangle() *HelloTriangle { return &HelloTriangle{} }

func (s *HelloTriangle) Setup(dev learngl.Device, logger *slog.Logger) error {
	var err error
	s.program, err = learngl.ProgramBuilder{Device: dev, Logger: logger}.Build(
		learngl.Inline(positionVertexShader), learngl.Inline(orangeFragmentShader))
	if err != nil {
		return err
	}
	s.mesh, err = learngl.NewMesh(dev, learngl.MeshDesc{
		Vertices: TriangleVertices,
		Layout:   learngl.Positions3(),
	})
	return err
}

func (s *HelloTriangle) Draw(learngl.Frame) error {
	return s.mesh.Draw(s.program)
}

func (s *HelloTriangle) Release() {
	s.mesh.Release()
	s.program.Release()
}

func (s *HelloTriangle) Programs() []*learngl.Program {
	return []*learngl.Program{s.program}
}

// RectangleVertices are the four corners of a rectangle.
var RectangleVertices = []float32{
	0.5, 0.5, 0.0,   // top right
	0.5, -0.5, 0.0,  // bottom right
	-0.5, -0.5, 0.0, // bottom left
	-0.5, 0.5, 0.0,  // top left
}

// RectangleIndices splits the rectangle into two triangles.
var RectangleIndices = []uint32{
	0, 1, 3, // first triangle
	1, 2, 3, // second triangle
}

// HelloRectangleConfig draws in wireframe so both triangles are visible.
func HelloRectangleConfig() learngl.Config {
	cfg := learngl.DefaultConfig()
	cfg.Window.Title = "Hello Rectangle"
	cfg.Wireframe = true
	return cfg
}

// HelloRectangle draws an indexed rectangle with one DrawElements call.
type HelloRectangle struct {
	program *learngl.Program
	mesh    *learngl.Mesh
}

// NewHelloRectangle returns the scene; GPU objects are created in Setup.
func NewHelloRectangle() *HelloRectangle { return &HelloRectangle{} }

func (s *HelloRectangle) Setup(dev learngl.Device, logger *slog.Logger) error {
	var err error
	s.program, err = learngl.ProgramBuilder{Device: dev, Logger: logger}.Build(
		learngl.Inline(positionVertexShader), learngl.Inline(orangeFragmentShader))
	if err != nil {
		return err
	}
	s.mesh, err = learngl.NewMesh(dev, learngl.MeshDesc{
		Vertices: RectangleVertices,
		Indices:  RectangleIndices,
		Layout:   learngl.Positions3(),
	})
	return err
}

func (s *HelloRectangle) Draw(learngl.Frame) error {
	return s.mesh.Draw(s.program)
}

func (s *HelloRectangle) Release() {
	s.mesh.Release()
	s.program.Release()
}

func (s *HelloRectangle) Programs() []*learngl.Program {
	return []*learngl.Program{s.program}
}

// Two triangles side by side, each in its own buffer.
var (
	LeftTriangleVertices = []float32{
		-0.9, -0.5, 0.0, // left
		-0.0, -0.5, 0.0, // right
		-0.45, 0.5, 0.0, // top
	}
	RightTriangleVertices = []float32{
		0.0, -0.5, 0.0, // left
		0.9, -0.5, 0.0, // right
		0.45, 0.5, 0.0, // top
	}
)

// TwoTrianglesConfig shares the Hello Triangle window.
func TwoTrianglesConfig() learngl.Config {
	return HelloTriangleConfig()
}

// TwoTriangles draws two triangles from two vertex arrays with one program.
type TwoTriangles struct {
	program *learngl.Program
	meshes  [2]*learngl.Mesh
}

// NewTwoTriangles returns the scene; GPU objects are created in Setup.
func NewTwoTriangles() *TwoTriangles { return &TwoTriangles{} }

func (s *TwoTriangles) Setup(dev learngl.Device, logger *slog.Logger) error {
	var err error
	s.program, err = learngl.ProgramBuilder{Device: dev, Logger: logger}.Build(
		learngl.Inline(positionVertexShader), learngl.Inline(orangeFragmentShader))
	if err != nil {
		return err
	}
	for i, vertices := range [][]float32{LeftTriangleVertices, RightTriangleVertices} {
		s.meshes[i], err = learngl.NewMesh(dev, learngl.MeshDesc{
			Vertices: vertices,
			Layout:   learngl.Positions3(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *TwoTriangles) Draw(learngl.Frame) error {
	for _, m := range s.meshes {
		if err := m.Draw(s.program); err != nil {
			return err
		}
	}
	return nil
}

func (s *TwoTriangles) Release() {
	for _, m := range s.meshes {
		m.Release()
	}
	s.program.Release()
}

func (s *TwoTriangles) Programs() []*learngl.Program {
	return []*learngl.Program{s.program}
}
