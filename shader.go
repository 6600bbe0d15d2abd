package learngl

import (
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// emptyInfoLog is reported when the driver fails a compile or link without
// writing an info log.
const emptyInfoLog = "driver reported failure without an info log"

// ProgramBuilder compiles and links shader programs on a Device.
type ProgramBuilder struct {
	Device Device
	Logger *slog.Logger
}

// BuildProgram compiles vertex and fragment and links them into a program.
func BuildProgram(dev Device, vertex, fragment ShaderSource) (*Program, error) {
	return ProgramBuilder{Device: dev}.Build(vertex, fragment)
}

// Build compiles both stages and links them. The intermediate shader objects
// are deleted before Build returns, whether it succeeds or not.
func (b ProgramBuilder) Build(vertex, fragment ShaderSource) (*Program, error) {
	handle, err := b.link(vertex, fragment)
	if err != nil {
		return nil, err
	}
	return &Program{
		builder:   b,
		handle:    handle,
		vertex:    vertex,
		fragment:  fragment,
		locations: make(map[string]int32),
	}, nil
}

func (b ProgramBuilder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

func (b ProgramBuilder) link(vertex, fragment ShaderSource) (uint32, error) {
	dev := b.Device

	vs, err := b.compile(VertexStage, vertex)
	if err != nil {
		return 0, err
	}
	fs, err := b.compile(FragmentStage, fragment)
	if err != nil {
		dev.DeleteShader(vs)
		return 0, err
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)
	ok := dev.LinkProgram(program)

	// Stages are no longer needed once the link has been attempted.
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	if !ok {
		diag := infoLog(dev.ProgramInfoLog(program))
		dev.DeleteProgram(program)
		b.logger().Debug("shader program link failed",
			"stage", StageLink.String(), "vertex", vertex.Name(), "fragment", fragment.Name(), "diagnostic", diag)
		return 0, &SetupError{Stage: StageLink, Subject: "program", Diagnostic: diag}
	}

	b.logger().Debug("shader program linked", "program", program, "vertex", vertex.Name(), "fragment", fragment.Name())
	return program, nil
}

func (b ProgramBuilder) compile(stage ShaderStage, src ShaderSource) (uint32, error) {
	text, err := src.Load()
	if err != nil {
		b.logger().Debug("shader source not read", "stage", StageRead.String(), "source", src.Name(), "err", err)
		return 0, &SetupError{Stage: StageRead, Subject: src.Name(), Err: err}
	}

	dev := b.Device
	shader := dev.CreateShader(stage)
	dev.ShaderSource(shader, text)
	if !dev.CompileShader(shader) {
		diag := infoLog(dev.ShaderInfoLog(shader))
		dev.DeleteShader(shader)
		b.logger().Debug("shader compilation failed",
			"stage", StageCompile.String(), "shader", stage.String(), "source", src.Name(), "diagnostic", diag)
		return 0, &SetupError{Stage: StageCompile, Subject: stage.String(), Diagnostic: diag}
	}

	b.logger().Debug("shader compiled", "shader", stage.String(), "source", src.Name())
	return shader, nil
}

func infoLog(s string) string {
	s = strings.TrimRight(s, "\x00 \t\r\n")
	if s == "" {
		return emptyInfoLog
	}
	return s
}

// Program is a linked shader program. It owns its handle and deletes it on
// Release.
type Program struct {
	builder   ProgramBuilder
	handle    uint32
	vertex    ShaderSource
	fragment  ShaderSource
	locations map[string]int32
}

// Handle returns the program object name, or 0 after Release.
func (p *Program) Handle() uint32 {
	if p == nil {
		return 0
	}
	return p.handle
}

// Sources returns the vertex and fragment sources the program was built from.
func (p *Program) Sources() (vertex, fragment ShaderSource) {
	return p.vertex, p.fragment
}

// Use makes p the current program for subsequent draw calls.
func (p *Program) Use() error {
	if p == nil || p.handle == 0 {
		return ErrReleased
	}
	p.builder.Device.UseProgram(p.handle)
	return nil
}

// Reload rebuilds the program from its sources. On failure the current
// program is left untouched and the build error is returned.
func (p *Program) Reload() error {
	if p == nil || p.handle == 0 {
		return ErrReleased
	}
	handle, err := p.builder.link(p.vertex, p.fragment)
	if err != nil {
		return err
	}
	p.builder.Device.DeleteProgram(p.handle)
	p.handle = handle
	clear(p.locations)
	return nil
}

// Release deletes the program. It is safe to call more than once.
func (p *Program) Release() {
	if p == nil || p.handle == 0 {
		return
	}
	p.builder.Device.DeleteProgram(p.handle)
	p.handle = 0
	clear(p.locations)
}

func (p *Program) location(name string) int32 {
	loc, ok := p.locations[name]
	if !ok {
		loc = p.builder.Device.UniformLocation(p.handle, name)
		p.locations[name] = loc
	}
	return loc
}

// The uniform setters expect p to be the current program.

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) error {
	if p == nil || p.handle == 0 {
		return ErrReleased
	}
	p.builder.Device.Uniform1i(p.location(name), v)
	return nil
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) error {
	if p == nil || p.handle == 0 {
		return ErrReleased
	}
	p.builder.Device.Uniform1f(p.location(name), v)
	return nil
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) error {
	if p == nil || p.handle == 0 {
		return ErrReleased
	}
	p.builder.Device.Uniform4f(p.location(name), v)
	return nil
}

// SetMat4 sets a mat4 uniform. mgl32 matrices are column-major, which is
// what the API expects without transposition.
func (p *Program) SetMat4(name string, m mgl32.Mat4) error {
	if p == nil || p.handle == 0 {
		return ErrReleased
	}
	p.builder.Device.UniformMatrix4(p.location(name), m)
	return nil
}
