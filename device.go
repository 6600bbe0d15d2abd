package learngl

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

// String returns the lowercase stage name used in diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferTarget selects the binding point a buffer is bound to.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Primitive is the topology used by a draw call. The exercises only draw
// triangle lists.
type Primitive int

const (
	Triangles Primitive = iota
)

// TextureFilter selects min/mag filtering for a texture.
type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
)

// TextureWrap selects the wrapping mode on both texture axes.
type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// Device is the graphics API as seen by the rest of the package.
// Handles are the raw numeric object names of the underlying API; zero is
// never a valid handle.
//
// Implementations are not safe for concurrent use and must only be called
// from the thread that owns the rendering context.
type Device interface {
	// Shaders
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Programs
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// Uniforms; location -1 is silently ignored like the real API does.
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, v [4]float32)
	UniformMatrix4(location int32, m [16]float32)

	// Vertex arrays and buffers
	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	CreateBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferFloat32(target BufferTarget, data []float32)
	BufferUint32(target BufferTarget, data []uint32)
	DeleteBuffer(buffer uint32)
	VertexAttribPointer(index uint32, components, strideBytes int32, offsetBytes uintptr)
	EnableVertexAttribArray(index uint32)

	// Textures
	CreateTexture() uint32
	BindTexture(unit uint32, texture uint32)
	TexImage2DRGBA(width, height int32, pixels []byte)
	TexParameters(wrap TextureWrap, filter TextureFilter)
	GenerateMipmap()
	DeleteTexture(texture uint32)

	// Frame state and drawing
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	PolygonMode(wireframe bool)
	DrawArrays(mode Primitive, first, count int32)
	DrawElements(mode Primitive, count int32)
}
