package fake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/fake"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name   string
		source string
		ok     bool
		log    string
	}{
		{"valid", "#version 330 core\nvoid main()\n{\n}\n", true, ""},
		{"leading blank lines", "\n\n#version 330 core\nvoid main() {}\n", true, ""},
		{"empty", "", false, "unexpected end of file"},
		{"no version", "void main() {}\n", false, "#version"},
		{"unbalanced close", "#version 330 core\nvoid main() {)\n", false, "unexpected ')'"},
		{"unclosed block", "#version 330 core\nvoid main() {\n", false, "unexpected end of file"},
		{"missing semicolon", "#version 330 core\nout vec4 FragColor\n", false, "unexpected end of file"},
		{"bracket in comment", "#version 330 core\n// }\nvoid main() {}\n", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, log := fake.Compile(learngl.FragmentStage, tt.source)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Empty(t, log)
			} else {
				assert.Contains(t, log, tt.log)
				assert.Contains(t, log, "error:")
			}
		})
	}
}

func TestDevice_DoubleFree(t *testing.T) {
	dev := fake.NewDevice()
	buf := dev.CreateBuffer()

	dev.DeleteBuffer(buf)
	dev.DeleteBuffer(buf)
	dev.DeleteBuffer(0)

	assert.Equal(t, []uint32{buf}, dev.DoubleFrees())
	assert.Equal(t, 2, dev.Deletes(buf))
	assert.Zero(t, dev.LiveCount())
}

func TestDevice_WrongKindDelete(t *testing.T) {
	dev := fake.NewDevice()
	tex := dev.CreateTexture()

	dev.DeleteBuffer(tex)

	assert.Equal(t, []uint32{tex}, dev.DoubleFrees())
	assert.Equal(t, []uint32{tex}, dev.Live(fake.KindTexture))
}

func TestDevice_DrawWithoutState(t *testing.T) {
	dev := fake.NewDevice()

	dev.DrawArrays(learngl.Triangles, 0, 3)
	require.Len(t, dev.Errors(), 1)
	assert.Contains(t, dev.Errors()[0], "no current program")
	assert.Empty(t, dev.Draws())
}

func TestDevice_ElementBufferRecordedByVertexArray(t *testing.T) {
	dev := fake.NewDevice()
	vao := dev.CreateVertexArray()
	ebo := dev.CreateBuffer()

	dev.BindVertexArray(vao)
	dev.BindBuffer(learngl.ElementArrayBuffer, ebo)
	dev.BufferUint32(learngl.ElementArrayBuffer, []uint32{0, 1, 2})
	dev.BindVertexArray(0)

	assert.Equal(t, ebo, dev.ElementBuffer(vao))
	assert.Equal(t, []uint32{0, 1, 2}, dev.BufferUints(ebo))

	// Without a vertex array the binding has nowhere to go.
	dev.BindBuffer(learngl.ElementArrayBuffer, ebo)
	assert.NotEmpty(t, dev.Errors())
}

func TestDevice_LinkUniforms(t *testing.T) {
	dev := fake.NewDevice()
	compile := func(stage learngl.ShaderStage, src string) uint32 {
		s := dev.CreateShader(stage)
		dev.ShaderSource(s, src)
		require.True(t, dev.CompileShader(s), dev.ShaderInfoLog(s))
		return s
	}
	vs := compile(learngl.VertexStage, "#version 330 core\nuniform mat4 model;\nvoid main() {}\n")
	fs := compile(learngl.FragmentStage, "#version 330 core\nuniform vec4 color;\nuniform mat4 model;\nvoid main() {}\n")

	p := dev.CreateProgram()
	dev.AttachShader(p, vs)
	dev.AttachShader(p, fs)
	require.True(t, dev.LinkProgram(p))

	assert.Equal(t, int32(0), dev.UniformLocation(p, "model"))
	assert.Equal(t, int32(1), dev.UniformLocation(p, "color"))
	assert.Equal(t, int32(-1), dev.UniformLocation(p, "missing"))
}

func TestDevice_LinkRequiresBothStages(t *testing.T) {
	dev := fake.NewDevice()
	vs := dev.CreateShader(learngl.VertexStage)
	dev.ShaderSource(vs, "#version 330 core\nvoid main() {}\n")
	require.True(t, dev.CompileShader(vs))

	p := dev.CreateProgram()
	dev.AttachShader(p, vs)
	assert.False(t, dev.LinkProgram(p))
	assert.Contains(t, dev.ProgramInfoLog(p), "no fragment shader")
}
