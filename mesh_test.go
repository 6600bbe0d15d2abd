package learngl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/fake"
)

var testTriangle = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

func TestVertexLayout_Stride(t *testing.T) {
	tests := []struct {
		name   string
		layout learngl.VertexLayout
		floats int
		bytes  int32
	}{
		{"positions", learngl.Positions3(), 3, 12},
		{"positions and colors", learngl.PositionsColors(), 6, 24},
		{"with texture coords", learngl.PositionsColorsTexCoords(), 8, 32},
		{"padded", learngl.VertexLayout{
			Attributes:   []learngl.Attribute{{Location: 0, Components: 3}},
			StrideFloats: 4,
		}, 4, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.floats, tt.layout.Stride())
			assert.Equal(t, tt.bytes, tt.layout.StrideBytes())
			assert.NoError(t, tt.layout.Validate())
		})
	}
}

func TestVertexLayout_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		attrs []learngl.Attribute
	}{
		{"empty", nil},
		{"zero components", []learngl.Attribute{{Location: 0, Components: 0}}},
		{"five components", []learngl.Attribute{{Location: 0, Components: 5}}},
		{"overlap", []learngl.Attribute{
			{Location: 0, Components: 3, Offset: 0},
			{Location: 1, Components: 3, Offset: 2},
		}},
		{"duplicate location", []learngl.Attribute{
			{Location: 0, Components: 3, Offset: 0},
			{Location: 0, Components: 3, Offset: 3},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := learngl.VertexLayout{Attributes: tt.attrs}.Validate()
			assert.ErrorIs(t, err, learngl.ErrLayoutMismatch)
		})
	}

	t.Run("outside stride", func(t *testing.T) {
		l := learngl.VertexLayout{
			Attributes:   []learngl.Attribute{{Location: 0, Components: 3, Offset: 2}},
			StrideFloats: 4,
		}
		assert.ErrorIs(t, l.Validate(), learngl.ErrLayoutMismatch)
	})
}

func TestNewMesh_Attributes(t *testing.T) {
	dev := fake.NewDevice()
	vertices := make([]float32, 4*8)
	m, err := learngl.NewMesh(dev, learngl.MeshDesc{
		Vertices: vertices,
		Indices:  []uint32{0, 1, 3, 1, 2, 3},
		Layout:   learngl.PositionsColorsTexCoords(),
	})
	require.NoError(t, err)
	defer m.Release()

	vaos := dev.Live(fake.KindVertexArray)
	require.Len(t, vaos, 1)
	attribs := dev.Attribs(vaos[0])
	require.Len(t, attribs, 3)

	want := []struct {
		components int32
		offset     uintptr
	}{{3, 0}, {3, 12}, {2, 24}}
	for i, a := range attribs {
		assert.Equal(t, uint32(i), a.Index)
		assert.Equal(t, want[i].components, a.Components)
		assert.Equal(t, int32(32), a.StrideBytes)
		assert.Equal(t, want[i].offset, a.OffsetBytes)
		assert.True(t, a.Enabled)
		assert.NotZero(t, a.Buffer)
	}

	ebo := dev.ElementBuffer(vaos[0])
	require.NotZero(t, ebo)
	assert.Equal(t, []uint32{0, 1, 3, 1, 2, 3}, dev.BufferUints(ebo))
	assert.Len(t, dev.BufferFloats(attribs[0].Buffer), 32)
	assert.Equal(t, int32(6), m.Count())
	assert.Zero(t, dev.BoundVertexArray(), "vertex array must be unbound after setup")
	assert.Empty(t, dev.Errors())
}

func TestNewMesh_LayoutMismatch(t *testing.T) {
	tests := []struct {
		name string
		desc learngl.MeshDesc
	}{
		{"no data", learngl.MeshDesc{Layout: learngl.Positions3()}},
		{"partial vertex", learngl.MeshDesc{
			Vertices: []float32{0, 0, 0, 1, 1},
			Layout:   learngl.Positions3(),
		}},
		// Six floats declared as vec3 hold two vertices, not three.
		{"count beyond data", learngl.MeshDesc{
			Vertices: []float32{-0.5, -0.5, 0.5, -0.5, 0.0, 0.5},
			Layout:   learngl.Positions3(),
			Count:    3,
		}},
		{"index out of range", learngl.MeshDesc{
			Vertices: testTriangle,
			Indices:  []uint32{0, 1, 3},
			Layout:   learngl.Positions3(),
		}},
		{"count beyond indices", learngl.MeshDesc{
			Vertices: testTriangle,
			Indices:  []uint32{0, 1, 2},
			Layout:   learngl.Positions3(),
			Count:    6,
		}},
		{"negative count", learngl.MeshDesc{
			Vertices: testTriangle,
			Layout:   learngl.Positions3(),
			Count:    -1,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := fake.NewDevice()
			m, err := learngl.NewMesh(dev, tt.desc)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, learngl.ErrLayoutMismatch)
			stage, ok := learngl.StageOf(err)
			assert.True(t, ok)
			assert.Equal(t, learngl.StageLayout, stage)
			assert.Zero(t, dev.LiveCount(), "nothing may be allocated for invalid data")
		})
	}
}

func TestMesh_DrawArrays(t *testing.T) {
	dev := fake.NewDevice()
	p := buildTestProgram(t, dev)
	m, err := learngl.NewMesh(dev, learngl.MeshDesc{Vertices: testTriangle, Layout: learngl.Positions3()})
	require.NoError(t, err)

	require.NoError(t, m.Draw(p))

	draws := dev.Draws()
	require.Len(t, draws, 1)
	assert.Equal(t, fake.DrawCall{
		Mode:        learngl.Triangles,
		Count:       3,
		Program:     p.Handle(),
		VertexArray: dev.Live(fake.KindVertexArray)[0],
	}, draws[0])
}

func TestMesh_DrawElements(t *testing.T) {
	dev := fake.NewDevice()
	p := buildTestProgram(t, dev)
	m, err := learngl.NewMesh(dev, learngl.MeshDesc{
		Vertices: []float32{0.5, 0.5, 0, 0.5, -0.5, 0, -0.5, -0.5, 0, -0.5, 0.5, 0},
		Indices:  []uint32{0, 1, 3, 1, 2, 3},
		Layout:   learngl.Positions3(),
	})
	require.NoError(t, err)

	require.NoError(t, m.Draw(p))

	draws := dev.Draws()
	require.Len(t, draws, 1)
	assert.True(t, draws[0].Indexed)
	assert.Equal(t, int32(6), draws[0].Count)
	assert.Empty(t, dev.Errors())
}

func TestMesh_DrawRequiresLiveObjects(t *testing.T) {
	dev := fake.NewDevice()
	p := buildTestProgram(t, dev)
	m, err := learngl.NewMesh(dev, learngl.MeshDesc{Vertices: testTriangle, Layout: learngl.Positions3()})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Draw(nil), learngl.ErrReleased)

	p.Release()
	assert.ErrorIs(t, m.Draw(p), learngl.ErrReleased)

	m.Release()
	assert.ErrorIs(t, m.Draw(buildTestProgram(t, dev)), learngl.ErrReleased)
	assert.Empty(t, dev.Draws())
}

func TestMesh_Release(t *testing.T) {
	dev := fake.NewDevice()
	m, err := learngl.NewMesh(dev, learngl.MeshDesc{
		Vertices: testTriangle,
		Indices:  []uint32{0, 1, 2},
		Layout:   learngl.Positions3(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, dev.LiveCount())

	m.Release()
	m.Release()

	assert.Zero(t, dev.LiveCount())
	assert.Empty(t, dev.DoubleFrees())

	var nilMesh *learngl.Mesh
	nilMesh.Release()
}
