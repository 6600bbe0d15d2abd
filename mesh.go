package learngl

import "fmt"

// MeshDesc is the CPU side of a mesh: vertex data, optional indices and the
// layout that interprets the vertex data.
type MeshDesc struct {
	Vertices  []float32
	Indices   []uint32
	Layout    VertexLayout
	Primitive Primitive
	// Count is the number of vertices (or indices when indexed) drawn per
	// call. Zero draws everything; a negative count is invalid.
	Count int
}

// Validate checks the vertex data against the layout, the draw count
// against the data and every index against the vertex count.
func (d MeshDesc) Validate() error {
	if err := d.Layout.Validate(); err != nil {
		return err
	}
	if len(d.Vertices) == 0 {
		return fmt.Errorf("%w: no vertex data", ErrLayoutMismatch)
	}

	stride := d.Layout.Stride()
	if len(d.Vertices)%stride != 0 {
		return fmt.Errorf("%w: %d floats is not a multiple of the %d-float stride",
			ErrLayoutMismatch, len(d.Vertices), stride)
	}
	vertices := len(d.Vertices) / stride

	if d.Count < 0 {
		return fmt.Errorf("%w: negative draw count %d", ErrLayoutMismatch, d.Count)
	}
	if len(d.Indices) == 0 {
		if d.Count > vertices {
			return fmt.Errorf("%w: drawing %d vertices but data holds %d", ErrLayoutMismatch, d.Count, vertices)
		}
		return nil
	}

	if d.Count > len(d.Indices) {
		return fmt.Errorf("%w: drawing %d indices but only %d given", ErrLayoutMismatch, d.Count, len(d.Indices))
	}
	for i, idx := range d.Indices {
		if int(idx) >= vertices {
			return fmt.Errorf("%w: index %d at position %d is out of range for %d vertices",
				ErrLayoutMismatch, idx, i, vertices)
		}
	}
	return nil
}

// DrawCount returns the number of elements a draw call will consume.
func (d MeshDesc) DrawCount() int {
	if d.Count > 0 {
		return d.Count
	}
	if len(d.Indices) > 0 {
		return len(d.Indices)
	}
	return d.Layout.VertexCount(len(d.Vertices))
}

// Mesh owns a vertex array, its vertex buffer and an optional index buffer.
type Mesh struct {
	dev       Device
	vao       uint32
	vbo       uint32
	ebo       uint32
	primitive Primitive
	count     int32
	indexed   bool
}

// NewMesh validates desc and uploads it. Nothing is allocated on the device
// when validation fails.
func NewMesh(dev Device, desc MeshDesc) (*Mesh, error) {
	if err := desc.Validate(); err != nil {
		return nil, &SetupError{Stage: StageLayout, Subject: "mesh", Err: err}
	}

	m := &Mesh{
		dev:       dev,
		primitive: desc.Primitive,
		count:     int32(desc.DrawCount()),
		indexed:   len(desc.Indices) > 0,
	}

	// The vertex array must be bound first so it records the buffer
	// bindings and attribute pointers that follow.
	m.vao = dev.CreateVertexArray()
	dev.BindVertexArray(m.vao)

	m.vbo = dev.CreateBuffer()
	dev.BindBuffer(ArrayBuffer, m.vbo)
	dev.BufferFloat32(ArrayBuffer, desc.Vertices)

	if m.indexed {
		m.ebo = dev.CreateBuffer()
		dev.BindBuffer(ElementArrayBuffer, m.ebo)
		dev.BufferUint32(ElementArrayBuffer, desc.Indices)
	}

	stride := desc.Layout.StrideBytes()
	for _, a := range desc.Layout.Attributes {
		dev.VertexAttribPointer(a.Location, int32(a.Components), stride, uintptr(a.Offset*floatSize))
		dev.EnableVertexAttribArray(a.Location)
	}

	dev.BindVertexArray(0)
	return m, nil
}

// Count returns the number of vertices or indices drawn per call.
func (m *Mesh) Count() int32 { return m.count }

// Draw makes p current, binds the vertex array and issues one draw call.
func (m *Mesh) Draw(p *Program) error {
	if m == nil || m.vao == 0 {
		return fmt.Errorf("draw mesh: %w", ErrReleased)
	}
	if err := p.Use(); err != nil {
		return fmt.Errorf("draw mesh: %w", err)
	}
	m.dev.BindVertexArray(m.vao)
	if m.indexed {
		m.dev.DrawElements(m.primitive, m.count)
	} else {
		m.dev.DrawArrays(m.primitive, 0, m.count)
	}
	return nil
}

// Release deletes the vertex array and its buffers. It is safe to call more
// than once.
func (m *Mesh) Release() {
	if m == nil {
		return
	}
	if m.ebo != 0 {
		m.dev.DeleteBuffer(m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		m.dev.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		m.dev.DeleteVertexArray(m.vao)
		m.vao = 0
	}
}
