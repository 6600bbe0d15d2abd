package learngl

import (
	"fmt"
	"sort"
)

// floatSize is the size of one float32 vertex component in bytes.
const floatSize = 4

// Attribute describes one interleaved vertex attribute. Components and
// Offset are counted in float32 units.
type Attribute struct {
	Location   uint32
	Components int
	Offset     int
}

// VertexLayout describes how a flat []float32 is split into vertices and
// attributes.
type VertexLayout struct {
	Attributes []Attribute
	// StrideFloats overrides the stride derived from the attributes when
	// the vertex carries padding. Zero means derived.
	StrideFloats int
}

// Positions3 is a layout with a vec3 position at location 0.
func Positions3() VertexLayout {
	return VertexLayout{Attributes: []Attribute{{Location: 0, Components: 3, Offset: 0}}}
}

// PositionsColors is a layout with vec3 position (0) and vec3 color (1).
func PositionsColors() VertexLayout {
	return VertexLayout{Attributes: []Attribute{
		{Location: 0, Components: 3, Offset: 0},
		{Location: 1, Components: 3, Offset: 3},
	}}
}

// PositionsColorsTexCoords is a layout with vec3 position (0), vec3 color
// (1) and vec2 texture coordinates (2).
func PositionsColorsTexCoords() VertexLayout {
	return VertexLayout{Attributes: []Attribute{
		{Location: 0, Components: 3, Offset: 0},
		{Location: 1, Components: 3, Offset: 3},
		{Location: 2, Components: 2, Offset: 6},
	}}
}

// Stride returns the number of floats per vertex.
func (l VertexLayout) Stride() int {
	if l.StrideFloats > 0 {
		return l.StrideFloats
	}
	stride := 0
	for _, a := range l.Attributes {
		if end := a.Offset + a.Components; end > stride {
			stride = end
		}
	}
	return stride
}

// StrideBytes returns the stride in bytes as passed to the graphics API.
func (l VertexLayout) StrideBytes() int32 {
	return int32(l.Stride() * floatSize)
}

// VertexCount returns how many whole vertices n floats hold.
func (l VertexLayout) VertexCount(n int) int {
	stride := l.Stride()
	if stride == 0 {
		return 0
	}
	return n / stride
}

// Validate checks the layout on its own: at least one attribute, component
// counts in 1..4, attributes inside the stride, no overlap and no location
// used twice.
func (l VertexLayout) Validate() error {
	if len(l.Attributes) == 0 {
		return fmt.Errorf("%w: no attributes", ErrLayoutMismatch)
	}

	stride := l.Stride()
	seen := make(map[uint32]bool, len(l.Attributes))
	attrs := make([]Attribute, len(l.Attributes))
	copy(attrs, l.Attributes)
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Offset < attrs[j].Offset })

	end := 0
	for _, a := range attrs {
		if a.Components < 1 || a.Components > 4 {
			return fmt.Errorf("%w: location %d has %d components", ErrLayoutMismatch, a.Location, a.Components)
		}
		if a.Offset < 0 || a.Offset+a.Components > stride {
			return fmt.Errorf("%w: location %d at offset %d exceeds stride %d", ErrLayoutMismatch, a.Location, a.Offset, stride)
		}
		if a.Offset < end {
			return fmt.Errorf("%w: location %d overlaps the previous attribute", ErrLayoutMismatch, a.Location)
		}
		if seen[a.Location] {
			return fmt.Errorf("%w: location %d declared twice", ErrLayoutMismatch, a.Location)
		}
		seen[a.Location] = true
		end = a.Offset + a.Components
	}
	return nil
}
