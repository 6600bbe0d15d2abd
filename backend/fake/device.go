// Package fake provides resource tracking implementations of learngl.Device
// and learngl.Window for tests. Nothing is rendered; every call is recorded
// so tests can inspect object lifetimes, attribute layouts and draw calls.
package fake

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/go-theft-auto/learngl"
)

// Kind is the type of a tracked object.
type Kind int

const (
	KindShader Kind = iota
	KindProgram
	KindVertexArray
	KindBuffer
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindShader:
		return "shader"
	case KindProgram:
		return "program"
	case KindVertexArray:
		return "vertex array"
	case KindBuffer:
		return "buffer"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// Attrib is the recorded state of one vertex attribute of a vertex array.
type Attrib struct {
	Index       uint32
	Components  int32
	StrideBytes int32
	OffsetBytes uintptr
	Buffer      uint32 // array buffer bound when the pointer was set
	Enabled     bool
}

// DrawCall is one recorded draw.
type DrawCall struct {
	Mode        learngl.Primitive
	First       int32
	Count       int32
	Indexed     bool
	Program     uint32
	VertexArray uint32
	Wireframe   bool
}

// TextureInfo is the recorded state of a texture.
type TextureInfo struct {
	Width, Height int32
	Pixels        []byte
	Wrap          learngl.TextureWrap
	Filter        learngl.TextureFilter
	Mipmapped     bool
}

type shaderObj struct {
	stage    learngl.ShaderStage
	source   string
	compiled bool
	log      string
}

type programObj struct {
	shaders  []uint32
	sources  map[learngl.ShaderStage]string
	linked   bool
	log      string
	uniforms map[string]int32
}

type vertexArrayObj struct {
	attribs map[uint32]*Attrib
	element uint32
}

type bufferObj struct {
	floats []float32
	uints  []uint32
}

type uniformKey struct {
	program  uint32
	location int32
}

// Device is a fake learngl.Device. The zero value is not usable; call
// NewDevice.
type Device struct {
	// CompileFunc, when set, replaces the built-in shader validation.
	CompileFunc func(stage learngl.ShaderStage, source string) (ok bool, log string)

	next    uint32
	kinds   map[uint32]Kind
	live    map[uint32]bool
	deletes map[uint32]int

	shaders  map[uint32]*shaderObj
	programs map[uint32]*programObj
	vaos     map[uint32]*vertexArrayObj
	buffers  map[uint32]*bufferObj
	textures map[uint32]*TextureInfo

	boundVAO       uint32
	boundArray     uint32
	currentProgram uint32
	activeUnit     uint32
	boundTextures  map[uint32]uint32
	uniforms       map[uniformKey]any

	clearColor [4]float32
	viewport   [4]int32
	wireframe  bool
	clears     int

	draws       []DrawCall
	doubleFrees []uint32
	errs        []string
}

// NewDevice returns an empty fake device.
func NewDevice() *Device {
	return &Device{
		kinds:         make(map[uint32]Kind),
		live:          make(map[uint32]bool),
		deletes:       make(map[uint32]int),
		shaders:       make(map[uint32]*shaderObj),
		programs:      make(map[uint32]*programObj),
		vaos:          make(map[uint32]*vertexArrayObj),
		buffers:       make(map[uint32]*bufferObj),
		textures:      make(map[uint32]*TextureInfo),
		boundTextures: make(map[uint32]uint32),
		uniforms:      make(map[uniformKey]any),
	}
}

var _ learngl.Device = (*Device)(nil)

func (d *Device) alloc(k Kind) uint32 {
	d.next++
	d.kinds[d.next] = k
	d.live[d.next] = true
	return d.next
}

// free records a deletion. Handle 0 is ignored as the real API does; any
// other handle that is not live is recorded as a double free.
func (d *Device) free(h uint32, k Kind) bool {
	if h == 0 {
		return false
	}
	d.deletes[h]++
	if !d.live[h] || d.kinds[h] != k {
		d.doubleFrees = append(d.doubleFrees, h)
		return false
	}
	delete(d.live, h)
	return true
}

func (d *Device) errorf(format string, args ...any) {
	d.errs = append(d.errs, fmt.Sprintf(format, args...))
}

// Shaders

func (d *Device) CreateShader(stage learngl.ShaderStage) uint32 {
	h := d.alloc(KindShader)
	d.shaders[h] = &shaderObj{stage: stage}
	return h
}

func (d *Device) ShaderSource(shader uint32, source string) {
	s, ok := d.shaders[shader]
	if !ok || !d.live[shader] {
		d.errorf("ShaderSource: invalid shader %d", shader)
		return
	}
	s.source = source
}

func (d *Device) CompileShader(shader uint32) bool {
	s, ok := d.shaders[shader]
	if !ok || !d.live[shader] {
		d.errorf("CompileShader: invalid shader %d", shader)
		return false
	}
	compile := d.CompileFunc
	if compile == nil {
		compile = Compile
	}
	s.compiled, s.log = compile(s.stage, s.source)
	return s.compiled
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	if s, ok := d.shaders[shader]; ok {
		return s.log
	}
	return ""
}

func (d *Device) DeleteShader(shader uint32) {
	d.free(shader, KindShader)
}

// Programs

func (d *Device) CreateProgram() uint32 {
	h := d.alloc(KindProgram)
	d.programs[h] = &programObj{sources: make(map[learngl.ShaderStage]string)}
	return h
}

func (d *Device) AttachShader(program, shader uint32) {
	p, ok := d.programs[program]
	if !ok || !d.live[program] {
		d.errorf("AttachShader: invalid program %d", program)
		return
	}
	if !d.live[shader] {
		d.errorf("AttachShader: invalid shader %d", shader)
		return
	}
	p.shaders = append(p.shaders, shader)
}

func (d *Device) LinkProgram(program uint32) bool {
	p, ok := d.programs[program]
	if !ok || !d.live[program] {
		d.errorf("LinkProgram: invalid program %d", program)
		return false
	}
	for _, h := range p.shaders {
		s := d.shaders[h]
		if !s.compiled {
			p.log = fmt.Sprintf("error: linking with uncompiled/unspecialized %s shader", s.stage)
			return false
		}
		p.sources[s.stage] = s.source
	}
	for _, stage := range []learngl.ShaderStage{learngl.VertexStage, learngl.FragmentStage} {
		src, ok := p.sources[stage]
		if !ok {
			p.log = fmt.Sprintf("error: no %s shader attached", stage)
			return false
		}
		if !mainRe.MatchString(src) {
			p.log = fmt.Sprintf("error: %s shader lacks `main'", stage)
			return false
		}
	}
	p.linked = true
	p.uniforms = make(map[string]int32)
	var loc int32
	for _, stage := range []learngl.ShaderStage{learngl.VertexStage, learngl.FragmentStage} {
		for _, m := range uniformRe.FindAllStringSubmatch(p.sources[stage], -1) {
			if _, ok := p.uniforms[m[1]]; !ok {
				p.uniforms[m[1]] = loc
				loc++
			}
		}
	}
	return true
}

func (d *Device) ProgramInfoLog(program uint32) string {
	if p, ok := d.programs[program]; ok {
		return p.log
	}
	return ""
}

func (d *Device) UseProgram(program uint32) {
	if program != 0 {
		p, ok := d.programs[program]
		if !ok || !d.live[program] || !p.linked {
			d.errorf("UseProgram: invalid program %d", program)
			return
		}
	}
	d.currentProgram = program
}

func (d *Device) DeleteProgram(program uint32) {
	if d.free(program, KindProgram) && d.currentProgram == program {
		d.currentProgram = 0
	}
}

// Uniforms

func (d *Device) UniformLocation(program uint32, name string) int32 {
	p, ok := d.programs[program]
	if !ok || !p.linked {
		d.errorf("UniformLocation: program %d not linked", program)
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) setUniform(location int32, v any) {
	if location < 0 {
		return
	}
	if d.currentProgram == 0 {
		d.errorf("Uniform: no current program")
		return
	}
	d.uniforms[uniformKey{d.currentProgram, location}] = v
}

func (d *Device) Uniform1i(location int32, v int32)            { d.setUniform(location, v) }
func (d *Device) Uniform1f(location int32, v float32)          { d.setUniform(location, v) }
func (d *Device) Uniform4f(location int32, v [4]float32)       { d.setUniform(location, v) }
func (d *Device) UniformMatrix4(location int32, m [16]float32) { d.setUniform(location, m) }

// Vertex arrays and buffers

func (d *Device) CreateVertexArray() uint32 {
	h := d.alloc(KindVertexArray)
	d.vaos[h] = &vertexArrayObj{attribs: make(map[uint32]*Attrib)}
	return h
}

func (d *Device) BindVertexArray(vao uint32) {
	if vao != 0 && !d.live[vao] {
		d.errorf("BindVertexArray: invalid vertex array %d", vao)
		return
	}
	d.boundVAO = vao
}

func (d *Device) DeleteVertexArray(vao uint32) {
	if d.free(vao, KindVertexArray) && d.boundVAO == vao {
		d.boundVAO = 0
	}
}

func (d *Device) CreateBuffer() uint32 {
	h := d.alloc(KindBuffer)
	d.buffers[h] = &bufferObj{}
	return h
}

func (d *Device) BindBuffer(target learngl.BufferTarget, buffer uint32) {
	if buffer != 0 && !d.live[buffer] {
		d.errorf("BindBuffer: invalid buffer %d", buffer)
		return
	}
	switch target {
	case learngl.ArrayBuffer:
		d.boundArray = buffer
	case learngl.ElementArrayBuffer:
		vao, ok := d.vaos[d.boundVAO]
		if !ok {
			d.errorf("BindBuffer: element buffer bound without a vertex array")
			return
		}
		vao.element = buffer
	}
}

func (d *Device) boundBuffer(target learngl.BufferTarget) *bufferObj {
	var h uint32
	switch target {
	case learngl.ArrayBuffer:
		h = d.boundArray
	case learngl.ElementArrayBuffer:
		if vao, ok := d.vaos[d.boundVAO]; ok {
			h = vao.element
		}
	}
	return d.buffers[h]
}

func (d *Device) BufferFloat32(target learngl.BufferTarget, data []float32) {
	b := d.boundBuffer(target)
	if b == nil {
		d.errorf("BufferFloat32: no buffer bound")
		return
	}
	b.floats = slices.Clone(data)
}

func (d *Device) BufferUint32(target learngl.BufferTarget, data []uint32) {
	b := d.boundBuffer(target)
	if b == nil {
		d.errorf("BufferUint32: no buffer bound")
		return
	}
	b.uints = slices.Clone(data)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	if d.free(buffer, KindBuffer) && d.boundArray == buffer {
		d.boundArray = 0
	}
}

func (d *Device) VertexAttribPointer(index uint32, components, strideBytes int32, offsetBytes uintptr) {
	vao, ok := d.vaos[d.boundVAO]
	if !ok {
		d.errorf("VertexAttribPointer: no vertex array bound")
		return
	}
	if d.boundArray == 0 {
		d.errorf("VertexAttribPointer: no array buffer bound")
		return
	}
	a := vao.attribs[index]
	if a == nil {
		a = &Attrib{Index: index}
		vao.attribs[index] = a
	}
	a.Components = components
	a.StrideBytes = strideBytes
	a.OffsetBytes = offsetBytes
	a.Buffer = d.boundArray
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	vao, ok := d.vaos[d.boundVAO]
	if !ok {
		d.errorf("EnableVertexAttribArray: no vertex array bound")
		return
	}
	a := vao.attribs[index]
	if a == nil {
		a = &Attrib{Index: index}
		vao.attribs[index] = a
	}
	a.Enabled = true
}

// Textures

func (d *Device) CreateTexture() uint32 {
	h := d.alloc(KindTexture)
	d.textures[h] = &TextureInfo{}
	return h
}

func (d *Device) BindTexture(unit uint32, texture uint32) {
	if texture != 0 && !d.live[texture] {
		d.errorf("BindTexture: invalid texture %d", texture)
		return
	}
	d.activeUnit = unit
	d.boundTextures[unit] = texture
}

func (d *Device) boundTexture() *TextureInfo {
	return d.textures[d.boundTextures[d.activeUnit]]
}

func (d *Device) TexImage2DRGBA(width, height int32, pixels []byte) {
	t := d.boundTexture()
	if t == nil {
		d.errorf("TexImage2D: no texture bound")
		return
	}
	if width <= 0 || height <= 0 {
		d.errorf("TexImage2D: empty %dx%d image", width, height)
	}
	if int(width*height*4) != len(pixels) {
		d.errorf("TexImage2D: %dx%d needs %d bytes, got %d", width, height, width*height*4, len(pixels))
	}
	t.Width, t.Height = width, height
	t.Pixels = slices.Clone(pixels)
}

func (d *Device) TexParameters(wrap learngl.TextureWrap, filter learngl.TextureFilter) {
	t := d.boundTexture()
	if t == nil {
		d.errorf("TexParameters: no texture bound")
		return
	}
	t.Wrap, t.Filter = wrap, filter
}

func (d *Device) GenerateMipmap() {
	t := d.boundTexture()
	if t == nil {
		d.errorf("GenerateMipmap: no texture bound")
		return
	}
	t.Mipmapped = true
}

func (d *Device) DeleteTexture(texture uint32) {
	d.free(texture, KindTexture)
	for unit, h := range d.boundTextures {
		if h == texture {
			d.boundTextures[unit] = 0
		}
	}
}

// Frame state and drawing

func (d *Device) Viewport(x, y, width, height int32) {
	d.viewport = [4]int32{x, y, width, height}
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.clearColor = [4]float32{r, g, b, a}
}

func (d *Device) Clear() { d.clears++ }

func (d *Device) PolygonMode(wireframe bool) { d.wireframe = wireframe }

func (d *Device) checkDraw(name string) bool {
	if d.currentProgram == 0 || !d.live[d.currentProgram] {
		d.errorf("%s: no current program", name)
		return false
	}
	if d.boundVAO == 0 || !d.live[d.boundVAO] {
		d.errorf("%s: no vertex array bound", name)
		return false
	}
	return true
}

func (d *Device) DrawArrays(mode learngl.Primitive, first, count int32) {
	if !d.checkDraw("DrawArrays") {
		return
	}
	d.draws = append(d.draws, DrawCall{
		Mode: mode, First: first, Count: count,
		Program: d.currentProgram, VertexArray: d.boundVAO, Wireframe: d.wireframe,
	})
}

func (d *Device) DrawElements(mode learngl.Primitive, count int32) {
	if !d.checkDraw("DrawElements") {
		return
	}
	if d.vaos[d.boundVAO].element == 0 {
		d.errorf("DrawElements: no element buffer bound")
		return
	}
	d.draws = append(d.draws, DrawCall{
		Mode: mode, Count: count, Indexed: true,
		Program: d.currentProgram, VertexArray: d.boundVAO, Wireframe: d.wireframe,
	})
}

// Inspection

// Live returns the live handles of kind k in creation order.
func (d *Device) Live(k Kind) []uint32 {
	var out []uint32
	for h, ok := range d.live {
		if ok && d.kinds[h] == k {
			out = append(out, h)
		}
	}
	slices.Sort(out)
	return out
}

// LiveCount returns the number of live objects of every kind.
func (d *Device) LiveCount() int { return len(d.live) }

// Deletes returns how many times h was deleted.
func (d *Device) Deletes(h uint32) int { return d.deletes[h] }

// DoubleFrees returns handles deleted while not live.
func (d *Device) DoubleFrees() []uint32 { return d.doubleFrees }

// Errors returns the API misuse recorded so far, in call order.
func (d *Device) Errors() []string { return d.errs }

// Attribs returns the attribute configuration of vao sorted by index.
func (d *Device) Attribs(vao uint32) []Attrib {
	v, ok := d.vaos[vao]
	if !ok {
		return nil
	}
	out := make([]Attrib, 0, len(v.attribs))
	for _, a := range v.attribs {
		out = append(out, *a)
	}
	slices.SortFunc(out, func(a, b Attrib) int { return int(a.Index) - int(b.Index) })
	return out
}

// ElementBuffer returns the element buffer recorded by vao.
func (d *Device) ElementBuffer(vao uint32) uint32 {
	if v, ok := d.vaos[vao]; ok {
		return v.element
	}
	return 0
}

// BufferFloats returns the float data uploaded to buffer.
func (d *Device) BufferFloats(buffer uint32) []float32 {
	if b, ok := d.buffers[buffer]; ok {
		return b.floats
	}
	return nil
}

// BufferUints returns the index data uploaded to buffer.
func (d *Device) BufferUints(buffer uint32) []uint32 {
	if b, ok := d.buffers[buffer]; ok {
		return b.uints
	}
	return nil
}

// Texture returns the recorded state of texture.
func (d *Device) Texture(texture uint32) (TextureInfo, bool) {
	t, ok := d.textures[texture]
	if !ok {
		return TextureInfo{}, false
	}
	return *t, true
}

// BoundTexture returns the texture bound to unit.
func (d *Device) BoundTexture(unit uint32) uint32 { return d.boundTextures[unit] }

// Uniform returns the last value set for the named uniform of program.
func (d *Device) Uniform(program uint32, name string) (any, bool) {
	p, ok := d.programs[program]
	if !ok || !p.linked {
		return nil, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := d.uniforms[uniformKey{program, loc}]
	return v, ok
}

// CurrentProgram returns the program made current last.
func (d *Device) CurrentProgram() uint32 { return d.currentProgram }

// BoundVertexArray returns the currently bound vertex array.
func (d *Device) BoundVertexArray() uint32 { return d.boundVAO }

// Draws returns every recorded draw call.
func (d *Device) Draws() []DrawCall { return d.draws }

// ResetDraws forgets recorded draw calls.
func (d *Device) ResetDraws() { d.draws = nil }

// ClearColorValue returns the last clear color.
func (d *Device) ClearColorValue() [4]float32 { return d.clearColor }

// Clears returns how many times the framebuffer was cleared.
func (d *Device) Clears() int { return d.clears }

// ViewportValue returns the last viewport as x, y, width, height.
func (d *Device) ViewportValue() [4]int32 { return d.viewport }

// Wireframe reports the current polygon mode.
func (d *Device) Wireframe() bool { return d.wireframe }

var (
	versionRe = regexp.MustCompile(`^#version\s+\d+`)
	mainRe    = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)
	uniformRe = regexp.MustCompile(`\buniform\s+\w+\s+(\w+)\s*;`)
)

// Compile is the built-in stand-in for a GLSL compiler. It accepts source
// that starts with a #version directive, has balanced brackets and ends
// every declaration it opens. Diagnostics use the "0:line(col): error:"
// form of common drivers.
func Compile(stage learngl.ShaderStage, source string) (bool, string) {
	src := strings.TrimRight(source, "\x00")
	if strings.TrimSpace(src) == "" {
		return false, "0:1(1): error: syntax error, unexpected end of file"
	}

	lines := strings.Split(src, "\n")
	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	if !versionRe.MatchString(strings.TrimSpace(lines[first])) {
		return false, fmt.Sprintf("0:%d(1): error: #version directive missing or not first", first+1)
	}

	var stack []rune
	pairs := map[rune]rune{')': '(', '}': '{', ']': '['}
	for n, line := range lines {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		for col, r := range line {
			switch r {
			case '(', '{', '[':
				stack = append(stack, r)
			case ')', '}', ']':
				if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
					return false, fmt.Sprintf("0:%d(%d): error: syntax error, unexpected '%c'", n+1, col+1, r)
				}
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) > 0 {
		return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file", len(lines))
	}

	body := strings.TrimSpace(src)
	if last := body[len(body)-1]; last != '}' && last != ';' {
		return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file", len(lines))
	}
	return true, ""
}
