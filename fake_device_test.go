package glquad_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-theft-auto/glquad"
)

type fakeShader struct {
	stage   glquad.Stage
	deleted bool
}

type fakeProgram struct {
	attached []uint32
	deleted  bool
}

// fakeDevice is a recording device. A shader compiles if its source contains
// "void main"; linking and validation fail when the matching log is set.
type fakeDevice struct {
	nextID   uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	meshes   map[uint32]bool // by vertex array
	uniforms map[string]int32

	linkLog     string
	validateLog string
	meshErr     error
	drawErr     error

	program, vertexArray, indexBuffer uint32

	calls      []string
	uniformSet [][4]float32
	clears     [][4]float32
	draws      int
}

var _ glquad.Device = (*fakeDevice)(nil)

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		meshes:   make(map[uint32]bool),
		uniforms: map[string]int32{"u_Color": 3},
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) count(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (d *fakeDevice) liveShaders() int {
	n := 0
	for _, s := range d.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

func (d *fakeDevice) livePrograms() int {
	n := 0
	for _, p := range d.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

func (d *fakeDevice) CreateShader(stage glquad.Stage) uint32 {
	id := d.id()
	d.shaders[id] = &fakeShader{stage: stage}
	d.record("CreateShader %s", stage)
	return id
}

func (d *fakeDevice) CompileShader(shader uint32, source string) (string, bool) {
	d.record("CompileShader %d", shader)
	if !strings.Contains(source, "void main") {
		return "0:1(1): error: syntax error, unexpected end of file", false
	}
	return "", true
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.record("DeleteShader %d", shader)
	d.shaders[shader].deleted = true
}

func (d *fakeDevice) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &fakeProgram{}
	d.record("CreateProgram")
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.record("AttachShader %d %d", program, shader)
	d.programs[program].attached = append(d.programs[program].attached, shader)
}

func (d *fakeDevice) LinkProgram(program uint32) (string, bool) {
	d.record("LinkProgram %d", program)
	if d.linkLog != "" {
		return d.linkLog, false
	}
	return "", true
}

func (d *fakeDevice) ValidateProgram(program uint32) (string, bool) {
	d.record("ValidateProgram %d", program)
	if d.validateLog != "" {
		return d.validateLog, false
	}
	return "", true
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	d.record("DeleteProgram %d", program)
	d.programs[program].deleted = true
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) CreateMesh(positions []float32, components int, indices []uint32) (glquad.Mesh, error) {
	d.record("CreateMesh")
	if d.meshErr != nil {
		return glquad.Mesh{}, d.meshErr
	}
	m := glquad.Mesh{
		VertexArray:  d.id(),
		VertexBuffer: d.id(),
		IndexBuffer:  d.id(),
		Count:        int32(len(indices)),
	}
	d.meshes[m.VertexArray] = true
	return m, nil
}

func (d *fakeDevice) DeleteMesh(m glquad.Mesh) {
	d.record("DeleteMesh")
	delete(d.meshes, m.VertexArray)
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("UseProgram %d", program)
	d.program = program
}

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.record("BindVertexArray %d", vao)
	d.vertexArray = vao
}

func (d *fakeDevice) BindIndexBuffer(ibo uint32) {
	d.record("BindIndexBuffer %d", ibo)
	d.indexBuffer = ibo
}

func (d *fakeDevice) Uniform4f(location int32, v [4]float32) {
	d.record("Uniform4f %d", location)
	d.uniformSet = append(d.uniformSet, v)
}

func (d *fakeDevice) Clear(color [4]float32) error {
	d.record("Clear")
	d.clears = append(d.clears, color)
	return nil
}

// DrawElements fails like GL_INVALID_OPERATION when anything it needs is
// unbound or deleted.
func (d *fakeDevice) DrawElements(count int32) error {
	d.record("DrawElements %d", count)
	if d.drawErr != nil {
		return d.drawErr
	}
	p, ok := d.programs[d.program]
	if !ok || p.deleted || d.vertexArray == 0 || d.indexBuffer == 0 {
		return errors.New("invalid operation")
	}
	d.draws++
	return nil
}

func (d *fakeDevice) Version() string {
	return "fake 3.3"
}

const (
	validVertex = `#version 330 core
layout(location = 0) in vec4 position;
void main() { gl_Position = position; }
`
	validFragment = `#version 330 core
layout(location = 0) out vec4 color;
uniform vec4 u_Color;
void main() { color = u_Color; }
`
	invalidVertex = `#version 330 core
layout(location = 0) in vec4 position
`
)
