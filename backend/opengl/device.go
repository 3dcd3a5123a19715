// Package opengl implements the glquad device on OpenGL 4.1 core through
// go-gl, and provides a GLFW window to draw into.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glquad"
)

// Device implements glquad.Device against the current OpenGL context.
// gl.Init must have been called on the thread that owns the context.
type Device struct{}

var _ glquad.Device = (*Device)(nil)

// NewDevice returns a Device for the current context.
func NewDevice() *Device {
	return &Device{}
}

// Version returns the GL_VERSION string of the current context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) CreateShader(stage glquad.Stage) uint32 {
	return gl.CreateShader(shaderType(stage))
}

func (d *Device) CompileShader(shader uint32, source string) (string, bool) {
	csource, free := gl.Strs(terminate(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return cString(log), false
	}
	return "", true
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) (string, bool) {
	gl.LinkProgram(program)
	return programStatus(program, gl.LINK_STATUS)
}

func (d *Device) ValidateProgram(program uint32) (string, bool) {
	gl.ValidateProgram(program)
	return programStatus(program, gl.VALIDATE_STATUS)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(terminate(name)))
}

// CreateMesh uploads a static vertex buffer and index buffer and records the
// vertex layout (attribute 0, tightly packed floats) in a new vertex array.
// The vertex array and buffers are left unbound.
func (d *Device) CreateMesh(positions []float32, components int, indices []uint32) (glquad.Mesh, error) {
	if len(positions) == 0 || len(indices) == 0 {
		return glquad.Mesh{}, fmt.Errorf("create mesh: empty geometry")
	}
	clearErrors()

	var m glquad.Mesh
	gl.GenVertexArrays(1, &m.VertexArray)
	gl.BindVertexArray(m.VertexArray)

	gl.GenBuffers(1, &m.VertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*int(unsafe.Sizeof(float32(0))), gl.Ptr(positions), gl.STATIC_DRAW)

	stride := int32(components) * int32(unsafe.Sizeof(float32(0)))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, int32(components), gl.FLOAT, false, stride, 0)

	gl.GenBuffers(1, &m.IndexBuffer)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.IndexBuffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*int(unsafe.Sizeof(uint32(0))), gl.Ptr(indices), gl.STATIC_DRAW)
	m.Count = int32(len(indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	if err := checkError("create mesh"); err != nil {
		d.DeleteMesh(m)
		return glquad.Mesh{}, err
	}
	return m, nil
}

func (d *Device) DeleteMesh(m glquad.Mesh) {
	if m.IndexBuffer != 0 {
		gl.DeleteBuffers(1, &m.IndexBuffer)
	}
	if m.VertexBuffer != 0 {
		gl.DeleteBuffers(1, &m.VertexBuffer)
	}
	if m.VertexArray != 0 {
		gl.DeleteVertexArrays(1, &m.VertexArray)
	}
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Device) BindIndexBuffer(ibo uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)
}

func (d *Device) Uniform4f(location int32, v [4]float32) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (d *Device) Clear(color [4]float32) error {
	clearErrors()
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return checkError("clear")
}

// DrawElements reports any GL error raised by the draw or by the binds and
// uniform updates issued since the previous checked call.
func (d *Device) DrawElements(count int32) error {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
	return checkError("draw elements")
}

func shaderType(stage glquad.Stage) uint32 {
	if stage == glquad.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func programStatus(program, pname uint32) (string, bool) {
	var status int32
	gl.GetProgramiv(program, pname, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return cString(log), false
	}
	return "", true
}

// terminate appends the NUL that go-gl string helpers expect.
func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// cString trims an info log buffer at its first NUL.
func cString(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
