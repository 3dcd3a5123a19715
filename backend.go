package glquad

// ShaderBackend compiles and links shader programs.
// Failing operations return the backend's diagnostic log alongside the
// status instead of leaving an error flag to be polled.
type ShaderBackend interface {
	CreateShader(stage Stage) uint32
	CompileShader(shader uint32, source string) (log string, ok bool)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32) (log string, ok bool)
	ValidateProgram(program uint32) (log string, ok bool)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 if the program has no such active uniform.
	UniformLocation(program uint32, name string) int32
}

// Device is a ShaderBackend that can also hold geometry and submit draws.
// Bind calls change the single current slot for their kind; use a Binding
// to drive them.
type Device interface {
	ShaderBackend

	// CreateMesh uploads positions (components floats per vertex) and
	// indices into a new vertex array.
	CreateMesh(positions []float32, components int, indices []uint32) (Mesh, error)
	DeleteMesh(m Mesh)

	UseProgram(program uint32)
	BindVertexArray(vao uint32)
	BindIndexBuffer(ibo uint32)
	Uniform4f(location int32, v [4]float32)

	Clear(color [4]float32) error
	// DrawElements draws count indices from the bound index buffer as triangles.
	DrawElements(count int32) error

	Version() string
}

// Mesh is geometry resident on the device.
type Mesh struct {
	VertexArray  uint32
	VertexBuffer uint32
	IndexBuffer  uint32
	Count        int32
}
