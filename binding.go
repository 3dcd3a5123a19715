package glquad

// Uniform is a vec4 uniform value set before a draw.
type Uniform struct {
	Location int32
	Value    [4]float32
}

// DrawCall describes one indexed draw.
type DrawCall struct {
	Program  *Program
	Mesh     Mesh
	Uniforms []Uniform
}

// Binding tracks the device's current program, vertex array and index buffer.
// The device has one slot of each, shared by every caller, so a Binding is
// the only thing that should write them.
type Binding struct {
	dev Device

	program     uint32
	vertexArray uint32
	indexBuffer uint32
}

// BindingState is a snapshot of the current slots.
type BindingState struct {
	Program     uint32
	VertexArray uint32
	IndexBuffer uint32
}

// NewBinding creates a Binding for dev with every slot unbound.
func NewBinding(dev Device) *Binding {
	return &Binding{dev: dev}
}

// Current returns what the Binding last bound.
func (b *Binding) Current() BindingState {
	return BindingState{
		Program:     b.program,
		VertexArray: b.vertexArray,
		IndexBuffer: b.indexBuffer,
	}
}

// Reset unbinds the program, vertex array and index buffer.
func (b *Binding) Reset() {
	b.dev.BindVertexArray(0)
	b.dev.UseProgram(0)
	b.dev.BindIndexBuffer(0)
	b.program, b.vertexArray, b.indexBuffer = 0, 0, 0
}

// Submit binds everything dc needs and draws it.
// Bindings are always re-established, even if they look current, because
// any intervening device call may have replaced them.
func (b *Binding) Submit(dc DrawCall) error {
	if !dc.Program.Valid() {
		return ErrProgramReleased
	}

	b.program = dc.Program.Handle()
	b.dev.UseProgram(b.program)
	for _, u := range dc.Uniforms {
		b.dev.Uniform4f(u.Location, u.Value)
	}

	b.vertexArray = dc.Mesh.VertexArray
	b.dev.BindVertexArray(b.vertexArray)
	b.indexBuffer = dc.Mesh.IndexBuffer
	b.dev.BindIndexBuffer(b.indexBuffer)

	return b.dev.DrawElements(dc.Mesh.Count)
}
