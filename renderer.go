package glquad

import "fmt"

// Renderer draws the animated quad.
type Renderer struct {
	dev     Device
	binding *Binding
	cfg     Config

	mesh     Mesh
	program  *Program
	colorLoc int32
	red      *Oscillator
}

// NewRenderer uploads the quad and builds its program from src.
// The device is left with nothing bound.
func NewRenderer(dev Device, src ProgramSource, cfg Config) (*Renderer, error) {
	mesh, err := dev.CreateMesh(QuadPositions, 2, QuadIndices)
	if err != nil {
		return nil, fmt.Errorf("upload quad: %w", err)
	}

	r := &Renderer{
		dev:     dev,
		binding: NewBinding(dev),
		cfg:     cfg,
		mesh:    mesh,
		red:     NewOscillator(0, 0.01, 0, 1),
	}

	if err := r.Reload(src); err != nil {
		dev.DeleteMesh(mesh)
		return nil, err
	}

	r.binding.Reset()
	return r, nil
}

// Program returns the program currently used for drawing.
func (r *Renderer) Program() *Program {
	return r.program
}

// Binding returns the renderer's binding tracker.
func (r *Renderer) Binding() *Binding {
	return r.binding
}

// Reload builds a program from src and swaps it in. On failure the current
// program, if any, stays in use.
func (r *Renderer) Reload(src ProgramSource) error {
	program, err := BuildProgram(r.dev, src)
	if err != nil {
		return fmt.Errorf("build shader program: %w", err)
	}

	loc, err := program.UniformLocation(r.cfg.ColorUniform)
	if err != nil {
		program.Release()
		return err
	}

	r.program.Release()
	r.program = program
	r.colorLoc = loc
	return nil
}

// Frame clears the target and draws the quad once, advancing the color.
func (r *Renderer) Frame() error {
	if err := r.dev.Clear(r.cfg.ClearColor); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	color := Uniform{
		Location: r.colorLoc,
		Value:    [4]float32{r.red.Next(), 0.5, 0.8, 1.0},
	}
	if err := r.binding.Submit(DrawCall{
		Program:  r.program,
		Mesh:     r.mesh,
		Uniforms: []Uniform{color},
	}); err != nil {
		return fmt.Errorf("draw quad: %w", err)
	}
	return nil
}

// Close releases the program and the quad geometry.
func (r *Renderer) Close() {
	r.program.Release()
	if r.mesh != (Mesh{}) {
		r.dev.DeleteMesh(r.mesh)
		r.mesh = Mesh{}
	}
}
