package glquad

import (
	"errors"
	"fmt"
	"strings"
)

// Program is a linked shader program owned by the caller.
type Program struct {
	backend ShaderBackend
	handle  uint32
}

// Handle returns the backend program handle, or 0 once released.
func (p *Program) Handle() uint32 {
	if p == nil {
		return 0
	}
	return p.handle
}

// Valid reports whether the program can still be used for drawing.
func (p *Program) Valid() bool {
	return p.Handle() != 0
}

// Release deletes the backend program. Releasing twice, or releasing a nil
// program, is a no-op.
func (p *Program) Release() {
	if p == nil || p.handle == 0 {
		return
	}
	p.backend.DeleteProgram(p.handle)
	p.handle = 0
}

// UniformLocation looks up a uniform by name.
func (p *Program) UniformLocation(name string) (int32, error) {
	if !p.Valid() {
		return -1, ErrProgramReleased
	}
	loc := p.backend.UniformLocation(p.handle, name)
	if loc == -1 {
		return -1, fmt.Errorf("%w: %q", ErrUniformNotFound, name)
	}
	return loc, nil
}

// BuildProgram compiles both sections of src and links them into a program.
//
// Both units are always compiled so that every diagnostic is reported. If
// either unit fails, nothing is attached and the build fails with a LinkError
// joined to the CompileErrors. Compiled units are deleted before returning,
// whatever the outcome.
func BuildProgram(b ShaderBackend, src ProgramSource) (*Program, error) {
	vs, vsErr := compileUnit(b, StageVertex, src.Vertex)
	fs, fsErr := compileUnit(b, StageFragment, src.Fragment)
	defer func() {
		if vs != 0 {
			b.DeleteShader(vs)
		}
		if fs != 0 {
			b.DeleteShader(fs)
		}
	}()

	if vs == 0 || fs == 0 {
		var missing []string
		if vs == 0 {
			missing = append(missing, StageVertex.String())
		}
		if fs == 0 {
			missing = append(missing, StageFragment.String())
		}
		linkErr := &LinkError{Log: "no compiled " + strings.Join(missing, " or ") + " unit to attach"}
		logger.Error("shader program link failed", "log", linkErr.Log)
		return nil, errors.Join(vsErr, fsErr, linkErr)
	}

	program := b.CreateProgram()
	b.AttachShader(program, vs)
	b.AttachShader(program, fs)

	if log, ok := b.LinkProgram(program); !ok {
		b.DeleteProgram(program)
		logger.Error("shader program link failed", "log", log)
		return nil, &LinkError{Log: log}
	}

	if log, ok := b.ValidateProgram(program); !ok {
		logger.Warn("shader program validation failed", "program", program, "log", log)
	}

	logger.Debug("shader program linked", "program", program)
	return &Program{backend: b, handle: program}, nil
}

// compileUnit returns a compiled unit handle, or 0 and a CompileError.
// Failed units are deleted here.
func compileUnit(b ShaderBackend, stage Stage, source string) (uint32, error) {
	if strings.TrimSpace(source) == "" {
		err := &CompileError{Stage: stage, Log: "empty source"}
		logger.Error("shader compile failed", "stage", stage, "log", err.Log)
		return 0, err
	}

	shader := b.CreateShader(stage)
	if log, ok := b.CompileShader(shader, source); !ok {
		b.DeleteShader(shader)
		logger.Error("shader compile failed", "stage", stage, "log", log)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return shader, nil
}
