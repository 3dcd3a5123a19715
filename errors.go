package glquad

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrResourceUnavailable reports a shader resource that could not be opened or read.
	ErrResourceUnavailable = errors.New("shader resource unavailable")

	// ErrUniformNotFound reports a uniform name the linked program does not expose.
	ErrUniformNotFound = errors.New("uniform not found")

	// ErrProgramReleased reports a draw or lookup against a nil or released program.
	ErrProgramReleased = errors.New("program released")
)

// CompileError carries the diagnostic for a shader unit the backend rejected.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError carries the diagnostic for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "program link: " + strings.TrimSpace(e.Log)
}
