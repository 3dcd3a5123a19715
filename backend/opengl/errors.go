package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Error lists the GL error flags raised while performing Op.
type Error struct {
	Op    string
	Codes []uint32
}

func (e *Error) Error() string {
	names := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		names[i] = errorName(c)
	}
	return fmt.Sprintf("opengl: %s: %s", e.Op, strings.Join(names, ", "))
}

// maxErrorFlags bounds the drain loop; without a current context some
// drivers return an error from glGetError forever.
const maxErrorFlags = 16

// clearErrors drops flags left over from unchecked calls.
func clearErrors() {
	for i := 0; i < maxErrorFlags && gl.GetError() != gl.NO_ERROR; i++ {
	}
}

// checkError drains the GL error flags and returns them as an *Error.
func checkError(op string) error {
	var codes []uint32
	for i := 0; i < maxErrorFlags; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	return &Error{Op: op, Codes: codes}
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04X", code)
	}
}
