package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glquad"
)

// Window is a GLFW window whose OpenGL context is current on the calling
// thread. GLFW must be driven from the main thread; callers should
// runtime.LockOSThread in init.
type Window struct {
	win *glfw.Window
}

var _ glquad.Window = (*Window)(nil)

type windowHint struct {
	hint  glfw.Hint
	value int
}

// contextHints returns the GLFW hints for cfg's context version and profile.
func contextHints(cfg glquad.Config) []windowHint {
	hints := []windowHint{
		{glfw.ContextVersionMajor, cfg.VersionMajor},
		{glfw.ContextVersionMinor, cfg.VersionMinor},
	}
	switch {
	case cfg.VersionMajor < 3 || (cfg.VersionMajor == 3 && cfg.VersionMinor < 2):
		// profiles only exist from 3.2
		hints = append(hints, windowHint{glfw.OpenGLProfile, glfw.OpenGLAnyProfile})
	case cfg.Profile == glquad.ProfileCompatibility:
		hints = append(hints, windowHint{glfw.OpenGLProfile, glfw.OpenGLCompatProfile})
	default:
		hints = append(hints,
			windowHint{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
			windowHint{glfw.OpenGLForwardCompatible, glfw.True},
		)
	}
	if cfg.Hidden {
		hints = append(hints, windowHint{glfw.Visible, glfw.False})
	}
	return hints
}

// OpenWindow initializes GLFW, creates a window with an OpenGL context per
// cfg, makes the context current and loads the GL function pointers.
// Close must be called to terminate GLFW.
func OpenWindow(cfg glquad.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.DefaultWindowHints()
	for _, h := range contextHints(cfg) {
		glfw.WindowHint(h.hint, h.value)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{win: win}, nil
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
