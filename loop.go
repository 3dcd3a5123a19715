package glquad

// Window is the drawable surface the render loop presents to.
type Window interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// Run draws frames until the window asks to close or a frame fails.
//
// Each iteration draws, presents, then polls events. When changes is non-nil,
// a pending change reloads the shader resource from the configured path
// before drawing; a failed reload is logged and the previous program kept.
func Run(win Window, r *Renderer, changes <-chan struct{}) error {
	for !win.ShouldClose() {
		select {
		case <-changes:
			r.reloadFromDisk()
		default:
		}

		if err := r.Frame(); err != nil {
			return err
		}

		win.SwapBuffers()
		win.PollEvents()
	}
	return nil
}

func (r *Renderer) reloadFromDisk() {
	src, err := LoadSource(r.cfg.ShaderPath)
	if err == nil {
		err = r.Reload(src)
	}
	if err != nil {
		logger.Warn("shader reload failed, keeping previous program",
			"path", r.cfg.ShaderPath,
			"err", err)
		return
	}
	logger.Info("shader reloaded", "path", r.cfg.ShaderPath, "program", r.program.Handle())
}
