// Example opens a window and draws a quad whose red channel oscillates,
// using the shader resource at res/shaders/Basic.shader.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example from the repository root
//
// Edits to the shader resource are picked up while the example runs; a
// resource that fails to build is reported and the previous program kept.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/glquad"
	"github.com/go-theft-auto/glquad/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := glquad.NewConfig(glquad.WithHotReload(true))

	src, err := glquad.LoadSource(cfg.ShaderPath)
	if err != nil {
		return err
	}

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	dev := opengl.NewDevice()
	slog.Info("opengl context", "version", dev.Version(), "profile", cfg.Profile)

	renderer, err := glquad.NewRenderer(dev, src, cfg)
	if err != nil {
		return fmt.Errorf("quad renderer: %w", err)
	}
	defer renderer.Close()

	var changes <-chan struct{}
	if cfg.HotReload {
		watcher, err := glquad.NewWatcher(cfg.ShaderPath)
		if err != nil {
			return fmt.Errorf("watch shader: %w", err)
		}
		defer watcher.Close()
		changes = watcher.Changes()
	}

	return glquad.Run(window, renderer, changes)
}
