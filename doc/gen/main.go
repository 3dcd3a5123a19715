// Command gen renders the quad into a hidden window, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glquad"
	"github.com/go-theft-auto/glquad/backend/opengl"
	"github.com/go-theft-auto/glquad/res"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one captured frame of the animation.
type screenshot struct {
	name   string // filename without extension
	frames int    // frames drawn before capture
}

func run() error {
	cfg := glquad.NewConfig(
		glquad.WithSize(320, 240),
		glquad.WithTitle("screenshot-gen"),
		glquad.WithHidden(true),
		glquad.WithSwapInterval(0),
	)

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	renderer, err := glquad.NewRenderer(opengl.NewDevice(), glquad.ParseString(res.BasicShader), cfg)
	if err != nil {
		return fmt.Errorf("quad renderer: %w", err)
	}
	defer renderer.Close()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	// Frame counts are cumulative: the color keeps oscillating between shots.
	shots := []screenshot{
		{name: "quad_start", frames: 1},
		{name: "quad_mid", frames: 50},
		{name: "quad_peak", frames: 50},
	}
	for _, s := range shots {
		if err := capture(window, renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, cfg.Width, cfg.Height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(window *opengl.Window, renderer *glquad.Renderer, s screenshot, outDir string) error {
	width, height := window.FramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	for i := 0; i < s.frames; i++ {
		if err := renderer.Frame(); err != nil {
			return err
		}
	}
	gl.Finish()

	// Read pixels
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
