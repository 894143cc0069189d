//go:build !android

// Package glhost runs a session in a native GLFW window drawn with OpenGL 4.1.
package glhost

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"backdrop/internal/app"
	"backdrop/internal/host"
)

// Run opens the window, builds the session around its size and drives it
// until the window closes or Escape is pressed.
func Run(cfg host.Config, opts app.Options, log *zap.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.MULTISAMPLE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	w, h := window.GetSize()
	opts.Width, opts.Height = float64(w), float64(h)
	opts.Clipboard = app.ClipboardFunc(func(text string) error {
		window.SetClipboardString(text)
		return nil
	})
	sess, err := app.NewSession(opts)
	if err != nil {
		return err
	}
	bindInput(window, sess.Bus())
	surf := newSurface(opts.Width, opts.Height)

	log.Info("gl host started",
		zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int("width", w),
		zap.Int("height", h),
	)

	text := &textBatch{}
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > host.MaxFrameStep {
			dt = host.MaxFrameStep
		}

		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			glfw.WaitEvents()
			continue
		}
		ww, wh := window.GetSize()
		surf.Resize(float64(ww), float64(wh))

		sess.Frame(surf, dt)
		rend.Draw(surf, fbW, fbH)
		text.Reset()
		text.layoutOverlay(sess.Overlay(), float64(wh))
		rend.DrawText(text, float64(ww), float64(wh))
		window.SwapBuffers()
	}
	log.Info("gl host closed")
	return nil
}
