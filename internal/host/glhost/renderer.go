//go:build !android

package glhost

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"backdrop/internal/paint"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Disc/ring point sprite program.
	discProg   uint32
	discVAO    uint32
	discVBO    uint32
	discURes   int32
	discUScale int32

	// Line quad program.
	lineProg uint32
	lineVAO  uint32
	lineVBO  uint32
	lineURes int32

	// Radial gradient program.
	gradProg    uint32
	gradVAO     uint32
	gradVBO     uint32
	gradURes    int32
	gradUCenter int32
	gradUR0     int32
	gradUR1     int32
	gradUInner  int32
	gradUOuter  int32

	// Font atlas text program.
	fontTex  uint32
	textProg uint32
	textVAO  uint32
	textVBO  uint32
	textURes int32
}

func NewRenderer() (*Renderer, error) {
	discProg, err := linkProgram(discVertSrc, discFragSrc)
	if err != nil {
		return nil, fmt.Errorf("disc program: %w", err)
	}
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		gl.DeleteProgram(discProg)
		return nil, fmt.Errorf("line program: %w", err)
	}
	gradProg, err := linkProgram(gradVertSrc, gradFragSrc)
	if err != nil {
		gl.DeleteProgram(discProg)
		gl.DeleteProgram(lineProg)
		return nil, fmt.Errorf("gradient program: %w", err)
	}

	r := &Renderer{
		discProg: discProg,
		lineProg: lineProg,
		gradProg: gradProg,
	}

	// Disc VAO/VBO: 8 floats per sprite (x, y, outer, r, g, b, a, inner).
	r.discVAO, r.discVBO = newStream()
	stride := int32(8 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))

	// Line VAO/VBO: 6 floats per vertex (x, y, r, g, b, a).
	r.lineVAO, r.lineVBO = newStream()
	stride = int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))

	// Gradient VAO/VBO: 2 floats per vertex.
	r.gradVAO, r.gradVBO = newStream()
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	r.discURes = uniform(discProg, "uResolution")
	r.discUScale = uniform(discProg, "uScale")
	r.lineURes = uniform(lineProg, "uResolution")
	r.gradURes = uniform(gradProg, "uResolution")
	r.gradUCenter = uniform(gradProg, "uCenter")
	r.gradUR0 = uniform(gradProg, "uR0")
	r.gradUR1 = uniform(gradProg, "uR1")
	r.gradUInner = uniform(gradProg, "uInner")
	r.gradUOuter = uniform(gradProg, "uOuter")

	gl.BindVertexArray(0)

	if err := r.initText(); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func newStream() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	return vao, vbo
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (r *Renderer) Destroy() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	for _, id := range []uint32{r.discVBO, r.lineVBO, r.gradVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.discVAO, r.lineVAO, r.gradVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.discProg, r.lineProg, r.gradProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// Draw clears the framebuffer and replays the surface's batches in order.
// The surface is in window coordinates; fbW/fbH is the framebuffer size, which
// differs on high-DPI displays.
func (r *Renderer) Draw(s *Surface, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	br, bg, bb, _ := paint.Background.Floats()
	gl.ClearColor(br, bg, bb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if len(s.batches) == 0 || s.w <= 0 || s.h <= 0 {
		return
	}
	resW, resH := float32(s.w), float32(s.h)
	scale := float32(float64(fbW) / s.w)

	upload(r.discVBO, s.discs)
	upload(r.lineVBO, s.lines)
	upload(r.gradVBO, s.rects)

	gl.UseProgram(r.discProg)
	gl.Uniform2f(r.discURes, resW, resH)
	gl.Uniform1f(r.discUScale, scale)
	gl.UseProgram(r.lineProg)
	gl.Uniform2f(r.lineURes, resW, resH)
	gl.UseProgram(r.gradProg)
	gl.Uniform2f(r.gradURes, resW, resH)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	for _, b := range s.batches {
		switch b.kind {
		case batchDiscs:
			gl.UseProgram(r.discProg)
			gl.BindVertexArray(r.discVAO)
			gl.DrawArrays(gl.POINTS, b.first, b.count)
		case batchLines:
			gl.UseProgram(r.lineProg)
			gl.BindVertexArray(r.lineVAO)
			gl.DrawArrays(gl.TRIANGLES, b.first, b.count)
		case batchGradient:
			gl.UseProgram(r.gradProg)
			gl.BindVertexArray(r.gradVAO)
			gl.Uniform2f(r.gradUCenter, b.cx, b.cy)
			gl.Uniform1f(r.gradUR0, b.r0)
			gl.Uniform1f(r.gradUR1, b.r1)
			gl.Uniform4f(r.gradUInner, b.inner[0], b.inner[1], b.inner[2], b.inner[3])
			gl.Uniform4f(r.gradUOuter, b.outer[0], b.outer[1], b.outer[2], b.outer[3])
			gl.DrawArrays(gl.TRIANGLES, b.first, b.count)
		}
	}

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func upload(vbo uint32, buf []float32) {
	if len(buf) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
}
