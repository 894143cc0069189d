//go:build !android

package glhost

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"backdrop/internal/app"
	"backdrop/internal/paint"
)

// Font atlas layout: 32 cols x 4 rows of 7x13 cells, ASCII 0-127.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 32
	FontRows   = 4
	FontAtlasW = FontCellW * FontCols // 224
	FontAtlasH = FontCellH * FontRows // 52
)

const (
	textScale   = 2
	textMargin  = 16
	toastRise   = 64
	lineSpacing = 1.4
)

var textColor = paint.RGBA(247, 147, 30, 1)

// buildAtlas rasterises the printable ASCII range of basicfont into white
// glyphs on a transparent sheet.
func buildAtlas() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for c := 32; c < 127; c++ {
		col, row := c%FontCols, c/FontCols
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(rune(c)))
	}
	return img
}

// textBatch collects glyph quads: pos(2) + uv(2) + color(4) per vertex.
type textBatch struct {
	buf []float32
}

func (t *textBatch) Reset() { t.buf = t.buf[:0] }

// DrawChar queues one character as a textured quad in viewport pixels.
func (t *textBatch) DrawChar(ch rune, sx, sy, scale float32, c paint.Color) {
	if ch < 32 || ch > 126 {
		return
	}
	column := int(ch) % FontCols
	row := int(ch) / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale
	cr, cg, cb, ca := c.Floats()

	// Two triangles: TL, TR, BL then TR, BR, BL.
	t.buf = append(t.buf,
		sx, sy, u0, v0, cr, cg, cb, ca,
		sx+w, sy, u1, v0, cr, cg, cb, ca,
		sx, sy+h, u0, v1, cr, cg, cb, ca,
		sx+w, sy, u1, v0, cr, cg, cb, ca,
		sx+w, sy+h, u1, v1, cr, cg, cb, ca,
		sx, sy+h, u0, v1, cr, cg, cb, ca,
	)
}

func (t *textBatch) DrawString(text string, sx, sy, scale float32, c paint.Color) {
	x := sx
	for _, ch := range text {
		t.DrawChar(ch, x, sy, scale, c)
		x += float32(FontCellW) * scale
	}
}

// layoutOverlay queues the stats strip top-left and the toast sliding up
// from the bottom edge of a viewport h pixels tall.
func (t *textBatch) layoutOverlay(o app.Overlay, h float64) {
	line := float32(FontCellH*textScale) * lineSpacing
	y := float32(textMargin)
	for _, st := range o.Stats {
		t.DrawString(st.Text+"  "+st.Label, textMargin, y, textScale, textColor)
		y += line
	}
	if o.Toast != "" {
		ty := float32(h) - textMargin - float32(FontCellH*textScale) + float32(o.ToastOffset*toastRise)
		t.DrawString(o.Toast, textMargin, ty, textScale, textColor)
	}
}

// initText uploads the atlas and builds the text program.
func (r *Renderer) initText() error {
	atlas := buildAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		FontAtlasW, FontAtlasH, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = uniform(prog, "uResolution")
	gl.Uniform1i(uniform(prog, "uFontTex"), 0)

	r.textVAO, r.textVBO = newStream()
	stride := int32(8 * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	gl.BindVertexArray(0)
	return nil
}

// DrawText draws the queued glyphs over whatever Draw left in the
// framebuffer. w and h are the viewport size in window coordinates.
func (r *Renderer) DrawText(t *textBatch, w, h float64) {
	if len(t.buf) == 0 || w <= 0 || h <= 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.Uniform2f(r.textURes, float32(w), float32(h))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	upload(r.textVBO, t.buf)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(t.buf)/8))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
