package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprite shape kinds, matching the cell fragment shader.
const (
	SpriteSnake    = 0.0
	SpriteFood     = 1.0
	SpriteObstacle = 2.0
	SpriteShadow   = 3.0
)

// Each sprite: 8 floats (x, y, size, r, g, b, a, kind).
const spriteStride = 8

// MaxSprites bounds the streaming VBO; the grid holds 600 cells and each
// draws at most twice (shadow + body).
const MaxSprites = 2 * GridWidth * GridHeight

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

type Renderer struct {
	// Background gradient program.
	bgProg    uint32
	quadVAO   uint32
	quadVBO   uint32
	bgUTop    int32
	bgUBottom int32

	// Glass panel program (shares the unit quad).
	panelProg    uint32
	pURect       int32
	pURadius     int32
	pUFill       int32
	pUBorderCol  int32
	pUBorderW    int32
	pUSheen      int32
	pUResolution int32

	// Cell sprite program.
	cellProg     uint32
	cellVAO      uint32
	cellVBO      uint32
	cUResolution int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Reusable sprite buffer to avoid per-frame heap allocations.
	spriteBuf []float32
}

func NewRenderer() (*Renderer, error) {
	bgProg, err := linkProgram(bgVertSrc, bgFragSrc)
	if err != nil {
		return nil, fmt.Errorf("background program: %w", err)
	}
	panelProg, err := linkProgram(panelVertSrc, panelFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		return nil, fmt.Errorf("panel program: %w", err)
	}
	cellProg, err := linkProgram(cellVertSrc, cellFragSrc)
	if err != nil {
		gl.DeleteProgram(bgProg)
		gl.DeleteProgram(panelProg)
		return nil, fmt.Errorf("cell program: %w", err)
	}

	r := &Renderer{
		bgProg:    bgProg,
		panelProg: panelProg,
		cellProg:  cellProg,
	}

	// Unit quad VAO/VBO (6 vertices, 2 triangles) shared by background and panels.
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	// Background uniforms.
	gl.UseProgram(bgProg)
	r.bgUTop = gl.GetUniformLocation(bgProg, gl.Str("uTop\x00"))
	r.bgUBottom = gl.GetUniformLocation(bgProg, gl.Str("uBottom\x00"))

	// Panel uniforms.
	gl.UseProgram(panelProg)
	r.pURect = gl.GetUniformLocation(panelProg, gl.Str("uRect\x00"))
	r.pURadius = gl.GetUniformLocation(panelProg, gl.Str("uRadius\x00"))
	r.pUFill = gl.GetUniformLocation(panelProg, gl.Str("uFill\x00"))
	r.pUBorderCol = gl.GetUniformLocation(panelProg, gl.Str("uBorderCol\x00"))
	r.pUBorderW = gl.GetUniformLocation(panelProg, gl.Str("uBorderW\x00"))
	r.pUSheen = gl.GetUniformLocation(panelProg, gl.Str("uSheen\x00"))
	r.pUResolution = gl.GetUniformLocation(panelProg, gl.Str("uResolution\x00"))

	// Cell sprite VAO/VBO: streaming buffer for point sprites.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(spriteStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSprites*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aKind (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.cellVAO = sVAO
	r.cellVBO = sVBO

	gl.UseProgram(cellProg)
	r.cUResolution = gl.GetUniformLocation(cellProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.cellVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.cellVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.bgProg, r.panelProg, r.cellProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// DrawBackground fills the frame with the indigo-to-black vertical gradient.
func (r *Renderer) DrawBackground() {
	gl.UseProgram(r.bgProg)
	gl.BindVertexArray(r.quadVAO)
	top := Palette.GradientTop
	bot := Palette.GradientBottom
	gl.Uniform3f(r.bgUTop, float32(top.R)/255, float32(top.G)/255, float32(top.B)/255)
	gl.Uniform3f(r.bgUBottom, float32(bot.R)/255, float32(bot.G)/255, float32(bot.B)/255)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// Panel describes one rounded rectangle in framebuffer pixel space.
type Panel struct {
	X, Y, W, H  float32
	Radius      float32
	Fill        [4]float32
	BorderCol   [4]float32
	BorderWidth float32
	Sheen       float32 // 0 disables the glass top sheen
}

// DrawPanel renders a single rounded rectangle (HUD panel, button, border).
func (r *Renderer) DrawPanel(p Panel, fbW, fbH int) {
	gl.UseProgram(r.panelProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Uniform4f(r.pURect, p.X, p.Y, p.W, p.H)
	gl.Uniform1f(r.pURadius, p.Radius)
	gl.Uniform4f(r.pUFill, p.Fill[0], p.Fill[1], p.Fill[2], p.Fill[3])
	gl.Uniform4f(r.pUBorderCol, p.BorderCol[0], p.BorderCol[1], p.BorderCol[2], p.BorderCol[3])
	gl.Uniform1f(r.pUBorderW, p.BorderWidth)
	gl.Uniform1f(r.pUSheen, p.Sheen)
	gl.Uniform2f(r.pUResolution, float32(fbW), float32(fbH))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawSprites streams and draws a point-sprite buffer (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	n := len(buf) / spriteStride
	if n > MaxSprites {
		n = MaxSprites
		buf = buf[:n*spriteStride]
	}
	gl.UseProgram(r.cellProg)
	gl.BindVertexArray(r.cellVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cellVBO)
	gl.Uniform2f(r.cUResolution, float32(fbW), float32(fbH))
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	gl.DrawArrays(gl.POINTS, 0, int32(n))
}
