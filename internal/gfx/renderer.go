package gfx

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gridsnake/internal/game"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

const numKinds = int(game.KindBody) + 1

// Renderer draws sprite views as textured quads sharing one mesh.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uProjection int32
	uModel      int32
	uTex        int32

	textures [numKinds]uint32
}

// NewRenderer builds the sprite program and the shared quad. A shader that
// fails to compile or link is an error.
func NewRenderer(width, height float32) (*Renderer, error) {
	prog, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	r := &Renderer{prog: prog}

	// Unit quad centred on the origin: x, y, s, t per vertex.
	quad := [24]float32{
		-0.5, 0.5, 0, 1,
		-0.5, -0.5, 0, 0,
		0.5, 0.5, 1, 1,

		-0.5, -0.5, 0, 0,
		0.5, -0.5, 1, 0,
		0.5, 0.5, 1, 1,
	}
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)

	stride := int32(4 * 4)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aUV (vec2)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.UseProgram(prog)
	r.uProjection = gl.GetUniformLocation(prog, gl.Str("uProjection\x00"))
	r.uModel = gl.GetUniformLocation(prog, gl.Str("uModel\x00"))
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)
	proj := Projection(width, height)
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])

	return r, nil
}

// SetTexture binds a texture handle to every view of kind. 0 is allowed.
func (r *Renderer) SetTexture(kind game.SpriteKind, tex uint32) {
	if int(kind) < 0 || int(kind) >= numKinds {
		return
	}
	r.textures[kind] = tex
}

func (r *Renderer) Destroy() {
	for _, id := range r.textures {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw issues one draw call per view, in slice order.
func (r *Renderer) Draw(views []game.SpriteView) {
	if len(views) == 0 {
		return
	}
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	for _, v := range views {
		tex := uint32(0)
		if int(v.Kind) >= 0 && int(v.Kind) < numKinds {
			tex = r.textures[v.Kind]
		}
		gl.BindTexture(gl.TEXTURE_2D, tex)
		model := ModelMatrix(v)
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
