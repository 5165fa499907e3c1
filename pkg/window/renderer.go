package window

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/donkey/internal/engine/font"
	"github.com/Faultbox/donkey/internal/engine/mesh"
	"github.com/Faultbox/donkey/internal/engine/shader"
	"github.com/Faultbox/donkey/pkg/colors"
	"github.com/Faultbox/donkey/pkg/math"
)

// spriteFloats is the 2D vertex size: position(3) + uv(2) + color(4).
const spriteFloats = 9

var lightDir = math.Vec3{X: -0.4, Y: -1, Z: -0.3}.Normalize()

// renderer batches 2D quads and lit 3D triangles and flushes them with
// one draw call per batch. 2D batches break when the bound texture changes.
type renderer struct {
	sprite *shader.Program
	lit    *shader.Program

	spriteVAO uint32
	spriteVBO uint32
	litVAO    uint32
	litVBO    uint32

	white   uint32
	fontTex uint32
	atlas   *font.Atlas

	sprites   []float32
	spriteTex uint32
	solids    []float32

	width, height int // screen coordinates
}

// newRenderer must be called after the GL context is current.
func newRenderer(log *zap.Logger, width, height int) (*renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &renderer{
		sprites: make([]float32, 0, 4096),
		solids:  make([]float32, 0, 8192),
		width:   width,
		height:  height,
	}

	var err error
	r.sprite, err = shader.New(shader.Textured2DVertex, shader.Textured2DFragment)
	if err != nil {
		return nil, fmt.Errorf("create sprite shader: %w", err)
	}
	r.lit, err = shader.New(shader.Lit3DVertex, shader.Lit3DFragment)
	if err != nil {
		r.sprite.Delete()
		return nil, fmt.Errorf("create lit shader: %w", err)
	}

	r.spriteVAO, r.spriteVBO = newVertexArray(spriteFloats, 3, 2, 4)
	r.litVAO, r.litVBO = newVertexArray(mesh.FloatsPerVertex, 3, 3, 4)

	r.white = uploadTexture(1, 1, []byte{255, 255, 255, 255})
	r.atlas = font.New()
	atlasImg := r.atlas.RGBA()
	r.fontTex = uploadTexture(atlasImg.Rect.Dx(), atlasImg.Rect.Dy(), atlasImg.Pix)

	return r, nil
}

// newVertexArray creates a VAO/VBO pair with consecutive float attributes.
func newVertexArray(stride int, sizes ...int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	offset := 0
	for i, size := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(i), size, gl.FLOAT, false, int32(stride*4), uintptr(offset*4))
		gl.EnableVertexAttribArray(uint32(i))
		offset += int(size)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// uploadTexture creates a nearest-filtered RGBA texture from tightly packed rows.
func uploadTexture(width, height int, pix []byte) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

// releaseTexture deletes a texture, flushing first if the pending batch uses it.
func (r *renderer) releaseTexture(id uint32) {
	if id == r.spriteTex {
		r.flush2D()
		r.spriteTex = 0
	}
	gl.DeleteTextures(1, &id)
}

func (r *renderer) resize(width, height, drawableW, drawableH int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(drawableW), int32(drawableH))
}

// clear drops anything queued so far and clears color and depth.
func (r *renderer) clear(c colors.Color) {
	r.sprites = r.sprites[:0]
	r.solids = r.solids[:0]

	n := c.Normalized()
	gl.ClearColor(n[0], n[1], n[2], n[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *renderer) rect(x, y, w, h float32, c colors.Color) {
	r.quad(r.white, x, y, w, h, 0, 0, 1, 1, c)
}

func (r *renderer) text(text string, x, y float32, size int, c colors.Color) {
	for _, g := range r.atlas.Layout(text, x, y, size) {
		r.quad(r.fontTex, g.X, g.Y, g.W, g.H, g.U0, g.V0, g.U1, g.V1, c)
	}
}

// quad queues two triangles sampling tex.
func (r *renderer) quad(tex uint32, x, y, w, h, u0, v0, u1, v1 float32, c colors.Color) {
	if tex != r.spriteTex && len(r.sprites) > 0 {
		r.flush2D()
	}
	r.spriteTex = tex

	n := c.Normalized()
	cr, cg, cb, ca := n[0], n[1], n[2], n[3]
	r.sprites = append(r.sprites,
		x, y, 0, u0, v0, cr, cg, cb, ca,
		x+w, y, 0, u1, v0, cr, cg, cb, ca,
		x+w, y+h, 0, u1, v1, cr, cg, cb, ca,

		x, y, 0, u0, v0, cr, cg, cb, ca,
		x+w, y+h, 0, u1, v1, cr, cg, cb, ca,
		x, y+h, 0, u0, v1, cr, cg, cb, ca,
	)
}

// mesh queues a lit triangle list.
func (r *renderer) mesh(m mesh.Mesh, c colors.Color) {
	r.solids = mesh.AppendInterleaved(r.solids, m, c.Normalized())
}

// flush2D draws queued quads over whatever is in the framebuffer.
func (r *renderer) flush2D() {
	if len(r.sprites) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	r.sprite.Use()
	r.sprite.SetMat4("uProjection", math.Ortho(0, float32(r.width), float32(r.height), 0, -1, 1))
	r.sprite.SetInt("uTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.spriteTex)

	drawArrays(r.spriteVAO, r.spriteVBO, r.sprites, spriteFloats)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	r.sprites = r.sprites[:0]
}

// flush3D draws queued triangles with depth testing and back-face culling.
func (r *renderer) flush3D(viewProj math.Mat4) {
	if len(r.solids) == 0 {
		return
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r.lit.Use()
	r.lit.SetMat4("uViewProj", viewProj)
	r.lit.SetVec3("uLightDir", lightDir)

	drawArrays(r.litVAO, r.litVBO, r.solids, mesh.FloatsPerVertex)

	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	r.solids = r.solids[:0]
}

func drawArrays(vao, vbo uint32, verts []float32, stride int) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/stride))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// readPixels returns the bottom-up RGBA contents of the given color buffer.
func (r *renderer) readPixels(buffer uint32, width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(buffer)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.ReadBuffer(gl.BACK)
	return pixels
}

// close releases renderer resources.
func (r *renderer) close() {
	for _, vao := range []*uint32{&r.spriteVAO, &r.litVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&r.spriteVBO, &r.litVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	for _, tex := range []*uint32{&r.white, &r.fontTex} {
		if *tex != 0 {
			gl.DeleteTextures(1, tex)
		}
	}
	r.sprite.Delete()
	r.lit.Delete()
}
