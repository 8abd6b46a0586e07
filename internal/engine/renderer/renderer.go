// Package renderer draws terrain chunk grids with OpenGL.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/verdictzero/GANDER-B/internal/engine/shader"
	"github.com/verdictzero/GANDER-B/internal/engine/texture"
	"github.com/verdictzero/GANDER-B/internal/logger"
	"github.com/verdictzero/GANDER-B/internal/terrain"
	"github.com/verdictzero/GANDER-B/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// chunkBuffers holds the GPU-side mesh of one chunk.
type chunkBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Renderer owns the terrain shader and the per-chunk GPU buffers of the
// currently uploaded grid.
type Renderer struct {
	config Config

	program     uint32
	locViewProj int32
	locLightDir int32
	locLow      int32
	locHigh     int32
	locSpan     int32
	locUseTex   int32
	locAlbedo   int32

	chunks     []chunkBuffers
	heightSpan float32

	albedoTex uint32
	wireframe bool
}

// New creates a renderer. Must be called after the OpenGL context
// exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		heightSpan: 1,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.12, 0.14, 0.18, 1.0)

	program, err := shader.CompileProgram(terrainVertexShader, terrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	r.program = program

	r.locViewProj = shader.MustGetUniform(program, "uViewProj")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locLow = shader.GetUniform(program, "uLowColor")
	r.locHigh = shader.GetUniform(program, "uHighColor")
	r.locSpan = shader.GetUniform(program, "uHeightSpan")
	r.locUseTex = shader.GetUniform(program, "uUseTexture")
	r.locAlbedo = shader.GetUniform(program, "uAlbedo")

	return r, nil
}

// Close releases all renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.ReleaseGrid()
	r.ClearProjection()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the window aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin clears the current render target for a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Wireframe reports whether wireframe mode is active.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// ToggleWireframe flips between solid and wireframe fill and returns
// the new state.
func (r *Renderer) ToggleWireframe() bool {
	r.wireframe = !r.wireframe
	return r.wireframe
}

// UploadGrid replaces the GPU buffers with the given grid's chunk
// meshes. Vertices are interleaved position/normal/UV.
func (r *Renderer) UploadGrid(grid *terrain.Grid) {
	r.ReleaseGrid()
	if grid == nil {
		return
	}

	span := grid.Bounds.Max.Y - grid.Bounds.Min.Y
	if span < 0.001 {
		span = 1
	}
	r.heightSpan = span

	for _, chunk := range grid.Chunks() {
		r.chunks = append(r.chunks, uploadChunk(&chunk.Mesh))
	}

	logger.Debug("grid uploaded",
		zap.Int("chunks", len(r.chunks)),
	)
}

// ReleaseGrid frees all chunk GPU buffers.
func (r *Renderer) ReleaseGrid() {
	for i := range r.chunks {
		cb := &r.chunks[i]
		if cb.vao != 0 {
			gl.DeleteVertexArrays(1, &cb.vao)
		}
		if cb.vbo != 0 {
			gl.DeleteBuffers(1, &cb.vbo)
		}
		if cb.ebo != 0 {
			gl.DeleteBuffers(1, &cb.ebo)
		}
	}
	r.chunks = r.chunks[:0]
}

// SetProjection uploads an image as the albedo texture draped over the
// terrain via its UVs. Replaces any previous projection.
func (r *Renderer) SetProjection(img *image.RGBA) {
	r.ClearProjection()
	r.albedoTex = texture.Upload(img)
}

// ClearProjection removes the projection texture, returning to
// height-based shading.
func (r *Renderer) ClearProjection() {
	texture.Release(r.albedoTex)
	r.albedoTex = 0
}

// Draw renders every uploaded chunk with the given view-projection.
func (r *Renderer) Draw(viewProj math.Mat4) {
	if len(r.chunks) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(r.locLightDir, 0.35, 0.85, 0.4)
	gl.Uniform3f(r.locLow, 0.18, 0.32, 0.16)
	gl.Uniform3f(r.locHigh, 0.85, 0.82, 0.75)
	gl.Uniform1f(r.locSpan, r.heightSpan)

	if r.albedoTex != 0 {
		gl.Uniform1i(r.locUseTex, 1)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.albedoTex)
		gl.Uniform1i(r.locAlbedo, 0)
	} else {
		gl.Uniform1i(r.locUseTex, 0)
	}

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	for i := range r.chunks {
		cb := &r.chunks[i]
		gl.BindVertexArray(cb.vao)
		gl.DrawElements(gl.TRIANGLES, cb.indexCount, gl.UNSIGNED_INT, nil)
	}

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	gl.BindVertexArray(0)
}

// uploadChunk interleaves a chunk mesh and uploads it as VAO/VBO/EBO.
func uploadChunk(mesh *terrain.ChunkMesh) chunkBuffers {
	const floatsPerVertex = 8 // position 3, normal 3, uv 2

	vertices := make([]float32, 0, len(mesh.Positions)*floatsPerVertex)
	for i := range mesh.Positions {
		p := mesh.Positions[i]
		n := mesh.Normals[i]
		uv := mesh.UVs[i]
		vertices = append(vertices,
			p.X, p.Y, p.Z,
			n.X, n.Y, n.Z,
			uv.X, uv.Y,
		)
	}

	var cb chunkBuffers
	cb.indexCount = int32(len(mesh.Indices))

	gl.GenVertexArrays(1, &cb.vao)
	gl.BindVertexArray(cb.vao)

	gl.GenBuffers(1, &cb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, cb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &cb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, cb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return cb
}
