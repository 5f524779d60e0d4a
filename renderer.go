// SPDX-License-Identifier: Unlicense OR MIT

/*
Package eguid3d11 renders immediate-mode GUI frame output to a
Direct3D11 render target.

The renderer consumes the output of a GUI layer frame: a texture delta,
an ordered list of clipped shapes and the frame's pixels-per-point
scale. It owns a fixed set of pipeline state objects and a pool of
GPU textures whose identities and lifetimes are controlled by the GUI
layer, and translates each tessellated mesh into one indexed draw call.

Window creation, event handling and swap-chain management stay with the
host; see package d3d11 for the Direct3D11 device wrappers and package
backend for the device abstraction the renderer draws through.
*/
package eguid3d11

import (
	"errors"

	"github.com/egui-go/egui-d3d11/backend"
	"github.com/egui-go/egui-d3d11/epaint"
	"github.com/egui-go/egui-d3d11/internal/unsafeslice"
)

// ErrZeroRenderTarget is returned by Render when the render target has
// zero width or height; a degenerate target would otherwise feed a
// zero denominator into the vertex transform.
var ErrZeroRenderTarget = errors.New("eguid3d11: render target has zero size")

// UI is the subset of the GUI layer the renderer needs: the
// tessellator that turns shapes into triangle meshes, and the UI zoom
// factor. Both are consumed as black boxes.
type UI interface {
	Tessellate(shapes []epaint.ClippedShape, pixelsPerPoint float32) []epaint.ClippedPrimitive
	ZoomFactor() float32
}

// FrameOutput is the part of a GUI frame consumed by the renderer.
type FrameOutput struct {
	TexturesDelta epaint.TexturesDelta
	Shapes        []epaint.ClippedShape
	// PixelsPerPoint is the scale the shapes were laid out with; it is
	// passed through to the tessellator.
	PixelsPerPoint float32
}

// Renderer draws GUI frame output onto a render target. It owns its
// pipeline state objects and texture pool exclusively; the GPU device
// behind them is shared infrastructure and is not owned.
//
// A Renderer is not safe for concurrent use. On a creation error from
// the device, drop the Renderer (after Release) and construct a new
// one against a fresh device; device loss manifests as such errors.
type Renderer struct {
	dev backend.Device

	inputLayout  backend.InputLayout
	vertexShader backend.VertexShader
	pixelShader  backend.PixelShader
	rasterizer   backend.RasterizerState
	sampler      backend.SamplerState
	blend        backend.BlendState

	pool *TexturePool
}

// New creates a Renderer using the provided device: it compiles the
// fixed shader pair and creates the pipeline state objects once. The
// first creation error aborts construction, releasing whatever was
// already created.
func New(dev backend.Device) (*Renderer, error) {
	r := &Renderer{dev: dev, pool: NewTexturePool(dev)}
	var err error
	if r.vertexShader, err = dev.NewVertexShader(vertexShaderSrc); err != nil {
		return nil, err
	}
	if r.pixelShader, err = dev.NewPixelShader(pixelShaderSrc); err != nil {
		r.Release()
		return nil, err
	}
	if r.inputLayout, err = dev.NewInputLayout(vertexShaderSrc, vertexInputs); err != nil {
		r.Release()
		return nil, err
	}
	if r.rasterizer, err = dev.NewRasterizerState(rasterizerDesc); err != nil {
		r.Release()
		return nil, err
	}
	if r.sampler, err = dev.NewSamplerState(samplerDesc); err != nil {
		r.Release()
		return nil, err
	}
	if r.blend, err = dev.NewBlendState(blendDesc); err != nil {
		r.Release()
		return nil, err
	}
	return r, nil
}

// Release frees the pipeline state objects and the texture pool. The
// Renderer must not be used afterwards.
func (r *Renderer) Release() {
	if r.vertexShader != nil {
		r.vertexShader.Release()
		r.vertexShader = nil
	}
	if r.pixelShader != nil {
		r.pixelShader.Release()
		r.pixelShader = nil
	}
	if r.inputLayout != nil {
		r.inputLayout.Release()
		r.inputLayout = nil
	}
	if r.rasterizer != nil {
		r.rasterizer.Release()
		r.rasterizer = nil
	}
	if r.sampler != nil {
		r.sampler.Release()
		r.sampler = nil
	}
	if r.blend != nil {
		r.blend.Release()
		r.blend = nil
	}
	r.pool.Release()
}

// RegisterUserTexture stores an application-owned shader resource view
// and returns a texture identifier the GUI layer can reference, for
// example to show an off-screen render target inside a widget. The
// pool never takes ownership of the underlying texture.
func (r *Renderer) RegisterUserTexture(view backend.ShaderResourceView) epaint.TextureID {
	return r.pool.RegisterUserTexture(view)
}

// UnregisterUserTexture removes a previously registered user texture
// and reports whether it was present.
func (r *Renderer) UnregisterUserTexture(id epaint.TextureID) bool {
	return r.pool.UnregisterUserTexture(id)
}

// Render draws one frame of GUI output onto target.
//
// The render target must be viewed as a non-sRGB-aware gamma-space
// format: the GUI layer blends in gamma space. scaleFactor is the
// window scale factor, not the UI zoom factor.
//
// Render owns the context's pipeline state for the duration of the
// call and clears it before returning; backing up and restoring the
// caller's own bindings is the caller's responsibility. A failed call
// may leave the target partially drawn.
func (r *Renderer) Render(ctx backend.Context, target backend.RenderTarget, ui UI, out FrameOutput, scaleFactor float32) error {
	if err := r.pool.Update(ctx, out.TexturesDelta); err != nil {
		return err
	}
	if len(out.Shapes) == 0 {
		return nil
	}

	size, err := target.Size()
	if err != nil {
		return err
	}
	if size.X <= 0 || size.Y <= 0 {
		return ErrZeroRenderTarget
	}
	zoom := ui.ZoomFactor()
	frameScaled := epaint.Point{
		X: float32(size.X) / scaleFactor,
		Y: float32(size.Y) / scaleFactor,
	}

	ctx.ClearState()
	defer ctx.ClearState()
	r.setup(ctx, target, size.X, size.Y)

	prims := ui.Tessellate(out.Shapes, out.PixelsPerPoint)
	for _, mesh := range translateMeshes(prims, frameScaled, zoom, scaleFactor*zoom) {
		if err := r.drawMesh(ctx, mesh); err != nil {
			return err
		}
	}
	return nil
}

// setup binds the full pipeline state set once per frame. The hull,
// domain and geometry stages are assumed inactive on the cleared
// context.
func (r *Renderer) setup(ctx backend.Context, target backend.RenderTarget, width, height int) {
	ctx.SetTopology(backend.TopologyTriangles)
	ctx.SetInputLayout(r.inputLayout)
	ctx.SetVertexShader(r.vertexShader)
	ctx.SetPixelShader(r.pixelShader)
	ctx.SetRasterizerState(r.rasterizer)
	ctx.SetViewport(backend.Viewport{
		Width:  float32(width),
		Height: float32(height),
	})
	ctx.SetSampler(0, r.sampler)
	ctx.SetRenderTarget(target)
	ctx.SetBlendState(r.blend, [4]float32{}, ^uint32(0))
}

// drawMesh issues one indexed draw. Vertex and index buffers are
// transient: created for this mesh, released right after the draw is
// recorded, never reused across meshes or frames.
func (r *Renderer) drawMesh(ctx backend.Context, mesh meshData) error {
	vb, err := r.dev.NewVertexBuffer(unsafeslice.BytesView(mesh.vtx))
	if err != nil {
		return err
	}
	defer vb.Release()
	ib, err := r.dev.NewIndexBuffer(unsafeslice.BytesView(mesh.idx))
	if err != nil {
		return err
	}
	defer ib.Release()

	ctx.SetVertexBuffer(vb, vertexStride)
	ctx.SetIndexBuffer(ib)
	ctx.SetScissor(mesh.clip)
	if view, ok := r.pool.View(mesh.tex); ok {
		ctx.SetTexture(0, view)
	} else {
		// Keep drawing with whatever was bound to slot 0; skipping the
		// draw entirely would hide the bug behind invisible widgets.
		logger().Warn("eguid3d11: mesh samples an unknown texture",
			"texture", mesh.tex)
	}
	ctx.DrawIndexed(len(mesh.idx))
	return nil
}
