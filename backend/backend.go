// SPDX-License-Identifier: Unlicense OR MIT

/*
Package backend defines the abstraction of the underlying GPU API that
the renderer draws through. It is shaped after Direct3D11: a Device
creates resources and immutable pipeline state objects, a Context is
the per-call, non-owning handle that binds state and issues draws, and
a RenderTarget is an output view whose pixel size can be queried.

Implementations must not be assumed safe for concurrent use; callers
serialize all use of a Context, as with the underlying graphics APIs.
*/
package backend

import "image"

// Device creates GPU resources. It is shared infrastructure owned by
// the host application; implementations wrap it without owning it.
type Device interface {
	// NewTexture2D creates an RGBA8 texture with a single mip level,
	// dynamic usage and CPU write access, initialized from pixels
	// (len must be width*height*4, row pitch width*4), together with
	// a shader-visible view over it.
	NewTexture2D(width, height int, pixels []byte) (Texture2D, error)
	// NewVertexBuffer creates an immutable vertex buffer holding data.
	NewVertexBuffer(data []byte) (Buffer, error)
	// NewIndexBuffer creates an immutable 32-bit index buffer holding data.
	NewIndexBuffer(data []byte) (Buffer, error)
	NewVertexShader(src ShaderSource) (VertexShader, error)
	NewPixelShader(src ShaderSource) (PixelShader, error)
	NewInputLayout(src ShaderSource, layout []InputDesc) (InputLayout, error)
	NewRasterizerState(desc RasterizerDesc) (RasterizerState, error)
	NewSamplerState(desc SamplerDesc) (SamplerState, error)
	NewBlendState(desc BlendDesc) (BlendState, error)
}

// Context is a non-owning handle to the device's command context.
// It is passed into every operation that records GPU work and must
// never be retained across calls.
type Context interface {
	ClearState()
	SetTopology(t Topology)
	SetInputLayout(l InputLayout)
	SetVertexShader(s VertexShader)
	SetPixelShader(s PixelShader)
	SetRasterizerState(s RasterizerState)
	SetViewport(v Viewport)
	SetSampler(slot int, s SamplerState)
	// SetRenderTarget binds target with no depth buffer.
	SetRenderTarget(target RenderTarget)
	SetBlendState(s BlendState, factor [4]float32, sampleMask uint32)
	SetVertexBuffer(b Buffer, stride int)
	SetIndexBuffer(b Buffer)
	SetScissor(r image.Rectangle)
	SetTexture(slot int, view ShaderResourceView)
	DrawIndexed(count int)

	// Map maps t for CPU write, discarding its previous GPU contents.
	// The mapped data covers RowPitch bytes per texture row.
	Map(t Texture2D) (MappedTexture, error)
	Unmap(t Texture2D)
}

// RenderTarget is an output view. The renderer queries its physical
// pixel size; everything else about the target belongs to the caller.
type RenderTarget interface {
	Size() (image.Point, error)
}

// Texture2D is a GPU texture created by a Device.
type Texture2D interface {
	View() ShaderResourceView
	Release()
}

// ShaderResourceView is a shader-visible view over a texture. Views
// wrapped from application-owned textures are never released through
// this package.
type ShaderResourceView interface {
	ImplementsShaderResourceView()
}

// Buffer is an immutable GPU buffer.
type Buffer interface {
	Release()
}

type VertexShader interface {
	Release()
}

type PixelShader interface {
	Release()
}

type InputLayout interface {
	Release()
}

type RasterizerState interface {
	Release()
}

type SamplerState interface {
	Release()
}

type BlendState interface {
	Release()
}

// MappedTexture is the CPU-visible side of a mapped texture. Data
// covers the whole texture; rows start every RowPitch bytes, which may
// exceed the tight width*4 pitch.
type MappedTexture struct {
	Data     []byte
	RowPitch int
}

// ShaderSource is a shader program in source form. Implementations
// compile it on resource creation; Name keys compilation caches.
type ShaderSource struct {
	Name   string
	Entry  string
	Target string
	HLSL   string
}

type Topology uint8

const (
	TopologyTriangles Topology = iota
)

// VertexFormat is the data format of one vertex input element.
type VertexFormat uint8

const (
	VertexFloat2 VertexFormat = iota
	VertexFloat4
)

// InputDesc describes a vertex attribute as laid out in a Buffer.
type InputDesc struct {
	Semantic      string
	SemanticIndex int
	Format        VertexFormat
	Offset        int
}

type Viewport struct {
	X, Y          float32
	Width, Height float32
}

// RasterizerDesc selects rasterizer state: solid fill and no culling
// are implied.
type RasterizerDesc struct {
	ScissorEnable   bool
	DepthClipEnable bool
}

type Filter uint8

const (
	FilterLinear Filter = iota
	FilterNearest
)

type AddressMode uint8

const (
	AddressClamp AddressMode = iota
	AddressWrap
	AddressBorder
)

type SamplerDesc struct {
	Filter      Filter
	AddressU    AddressMode
	AddressV    AddressMode
	AddressW    AddressMode
	BorderColor [4]float32
}

// Blend is a blend factor.
type Blend uint8

const (
	BlendZero Blend = iota
	BlendOne
	BlendSrcAlpha
	BlendInvSrcAlpha
	BlendDestAlpha
	BlendInvDestAlpha
)

// BlendDesc describes blending for the single render target, with
// add as the blend op on both channels.
type BlendDesc struct {
	Enable        bool
	SrcBlend      Blend
	DstBlend      Blend
	SrcBlendAlpha Blend
	DstBlendAlpha Blend
}
