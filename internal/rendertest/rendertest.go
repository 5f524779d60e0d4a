// SPDX-License-Identifier: Unlicense OR MIT

// Package rendertest provides an in-memory implementation of the
// backend interfaces for testing. The fake device accounts for every
// live resource so tests can assert release discipline, and the fake
// context records each draw with a snapshot of the bound state.
package rendertest

import (
	"fmt"
	"image"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/egui-go/egui-d3d11/backend"
)

// Extra bytes of row padding the fake adds to every mapped texture, to
// catch code assuming a tight width*4 row pitch.
const MapRowPadding = 16

// Device is a fake backend.Device. Creation errors can be injected
// per resource kind through the Err fields.
type Device struct {
	TextureErr    error
	BufferErr     error
	ShaderErr     error
	LayoutErr     error
	RasterizerErr error
	SamplerErr    error
	BlendErr      error

	live map[string]int
}

// DrawCall is the state snapshot recorded by Context.DrawIndexed.
type DrawCall struct {
	IndexCount int
	Scissor    image.Rectangle
	Texture    backend.ShaderResourceView
	VertexData []byte
	IndexData  []byte
	Stride     int
}

// Context is a fake backend.Context recording state binds and draws.
type Context struct {
	Cleared int
	Draws   []DrawCall

	Topology    backend.Topology
	Layout      backend.InputLayout
	VS          backend.VertexShader
	PS          backend.PixelShader
	Rasterizer  backend.RasterizerState
	Viewport    backend.Viewport
	Samplers    map[int]backend.SamplerState
	Target      backend.RenderTarget
	Blend       backend.BlendState
	BlendFactor [4]float32
	SampleMask  uint32
	Scissor     image.Rectangle
	Textures    map[int]backend.ShaderResourceView

	vertexBuf *Buffer
	indexBuf  *Buffer
	stride    int
}

// RenderTarget is a fake backend.RenderTarget with a fixed size and
// an optional injected Size error.
type RenderTarget struct {
	W, H    int
	SizeErr error
}

// Texture is a fake texture. Pix holds the "GPU" contents in tight
// width*4 rows; a Map discards them and hands back padded rows filled
// with a poison byte, and Unmap commits the written rows back.
type Texture struct {
	dev    *Device
	W, H   int
	Pix    []byte
	Maps   int
	mapped []byte
	view   *SRV
}

// SRV is a fake shader resource view tied to its texture.
type SRV struct {
	Tex *Texture
}

// Buffer is a fake immutable buffer snapshotting its creation data.
type Buffer struct {
	dev  *Device
	kind string
	Data []byte
}

type resource struct {
	dev  *Device
	kind string
}

func NewDevice() *Device {
	return &Device{live: make(map[string]int)}
}

func NewContext() *Context {
	return &Context{
		Samplers: make(map[int]backend.SamplerState),
		Textures: make(map[int]backend.ShaderResourceView),
	}
}

// Live returns the number of live resources of every kind, in a
// deterministic "kind=count" form for test failure messages.
func (d *Device) Live() []string {
	kinds := maps.Keys(d.live)
	slices.Sort(kinds)
	var out []string
	for _, k := range kinds {
		if d.live[k] > 0 {
			out = append(out, fmt.Sprintf("%s=%d", k, d.live[k]))
		}
	}
	return out
}

// LiveCount returns the total number of live resources.
func (d *Device) LiveCount() int {
	n := 0
	for _, c := range d.live {
		n += c
	}
	return n
}

func (d *Device) track(kind string) {
	d.live[kind]++
}

func (d *Device) untrack(kind string) {
	d.live[kind]--
}

func (d *Device) NewTexture2D(width, height int, pixels []byte) (backend.Texture2D, error) {
	if d.TextureErr != nil {
		return nil, d.TextureErr
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("rendertest: texture data is %d bytes, want %d", len(pixels), width*height*4)
	}
	d.track("texture")
	tex := &Texture{
		dev: d,
		W:   width,
		H:   height,
		Pix: append([]byte(nil), pixels...),
	}
	tex.view = &SRV{Tex: tex}
	return tex, nil
}

func (d *Device) NewVertexBuffer(data []byte) (backend.Buffer, error) {
	return d.newBuffer("vertex buffer", data)
}

func (d *Device) NewIndexBuffer(data []byte) (backend.Buffer, error) {
	return d.newBuffer("index buffer", data)
}

func (d *Device) newBuffer(kind string, data []byte) (backend.Buffer, error) {
	if d.BufferErr != nil {
		return nil, d.BufferErr
	}
	d.track(kind)
	return &Buffer{
		dev:  d,
		kind: kind,
		Data: append([]byte(nil), data...),
	}, nil
}

func (d *Device) NewVertexShader(src backend.ShaderSource) (backend.VertexShader, error) {
	if d.ShaderErr != nil {
		return nil, d.ShaderErr
	}
	d.track("vertex shader")
	return &resource{dev: d, kind: "vertex shader"}, nil
}

func (d *Device) NewPixelShader(src backend.ShaderSource) (backend.PixelShader, error) {
	if d.ShaderErr != nil {
		return nil, d.ShaderErr
	}
	d.track("pixel shader")
	return &resource{dev: d, kind: "pixel shader"}, nil
}

func (d *Device) NewInputLayout(src backend.ShaderSource, layout []backend.InputDesc) (backend.InputLayout, error) {
	if d.LayoutErr != nil {
		return nil, d.LayoutErr
	}
	d.track("input layout")
	return &resource{dev: d, kind: "input layout"}, nil
}

func (d *Device) NewRasterizerState(desc backend.RasterizerDesc) (backend.RasterizerState, error) {
	if d.RasterizerErr != nil {
		return nil, d.RasterizerErr
	}
	d.track("rasterizer state")
	return &resource{dev: d, kind: "rasterizer state"}, nil
}

func (d *Device) NewSamplerState(desc backend.SamplerDesc) (backend.SamplerState, error) {
	if d.SamplerErr != nil {
		return nil, d.SamplerErr
	}
	d.track("sampler state")
	return &resource{dev: d, kind: "sampler state"}, nil
}

func (d *Device) NewBlendState(desc backend.BlendDesc) (backend.BlendState, error) {
	if d.BlendErr != nil {
		return nil, d.BlendErr
	}
	d.track("blend state")
	return &resource{dev: d, kind: "blend state"}, nil
}

func (r *resource) Release() {
	r.dev.untrack(r.kind)
}

func (t *RenderTarget) Size() (image.Point, error) {
	if t.SizeErr != nil {
		return image.Point{}, t.SizeErr
	}
	return image.Pt(t.W, t.H), nil
}

func (t *Texture) View() backend.ShaderResourceView {
	return t.view
}

func (t *Texture) Release() {
	t.dev.untrack("texture")
}

func (*SRV) ImplementsShaderResourceView() {}

// At returns the RGBA bytes of the pixel at (x, y).
func (t *Texture) At(x, y int) [4]byte {
	off := (y*t.W + x) * 4
	return [4]byte{t.Pix[off], t.Pix[off+1], t.Pix[off+2], t.Pix[off+3]}
}

func (b *Buffer) Release() {
	b.dev.untrack(b.kind)
}

func (c *Context) ClearState() {
	c.Cleared++
	c.Topology = 0
	c.Layout = nil
	c.VS = nil
	c.PS = nil
	c.Rasterizer = nil
	c.Viewport = backend.Viewport{}
	c.Samplers = make(map[int]backend.SamplerState)
	c.Target = nil
	c.Blend = nil
	c.BlendFactor = [4]float32{}
	c.SampleMask = 0
	c.Scissor = image.Rectangle{}
	c.Textures = make(map[int]backend.ShaderResourceView)
	c.vertexBuf = nil
	c.indexBuf = nil
	c.stride = 0
}

func (c *Context) SetTopology(t backend.Topology)           { c.Topology = t }
func (c *Context) SetInputLayout(l backend.InputLayout)     { c.Layout = l }
func (c *Context) SetVertexShader(s backend.VertexShader)   { c.VS = s }
func (c *Context) SetPixelShader(s backend.PixelShader)     { c.PS = s }
func (c *Context) SetRasterizerState(s backend.RasterizerState) {
	c.Rasterizer = s
}
func (c *Context) SetViewport(v backend.Viewport) { c.Viewport = v }

func (c *Context) SetSampler(slot int, s backend.SamplerState) {
	c.Samplers[slot] = s
}

func (c *Context) SetRenderTarget(target backend.RenderTarget) {
	c.Target = target
}

func (c *Context) SetBlendState(s backend.BlendState, factor [4]float32, sampleMask uint32) {
	c.Blend = s
	c.BlendFactor = factor
	c.SampleMask = sampleMask
}

func (c *Context) SetVertexBuffer(b backend.Buffer, stride int) {
	c.vertexBuf = b.(*Buffer)
	c.stride = stride
}

func (c *Context) SetIndexBuffer(b backend.Buffer) {
	c.indexBuf = b.(*Buffer)
}

func (c *Context) SetScissor(r image.Rectangle) { c.Scissor = r }

func (c *Context) SetTexture(slot int, view backend.ShaderResourceView) {
	c.Textures[slot] = view
}

func (c *Context) DrawIndexed(count int) {
	call := DrawCall{
		IndexCount: count,
		Scissor:    c.Scissor,
		Texture:    c.Textures[0],
		Stride:     c.stride,
	}
	if c.vertexBuf != nil {
		call.VertexData = append([]byte(nil), c.vertexBuf.Data...)
	}
	if c.indexBuf != nil {
		call.IndexData = append([]byte(nil), c.indexBuf.Data...)
	}
	c.Draws = append(c.Draws, call)
}

// Map discards the texture contents the way a WRITE_DISCARD map does:
// the handed-back memory is poisoned, not the previous pixels, and the
// row pitch exceeds the tight pitch.
func (c *Context) Map(t backend.Texture2D) (backend.MappedTexture, error) {
	tex := t.(*Texture)
	pitch := tex.W*4 + MapRowPadding
	tex.mapped = make([]byte, pitch*tex.H)
	for i := range tex.mapped {
		tex.mapped[i] = 0xCD
	}
	tex.Maps++
	return backend.MappedTexture{
		Data:     tex.mapped,
		RowPitch: pitch,
	}, nil
}

// Unmap commits the mapped rows to Pix, dropping the row padding.
func (c *Context) Unmap(t backend.Texture2D) {
	tex := t.(*Texture)
	if tex.mapped == nil {
		return
	}
	pitch := tex.W*4 + MapRowPadding
	for y := 0; y < tex.H; y++ {
		copy(tex.Pix[y*tex.W*4:(y+1)*tex.W*4], tex.mapped[y*pitch:y*pitch+tex.W*4])
	}
	tex.mapped = nil
}
