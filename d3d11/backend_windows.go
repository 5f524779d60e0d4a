// SPDX-License-Identifier: Unlicense OR MIT

// Package d3d11 implements the backend device interfaces on top of
// Direct3D11 COM objects. Constructors take raw interface pointers so
// the package composes with any device source, whether created here
// through the swap chain helpers or received from a host application.
package d3d11

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/egui-go/egui-d3d11/backend"
	"github.com/egui-go/egui-d3d11/internal/d3dcompile"
	"github.com/egui-go/egui-d3d11/internal/unsafeslice"
)

// Device wraps an ID3D11Device. It does not own the underlying COM
// reference; releasing the device is the caller's responsibility.
type Device struct {
	dev *_ID3D11Device

	// Compiled shader bytecode keyed by source name, so the input
	// layout can reuse the vertex shader compile.
	bytecode map[string][]byte
}

// Context wraps an ID3D11DeviceContext. Like Device it is non-owning.
type Context struct {
	ctx *_ID3D11DeviceContext
}

// RenderTarget wraps an ID3D11RenderTargetView without owning it.
type RenderTarget struct {
	view *_ID3D11RenderTargetView
}

type texture2D struct {
	tex    *_ID3D11Texture2D
	view   *_ID3D11ShaderResourceView
	width  int
	height int
}

type buffer struct {
	buf *_ID3D11Buffer
}

type vertexShader struct {
	shader *_ID3D11VertexShader
}

type pixelShader struct {
	shader *_ID3D11PixelShader
}

type inputLayout struct {
	layout *_ID3D11InputLayout
}

type rasterizerState struct {
	state *_ID3D11RasterizerState
}

type samplerState struct {
	state *_ID3D11SamplerState
}

type blendState struct {
	state *_ID3D11BlendState
}

// shaderResourceView wraps an application-supplied SRV. The reference
// stays owned by the application.
type shaderResourceView struct {
	view *_ID3D11ShaderResourceView
}

// NewDevice wraps an existing ID3D11Device pointer.
func NewDevice(dev unsafe.Pointer) *Device {
	return &Device{
		dev:      (*_ID3D11Device)(dev),
		bytecode: make(map[string][]byte),
	}
}

// NewContext wraps an existing ID3D11DeviceContext pointer.
func NewContext(ctx unsafe.Pointer) *Context {
	return &Context{ctx: (*_ID3D11DeviceContext)(ctx)}
}

// NewRenderTarget wraps an existing ID3D11RenderTargetView pointer.
func NewRenderTarget(view unsafe.Pointer) *RenderTarget {
	return &RenderTarget{view: (*_ID3D11RenderTargetView)(view)}
}

// ShaderResourceViewFromPointer wraps an application-owned
// ID3D11ShaderResourceView for use as a user texture.
func ShaderResourceViewFromPointer(view unsafe.Pointer) backend.ShaderResourceView {
	return &shaderResourceView{view: (*_ID3D11ShaderResourceView)(view)}
}

func (d *Device) NewTexture2D(width, height int, pixels []byte) (backend.Texture2D, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("d3d11: texture data is %d bytes, want %d", len(pixels), width*height*4)
	}
	desc := _D3D11_TEXTURE2D_DESC{
		Width:     uint32(width),
		Height:    uint32(height),
		MipLevels: 1,
		ArraySize: 1,
		Format:    _DXGI_FORMAT_R8G8B8A8_UNORM,
		SampleDesc: _DXGI_SAMPLE_DESC{
			Count:   1,
			Quality: 0,
		},
		Usage:          _D3D11_USAGE_DYNAMIC,
		BindFlags:      _D3D11_BIND_SHADER_RESOURCE,
		CPUAccessFlags: _D3D11_CPU_ACCESS_WRITE,
	}
	initial := _D3D11_SUBRESOURCE_DATA{
		pSysMem:     &pixels[0],
		SysMemPitch: uint32(width * 4),
	}
	tex, err := d.dev.CreateTexture2D(&desc, &initial)
	if err != nil {
		return nil, err
	}
	viewDesc := _D3D11_SHADER_RESOURCE_VIEW_DESC_TEX2D{
		Format:        desc.Format,
		ViewDimension: _D3D11_SRV_DIMENSION_TEXTURE2D,
		Texture2D: _D3D11_TEX2D_SRV{
			MipLevels: 1,
		},
	}
	view, err := d.dev.CreateShaderResourceViewTEX2D((*_ID3D11Resource)(unsafe.Pointer(tex)), &viewDesc)
	if err != nil {
		_IUnknownRelease(unsafe.Pointer(tex), tex.vtbl.Release)
		return nil, err
	}
	return &texture2D{tex: tex, view: view, width: width, height: height}, nil
}

func (d *Device) NewVertexBuffer(data []byte) (backend.Buffer, error) {
	return d.newBuffer(data, _D3D11_BIND_VERTEX_BUFFER)
}

func (d *Device) NewIndexBuffer(data []byte) (backend.Buffer, error) {
	return d.newBuffer(data, _D3D11_BIND_INDEX_BUFFER)
}

func (d *Device) newBuffer(data []byte, bind uint32) (backend.Buffer, error) {
	if len(data) == 0 {
		return nil, errors.New("d3d11: empty buffer data")
	}
	buf, err := d.dev.CreateBuffer(&_D3D11_BUFFER_DESC{
		ByteWidth: uint32(len(data)),
		Usage:     _D3D11_USAGE_IMMUTABLE,
		BindFlags: bind,
	}, data)
	if err != nil {
		return nil, err
	}
	return &buffer{buf: buf}, nil
}

func (d *Device) NewVertexShader(src backend.ShaderSource) (backend.VertexShader, error) {
	code, err := d.compile(src)
	if err != nil {
		return nil, err
	}
	shader, err := d.dev.CreateVertexShader(code)
	if err != nil {
		return nil, err
	}
	return &vertexShader{shader: shader}, nil
}

func (d *Device) NewPixelShader(src backend.ShaderSource) (backend.PixelShader, error) {
	code, err := d.compile(src)
	if err != nil {
		return nil, err
	}
	shader, err := d.dev.CreatePixelShader(code)
	if err != nil {
		return nil, err
	}
	return &pixelShader{shader: shader}, nil
}

func (d *Device) NewInputLayout(vs backend.ShaderSource, inputs []backend.InputDesc) (backend.InputLayout, error) {
	code, err := d.compile(vs)
	if err != nil {
		return nil, err
	}
	descs := make([]_D3D11_INPUT_ELEMENT_DESC, 0, len(inputs))
	// Semantic names must stay alive until CreateInputLayout returns.
	names := make([][]byte, 0, len(inputs))
	for _, input := range inputs {
		name := append([]byte(input.Semantic), 0)
		names = append(names, name)
		var format uint32
		switch input.Format {
		case backend.VertexFloat2:
			format = _DXGI_FORMAT_R32G32_FLOAT
		case backend.VertexFloat4:
			format = _DXGI_FORMAT_R32G32B32A32_FLOAT
		default:
			return nil, fmt.Errorf("d3d11: unsupported input format %d", input.Format)
		}
		descs = append(descs, _D3D11_INPUT_ELEMENT_DESC{
			SemanticName:      &name[0],
			SemanticIndex:     uint32(input.SemanticIndex),
			Format:            format,
			AlignedByteOffset: uint32(input.Offset),
			InputSlotClass:    _D3D11_INPUT_PER_VERTEX_DATA,
		})
	}
	layout, err := d.dev.CreateInputLayout(descs, code)
	runtime.KeepAlive(names)
	if err != nil {
		return nil, err
	}
	return &inputLayout{layout: layout}, nil
}

func (d *Device) NewRasterizerState(desc backend.RasterizerDesc) (backend.RasterizerState, error) {
	rdesc := _D3D11_RASTERIZER_DESC{
		FillMode: _D3D11_FILL_SOLID,
		CullMode: _D3D11_CULL_NONE,
	}
	if desc.ScissorEnable {
		rdesc.ScissorEnable = 1
	}
	if desc.DepthClipEnable {
		rdesc.DepthClipEnable = 1
	}
	state, err := d.dev.CreateRasterizerState(&rdesc)
	if err != nil {
		return nil, err
	}
	return &rasterizerState{state: state}, nil
}

func (d *Device) NewSamplerState(desc backend.SamplerDesc) (backend.SamplerState, error) {
	sdesc := _D3D11_SAMPLER_DESC{
		Filter:         toFilter(desc.Filter),
		AddressU:       toAddressMode(desc.AddressU),
		AddressV:       toAddressMode(desc.AddressV),
		AddressW:       toAddressMode(desc.AddressW),
		ComparisonFunc: _D3D11_COMPARISON_ALWAYS,
		BorderColor:    desc.BorderColor,
	}
	state, err := d.dev.CreateSamplerState(&sdesc)
	if err != nil {
		return nil, err
	}
	return &samplerState{state: state}, nil
}

func (d *Device) NewBlendState(desc backend.BlendDesc) (backend.BlendState, error) {
	var bdesc _D3D11_BLEND_DESC
	target := &bdesc.RenderTarget[0]
	if desc.Enable {
		target.BlendEnable = 1
	}
	target.SrcBlend = toBlend(desc.SrcBlend)
	target.DestBlend = toBlend(desc.DstBlend)
	target.BlendOp = _D3D11_BLEND_OP_ADD
	target.SrcBlendAlpha = toBlend(desc.SrcBlendAlpha)
	target.DestBlendAlpha = toBlend(desc.DstBlendAlpha)
	target.BlendOpAlpha = _D3D11_BLEND_OP_ADD
	target.RenderTargetWriteMask = _D3D11_COLOR_WRITE_ENABLE_ALL
	state, err := d.dev.CreateBlendState(&bdesc)
	if err != nil {
		return nil, err
	}
	return &blendState{state: state}, nil
}

func (d *Device) compile(src backend.ShaderSource) ([]byte, error) {
	if code, ok := d.bytecode[src.Name]; ok {
		return code, nil
	}
	code, err := d3dcompile.Compile([]byte(src.HLSL), src.Entry, src.Target)
	if err != nil {
		return nil, fmt.Errorf("d3d11: compiling %s: %w", src.Name, err)
	}
	d.bytecode[src.Name] = code
	return code, nil
}

func toFilter(f backend.Filter) uint32 {
	switch f {
	case backend.FilterNearest:
		return _D3D11_FILTER_MIN_MAG_MIP_POINT
	default:
		return _D3D11_FILTER_MIN_MAG_MIP_LINEAR
	}
}

func toAddressMode(m backend.AddressMode) uint32 {
	switch m {
	case backend.AddressWrap:
		return _D3D11_TEXTURE_ADDRESS_WRAP
	case backend.AddressClamp:
		return _D3D11_TEXTURE_ADDRESS_CLAMP
	default:
		return _D3D11_TEXTURE_ADDRESS_BORDER
	}
}

func toBlend(b backend.Blend) uint32 {
	switch b {
	case backend.BlendZero:
		return _D3D11_BLEND_ZERO
	case backend.BlendOne:
		return _D3D11_BLEND_ONE
	case backend.BlendSrcAlpha:
		return _D3D11_BLEND_SRC_ALPHA
	case backend.BlendInvSrcAlpha:
		return _D3D11_BLEND_INV_SRC_ALPHA
	case backend.BlendDestAlpha:
		return _D3D11_BLEND_DEST_ALPHA
	case backend.BlendInvDestAlpha:
		return _D3D11_BLEND_INV_DEST_ALPHA
	default:
		return _D3D11_BLEND_ONE
	}
}

func (c *Context) ClearState() {
	c.ctx.ClearState()
}

func (c *Context) SetTopology(t backend.Topology) {
	switch t {
	case backend.TopologyTriangles:
		c.ctx.IASetPrimitiveTopology(_D3D11_PRIMITIVE_TOPOLOGY_TRIANGLELIST)
	}
}

func (c *Context) SetInputLayout(l backend.InputLayout) {
	c.ctx.IASetInputLayout(l.(*inputLayout).layout)
}

func (c *Context) SetVertexShader(s backend.VertexShader) {
	c.ctx.VSSetShader(s.(*vertexShader).shader)
}

func (c *Context) SetPixelShader(s backend.PixelShader) {
	c.ctx.PSSetShader(s.(*pixelShader).shader)
}

func (c *Context) SetRasterizerState(s backend.RasterizerState) {
	c.ctx.RSSetState(s.(*rasterizerState).state)
}

func (c *Context) SetViewport(v backend.Viewport) {
	c.ctx.RSSetViewports(&_D3D11_VIEWPORT{
		TopLeftX: v.X,
		TopLeftY: v.Y,
		Width:    v.Width,
		Height:   v.Height,
		MinDepth: 0,
		MaxDepth: 1,
	})
}

func (c *Context) SetSampler(slot int, s backend.SamplerState) {
	c.ctx.PSSetSamplers(uint32(slot), s.(*samplerState).state)
}

func (c *Context) SetRenderTarget(t backend.RenderTarget) {
	c.ctx.OMSetRenderTargets(t.(*RenderTarget).view)
}

func (c *Context) SetBlendState(s backend.BlendState, factor [4]float32, sampleMask uint32) {
	c.ctx.OMSetBlendState(s.(*blendState).state, &factor, sampleMask)
}

func (c *Context) SetVertexBuffer(b backend.Buffer, stride int) {
	c.ctx.IASetVertexBuffers(b.(*buffer).buf, uint32(stride), 0)
}

func (c *Context) SetIndexBuffer(b backend.Buffer) {
	c.ctx.IASetIndexBuffer(b.(*buffer).buf, _DXGI_FORMAT_R32_UINT, 0)
}

func (c *Context) SetScissor(r image.Rectangle) {
	c.ctx.RSSetScissorRects(&_RECT{
		left:   int32(r.Min.X),
		top:    int32(r.Min.Y),
		right:  int32(r.Max.X),
		bottom: int32(r.Max.Y),
	})
}

func (c *Context) SetTexture(slot int, view backend.ShaderResourceView) {
	switch v := view.(type) {
	case *texture2DView:
		c.ctx.PSSetShaderResources(uint32(slot), v.view)
	case *shaderResourceView:
		c.ctx.PSSetShaderResources(uint32(slot), v.view)
	}
}

// Clear fills target with an RGBA color. The renderer never clears;
// this is for hosts that own the whole target.
func (c *Context) Clear(target *RenderTarget, color [4]float32) {
	c.ctx.ClearRenderTargetView(target.view, &color)
}

func (c *Context) DrawIndexed(count int) {
	c.ctx.DrawIndexed(uint32(count), 0, 0)
}

func (c *Context) Map(t backend.Texture2D) (backend.MappedTexture, error) {
	tex := t.(*texture2D)
	res, err := c.ctx.Map((*_ID3D11Resource)(unsafe.Pointer(tex.tex)), 0, _D3D11_MAP_WRITE_DISCARD, 0)
	if err != nil {
		return backend.MappedTexture{}, err
	}
	return backend.MappedTexture{
		Data:     unsafeslice.Of(res.pData, int(res.RowPitch)*tex.height),
		RowPitch: int(res.RowPitch),
	}, nil
}

func (c *Context) Unmap(t backend.Texture2D) {
	tex := t.(*texture2D)
	c.ctx.Unmap((*_ID3D11Resource)(unsafe.Pointer(tex.tex)), 0)
}

// Size queries the view's backing texture dimensions.
func (t *RenderTarget) Size() (image.Point, error) {
	res, err := t.view.GetResource()
	if err != nil {
		return image.Point{}, err
	}
	defer _IUnknownRelease(unsafe.Pointer(res), res.vtbl.Release)
	ref, err := _IUnknownQueryInterface(unsafe.Pointer(res), res.vtbl.QueryInterface, &_IID_ID3D11Texture2D)
	if err != nil {
		return image.Point{}, err
	}
	tex := (*_ID3D11Texture2D)(unsafe.Pointer(ref))
	defer _IUnknownRelease(unsafe.Pointer(tex), tex.vtbl.Release)
	desc := tex.GetDesc()
	return image.Pt(int(desc.Width), int(desc.Height)), nil
}

// Release drops the wrapped view reference.
func (t *RenderTarget) Release() {
	if t.view != nil {
		_IUnknownRelease(unsafe.Pointer(t.view), t.view.vtbl.Release)
		t.view = nil
	}
}

// texture2DView exposes a texture's shader resource view without
// transferring ownership.
type texture2DView struct {
	view *_ID3D11ShaderResourceView
}

func (*texture2DView) ImplementsShaderResourceView() {}

func (*shaderResourceView) ImplementsShaderResourceView() {}

func (t *texture2D) View() backend.ShaderResourceView {
	return &texture2DView{view: t.view}
}

func (t *texture2D) Release() {
	if t.view != nil {
		_IUnknownRelease(unsafe.Pointer(t.view), t.view.vtbl.Release)
		t.view = nil
	}
	if t.tex != nil {
		_IUnknownRelease(unsafe.Pointer(t.tex), t.tex.vtbl.Release)
		t.tex = nil
	}
}

func (b *buffer) Release() {
	if b.buf != nil {
		_IUnknownRelease(unsafe.Pointer(b.buf), b.buf.vtbl.Release)
		b.buf = nil
	}
}

func (s *vertexShader) Release() {
	if s.shader != nil {
		_IUnknownRelease(unsafe.Pointer(s.shader), s.shader.vtbl.Release)
		s.shader = nil
	}
}

func (s *pixelShader) Release() {
	if s.shader != nil {
		_IUnknownRelease(unsafe.Pointer(s.shader), s.shader.vtbl.Release)
		s.shader = nil
	}
}

func (l *inputLayout) Release() {
	if l.layout != nil {
		_IUnknownRelease(unsafe.Pointer(l.layout), l.layout.vtbl.Release)
		l.layout = nil
	}
}

func (s *rasterizerState) Release() {
	if s.state != nil {
		_IUnknownRelease(unsafe.Pointer(s.state), s.state.vtbl.Release)
		s.state = nil
	}
}

func (s *samplerState) Release() {
	if s.state != nil {
		_IUnknownRelease(unsafe.Pointer(s.state), s.state.vtbl.Release)
		s.state = nil
	}
}

func (s *blendState) Release() {
	if s.state != nil {
		_IUnknownRelease(unsafe.Pointer(s.state), s.state.vtbl.Release)
		s.state = nil
	}
}
