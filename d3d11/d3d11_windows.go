// SPDX-License-Identifier: Unlicense OR MIT

package d3d11

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Hand-written COM vtables and thin syscall wrappers for the subset of
// Direct3D11 and DXGI this package uses. Method tables list every slot
// up to the last one called so the offsets stay correct.

type _IUnknownVTbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type _IUnknown struct {
	vtbl *struct {
		_IUnknownVTbl
	}
}

type _ID3D11Device struct {
	vtbl *struct {
		_IUnknownVTbl
		CreateBuffer                         uintptr
		CreateTexture1D                      uintptr
		CreateTexture2D                      uintptr
		CreateTexture3D                      uintptr
		CreateShaderResourceView             uintptr
		CreateUnorderedAccessView            uintptr
		CreateRenderTargetView               uintptr
		CreateDepthStencilView               uintptr
		CreateInputLayout                    uintptr
		CreateVertexShader                   uintptr
		CreateGeometryShader                 uintptr
		CreateGeometryShaderWithStreamOutput uintptr
		CreatePixelShader                    uintptr
		CreateHullShader                     uintptr
		CreateDomainShader                   uintptr
		CreateComputeShader                  uintptr
		CreateClassLinkage                   uintptr
		CreateBlendState                     uintptr
		CreateDepthStencilState              uintptr
		CreateRasterizerState                uintptr
		CreateSamplerState                   uintptr
	}
}

type _ID3D11DeviceContext struct {
	vtbl *struct {
		_IUnknownVTbl
		GetDevice                                 uintptr
		GetPrivateData                            uintptr
		SetPrivateData                            uintptr
		SetPrivateDataInterface                   uintptr
		VSSetConstantBuffers                      uintptr
		PSSetShaderResources                      uintptr
		PSSetShader                               uintptr
		PSSetSamplers                             uintptr
		VSSetShader                               uintptr
		DrawIndexed                               uintptr
		Draw                                      uintptr
		Map                                       uintptr
		Unmap                                     uintptr
		PSSetConstantBuffers                      uintptr
		IASetInputLayout                          uintptr
		IASetVertexBuffers                        uintptr
		IASetIndexBuffer                          uintptr
		DrawIndexedInstanced                      uintptr
		DrawInstanced                             uintptr
		GSSetConstantBuffers                      uintptr
		GSSetShader                               uintptr
		IASetPrimitiveTopology                    uintptr
		VSSetShaderResources                      uintptr
		VSSetSamplers                             uintptr
		Begin                                     uintptr
		End                                       uintptr
		GetData                                   uintptr
		SetPredication                            uintptr
		GSSetShaderResources                      uintptr
		GSSetSamplers                             uintptr
		OMSetRenderTargets                        uintptr
		OMSetRenderTargetsAndUnorderedAccessViews uintptr
		OMSetBlendState                           uintptr
		OMSetDepthStencilState                    uintptr
		SOSetTargets                              uintptr
		DrawAuto                                  uintptr
		DrawIndexedInstancedIndirect              uintptr
		DrawInstancedIndirect                     uintptr
		Dispatch                                  uintptr
		DispatchIndirect                          uintptr
		RSSetState                                uintptr
		RSSetViewports                            uintptr
		RSSetScissorRects                         uintptr
		CopySubresourceRegion                     uintptr
		CopyResource                              uintptr
		UpdateSubresource                         uintptr
		CopyStructureCount                        uintptr
		ClearRenderTargetView                     uintptr
		ClearUnorderedAccessViewUint              uintptr
		ClearUnorderedAccessViewFloat             uintptr
		ClearDepthStencilView                     uintptr
		GenerateMips                              uintptr
		SetResourceMinLOD                         uintptr
		GetResourceMinLOD                         uintptr
		ResolveSubresource                        uintptr
		ExecuteCommandList                        uintptr
		HSSetShaderResources                      uintptr
		HSSetShader                               uintptr
		HSSetSamplers                             uintptr
		HSSetConstantBuffers                      uintptr
		DSSetShaderResources                      uintptr
		DSSetShader                               uintptr
		DSSetSamplers                             uintptr
		DSSetConstantBuffers                      uintptr
		CSSetShaderResources                      uintptr
		CSSetUnorderedAccessViews                 uintptr
		CSSetShader                               uintptr
		CSSetSamplers                             uintptr
		CSSetConstantBuffers                      uintptr
		VSGetConstantBuffers                      uintptr
		PSGetShaderResources                      uintptr
		PSGetShader                               uintptr
		PSGetSamplers                             uintptr
		VSGetShader                               uintptr
		PSGetConstantBuffers                      uintptr
		IAGetInputLayout                          uintptr
		IAGetVertexBuffers                        uintptr
		IAGetIndexBuffer                          uintptr
		GSGetConstantBuffers                      uintptr
		GSGetShader                               uintptr
		IAGetPrimitiveTopology                    uintptr
		VSGetShaderResources                      uintptr
		VSGetSamplers                             uintptr
		GetPredication                            uintptr
		GSGetShaderResources                      uintptr
		GSGetSamplers                             uintptr
		OMGetRenderTargets                        uintptr
		OMGetRenderTargetsAndUnorderedAccessViews uintptr
		OMGetBlendState                           uintptr
		OMGetDepthStencilState                    uintptr
		SOGetTargets                              uintptr
		RSGetState                                uintptr
		RSGetViewports                            uintptr
		RSGetScissorRects                         uintptr
		HSGetShaderResources                      uintptr
		HSGetShader                               uintptr
		HSGetSamplers                             uintptr
		HSGetConstantBuffers                      uintptr
		DSGetShaderResources                      uintptr
		DSGetShader                               uintptr
		DSGetSamplers                             uintptr
		DSGetConstantBuffers                      uintptr
		CSGetShaderResources                      uintptr
		CSGetUnorderedAccessViews                 uintptr
		CSGetShader                               uintptr
		CSGetSamplers                             uintptr
		CSGetConstantBuffers                      uintptr
		ClearState                                uintptr
		Flush                                     uintptr
	}
}

// _ID3D11DeviceChildVTbl is the common prefix of every device child
// interface (views, resources, state objects).
type _ID3D11DeviceChildVTbl struct {
	_IUnknownVTbl
	GetDevice               uintptr
	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
}

type _ID3D11RenderTargetView struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
		GetResource uintptr
		GetDesc     uintptr
	}
}

type _ID3D11Resource struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
	}
}

type _ID3D11Texture2D struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
		GetType             uintptr
		SetEvictionPriority uintptr
		GetEvictionPriority uintptr
		GetDesc             uintptr
	}
}

type _ID3D11Buffer struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
	}
}

type _ID3D11ShaderResourceView struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
	}
}

type _ID3D11VertexShader struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
	}
}

type _ID3D11PixelShader struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
	}
}

type _ID3D11InputLayout struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
	}
}

type _ID3D11RasterizerState struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
	}
}

type _ID3D11SamplerState struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
	}
}

type _ID3D11BlendState struct {
	vtbl *struct {
		_ID3D11DeviceChildVTbl
	}
}

type _IDXGISwapChain struct {
	vtbl *struct {
		_IUnknownVTbl
		SetPrivateData          uintptr
		SetPrivateDataInterface uintptr
		GetPrivateData          uintptr
		GetParent               uintptr
		GetDevice               uintptr
		Present                 uintptr
		GetBuffer               uintptr
		SetFullscreenState      uintptr
		GetFullscreenState      uintptr
		GetDesc                 uintptr
		ResizeBuffers           uintptr
	}
}

type _DXGI_SWAP_CHAIN_DESC struct {
	BufferDesc   _DXGI_MODE_DESC
	SampleDesc   _DXGI_SAMPLE_DESC
	BufferUsage  uint32
	BufferCount  uint32
	OutputWindow windows.Handle
	Windowed     uint32
	SwapEffect   uint32
	Flags        uint32
}

type _DXGI_MODE_DESC struct {
	Width            uint32
	Height           uint32
	RefreshRate      _DXGI_RATIONAL
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
}

type _DXGI_RATIONAL struct {
	Numerator   uint32
	Denominator uint32
}

type _DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

type _D3D11_TEXTURE2D_DESC struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleDesc     _DXGI_SAMPLE_DESC
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

type _D3D11_BUFFER_DESC struct {
	ByteWidth           uint32
	Usage               uint32
	BindFlags           uint32
	CPUAccessFlags      uint32
	MiscFlags           uint32
	StructureByteStride uint32
}

type _D3D11_SUBRESOURCE_DATA struct {
	pSysMem          *byte
	SysMemPitch      uint32
	SysMemSlicePitch uint32
}

type _D3D11_MAPPED_SUBRESOURCE struct {
	pData      uintptr
	RowPitch   uint32
	DepthPitch uint32
}

type _D3D11_INPUT_ELEMENT_DESC struct {
	SemanticName         *byte
	SemanticIndex        uint32
	Format               uint32
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       uint32
	InstanceDataStepRate uint32
}

type _D3D11_RASTERIZER_DESC struct {
	FillMode              uint32
	CullMode              uint32
	FrontCounterClockwise uint32
	DepthBias             int32
	DepthBiasClamp        float32
	SlopeScaledDepthBias  float32
	DepthClipEnable       uint32
	ScissorEnable         uint32
	MultisampleEnable     uint32
	AntialiasedLineEnable uint32
}

type _D3D11_SAMPLER_DESC struct {
	Filter         uint32
	AddressU       uint32
	AddressV       uint32
	AddressW       uint32
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc uint32
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

type _D3D11_BLEND_DESC struct {
	AlphaToCoverageEnable  uint32
	IndependentBlendEnable uint32
	RenderTarget           [8]_D3D11_RENDER_TARGET_BLEND_DESC
}

type _D3D11_RENDER_TARGET_BLEND_DESC struct {
	BlendEnable           uint32
	SrcBlend              uint32
	DestBlend             uint32
	BlendOp               uint32
	SrcBlendAlpha         uint32
	DestBlendAlpha        uint32
	BlendOpAlpha          uint32
	RenderTargetWriteMask uint8
}

type _D3D11_SHADER_RESOURCE_VIEW_DESC_TEX2D struct {
	Format        uint32
	ViewDimension uint32
	Texture2D     _D3D11_TEX2D_SRV
}

type _D3D11_TEX2D_SRV struct {
	MostDetailedMip uint32
	MipLevels       uint32
}

type _D3D11_VIEWPORT struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type _RECT struct {
	left   int32
	top    int32
	right  int32
	bottom int32
}

type _GUID struct {
	Data1   uint32
	Data2   uint16
	Data3   uint16
	Data4_0 uint8
	Data4_1 uint8
	Data4_2 uint8
	Data4_3 uint8
	Data4_4 uint8
	Data4_5 uint8
	Data4_6 uint8
	Data4_7 uint8
}

// ErrorCode is a failed HRESULT from a named Direct3D11 or DXGI call.
type ErrorCode struct {
	Name string
	Code uint32
}

func (e ErrorCode) Error() string {
	return fmt.Sprintf("%s: %#x", e.Name, e.Code)
}

var _IID_ID3D11Texture2D = _GUID{0x6f15aaf2, 0xd208, 0x4e89, 0x9a, 0xb4, 0x48, 0x95, 0x35, 0xd3, 0x4f, 0x9c}

var (
	d3d11DLL = windows.NewLazySystemDLL("d3d11.dll")

	procD3D11CreateDeviceAndSwapChain = d3d11DLL.NewProc("D3D11CreateDeviceAndSwapChain")
)

const (
	_D3D11_SDK_VERSION        = 7
	_D3D_DRIVER_TYPE_HARDWARE = 1

	_D3D_FEATURE_LEVEL_11_0 = 0xb000

	_DXGI_FORMAT_UNKNOWN            = 0
	_DXGI_FORMAT_R32G32B32A32_FLOAT = 2
	_DXGI_FORMAT_R32G32_FLOAT       = 16
	_DXGI_FORMAT_R8G8B8A8_UNORM     = 28
	_DXGI_FORMAT_R32_UINT           = 42

	_DXGI_USAGE_RENDER_TARGET_OUTPUT = 1 << (1 + 4)
	_DXGI_SWAP_EFFECT_DISCARD        = 0
	_DXGI_MWA_NO_ALT_ENTER           = 2

	_D3D11_USAGE_IMMUTABLE = 1
	_D3D11_USAGE_DYNAMIC   = 2

	_D3D11_BIND_VERTEX_BUFFER   = 0x1
	_D3D11_BIND_INDEX_BUFFER    = 0x2
	_D3D11_BIND_SHADER_RESOURCE = 0x8

	_D3D11_CPU_ACCESS_WRITE = 0x10000

	_D3D11_MAP_WRITE_DISCARD = 4

	_D3D11_INPUT_PER_VERTEX_DATA = 0

	_D3D11_PRIMITIVE_TOPOLOGY_TRIANGLELIST = 4

	_D3D11_FILL_SOLID = 3
	_D3D11_CULL_NONE  = 1

	_D3D11_FILTER_MIN_MAG_MIP_LINEAR = 0x15
	_D3D11_FILTER_MIN_MAG_MIP_POINT  = 0

	_D3D11_TEXTURE_ADDRESS_WRAP   = 1
	_D3D11_TEXTURE_ADDRESS_CLAMP  = 3
	_D3D11_TEXTURE_ADDRESS_BORDER = 4

	_D3D11_COMPARISON_ALWAYS = 8

	_D3D11_SRV_DIMENSION_TEXTURE2D = 4

	_D3D11_BLEND_ZERO           = 1
	_D3D11_BLEND_ONE            = 2
	_D3D11_BLEND_SRC_ALPHA      = 5
	_D3D11_BLEND_INV_SRC_ALPHA  = 6
	_D3D11_BLEND_DEST_ALPHA     = 7
	_D3D11_BLEND_INV_DEST_ALPHA = 8

	_D3D11_BLEND_OP_ADD = 1

	_D3D11_COLOR_WRITE_ENABLE_ALL = 1 | 2 | 4 | 8

	_E_FAIL = 0x80004005

	// DXGI error codes signalling device loss.
	_DXGI_STATUS_OCCLUDED      = 0x087A0001
	_DXGI_ERROR_DEVICE_REMOVED = 0x887A0005
	_DXGI_ERROR_DEVICE_RESET   = 0x887A0007
	_D3DDDIERR_DEVICEREMOVED   = 1<<31 | 0x876<<16 | 2160
)

func _D3D11CreateDeviceAndSwapChain(driverType, flags uint32, featureLevels []uint32, swapDesc *_DXGI_SWAP_CHAIN_DESC) (*_ID3D11Device, *_ID3D11DeviceContext, *_IDXGISwapChain, uint32, error) {
	var (
		dev     *_ID3D11Device
		ctx     *_ID3D11DeviceContext
		swchain *_IDXGISwapChain
		featLvl uint32
	)
	var pFeatLvls unsafe.Pointer
	if len(featureLevels) > 0 {
		pFeatLvls = unsafe.Pointer(&featureLevels[0])
	}
	r, _, _ := procD3D11CreateDeviceAndSwapChain.Call(
		0,                                 // pAdapter
		uintptr(driverType),               // DriverType
		0,                                 // Software
		uintptr(flags),                    // Flags
		uintptr(pFeatLvls),                // pFeatureLevels
		uintptr(len(featureLevels)),       // FeatureLevels
		_D3D11_SDK_VERSION,                // SDKVersion
		uintptr(unsafe.Pointer(swapDesc)), // pSwapChainDesc
		uintptr(unsafe.Pointer(&swchain)), // ppSwapChain
		uintptr(unsafe.Pointer(&dev)),     // ppDevice
		uintptr(unsafe.Pointer(&featLvl)), // pFeatureLevel
		uintptr(unsafe.Pointer(&ctx)),     // ppImmediateContext
	)
	if r != 0 {
		return nil, nil, nil, 0, ErrorCode{Name: "D3D11CreateDeviceAndSwapChain", Code: uint32(r)}
	}
	return dev, ctx, swchain, featLvl, nil
}

func (d *_ID3D11Device) CreateBuffer(desc *_D3D11_BUFFER_DESC, data []byte) (*_ID3D11Buffer, error) {
	var dataDesc *_D3D11_SUBRESOURCE_DATA
	if len(data) > 0 {
		dataDesc = &_D3D11_SUBRESOURCE_DATA{
			pSysMem: &data[0],
		}
	}
	var buf *_ID3D11Buffer
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateBuffer,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(dataDesc)),
		uintptr(unsafe.Pointer(&buf)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateBuffer", Code: uint32(r)}
	}
	return buf, nil
}

func (d *_ID3D11Device) CreateTexture2D(desc *_D3D11_TEXTURE2D_DESC, initial *_D3D11_SUBRESOURCE_DATA) (*_ID3D11Texture2D, error) {
	var tex *_ID3D11Texture2D
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateTexture2D,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(initial)),
		uintptr(unsafe.Pointer(&tex)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateTexture2D", Code: uint32(r)}
	}
	return tex, nil
}

func (d *_ID3D11Device) CreateShaderResourceViewTEX2D(res *_ID3D11Resource, desc *_D3D11_SHADER_RESOURCE_VIEW_DESC_TEX2D) (*_ID3D11ShaderResourceView, error) {
	var view *_ID3D11ShaderResourceView
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateShaderResourceView,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&view)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateShaderResourceView", Code: uint32(r)}
	}
	return view, nil
}

func (d *_ID3D11Device) CreateRenderTargetView(res *_ID3D11Resource) (*_ID3D11RenderTargetView, error) {
	var target *_ID3D11RenderTargetView
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateRenderTargetView,
		4,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(res)),
		0, // pDesc
		uintptr(unsafe.Pointer(&target)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateRenderTargetView", Code: uint32(r)}
	}
	return target, nil
}

func (d *_ID3D11Device) CreateInputLayout(descs []_D3D11_INPUT_ELEMENT_DESC, bytecode []byte) (*_ID3D11InputLayout, error) {
	var pdesc *_D3D11_INPUT_ELEMENT_DESC
	if len(descs) > 0 {
		pdesc = &descs[0]
	}
	var layout *_ID3D11InputLayout
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateInputLayout,
		6,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(pdesc)),
		uintptr(len(descs)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		uintptr(unsafe.Pointer(&layout)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateInputLayout", Code: uint32(r)}
	}
	return layout, nil
}

func (d *_ID3D11Device) CreateVertexShader(bytecode []byte) (*_ID3D11VertexShader, error) {
	var shader *_ID3D11VertexShader
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreateVertexShader,
		5,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		0, // pClassLinkage
		uintptr(unsafe.Pointer(&shader)),
		0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateVertexShader", Code: uint32(r)}
	}
	return shader, nil
}

func (d *_ID3D11Device) CreatePixelShader(bytecode []byte) (*_ID3D11PixelShader, error) {
	var shader *_ID3D11PixelShader
	r, _, _ := syscall.Syscall6(
		d.vtbl.CreatePixelShader,
		5,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&bytecode[0])),
		uintptr(len(bytecode)),
		0, // pClassLinkage
		uintptr(unsafe.Pointer(&shader)),
		0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreatePixelShader", Code: uint32(r)}
	}
	return shader, nil
}

func (d *_ID3D11Device) CreateRasterizerState(desc *_D3D11_RASTERIZER_DESC) (*_ID3D11RasterizerState, error) {
	var state *_ID3D11RasterizerState
	r, _, _ := syscall.Syscall(
		d.vtbl.CreateRasterizerState,
		3,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateRasterizerState", Code: uint32(r)}
	}
	return state, nil
}

func (d *_ID3D11Device) CreateSamplerState(desc *_D3D11_SAMPLER_DESC) (*_ID3D11SamplerState, error) {
	var sampler *_ID3D11SamplerState
	r, _, _ := syscall.Syscall(
		d.vtbl.CreateSamplerState,
		3,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&sampler)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateSamplerState", Code: uint32(r)}
	}
	return sampler, nil
}

func (d *_ID3D11Device) CreateBlendState(desc *_D3D11_BLEND_DESC) (*_ID3D11BlendState, error) {
	var state *_ID3D11BlendState
	r, _, _ := syscall.Syscall(
		d.vtbl.CreateBlendState,
		3,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		uintptr(unsafe.Pointer(&state)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "ID3D11Device::CreateBlendState", Code: uint32(r)}
	}
	return state, nil
}

func (c *_ID3D11DeviceContext) ClearState() {
	syscall.Syscall(
		c.vtbl.ClearState,
		1,
		uintptr(unsafe.Pointer(c)),
		0, 0,
	)
}

func (c *_ID3D11DeviceContext) IASetPrimitiveTopology(mode uint32) {
	syscall.Syscall(
		c.vtbl.IASetPrimitiveTopology,
		2,
		uintptr(unsafe.Pointer(c)),
		uintptr(mode),
		0,
	)
}

func (c *_ID3D11DeviceContext) IASetInputLayout(layout *_ID3D11InputLayout) {
	syscall.Syscall(
		c.vtbl.IASetInputLayout,
		2,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(layout)),
		0,
	)
}

func (c *_ID3D11DeviceContext) IASetVertexBuffers(buf *_ID3D11Buffer, stride, offset uint32) {
	syscall.Syscall6(
		c.vtbl.IASetVertexBuffers,
		6,
		uintptr(unsafe.Pointer(c)),
		0, // StartSlot
		1, // NumBuffers
		uintptr(unsafe.Pointer(&buf)),
		uintptr(unsafe.Pointer(&stride)),
		uintptr(unsafe.Pointer(&offset)),
	)
}

func (c *_ID3D11DeviceContext) IASetIndexBuffer(buf *_ID3D11Buffer, format, offset uint32) {
	syscall.Syscall6(
		c.vtbl.IASetIndexBuffer,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(buf)),
		uintptr(format),
		uintptr(offset),
		0, 0,
	)
}

func (c *_ID3D11DeviceContext) VSSetShader(s *_ID3D11VertexShader) {
	syscall.Syscall6(
		c.vtbl.VSSetShader,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(s)),
		0, // ppClassInstances
		0, // NumClassInstances
		0, 0,
	)
}

func (c *_ID3D11DeviceContext) PSSetShader(s *_ID3D11PixelShader) {
	syscall.Syscall6(
		c.vtbl.PSSetShader,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(s)),
		0, // ppClassInstances
		0, // NumClassInstances
		0, 0,
	)
}

func (c *_ID3D11DeviceContext) PSSetShaderResources(startSlot uint32, s *_ID3D11ShaderResourceView) {
	syscall.Syscall6(
		c.vtbl.PSSetShaderResources,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(startSlot),
		1, // NumViews
		uintptr(unsafe.Pointer(&s)),
		0, 0,
	)
}

func (c *_ID3D11DeviceContext) PSSetSamplers(startSlot uint32, s *_ID3D11SamplerState) {
	syscall.Syscall6(
		c.vtbl.PSSetSamplers,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(startSlot),
		1, // NumSamplers
		uintptr(unsafe.Pointer(&s)),
		0, 0,
	)
}

func (c *_ID3D11DeviceContext) RSSetState(state *_ID3D11RasterizerState) {
	syscall.Syscall(
		c.vtbl.RSSetState,
		2,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(state)),
		0,
	)
}

func (c *_ID3D11DeviceContext) RSSetViewports(viewport *_D3D11_VIEWPORT) {
	syscall.Syscall(
		c.vtbl.RSSetViewports,
		3,
		uintptr(unsafe.Pointer(c)),
		1, // NumViewports
		uintptr(unsafe.Pointer(viewport)),
	)
}

func (c *_ID3D11DeviceContext) RSSetScissorRects(rect *_RECT) {
	syscall.Syscall(
		c.vtbl.RSSetScissorRects,
		3,
		uintptr(unsafe.Pointer(c)),
		1, // NumRects
		uintptr(unsafe.Pointer(rect)),
	)
}

func (c *_ID3D11DeviceContext) OMSetRenderTargets(target *_ID3D11RenderTargetView) {
	syscall.Syscall6(
		c.vtbl.OMSetRenderTargets,
		4,
		uintptr(unsafe.Pointer(c)),
		1, // NumViews
		uintptr(unsafe.Pointer(&target)),
		0, // pDepthStencilView
		0, 0,
	)
}

func (c *_ID3D11DeviceContext) OMSetBlendState(state *_ID3D11BlendState, factor *[4]float32, sampleMask uint32) {
	syscall.Syscall6(
		c.vtbl.OMSetBlendState,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(state)),
		uintptr(unsafe.Pointer(factor)),
		uintptr(sampleMask),
		0, 0,
	)
}

func (c *_ID3D11DeviceContext) ClearRenderTargetView(view *_ID3D11RenderTargetView, color *[4]float32) {
	syscall.Syscall(
		c.vtbl.ClearRenderTargetView,
		3,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(view)),
		uintptr(unsafe.Pointer(color)),
	)
}

func (c *_ID3D11DeviceContext) DrawIndexed(count, start uint32, base int32) {
	syscall.Syscall6(
		c.vtbl.DrawIndexed,
		4,
		uintptr(unsafe.Pointer(c)),
		uintptr(count),
		uintptr(start),
		uintptr(base),
		0, 0,
	)
}

func (c *_ID3D11DeviceContext) Map(resource *_ID3D11Resource, subResource, mapType, mapFlags uint32) (_D3D11_MAPPED_SUBRESOURCE, error) {
	var resMap _D3D11_MAPPED_SUBRESOURCE
	r, _, _ := syscall.Syscall6(
		c.vtbl.Map,
		6,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(subResource),
		uintptr(mapType),
		uintptr(mapFlags),
		uintptr(unsafe.Pointer(&resMap)),
	)
	if r != 0 {
		return resMap, ErrorCode{Name: "ID3D11DeviceContext::Map", Code: uint32(r)}
	}
	return resMap, nil
}

func (c *_ID3D11DeviceContext) Unmap(resource *_ID3D11Resource, subResource uint32) {
	syscall.Syscall(
		c.vtbl.Unmap,
		3,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(resource)),
		uintptr(subResource),
	)
}

func (v *_ID3D11RenderTargetView) GetResource() (*_ID3D11Resource, error) {
	var res *_ID3D11Resource
	r, _, _ := syscall.Syscall(
		v.vtbl.GetResource,
		2,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&res)),
		0,
	)
	// GetResource returns void; a nil resource means the view is dead.
	_ = r
	if res == nil {
		return nil, ErrorCode{Name: "ID3D11View::GetResource", Code: _E_FAIL}
	}
	return res, nil
}

func (t *_ID3D11Texture2D) GetDesc() _D3D11_TEXTURE2D_DESC {
	var desc _D3D11_TEXTURE2D_DESC
	syscall.Syscall(
		t.vtbl.GetDesc,
		2,
		uintptr(unsafe.Pointer(t)),
		uintptr(unsafe.Pointer(&desc)),
		0,
	)
	return desc
}

func (s *_IDXGISwapChain) Present(syncInterval int, flags uint32) error {
	r, _, _ := syscall.Syscall(
		s.vtbl.Present,
		3,
		uintptr(unsafe.Pointer(s)),
		uintptr(syncInterval),
		uintptr(flags),
	)
	if r != 0 {
		return ErrorCode{Name: "IDXGISwapChain::Present", Code: uint32(r)}
	}
	return nil
}

func (s *_IDXGISwapChain) GetBuffer(index int, riid *_GUID) (*_IUnknown, error) {
	var buf *_IUnknown
	r, _, _ := syscall.Syscall6(
		s.vtbl.GetBuffer,
		4,
		uintptr(unsafe.Pointer(s)),
		uintptr(index),
		uintptr(unsafe.Pointer(riid)),
		uintptr(unsafe.Pointer(&buf)),
		0, 0,
	)
	if r != 0 {
		return nil, ErrorCode{Name: "IDXGISwapChain::GetBuffer", Code: uint32(r)}
	}
	return buf, nil
}

func (s *_IDXGISwapChain) ResizeBuffers(buffers, width, height, newFormat, flags uint32) error {
	r, _, _ := syscall.Syscall6(
		s.vtbl.ResizeBuffers,
		6,
		uintptr(unsafe.Pointer(s)),
		uintptr(buffers),
		uintptr(width),
		uintptr(height),
		uintptr(newFormat),
		uintptr(flags),
	)
	if r != 0 {
		return ErrorCode{Name: "IDXGISwapChain::ResizeBuffers", Code: uint32(r)}
	}
	return nil
}

func _IUnknownQueryInterface(obj unsafe.Pointer, queryInterfaceMethod uintptr, guid *_GUID) (*_IUnknown, error) {
	var ref *_IUnknown
	r, _, _ := syscall.Syscall(
		queryInterfaceMethod,
		3,
		uintptr(obj),
		uintptr(unsafe.Pointer(guid)),
		uintptr(unsafe.Pointer(&ref)),
	)
	if r != 0 {
		return nil, ErrorCode{Name: "IUnknown::QueryInterface", Code: uint32(r)}
	}
	return ref, nil
}

func _IUnknownRelease(obj unsafe.Pointer, releaseMethod uintptr) {
	syscall.Syscall(
		releaseMethod,
		1,
		uintptr(obj),
		0, 0,
	)
}
