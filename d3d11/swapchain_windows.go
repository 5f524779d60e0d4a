// SPDX-License-Identifier: Unlicense OR MIT

package d3d11

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SwapChain owns a D3D11 device, its immediate context and a DXGI
// swap chain created for a window. It is the convenience path for
// applications that do not already have a device of their own.
type SwapChain struct {
	dev     *_ID3D11Device
	ctx     *_ID3D11DeviceContext
	swchain *_IDXGISwapChain

	device  *Device
	context *Context
}

// CreateDeviceAndSwapChain creates a hardware device for hwnd with an
// RGBA8 back buffer sized to the window's client area. Feature level
// 11_0 is required.
func CreateDeviceAndSwapChain(hwnd uintptr) (*SwapChain, error) {
	swapDesc := _DXGI_SWAP_CHAIN_DESC{
		BufferDesc: _DXGI_MODE_DESC{
			Format: _DXGI_FORMAT_R8G8B8A8_UNORM,
			RefreshRate: _DXGI_RATIONAL{
				Numerator:   60,
				Denominator: 1,
			},
		},
		SampleDesc: _DXGI_SAMPLE_DESC{
			Count: 1,
		},
		BufferUsage:  _DXGI_USAGE_RENDER_TARGET_OUTPUT,
		BufferCount:  2,
		OutputWindow: windows.Handle(hwnd),
		Windowed:     1,
		SwapEffect:   _DXGI_SWAP_EFFECT_DISCARD,
	}
	featLvls := []uint32{_D3D_FEATURE_LEVEL_11_0}
	dev, ctx, swchain, featLvl, err := _D3D11CreateDeviceAndSwapChain(_D3D_DRIVER_TYPE_HARDWARE, 0, featLvls, &swapDesc)
	if err != nil {
		return nil, err
	}
	if featLvl < _D3D_FEATURE_LEVEL_11_0 {
		_IUnknownRelease(unsafe.Pointer(swchain), swchain.vtbl.Release)
		_IUnknownRelease(unsafe.Pointer(ctx), ctx.vtbl.Release)
		_IUnknownRelease(unsafe.Pointer(dev), dev.vtbl.Release)
		return nil, fmt.Errorf("d3d11: feature level %#x too low, want 11_0", featLvl)
	}
	return &SwapChain{
		dev:     dev,
		ctx:     ctx,
		swchain: swchain,
		device:  NewDevice(unsafe.Pointer(dev)),
		context: NewContext(unsafe.Pointer(ctx)),
	}, nil
}

// Device returns the backend device for resource creation.
func (s *SwapChain) Device() *Device {
	return s.device
}

// Context returns the immediate context.
func (s *SwapChain) Context() *Context {
	return s.context
}

// RenderTarget creates a render target view of the current back
// buffer. The caller releases it before resizing the swap chain.
func (s *SwapChain) RenderTarget() (*RenderTarget, error) {
	backBuffer, err := s.swchain.GetBuffer(0, &_IID_ID3D11Texture2D)
	if err != nil {
		return nil, err
	}
	defer _IUnknownRelease(unsafe.Pointer(backBuffer), backBuffer.vtbl.Release)
	view, err := s.dev.CreateRenderTargetView((*_ID3D11Resource)(unsafe.Pointer(backBuffer)))
	if err != nil {
		return nil, err
	}
	return &RenderTarget{view: view}, nil
}

// Resize resizes the back buffers to the window's new client size.
// All outstanding back buffer views must be released first.
func (s *SwapChain) Resize() error {
	// Zero extents make DXGI size the buffers to the window.
	return s.swchain.ResizeBuffers(0, 0, 0, _DXGI_FORMAT_UNKNOWN, 0)
}

// Present presents the back buffer. syncInterval 1 waits for vblank.
func (s *SwapChain) Present(syncInterval int) error {
	return s.swchain.Present(syncInterval, 0)
}

// Release drops every COM reference held by the swap chain.
func (s *SwapChain) Release() {
	if s.swchain != nil {
		_IUnknownRelease(unsafe.Pointer(s.swchain), s.swchain.vtbl.Release)
		s.swchain = nil
	}
	if s.ctx != nil {
		_IUnknownRelease(unsafe.Pointer(s.ctx), s.ctx.vtbl.Release)
		s.ctx = nil
	}
	if s.dev != nil {
		_IUnknownRelease(unsafe.Pointer(s.dev), s.dev.vtbl.Release)
		s.dev = nil
	}
}

// IsDeviceLost reports whether err is a DXGI device loss. A lost
// device requires tearing down and recreating all GPU resources.
func IsDeviceLost(err error) bool {
	code, ok := err.(ErrorCode)
	if !ok {
		return false
	}
	switch code.Code {
	case _DXGI_ERROR_DEVICE_REMOVED, _DXGI_ERROR_DEVICE_RESET, _D3DDDIERR_DEVICEREMOVED:
		return true
	}
	return false
}
