// SPDX-License-Identifier: Unlicense OR MIT

// Package d3dcompile compiles HLSL source to shader bytecode at
// runtime through d3dcompiler_47.dll.
package d3dcompile

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/egui-go/egui-d3d11/internal/unsafeslice"
)

var (
	d3dcompiler47 = windows.NewLazySystemDLL("d3dcompiler_47.dll")

	procD3DCompile = d3dcompiler47.NewProc("D3DCompile")
)

type _IUnknownVTbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type _ID3DBlob struct {
	vtbl *struct {
		_IUnknownVTbl
		GetBufferPointer uintptr
		GetBufferSize    uintptr
	}
}

// Compile compiles src for the given entry point and target profile
// (for example "vs_5_0") and returns the resulting bytecode.
func Compile(src []byte, entryPoint, target string) ([]byte, error) {
	var (
		code    *_ID3DBlob
		errBlob *_ID3DBlob
	)
	entryPoint0 := []byte(entryPoint + "\x00")
	target0 := []byte(target + "\x00")
	r, _, _ := procD3DCompile.Call(
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(len(src)),
		0, // pSourceName
		0, // pDefines
		0, // pInclude
		uintptr(unsafe.Pointer(&entryPoint0[0])),
		uintptr(unsafe.Pointer(&target0[0])),
		0, // Flags1
		0, // Flags2
		uintptr(unsafe.Pointer(&code)),
		uintptr(unsafe.Pointer(&errBlob)),
	)
	var compileErr string
	if errBlob != nil {
		compileErr = unsafeslice.GoString(errBlob.data())
		_IUnknownRelease(unsafe.Pointer(errBlob), errBlob.vtbl.Release)
	}
	if r != 0 {
		return nil, fmt.Errorf("D3DCompile(%s, %s): %#x: %s", entryPoint, target, r, compileErr)
	}
	bytecode := code.data()
	cp := make([]byte, len(bytecode))
	copy(cp, bytecode)
	_IUnknownRelease(unsafe.Pointer(code), code.vtbl.Release)
	return cp, nil
}

func (b *_ID3DBlob) getBufferPointer() uintptr {
	ptr, _, _ := syscall.Syscall(
		b.vtbl.GetBufferPointer,
		1,
		uintptr(unsafe.Pointer(b)),
		0,
		0,
	)
	return ptr
}

func (b *_ID3DBlob) getBufferSize() uintptr {
	sz, _, _ := syscall.Syscall(
		b.vtbl.GetBufferSize,
		1,
		uintptr(unsafe.Pointer(b)),
		0,
		0,
	)
	return sz
}

func (b *_ID3DBlob) data() []byte {
	return unsafeslice.Of(b.getBufferPointer(), int(b.getBufferSize()))
}

func _IUnknownRelease(obj unsafe.Pointer, releaseMethod uintptr) {
	syscall.Syscall(
		releaseMethod,
		1,
		uintptr(obj),
		0,
		0,
	)
}
