// SPDX-License-Identifier: Unlicense OR MIT

// Command demo opens a window and renders a hand-built GUI frame:
// two overlapping triangles sampling a small checkerboard texture.
// It exercises the full path from swap chain creation through texture
// uploads to per-frame draws, without a real GUI layer on top.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	eguid3d11 "github.com/egui-go/egui-d3d11"
	"github.com/egui-go/egui-d3d11/d3d11"
	"github.com/egui-go/egui-d3d11/epaint"
)

func init() {
	runtime.LockOSThread()
}

// demoUI is a stand-in for a GUI layer: its "tessellation" output is
// built by hand once per frame.
type demoUI struct {
	frame uint64
}

func (ui *demoUI) ZoomFactor() float32 { return 1 }

func (ui *demoUI) Tessellate(shapes []epaint.ClippedShape, pixelsPerPoint float32) []epaint.ClippedPrimitive {
	ui.frame++
	fade := float32(ui.frame%240) / 240
	if fade > 0.5 {
		fade = 1 - fade
	}
	alpha := uint8(255 * (0.5 + fade))
	tint := func(r, g, b uint8) epaint.Color {
		// Premultiplied.
		return epaint.Color{
			R: uint8(uint32(r) * uint32(alpha) / 255),
			G: uint8(uint32(g) * uint32(alpha) / 255),
			B: uint8(uint32(b) * uint32(alpha) / 255),
			A: alpha,
		}
	}
	mesh := &epaint.Mesh{
		Vertices: []epaint.Vertex{
			{Pos: epaint.Pt(100, 80), UV: epaint.Pt(0, 0), Color: tint(255, 80, 80)},
			{Pos: epaint.Pt(540, 120), UV: epaint.Pt(1, 0), Color: tint(80, 255, 80)},
			{Pos: epaint.Pt(180, 420), UV: epaint.Pt(0, 1), Color: tint(80, 80, 255)},
			{Pos: epaint.Pt(600, 400), UV: epaint.Pt(1, 1), Color: tint(255, 255, 80)},
		},
		Indices: []uint32{0, 1, 2, 1, 3, 2},
		Texture: epaint.ManagedTextureID(0),
	}
	return []epaint.ClippedPrimitive{
		{ClipRect: shapes[0].ClipRect, Primitive: mesh},
	}
}

func checkerboard(size int) epaint.ImageData {
	pixels := make([]epaint.Color, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := epaint.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			if (x/8+y/8)%2 == 0 {
				c = epaint.Color{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
			}
			pixels[y*size+x] = c
		}
	}
	return epaint.ImageData{Width: size, Height: size, Pixels: pixels}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing GLFW: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	win, err := glfw.CreateWindow(800, 600, "egui-d3d11 demo", nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Destroy()

	sc, err := d3d11.CreateDeviceAndSwapChain(uintptr(unsafe.Pointer(win.GetWin32Window())))
	if err != nil {
		return err
	}
	defer sc.Release()

	renderer, err := eguid3d11.New(sc.Device())
	if err != nil {
		return err
	}
	defer renderer.Release()

	target, err := sc.RenderTarget()
	if err != nil {
		return err
	}
	defer func() {
		target.Release()
	}()

	needResize := false
	win.SetFramebufferSizeCallback(func(*glfw.Window, int, int) {
		needResize = true
	})

	ui := new(demoUI)
	uploaded := false
	for !win.ShouldClose() {
		glfw.PollEvents()
		if needResize {
			needResize = false
			target.Release()
			if err := sc.Resize(); err != nil {
				return err
			}
			if target, err = sc.RenderTarget(); err != nil {
				return err
			}
		}

		var delta epaint.TexturesDelta
		if !uploaded {
			uploaded = true
			delta.Set = []epaint.TextureSet{{
				ID:    epaint.ManagedTextureID(0),
				Delta: epaint.ImageDelta{Image: checkerboard(64)},
			}}
		}
		out := eguid3d11.FrameOutput{
			TexturesDelta:  delta,
			Shapes:         []epaint.ClippedShape{{ClipRect: epaint.RectFromSize(800, 600)}},
			PixelsPerPoint: 1,
		}
		sc.Context().Clear(target, [4]float32{0.1, 0.1, 0.1, 1})
		xscale, _ := win.GetContentScale()
		if err := renderer.Render(sc.Context(), target, ui, out, xscale); err != nil {
			return err
		}
		if err := sc.Present(1); err != nil {
			if d3d11.IsDeviceLost(err) {
				return fmt.Errorf("device lost: %w", err)
			}
			return err
		}
	}
	return nil
}

func main() {
	eguid3d11.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}
