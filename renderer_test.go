// SPDX-License-Identifier: Unlicense OR MIT

package eguid3d11

import (
	"errors"
	"image"
	"testing"

	"github.com/egui-go/egui-d3d11/backend"
	"github.com/egui-go/egui-d3d11/epaint"
	"github.com/egui-go/egui-d3d11/internal/rendertest"
)

// testUI hands back canned tessellation output.
type testUI struct {
	prims []epaint.ClippedPrimitive
	zoom  float32
}

func (ui *testUI) Tessellate(shapes []epaint.ClippedShape, pixelsPerPoint float32) []epaint.ClippedPrimitive {
	return ui.prims
}

func (ui *testUI) ZoomFactor() float32 {
	if ui.zoom == 0 {
		return 1
	}
	return ui.zoom
}

func oneShape() []epaint.ClippedShape {
	return []epaint.ClippedShape{{ClipRect: epaint.RectFromSize(800, 600)}}
}

func TestNewCreatesPipelineOnce(t *testing.T) {
	dev := rendertest.NewDevice()
	r, err := New(dev)
	if err != nil {
		t.Fatal(err)
	}
	// Two shaders, the input layout and three state objects.
	if n := dev.LiveCount(); n != 6 {
		t.Errorf("live resources after New: got %d (%v), want 6", n, dev.Live())
	}
	r.Release()
	if n := dev.LiveCount(); n != 0 {
		t.Errorf("live resources after Release: got %d (%v), want 0", n, dev.Live())
	}
}

func TestNewFailureReleasesPartialState(t *testing.T) {
	boom := errors.New("device lost")
	for _, inject := range []func(*rendertest.Device){
		func(d *rendertest.Device) { d.ShaderErr = boom },
		func(d *rendertest.Device) { d.LayoutErr = boom },
		func(d *rendertest.Device) { d.RasterizerErr = boom },
		func(d *rendertest.Device) { d.SamplerErr = boom },
		func(d *rendertest.Device) { d.BlendErr = boom },
	} {
		dev := rendertest.NewDevice()
		inject(dev)
		if _, err := New(dev); !errors.Is(err, boom) {
			t.Fatalf("got error %v, want %v", err, boom)
		}
		if n := dev.LiveCount(); n != 0 {
			t.Errorf("leaked resources after failed New: %v", dev.Live())
		}
	}
}

func TestRenderEmptyFrame(t *testing.T) {
	dev := rendertest.NewDevice()
	ctx := rendertest.NewContext()
	r, err := New(dev)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	// The texture delta is applied even when there is nothing to draw.
	out := FrameOutput{
		TexturesDelta: epaint.TexturesDelta{
			Set: []epaint.TextureSet{
				wholeSet(epaint.ManagedTextureID(0), imageOf(1, 1, white)),
			},
		},
		PixelsPerPoint: 1,
	}
	target := &rendertest.RenderTarget{W: 800, H: 600}
	if err := r.Render(ctx, target, &testUI{}, out, 1); err != nil {
		t.Fatal(err)
	}
	if len(ctx.Draws) != 0 {
		t.Errorf("empty frame recorded %d draws", len(ctx.Draws))
	}
	if ctx.Cleared != 0 {
		t.Errorf("empty frame touched pipeline state (%d clears)", ctx.Cleared)
	}
	if _, ok := r.pool.View(epaint.ManagedTextureID(0)); !ok {
		t.Error("texture delta not applied on empty frame")
	}
}

func TestRenderDrawsMeshes(t *testing.T) {
	dev := rendertest.NewDevice()
	ctx := rendertest.NewContext()
	r, err := New(dev)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	id := epaint.ManagedTextureID(0)
	out := FrameOutput{
		TexturesDelta: epaint.TexturesDelta{
			Set: []epaint.TextureSet{wholeSet(id, imageOf(1, 1, white))},
		},
		Shapes:         oneShape(),
		PixelsPerPoint: 1,
	}
	ui := &testUI{
		prims: []epaint.ClippedPrimitive{
			clippedMesh(epaint.RectFromSize(400, 300),
				triangle(id, epaint.Pt(0, 0), epaint.Pt(800, 0), epaint.Pt(0, 600))),
		},
	}
	target := &rendertest.RenderTarget{W: 800, H: 600}
	if err := r.Render(ctx, target, ui, out, 1); err != nil {
		t.Fatal(err)
	}

	if len(ctx.Draws) != 1 {
		t.Fatalf("got %d draws, want 1", len(ctx.Draws))
	}
	draw := ctx.Draws[0]
	if draw.IndexCount != 3 {
		t.Errorf("index count: got %d, want 3", draw.IndexCount)
	}
	if want := image.Rect(0, 0, 400, 300); draw.Scissor != want {
		t.Errorf("scissor: got %v, want %v", draw.Scissor, want)
	}
	if draw.Stride != vertexStride {
		t.Errorf("vertex stride: got %d, want %d", draw.Stride, vertexStride)
	}
	if len(draw.VertexData) != 3*vertexStride {
		t.Errorf("vertex data: got %d bytes, want %d", len(draw.VertexData), 3*vertexStride)
	}
	if len(draw.IndexData) != 3*4 {
		t.Errorf("index data: got %d bytes, want %d", len(draw.IndexData), 3*4)
	}
	view, _ := r.pool.View(id)
	if draw.Texture != view {
		t.Error("draw does not sample the pool texture")
	}

	// State is cleared on entry and on return.
	if ctx.Cleared != 2 {
		t.Errorf("got %d state clears, want 2", ctx.Cleared)
	}
	// Transient mesh buffers are gone; the pipeline and the texture stay.
	if n := dev.LiveCount(); n != 7 {
		t.Errorf("live resources after frame: got %d (%v), want 7", n, dev.Live())
	}
}

func TestRenderPaintersOrder(t *testing.T) {
	dev := rendertest.NewDevice()
	ctx := rendertest.NewContext()
	r, err := New(dev)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	var prims []epaint.ClippedPrimitive
	for i := 0; i < 3; i++ {
		clip := epaint.RectFromSize(float32(10*(i+1)), 10)
		prims = append(prims, clippedMesh(clip,
			triangle(epaint.TextureID{}, epaint.Pt(0, 0), epaint.Pt(1, 0), epaint.Pt(0, 1))))
	}
	out := FrameOutput{
		TexturesDelta: epaint.TexturesDelta{
			Set: []epaint.TextureSet{wholeSet(epaint.TextureID{}, imageOf(1, 1, white))},
		},
		Shapes:         oneShape(),
		PixelsPerPoint: 1,
	}
	target := &rendertest.RenderTarget{W: 100, H: 100}
	if err := r.Render(ctx, target, &testUI{prims: prims}, out, 1); err != nil {
		t.Fatal(err)
	}
	if len(ctx.Draws) != 3 {
		t.Fatalf("got %d draws, want 3", len(ctx.Draws))
	}
	for i, draw := range ctx.Draws {
		if want := image.Rect(0, 0, 10*(i+1), 10); draw.Scissor != want {
			t.Errorf("draw %d scissor: got %v, want %v", i, draw.Scissor, want)
		}
	}
}

func TestRenderUnknownTextureStillDraws(t *testing.T) {
	warns := captureWarnings(t)
	dev := rendertest.NewDevice()
	ctx := rendertest.NewContext()
	r, err := New(dev)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	ui := &testUI{
		prims: []epaint.ClippedPrimitive{
			clippedMesh(epaint.RectFromSize(100, 100),
				triangle(epaint.ManagedTextureID(99),
					epaint.Pt(0, 0), epaint.Pt(1, 0), epaint.Pt(0, 1))),
		},
	}
	out := FrameOutput{Shapes: oneShape(), PixelsPerPoint: 1}
	target := &rendertest.RenderTarget{W: 100, H: 100}
	if err := r.Render(ctx, target, ui, out, 1); err != nil {
		t.Fatal(err)
	}
	if len(ctx.Draws) != 1 {
		t.Fatalf("got %d draws, want 1", len(ctx.Draws))
	}
	if ctx.Draws[0].Texture != nil {
		t.Error("unexpected texture bound for the unknown id")
	}
	if warns.count() != 1 {
		t.Errorf("got %d warnings, want 1", warns.count())
	}
}

func TestRenderZeroSizeTarget(t *testing.T) {
	dev := rendertest.NewDevice()
	ctx := rendertest.NewContext()
	r, err := New(dev)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	out := FrameOutput{Shapes: oneShape(), PixelsPerPoint: 1}
	err = r.Render(ctx, &rendertest.RenderTarget{W: 0, H: 600}, &testUI{}, out, 1)
	if !errors.Is(err, ErrZeroRenderTarget) {
		t.Errorf("got error %v, want ErrZeroRenderTarget", err)
	}
	if ctx.Cleared != 0 {
		t.Error("pipeline state touched before the size check")
	}
}

func TestRenderTargetSizeError(t *testing.T) {
	dev := rendertest.NewDevice()
	ctx := rendertest.NewContext()
	r, err := New(dev)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	boom := errors.New("view lost")
	out := FrameOutput{Shapes: oneShape(), PixelsPerPoint: 1}
	err = r.Render(ctx, &rendertest.RenderTarget{SizeErr: boom}, &testUI{}, out, 1)
	if !errors.Is(err, boom) {
		t.Errorf("got error %v, want %v", err, boom)
	}
}

func TestRenderBufferCreateError(t *testing.T) {
	dev := rendertest.NewDevice()
	ctx := rendertest.NewContext()
	r, err := New(dev)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	boom := errors.New("out of memory")
	dev.BufferErr = boom
	ui := &testUI{
		prims: []epaint.ClippedPrimitive{
			clippedMesh(epaint.RectFromSize(100, 100),
				triangle(epaint.TextureID{}, epaint.Pt(0, 0), epaint.Pt(1, 0), epaint.Pt(0, 1))),
		},
	}
	out := FrameOutput{Shapes: oneShape(), PixelsPerPoint: 1}
	err = r.Render(ctx, &rendertest.RenderTarget{W: 100, H: 100}, ui, out, 1)
	if !errors.Is(err, boom) {
		t.Errorf("got error %v, want %v", err, boom)
	}
	if n := dev.LiveCount(); n != 6 {
		t.Errorf("leaked buffers after failed draw: %v", dev.Live())
	}
}

func TestRendererUserTextures(t *testing.T) {
	dev := rendertest.NewDevice()
	r, err := New(dev)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()

	var view backend.ShaderResourceView = &rendertest.SRV{}
	id := r.RegisterUserTexture(view)
	got, ok := r.pool.View(id)
	if !ok || got != view {
		t.Error("registered view not served back")
	}
	if !r.UnregisterUserTexture(id) {
		t.Error("unregister returned false")
	}
}
