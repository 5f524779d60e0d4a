// SPDX-License-Identifier: Unlicense OR MIT

package epaint

import (
	"image"
	"image/color"
	"testing"
)

func TestRectOps(t *testing.T) {
	r := Rect{Min: Pt(10, 20), Max: Pt(110, 220)}
	if got := r.Dx(); got != 100 {
		t.Errorf("Dx: got %v, want 100", got)
	}
	if got := r.Dy(); got != 200 {
		t.Errorf("Dy: got %v, want 200", got)
	}
	if got, want := r.Mul(0.5), (Rect{Min: Pt(5, 10), Max: Pt(55, 110)}); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
	u := r.Union(Rect{Min: Pt(0, 100), Max: Pt(50, 300)})
	if want := (Rect{Min: Pt(0, 20), Max: Pt(110, 300)}); u != want {
		t.Errorf("Union: got %v, want %v", u, want)
	}
}

func TestColorFloats(t *testing.T) {
	tests := []struct {
		c    Color
		want [4]float32
	}{
		{Color{}, [4]float32{0, 0, 0, 0}},
		{Color{R: 255, G: 255, B: 255, A: 255}, [4]float32{1, 1, 1, 1}},
		{Color{R: 51, A: 255}, [4]float32{0.2, 0, 0, 1}},
	}
	for _, test := range tests {
		if got := test.c.Floats(); got != test.want {
			t.Errorf("%v.Floats(): got %v, want %v", test.c, got, test.want)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	c := Color{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	r, g, b, a := c.RGBA()
	if r != 0x1212 || g != 0x3434 || b != 0x5656 || a != 0xffff {
		t.Errorf("got (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestNewImageData(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	img := NewImageData(src)
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("got %dx%d, want 2x1", img.Width, img.Height)
	}
	want := []Color{{R: 255, A: 255}, {G: 255, A: 255}}
	for i, c := range want {
		if img.Pixels[i] != c {
			t.Errorf("pixel %d: got %v, want %v", i, img.Pixels[i], c)
		}
	}
}

func TestNewImageDataSubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(2, 2, color.RGBA{B: 255, A: 255})

	sub := src.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)
	img := NewImageData(sub)
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", img.Width, img.Height)
	}
	if got, want := img.Pixels[0], (Color{B: 255, A: 255}); got != want {
		t.Errorf("pixel (0, 0): got %v, want %v", got, want)
	}
}

func TestNewImageDataScaled(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	img := NewImageDataScaled(src, 2, 2)
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", img.Width, img.Height)
	}
	for i, p := range img.Pixels {
		if p != (Color{R: 255, A: 255}) {
			t.Errorf("pixel %d: got %v", i, p)
		}
	}
}

func TestImageDeltaIsWhole(t *testing.T) {
	if !(ImageDelta{}).IsWhole() {
		t.Error("delta without position not whole")
	}
	pos := image.Pt(1, 2)
	if (ImageDelta{Pos: &pos}).IsWhole() {
		t.Error("positioned delta reported as whole")
	}
}

func TestTexturesDeltaIsEmpty(t *testing.T) {
	if !(TexturesDelta{}).IsEmpty() {
		t.Error("zero delta not empty")
	}
	if (TexturesDelta{Free: []TextureID{{}}}).IsEmpty() {
		t.Error("delta with frees reported empty")
	}
}

func TestTextureIDNamespaces(t *testing.T) {
	if ManagedTextureID(1) == UserTextureID(1) {
		t.Error("managed and user ids collide")
	}
}
