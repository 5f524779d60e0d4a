// SPDX-License-Identifier: Unlicense OR MIT

package epaint

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ImageData is a width*height block of premultiplied RGBA8 pixels in
// row-major order.
type ImageData struct {
	Width  int
	Height int
	Pixels []Color
}

// NewImageData converts an arbitrary image to premultiplied RGBA8
// pixel data.
func NewImageData(img image.Image) ImageData {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rectangle{Max: b.Size()})
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return fromRGBA(dst)
}

// NewImageDataScaled converts an arbitrary image to premultiplied
// RGBA8 pixel data, resampling it to width x height.
func NewImageDataScaled(img image.Image, width, height int) ImageData {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return fromRGBA(dst)
}

func fromRGBA(img *image.RGBA) ImageData {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pixels := make([]Color, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			pixels[y*w+x] = Color{
				R: row[x*4+0],
				G: row[x*4+1],
				B: row[x*4+2],
				A: row[x*4+3],
			}
		}
	}
	return ImageData{Width: w, Height: h, Pixels: pixels}
}
