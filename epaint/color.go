// SPDX-License-Identifier: Unlicense OR MIT

package epaint

// Color is a 32-bit premultiplied RGBA color in gamma space, one byte
// per channel. It matches the texel layout of the RGBA8 textures the
// renderer uploads, so a []Color is bit-compatible with the GPU pixel
// data.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements image/color.Color. The returned channels are
// alpha-premultiplied, 16 bits per channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}

// Floats expands c to four 0.0-1.0 float channels.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
