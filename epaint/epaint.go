// SPDX-License-Identifier: Unlicense OR MIT

/*
Package epaint holds the frame output data model shared between a GUI
layer and a render backend: texture identifiers and per-frame texture
deltas, tessellated triangle meshes with their clip rectangles, and the
float32 geometry they are expressed in.

The package is deliberately free of GPU types. A GUI layer produces
these values; a backend consumes them.
*/
package epaint

// Vertex is one tessellated vertex: a position in logical UI
// coordinates, a texture coordinate in 0-1 space and a premultiplied
// RGBA8 color.
type Vertex struct {
	Pos   Point
	UV    Point
	Color Color
}

// Mesh is a textured triangle list. Indices index into Vertices and
// must come in multiples of three.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
}

// Shape is an opaque shape produced by the GUI layer. The renderer
// never inspects shapes; it hands them back to the layer's tessellator.
type Shape interface{}

// ClippedShape is a shape together with the clip rectangle, in logical
// coordinates, that it must be drawn within.
type ClippedShape struct {
	ClipRect Rect
	Shape    Shape
}

// Primitive is what tessellation produces for one clipped region:
// either a triangle mesh or a paint callback.
type Primitive interface {
	isPrimitive()
}

func (*Mesh) isPrimitive()          {}
func (*PaintCallback) isPrimitive() {}

// PaintCallback requests custom drawing inside a rectangle. Render
// backends that do not support callbacks skip them with a warning.
type PaintCallback struct {
	Rect     Rect
	Callback interface{}
}

// ClippedPrimitive is one tessellated primitive with its clip
// rectangle in logical coordinates.
type ClippedPrimitive struct {
	ClipRect  Rect
	Primitive Primitive
}
