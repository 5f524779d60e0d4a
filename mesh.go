// SPDX-License-Identifier: Unlicense OR MIT

package eguid3d11

import (
	"image"
	"unsafe"

	"github.com/egui-go/egui-d3d11/epaint"
)

// vertex is the GPU-side vertex layout; see vertexInputs in shaders.go.
type vertex struct {
	pos   [2]float32
	uv    [2]float32
	color [4]float32
}

const vertexStride = int(unsafe.Sizeof(vertex{}))

// meshData is one translated mesh, ready to draw: vertices in
// normalized device coordinates and the scissor rectangle in physical
// pixels.
type meshData struct {
	vtx  []vertex
	idx  []uint32
	tex  epaint.TextureID
	clip image.Rectangle
}

// translateMeshes converts tessellated primitives to draw-ready mesh
// data. frameScaled is the render target size divided by the window
// scale factor; clipScale converts logical clip rectangles to physical
// pixels. Primitives that violate the tessellation contract are
// dropped, never fatal: a mesh without indices is skipped silently, an
// incomplete triangle list and a paint callback are skipped with a
// warning.
func translateMeshes(prims []epaint.ClippedPrimitive, frameScaled epaint.Point, zoom, clipScale float32) []meshData {
	meshes := make([]meshData, 0, len(prims))
	for _, prim := range prims {
		var mesh *epaint.Mesh
		switch p := prim.Primitive.(type) {
		case *epaint.Mesh:
			mesh = p
		case *epaint.PaintCallback:
			logger().Warn("eguid3d11: paint callbacks are not supported, skipping")
			continue
		default:
			logger().Warn("eguid3d11: unknown primitive, skipping")
			continue
		}
		if len(mesh.Indices) == 0 {
			continue
		}
		if len(mesh.Indices)%3 != 0 {
			logger().Warn("eguid3d11: mesh index count is not a multiple of three, skipping",
				"indices", len(mesh.Indices))
			continue
		}
		vtx := make([]vertex, len(mesh.Vertices))
		for i, v := range mesh.Vertices {
			vtx[i] = vertex{
				pos: [2]float32{
					v.Pos.X*zoom/frameScaled.X*2 - 1,
					1 - v.Pos.Y*zoom/frameScaled.Y*2,
				},
				uv:    [2]float32{v.UV.X, v.UV.Y},
				color: v.Color.Floats(),
			}
		}
		clip := prim.ClipRect.Mul(clipScale)
		meshes = append(meshes, meshData{
			vtx: vtx,
			idx: mesh.Indices,
			tex: mesh.Texture,
			clip: image.Rect(
				int(clip.Min.X), int(clip.Min.Y),
				int(clip.Max.X), int(clip.Max.Y),
			),
		})
	}
	return meshes
}
