// SPDX-License-Identifier: Unlicense OR MIT

package eguid3d11

import (
	"image"
	"math"
	"testing"

	"github.com/egui-go/egui-d3d11/epaint"
)

func clippedMesh(clip epaint.Rect, mesh *epaint.Mesh) epaint.ClippedPrimitive {
	return epaint.ClippedPrimitive{ClipRect: clip, Primitive: mesh}
}

func triangle(tex epaint.TextureID, pts ...epaint.Point) *epaint.Mesh {
	mesh := &epaint.Mesh{Texture: tex}
	for i, p := range pts {
		mesh.Vertices = append(mesh.Vertices, epaint.Vertex{Pos: p})
		mesh.Indices = append(mesh.Indices, uint32(i))
	}
	return mesh
}

func approx(got, want float32) bool {
	return math.Abs(float64(got-want)) < 1e-5
}

func TestTranslateVertexTransform(t *testing.T) {
	frame := epaint.Pt(800, 600)
	tests := []struct {
		name string
		pos  epaint.Point
		zoom float32
		want [2]float32
	}{
		{"center", epaint.Pt(400, 300), 1, [2]float32{0, 0}},
		{"top left", epaint.Pt(0, 0), 1, [2]float32{-1, 1}},
		{"bottom right", epaint.Pt(800, 600), 1, [2]float32{1, -1}},
		{"center zoomed", epaint.Pt(200, 150), 2, [2]float32{0, 0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			prims := []epaint.ClippedPrimitive{
				clippedMesh(epaint.RectFromSize(800, 600),
					triangle(epaint.TextureID{}, test.pos, test.pos, test.pos)),
			}
			meshes := translateMeshes(prims, frame, test.zoom, 1)
			if len(meshes) != 1 {
				t.Fatalf("got %d meshes, want 1", len(meshes))
			}
			pos := meshes[0].vtx[0].pos
			if !approx(pos[0], test.want[0]) || !approx(pos[1], test.want[1]) {
				t.Errorf("got %v, want %v", pos, test.want)
			}
		})
	}
}

func TestTranslateClipRect(t *testing.T) {
	prims := []epaint.ClippedPrimitive{
		clippedMesh(epaint.Rect{Min: epaint.Pt(10, 20), Max: epaint.Pt(110, 220)},
			triangle(epaint.TextureID{}, epaint.Pt(0, 0), epaint.Pt(1, 0), epaint.Pt(0, 1))),
	}
	meshes := translateMeshes(prims, epaint.Pt(800, 600), 1, 2)
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	want := image.Rect(20, 40, 220, 440)
	if meshes[0].clip != want {
		t.Errorf("clip: got %v, want %v", meshes[0].clip, want)
	}
}

func TestTranslateVertexAttributes(t *testing.T) {
	mesh := &epaint.Mesh{
		Vertices: []epaint.Vertex{{
			Pos:   epaint.Pt(0, 0),
			UV:    epaint.Pt(0.25, 0.75),
			Color: epaint.Color{R: 255, G: 0, B: 0, A: 255},
		}},
		Indices: []uint32{0, 0, 0},
	}
	meshes := translateMeshes(
		[]epaint.ClippedPrimitive{clippedMesh(epaint.Rect{}, mesh)},
		epaint.Pt(100, 100), 1, 1,
	)
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	v := meshes[0].vtx[0]
	if v.uv != [2]float32{0.25, 0.75} {
		t.Errorf("uv: got %v", v.uv)
	}
	if v.color != [4]float32{1, 0, 0, 1} {
		t.Errorf("color: got %v", v.color)
	}
}

func TestTranslateSkipsEmptyMesh(t *testing.T) {
	warns := captureWarnings(t)
	prims := []epaint.ClippedPrimitive{
		clippedMesh(epaint.Rect{}, &epaint.Mesh{}),
	}
	if meshes := translateMeshes(prims, epaint.Pt(100, 100), 1, 1); len(meshes) != 0 {
		t.Errorf("got %d meshes, want 0", len(meshes))
	}
	// An empty mesh is not a contract violation.
	if warns.count() != 0 {
		t.Errorf("got %d warnings, want 0", warns.count())
	}
}

func TestTranslateSkipsIncompleteTriangles(t *testing.T) {
	warns := captureWarnings(t)
	prims := []epaint.ClippedPrimitive{
		clippedMesh(epaint.Rect{}, &epaint.Mesh{
			Vertices: []epaint.Vertex{{}, {}},
			Indices:  []uint32{0, 1},
		}),
		clippedMesh(epaint.Rect{}, triangle(epaint.TextureID{},
			epaint.Pt(0, 0), epaint.Pt(1, 0), epaint.Pt(0, 1))),
	}
	meshes := translateMeshes(prims, epaint.Pt(100, 100), 1, 1)
	if len(meshes) != 1 {
		t.Errorf("got %d meshes, want 1", len(meshes))
	}
	if warns.count() != 1 {
		t.Errorf("got %d warnings, want 1", warns.count())
	}
}

func TestTranslateSkipsPaintCallback(t *testing.T) {
	warns := captureWarnings(t)
	prims := []epaint.ClippedPrimitive{
		{ClipRect: epaint.Rect{}, Primitive: &epaint.PaintCallback{}},
		clippedMesh(epaint.Rect{}, triangle(epaint.TextureID{},
			epaint.Pt(0, 0), epaint.Pt(1, 0), epaint.Pt(0, 1))),
	}
	meshes := translateMeshes(prims, epaint.Pt(100, 100), 1, 1)
	if len(meshes) != 1 {
		t.Errorf("got %d meshes, want 1", len(meshes))
	}
	if warns.count() != 1 {
		t.Errorf("got %d warnings, want 1", warns.count())
	}
}
