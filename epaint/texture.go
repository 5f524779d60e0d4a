// SPDX-License-Identifier: Unlicense OR MIT

package epaint

import "image"

// TextureKind separates the two texture identifier namespaces.
type TextureKind uint8

const (
	// TextureManaged identifies textures whose lifecycle is driven by
	// the GUI layer through per-frame texture deltas.
	TextureManaged TextureKind = iota
	// TextureUser identifies textures registered by the host
	// application. Their identifiers are allocated by the renderer's
	// texture pool and never collide with managed identifiers.
	TextureUser
)

// TextureID is an opaque texture key. It is comparable and usable as a
// map key.
type TextureID struct {
	Kind TextureKind
	ID   uint64
}

// ManagedTextureID returns the id of a GUI-managed texture.
func ManagedTextureID(id uint64) TextureID {
	return TextureID{Kind: TextureManaged, ID: id}
}

// UserTextureID returns the id of an application-registered texture.
func UserTextureID(id uint64) TextureID {
	return TextureID{Kind: TextureUser, ID: id}
}

// ImageDelta is a creation or update of a single texture. A nil Pos
// means the image replaces the entire texture; otherwise the image is
// a patch written at Pos into an existing texture.
type ImageDelta struct {
	Image ImageData
	Pos   *image.Point
}

// IsWhole reports whether the delta replaces the whole texture.
func (d ImageDelta) IsWhole() bool {
	return d.Pos == nil
}

// TextureSet is one entry of a delta's creation/update set.
type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta describes the texture changes for one frame. Set is
// ordered: a partial update may rely on a whole update earlier in the
// same delta. Free lists the identifiers whose textures the GUI layer
// no longer references.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

// IsEmpty reports whether the delta carries no changes.
func (d TexturesDelta) IsEmpty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}
