// SPDX-License-Identifier: Unlicense OR MIT

package eguid3d11

import (
	"image"

	"github.com/egui-go/egui-d3d11/backend"
	"github.com/egui-go/egui-d3d11/epaint"
	"github.com/egui-go/egui-d3d11/internal/unsafeslice"
)

// poolTexture is one pool entry. The two implementations track the two
// ownership models: managedTexture owns its GPU texture, userTexture
// wraps an application-owned view and never releases it.
type poolTexture interface {
	view() backend.ShaderResourceView
	release()
}

type managedTexture struct {
	tex backend.Texture2D
	// pixels is the CPU shadow of the full texture. Map-discard
	// invalidates the whole GPU texture, so partial updates rebuild it
	// from this shadow.
	pixels []epaint.Color
	width  int
	height int
}

func (t *managedTexture) view() backend.ShaderResourceView { return t.tex.View() }
func (t *managedTexture) release()                         { t.tex.Release() }

type userTexture struct {
	srv backend.ShaderResourceView
}

func (t *userTexture) view() backend.ShaderResourceView { return t.srv }
func (t *userTexture) release()                         {}

// TexturePool owns the GPU textures the GUI layer draws with, keyed by
// texture identifier. Managed entries follow the per-frame texture
// delta; user entries are registered and unregistered by the host
// application.
type TexturePool struct {
	dev        backend.Device
	pool       map[epaint.TextureID]poolTexture
	nextUserID uint64
}

// NewTexturePool returns an empty pool creating textures on dev.
func NewTexturePool(dev backend.Device) *TexturePool {
	return &TexturePool{
		dev:  dev,
		pool: make(map[epaint.TextureID]poolTexture),
	}
}

// View returns the shader-visible view for id, of either variant.
func (p *TexturePool) View(id epaint.TextureID) (backend.ShaderResourceView, bool) {
	tex, ok := p.pool[id]
	if !ok {
		return nil, false
	}
	return tex.view(), true
}

// RegisterUserTexture stores an application-owned view and returns a
// fresh identifier for it. The identifier comes from a monotonically
// increasing counter in the user namespace and never collides with
// GUI-managed identifiers.
func (p *TexturePool) RegisterUserTexture(view backend.ShaderResourceView) epaint.TextureID {
	id := epaint.UserTextureID(p.nextUserID)
	p.nextUserID++
	p.pool[id] = &userTexture{srv: view}
	return id
}

// UnregisterUserTexture removes id if it refers to a user texture and
// reports whether a removal happened. Managed entries are left intact.
func (p *TexturePool) UnregisterUserTexture(id epaint.TextureID) bool {
	if _, ok := p.pool[id].(*userTexture); !ok {
		return false
	}
	delete(p.pool, id)
	return true
}

// Update applies one frame's texture delta. A whole image with
// positive dimensions replaces any entry under that id; a positioned
// patch updates an existing managed entry; everything else is a
// contract violation from the GUI layer, logged and skipped. Resource
// creation errors abort the update; entries processed before the
// failing one remain updated.
func (p *TexturePool) Update(ctx backend.Context, delta epaint.TexturesDelta) error {
	for _, set := range delta.Set {
		img := set.Delta.Image
		if set.Delta.IsWhole() && img.Width > 0 && img.Height > 0 {
			tex, err := p.createManaged(img)
			if err != nil {
				return err
			}
			if old, ok := p.pool[set.ID]; ok {
				old.release()
			}
			p.pool[set.ID] = tex
			continue
		}
		old, ok := p.pool[set.ID]
		if !ok {
			logger().Warn("eguid3d11: texture update for an unknown texture, ignoring",
				"texture", set.ID)
			continue
		}
		managed, ok := old.(*managedTexture)
		if !ok {
			logger().Warn("eguid3d11: partial update of an application-registered texture is not supported, ignoring",
				"texture", set.ID)
			continue
		}
		if set.Delta.IsWhole() {
			// A whole image with a zero dimension.
			logger().Warn("eguid3d11: texture update with empty image, ignoring",
				"texture", set.ID)
			continue
		}
		if err := p.applyPartial(ctx, managed, img, *set.Delta.Pos); err != nil {
			return err
		}
	}
	for _, id := range delta.Free {
		// User entries are application-owned; the pool never frees
		// them on the GUI layer's behalf.
		if tex, ok := p.pool[id].(*managedTexture); ok {
			tex.release()
			delete(p.pool, id)
		}
	}
	return nil
}

// Release frees all managed GPU resources and empties the pool. Views
// wrapped by user entries stay alive; they belong to the application.
func (p *TexturePool) Release() {
	for _, tex := range p.pool {
		tex.release()
	}
	p.pool = make(map[epaint.TextureID]poolTexture)
}

func (p *TexturePool) createManaged(img epaint.ImageData) (*managedTexture, error) {
	tex, err := p.dev.NewTexture2D(img.Width, img.Height, unsafeslice.BytesView(img.Pixels))
	if err != nil {
		return nil, err
	}
	pixels := make([]epaint.Color, len(img.Pixels))
	copy(pixels, img.Pixels)
	return &managedTexture{
		tex:    tex,
		pixels: pixels,
		width:  img.Width,
		height: img.Height,
	}, nil
}

// applyPartial patches img into tex at pos. Mapping with discard
// invalidates the whole GPU texture, so the shadow is patched first
// and then every row is written back from it.
func (p *TexturePool) applyPartial(ctx backend.Context, tex *managedTexture, img epaint.ImageData, pos image.Point) error {
	if pos.X < 0 || pos.Y < 0 ||
		pos.X+img.Width > tex.width || pos.Y+img.Height > tex.height {
		logger().Warn("eguid3d11: texture patch outside texture bounds, ignoring",
			"pos", pos, "patch", image.Pt(img.Width, img.Height),
			"texture", image.Pt(tex.width, tex.height))
		return nil
	}
	mapped, err := ctx.Map(tex.tex)
	if err != nil {
		return err
	}
	for y := 0; y < img.Height; y++ {
		src := img.Pixels[y*img.Width : (y+1)*img.Width]
		dst := tex.pixels[(pos.Y+y)*tex.width+pos.X:]
		copy(dst[:img.Width], src)
	}
	rowBytes := tex.width * 4
	shadow := unsafeslice.BytesView(tex.pixels)
	for y := 0; y < tex.height; y++ {
		copy(mapped.Data[y*mapped.RowPitch:][:rowBytes], shadow[y*rowBytes:][:rowBytes])
	}
	ctx.Unmap(tex.tex)
	return nil
}
