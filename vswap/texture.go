package vswap

// This file decodes wall texture pages. Textures are stored column by
// column so the renderer could slice them during raycasting; decoding
// transposes them back into row order.

import (
	"fmt"
	"image"

	"badc0de.net/pkg/go-wolf/wl6"
)

// Texture decodes the wall texture stored in the page with the passed
// index and returns it as a paletted image.
func (a *Archive) Texture(index int) (image.Image, error) {
	if index < 0 || index >= a.spritesStart {
		return nil, fmt.Errorf("texture index out of range: got %d, want < %d", index, a.spritesStart)
	}
	chunk, err := a.Chunk(index)
	if err != nil {
		return nil, err
	}

	const w, h = wl6.TextureWidth, wl6.TextureHeight
	if len(chunk) < w*h {
		return nil, fmt.Errorf("texture chunk %d too small: got %d, want %d", index, len(chunk), w*h)
	}

	img := image.NewPaletted(image.Rect(0, 0, w, h), a.Palette)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Pix[y*img.Stride+x] = chunk[x*h+y]
		}
	}
	return img, nil
}

// TextureCount returns the number of wall texture pages. Empty pages are
// counted; decoding one yields an error.
func (a *Archive) TextureCount() int {
	return a.spritesStart
}
