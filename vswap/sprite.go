package vswap

// This file decodes sprite pages. A sprite is a sparse 64x64 column
// store: a header gives the first and last non-empty column plus one
// post-list offset per column, and each post paints a vertical run of
// pixels. Everything outside the posts is the color key.

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"badc0de.net/pkg/go-wolf/wl6"
)

// SpriteHeader is the decoded fixed part of a sprite page.
type SpriteHeader struct {
	Left, Right int
	Offsets     []int // one post-list offset per column in [Left, Right]
}

// ParseSpriteHeader reads the sprite header at the beginning of a chunk.
func ParseSpriteHeader(chunk []byte) (*SpriteHeader, error) {
	if len(chunk) < 4 {
		return nil, fmt.Errorf("sprite chunk too small: %d", len(chunk))
	}
	left := int(binary.LittleEndian.Uint16(chunk[0:]))
	right := int(binary.LittleEndian.Uint16(chunk[2:]))
	if right < left {
		return nil, fmt.Errorf("sprite columns reversed: left=%d right=%d", left, right)
	}
	width := right - left + 1
	if len(chunk) < 4+width*2 {
		return nil, fmt.Errorf("sprite chunk too small for %d columns: %d", width, len(chunk))
	}
	offsets := make([]int, width)
	for i := range offsets {
		offsets[i] = int(binary.LittleEndian.Uint16(chunk[4+i*2:]))
	}
	return &SpriteHeader{Left: left, Right: right, Offsets: offsets}, nil
}

// Sprite decodes one sprite. The index is 0-based and counted from the
// first sprite page, matching the sprite name tables. Pixels not covered
// by any post are transparent (the color key entry of the palette is
// cleared).
func (a *Archive) Sprite(index int) (image.Image, error) {
	if index < 0 || index >= a.SpriteCount() {
		return nil, fmt.Errorf("sprite index out of range: got %d, want < %d", index, a.SpriteCount())
	}
	chunk, err := a.Chunk(a.spritesStart + index)
	if err != nil {
		return nil, err
	}
	return DecodeSprite(chunk, a.Palette)
}

// SpriteCount returns the number of sprite pages.
func (a *Archive) SpriteCount() int {
	return a.soundsStart - a.spritesStart
}

// DecodeSprite expands a single sprite chunk against the passed palette.
func DecodeSprite(chunk []byte, palette color.Palette) (image.Image, error) {
	h, err := ParseSpriteHeader(chunk)
	if err != nil {
		return nil, err
	}

	const w, ht = wl6.SpriteWidth, wl6.SpriteHeight
	img := image.NewPaletted(image.Rect(0, 0, w, ht), transparentColorKey(palette))
	for i := range img.Pix {
		img.Pix[i] = wl6.ColorKey
	}

	for column, offset := range h.Offsets {
		x := h.Left + column
		if x >= w {
			return nil, fmt.Errorf("sprite column out of range: %d", x)
		}
		for {
			if offset+2 > len(chunk) {
				return nil, fmt.Errorf("sprite post offset out of range: %d", offset)
			}
			endY := int(binary.LittleEndian.Uint16(chunk[offset:]))
			offset += 2
			if endY == 0 {
				break
			}
			if offset+4 > len(chunk) {
				return nil, fmt.Errorf("sprite post truncated at %d", offset)
			}
			// The base is a signed pointer bias: pixel y indexes the
			// chunk at base+y.
			base := int(int16(binary.LittleEndian.Uint16(chunk[offset:])))
			startY := int(binary.LittleEndian.Uint16(chunk[offset+2:]))
			offset += 4

			endY >>= 1
			startY >>= 1
			if endY > ht || startY < 0 || startY > endY {
				return nil, fmt.Errorf("sprite post out of range: start=%d end=%d", startY, endY)
			}
			for y := startY; y < endY; y++ {
				src := base + y
				if src < 0 || src >= len(chunk) {
					return nil, fmt.Errorf("sprite pixel source out of range: %d", src)
				}
				img.Pix[y*img.Stride+x] = chunk[src]
			}
		}
	}
	return img, nil
}

// transparentColorKey copies a palette with the color key entry fully
// transparent, so encoders like image/png carry the alpha through.
func transparentColorKey(palette color.Palette) color.Palette {
	out := make(color.Palette, len(palette))
	copy(out, palette)
	if len(out) > wl6.ColorKey {
		out[wl6.ColorKey] = color.RGBA{}
	}
	return out
}
