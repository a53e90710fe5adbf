package vgagraph

// This file decodes pics and tiles. Both are stored in VGA mode Y
// planar order: four quarter-width planes back to back, plane p holding
// the pixels with x % 4 == p.

import (
	"fmt"
	"image"
)

// linearize reorders mode Y planar pixels into row-major order.
func linearize(chunk []byte, width, height int) ([]byte, error) {
	if width%4 != 0 {
		return nil, fmt.Errorf("planar width must be divisible by 4: %d", width)
	}
	if len(chunk) < width*height {
		return nil, fmt.Errorf("planar chunk too small: got %d, want %d", len(chunk), width*height)
	}
	width4 := width >> 2
	area4 := width4 * height

	out := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out[y*width+x] = chunk[(y*width4+(x>>2))+(x&3)*area4]
		}
	}
	return out, nil
}

// PicCount returns the number of pics in the archive.
func (a *Archive) PicCount() int {
	return len(a.picSizes)
}

// PicSize returns the dimensions of a pic without decoding it.
func (a *Archive) PicSize(index int) (width, height int, err error) {
	if index < 0 || index >= len(a.picSizes) {
		return 0, 0, fmt.Errorf("pic index out of range: %d", index)
	}
	return a.picSizes[index][0], a.picSizes[index][1], nil
}

// Pic decodes one pic, counted from the start of the pics partition,
// into a paletted image.
func (a *Archive) Pic(index int) (image.Image, error) {
	width, height, err := a.PicSize(index)
	if err != nil {
		return nil, err
	}
	pics, err := a.Partition("pics")
	if err != nil {
		return nil, err
	}
	chunk, err := a.Chunk(pics.Start + index)
	if err != nil {
		return nil, err
	}

	pixels, err := linearize(chunk, width, height)
	if err != nil {
		return nil, fmt.Errorf("could not decode pic %d: %v", index, err)
	}
	img := image.NewPaletted(image.Rect(0, 0, width, height), a.Palette)
	copy(img.Pix, pixels)
	return img, nil
}

// Tile8Count returns the number of 8x8 tiles in the archive.
func (a *Archive) Tile8Count() int {
	p, err := a.Partition("tile8")
	if err != nil {
		return 0
	}
	return p.Count
}

// Tile8 decodes one 8x8 tile into a paletted image. All tiles share a
// single chunk, 64 bytes each.
func (a *Archive) Tile8(index int) (image.Image, error) {
	p, err := a.Partition("tile8")
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= p.Count {
		return nil, fmt.Errorf("tile8 index out of range: %d", index)
	}
	chunk, err := a.Chunk(p.Start)
	if err != nil {
		return nil, err
	}

	const area = 8 * 8
	offset := index * area
	if len(chunk) < offset+area {
		return nil, fmt.Errorf("tile8 chunk too small: got %d bytes, want >= %d", len(chunk), offset+area)
	}
	pixels, err := linearize(chunk[offset:offset+area], 8, 8)
	if err != nil {
		return nil, fmt.Errorf("could not decode tile8 %d: %v", index, err)
	}
	img := image.NewPaletted(image.Rect(0, 0, 8, 8), a.Palette)
	copy(img.Pix, pixels)
	return img, nil
}
