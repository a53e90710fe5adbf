package vgagraph

// This file decodes the proportional fonts stored in the font partition
// and offers text measurement and wrapping over their glyph widths.

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// fontCharacterCount is the number of glyph slots in a font chunk.
const fontCharacterCount = 256

type fontHeader struct {
	Height  uint16
	Offsets [fontCharacterCount]uint16
	Widths  [fontCharacterCount]uint8
}

// Font is a decoded proportional font.
type Font struct {
	// Height of every glyph, in pixels.
	Height int

	widths [fontCharacterCount]int
	glyphs [fontCharacterCount]*image.Paletted
}

// ParseFont decodes a font chunk. Glyph pixels index into the passed
// palette; glyphs with a zero width have no image.
func ParseFont(chunk []byte, palette color.Palette) (*Font, error) {
	var h fontHeader
	if err := binary.Read(bytes.NewReader(chunk), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("could not read font header: %v", err)
	}
	if h.Height == 0 {
		return nil, fmt.Errorf("font has zero height")
	}

	f := &Font{Height: int(h.Height)}
	for i := 0; i < fontCharacterCount; i++ {
		width := int(h.Widths[i])
		f.widths[i] = width
		if width == 0 {
			continue
		}

		offset := int(h.Offsets[i])
		size := width * f.Height
		if offset+size > len(chunk) {
			return nil, fmt.Errorf("glyph %d out of chunk bounds: offset=%d size=%d", i, offset, size)
		}
		glyph := image.NewPaletted(image.Rect(0, 0, width, f.Height), palette)
		copy(glyph.Pix, chunk[offset:offset+size])
		f.glyphs[i] = glyph
	}
	return f, nil
}

// Font decodes one font, counted from the start of the font partition.
func (a *Archive) Font(index int) (*Font, error) {
	p, err := a.Partition("font")
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= p.Count {
		return nil, fmt.Errorf("font index out of range: %d", index)
	}
	chunk, err := a.Chunk(p.Start + index)
	if err != nil {
		return nil, err
	}
	return ParseFont(chunk, a.Palette)
}

// Glyph returns the image of one character, or nil for characters the
// font does not cover.
func (f *Font) Glyph(c byte) image.Image {
	if f.glyphs[c] == nil {
		return nil
	}
	return f.glyphs[c]
}

// Width returns the advance width of one character, in pixels.
func (f *Font) Width(c byte) int {
	return f.widths[c]
}

// Measure returns the rendered width of text, in pixels.
func (f *Font) Measure(text string) int {
	width := 0
	for i := 0; i < len(text); i++ {
		width += f.widths[text[i]]
	}
	return width
}

// Render draws one line of text onto a fresh image. Characters the font
// does not cover take up no space.
func (f *Font) Render(text string) image.Image {
	width := f.Measure(text)
	if width == 0 {
		width = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, f.Height))
	x := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if glyph := f.glyphs[c]; glyph != nil {
			r := image.Rect(x, 0, x+f.widths[c], f.Height)
			draw.Draw(img, r, glyph, image.Point{}, draw.Over)
		}
		x += f.widths[c]
	}
	return img
}

// Wrap breaks text into lines no wider than maxWidth pixels. Newline and
// vertical tab characters force a break.
func (f *Font) Wrap(text string, maxWidth int) []string {
	var lines []string
	start, end := 0, 0
	width := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		delta := f.widths[c]
		if width+delta <= maxWidth && c != '\n' && c != '\v' {
			width += delta
			end++
			continue
		}
		lines = append(lines, text[start:end])
		if c == '\n' || c == '\v' {
			end++
			start = end
			width = 0
		} else {
			start = end
			end++
			width = delta
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
