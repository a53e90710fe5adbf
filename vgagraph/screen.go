package vgagraph

// This file decodes the DOS text screens stored in the screens
// partition: 80x25 cells of a CP437 character byte and a color
// attribute byte.

import (
	"fmt"
	"image/color"
	"strings"
)

// Dimensions of a stored text screen, in character cells.
const (
	ScreenWidth  = 80
	ScreenHeight = 25
)

// screenDataOffset is where the cell data starts within a screen chunk.
const screenDataOffset = 9

// CGAPalette is the 16-color text mode palette referenced by screen
// attribute bytes.
var CGAPalette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xFF},
	color.RGBA{0x00, 0x00, 0xAA, 0xFF},
	color.RGBA{0x00, 0xAA, 0x00, 0xFF},
	color.RGBA{0x00, 0xAA, 0xAA, 0xFF},
	color.RGBA{0xAA, 0x00, 0x00, 0xFF},
	color.RGBA{0xAA, 0x00, 0xAA, 0xFF},
	color.RGBA{0xAA, 0x55, 0x00, 0xFF},
	color.RGBA{0xAA, 0xAA, 0xAA, 0xFF},
	color.RGBA{0x55, 0x55, 0x55, 0xFF},
	color.RGBA{0x55, 0x55, 0xFF, 0xFF},
	color.RGBA{0x55, 0xFF, 0x55, 0xFF},
	color.RGBA{0x55, 0xFF, 0xFF, 0xFF},
	color.RGBA{0xFF, 0x55, 0x55, 0xFF},
	color.RGBA{0xFF, 0x55, 0xFF, 0xFF},
	color.RGBA{0xFF, 0xFF, 0x55, 0xFF},
	color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
}

// cp437High maps CP437 bytes 0x80 and up to Unicode. The low half is
// plain ASCII except for the control range, which text screens use for
// box drawing dingbats.
var cp437High = [128]rune{
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç', 'ê', 'ë', 'è', 'ï', 'î', 'ì', 'Ä', 'Å',
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù', 'ÿ', 'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ',
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'ª', 'º', '¿', '⌐', '¬', '½', '¼', '¡', '«', '»',
	'░', '▒', '▓', '│', '┤', '╡', '╢', '╖', '╕', '╣', '║', '╗', '╝', '╜', '╛', '┐',
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟', '╚', '╔', '╩', '╦', '╠', '═', '╬', '╧',
	'╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫', '╪', '┘', '┌', '█', '▄', '▌', '▐', '▀',
	'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ', 'τ', 'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩',
	'≡', '±', '≥', '≤', '⌠', '⌡', '÷', '≈', '°', '∙', '·', '√', 'ⁿ', '²', '■', ' ',
}

var cp437Low = [32]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

// cp437ToRune maps one CP437 byte to its Unicode equivalent.
func cp437ToRune(c byte) rune {
	switch {
	case c < 0x20:
		return cp437Low[c]
	case c < 0x80:
		return rune(c)
	default:
		return cp437High[c-0x80]
	}
}

// Screen is a decoded DOS text screen.
type Screen struct {
	Width, Height int

	chars []byte
	attrs []byte
}

// ParseScreen decodes a screen chunk.
func ParseScreen(chunk []byte) (*Screen, error) {
	want := screenDataOffset + ScreenWidth*ScreenHeight*2
	if len(chunk) < want {
		return nil, fmt.Errorf("screen chunk too small: got %d bytes, want >= %d", len(chunk), want)
	}

	s := &Screen{
		Width:  ScreenWidth,
		Height: ScreenHeight,
		chars:  make([]byte, ScreenWidth*ScreenHeight),
		attrs:  make([]byte, ScreenWidth*ScreenHeight),
	}
	for i := range s.chars {
		s.chars[i] = chunk[screenDataOffset+i*2]
		s.attrs[i] = chunk[screenDataOffset+i*2+1]
	}
	return s, nil
}

// Screen decodes one text screen, counted from the start of the screens
// partition.
func (a *Archive) Screen(index int) (*Screen, error) {
	p, err := a.Partition("screens")
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= p.Count {
		return nil, fmt.Errorf("screen index out of range: %d", index)
	}
	chunk, err := a.Chunk(p.Start + index)
	if err != nil {
		return nil, err
	}
	return ParseScreen(chunk)
}

// Char returns the CP437 character byte at the passed cell.
func (s *Screen) Char(x, y int) byte {
	return s.chars[y*s.Width+x]
}

// Attr returns the attribute byte at the passed cell.
func (s *Screen) Attr(x, y int) byte {
	return s.attrs[y*s.Width+x]
}

// Rune returns the character at the passed cell decoded to Unicode.
func (s *Screen) Rune(x, y int) rune {
	return cp437ToRune(s.Char(x, y))
}

// Foreground returns the text color of the passed cell.
func (s *Screen) Foreground(x, y int) color.Color {
	return CGAPalette[s.Attr(x, y)&0x0F]
}

// Background returns the background color of the passed cell. The top
// attribute bit selects blinking, not a bright background.
func (s *Screen) Background(x, y int) color.Color {
	return CGAPalette[(s.Attr(x, y)>>4)&0x07]
}

// Blink reports whether the passed cell has the blink attribute set.
func (s *Screen) Blink(x, y int) bool {
	return s.Attr(x, y)&0x80 != 0
}

// Text renders the screen as plain Unicode text, one line per row.
func (s *Screen) Text() string {
	var b strings.Builder
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			b.WriteRune(s.Rune(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
