package vswap

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"testing"

	"badc0de.net/pkg/go-wolf/wl6"
	"badc0de.net/pkg/go-wolf/wtesting"
)

// buildTestArchive assembles a small but complete page file in memory:
// one texture, one sprite, two sound pages and the sound info table.
func buildTestArchive(t *testing.T) *bytes.Reader {
	t.Helper()

	texture := make([]byte, wl6.TextureWidth*wl6.TextureHeight)
	for i := range texture {
		texture[i] = byte(i)
	}

	// One column (x=30) with a single post covering y 10 and 11.
	sprite := &bytes.Buffer{}
	binary.Write(sprite, binary.LittleEndian, uint16(30)) // left
	binary.Write(sprite, binary.LittleEndian, uint16(30)) // right
	binary.Write(sprite, binary.LittleEndian, uint16(6))  // post list offset
	binary.Write(sprite, binary.LittleEndian, uint16(12<<1))
	binary.Write(sprite, binary.LittleEndian, int16(4)) // base: base+10 = 14
	binary.Write(sprite, binary.LittleEndian, uint16(10<<1))
	binary.Write(sprite, binary.LittleEndian, uint16(0)) // post list terminator
	sprite.WriteByte(5)                                  // pixel at y=10
	sprite.WriteByte(6)                                  // pixel at y=11

	sound0 := []byte{0x80, 0x81, 0x82, 0x83}
	sound1 := []byte{0x84, 0x85, 0x86, 0x87}

	soundTable := &bytes.Buffer{}
	binary.Write(soundTable, binary.LittleEndian, uint16(0)) // start page
	binary.Write(soundTable, binary.LittleEndian, uint16(6)) // length

	chunks := [][]byte{texture, sprite.Bytes(), sound0, sound1, soundTable.Bytes()}

	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint16(len(chunks))) // chunk count
	binary.Write(buf, binary.LittleEndian, uint16(1))           // sprites start
	binary.Write(buf, binary.LittleEndian, uint16(2))           // sounds start

	offset := uint32(6 + 4*len(chunks))
	for _, c := range chunks {
		binary.Write(buf, binary.LittleEndian, offset)
		offset += uint32(len(c))
	}
	for _, c := range chunks {
		buf.Write(c)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestNew(t *testing.T) {
	a, err := New(buildTestArchive(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wtesting.AssertEqualInt(t, "chunk count", a.ChunkCount(), 5)
	wtesting.AssertEqualInt(t, "sprites start", a.SpritesStart(), 1)
	wtesting.AssertEqualInt(t, "sounds start", a.SoundsStart(), 2)
	wtesting.AssertEqualInt(t, "texture count", a.TextureCount(), 1)
	wtesting.AssertEqualInt(t, "sprite count", a.SpriteCount(), 1)
	wtesting.AssertEqualInt(t, "sampled sound count", a.SampledSoundCount(), 1)
}

func TestTexture(t *testing.T) {
	a, err := New(buildTestArchive(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img, err := a.Texture(0)
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	b := img.Bounds()
	wtesting.AssertEqualInt(t, "width", b.Dx(), wl6.TextureWidth)
	wtesting.AssertEqualInt(t, "height", b.Dy(), wl6.TextureHeight)

	// Chunk byte x*64+y lands at pixel (x, y): the store is column-major.
	want := a.Palette[byte(3*64+7)]
	if got := img.At(3, 7); !sameColor(got, want) {
		t.Errorf("pixel (3,7): got %v, want %v", got, want)
	}
}

func TestSprite(t *testing.T) {
	a, err := New(buildTestArchive(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img, err := a.Sprite(0)
	if err != nil {
		t.Fatalf("Sprite: %v", err)
	}

	if got := img.At(30, 10); !sameColor(got, a.Palette[5]) {
		t.Errorf("pixel (30,10): got %v, want palette[5]", got)
	}
	if got := img.At(30, 11); !sameColor(got, a.Palette[6]) {
		t.Errorf("pixel (30,11): got %v, want palette[6]", got)
	}
	// Everything not covered by the post is the transparent color key.
	if _, _, _, alpha := img.At(0, 0).RGBA(); alpha != 0 {
		t.Errorf("pixel (0,0): got alpha %d, want 0", alpha)
	}
}

// Sprite indices count from the first sprite page, not from page zero,
// so iterating [0, SpriteCount) decodes every sprite.
func TestSpriteIndexRelative(t *testing.T) {
	a, err := New(buildTestArchive(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < a.SpriteCount(); i++ {
		if _, err := a.Sprite(i); err != nil {
			t.Errorf("Sprite(%d): %v", i, err)
		}
	}
}

func TestSampledSound(t *testing.T) {
	a, err := New(buildTestArchive(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	samples, err := a.SampledSound(0)
	if err != nil {
		t.Fatalf("SampledSound: %v", err)
	}
	want := []byte{0x80, 0x81, 0x82, 0x83, 0x84, 0x85}
	if !bytes.Equal(samples, want) {
		t.Errorf("got %v, want %v", samples, want)
	}
}

func TestOutOfRange(t *testing.T) {
	a, err := New(buildTestArchive(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.Texture(1); err == nil {
		t.Error("want error for texture index in sprite range")
	}
	if _, err := a.Sprite(-1); err == nil {
		t.Error("want error for negative sprite index")
	}
	if _, err := a.Sprite(1); err == nil {
		t.Error("want error for sprite index past the sprite range")
	}
	if _, err := a.SampledSound(1); err == nil {
		t.Error("want error for sound index out of range")
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
