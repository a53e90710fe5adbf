package maprender

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"testing"

	"badc0de.net/pkg/go-wolf/gamemaps"
	"badc0de.net/pkg/go-wolf/vswap"
	"badc0de.net/pkg/go-wolf/wl6"
)

type fakeAssets struct {
	textures map[int]color.RGBA
	sprites  map[int]color.RGBA
}

func uniformImage(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func (f *fakeAssets) Texture(index int) (image.Image, error) {
	c, ok := f.textures[index]
	if !ok {
		return nil, fmt.Errorf("no texture %d", index)
	}
	return uniformImage(c), nil
}

func (f *fakeAssets) Sprite(index int) (image.Image, error) {
	c, ok := f.sprites[index]
	if !ok {
		return nil, fmt.Errorf("no sprite %d", index)
	}
	return uniformImage(c), nil
}

func testMap() *gamemaps.TileMap {
	m := &gamemaps.TileMap{
		Width:  4,
		Height: 4,
		Name:   "Test Level",
		Planes: make([][]uint16, gamemaps.PlaneCount),
	}
	for p := range m.Planes {
		m.Planes[p] = make([]uint16, m.Width*m.Height)
	}
	for x := 0; x < m.Width; x++ {
		m.Set(x, 0, gamemaps.PlaneArchitecture, 3) // wall code 3
	}
	m.Set(1, 1, gamemaps.PlaneArchitecture, 90) // door
	m.Set(2, 2, gamemaps.PlaneObjects, 23)      // first decoration
	return m
}

func TestRender(t *testing.T) {
	red := color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	green := color.RGBA{0x00, 0xFF, 0x00, 0xFF}
	assets := &fakeAssets{
		textures: map[int]color.RGBA{4: red}, // (3-1)*2
		sprites:  map[int]color.RGBA{2: green},
	}

	const tileSize = 8
	img, err := Render(assets, testMap(), tileSize)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := img.Bounds(); got.Dx() != 4*tileSize || got.Dy() != 4*tileSize {
		t.Fatalf("bounds = %v, want 32x32", got)
	}

	at := func(tx, ty int) color.RGBA {
		r, g, b, a := img.At(tx*tileSize+tileSize/2, ty*tileSize+tileSize/2).RGBA()
		return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}

	if got := at(0, 0); got != red {
		t.Errorf("wall tile = %v, want %v", got, red)
	}
	if got := at(1, 1); got != doorColor {
		t.Errorf("door tile = %v, want %v", got, doorColor)
	}
	if got := at(2, 2); got != green {
		t.Errorf("decoration tile = %v, want %v", got, green)
	}
	if got := at(3, 3); got != floorColor {
		t.Errorf("floor tile = %v, want %v", got, floorColor)
	}
}

// solidSpriteChunk covers every pixel with the passed palette index. All
// columns share one full-height post list.
func solidSpriteChunk(pixel byte) []byte {
	const (
		postList = 4 + wl6.SpriteWidth*2 // past left, right and the offsets
		pixels   = postList + 8         // past the post record and terminator
	)
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint16(0))                 // left
	binary.Write(buf, binary.LittleEndian, uint16(wl6.SpriteWidth-1)) // right
	for i := 0; i < wl6.SpriteWidth; i++ {
		binary.Write(buf, binary.LittleEndian, uint16(postList))
	}
	binary.Write(buf, binary.LittleEndian, uint16(wl6.SpriteHeight<<1))
	binary.Write(buf, binary.LittleEndian, int16(pixels)) // base
	binary.Write(buf, binary.LittleEndian, uint16(0))     // startY
	binary.Write(buf, binary.LittleEndian, uint16(0))     // post list terminator
	for i := 0; i < wl6.SpriteHeight; i++ {
		buf.WriteByte(pixel)
	}
	return buf.Bytes()
}

// buildVSwap assembles a page file with the passed chunks, the first
// spritesStart of which are textures.
func buildVSwap(t *testing.T, spritesStart, soundsStart int, chunks [][]byte) *vswap.Archive {
	t.Helper()

	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint16(len(chunks)))
	binary.Write(buf, binary.LittleEndian, uint16(spritesStart))
	binary.Write(buf, binary.LittleEndian, uint16(soundsStart))
	offset := uint32(6 + 4*len(chunks))
	for _, c := range chunks {
		binary.Write(buf, binary.LittleEndian, offset)
		offset += uint32(len(c))
	}
	for _, c := range chunks {
		buf.Write(c)
	}

	a, err := vswap.New(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("vswap.New: %v", err)
	}
	return a
}

// Rendering against a real page file exercises the index translation:
// wall codes address textures by page, objects address sprites counted
// from the sprites start.
func TestRenderFromVSwap(t *testing.T) {
	texture := make([]byte, wl6.TextureWidth*wl6.TextureHeight)
	for i := range texture {
		texture[i] = 7
	}
	chunks := [][]byte{
		nil, nil, nil, nil, texture, // wall code 3 decodes texture (3-1)*2 = 4
		solidSpriteChunk(0x30), solidSpriteChunk(0x40), solidSpriteChunk(0x50),
		nil, // empty sound info table
	}
	a := buildVSwap(t, 5, 8, chunks)

	const tileSize = 8
	img, err := Render(a, testMap(), tileSize)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	at := func(tx, ty int) color.Color {
		return img.At(tx*tileSize+tileSize/2, ty*tileSize+tileSize/2)
	}
	if got, want := at(0, 0), a.Palette[7]; !sameColor(got, want) {
		t.Errorf("wall tile = %v, want %v", got, want)
	}
	// Decoration 23 draws sprite 2, the third sprite page.
	if got, want := at(2, 2), a.Palette[0x50]; !sameColor(got, want) {
		t.Errorf("decoration tile = %v, want %v", got, want)
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestRenderMissingTexture(t *testing.T) {
	assets := &fakeAssets{}
	img, err := Render(assets, testMap(), 4)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	r, g, b, _ := img.At(2, 2).RGBA()
	got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xFF}
	if got != wallColor {
		t.Errorf("missing-texture wall = %v, want %v", got, wallColor)
	}
}
