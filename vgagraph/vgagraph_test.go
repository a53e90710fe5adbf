package vgagraph

import (
	"bytes"
	"encoding/binary"
	"image"
	"strings"
	"testing"

	"badc0de.net/pkg/go-wolf/compress"
	"badc0de.net/pkg/go-wolf/wl6"
)

// testPartitions is a compact layout covering every chunk kind the
// decoder special-cases.
var testPartitions = []wl6.GraphicsPartition{
	{Name: "struct", Start: 0, Count: 1},
	{Name: "font", Start: 1, Count: 1},
	{Name: "pics", Start: 2, Count: 2},
	{Name: "tile8", Start: 4, Count: 2},
	{Name: "screens", Start: 5, Count: 1},
	{Name: "helpart", Start: 6, Count: 1},
}

func planarPic(width, height int) []byte {
	chunk := make([]byte, width*height)
	for i := range chunk {
		chunk[i] = byte(i)
	}
	return chunk
}

func fontChunk() []byte {
	chunk := make([]byte, 2+256*2+256)
	binary.LittleEndian.PutUint16(chunk, 2) // height

	// 'A': 3x2 glyph right after the header, 'B': 1x2 glyph after it.
	binary.LittleEndian.PutUint16(chunk[2+'A'*2:], uint16(len(chunk)))
	binary.LittleEndian.PutUint16(chunk[2+'B'*2:], uint16(len(chunk)+6))
	chunk[2+256*2+'A'] = 3
	chunk[2+256*2+'B'] = 1

	return append(chunk, 1, 0, 1, 0, 1, 0, 2, 2)
}

func screenChunk() []byte {
	chunk := make([]byte, 9+ScreenWidth*ScreenHeight*2)
	for i := 0; i < ScreenWidth*ScreenHeight; i++ {
		chunk[9+i*2] = ' '
		chunk[9+i*2+1] = 0x07
	}
	chunk[9] = 'H'
	chunk[10] = 0x1F
	chunk[11] = 0x03 // heart dingbat
	chunk[12] = 0x9E
	return chunk
}

// buildTestArchive Huffman-compresses the passed plain chunks into a
// VGAGRAPH/VGAHEAD/VGADICT triple and indexes it. A trailing absent
// header slot checks offset backfilling.
func buildTestArchive(t *testing.T, plains [][]byte) *Archive {
	t.Helper()

	counts := make([]int32, compress.HuffmanNodeCount)
	for _, plain := range plains {
		for _, b := range plain {
			counts[b]++
		}
	}
	for i := range counts {
		counts[i]++
	}
	nodes, err := compress.HuffmanBuildNodes(counts)
	if err != nil {
		t.Fatalf("HuffmanBuildNodes: %v", err)
	}
	shifts, masks, err := compress.HuffmanBuildMasks(counts, nodes)
	if err != nil {
		t.Fatalf("HuffmanBuildMasks: %v", err)
	}

	var data bytes.Buffer
	var head bytes.Buffer
	putOffset := func(o int) {
		head.Write([]byte{byte(o), byte(o >> 8), byte(o >> 16)})
	}
	for i, plain := range plains {
		putOffset(data.Len())
		if i != 4 { // every chunk but tile8 carries a size prefix
			binary.Write(&data, binary.LittleEndian, uint32(len(plain)))
		}
		data.Write(compress.HuffmanCompress(plain, shifts, masks))
	}
	putOffset(0xFFFFFF)

	var dict bytes.Buffer
	binary.Write(&dict, binary.LittleEndian, nodes)

	a, err := New(
		bytes.NewReader(data.Bytes()),
		bytes.NewReader(head.Bytes()),
		bytes.NewReader(dict.Bytes()),
		testPartitions)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func testArchive(t *testing.T) *Archive {
	t.Helper()
	return buildTestArchive(t, [][]byte{
		{4, 0, 2, 0, 8, 0, 1, 0}, // struct: pic sizes 4x2 and 8x1
		fontChunk(),
		planarPic(4, 2),
		planarPic(8, 1),
		planarPic(8, 16), // two 8x8 tiles back to back
		screenChunk(),
		[]byte("HELP\nART"),
	})
}

func TestNew(t *testing.T) {
	a := testArchive(t)
	if got, want := a.ChunkCount(), 8; got != want {
		t.Errorf("ChunkCount() = %d, want %d", got, want)
	}
	if got, want := a.PicCount(), 2; got != want {
		t.Errorf("PicCount() = %d, want %d", got, want)
	}

	// The absent trailing slot has no data of its own.
	size, err := a.Sizeof(7)
	if err != nil {
		t.Fatalf("Sizeof(7): %v", err)
	}
	if size != 0 {
		t.Errorf("Sizeof(7) = %d, want 0", size)
	}
	chunk, err := a.Chunk(7)
	if err != nil {
		t.Fatalf("Chunk(7): %v", err)
	}
	if len(chunk) != 0 {
		t.Errorf("Chunk(7) has %d bytes, want 0", len(chunk))
	}
}

func TestFind(t *testing.T) {
	a := testArchive(t)
	for index, want := range map[int]string{0: "struct", 1: "font", 3: "pics", 4: "tile8", 6: "helpart"} {
		p, err := a.Find(index)
		if err != nil {
			t.Fatalf("Find(%d): %v", index, err)
		}
		if p.Name != want {
			t.Errorf("Find(%d) = %q, want %q", index, p.Name, want)
		}
	}
	if _, err := a.Find(7); err == nil {
		t.Errorf("Find(7) resolved a chunk outside every partition")
	}
}

func TestPic(t *testing.T) {
	a := testArchive(t)

	pic0, err := a.Pic(0)
	if err != nil {
		t.Fatalf("Pic(0): %v", err)
	}
	img := pic0.(*image.Paletted)
	if got := img.Bounds(); got.Dx() != 4 || got.Dy() != 2 {
		t.Fatalf("Pic(0) bounds = %v, want 4x2", got)
	}
	// Mode Y interleave of a 4x2 pic: row 0 is every other source byte.
	want := [][4]byte{{0, 2, 4, 6}, {1, 3, 5, 7}}
	for y := range want {
		for x, index := range want[y] {
			if got := img.ColorIndexAt(x, y); got != index {
				t.Errorf("Pic(0) pixel (%d,%d) = palette index %d, want %d", x, y, got, index)
			}
		}
	}

	pic1, err := a.Pic(1)
	if err != nil {
		t.Fatalf("Pic(1): %v", err)
	}
	img = pic1.(*image.Paletted)
	if got := img.Bounds(); got.Dx() != 8 || got.Dy() != 1 {
		t.Fatalf("Pic(1) bounds = %v, want 8x1", got)
	}
	if got := img.ColorIndexAt(4, 0); got != 1 {
		t.Errorf("Pic(1) pixel (4,0) = palette index %d, want 1", got)
	}
}

func TestTile8(t *testing.T) {
	a := testArchive(t)
	if got, want := a.Tile8Count(), 2; got != want {
		t.Fatalf("Tile8Count() = %d, want %d", got, want)
	}

	tile, err := a.Tile8(1)
	if err != nil {
		t.Fatalf("Tile8(1): %v", err)
	}
	img := tile.(*image.Paletted)
	// The second tile starts 64 bytes in; (0,0) maps to its first byte,
	// (4,0) to its second, (1,0) to the second plane's first byte.
	for _, tc := range []struct {
		x, y int
		want uint8
	}{{0, 0, 64}, {4, 0, 65}, {1, 0, 80}} {
		if got := img.ColorIndexAt(tc.x, tc.y); got != tc.want {
			t.Errorf("Tile8(1) pixel (%d,%d) = palette index %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}

	if _, err := a.Tile8(2); err == nil {
		t.Errorf("Tile8(2) did not fail on a 2-tile archive")
	}
}

func TestFont(t *testing.T) {
	a := testArchive(t)
	f, err := a.Font(0)
	if err != nil {
		t.Fatalf("Font(0): %v", err)
	}
	if got, want := f.Height, 2; got != want {
		t.Errorf("Height = %d, want %d", got, want)
	}
	if got, want := f.Width('A'), 3; got != want {
		t.Errorf("Width('A') = %d, want %d", got, want)
	}
	if f.Glyph('C') != nil {
		t.Errorf("Glyph('C') is not nil for an uncovered character")
	}

	glyph := f.Glyph('A')
	if glyph == nil {
		t.Fatal("Glyph('A') is nil")
	}
	pix := glyph.(*image.Paletted)
	if got := pix.ColorIndexAt(0, 0); got != 1 {
		t.Errorf("glyph pixel (0,0) = palette index %d, want 1", got)
	}
	if got := pix.ColorIndexAt(1, 0); got != 0 {
		t.Errorf("glyph pixel (1,0) = palette index %d, want 0", got)
	}

	if got, want := f.Measure("ABBA"), 8; got != want {
		t.Errorf("Measure(\"ABBA\") = %d, want %d", got, want)
	}

	line := f.Render("AB")
	if got, want := line.Bounds().Dx(), 4; got != want {
		t.Errorf("Render(\"AB\") width = %d, want %d", got, want)
	}
	if got, want := line.Bounds().Dy(), f.Height; got != want {
		t.Errorf("Render(\"AB\") height = %d, want %d", got, want)
	}
}

func TestFontWrap(t *testing.T) {
	a := testArchive(t)
	f, err := a.Font(0)
	if err != nil {
		t.Fatalf("Font(0): %v", err)
	}

	got := f.Wrap("AA\nAAAB", 6)
	want := []string{"AA", "AA", "AB"}
	if len(got) != len(want) {
		t.Fatalf("Wrap = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Wrap line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScreen(t *testing.T) {
	a := testArchive(t)
	s, err := a.Screen(0)
	if err != nil {
		t.Fatalf("Screen(0): %v", err)
	}

	if got, want := s.Rune(0, 0), 'H'; got != want {
		t.Errorf("Rune(0,0) = %q, want %q", got, want)
	}
	if got, want := s.Rune(1, 0), '♥'; got != want {
		t.Errorf("Rune(1,0) = %q, want %q", got, want)
	}
	if got, want := s.Foreground(0, 0), CGAPalette[0x0F]; got != want {
		t.Errorf("Foreground(0,0) = %v, want %v", got, want)
	}
	if got, want := s.Background(0, 0), CGAPalette[0x01]; got != want {
		t.Errorf("Background(0,0) = %v, want %v", got, want)
	}
	if s.Blink(0, 0) {
		t.Errorf("Blink(0,0) is set")
	}
	if !s.Blink(1, 0) {
		t.Errorf("Blink(1,0) is not set")
	}

	text := s.Text()
	if !strings.HasPrefix(text, "H♥") {
		t.Errorf("Text() does not start with the written cells: %q", text[:20])
	}
}

func TestTextArt(t *testing.T) {
	a := testArchive(t)
	got, err := a.TextArt(6)
	if err != nil {
		t.Fatalf("TextArt(6): %v", err)
	}
	if want := "HELP\nART"; got != want {
		t.Errorf("TextArt(6) = %q, want %q", got, want)
	}
}
