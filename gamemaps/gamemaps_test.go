package gamemaps

import (
	"bytes"
	"encoding/binary"
	"testing"

	"badc0de.net/pkg/go-wolf/compress"
	"badc0de.net/pkg/go-wolf/wtesting"
)

const testRLEWTag = 0xABCD

// compressPlane applies the writer side of the plane pipeline: RLEW with
// its leading expanded-size word, then Carmack, then the stored Carmack
// expanded-size word.
func compressPlane(t *testing.T, plain []byte) []byte {
	t.Helper()

	rlew, err := compress.RLEWCompress(plain, testRLEWTag)
	if err != nil {
		t.Fatalf("RLEWCompress: %v", err)
	}
	inner := &bytes.Buffer{}
	binary.Write(inner, binary.LittleEndian, uint16(len(plain)))
	inner.Write(rlew)

	carmack, err := compress.CarmackCompress(inner.Bytes())
	if err != nil {
		t.Fatalf("CarmackCompress: %v", err)
	}
	stored := &bytes.Buffer{}
	binary.Write(stored, binary.LittleEndian, uint16(inner.Len()))
	stored.Write(carmack)
	return stored.Bytes()
}

// buildTestArchive assembles MAPHEAD and GAMEMAPS with one 8x8 map.
func buildTestArchive(t *testing.T) (data, head *bytes.Reader, planes [][]byte) {
	t.Helper()

	const w, h = 8, 8
	plane0 := make([]byte, w*h*2)
	for i := 0; i < w*h; i++ {
		tile := uint16(1)
		if i%9 == 0 {
			tile = uint16(i)
		}
		binary.LittleEndian.PutUint16(plane0[i*2:], tile)
	}
	plane1 := make([]byte, w*h*2)
	binary.LittleEndian.PutUint16(plane1[(3*w+4)*2:], 19) // an actor at (4,3)
	plane2 := make([]byte, w*h*2)

	planes = [][]byte{plane0, plane1, plane2}
	stored := make([][]byte, len(planes))
	for i, p := range planes {
		stored[i] = compressPlane(t, p)
	}

	gamemaps := &bytes.Buffer{}
	gamemaps.WriteString("TED5v1.0") // loader never inspects this
	headerOffset := gamemaps.Len()
	headerSize := 4*PlaneCount + 2*PlaneCount + 2 + 2 + 16

	offset := headerOffset + headerSize
	var name [16]byte
	copy(name[:], "TESTMAP")
	for _, s := range stored {
		binary.Write(gamemaps, binary.LittleEndian, uint32(offset))
		offset += len(s)
	}
	for _, s := range stored {
		binary.Write(gamemaps, binary.LittleEndian, uint16(len(s)))
	}
	binary.Write(gamemaps, binary.LittleEndian, uint16(w))
	binary.Write(gamemaps, binary.LittleEndian, uint16(h))
	gamemaps.Write(name[:])
	for _, s := range stored {
		gamemaps.Write(s)
	}

	maphead := &bytes.Buffer{}
	binary.Write(maphead, binary.LittleEndian, uint16(testRLEWTag))
	binary.Write(maphead, binary.LittleEndian, uint32(headerOffset)) // map 0
	binary.Write(maphead, binary.LittleEndian, uint32(0))            // empty slot

	return bytes.NewReader(gamemaps.Bytes()), bytes.NewReader(maphead.Bytes()), planes
}

func TestNew(t *testing.T) {
	data, head, _ := buildTestArchive(t)
	a, err := New(data, head)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wtesting.AssertEqualInt(t, "map count", a.MapCount(), 2)
	wtesting.AssertEqualUint16(t, "rlew tag", a.RLEWTag(), testRLEWTag)
	if !a.Present(0) {
		t.Error("map 0 should be present")
	}
	if a.Present(1) {
		t.Error("map 1 should be an empty slot")
	}
}

func TestTileMap(t *testing.T) {
	data, head, planes := buildTestArchive(t)
	a, err := New(data, head)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m, err := a.TileMap(0)
	if err != nil {
		t.Fatalf("TileMap: %v", err)
	}

	wtesting.AssertEqualInt(t, "width", m.Width, 8)
	wtesting.AssertEqualInt(t, "height", m.Height, 8)
	wtesting.AssertEqualString(t, "name", m.Name, "TESTMAP")

	for i := 0; i < m.Width*m.Height; i++ {
		want := binary.LittleEndian.Uint16(planes[PlaneArchitecture][i*2:])
		if got := m.Planes[PlaneArchitecture][i]; got != want {
			t.Fatalf("architecture tile %d: got %d, want %d", i, got, want)
		}
	}
	wtesting.AssertEqualUint16(t, "actor at (4,3)", m.At(4, 3, PlaneObjects), 19)
	wtesting.AssertEqualUint16(t, "logic plane empty", m.At(0, 0, PlaneLogic), 0)
}

func TestTileMapEmptySlot(t *testing.T) {
	data, head, _ := buildTestArchive(t)
	a, err := New(data, head)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.TileMap(1); err == nil {
		t.Error("want error for empty map slot")
	}
	if _, err := a.TileMap(5); err == nil {
		t.Error("want error for out of range slot")
	}
}

func TestInBounds(t *testing.T) {
	m := &TileMap{Width: 8, Height: 8}
	if !m.InBounds(0, 0) || !m.InBounds(7, 7) {
		t.Error("corners should be in bounds")
	}
	if m.InBounds(-1, 0) || m.InBounds(8, 0) || m.InBounds(0, 8) {
		t.Error("outside coordinates should not be in bounds")
	}
}
