package compress

import (
	"bytes"
	"testing"
)

func words(ws ...uint16) []byte {
	out := make([]byte, 0, len(ws)*2)
	for _, w := range ws {
		out = append(out, byte(w), byte(w>>8))
	}
	return out
}

func TestCarmackRoundTrip(t *testing.T) {
	// A plane-like buffer with repetition for near pointers and distant
	// repeats for far pointers.
	plain := words(
		1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4,
		90, 90, 90, 90, 90, 90,
		1, 2, 3, 4,
		7, 8, 9,
	)

	compressed, err := CarmackCompress(plain)
	if err != nil {
		t.Fatalf("CarmackCompress: %v", err)
	}
	expanded, err := CarmackExpand(compressed, len(plain))
	if err != nil {
		t.Fatalf("CarmackExpand: %v", err)
	}
	if !bytes.Equal(expanded, plain) {
		t.Errorf("round trip mismatch:\ngot  %v\nwant %v", expanded, plain)
	}
}

func TestCarmackEscapedLiterals(t *testing.T) {
	// Words whose high byte is a tag must survive via zero-count escapes.
	plain := words(0xA700, 0xA812, 0xA7FF, 0x0001)

	compressed, err := CarmackCompress(plain)
	if err != nil {
		t.Fatalf("CarmackCompress: %v", err)
	}
	expanded, err := CarmackExpand(compressed, len(plain))
	if err != nil {
		t.Fatalf("CarmackExpand: %v", err)
	}
	if !bytes.Equal(expanded, plain) {
		t.Errorf("round trip mismatch:\ngot  %v\nwant %v", expanded, plain)
	}
}

func TestCarmackCompressMatchBytes(t *testing.T) {
	// The matcher leaves the final word of a fully matching candidate
	// out of the run: 1,2,3 repeated emits a 2-word near pointer plus a
	// literal, not a 3-word pointer.
	plain := words(1, 2, 3, 1, 2, 3)
	want := []byte{
		0x01, 0x00,
		0x02, 0x00,
		0x03, 0x00,
		2, carmackNearTag, 3,
		0x03, 0x00,
	}

	got, err := CarmackCompress(plain)
	if err != nil {
		t.Fatalf("CarmackCompress: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}

	expanded, err := CarmackExpand(got, len(plain))
	if err != nil {
		t.Fatalf("CarmackExpand: %v", err)
	}
	if !bytes.Equal(expanded, plain) {
		t.Errorf("round trip mismatch: got %v, want %v", expanded, plain)
	}
}

func TestCarmackExpandNearPointer(t *testing.T) {
	// Hand-built stream: literal 0x1234, 0x5678, then a near pointer
	// repeating both words from 2 words back.
	stream := []byte{
		0x34, 0x12,
		0x78, 0x56,
		2, carmackNearTag, 2,
	}
	want := words(0x1234, 0x5678, 0x1234, 0x5678)

	got, err := CarmackExpand(stream, len(want))
	if err != nil {
		t.Fatalf("CarmackExpand: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCarmackExpandBadPointer(t *testing.T) {
	// A near pointer with distance 0 points at the write position itself;
	// the copy has no source and the stream must be rejected, not read
	// past the output.
	stream := []byte{
		0x34, 0x12,
		1, carmackNearTag, 0,
	}
	if _, err := CarmackExpand(stream, 4); err == nil {
		t.Error("want error for a zero-distance near pointer")
	}

	// A far pointer at the current word offset is the same degenerate
	// self-reference.
	stream = []byte{
		0x34, 0x12,
		1, carmackFarTag, 1, 0,
	}
	if _, err := CarmackExpand(stream, 4); err == nil {
		t.Error("want error for a far pointer at the write position")
	}
}

func TestCarmackExpandBadSizes(t *testing.T) {
	if _, err := CarmackExpand(nil, 1); err == nil {
		t.Error("want error for odd expanded size")
	}
	if _, err := CarmackExpand(nil, 0); err == nil {
		t.Error("want error for empty expanded size")
	}
	if _, err := CarmackCompress([]byte{1, 2, 3}); err == nil {
		t.Error("want error for odd input size")
	}
}

func TestRLEWRoundTrip(t *testing.T) {
	const tag = 0xABCD
	plain := words(5, 5, 5, 5, 5, 5, 1, 2, 3, tag, 9, 9)

	compressed, err := RLEWCompress(plain, tag)
	if err != nil {
		t.Fatalf("RLEWCompress: %v", err)
	}
	expanded, err := RLEWExpand(compressed, tag)
	if err != nil {
		t.Fatalf("RLEWExpand: %v", err)
	}
	if !bytes.Equal(expanded, plain) {
		t.Errorf("round trip mismatch:\ngot  %v\nwant %v", expanded, plain)
	}
}

func TestRLEWExpandRun(t *testing.T) {
	const tag = 0xFEFE
	stream := words(tag, 4, 7, 42)
	want := words(7, 7, 7, 7, 42)

	got, err := RLEWExpand(stream, tag)
	if err != nil {
		t.Fatalf("RLEWExpand: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRLEBRoundTrip(t *testing.T) {
	const tag = 0xFE
	plain := []byte{1, 1, 1, 1, 1, 2, 3, tag, 4, 4}

	if got := RLEBExpand(RLEBCompress(plain, tag), tag); !bytes.Equal(got, plain) {
		t.Errorf("round trip mismatch: got %v, want %v", got, plain)
	}
}
