package compress

import (
	"bytes"
	"testing"
)

// buildDictionary constructs a dictionary plus bit strings for the passed
// sample, the way the original archiving tool did before writing VGADICT.
func buildDictionary(t *testing.T, sample []byte) ([]HuffmanNode, []int, []uint32) {
	t.Helper()
	counts := HuffmanCount(sample)
	// Every symbol needs a nonzero probability for the tree to span all
	// byte values.
	for i := range counts {
		counts[i]++
	}
	nodes, err := HuffmanBuildNodes(counts)
	if err != nil {
		t.Fatalf("HuffmanBuildNodes: %v", err)
	}
	shifts, masks, err := HuffmanBuildMasks(counts, nodes)
	if err != nil {
		t.Fatalf("HuffmanBuildMasks: %v", err)
	}
	return nodes, shifts, masks
}

func TestHuffmanRoundTrip(t *testing.T) {
	sample := []byte("the quick brown fox jumps over the lazy dog, twice over: " +
		"the quick brown fox jumps over the lazy dog")
	nodes, shifts, masks := buildDictionary(t, sample)

	compressed := HuffmanCompress(sample, shifts, masks)
	expanded, err := HuffmanExpand(compressed, len(sample), nodes)
	if err != nil {
		t.Fatalf("HuffmanExpand: %v", err)
	}
	if !bytes.Equal(expanded, sample) {
		t.Errorf("round trip mismatch: got %q, want %q", expanded, sample)
	}
}

func TestHuffmanExpandZeroPads(t *testing.T) {
	sample := []byte{0, 1, 2, 3, 0, 1, 2, 3}
	nodes, shifts, masks := buildDictionary(t, sample)

	compressed := HuffmanCompress(sample, shifts, masks)
	// Ask for more than was encoded; the tail must be zero-filled.
	expanded, err := HuffmanExpand(compressed, len(sample)+4, nodes)
	if err != nil {
		t.Fatalf("HuffmanExpand: %v", err)
	}
	if len(expanded) != len(sample)+4 {
		t.Fatalf("got %d bytes, want %d", len(expanded), len(sample)+4)
	}
	for i, b := range expanded[len(sample):] {
		if b != 0 {
			t.Errorf("pad byte %d: got %#x, want 0", i, b)
		}
	}
}

func TestReadHuffmanNodes(t *testing.T) {
	raw := make([]byte, HuffmanNodeCount*4)
	raw[0] = 0x41 // node 0 left
	raw[2] = 0x42 // node 0 right
	nodes, err := ReadHuffmanNodes(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadHuffmanNodes: %v", err)
	}
	if len(nodes) != HuffmanNodeCount {
		t.Fatalf("got %d nodes, want %d", len(nodes), HuffmanNodeCount)
	}
	if nodes[0].Left != 0x41 || nodes[0].Right != 0x42 {
		t.Errorf("node 0: got %+v, want {65 66}", nodes[0])
	}
}

func TestHuffmanExpandNegativeSize(t *testing.T) {
	if _, err := HuffmanExpand(nil, -1, make([]HuffmanNode, HuffmanNodeCount)); err == nil {
		t.Error("want error for negative expanded size")
	}
}
