// Package vgagraph reads the VGAGRAPH graphics archive and its two
// companion files: VGADICT, holding the Huffman dictionary, and VGAHEAD,
// holding 3-byte chunk offsets.
//
// Chunks are Huffman compressed. Most carry their expanded size as a
// leading uint32; the tile chunks do not, their size is implied by the
// partition they live in.
package vgagraph

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-wolf/compress"
	"badc0de.net/pkg/go-wolf/wl6"
)

// headerAbsent marks an unused slot in the VGAHEAD offset table.
const headerAbsent = 0xFFFFFF

// Archive is an open VGAGRAPH archive.
type Archive struct {
	reader io.ReadSeeker

	// Palette used when decoding pics, tiles and fonts. Defaults to the
	// WL6 palette.
	Palette color.Palette

	nodes      []compress.HuffmanNode
	offsets    []int64 // chunk count + 1 entries; last is the data size
	partitions []wl6.GraphicsPartition
	picSizes   [][2]int
}

// New indexes a VGAGRAPH archive. data, head and dict carry the
// VGAGRAPH, VGAHEAD and VGADICT file contents; partitions describes the
// chunk layout of the data set (wl6.GraphicsPartitions for the retail
// six-episode files).
//
// The data reader stays in use for chunk access afterwards; head and
// dict are fully consumed before New returns.
func New(data, head, dict io.ReadSeeker, partitions []wl6.GraphicsPartition) (*Archive, error) {
	nodes, err := compress.ReadHuffmanNodes(dict)
	if err != nil {
		return nil, fmt.Errorf("could not read vgagraph dictionary: %v", err)
	}

	headSize, err := head.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("could not measure vgagraph header: %v", err)
	}
	if headSize%3 != 0 {
		return nil, fmt.Errorf("vgagraph header size must be divisible by 3: %d", headSize)
	}
	if _, err := head.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not rewind vgagraph header: %v", err)
	}

	size, err := data.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("could not measure vgagraph: %v", err)
	}

	chunkCount := int(headSize / 3)
	raw := make([]byte, headSize)
	if _, err := io.ReadFull(head, raw); err != nil {
		return nil, fmt.Errorf("could not read vgagraph offsets: %v", err)
	}

	offsets := make([]int64, chunkCount+1)
	absent := make([]bool, chunkCount)
	for i := 0; i < chunkCount; i++ {
		o := int64(raw[i*3]) | int64(raw[i*3+1])<<8 | int64(raw[i*3+2])<<16
		if o >= headerAbsent {
			absent[i] = true
			continue
		}
		offsets[i] = o
	}
	offsets[chunkCount] = size

	// Absent chunks inherit the next chunk's offset so sizes come out
	// as zero.
	for i := chunkCount - 1; i >= 0; i-- {
		if absent[i] {
			offsets[i] = offsets[i+1]
		}
	}
	for i := 0; i < chunkCount; i++ {
		if offsets[i] > size {
			return nil, fmt.Errorf("inconsistent vgagraph offset paging: index=%d", i)
		}
		if offsets[i] > offsets[i+1] {
			return nil, fmt.Errorf("inconsistent vgagraph offset ordering: index=%d", i)
		}
	}

	a := &Archive{
		reader:     data,
		Palette:    wl6.Palette,
		nodes:      nodes,
		offsets:    offsets,
		partitions: partitions,
	}
	if err := a.readPicSizes(); err != nil {
		return nil, err
	}

	glog.V(1).Infof("vgagraph: %d chunks, %d pic sizes", chunkCount, len(a.picSizes))
	return a, nil
}

// ChunkCount returns the number of chunks in the archive.
func (a *Archive) ChunkCount() int {
	return len(a.offsets) - 1
}

// Find resolves the chunk index to the partition holding it. The tile8
// partitions store all their tiles in a single chunk, so only their
// first index resolves.
func (a *Archive) Find(index int) (wl6.GraphicsPartition, error) {
	for _, p := range a.partitions {
		count := p.Count
		if count > 0 && (p.Name == "tile8" || p.Name == "tile8m") {
			count = 1
		}
		if index >= p.Start && index < p.Start+count {
			return p, nil
		}
	}
	return wl6.GraphicsPartition{}, fmt.Errorf("chunk %d not covered by any partition", index)
}

// Partition returns the named partition of the archive's layout.
func (a *Archive) Partition(name string) (wl6.GraphicsPartition, error) {
	for _, p := range a.partitions {
		if p.Name == name {
			return p, nil
		}
	}
	return wl6.GraphicsPartition{}, fmt.Errorf("no partition named %q", name)
}

// Sizeof returns the stored (compressed) size of a chunk, including the
// expanded-size prefix where present. Absent chunks report zero.
func (a *Archive) Sizeof(index int) (int, error) {
	if index < 0 || index >= a.ChunkCount() {
		return 0, fmt.Errorf("chunk index out of range: %d", index)
	}
	return int(a.offsets[index+1] - a.offsets[index]), nil
}

// impliedSize returns the expanded size of chunks that carry no size
// prefix. Tile chunks hold 8-bit pixels, masked tile chunks twice that.
func impliedSize(p wl6.GraphicsPartition) (int, bool) {
	switch p.Name {
	case "tile8":
		return 8 * 8 * p.Count, true
	case "tile8m":
		return 8 * 8 * 2 * p.Count, true
	case "tile16":
		return 16 * 16, true
	case "tile16m":
		return 16 * 16 * 2, true
	case "tile32":
		return 32 * 32, true
	case "tile32m":
		return 32 * 32 * 2, true
	}
	return 0, false
}

// Chunk returns the Huffman-expanded bytes of one chunk. Absent chunks
// yield an empty slice.
func (a *Archive) Chunk(index int) ([]byte, error) {
	size, err := a.Sizeof(index)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	if _, err := a.reader.Seek(a.offsets[index], io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not seek to chunk %d: %v", index, err)
	}

	p, err := a.Find(index)
	if err != nil {
		return nil, err
	}

	expandedSize, implied := impliedSize(p)
	if !implied {
		var prefix uint32
		if err := binary.Read(a.reader, binary.LittleEndian, &prefix); err != nil {
			return nil, fmt.Errorf("could not read size of chunk %d: %v", index, err)
		}
		expandedSize = int(prefix)
		size -= 4
	}

	compressed := make([]byte, size)
	if _, err := io.ReadFull(a.reader, compressed); err != nil {
		return nil, fmt.Errorf("could not read chunk %d: %v", index, err)
	}
	chunk, err := compress.HuffmanExpand(compressed, expandedSize, a.nodes)
	if err != nil {
		return nil, fmt.Errorf("could not expand chunk %d: %v", index, err)
	}
	return chunk, nil
}

// TextArt returns the chunk with the passed index decoded as text. Used
// for the helpart and endart chunks, which hold plain ASCII markup.
func (a *Archive) TextArt(index int) (string, error) {
	chunk, err := a.Chunk(index)
	if err != nil {
		return "", err
	}
	return string(chunk), nil
}

// readPicSizes parses the struct chunk: one uint16 width/height pair per
// pic in the pics partition.
func (a *Archive) readPicSizes() error {
	structPartition, err := a.Partition("struct")
	if err != nil {
		return err
	}
	pics, err := a.Partition("pics")
	if err != nil {
		return err
	}

	chunk, err := a.Chunk(structPartition.Start)
	if err != nil {
		return fmt.Errorf("could not read pic size table: %v", err)
	}
	if len(chunk) < pics.Count*4 {
		return fmt.Errorf("pic size table too small: got %d bytes, want >= %d", len(chunk), pics.Count*4)
	}

	a.picSizes = make([][2]int, pics.Count)
	for i := range a.picSizes {
		a.picSizes[i] = [2]int{
			int(binary.LittleEndian.Uint16(chunk[i*4:])),
			int(binary.LittleEndian.Uint16(chunk[i*4+2:])),
		}
	}
	return nil
}
