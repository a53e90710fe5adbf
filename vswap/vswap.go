package vswap

// This file contains code directly related to parsing the page file
// layout: header, chunk offset table, and the trailing sound info table.

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-wolf/wl6"
)

type header struct {
	ChunkCount   uint16
	SpritesStart uint16
	SoundsStart  uint16
}

// SoundInfo locates one digitized sound within the sound page range.
// Start is relative to the archive's SoundsStart; Length is in bytes and
// may exceed 64 KiB for sounds spanning several pages.
type SoundInfo struct {
	Start  int
	Length int
}

// Archive is an open VSWAP page file.
type Archive struct {
	reader io.ReadSeeker

	// Palette used when decoding textures and sprites. Defaults to the
	// WL6 palette; callers with a different data set swap it out before
	// decoding.
	Palette color.Palette

	offsets      []int64 // chunk count + 1 entries; last is the data size
	spritesStart int
	soundsStart  int
	soundInfos   []SoundInfo
}

// New reads the page file header and offset table from the given
// io.ReadSeeker and indexes the trailing sound info table.
//
// The reader stays in use for chunk access afterwards; the caller keeps
// ownership and closes it once done with the archive.
func New(r io.ReadSeeker) (*Archive, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("could not measure vswap: %v", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not rewind vswap: %v", err)
	}

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("could not read vswap header: %v", err)
	}
	if h.ChunkCount == 0 {
		return nil, fmt.Errorf("vswap has no chunks")
	}

	rawOffsets := make([]uint32, h.ChunkCount)
	if err := binary.Read(r, binary.LittleEndian, rawOffsets); err != nil {
		return nil, fmt.Errorf("could not read vswap offsets: %v", err)
	}

	offsets := make([]int64, h.ChunkCount+1)
	for i, o := range rawOffsets {
		offsets[i] = int64(o)
	}
	offsets[h.ChunkCount] = size

	// Sparse (zero) offsets mark empty chunks; they inherit the next
	// chunk's offset so sizes come out as zero.
	for i := int(h.ChunkCount) - 1; i >= 0; i-- {
		if offsets[i] == 0 {
			offsets[i] = offsets[i+1]
		}
	}

	pagesOffset := offsets[0]
	for i := 0; i < int(h.ChunkCount); i++ {
		if offsets[i] < pagesOffset || offsets[i] > size {
			return nil, fmt.Errorf("inconsistent vswap offset paging: index=%d", i)
		}
		if offsets[i] > offsets[i+1] {
			return nil, fmt.Errorf("inconsistent vswap offset ordering: index=%d", i)
		}
	}

	a := &Archive{
		reader:       r,
		Palette:      wl6.Palette,
		offsets:      offsets,
		spritesStart: int(h.SpritesStart),
		soundsStart:  int(h.SoundsStart),
	}
	if err := a.readSoundInfos(); err != nil {
		return nil, err
	}

	glog.V(1).Infof("vswap: %d chunks, sprites at %d, sounds at %d, %d digitized sounds",
		h.ChunkCount, h.SpritesStart, h.SoundsStart, len(a.soundInfos))
	return a, nil
}

// ChunkCount returns the number of pages in the archive.
func (a *Archive) ChunkCount() int {
	return len(a.offsets) - 1
}

// SpritesStart returns the index of the first sprite page.
func (a *Archive) SpritesStart() int {
	return a.spritesStart
}

// SoundsStart returns the index of the first digitized sound page.
func (a *Archive) SoundsStart() int {
	return a.soundsStart
}

// SoundInfos returns the digitized sound table parsed from the final
// chunk.
func (a *Archive) SoundInfos() []SoundInfo {
	return a.soundInfos
}

// Sizeof returns the stored size of a chunk. Empty pages report zero.
func (a *Archive) Sizeof(index int) (int, error) {
	if index < 0 || index >= a.ChunkCount() {
		return 0, fmt.Errorf("chunk index out of range: %d", index)
	}
	return int(a.offsets[index+1] - a.offsets[index]), nil
}

// Chunk returns the raw bytes of one page. Empty pages yield an empty
// slice.
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
	chunk := make([]byte, size)
	if _, err := io.ReadFull(a.reader, chunk); err != nil {
		return nil, fmt.Errorf("could not read chunk %d: %v", index, err)
	}
	return chunk, nil
}

// readSoundInfos parses the (start, length) table stored in the final
// chunk and fixes up lengths for sounds spanning multiple 4 KiB pages,
// the same way the original tools did.
func (a *Archive) readSoundInfos() error {
	chunkCount := a.ChunkCount()
	last, err := a.Chunk(chunkCount - 1)
	if err != nil {
		return fmt.Errorf("could not read sound info table: %v", err)
	}
	if len(last)%4 != 0 {
		return fmt.Errorf("sound info table size must be divisible by 4: %d", len(last))
	}

	count := len(last) / 4
	type bound struct{ start, length int }
	bounds := make([]bound, count+1)
	for i := 0; i < count; i++ {
		bounds[i] = bound{
			start:  int(binary.LittleEndian.Uint16(last[i*4:])),
			length: int(binary.LittleEndian.Uint16(last[i*4+2:])),
		}
	}
	tailLength := 0
	if count > 0 {
		tailLength = bounds[count-1].length
	}
	bounds[count] = bound{start: chunkCount - a.soundsStart, length: tailLength}

	var infos []SoundInfo
	for i := 0; i < count; i++ {
		start, length := bounds[i].start, bounds[i].length
		if start >= chunkCount-1 {
			a.soundInfos = infos
			return nil
		}

		end := bounds[i+1].start
		if end == 0 || end+a.soundsStart > chunkCount-1 {
			end = chunkCount - 1
		} else {
			end += a.soundsStart
		}

		actual := 0
		for j := a.soundsStart + start; j < end; j++ {
			size, err := a.Sizeof(j)
			if err != nil {
				return err
			}
			actual += size
		}
		// Lengths are stored modulo 64 KiB; reconstruct the high word
		// from the page sizes.
		if actual&0xFFFF0000 != 0 && actual&0xFFFF < length {
			actual -= 0x10000
		}
		actual = actual&0xFFFF0000 | length

		infos = append(infos, SoundInfo{Start: start, Length: actual})
	}

	a.soundInfos = infos
	return nil
}
