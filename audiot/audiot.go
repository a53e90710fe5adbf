// Package audiot reads the AUDIOT/AUDIOHED audio archive.
//
// AUDIOHED is a bare table of uint32 offsets into AUDIOT. The chunks
// split into four conventional partitions: PC speaker (buzzer) sounds,
// AdLib sounds, placeholders for the digitized sounds living in VSWAP,
// and IMF music. The partition layout is a property of the data set; see
// the wl6 package for the stock one.
package audiot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/glog"
)

type Archive struct {
	reader  io.ReadSeeker
	offsets []int64 // chunk count + 1 entries; last is the data size
}

// New indexes an AUDIOT archive. data reads the chunks; head reads the
// AUDIOHED contents.
func New(data, head io.ReadSeeker) (*Archive, error) {
	dataSize, err := data.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("could not measure audiot: %v", err)
	}
	headSize, err := head.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("could not measure audiohed: %v", err)
	}
	if _, err := head.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not rewind audiohed: %v", err)
	}
	if headSize%4 != 0 {
		return nil, fmt.Errorf("audiohed size must be divisible by 4: %d", headSize)
	}

	chunkCount := int(headSize / 4)
	rawOffsets := make([]uint32, chunkCount)
	if err := binary.Read(head, binary.LittleEndian, rawOffsets); err != nil {
		return nil, fmt.Errorf("could not read audio offsets: %v", err)
	}

	offsets := make([]int64, chunkCount+1)
	for i, o := range rawOffsets {
		offsets[i] = int64(o)
	}
	offsets[chunkCount] = dataSize

	for i := 0; i < chunkCount; i++ {
		if offsets[i] < 0 || offsets[i] > dataSize {
			return nil, fmt.Errorf("invalid audio offset: index=%d", i)
		}
		if offsets[i] > offsets[i+1] {
			return nil, fmt.Errorf("invalid audio offset ordering: index=%d", i)
		}
	}

	glog.V(1).Infof("audiot: %d chunks", chunkCount)
	return &Archive{reader: data, offsets: offsets}, nil
}

// ChunkCount returns the number of audio chunks.
func (a *Archive) ChunkCount() int {
	return len(a.offsets) - 1
}

// Chunk returns the raw bytes of one audio chunk.
func (a *Archive) Chunk(index int) ([]byte, error) {
	if index < 0 || index >= a.ChunkCount() {
		return nil, fmt.Errorf("audio chunk index out of range: %d", index)
	}
	size := int(a.offsets[index+1] - a.offsets[index])
	if size == 0 {
		return nil, nil
	}
	if _, err := a.reader.Seek(a.offsets[index], io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not seek to audio chunk %d: %v", index, err)
	}
	chunk := make([]byte, size)
	if _, err := io.ReadFull(a.reader, chunk); err != nil {
		return nil, fmt.Errorf("could not read audio chunk %d: %v", index, err)
	}
	return chunk, nil
}

// BuzzerSound parses the chunk with the passed index as a PC speaker
// sound.
func (a *Archive) BuzzerSound(index int) (*BuzzerSound, error) {
	chunk, err := a.Chunk(index)
	if err != nil {
		return nil, err
	}
	return &BuzzerSound{Dividers: chunk}, nil
}

// AdLibSound parses the chunk with the passed index as an AdLib sound.
func (a *Archive) AdLibSound(index int) (*AdLibSound, error) {
	chunk, err := a.Chunk(index)
	if err != nil {
		return nil, err
	}
	return ParseAdLibSound(chunk)
}

// Music parses the chunk with the passed index as an IMF music track.
func (a *Archive) Music(index int) (*Music, error) {
	chunk, err := a.Chunk(index)
	if err != nil {
		return nil, err
	}
	return ParseMusic(chunk)
}
