// Package wav writes RIFF WAVE files holding mono 8-bit unsigned PCM,
// the native form of the digitized and synthesized sounds in the data
// files.
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

type riffHeader struct {
	ChunkID   [4]byte
	ChunkSize uint32
	Format    [4]byte

	FmtID         [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	DataID   [4]byte
	DataSize uint32
}

// Write serializes samples as a mono 8-bit unsigned PCM WAVE file at
// the passed sample rate.
func Write(w io.Writer, rate int, samples []byte) error {
	if rate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", rate)
	}

	h := riffHeader{
		ChunkID:   [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize: uint32(36 + len(samples)),
		Format:    [4]byte{'W', 'A', 'V', 'E'},

		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1, // PCM
		NumChannels:   1,
		SampleRate:    uint32(rate),
		ByteRate:      uint32(rate),
		BlockAlign:    1,
		BitsPerSample: 8,

		DataID:   [4]byte{'d', 'a', 't', 'a'},
		DataSize: uint32(len(samples)),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("could not write wave header: %v", err)
	}
	if _, err := w.Write(samples); err != nil {
		return fmt.Errorf("could not write wave samples: %v", err)
	}
	return nil
}
