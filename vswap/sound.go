package vswap

// This file assembles digitized sounds out of their 4 KiB pages.

import (
	"fmt"
)

// SampledSound concatenates the pages of the digitized sound with the
// passed index (an index into SoundInfos, not a chunk index) and returns
// its raw 8-bit unsigned mono samples.
func (a *Archive) SampledSound(index int) ([]byte, error) {
	if index < 0 || index >= len(a.soundInfos) {
		return nil, fmt.Errorf("sampled sound index out of range: got %d, want < %d", index, len(a.soundInfos))
	}
	info := a.soundInfos[index]

	samples := make([]byte, 0, info.Length)
	remaining := info.Length
	for chunkIndex := a.soundsStart + info.Start; remaining > 0; chunkIndex++ {
		if chunkIndex >= a.ChunkCount() {
			return nil, fmt.Errorf("sampled sound %d runs past the archive", index)
		}
		chunk, err := a.Chunk(chunkIndex)
		if err != nil {
			return nil, err
		}
		if len(chunk) > remaining {
			chunk = chunk[:remaining]
		}
		samples = append(samples, chunk...)
		remaining -= len(chunk)
	}
	return samples, nil
}

// SampledSoundCount returns the number of digitized sounds described by
// the sound info table.
func (a *Archive) SampledSoundCount() int {
	return len(a.soundInfos)
}
