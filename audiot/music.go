package audiot

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// IMFEvent is one OPL2 register write with a delay, measured in IMF
// cycles (700 Hz), to wait after applying it.
type IMFEvent struct {
	Register uint8
	Value    uint8
	Delay    uint16
}

// imfEventSize is the stored size of one event.
const imfEventSize = 4

// Music is a parsed AUDIOT music chunk: an IMF event stream.
type Music struct {
	Events []IMFEvent
}

// ParseMusic decodes an AUDIOT music chunk. The chunk starts with a
// 16-bit byte length of the event stream that follows.
func ParseMusic(chunk []byte) (*Music, error) {
	if len(chunk) < 2 {
		return nil, fmt.Errorf("music chunk too small: got %d, want >= 2", len(chunk))
	}
	length := int(binary.LittleEndian.Uint16(chunk))
	if length%imfEventSize != 0 {
		return nil, fmt.Errorf("music event stream length %d not a multiple of %d", length, imfEventSize)
	}
	data := chunk[2:]
	if length > len(data) {
		return nil, fmt.Errorf("music event stream truncated: header says %d bytes, have %d", length, len(data))
	}

	events := make([]IMFEvent, length/imfEventSize)
	if err := binary.Read(bytes.NewReader(data[:length]), binary.LittleEndian, &events); err != nil {
		return nil, fmt.Errorf("could not read music events: %v", err)
	}
	return &Music{Events: events}, nil
}

// ToIMF serializes the event stream back into an IMF chunk with its
// 16-bit byte length prefix.
func (m *Music) ToIMF() []byte {
	var buf bytes.Buffer
	buf.Grow(2 + len(m.Events)*imfEventSize)
	binary.Write(&buf, binary.LittleEndian, uint16(len(m.Events)*imfEventSize))
	binary.Write(&buf, binary.LittleEndian, m.Events)
	return buf.Bytes()
}
