package compress

import (
	"fmt"
)

// Carmack token tags. A word whose high byte matches one of these must be
// escaped with a zero count when stored literally.
const (
	carmackNearTag = 0xA7
	carmackFarTag  = 0xA8
)

// CarmackExpand decodes a Carmack-compressed word stream into
// expandedSize bytes. Near pointers (0xA7) reference backwards from the
// current output position in words; far pointers (0xA8) reference an
// absolute word offset. Overlapping runs repeat already-written words.
func CarmackExpand(data []byte, expandedSize int) ([]byte, error) {
	if expandedSize < 2 {
		return nil, fmt.Errorf("not enough data to expand: %d", expandedSize)
	}
	if expandedSize%2 != 0 {
		return nil, fmt.Errorf("expanded size must be divisible by 2: %d", expandedSize)
	}

	output := make([]byte, 0, expandedSize)
	pos := 0
	next := func() (byte, error) {
		if pos >= len(data) {
			return 0, fmt.Errorf("unexpected end of carmack data at %d", pos)
		}
		b := data[pos]
		pos++
		return b, nil
	}

	for ahead := expandedSize >> 1; ahead > 0; {
		count, err := next()
		if err != nil {
			return nil, err
		}
		tag, err := next()
		if err != nil {
			return nil, err
		}

		switch {
		case tag != carmackNearTag && tag != carmackFarTag:
			output = append(output, count, tag)
			ahead--

		case count == 0:
			// Escaped literal word colliding with a tag.
			low, err := next()
			if err != nil {
				return nil, err
			}
			output = append(output, low, tag)
			ahead--

		default:
			if ahead < int(count) {
				return output, nil
			}
			var offset int
			if tag == carmackNearTag {
				back, err := next()
				if err != nil {
					return nil, err
				}
				offset = len(output) - int(back)<<1
			} else {
				low, err := next()
				if err != nil {
					return nil, err
				}
				high, err := next()
				if err != nil {
					return nil, err
				}
				offset = (int(low) | int(high)<<8) << 1
			}
			// A pointer at or past the write position has nothing to
			// copy from; the run below would read its own output.
			if offset < 0 || offset >= len(output) {
				return nil, fmt.Errorf("carmack pointer out of range: offset=%d size=%d", offset, len(output))
			}
			// Byte-wise copy so self-overlapping runs repeat.
			for i := 0; i < int(count)<<1; i++ {
				output = append(output, output[offset+i])
			}
			ahead -= int(count)
		}
	}

	return output, nil
}

// CarmackCompress encodes an even-sized byte buffer as a Carmack word
// stream. The matcher is the straightforward quadratic search of the
// original tool; map planes are small enough for it not to matter.
func CarmackCompress(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("not enough data to compress: %d", len(data))
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("data size must be divisible by 2: %d", len(data))
	}

	source := make([]uint16, len(data)/2)
	for i := range source {
		source[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}

	var output []byte
	ahead := len(source)
	index := 0

	for ahead > 0 {
		word := source[index]
		count := 0
		match := 0

		for scan := 0; scan < index; scan++ {
			if source[scan] != word {
				continue
			}
			length := index - scan
			if length > ahead {
				length = ahead
			}
			if length > 255 {
				length = 255
			}
			if length > 1 {
				run := 1
				for ; run < length; run++ {
					if source[scan+run] != source[index+run] {
						break
					}
				}
				// A fully matching candidate still stops one word
				// short, keeping the emitted streams identical to the
				// historical encoder's.
				if run == length {
					run--
				}
				length = run
			}
			if count <= length {
				count = length
				match = scan
			}
		}

		switch {
		case count > 1 && index-match <= 255:
			output = append(output, byte(count), carmackNearTag, byte(index-match))
		case count > 2:
			output = append(output, byte(count), carmackFarTag, byte(match), byte(match>>8))
		default:
			tag := byte(word >> 8)
			if tag == carmackNearTag || tag == carmackFarTag {
				output = append(output, 0, tag, byte(word))
			} else {
				output = append(output, byte(word), tag)
			}
			count = 1
		}

		index += count
		ahead -= count
	}

	return output, nil
}
