package compress

import (
	"fmt"
)

// RLEWExpand decodes tag-based word RLE. A tag word is followed by a
// count word and a value word; anything else passes through. A truncated
// trailing run is dropped, as in the original expander.
func RLEWExpand(data []byte, tag uint16) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("rlew data size must be divisible by 2: %d", len(data))
	}

	word := func(i int) uint16 {
		return uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}
	words := len(data) / 2

	var output []byte
	for i := 0; i < words; i++ {
		datum := word(i)
		if datum != tag {
			output = append(output, byte(datum), byte(datum>>8))
			continue
		}
		if i+2 >= words {
			break
		}
		count := word(i + 1)
		value := word(i + 2)
		i += 2
		for j := uint16(0); j < count; j++ {
			output = append(output, byte(value), byte(value>>8))
		}
	}
	return output, nil
}

// RLEWCompress encodes a word stream with tag-based RLE. Runs longer than
// 3 words, and any occurrence of the tag itself, become tag,count,value
// triplets.
func RLEWCompress(data []byte, tag uint16) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("rlew data size must be divisible by 2: %d", len(data))
	}

	var output []byte
	emit := func(w uint16) {
		output = append(output, byte(w), byte(w>>8))
	}
	flush := func(count int, old uint16) {
		if count > 3 || old == tag {
			emit(tag)
			emit(uint16(count))
			emit(old)
		} else {
			for j := 0; j < count; j++ {
				emit(old)
			}
		}
	}

	count := 0
	var old uint16
	for i := 0; i*2 < len(data); i++ {
		datum := uint16(data[i*2]) | uint16(data[i*2+1])<<8
		if count > 0 && datum == old && count < 0xFFFF {
			count++
			continue
		}
		if count > 0 {
			flush(count, old)
		}
		count = 1
		old = datum
	}
	if count > 0 {
		flush(count, old)
	}
	return output, nil
}

// RLEBExpand is the byte-oriented variant of RLEWExpand.
func RLEBExpand(data []byte, tag byte) []byte {
	var output []byte
	for i := 0; i < len(data); i++ {
		if data[i] != tag {
			output = append(output, data[i])
			continue
		}
		if i+2 >= len(data) {
			break
		}
		count := int(data[i+1])
		value := data[i+2]
		i += 2
		for j := 0; j < count; j++ {
			output = append(output, value)
		}
	}
	return output
}

// RLEBCompress is the byte-oriented variant of RLEWCompress, with runs
// capped at 255.
func RLEBCompress(data []byte, tag byte) []byte {
	var output []byte
	flush := func(count int, old byte) {
		if count > 3 || old == tag {
			output = append(output, tag, byte(count), old)
		} else {
			for j := 0; j < count; j++ {
				output = append(output, old)
			}
		}
	}

	count := 0
	var old byte
	for _, datum := range data {
		if count > 0 && datum == old && count < 0xFF {
			count++
			continue
		}
		if count > 0 {
			flush(count, old)
		}
		count = 1
		old = datum
	}
	if count > 0 {
		flush(count, old)
	}
	return output
}
