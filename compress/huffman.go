package compress

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// HuffmanNodeCount is the number of nodes in an id-style Huffman
	// dictionary (one per byte value).
	HuffmanNodeCount = 256

	// HuffmanHeadIndex is the index of the tree head within the node
	// array.
	HuffmanHeadIndex = HuffmanNodeCount - 2

	huffmanMaxDepth       = 24
	huffmanMaxCode        = 0xFFFF
	huffmanMaxProbability = 0x7FFFFFFF
)

// HuffmanNode is a single dictionary entry. Values below HuffmanNodeCount
// are literal byte values; values at or above it refer to the node at
// value-HuffmanNodeCount.
type HuffmanNode struct {
	Left, Right uint16
}

// ReadHuffmanNodes reads a 1024-byte Huffman dictionary (VGADICT layout:
// 256 little-endian uint16 pairs) from the passed reader.
func ReadHuffmanNodes(r io.Reader) ([]HuffmanNode, error) {
	nodes := make([]HuffmanNode, HuffmanNodeCount)
	if err := binary.Read(r, binary.LittleEndian, nodes); err != nil {
		return nil, fmt.Errorf("could not read huffman dictionary: %v", err)
	}
	return nodes, nil
}

// HuffmanExpand decodes data against the passed dictionary until
// expandedSize bytes have been produced. Bits are consumed LSB first. If
// the input runs out early, the remainder of the output is zero-filled,
// matching the original expander.
func HuffmanExpand(data []byte, expandedSize int, nodes []HuffmanNode) ([]byte, error) {
	if expandedSize < 0 {
		return nil, fmt.Errorf("negative expanded size: %d", expandedSize)
	}
	if len(nodes) < HuffmanNodeCount {
		return nil, fmt.Errorf("huffman dictionary too short: got %d nodes, want %d", len(nodes), HuffmanNodeCount)
	}

	output := make([]byte, 0, expandedSize)
	head := nodes[HuffmanHeadIndex]
	node := head

	for _, datum := range data {
		for mask := byte(1); ; mask <<= 1 {
			var value uint16
			if datum&mask != 0 {
				value = node.Right
			} else {
				value = node.Left
			}
			if value < HuffmanNodeCount {
				output = append(output, byte(value))
				node = head
				if len(output) >= expandedSize {
					return output, nil
				}
			} else {
				node = nodes[value-HuffmanNodeCount]
			}
			if mask == 1<<7 {
				break
			}
		}
	}

	// Ran out of input; the original zero-pads to the declared size.
	return append(output, make([]byte, expandedSize-len(output))...), nil
}

// HuffmanCount tallies byte frequencies for dictionary construction.
func HuffmanCount(data []byte) []int32 {
	counts := make([]int32, HuffmanNodeCount)
	for _, datum := range data {
		counts[datum]++
	}
	return counts
}

// HuffmanBuildNodes constructs a dictionary from byte frequencies, pairing
// the two least probable symbols until only the head remains.
func HuffmanBuildNodes(counts []int32) ([]HuffmanNode, error) {
	if len(counts) != HuffmanNodeCount {
		return nil, fmt.Errorf("wrong counts length: got %d, want %d", len(counts), HuffmanNodeCount)
	}

	probs := make([]int32, HuffmanNodeCount)
	copy(probs, counts)
	values := make([]int, HuffmanNodeCount)
	for i := range values {
		values[i] = i
	}
	nodes := make([]HuffmanNode, HuffmanNodeCount)

	minIndex := func() int {
		best := -1
		var bestProb int32 = huffmanMaxProbability
		for i, prob := range probs {
			if prob < bestProb {
				best, bestProb = i, prob
			}
		}
		return best
	}

	for index := 0; index < HuffmanNodeCount; index++ {
		code0 := minIndex()
		if code0 < 0 {
			code0 = huffmanMaxCode
		}
		prob0 := probs[code0]
		probs[code0] = huffmanMaxProbability

		code1 := minIndex()
		probs[code0] = prob0

		if code1 < 0 {
			value0 := values[code0]
			if value0 < HuffmanNodeCount {
				return nil, fmt.Errorf("last code was not a node: %d", value0)
			}
			if value0 != HuffmanNodeCount+HuffmanHeadIndex {
				return nil, fmt.Errorf("wrong head node: %d", value0)
			}
			break
		}

		nodes[index] = HuffmanNode{
			Left:  uint16(values[code0]),
			Right: uint16(values[code1]),
		}
		values[code0] = HuffmanNodeCount + index
		probs[code0] += probs[code1]
		probs[code1] = huffmanMaxProbability
	}

	return nodes, nil
}

// HuffmanBuildMasks derives per-symbol bit strings (shift counts and
// masks) from a dictionary, for use with HuffmanCompress.
func HuffmanBuildMasks(counts []int32, nodes []HuffmanNode) (shifts []int, masks []uint32, err error) {
	shifts = make([]int, HuffmanNodeCount)
	masks = make([]uint32, HuffmanNodeCount)
	if err := huffmanTrace(HuffmanHeadIndex, 0, 0, nodes, shifts, masks, counts); err != nil {
		return nil, nil, err
	}
	return shifts, masks, nil
}

func huffmanTrace(index, shift int, mask uint32, nodes []HuffmanNode, shifts []int, masks []uint32, counts []int32) error {
	code0 := int(nodes[index].Left)
	code1 := int(nodes[index].Right)
	shift++

	if shift >= huffmanMaxDepth {
		if counts[code0-HuffmanNodeCount] < HuffmanNodeCount ||
			counts[code1-HuffmanNodeCount] < HuffmanNodeCount {
			return fmt.Errorf("huffman mask too long")
		}
		return nil
	}

	if code0 < HuffmanNodeCount {
		shifts[code0] = shift
		masks[code0] = mask
	} else if err := huffmanTrace(code0-HuffmanNodeCount, shift, mask, nodes, shifts, masks, counts); err != nil {
		return err
	}

	mask |= 1 << (shift - 1)
	if code1 < HuffmanNodeCount {
		shifts[code1] = shift
		masks[code1] = mask
	} else if err := huffmanTrace(code1-HuffmanNodeCount, shift, mask, nodes, shifts, masks, counts); err != nil {
		return err
	}

	return nil
}

// HuffmanCompress encodes data using the bit strings produced by
// HuffmanBuildMasks.
func HuffmanCompress(data []byte, shifts []int, masks []uint32) []byte {
	// Codes are at most huffmanMaxDepth bits, so 3 bytes per symbol plus
	// slack for the partial tail word is always enough.
	output := make([]byte, len(data)*3+4)
	shift := 0
	tail := 0

	for _, datum := range data {
		mask := uint64(masks[datum]) << shift

		output[tail] |= byte(mask)
		output[tail+1] |= byte(mask >> 8)
		output[tail+2] |= byte(mask >> 16)
		output[tail+3] |= byte(mask >> 24)

		shift += shifts[datum]
		tail += shift >> 3
		shift &= 7
	}

	if shift != 0 {
		tail++
	}
	return output[:tail]
}
