// Package gamemaps reads the GAMEMAPS/MAPHEAD tile map archive.
//
// MAPHEAD carries the RLEW tag and one uint32 offset per map; GAMEMAPS
// holds the map chunks themselves. Each chunk is a small header (plane
// offsets and compressed sizes, map dimensions, a 16-byte name) followed
// by planes that are Carmack-compressed on top of RLEW.
package gamemaps

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-wolf/compress"
)

// PlaneCount is the number of tile planes per map in every known data
// set: architecture, objects, and the unused third "logic" plane.
const PlaneCount = 3

type Archive struct {
	reader io.ReadSeeker

	rlewTag uint16
	offsets []int64 // map count + 1 entries; last is the data size

	// Carmacized reports whether the planes carry the Carmack layer.
	// Stock data sets do; a few mods strip it and keep RLEW only.
	Carmacized bool
}

// New indexes a GAMEMAPS archive. data reads the map chunks; head reads
// the MAPHEAD contents. Both readers must cover the whole file.
func New(data, head io.ReadSeeker) (*Archive, error) {
	dataSize, err := data.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("could not measure gamemaps: %v", err)
	}
	headSize, err := head.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("could not measure maphead: %v", err)
	}
	if _, err := head.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not rewind maphead: %v", err)
	}

	var rlewTag uint16
	if err := binary.Read(head, binary.LittleEndian, &rlewTag); err != nil {
		return nil, fmt.Errorf("could not read rlew tag: %v", err)
	}

	if (headSize-2)%4 != 0 {
		return nil, fmt.Errorf("maphead size - 2 must be divisible by 4: %d", headSize-2)
	}
	mapCount := int(headSize-2) / 4

	rawOffsets := make([]uint32, mapCount)
	if err := binary.Read(head, binary.LittleEndian, rawOffsets); err != nil {
		return nil, fmt.Errorf("could not read map offsets: %v", err)
	}

	offsets := make([]int64, mapCount+1)
	offsets[mapCount] = dataSize
	// Absent maps are marked 0 or all-ones; they inherit the next
	// offset so their size comes out as zero.
	for i := mapCount - 1; i >= 0; i-- {
		if rawOffsets[i] == 0 || rawOffsets[i] == 0xFFFFFFFF {
			offsets[i] = offsets[i+1]
		} else {
			offsets[i] = int64(rawOffsets[i])
		}
	}
	for i := 0; i < mapCount; i++ {
		if offsets[i] < 0 || offsets[i] > dataSize {
			return nil, fmt.Errorf("invalid map offset: index=%d", i)
		}
		if offsets[i] > offsets[i+1] {
			return nil, fmt.Errorf("invalid map offset ordering: index=%d", i)
		}
	}

	glog.V(1).Infof("gamemaps: %d map slots, rlew tag %#04x", mapCount, rlewTag)
	return &Archive{
		reader:     data,
		rlewTag:    rlewTag,
		offsets:    offsets,
		Carmacized: true,
	}, nil
}

// MapCount returns the number of map slots, absent ones included.
func (a *Archive) MapCount() int {
	return len(a.offsets) - 1
}

// RLEWTag returns the tag word read from MAPHEAD.
func (a *Archive) RLEWTag() uint16 {
	return a.rlewTag
}

// Present reports whether the map slot holds a map.
func (a *Archive) Present(index int) bool {
	if index < 0 || index >= a.MapCount() {
		return false
	}
	return a.offsets[index+1] > a.offsets[index]
}

type mapHeader struct {
	PlaneOffsets [PlaneCount]uint32
	PlaneSizes   [PlaneCount]uint16
	Width        uint16
	Height       uint16
	Name         [16]byte
}

// TileMap reads and expands the map in the passed slot.
func (a *Archive) TileMap(index int) (*TileMap, error) {
	if index < 0 || index >= a.MapCount() {
		return nil, fmt.Errorf("map index out of range: got %d, want < %d", index, a.MapCount())
	}
	if !a.Present(index) {
		return nil, fmt.Errorf("map slot %d is empty", index)
	}

	if _, err := a.reader.Seek(a.offsets[index], io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not seek to map %d: %v", index, err)
	}
	var h mapHeader
	if err := binary.Read(a.reader, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("could not read map %d header: %v", index, err)
	}

	name := string(h.Name[:])
	if i := strings.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimRight(name, " \t\r\n\v\x00")

	width, height := int(h.Width), int(h.Height)
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("map %d has invalid size %dx%d", index, width, height)
	}

	planes := make([][]uint16, PlaneCount)
	for p := 0; p < PlaneCount; p++ {
		plane, err := a.readPlane(h.PlaneOffsets[p], h.PlaneSizes[p], width*height)
		if err != nil {
			return nil, fmt.Errorf("could not expand map %d plane %d: %v", index, p, err)
		}
		planes[p] = plane
	}

	return &TileMap{
		Width:  width,
		Height: height,
		Name:   name,
		Planes: planes,
	}, nil
}

// readPlane expands one plane: the stored bytes begin with the RLEW
// expanded size, the rest is Carmack data (whose own expansion starts
// with a redundant length word that gets dropped).
func (a *Archive) readPlane(offset uint32, size uint16, tiles int) ([]uint16, error) {
	if size < 2 {
		return nil, fmt.Errorf("plane too small: %d", size)
	}
	if _, err := a.reader.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not seek to plane: %v", err)
	}

	var expandedSize uint16
	if err := binary.Read(a.reader, binary.LittleEndian, &expandedSize); err != nil {
		return nil, fmt.Errorf("could not read plane size: %v", err)
	}
	chunk := make([]byte, int(size)-2)
	if _, err := io.ReadFull(a.reader, chunk); err != nil {
		return nil, fmt.Errorf("could not read plane data: %v", err)
	}

	if a.Carmacized {
		expanded, err := compress.CarmackExpand(chunk, int(expandedSize))
		if err != nil {
			return nil, err
		}
		if len(expanded) < 2 {
			return nil, fmt.Errorf("carmack expansion too small: %d", len(expanded))
		}
		chunk = expanded[2:]
	}

	raw, err := compress.RLEWExpand(chunk, a.rlewTag)
	if err != nil {
		return nil, err
	}
	if len(raw) < tiles*2 {
		return nil, fmt.Errorf("plane too short: got %d tiles, want %d", len(raw)/2, tiles)
	}

	plane := make([]uint16, tiles)
	for i := range plane {
		plane[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return plane, nil
}
