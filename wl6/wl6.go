// Package wl6 carries the static configuration of the retail six-episode
// Wolfenstein 3D data set: the VGA palette, the partition layouts of the
// VGAGRAPH and AUDIOT archives, and name tables for the individual
// assets.
//
// Other data sets (shareware WL1, Spear of Destiny) lay their archives
// out differently; readers take these values as parameters, so a caller
// with a different data set supplies its own tables.
package wl6

// Dimensions shared by all VSWAP graphics pages.
const (
	TextureWidth  = 64
	TextureHeight = 64
	SpriteWidth   = 64
	SpriteHeight  = 64
)

// SampledSoundRate is the playback rate, in Hz, of the digitized sounds
// stored in VSWAP pages.
const SampledSoundRate = 7042

// ColorKey is the palette index treated as transparent in sprites and
// masked pics.
const ColorKey = 0xFF

// GraphicsPartition is a named contiguous chunk range inside VGAGRAPH.
type GraphicsPartition struct {
	Name  string
	Start int
	Count int
}

// GraphicsPartitions is the VGAGRAPH layout of the WL6 data set, in
// chunk order. Ranges with a zero count exist in other data sets and are
// kept so indices resolve the same way everywhere.
var GraphicsPartitions = []GraphicsPartition{
	{"struct", 0, 1},
	{"font", 1, 2},
	{"fontm", 3, 0},
	{"pics", 3, 132},
	{"picm", 135, 0},
	{"sprites", 135, 0},
	{"tile8", 135, 72},
	{"tile8m", 136, 0},
	{"tile16", 136, 0},
	{"tile16m", 136, 0},
	{"tile32", 136, 0},
	{"tile32m", 136, 0},
	{"screens", 136, 2},
	{"helpart", 138, 1},
	{"demos", 139, 4},
	{"endart", 143, 6},
}

// AudioPartition is a named contiguous chunk range inside AUDIOT.
type AudioPartition struct {
	Name  string
	Start int
	Count int
}

// AudioPartitions is the AUDIOT layout of the WL6 data set. The digital
// partition holds placeholders only; the actual digitized sounds live in
// VSWAP.
var AudioPartitions = []AudioPartition{
	{"buzzer", 0, 87},
	{"adlib", 87, 87},
	{"digital", 174, 87},
	{"music", 261, 27},
}

// FindAudioPartition returns the named AUDIOT partition.
func FindAudioPartition(name string) (AudioPartition, bool) {
	for _, p := range AudioPartitions {
		if p.Name == name {
			return p, true
		}
	}
	return AudioPartition{}, false
}
