package full

import (
	"badc0de.net/pkg/go-wolf/paths"
	"badc0de.net/pkg/go-wolf/things"
)

var flagPaths Paths

type PathFlag string

const (
	FlagVSwapPath    = PathFlag("vswap_path")
	FlagGameMapsPath = PathFlag("gamemaps_path")
	FlagMapHeadPath  = PathFlag("maphead_path")
	FlagAudioTPath   = PathFlag("audiot_path")
	FlagAudioHedPath = PathFlag("audiohed_path")
	FlagVGAGraphPath = PathFlag("vgagraph_path")
	FlagVGAHeadPath  = PathFlag("vgahead_path")
	FlagVGADictPath  = PathFlag("vgadict_path")
)

// SetupFilePathFlags registers flags to manually define paths to the
// data files registerable in things.Things: --vswap_path,
// --gamemaps_path, --maphead_path and so on. Each flag defaults to
// whatever the paths package finds for the canonical file name.
//
// These paths are then referred to by the FromFilePathFlags function.
func SetupFilePathFlags() {
	paths.SetupFilePathFlag("VSWAP.WL6", string(FlagVSwapPath), &flagPaths.VSwap)
	paths.SetupFilePathFlag("GAMEMAPS.WL6", string(FlagGameMapsPath), &flagPaths.GameMaps)
	paths.SetupFilePathFlag("MAPHEAD.WL6", string(FlagMapHeadPath), &flagPaths.MapHead)
	paths.SetupFilePathFlag("AUDIOT.WL6", string(FlagAudioTPath), &flagPaths.AudioT)
	paths.SetupFilePathFlag("AUDIOHED.WL6", string(FlagAudioHedPath), &flagPaths.AudioHed)
	paths.SetupFilePathFlag("VGAGRAPH.WL6", string(FlagVGAGraphPath), &flagPaths.VGAGraph)
	paths.SetupFilePathFlag("VGAHEAD.WL6", string(FlagVGAHeadPath), &flagPaths.VGAHead)
	paths.SetupFilePathFlag("VGADICT.WL6", string(FlagVGADictPath), &flagPaths.VGADict)
}

// FromFilePathFlags initializes things.Things populated with the files
// specified by the flags registered in SetupFilePathFlags. The flags
// need to be registered and parsed by the time this function is
// invoked.
func FromFilePathFlags() (*things.Things, error) {
	return FromPaths(flagPaths)
}

// PathFlagValue returns the value for the passed path flag (such as the
// path to VSWAP.WL6).
func PathFlagValue(key PathFlag) string {
	switch key {
	case FlagVSwapPath:
		return flagPaths.VSwap
	case FlagGameMapsPath:
		return flagPaths.GameMaps
	case FlagMapHeadPath:
		return flagPaths.MapHead
	case FlagAudioTPath:
		return flagPaths.AudioT
	case FlagAudioHedPath:
		return flagPaths.AudioHed
	case FlagVGAGraphPath:
		return flagPaths.VGAGraph
	case FlagVGAHeadPath:
		return flagPaths.VGAHead
	case FlagVGADictPath:
		return flagPaths.VGADict
	default:
		return ""
	}
}
