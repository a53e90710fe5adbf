// Package full populates a things.Things registry from files on disk,
// located by explicit paths, command line flags, or the default lookup
// of the paths package.
package full

import (
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-wolf/paths"
	"badc0de.net/pkg/go-wolf/things"
)

// FromDefaultPaths finds all data files supported by things using the
// default lookup of the paths package, and adds them to the registry.
// Archives whose files are not found are skipped; a data set without
// even VSWAP is an error.
//
// Appropriate for tests or web frontends. Inappropriate for servers or
// tools where the path should be specifiable by the user on the command
// line.
func FromDefaultPaths() (*things.Things, error) {
	p := Paths{
		VSwap:    paths.Find("VSWAP.WL6"),
		GameMaps: paths.Find("GAMEMAPS.WL6"),
		MapHead:  paths.Find("MAPHEAD.WL6"),
		AudioT:   paths.Find("AUDIOT.WL6"),
		AudioHed: paths.Find("AUDIOHED.WL6"),
		VGAGraph: paths.Find("VGAGRAPH.WL6"),
		VGAHead:  paths.Find("VGAHEAD.WL6"),
		VGADict:  paths.Find("VGADICT.WL6"),
	}
	if p.VSwap == "" {
		return nil, errors.New("could not find VSWAP.WL6 in any known location")
	}
	return FromPaths(p)
}
