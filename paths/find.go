// Package paths locates the game data files (VSWAP.WL6, GAMEMAPS.WL6
// and friends) across the places a user plausibly keeps them: the
// working directory, a datafiles directory next to the binary, runfiles
// and GOPATH checkouts, or a directory named by the WOLF3D_DATA
// environment variable.
package paths

import (
	"io"
	"os"

	"github.com/golang/glog"
)

// Find locates the passed data file shortname and returns an absolute
// or relative path to open it at, or an empty string when no candidate
// location holds it.
//
// For example, for "VSWAP.WL6" it may return "datafiles/VSWAP.WL6" or
// "mybinary.runfiles/go_wolf/datafiles/vswap.wl6".
func Find(fileName string) string {
	for _, path := range possiblePathsImp(fileName) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations that Find would
// look, and opens it.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	return openImp(fileName)
}

// NoFindOpen opens the passed path directly, skipping the Find lookup.
func NoFindOpen(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	return noFindOpenImp(fileName)
}
