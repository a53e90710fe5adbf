//go:build !js && !wasm
// +build !js,!wasm

package paths

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// possibleDirsImp lists the directories Find searches, in order of
// preference. This is the local filesystem, native binary
// implementation.
func possibleDirsImp() []string {
	var dirs []string
	if dir := os.Getenv("WOLF3D_DATA"); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, ".", "datafiles")

	if exe, err := os.Executable(); err == nil {
		base := filepath.Dir(exe)
		dirs = append(dirs,
			base,
			filepath.Join(base, "datafiles"),
			filepath.Join(exe+".runfiles", "go_wolf", "datafiles"),
		)
	}

	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			gopath = filepath.Join(home, "go")
		}
	}
	for _, p := range filepath.SplitList(gopath) {
		if p == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(p, "src", "badc0de.net", "pkg", "go-wolf", "datafiles"))
	}
	return dirs
}

// possiblePathsImp expands the directory candidates into file paths,
// with lower and upper case name variants for data sets copied off DOS
// media onto case-sensitive filesystems.
func possiblePathsImp(fileName string) []string {
	names := []string{fileName}
	if lower := strings.ToLower(fileName); lower != fileName {
		names = append(names, lower)
	}
	if upper := strings.ToUpper(fileName); upper != fileName {
		names = append(names, upper)
	}

	var paths []string
	for _, dir := range possibleDirsImp() {
		for _, name := range names {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}

// openImp locates the passed file in the same locations that Find would
// look, and opens it. This is the local filesystem, native binary
// implementation.
func openImp(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Errorf("go-wolf/paths: could not find %q in any known location", fileName)
	}
	return noFindOpenImp(path)
}

func noFindOpenImp(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "go-wolf/paths: could not open %q", fileName)
	}
	return f, nil
}
