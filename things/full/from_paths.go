package full

import (
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-wolf/audiot"
	"badc0de.net/pkg/go-wolf/gamemaps"
	"badc0de.net/pkg/go-wolf/paths"
	"badc0de.net/pkg/go-wolf/things"
	"badc0de.net/pkg/go-wolf/vgagraph"
	"badc0de.net/pkg/go-wolf/vswap"
	"badc0de.net/pkg/go-wolf/wl6"
)

// Paths carries the file paths of one data set. Empty members omit the
// corresponding archive; archives spanning several files (maps, audio,
// graphics) load only when every file of the group is given.
type Paths struct {
	VSwap string

	GameMaps string
	MapHead  string

	AudioT   string
	AudioHed string

	VGAGraph string
	VGAHead  string
	VGADict  string
}

// FromPaths populates a things.Things registry using the data files at
// the passed paths. The opened files stay open, backing the archives;
// closing the registry closes them.
func FromPaths(p Paths) (*things.Things, error) {
	t, err := things.New()
	if err != nil {
		return nil, errors.Wrap(err, "creating thing registry")
	}

	open := func(path string) (interface {
		io.ReadCloser
		io.Seeker
	}, error) {
		glog.V(1).Infof("full.FromPaths(): opening %q", path)
		return paths.NoFindOpen(path)
	}

	if p.VSwap != "" {
		f, err := open(p.VSwap)
		if err != nil {
			return nil, errors.Wrap(err, "opening vswap file for add")
		}
		a, err := vswap.New(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrap(err, "parsing vswap for add")
		}
		t.TrackCloser(f)
		t.AddVSwap(a)
	}

	if p.GameMaps != "" && p.MapHead != "" {
		data, err := open(p.GameMaps)
		if err != nil {
			return nil, errors.Wrap(err, "opening gamemaps file for add")
		}
		head, err := open(p.MapHead)
		if err != nil {
			data.Close()
			return nil, errors.Wrap(err, "opening maphead file for add")
		}
		a, err := gamemaps.New(data, head)
		head.Close()
		if err != nil {
			data.Close()
			return nil, errors.Wrap(err, "parsing gamemaps for add")
		}
		t.TrackCloser(data)
		t.AddGameMaps(a)
	}

	if p.AudioT != "" && p.AudioHed != "" {
		data, err := open(p.AudioT)
		if err != nil {
			return nil, errors.Wrap(err, "opening audiot file for add")
		}
		head, err := open(p.AudioHed)
		if err != nil {
			data.Close()
			return nil, errors.Wrap(err, "opening audiohed file for add")
		}
		a, err := audiot.New(data, head)
		head.Close()
		if err != nil {
			data.Close()
			return nil, errors.Wrap(err, "parsing audiot for add")
		}
		t.TrackCloser(data)
		t.AddAudio(a)
	}

	if p.VGAGraph != "" && p.VGAHead != "" && p.VGADict != "" {
		data, err := open(p.VGAGraph)
		if err != nil {
			return nil, errors.Wrap(err, "opening vgagraph file for add")
		}
		head, err := open(p.VGAHead)
		if err != nil {
			data.Close()
			return nil, errors.Wrap(err, "opening vgahead file for add")
		}
		dict, err := open(p.VGADict)
		if err != nil {
			data.Close()
			head.Close()
			return nil, errors.Wrap(err, "opening vgadict file for add")
		}
		a, err := vgagraph.New(data, head, dict, wl6.GraphicsPartitions)
		head.Close()
		dict.Close()
		if err != nil {
			data.Close()
			return nil, errors.Wrap(err, "parsing vgagraph for add")
		}
		t.TrackCloser(data)
		t.AddGraphics(a)
	}

	return t, nil
}
