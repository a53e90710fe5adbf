// Package things joins the individual data file readers into one asset
// registry, so callers can resolve textures, sprites, maps, sounds and
// pics without caring which archive holds them.
package things

import (
	"fmt"
	"image"
	"io"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-wolf/audiot"
	"badc0de.net/pkg/go-wolf/gamemaps"
	"badc0de.net/pkg/go-wolf/vgagraph"
	"badc0de.net/pkg/go-wolf/vswap"
	"badc0de.net/pkg/go-wolf/wl6"
)

// Things is a registry of the open data file archives. Zero or more
// archives may be attached; accessors for a missing archive return an
// error rather than panic.
type Things struct {
	swap     *vswap.Archive
	maps     *gamemaps.Archive
	audio    *audiot.Archive
	graphics *vgagraph.Archive

	closers []io.Closer
}

func New() (*Things, error) {
	return &Things{}, nil
}

// AddVSwap attaches an open VSWAP archive.
func (t *Things) AddVSwap(a *vswap.Archive) error {
	t.swap = a
	return nil
}

// AddGameMaps attaches an open GAMEMAPS archive.
func (t *Things) AddGameMaps(a *gamemaps.Archive) error {
	t.maps = a
	return nil
}

// AddAudio attaches an open AUDIOT archive.
func (t *Things) AddAudio(a *audiot.Archive) error {
	t.audio = a
	return nil
}

// AddGraphics attaches an open VGAGRAPH archive.
func (t *Things) AddGraphics(a *vgagraph.Archive) error {
	t.graphics = a
	return nil
}

// TrackCloser registers a closer, usually the file backing one of the
// attached archives, to be closed together with the registry.
func (t *Things) TrackCloser(c io.Closer) {
	t.closers = append(t.closers, c)
}

// Close closes every tracked file. The archives lazily read from their
// files, so call this only once done with the registry.
func (t *Things) Close() error {
	var firstErr error
	for _, c := range t.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	t.closers = nil
	return firstErr
}

// VSwap returns the attached VSWAP archive.
func (t *Things) VSwap() (*vswap.Archive, error) {
	if t.swap == nil {
		return nil, fmt.Errorf("no vswap archive attached")
	}
	return t.swap, nil
}

// GameMaps returns the attached GAMEMAPS archive.
func (t *Things) GameMaps() (*gamemaps.Archive, error) {
	if t.maps == nil {
		return nil, fmt.Errorf("no gamemaps archive attached")
	}
	return t.maps, nil
}

// Audio returns the attached AUDIOT archive.
func (t *Things) Audio() (*audiot.Archive, error) {
	if t.audio == nil {
		return nil, fmt.Errorf("no audiot archive attached")
	}
	return t.audio, nil
}

// Graphics returns the attached VGAGRAPH archive.
func (t *Things) Graphics() (*vgagraph.Archive, error) {
	if t.graphics == nil {
		return nil, fmt.Errorf("no vgagraph archive attached")
	}
	return t.graphics, nil
}

// Texture decodes one wall texture from the VSWAP archive.
func (t *Things) Texture(index int) (image.Image, error) {
	a, err := t.VSwap()
	if err != nil {
		return nil, err
	}
	return a.Texture(index)
}

// Sprite decodes one sprite from the VSWAP archive.
func (t *Things) Sprite(index int) (image.Image, error) {
	a, err := t.VSwap()
	if err != nil {
		return nil, err
	}
	return a.Sprite(index)
}

// Pic decodes one pic from the VGAGRAPH archive.
func (t *Things) Pic(index int) (image.Image, error) {
	a, err := t.Graphics()
	if err != nil {
		return nil, err
	}
	return a.Pic(index)
}

// TileMap expands one map from the GAMEMAPS archive.
func (t *Things) TileMap(index int) (*gamemaps.TileMap, error) {
	a, err := t.GameMaps()
	if err != nil {
		return nil, err
	}
	return a.TileMap(index)
}

// TextureName returns the human readable name of a wall texture, or an
// empty string for indices outside the name table.
func (t *Things) TextureName(index int) string {
	if index < 0 || index >= len(wl6.TextureNames) {
		return ""
	}
	return wl6.TextureNames[index]
}

// SpriteName returns the human readable name of a sprite, or an empty
// string for indices outside the name table.
func (t *Things) SpriteName(index int) string {
	if index < 0 || index >= len(wl6.SpriteNames) {
		return ""
	}
	return wl6.SpriteNames[index]
}

// SpriteByName resolves a sprite name from the WL6 name table and
// decodes it.
func (t *Things) SpriteByName(name string) (image.Image, error) {
	for i, n := range wl6.SpriteNames {
		if n == name {
			return t.Sprite(i)
		}
	}
	glog.V(1).Infof("things: no sprite named %q", name)
	return nil, fmt.Errorf("no sprite named %q", name)
}
