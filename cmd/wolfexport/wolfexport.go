// Command wolfexport dumps the data files into a zip archive of
// portable formats: PNG for graphics and map floor plans, WAV for
// sounds, IMF for AdLib sounds and music, plain text for the text
// chunks.
//
// Example:
//
//	wolfexport --out wolf3d-assets.zip
package main

import (
	"archive/zip"
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-wolf/maprender"
	"badc0de.net/pkg/go-wolf/things"
	"badc0de.net/pkg/go-wolf/things/full"
	"badc0de.net/pkg/go-wolf/wav"
	"badc0de.net/pkg/go-wolf/wl6"
)

var (
	outPath     = flag.String("out", "wolf3d-assets.zip", "output zip path")
	waveRate    = flag.Int("wave_rate", 44100, "sample rate for synthesized buzzer sounds")
	mapTileSize = flag.Int("map_tilesize", 16, "pixels per tile in exported map plans")
)

type exporter struct {
	th *things.Things

	// The archives decode lazily off shared seekable readers.
	decodeMu sync.Mutex

	zipMu sync.Mutex
	zw    *zip.Writer
}

func (e *exporter) write(path string, data []byte) error {
	e.zipMu.Lock()
	defer e.zipMu.Unlock()
	w, err := e.zw.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s in archive: %v", path, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("could not write %s to archive: %v", path, err)
	}
	return nil
}

func (e *exporter) writePNG(path string, img image.Image) error {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return fmt.Errorf("could not encode %s: %v", path, err)
	}
	return e.write(path, buf.Bytes())
}

func (e *exporter) decodeImage(decode func(int) (image.Image, error), index int) (image.Image, error) {
	e.decodeMu.Lock()
	defer e.decodeMu.Unlock()
	return decode(index)
}

func (e *exporter) textures() error {
	swap, err := e.th.VSwap()
	if err != nil {
		glog.Info("wolfexport: no vswap, skipping textures")
		return nil
	}
	for i := 0; i < swap.TextureCount(); i++ {
		img, err := e.decodeImage(e.th.Texture, i)
		if err != nil {
			return err
		}
		name := e.th.TextureName(i)
		if name == "" {
			name = "texture"
		}
		if err := e.writePNG(fmt.Sprintf("textures/%03d_%s.png", i, name), img); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) sprites() error {
	swap, err := e.th.VSwap()
	if err != nil {
		return nil
	}
	for i := 0; i < swap.SpriteCount(); i++ {
		img, err := e.decodeImage(e.th.Sprite, i)
		if err != nil {
			return err
		}
		name := e.th.SpriteName(i)
		if name == "" {
			name = "sprite"
		}
		if err := e.writePNG(fmt.Sprintf("sprites/%03d_%s.png", i, name), img); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) pics() error {
	graphics, err := e.th.Graphics()
	if err != nil {
		glog.Info("wolfexport: no vgagraph, skipping pics")
		return nil
	}
	for i := 0; i < graphics.PicCount(); i++ {
		img, err := e.decodeImage(e.th.Pic, i)
		if err != nil {
			return err
		}
		name := "pic"
		if i < len(wl6.PictureLabels) && wl6.PictureLabels[i] != "" {
			name = wl6.PictureLabels[i]
		}
		if err := e.writePNG(fmt.Sprintf("pics/%03d_%s.png", i, name), img); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) tile8() error {
	graphics, err := e.th.Graphics()
	if err != nil {
		return nil
	}
	for i := 0; i < graphics.Tile8Count(); i++ {
		img, err := e.decodeImage(graphics.Tile8, i)
		if err != nil {
			return err
		}
		if err := e.writePNG(fmt.Sprintf("tile8/%03d.png", i), img); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) maps() error {
	gm, err := e.th.GameMaps()
	if err != nil {
		glog.Info("wolfexport: no gamemaps, skipping maps")
		return nil
	}
	for i := 0; i < gm.MapCount(); i++ {
		if !gm.Present(i) {
			continue
		}
		e.decodeMu.Lock()
		m, err := gm.TileMap(i)
		if err != nil {
			e.decodeMu.Unlock()
			return err
		}
		img, err := maprender.Render(e.th, m, *mapTileSize)
		e.decodeMu.Unlock()
		if err != nil {
			return err
		}
		if err := e.writePNG(fmt.Sprintf("maps/%02d_%s.png", i, m.Name), img); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) sampledSounds() error {
	swap, err := e.th.VSwap()
	if err != nil {
		return nil
	}
	for i := 0; i < swap.SampledSoundCount(); i++ {
		e.decodeMu.Lock()
		samples, err := swap.SampledSound(i)
		e.decodeMu.Unlock()
		if err != nil {
			return err
		}
		buf := &bytes.Buffer{}
		if err := wav.Write(buf, wl6.SampledSoundRate, samples); err != nil {
			return err
		}
		name := "sound"
		if i < len(wl6.SampledSoundNames) && wl6.SampledSoundNames[i] != "" {
			name = wl6.SampledSoundNames[i]
		}
		if err := e.write(fmt.Sprintf("sounds/%03d_%s.wav", i, name), buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) buzzerSounds() error {
	audio, err := e.th.Audio()
	if err != nil {
		glog.Info("wolfexport: no audiot, skipping buzzer sounds")
		return nil
	}
	buzzer, ok := wl6.FindAudioPartition("buzzer")
	if !ok {
		return nil
	}
	for i := 0; i < buzzer.Count; i++ {
		e.decodeMu.Lock()
		sound, err := audio.BuzzerSound(buzzer.Start + i)
		e.decodeMu.Unlock()
		if err != nil {
			return err
		}
		buf := &bytes.Buffer{}
		if err := wav.Write(buf, *waveRate, sound.Samples(*waveRate)); err != nil {
			return err
		}
		name := soundLabel(i)
		if err := e.write(fmt.Sprintf("buzzer/%03d_%s.wav", i, name), buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) adlibSounds() error {
	audio, err := e.th.Audio()
	if err != nil {
		return nil
	}
	adlib, ok := wl6.FindAudioPartition("adlib")
	if !ok {
		return nil
	}
	for i := 0; i < adlib.Count; i++ {
		e.decodeMu.Lock()
		sound, err := audio.AdLibSound(adlib.Start + i)
		e.decodeMu.Unlock()
		if err != nil {
			return err
		}
		chunk, err := sound.ToIMF(0, false)
		if err != nil {
			return err
		}
		name := soundLabel(i)
		if err := e.write(fmt.Sprintf("adlib/%03d_%s.imf", i, name), chunk); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) music() error {
	audio, err := e.th.Audio()
	if err != nil {
		return nil
	}
	music, ok := wl6.FindAudioPartition("music")
	if !ok {
		return nil
	}
	for i := 0; i < music.Count; i++ {
		e.decodeMu.Lock()
		m, err := audio.Music(music.Start + i)
		e.decodeMu.Unlock()
		if err != nil {
			return err
		}
		name := "track"
		if i < len(wl6.MusicNames) && wl6.MusicNames[i] != "" {
			name = wl6.MusicNames[i]
		}
		if err := e.write(fmt.Sprintf("music/%02d_%s.imf", i, name), m.ToIMF()); err != nil {
			return err
		}
	}
	return nil
}

func (e *exporter) textArts() error {
	graphics, err := e.th.Graphics()
	if err != nil {
		return nil
	}
	for _, section := range []string{"helpart", "endart"} {
		p, err := graphics.Partition(section)
		if err != nil {
			continue
		}
		for i := 0; i < p.Count; i++ {
			e.decodeMu.Lock()
			text, err := graphics.TextArt(p.Start + i)
			e.decodeMu.Unlock()
			if err != nil {
				return err
			}
			if err := e.write(fmt.Sprintf("text/%s_%d.txt", section, i), []byte(text)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *exporter) screens() error {
	graphics, err := e.th.Graphics()
	if err != nil {
		return nil
	}
	p, err := graphics.Partition("screens")
	if err != nil {
		return nil
	}
	for i := 0; i < p.Count; i++ {
		e.decodeMu.Lock()
		s, err := graphics.Screen(i)
		e.decodeMu.Unlock()
		if err != nil {
			return err
		}
		if err := e.write(fmt.Sprintf("text/screen_%d.txt", i), []byte(s.Text())); err != nil {
			return err
		}
	}
	return nil
}

func soundLabel(i int) string {
	if i < len(wl6.SoundLabels) && wl6.SoundLabels[i] != "" {
		return wl6.SoundLabels[i]
	}
	return "sound"
}

func main() {
	full.SetupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	th, err := full.FromFilePathFlags()
	if err != nil {
		glog.Fatalf("error loading data files: %v", err)
	}
	defer th.Close()

	out, err := os.Create(*outPath)
	if err != nil {
		glog.Fatalf("error creating %s: %v", *outPath, err)
	}

	e := &exporter{th: th, zw: zip.NewWriter(out)}

	g, _ := errgroup.WithContext(context.Background())
	g.Go(e.textures)
	g.Go(e.sprites)
	g.Go(e.pics)
	g.Go(e.tile8)
	g.Go(e.maps)
	g.Go(e.sampledSounds)
	g.Go(e.buzzerSounds)
	g.Go(e.adlibSounds)
	g.Go(e.music)
	g.Go(e.textArts)
	g.Go(e.screens)
	if err := g.Wait(); err != nil {
		glog.Fatalf("export failed: %v", err)
	}

	if err := e.zw.Close(); err != nil {
		glog.Fatalf("error finalizing zip: %v", err)
	}
	if err := out.Close(); err != nil {
		glog.Fatalf("error closing %s: %v", *outPath, err)
	}
	glog.Infof("exported assets to %s", *outPath)
}
