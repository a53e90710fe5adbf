// Command wolfprint previews assets from the data files on the
// terminal: wall textures, sprites, pics, tiles, fonts, maps, and
// text screens.
//
// Example:
//
//	wolfprint --sprite 54 --rasterm
//	wolfprint --map 0 --tilesize 4
package main

import (
	"flag"
	"fmt"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-wolf/maprender"
	"badc0de.net/pkg/go-wolf/things"
	"badc0de.net/pkg/go-wolf/things/full"
)

var (
	textureID = flag.Int("texture", -1, "wall texture to print")
	spriteID  = flag.Int("sprite", -1, "sprite to print")
	picID     = flag.Int("pic", -1, "pic to print")
	tile8ID   = flag.Int("tile8", -1, "8x8 tile to print")
	mapID     = flag.Int("map", -1, "map to print as a floor plan")
	screenID  = flag.Int("screen", -1, "DOS text screen to print")
	textArtID = flag.Int("textart", -1, "text art chunk to print")
	fontID    = flag.Int("font", -1, "font to render --text with")
	fontText  = flag.String("text", "Get Psyched!", "text to render with --font")
	listMaps  = flag.Bool("maps", false, "list the map directory")

	tileSize = flag.Int("tilesize", 4, "pixels per map tile in --map output")

	col      = flag.Bool("col", true, "whether to print in color at all")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with rasterm (kitty, iterm, sixel)")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to downsize the image to fit the terminal")
)

var th *things.Things

func textureHandler(idx int) {
	img, err := th.Texture(idx)
	if err != nil {
		glog.Errorf("error decoding texture: %v", err)
		return
	}
	if name := th.TextureName(idx); name != "" {
		fmt.Printf("texture %d: %s\n", idx, name)
	}
	out(img)
}

func spriteHandler(idx int) {
	img, err := th.Sprite(idx)
	if err != nil {
		glog.Errorf("error decoding sprite: %v", err)
		return
	}
	if name := th.SpriteName(idx); name != "" {
		fmt.Printf("sprite %d: %s\n", idx, name)
	}
	out(img)
}

func picHandler(idx int) {
	img, err := th.Pic(idx)
	if err != nil {
		glog.Errorf("error decoding pic: %v", err)
		return
	}
	out(img)
}

func tile8Handler(idx int) {
	graphics, err := th.Graphics()
	if err != nil {
		glog.Errorf("no graphics archive: %v", err)
		return
	}
	img, err := graphics.Tile8(idx)
	if err != nil {
		glog.Errorf("error decoding tile: %v", err)
		return
	}
	out(img)
}

func mapHandler(idx int) {
	m, err := th.TileMap(idx)
	if err != nil {
		glog.Errorf("error expanding map: %v", err)
		return
	}
	fmt.Printf("map %d: %s (%dx%d)\n", idx, m.Name, m.Width, m.Height)
	img, err := maprender.Render(th, m, *tileSize)
	if err != nil {
		glog.Errorf("error rendering map: %v", err)
		return
	}
	out(img)
}

func screenHandler(idx int) {
	graphics, err := th.Graphics()
	if err != nil {
		glog.Errorf("no graphics archive: %v", err)
		return
	}
	s, err := graphics.Screen(idx)
	if err != nil {
		glog.Errorf("error decoding screen: %v", err)
		return
	}
	fmt.Print(s.Text())
}

func textArtHandler(idx int) {
	graphics, err := th.Graphics()
	if err != nil {
		glog.Errorf("no graphics archive: %v", err)
		return
	}
	text, err := graphics.TextArt(idx)
	if err != nil {
		glog.Errorf("error decoding text art: %v", err)
		return
	}
	fmt.Print(text)
}

func fontHandler(idx int) {
	graphics, err := th.Graphics()
	if err != nil {
		glog.Errorf("no graphics archive: %v", err)
		return
	}
	f, err := graphics.Font(idx)
	if err != nil {
		glog.Errorf("error decoding font: %v", err)
		return
	}
	out(f.Render(*fontText))
}

func main() {
	full.SetupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	var err error
	th, err = full.FromFilePathFlags()
	if err != nil {
		glog.Fatalf("error loading data files: %v", err)
	}
	defer th.Close()

	if *textureID >= 0 {
		textureHandler(*textureID)
	}
	if *spriteID >= 0 {
		spriteHandler(*spriteID)
	}
	if *picID >= 0 {
		picHandler(*picID)
	}
	if *tile8ID >= 0 {
		tile8Handler(*tile8ID)
	}
	if *mapID >= 0 {
		mapHandler(*mapID)
	}
	if *screenID >= 0 {
		screenHandler(*screenID)
	}
	if *textArtID >= 0 {
		textArtHandler(*textArtID)
	}
	if *fontID >= 0 {
		fontHandler(*fontID)
	}
	if *listMaps {
		listMapsHandler()
	}

	glog.Flush()
}

func listMapsHandler() {
	a, err := th.GameMaps()
	if err != nil {
		glog.Errorf("no gamemaps archive: %v", err)
		return
	}
	for i := 0; i < a.MapCount(); i++ {
		if !a.Present(i) {
			continue
		}
		m, err := a.TileMap(i)
		if err != nil {
			glog.Errorf("error expanding map %d: %v", i, err)
			continue
		}
		fmt.Printf("%3d %s %dx%d\n", i, m.Name, m.Width, m.Height)
	}
}
