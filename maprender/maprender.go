// Package maprender draws expanded tile maps as top-down floor plans,
// texturing wall tiles with their VSWAP wall textures and overlaying
// static objects with their sprites.
package maprender

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/go-wolf/gamemaps"
)

// Assets supplies the graphics a rendered plan is textured with.
// things.Things satisfies it; tests supply fakes.
type Assets interface {
	Texture(index int) (image.Image, error)
	Sprite(index int) (image.Image, error)
}

// Tile code ranges of the architecture and object planes in the stock
// data sets.
const (
	wallLast  = 63 // 1 to 63 are wall tiles
	doorFirst = 90 // 90 to 101 are doors
	doorLast  = 101

	staticFirst = 23 // objects 23 onwards are decorations and pickups
	staticLast  = 70

	// spriteStatic0 is the sprite index of the first decoration.
	spriteStatic0 = 2
)

var (
	floorColor = color.RGBA{0x70, 0x70, 0x70, 0xFF}
	doorColor  = color.RGBA{0x40, 0xB0, 0xB0, 0xFF}
	wallColor  = color.RGBA{0x30, 0x30, 0x30, 0xFF} // texture missing
)

// Render draws the map at tileSize pixels per tile.
func Render(assets Assets, m *gamemaps.TileMap, tileSize int) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, m.Width*tileSize, m.Height*tileSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(floorColor), image.Point{}, draw.Src)

	// scaled caches tiles and sprites already brought to tileSize.
	scaled := map[int]image.Image{}
	tile := func(index int) image.Image {
		if img, ok := scaled[index]; ok {
			return img
		}
		src, err := assets.Texture(index)
		if err != nil {
			glog.V(1).Infof("maprender: no texture %d: %v", index, err)
			scaled[index] = nil
			return nil
		}
		out := resize.Resize(uint(tileSize), uint(tileSize), src, resize.NearestNeighbor)
		scaled[index] = out
		return out
	}
	scaledSprites := map[int]image.Image{}
	sprite := func(index int) image.Image {
		if img, ok := scaledSprites[index]; ok {
			return img
		}
		src, err := assets.Sprite(index)
		if err != nil {
			glog.V(1).Infof("maprender: no sprite %d: %v", index, err)
			scaledSprites[index] = nil
			return nil
		}
		out := resize.Resize(uint(tileSize), uint(tileSize), src, resize.NearestNeighbor)
		scaledSprites[index] = out
		return out
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			rect := image.Rect(x*tileSize, y*tileSize, (x+1)*tileSize, (y+1)*tileSize)
			arch := int(m.At(x, y, gamemaps.PlaneArchitecture))

			switch {
			case arch >= 1 && arch <= wallLast:
				// Wall textures come in light/dark pairs per wall code.
				if t := tile((arch - 1) * 2); t != nil {
					draw.Draw(img, rect, t, t.Bounds().Min, draw.Src)
				} else {
					draw.Draw(img, rect, image.NewUniform(wallColor), image.Point{}, draw.Src)
				}
				continue
			case arch >= doorFirst && arch <= doorLast:
				draw.Draw(img, rect, image.NewUniform(doorColor), image.Point{}, draw.Src)
				continue
			}

			obj := int(m.At(x, y, gamemaps.PlaneObjects))
			if obj >= staticFirst && obj <= staticLast {
				if s := sprite(obj - staticFirst + spriteStatic0); s != nil {
					draw.Draw(img, rect, s, s.Bounds().Min, draw.Over)
				}
			}
		}
	}
	return img, nil
}
