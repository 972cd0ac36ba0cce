package gputex

import (
	"image"
	"image/color"
)

// ToNRGBA renders a decoded mip level's tiles into a standard
// image.NRGBA, stitching the 4x4 tiles into a pixelWidth x pixelHeight
// canvas (the rightmost/bottom edge tiles may extend past the image
// and are cropped). This is a verification-only adapter: the core
// itself never performs image I/O or tests against a particular
// image.Image backend; a caller that wants to eyeball a decode or
// diff it against a reference PNG/EXR uses this the way a higher
// layer would use any other image.Image producer.
func ToNRGBA(tiles []Tile, blocksX, blocksY, pixelWidth, pixelHeight int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pixelWidth, pixelHeight))
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			tile := tiles[by*blocksX+bx]
			for ty := 0; ty < 4; ty++ {
				y := by*4 + ty
				if y >= pixelHeight {
					continue
				}
				for tx := 0; tx < 4; tx++ {
					x := bx*4 + tx
					if x >= pixelWidth {
						continue
					}
					p := tile[ty*4+tx]
					img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
				}
			}
		}
	}
	return img
}

// ToAlpha renders a decoded single-channel tile set (e.g. a standalone
// ETC2 EAC alpha plane) into a standard image.Alpha, the same way
// ToNRGBA does for full-color tiles.
func ToAlpha(tiles []Tile, blocksX, blocksY, pixelWidth, pixelHeight int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, pixelWidth, pixelHeight))
	for by := 0; by < blocksY; by++ {
		for bx := 0; bx < blocksX; bx++ {
			tile := tiles[by*blocksX+bx]
			for ty := 0; ty < 4; ty++ {
				y := by*4 + ty
				if y >= pixelHeight {
					continue
				}
				for tx := 0; tx < 4; tx++ {
					x := bx*4 + tx
					if x >= pixelWidth {
						continue
					}
					img.SetAlpha(x, y, color.Alpha{A: tile[ty*4+tx].A})
				}
			}
		}
	}
	return img
}
