// Package framebuf converts a Console's palette-index framebuffer into a
// standard image.Image, for the CLI screenshot/serve front-end. It is
// never imported by internal/console — the core stays host-agnostic.
package framebuf

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// DMGPalette is the classic four-shade DMG-green ramp, indexed by the
// 2-bit palette value the PPU writes into the framebuffer.
var DMGPalette = color.Palette{
	color.RGBA{R: 0x9B, G: 0xBC, B: 0x0F, A: 0xFF},
	color.RGBA{R: 0x8B, G: 0xAC, B: 0x0F, A: 0xFF},
	color.RGBA{R: 0x30, G: 0x62, B: 0x30, A: 0xFF},
	color.RGBA{R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF},
}

const (
	Width  = 160
	Height = 144
)

// ToImage renders a 160x144 palette-index framebuffer into an
// image.Paletted using DMGPalette.
func ToImage(fb [Width * Height]uint8) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, Width, Height), DMGPalette)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			img.SetColorIndex(x, y, fb[y*Width+x]&0x03)
		}
	}
	return img
}

// Upscale nearest-neighbour scales img by an integer factor. A factor of 1
// or less returns img unchanged.
func Upscale(img *image.Paletted, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, Width*factor, Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// EncodePNG writes a framebuffer as a PNG, optionally upscaled.
func EncodePNG(w io.Writer, fb [Width * Height]uint8, scale int) error {
	img := ToImage(fb)
	if scale > 1 {
		return png.Encode(w, Upscale(img, scale))
	}
	return png.Encode(w, img)
}
