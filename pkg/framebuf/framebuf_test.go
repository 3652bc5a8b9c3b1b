package framebuf_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/kestrelcore/goboycore/pkg/framebuf"
)

func TestToImageDimensions(t *testing.T) {
	var fb [framebuf.Width * framebuf.Height]uint8
	img := framebuf.ToImage(fb)
	b := img.Bounds()
	if b.Dx() != framebuf.Width || b.Dy() != framebuf.Height {
		t.Fatalf("image dims = %dx%d, want %dx%d", b.Dx(), b.Dy(), framebuf.Width, framebuf.Height)
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	var fb [framebuf.Width * framebuf.Height]uint8
	fb[0] = 3
	var buf bytes.Buffer
	if err := framebuf.EncodePNG(&buf, fb, 1); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != framebuf.Width {
		t.Fatalf("decoded width = %d, want %d", img.Bounds().Dx(), framebuf.Width)
	}
}

func TestUpscale(t *testing.T) {
	var fb [framebuf.Width * framebuf.Height]uint8
	img := framebuf.ToImage(fb)
	scaled := framebuf.Upscale(img, 4)
	b := scaled.Bounds()
	if b.Dx() != framebuf.Width*4 || b.Dy() != framebuf.Height*4 {
		t.Fatalf("scaled dims = %dx%d, want %dx%d", b.Dx(), b.Dy(), framebuf.Width*4, framebuf.Height*4)
	}
}
