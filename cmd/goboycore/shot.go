package main

import (
	"flag"
	"os"

	"github.com/kestrelcore/goboycore/cmd/goboycore/internal/romio"
	"github.com/kestrelcore/goboycore/internal/console"
	"github.com/kestrelcore/goboycore/pkg/framebuf"
)

func shotCmd(args []string) error {
	fs := flag.NewFlagSet("shot", flag.ExitOnError)
	rom, archive, entry := romFlags(fs)
	out := fs.String("out", "shot.png", "PNG output path")
	scale := fs.Int("scale", 1, "integer upscale factor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	romBytes, err := romio.Load(*rom, *archive, *entry)
	if err != nil {
		return err
	}

	c := console.New()
	if err := c.LoadROM(romBytes); err != nil {
		return err
	}
	c.PowerOn()

	// skip the power-on instant so the very first real frame is captured
	c.Tick()
	for !c.IsVBlankComplete() {
		c.Tick()
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	return framebuf.EncodePNG(f, c.Screen(), *scale)
}
