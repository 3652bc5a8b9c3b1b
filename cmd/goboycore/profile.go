package main

import (
	"flag"

	"github.com/kestrelcore/goboycore/cmd/goboycore/internal/romio"
	"github.com/kestrelcore/goboycore/internal/console"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// profileCmd runs the console for --frames frames, records the wave
// channel's sample count per frame, and renders a line chart — a
// lightweight diagnostic for spotting wave-channel stalls.
func profileCmd(args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	rom, archive, entry := romFlags(fs)
	frames := fs.Int("frames", 600, "number of frames to profile")
	out := fs.String("out", "profile.png", "chart output path")
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

	samplesPerFrame := make(plotter.XYs, 0, *frames)
	frameIdx := 0
	for frameIdx < *frames {
		c.Tick()
		if c.IsVBlankComplete() {
			samplesPerFrame = append(samplesPerFrame, plotter.XY{
				X: float64(frameIdx),
				Y: float64(len(c.WaveSamples())),
			})
			c.ClearSound()
			frameIdx++
		}
	}

	p := plot.New()
	p.Title.Text = "wave channel samples per frame"
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "samples"

	line, err := plotter.NewLine(samplesPerFrame)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(8*vg.Inch, 4*vg.Inch, *out)
}
