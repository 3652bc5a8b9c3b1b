package main

import (
	"flag"
	"os"

	"github.com/kestrelcore/goboycore/cmd/goboycore/internal/romio"
	"github.com/kestrelcore/goboycore/internal/console"
)

func runCmd(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	rom, archive, entry := romFlags(fs)
	save := fs.String("save", "", "path to write cartridge RAM to on exit")
	frames := fs.Int("frames", 600, "number of completed frames to run before stopping")
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
	if *save != "" {
		if data, err := os.ReadFile(*save); err == nil {
			c.LoadRAM(data)
		}
	}
	c.PowerOn()

	runFrames(c, *frames)

	if *save != "" {
		return os.WriteFile(*save, c.RAM(), 0o644)
	}
	return nil
}

// runFrames drives the console until IsVBlankComplete has fired n times.
// The predicate is true for exactly one tick per frame (ly==0, lx==0), so a
// plain per-tick check is enough to count frame boundaries.
func runFrames(c *console.Console, n int) {
	seen := 0
	for seen < n {
		c.Tick()
		if c.IsVBlankComplete() {
			seen++
		}
	}
}
