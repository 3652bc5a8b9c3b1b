// Command goboycore is a headless front-end for the console engine: run it
// to completion, take a screenshot, stream frames to a websocket client, or
// plot a wave-channel diagnostic. The engine itself stays host-agnostic —
// none of this package is imported back into internal/console.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:])
	case "shot":
		err = shotCmd(os.Args[2:])
	case "serve":
		err = serveCmd(os.Args[2:])
	case "profile":
		err = profileCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "goboycore:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: goboycore <run|shot|serve|profile> [flags]")
}

// romFlags binds the --rom/--archive/--entry flags every subcommand shares.
func romFlags(fs *flag.FlagSet) (rom, archive, entry *string) {
	rom = fs.String("rom", "", "path to a .gb ROM file")
	archive = fs.String("archive", "", "path to a .7z archive to read the ROM from instead of --rom")
	entry = fs.String("entry", "", "entry name inside --archive")
	return
}
