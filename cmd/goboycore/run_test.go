package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kestrelcore/goboycore/internal/testrom"
)

func TestRunCmdWritesSaveFile(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "game.gb")
	savePath := filepath.Join(dir, "game.sav")

	rom := testrom.InfiniteLoop()
	if err := os.WriteFile(romPath, rom, 0o644); err != nil {
		t.Fatalf("write rom: %v", err)
	}

	err := runCmd([]string{"-rom", romPath, "-save", savePath, "-frames", "2"})
	if err != nil {
		t.Fatalf("runCmd: %v", err)
	}

	if _, err := os.Stat(savePath); err != nil {
		t.Fatalf("save file not written: %v", err)
	}
}
