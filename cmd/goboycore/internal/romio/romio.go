// Package romio loads ROM bytes either from a plain file or from a named
// entry inside a .7z archive, shared by every goboycore subcommand.
package romio

import (
	"fmt"
	"io"
	"os"

	"github.com/bodgit/sevenzip"
)

// Load reads a ROM from path, or, if archive is non-empty, reads the entry
// named entry out of the .7z file at archive.
func Load(path, archive, entry string) ([]byte, error) {
	if archive == "" {
		return os.ReadFile(path)
	}
	return loadFromArchive(archive, entry)
}

func loadFromArchive(archive, entry string) ([]byte, error) {
	r, err := sevenzip.OpenReader(archive)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", archive, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != entry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", entry, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("entry %q not found in %s", entry, archive)
}
