// Package savestate fingerprints a console's persisted cartridge RAM for
// host-side save integrity checks. The fingerprint is a CLI/host-boundary
// concern only: it never becomes part of the raw byte layout written to
// disk, which remains exactly the bytes Console.RAM returns.
package savestate

import "github.com/cespare/xxhash/v2"

// Fingerprint returns the xxhash64 digest of a cartridge RAM snapshot.
func Fingerprint(ram []byte) uint64 {
	return xxhash.Sum64(ram)
}

// Verify reports whether ram matches a previously computed fingerprint.
func Verify(ram []byte, want uint64) bool {
	return Fingerprint(ram) == want
}
