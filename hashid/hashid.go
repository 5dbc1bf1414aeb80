// Package hashid derives stable player identifiers from player names.
package hashid

import "github.com/cespare/xxhash/v2"

// Hash returns the xxHash64 digest of name, seeded with zero. It is
// deterministic across runs and processes, which is what lets a player
// reconnecting under the same name be recognized as the same player id.
func Hash(name string) uint64 {
	return xxhash.Sum64String(name)
}
