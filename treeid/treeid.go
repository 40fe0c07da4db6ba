// Package treeid generates the identities carried by every tree node.
//
// An id is a random 128-bit value rendered as canonical lowercase hyphenated
// hex text, e.g. "9b73a757-da9c-46c0-8ee2-52bd1160ef96". Uniqueness is
// probabilistic; no collision detection is performed here.
//
// Trees take a Generator so tests and examples can swap the random source
// for a deterministic one (see Sequence).
package treeid

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces a fresh node id on every call.
// Implementations must be safe for concurrent use.
type Generator func() string

// New returns a random (version 4) UUID in canonical text form.
// Complexity: O(1).
func New() string {
	return uuid.NewString()
}

// Valid reports whether s is a canonical lowercase hyphenated 128-bit id.
// Braced, URN-prefixed, unhyphenated and uppercase forms are rejected even
// though uuid.Parse accepts them.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}

	return u.String() == s
}

// Sequence returns a deterministic Generator yielding prefix1, prefix2, …
// The counter is atomic, so the generator may be shared across goroutines.
// Ids from Sequence are not 128-bit values; use it only where readable,
// reproducible ids matter more than the canonical format.
func Sequence(prefix string) Generator {
	var n atomic.Uint64

	return func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	}
}
