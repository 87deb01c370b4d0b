// Package docid generates the opaque identifiers the store assigns to new
// documents.
package docid

import (
	"crypto/rand"
)

const (
	// Len is the length of a document id. 20 characters from a 62 symbol
	// alphabet give ~119 bits of entropy.
	Len = 20

	// acceptBelow is the largest multiple of len(alphabet) that fits a byte.
	// Random bytes at or above it are dropped to avoid modulo bias.
	acceptBelow = 248

	// readChunk is how many random bytes are read per refill.
	readChunk = 32
)

var alphabet = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new random document id of length Len.
func New() string {
	return NewLen(Len)
}

// NewLen returns a new random id of the given length.
// It panics if the system random source fails.
func NewLen(length int) string {
	if length <= 0 {
		return ""
	}

	var (
		out = make([]byte, 0, length)
		buf = make([]byte, readChunk)
	)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("docid: reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if b >= acceptBelow {
				continue
			}

			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}

// Valid reports whether id looks like an id produced by New.
func Valid(id string) bool {
	if len(id) != Len {
		return false
	}

	for i := 0; i < len(id); i++ {
		c := id[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}

	return true
}
